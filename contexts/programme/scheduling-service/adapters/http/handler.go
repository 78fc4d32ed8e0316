package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"confera/contexts/programme/scheduling-service/application"
	httptransport "confera/contexts/programme/scheduling-service/transport/http"
	"confera/internal/domain"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) AssignSpeakerHandler(ctx context.Context, sessionID string, req httptransport.AssignSpeakerRequest) (httptransport.AssignSpeakerResponse, error) {
	result, err := h.Service.AssignSpeaker(ctx, req.SpeakerID, sessionID)
	if err != nil {
		return httptransport.AssignSpeakerResponse{}, err
	}
	return httptransport.AssignSpeakerResponse{
		Message:     "Speaker assigned to session successfully",
		SpeakerID:   result.SpeakerID,
		SpeakerName: result.SpeakerName,
		SessionID:   result.SessionID,
	}, nil
}

func (h Handler) JoinSessionHandler(ctx context.Context, attendeeID string, sessionID string) (httptransport.JoinSessionResponse, error) {
	result, err := h.Service.JoinSession(ctx, attendeeID, sessionID)
	if err != nil {
		return httptransport.JoinSessionResponse{}, err
	}
	return httptransport.JoinSessionResponse{
		Message:    "Joined session successfully",
		SessionID:  result.SessionID,
		AttendeeID: result.AttendeeID,
	}, nil
}

func (h Handler) GetAnalyticsHandler(ctx context.Context, speakerID string) (httptransport.AnalyticsResponse, error) {
	analytics, err := h.Service.GetAnalytics(ctx, speakerID)
	if err != nil {
		return httptransport.AnalyticsResponse{}, err
	}
	resp := httptransport.AnalyticsResponse{Message: "Analytics fetched successfully"}
	resp.Analytics.SessionsPresented = analytics.SessionsPresented
	resp.Analytics.AttendeeEngagement = analytics.AttendeeEngagement
	return resp, nil
}

func (h Handler) ListSpeakerSessionsHandler(ctx context.Context, speakerID string) (httptransport.SessionsResponse, error) {
	items, err := h.Service.ListSpeakerSessions(ctx, speakerID)
	if err != nil {
		return httptransport.SessionsResponse{}, err
	}
	resp := httptransport.SessionsResponse{
		Message:  "Speaker sessions fetched successfully",
		Sessions: make([]httptransport.SessionDTO, 0, len(items)),
	}
	for _, session := range items {
		resp.Sessions = append(resp.Sessions, sessionDTO(session))
	}
	return resp, nil
}

func (h Handler) GetSessionHandler(ctx context.Context, sessionID string) (httptransport.SessionResponse, error) {
	session, err := h.Service.GetSession(ctx, sessionID)
	if err != nil {
		return httptransport.SessionResponse{}, err
	}
	return httptransport.SessionResponse{
		Message: "Session fetched successfully",
		Session: sessionDTO(session),
	}, nil
}

func (h Handler) ListSpeakersHandler(ctx context.Context) (httptransport.SpeakersResponse, error) {
	items, err := h.Service.ListSpeakers(ctx)
	if err != nil {
		return httptransport.SpeakersResponse{}, err
	}
	resp := httptransport.SpeakersResponse{
		Message:  "Speakers fetched successfully",
		Speakers: make([]httptransport.SpeakerDTO, 0, len(items)),
	}
	for _, speaker := range items {
		resp.Speakers = append(resp.Speakers, speakerDTO(speaker))
	}
	return resp, nil
}

func (h Handler) GetSpeakerHandler(ctx context.Context, speakerID string) (httptransport.SpeakerResponse, error) {
	speaker, err := h.Service.GetSpeaker(ctx, speakerID)
	if err != nil {
		return httptransport.SpeakerResponse{}, err
	}
	return httptransport.SpeakerResponse{
		Message: "Speaker fetched successfully",
		Speaker: speakerDTO(speaker),
	}, nil
}

func speakerDTO(speaker domain.Speaker) httptransport.SpeakerDTO {
	return httptransport.SpeakerDTO{
		SpeakerID: speaker.ID,
		Name:      speaker.Name,
		Bio:       speaker.Bio,
		Topics:    speaker.Topics,
	}
}

func sessionDTO(session domain.Session) httptransport.SessionDTO {
	return httptransport.SessionDTO{
		SessionID:    session.ID,
		Title:        session.Title,
		Description:  session.Description,
		Date:         session.Date.UTC().Format(time.RFC3339),
		EventID:      session.EventID,
		SpeakerID:    session.SpeakerID,
		Participants: session.Participants,
	}
}
