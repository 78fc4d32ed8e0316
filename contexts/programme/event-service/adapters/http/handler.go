package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"confera/contexts/programme/event-service/application"
	"confera/contexts/programme/event-service/ports"
	httptransport "confera/contexts/programme/event-service/transport/http"
	"confera/internal/domain"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) CreateEventHandler(ctx context.Context, organiserID string, req httptransport.CreateEventRequest) (httptransport.EventResponse, error) {
	event, err := h.Service.CreateEvent(ctx, ports.CreateEventInput{
		OrganiserID: organiserID,
		Name:        req.Name,
		Description: req.Description,
		Date:        req.Date,
	})
	if err != nil {
		return httptransport.EventResponse{}, err
	}
	return httptransport.EventResponse{
		Message: "Event created successfully",
		Event:   eventDTO(event),
	}, nil
}

func (h Handler) ListEventsHandler(ctx context.Context) (httptransport.EventsResponse, error) {
	items, err := h.Service.ListEvents(ctx)
	if err != nil {
		return httptransport.EventsResponse{}, err
	}
	resp := httptransport.EventsResponse{
		Message: "Events fetched successfully",
		Events:  make([]httptransport.EventDTO, 0, len(items)),
	}
	for _, event := range items {
		resp.Events = append(resp.Events, eventDTO(event))
	}
	return resp, nil
}

func (h Handler) GetEventHandler(ctx context.Context, eventID string) (httptransport.EventResponse, error) {
	event, err := h.Service.GetEvent(ctx, eventID)
	if err != nil {
		return httptransport.EventResponse{}, err
	}
	return httptransport.EventResponse{
		Message: "Event fetched successfully",
		Event:   eventDTO(event),
	}, nil
}

func (h Handler) UpdateEventHandler(ctx context.Context, organiserID string, eventID string, req httptransport.UpdateEventRequest) (httptransport.EventResponse, error) {
	event, err := h.Service.UpdateEvent(ctx, eventID, ports.UpdateEventInput{
		OrganiserID: organiserID,
		Name:        req.Name,
		Description: req.Description,
		Date:        req.Date,
	})
	if err != nil {
		return httptransport.EventResponse{}, err
	}
	return httptransport.EventResponse{
		Message: "Event updated successfully",
		Event:   eventDTO(event),
	}, nil
}

func (h Handler) DeleteEventHandler(ctx context.Context, organiserID string, eventID string) (httptransport.DeleteResponse, error) {
	if err := h.Service.DeleteEvent(ctx, organiserID, eventID); err != nil {
		return httptransport.DeleteResponse{}, err
	}
	return httptransport.DeleteResponse{Message: "Event deleted successfully"}, nil
}

func (h Handler) CreateSessionHandler(ctx context.Context, eventID string, req httptransport.CreateSessionRequest) (httptransport.SessionResponse, error) {
	session, err := h.Service.CreateSession(ctx, ports.CreateSessionInput{
		EventID:     eventID,
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
	})
	if err != nil {
		return httptransport.SessionResponse{}, err
	}
	return httptransport.SessionResponse{
		Message: "Session created successfully",
		Session: sessionDTO(session),
	}, nil
}

func (h Handler) UpdateSessionHandler(ctx context.Context, sessionID string, req httptransport.UpdateSessionRequest) (httptransport.SessionResponse, error) {
	session, err := h.Service.UpdateSession(ctx, sessionID, ports.UpdateSessionInput{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
	})
	if err != nil {
		return httptransport.SessionResponse{}, err
	}
	return httptransport.SessionResponse{
		Message: "Session updated successfully",
		Session: sessionDTO(session),
	}, nil
}

func (h Handler) DeleteSessionHandler(ctx context.Context, sessionID string) (httptransport.DeleteResponse, error) {
	if err := h.Service.DeleteSession(ctx, sessionID); err != nil {
		return httptransport.DeleteResponse{}, err
	}
	return httptransport.DeleteResponse{Message: "Session deleted successfully"}, nil
}

func (h Handler) ListEventSessionsHandler(ctx context.Context, eventID string) (httptransport.SessionsResponse, error) {
	items, err := h.Service.ListEventSessions(ctx, eventID)
	if err != nil {
		return httptransport.SessionsResponse{}, err
	}
	resp := httptransport.SessionsResponse{
		Message:  "Sessions fetched successfully",
		Sessions: make([]httptransport.SessionDTO, 0, len(items)),
	}
	for _, session := range items {
		resp.Sessions = append(resp.Sessions, sessionDTO(session))
	}
	return resp, nil
}

func eventDTO(event domain.Event) httptransport.EventDTO {
	return httptransport.EventDTO{
		EventID:     event.ID,
		Name:        event.Name,
		Description: event.Description,
		Date:        event.Date.UTC().Format(time.RFC3339),
		OrganiserID: event.OrganiserID,
		Sessions:    event.Sessions,
		Attendees:   event.Attendees,
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
