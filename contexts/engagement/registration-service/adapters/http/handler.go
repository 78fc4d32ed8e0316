package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"confera/contexts/engagement/registration-service/application"
	httptransport "confera/contexts/engagement/registration-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) RegisterHandler(ctx context.Context, attendeeID string, eventID string) (httptransport.RegisterResponse, error) {
	result, err := h.Service.Register(ctx, attendeeID, eventID)
	if err != nil {
		return httptransport.RegisterResponse{}, err
	}
	return httptransport.RegisterResponse{
		Message:    "Registered for event successfully",
		EventID:    result.EventID,
		EventName:  result.EventName,
		AttendeeID: result.AttendeeID,
	}, nil
}

func (h Handler) RegisteredEventsHandler(ctx context.Context, attendeeID string) (httptransport.RegisteredEventsResponse, error) {
	registered, err := h.Service.ListRegisteredEvents(ctx, attendeeID)
	if err != nil {
		return httptransport.RegisteredEventsResponse{}, err
	}
	resp := httptransport.RegisteredEventsResponse{
		Message: "Registered events fetched successfully",
		Events:  make([]httptransport.EventSummaryDTO, 0, len(registered)),
	}
	for _, event := range registered {
		resp.Events = append(resp.Events, httptransport.EventSummaryDTO{
			EventID:     event.ID,
			Name:        event.Name,
			Description: event.Description,
			Date:        event.Date.UTC().Format(time.RFC3339),
		})
	}
	return resp, nil
}

func (h Handler) EventAttendeesHandler(ctx context.Context, eventID string) (httptransport.EventAttendeesResponse, error) {
	attendees, err := h.Service.ListEventAttendees(ctx, eventID)
	if err != nil {
		return httptransport.EventAttendeesResponse{}, err
	}
	resp := httptransport.EventAttendeesResponse{
		Message:   "Event attendees fetched successfully",
		Attendees: make([]httptransport.AttendeeSummaryDTO, 0, len(attendees)),
	}
	for _, attendee := range attendees {
		resp.Attendees = append(resp.Attendees, httptransport.AttendeeSummaryDTO{
			AttendeeID: attendee.ID,
			Name:       attendee.Name,
			Email:      attendee.Email,
		})
	}
	return resp, nil
}
