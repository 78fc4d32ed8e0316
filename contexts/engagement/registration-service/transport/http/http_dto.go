package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type RegisterResponse struct {
	Message    string `json:"message"`
	EventID    string `json:"event_id"`
	EventName  string `json:"event_name"`
	AttendeeID string `json:"attendee_id"`
}

type EventSummaryDTO struct {
	EventID     string `json:"event_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

type RegisteredEventsResponse struct {
	Message string            `json:"message"`
	Events  []EventSummaryDTO `json:"events"`
}

type AttendeeSummaryDTO struct {
	AttendeeID string `json:"attendee_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
}

type EventAttendeesResponse struct {
	Message   string               `json:"message"`
	Attendees []AttendeeSummaryDTO `json:"attendees"`
}
