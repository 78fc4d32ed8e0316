package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CreateEventRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

type UpdateEventRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

type EventDTO struct {
	EventID     string   `json:"event_id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
	OrganiserID string   `json:"organiser_id"`
	Sessions    []string `json:"sessions"`
	Attendees   []string `json:"attendees"`
}

type EventResponse struct {
	Message string   `json:"message"`
	Event   EventDTO `json:"event"`
}

type EventsResponse struct {
	Message string     `json:"message"`
	Events  []EventDTO `json:"events"`
}

type DeleteResponse struct {
	Message string `json:"message"`
}

type CreateSessionRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

type UpdateSessionRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

type SessionDTO struct {
	SessionID    string   `json:"session_id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Date         string   `json:"date"`
	EventID      string   `json:"event_id"`
	SpeakerID    string   `json:"speaker_id,omitempty"`
	Participants []string `json:"participants"`
}

type SessionResponse struct {
	Message string     `json:"message"`
	Session SessionDTO `json:"session"`
}

type SessionsResponse struct {
	Message  string       `json:"message"`
	Sessions []SessionDTO `json:"sessions"`
}
