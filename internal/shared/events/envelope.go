package events

import "time"

// Envelope is the shared event shape used across Confera modules.
// Every producer fills the full header so consumers can trace an event
// back to its source entity without decoding the payload.
type Envelope struct {
	EventID        string    `json:"event_id"`
	EventType      string    `json:"event_type"`
	SourceService  string    `json:"source_service"`
	OccurredAtUTC  time.Time `json:"occurred_at_utc"`
	CorrelationID  string    `json:"correlation_id"`
	EntityType     string    `json:"entity_type"`
	EntityID       string    `json:"entity_id"`
	PayloadVersion int       `json:"payload_version"`
	Payload        any       `json:"payload"`
}

// Topic and event type constants shared by producers and consumers.
const (
	TopicRegistrations = "confera.registrations"
	TopicSessions      = "confera.sessions"
	TopicNotifications = "confera.notifications"

	TypeRegistrationCreated   = "registration.created"
	TypeSessionJoined         = "session.joined"
	TypeNotificationBroadcast = "notification.broadcast"
)

// SessionJoinedPayload travels on session.joined events so the engagement
// consumer can credit the assigned speaker.
type SessionJoinedPayload struct {
	SessionID  string `json:"session_id"`
	AttendeeID string `json:"attendee_id"`
	SpeakerID  string `json:"speaker_id"`
}

// RegistrationCreatedPayload travels on registration.created events.
type RegistrationCreatedPayload struct {
	EventID    string `json:"event_id"`
	AttendeeID string `json:"attendee_id"`
}
