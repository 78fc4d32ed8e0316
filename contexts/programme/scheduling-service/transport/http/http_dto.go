package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type AssignSpeakerRequest struct {
	SpeakerID string `json:"speaker_id"`
}

type AssignSpeakerResponse struct {
	Message     string `json:"message"`
	SpeakerID   string `json:"speaker_id"`
	SpeakerName string `json:"speaker_name"`
	SessionID   string `json:"session_id"`
}

type JoinSessionResponse struct {
	Message    string `json:"message"`
	SessionID  string `json:"session_id"`
	AttendeeID string `json:"attendee_id"`
}

type AnalyticsResponse struct {
	Message   string `json:"message"`
	Analytics struct {
		SessionsPresented  int `json:"sessions_presented"`
		AttendeeEngagement int `json:"attendee_engagement"`
	} `json:"analytics"`
}

type SpeakerDTO struct {
	SpeakerID string   `json:"speaker_id"`
	Name      string   `json:"name"`
	Bio       string   `json:"bio,omitempty"`
	Topics    []string `json:"topics,omitempty"`
}

type SpeakersResponse struct {
	Message  string       `json:"message"`
	Speakers []SpeakerDTO `json:"speakers"`
}

type SpeakerResponse struct {
	Message string     `json:"message"`
	Speaker SpeakerDTO `json:"speaker"`
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
