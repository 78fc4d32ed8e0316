package domain

import "time"

// Poll carries an ordered option list and an option-keyed vote tally. The
// tally always has exactly one entry per option, zero-initialized at creation.
type Poll struct {
	ID        string
	Question  string
	Options   []string
	Responses map[string]int
}

type Session struct {
	ID           string
	Title        string
	Description  string
	Date         time.Time
	EventID      string
	SpeakerID    string
	Participants []string
	Polls        []Poll
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
