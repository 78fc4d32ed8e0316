package domain

import "time"

// Notification is one entry in an attendee's personal inbox. Entries are
// append-only and ordered oldest-first; re-sending the same message text
// produces a new distinct entry.
type Notification struct {
	Message string
	Date    time.Time
	Read    bool
}

type Attendee struct {
	ID               string
	Name             string
	Email            string
	PasswordHash     string
	Role             string
	Interests        []string
	Skills           []string
	EventsRegistered []string
	Connections      []string
	Notifications    []Notification
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
