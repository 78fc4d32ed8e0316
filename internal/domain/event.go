package domain

import "time"

// Event is the organiser-owned aggregate. Sessions, Attendees and Sponsors
// hold ids of the linked documents; Notifications is the event-level broadcast
// log, distinct from per-attendee inboxes.
type Event struct {
	ID            string
	Name          string
	Description   string
	Date          time.Time
	OrganiserID   string
	Sessions      []string
	Attendees     []string
	Sponsors      []string
	Notifications []string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
