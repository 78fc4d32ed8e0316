package domain

import "time"

// SpeakerAnalytics counters only move through store-level atomic increments.
// SessionsPresented grows by exactly one per successful new assignment and is
// never decremented here.
type SpeakerAnalytics struct {
	SessionsPresented  int
	AttendeeEngagement int
}

type Speaker struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string
	Bio          string
	Topics       []string
	Sessions     []string
	Analytics    SpeakerAnalytics
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
