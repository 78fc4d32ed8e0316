package ports

import (
	"context"
	"time"

	"confera/internal/domain"
)

// Polls is the store slice for session polls: read the session document,
// append new polls, and atomically bump one tally entry.
type Polls interface {
	GetSession(ctx context.Context, id string) (domain.Session, error)
	AppendSessionPoll(ctx context.Context, sessionID string, poll domain.Poll) (domain.Session, error)
	IncrementPollResponse(ctx context.Context, sessionID string, pollID string, option string, delta int) (domain.Poll, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

type CreatePollInput struct {
	SessionID string
	Question  string
	Options   []string
}

type PollResults struct {
	PollID     string
	Question   string
	Options    []string
	Responses  map[string]int
	TotalVotes int
}
