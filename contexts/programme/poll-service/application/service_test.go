package application

import (
	"context"
	"errors"
	"testing"

	domainerrors "confera/contexts/programme/poll-service/domain/errors"
	"confera/contexts/programme/poll-service/ports"
	"confera/internal/domain"
	"confera/internal/store"
	"confera/internal/store/memory"
)

func newPollService(t *testing.T) Service {
	t.Helper()
	repo := memory.NewStore()
	if err := repo.SaveSession(context.Background(), domain.Session{ID: "ses-1", Title: "Generics", EventID: "evt-1"}); err != nil {
		t.Fatalf("seed session failed: %v", err)
	}
	return Service{Repo: repo, IDGen: store.UUIDGenerator{}}
}

func TestCreatePollStartsAtZero(t *testing.T) {
	svc := newPollService(t)
	ctx := context.Background()

	polls, err := svc.CreatePoll(ctx, ports.CreatePollInput{
		SessionID: "ses-1",
		Question:  "Best session format?",
		Options:   []string{"talk", "workshop", "panel"},
	})
	if err != nil {
		t.Fatalf("create poll failed: %v", err)
	}
	if len(polls) != 1 {
		t.Fatalf("expected one poll, got %d", len(polls))
	}
	poll := polls[0]
	if poll.ID == "" {
		t.Fatalf("expected a generated poll id")
	}
	if len(poll.Options) != 3 || poll.Options[0] != "talk" || poll.Options[2] != "panel" {
		t.Fatalf("option order not preserved: %v", poll.Options)
	}
	for option, count := range poll.Responses {
		if count != 0 {
			t.Fatalf("expected zero tally for %q, got %d", option, count)
		}
	}
}

func TestCreatePollValidation(t *testing.T) {
	svc := newPollService(t)
	ctx := context.Background()

	if _, err := svc.CreatePoll(ctx, ports.CreatePollInput{SessionID: "ses-1", Question: "  ", Options: []string{"a", "b"}}); !errors.Is(err, domainerrors.ErrInvalidQuestion) {
		t.Fatalf("expected ErrInvalidQuestion, got %v", err)
	}
	// Blank options are dropped before the minimum check.
	if _, err := svc.CreatePoll(ctx, ports.CreatePollInput{SessionID: "ses-1", Question: "Q?", Options: []string{"a", "  "}}); !errors.Is(err, domainerrors.ErrNotEnoughOptions) {
		t.Fatalf("expected ErrNotEnoughOptions, got %v", err)
	}
	if _, err := svc.CreatePoll(ctx, ports.CreatePollInput{SessionID: "ses-404", Question: "Q?", Options: []string{"a", "b"}}); !errors.Is(err, domainerrors.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestRecordVote(t *testing.T) {
	svc := newPollService(t)
	ctx := context.Background()

	polls, err := svc.CreatePoll(ctx, ports.CreatePollInput{
		SessionID: "ses-1",
		Question:  "Best talk?",
		Options:   []string{"go", "rust"},
	})
	if err != nil {
		t.Fatalf("create poll failed: %v", err)
	}
	pollID := polls[0].ID

	updated, err := svc.RecordVote(ctx, "ses-1", pollID, "go")
	if err != nil {
		t.Fatalf("record vote failed: %v", err)
	}
	if updated.Responses["go"] != 1 || updated.Responses["rust"] != 0 {
		t.Fatalf("unexpected tallies %v", updated.Responses)
	}

	if _, err := svc.RecordVote(ctx, "ses-1", pollID, "go"); err != nil {
		t.Fatalf("second vote failed: %v", err)
	}

	results, err := svc.PollResults(ctx, "ses-1", pollID)
	if err != nil {
		t.Fatalf("poll results failed: %v", err)
	}
	if results.TotalVotes != 2 || results.Responses["go"] != 2 {
		t.Fatalf("unexpected results %+v", results)
	}
}

func TestRecordVoteUnknownOptionLeavesTallies(t *testing.T) {
	svc := newPollService(t)
	ctx := context.Background()

	polls, err := svc.CreatePoll(ctx, ports.CreatePollInput{
		SessionID: "ses-1",
		Question:  "Best talk?",
		Options:   []string{"go", "rust"},
	})
	if err != nil {
		t.Fatalf("create poll failed: %v", err)
	}
	pollID := polls[0].ID

	if _, err := svc.RecordVote(ctx, "ses-1", pollID, "python"); !errors.Is(err, domainerrors.ErrUnknownOption) {
		t.Fatalf("expected ErrUnknownOption, got %v", err)
	}

	results, err := svc.PollResults(ctx, "ses-1", pollID)
	if err != nil {
		t.Fatalf("poll results failed: %v", err)
	}
	if results.TotalVotes != 0 {
		t.Fatalf("rejected vote must not touch tallies: %+v", results)
	}
}

func TestRecordVoteMissingPoll(t *testing.T) {
	svc := newPollService(t)
	ctx := context.Background()

	if _, err := svc.RecordVote(ctx, "ses-1", "poll-404", "go"); !errors.Is(err, domainerrors.ErrPollNotFound) {
		t.Fatalf("expected ErrPollNotFound, got %v", err)
	}
	if _, err := svc.RecordVote(ctx, "ses-404", "poll-1", "go"); !errors.Is(err, domainerrors.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}
