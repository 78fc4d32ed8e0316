package application

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	domainerrors "confera/contexts/programme/poll-service/domain/errors"
	"confera/contexts/programme/poll-service/ports"
	"confera/internal/domain"
	"confera/internal/store"
)

type Service struct {
	Repo   ports.Polls
	IDGen  ports.IDGenerator
	Logger *slog.Logger
}

// CreatePoll appends a poll with a zero tally per option, preserving the
// option order the creator supplied. Returns the session's full poll list.
func (s Service) CreatePoll(ctx context.Context, input ports.CreatePollInput) ([]domain.Poll, error) {
	question := strings.TrimSpace(input.Question)
	if question == "" {
		return nil, domainerrors.ErrInvalidQuestion
	}
	options := make([]string, 0, len(input.Options))
	for _, option := range input.Options {
		option = strings.TrimSpace(option)
		if option != "" {
			options = append(options, option)
		}
	}
	if len(options) < 2 {
		return nil, domainerrors.ErrNotEnoughOptions
	}

	if _, err := s.Repo.GetSession(ctx, input.SessionID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domainerrors.ErrSessionNotFound
		}
		return nil, err
	}

	pollID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return nil, err
	}
	responses := make(map[string]int, len(options))
	for _, option := range options {
		responses[option] = 0
	}
	session, err := s.Repo.AppendSessionPoll(ctx, input.SessionID, domain.Poll{
		ID:        pollID,
		Question:  question,
		Options:   options,
		Responses: responses,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domainerrors.ErrSessionNotFound
		}
		return nil, err
	}

	ResolveLogger(s.Logger).Info("poll created",
		"event", "poll_created",
		"module", "programme/poll-service",
		"layer", "application",
		"session_id", input.SessionID,
		"poll_id", pollID,
		"options", len(options),
	)
	return session.Polls, nil
}

func (s Service) ListPolls(ctx context.Context, sessionID string) ([]domain.Poll, error) {
	session, err := s.Repo.GetSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domainerrors.ErrSessionNotFound
		}
		return nil, err
	}
	return session.Polls, nil
}

// RecordVote bumps the tally for a declared option. An undeclared option is
// rejected without touching any tally.
func (s Service) RecordVote(ctx context.Context, sessionID string, pollID string, option string) (domain.Poll, error) {
	poll, err := s.findPoll(ctx, sessionID, pollID)
	if err != nil {
		return domain.Poll{}, err
	}
	if _, declared := poll.Responses[option]; !declared {
		return domain.Poll{}, domainerrors.ErrUnknownOption
	}

	updated, err := s.Repo.IncrementPollResponse(ctx, sessionID, pollID, option, 1)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Poll{}, domainerrors.ErrPollNotFound
		}
		return domain.Poll{}, err
	}

	ResolveLogger(s.Logger).Info("vote recorded",
		"event", "poll_vote_recorded",
		"module", "programme/poll-service",
		"layer", "application",
		"session_id", sessionID,
		"poll_id", pollID,
	)
	return updated, nil
}

func (s Service) PollResults(ctx context.Context, sessionID string, pollID string) (ports.PollResults, error) {
	poll, err := s.findPoll(ctx, sessionID, pollID)
	if err != nil {
		return ports.PollResults{}, err
	}
	total := 0
	for _, count := range poll.Responses {
		total += count
	}
	return ports.PollResults{
		PollID:     poll.ID,
		Question:   poll.Question,
		Options:    poll.Options,
		Responses:  poll.Responses,
		TotalVotes: total,
	}, nil
}

func (s Service) findPoll(ctx context.Context, sessionID string, pollID string) (domain.Poll, error) {
	session, err := s.Repo.GetSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Poll{}, domainerrors.ErrSessionNotFound
		}
		return domain.Poll{}, err
	}
	for _, poll := range session.Polls {
		if poll.ID == pollID {
			return poll, nil
		}
	}
	return domain.Poll{}, domainerrors.ErrPollNotFound
}
