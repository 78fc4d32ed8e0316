package application

import (
	"context"
	"errors"
	"log/slog"
	"time"

	domainerrors "confera/contexts/programme/scheduling-service/domain/errors"
	"confera/contexts/programme/scheduling-service/ports"
	"confera/internal/domain"
	"confera/internal/shared/events"
	"confera/internal/store"
)

type Service struct {
	Repo        ports.Scheduling
	Publisher   ports.EventPublisher
	Clock       ports.Clock
	IDGen       ports.IDGenerator
	ServiceName string
	Logger      *slog.Logger
}

// AssignSpeaker links a speaker to a session. The duplicate guard runs before
// any mutation; SessionsPresented moves only after both sides of the link are
// written, so a failed write never bumps the counter.
func (s Service) AssignSpeaker(ctx context.Context, speakerID string, sessionID string) (ports.AssignResult, error) {
	speaker, err := s.Repo.GetSpeaker(ctx, speakerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ports.AssignResult{}, domainerrors.ErrSpeakerNotFound
		}
		return ports.AssignResult{}, err
	}
	if _, err := s.Repo.GetSession(ctx, sessionID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ports.AssignResult{}, domainerrors.ErrSessionNotFound
		}
		return ports.AssignResult{}, err
	}
	for _, assigned := range speaker.Sessions {
		if assigned == sessionID {
			return ports.AssignResult{}, domainerrors.ErrAlreadyAssigned
		}
	}

	if err := s.Repo.SetSessionSpeaker(ctx, sessionID, speakerID); err != nil {
		return ports.AssignResult{}, err
	}
	added, err := s.Repo.AddSpeakerSession(ctx, speakerID, sessionID)
	if err != nil {
		return ports.AssignResult{}, err
	}
	if added {
		if err := s.Repo.IncrementSessionsPresented(ctx, speakerID, 1); err != nil {
			return ports.AssignResult{}, err
		}
	}

	ResolveLogger(s.Logger).Info("speaker assigned",
		"event", "speaker_assigned",
		"module", "programme/scheduling-service",
		"layer", "application",
		"speaker_id", speakerID,
		"session_id", sessionID,
	)
	return ports.AssignResult{
		SpeakerID:   speakerID,
		SessionID:   sessionID,
		SpeakerName: speaker.Name,
	}, nil
}

// JoinSession adds the attendee to the participant set and announces the join
// on the bus; the engagement consumer credits the assigned speaker.
func (s Service) JoinSession(ctx context.Context, attendeeID string, sessionID string) (ports.JoinResult, error) {
	session, err := s.Repo.GetSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ports.JoinResult{}, domainerrors.ErrSessionNotFound
		}
		return ports.JoinResult{}, err
	}
	if _, err := s.Repo.GetAttendee(ctx, attendeeID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ports.JoinResult{}, domainerrors.ErrAttendeeNotFound
		}
		return ports.JoinResult{}, err
	}

	added, err := s.Repo.AddSessionParticipant(ctx, sessionID, attendeeID)
	if err != nil {
		return ports.JoinResult{}, err
	}
	if !added {
		return ports.JoinResult{}, domainerrors.ErrAlreadyJoined
	}

	s.publishJoined(ctx, sessionID, attendeeID, session.SpeakerID)

	ResolveLogger(s.Logger).Info("attendee joined session",
		"event", "session_joined",
		"module", "programme/scheduling-service",
		"layer", "application",
		"session_id", sessionID,
		"attendee_id", attendeeID,
	)
	return ports.JoinResult{
		SessionID:  sessionID,
		AttendeeID: attendeeID,
		SpeakerID:  session.SpeakerID,
	}, nil
}

func (s Service) GetAnalytics(ctx context.Context, speakerID string) (domain.SpeakerAnalytics, error) {
	speaker, err := s.Repo.GetSpeaker(ctx, speakerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.SpeakerAnalytics{}, domainerrors.ErrSpeakerNotFound
		}
		return domain.SpeakerAnalytics{}, err
	}
	return speaker.Analytics, nil
}

func (s Service) ListSpeakerSessions(ctx context.Context, speakerID string) ([]domain.Session, error) {
	speaker, err := s.Repo.GetSpeaker(ctx, speakerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, domainerrors.ErrSpeakerNotFound
		}
		return nil, err
	}

	sessions := make([]domain.Session, 0, len(speaker.Sessions))
	for _, sessionID := range speaker.Sessions {
		session, err := s.Repo.GetSession(ctx, sessionID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				continue
			}
			return nil, err
		}
		sessions = append(sessions, session)
	}
	return sessions, nil
}

func (s Service) GetSession(ctx context.Context, sessionID string) (domain.Session, error) {
	session, err := s.Repo.GetSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Session{}, domainerrors.ErrSessionNotFound
		}
		return domain.Session{}, err
	}
	return session, nil
}

func (s Service) ListSpeakers(ctx context.Context) ([]domain.Speaker, error) {
	return s.Repo.ListSpeakers(ctx)
}

func (s Service) GetSpeaker(ctx context.Context, speakerID string) (domain.Speaker, error) {
	speaker, err := s.Repo.GetSpeaker(ctx, speakerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Speaker{}, domainerrors.ErrSpeakerNotFound
		}
		return domain.Speaker{}, err
	}
	return speaker, nil
}

func (s Service) publishJoined(ctx context.Context, sessionID string, attendeeID string, speakerID string) {
	if s.Publisher == nil {
		return
	}
	envelopeID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return
	}
	_ = s.Publisher.Publish(ctx, events.TopicSessions, events.Envelope{
		EventID:        envelopeID,
		EventType:      events.TypeSessionJoined,
		SourceService:  s.ServiceName,
		OccurredAtUTC:  s.now(),
		EntityType:     "session",
		EntityID:       sessionID,
		PayloadVersion: 1,
		Payload: events.SessionJoinedPayload{
			SessionID:  sessionID,
			AttendeeID: attendeeID,
			SpeakerID:  speakerID,
		},
	})
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}
