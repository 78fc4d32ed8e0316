package workers

import (
	"context"
	"encoding/json"
	"log/slog"

	"confera/contexts/programme/scheduling-service/ports"
	"confera/internal/shared/events"
)

// EngagementConsumer credits the assigned speaker's AttendeeEngagement
// counter for every session.joined event. Joins on sessions with no speaker
// yet are counted nowhere.
type EngagementConsumer struct {
	Repo   ports.Scheduling
	Logger *slog.Logger
}

const ConsumerGroup = "scheduling-engagement"

func (c EngagementConsumer) Handle(ctx context.Context, event events.Envelope) error {
	if event.EventType != events.TypeSessionJoined {
		return nil
	}

	payload, err := decodePayload(event.Payload)
	if err != nil {
		return err
	}
	if payload.SpeakerID == "" {
		return nil
	}

	if err := c.Repo.IncrementAttendeeEngagement(ctx, payload.SpeakerID, 1); err != nil {
		return err
	}
	if c.Logger != nil {
		c.Logger.Info("engagement credited",
			"event", "engagement_credited",
			"module", "programme/scheduling-service",
			"layer", "worker",
			"speaker_id", payload.SpeakerID,
			"session_id", payload.SessionID,
		)
	}
	return nil
}

// decodePayload accepts both the in-process typed payload and a decoded JSON
// map, so the consumer keeps working if the bus starts serializing.
func decodePayload(raw any) (events.SessionJoinedPayload, error) {
	if typed, ok := raw.(events.SessionJoinedPayload); ok {
		return typed, nil
	}
	encoded, err := json.Marshal(raw)
	if err != nil {
		return events.SessionJoinedPayload{}, err
	}
	var payload events.SessionJoinedPayload
	if err := json.Unmarshal(encoded, &payload); err != nil {
		return events.SessionJoinedPayload{}, err
	}
	return payload, nil
}
