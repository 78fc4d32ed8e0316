package store

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SystemClock and UUIDGenerator are the default implementations behind the
// Clock/IDGenerator ports declared by each module.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

type UUIDGenerator struct{}

func (UUIDGenerator) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
