package ports

import (
	"context"
	"time"

	"confera/internal/domain"
)

// Accounts is the slice of the shared store this module touches: one
// save/lookup/update triple per principal role.
type Accounts interface {
	SaveAttendee(ctx context.Context, attendee domain.Attendee) error
	GetAttendee(ctx context.Context, id string) (domain.Attendee, error)
	FindAttendeeByEmail(ctx context.Context, email string) (domain.Attendee, error)
	UpdateAttendeeProfile(ctx context.Context, id string, name string, interests []string, skills []string) (domain.Attendee, error)

	SaveOrganiser(ctx context.Context, organiser domain.Organiser) error
	GetOrganiser(ctx context.Context, id string) (domain.Organiser, error)
	FindOrganiserByEmail(ctx context.Context, email string) (domain.Organiser, error)
	UpdateOrganiserProfile(ctx context.Context, id string, name string, organisation string) (domain.Organiser, error)

	SaveSpeaker(ctx context.Context, speaker domain.Speaker) error
	GetSpeaker(ctx context.Context, id string) (domain.Speaker, error)
	FindSpeakerByEmail(ctx context.Context, email string) (domain.Speaker, error)
	UpdateSpeakerProfile(ctx context.Context, id string, name string, bio string, topics []string) (domain.Speaker, error)

	SaveSponsor(ctx context.Context, sponsor domain.Sponsor) error
	GetSponsor(ctx context.Context, id string) (domain.Sponsor, error)
	FindSponsorByEmail(ctx context.Context, email string) (domain.Sponsor, error)
	UpdateSponsorProfile(ctx context.Context, id string, name string, company string) (domain.Sponsor, error)
}

type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(hash string, plain string) bool
}

type TokenMinter interface {
	Mint(userID string, role string) (string, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

type SignUpInput struct {
	Role         string
	Name         string
	Email        string
	Password     string
	Company      string
	Organisation string
}

type SignInInput struct {
	Role     string
	Email    string
	Password string
}

type SignInResult struct {
	UserID string
	Name   string
	Token  string
}

// Profile is the role-shaped read model; only the fields for the account's
// role are populated.
type Profile struct {
	UserID       string
	Role         string
	Name         string
	Email        string
	Interests    []string
	Skills       []string
	Organisation string
	Bio          string
	Topics       []string
	Company      string
}

// UpdateProfileInput carries the mutable fields per role; fields outside the
// account's role are ignored.
type UpdateProfileInput struct {
	Name         string
	Interests    []string
	Skills       []string
	Organisation string
	Bio          string
	Topics       []string
	Company      string
}
