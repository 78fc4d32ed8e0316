package application

import (
	"context"
	"errors"
	"testing"
	"time"

	domainerrors "confera/contexts/identity/accounts-service/domain/errors"
	"confera/contexts/identity/accounts-service/ports"
	"confera/internal/domain"
	"confera/internal/platform/auth"
	"confera/internal/store"
	"confera/internal/store/memory"
)

func newTestService() Service {
	return Service{
		Accounts: memory.NewStore(),
		Hasher:   auth.BcryptHasher{},
		Tokens:   auth.NewTokenService("test-signing-key", "test", time.Hour),
		Clock:    store.SystemClock{},
		IDGen:    store.UUIDGenerator{},
	}
}

func TestSignUpAndSignInRoundTrip(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	id, err := svc.SignUp(ctx, ports.SignUpInput{
		Role:     domain.RoleAttendee,
		Name:     "Alex Doe",
		Email:    "Alex@Example.com",
		Password: "Passw0rd!",
	})
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	if id == "" {
		t.Fatalf("expected a generated user id")
	}

	result, err := svc.SignIn(ctx, ports.SignInInput{
		Role:     domain.RoleAttendee,
		Email:    "alex@example.com",
		Password: "Passw0rd!",
	})
	if err != nil {
		t.Fatalf("signin failed: %v", err)
	}
	if result.UserID != id {
		t.Fatalf("expected user id %q, got %q", id, result.UserID)
	}
	if result.Token == "" {
		t.Fatalf("expected a signed token")
	}
	if result.Name != "Alex Doe" {
		t.Fatalf("unexpected name %q", result.Name)
	}
}

func TestSignUpDuplicateEmail(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	input := ports.SignUpInput{
		Role:     domain.RoleSpeaker,
		Name:     "Sam Ray",
		Email:    "sam@example.com",
		Password: "Passw0rd!",
	}
	if _, err := svc.SignUp(ctx, input); err != nil {
		t.Fatalf("first signup failed: %v", err)
	}
	if _, err := svc.SignUp(ctx, input); !errors.Is(err, domainerrors.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestSignUpValidation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	cases := []struct {
		name  string
		input ports.SignUpInput
		want  error
	}{
		{
			name:  "short name",
			input: ports.SignUpInput{Role: domain.RoleAttendee, Name: "Al", Email: "al@example.com", Password: "Passw0rd!"},
			want:  domainerrors.ErrInvalidInput,
		},
		{
			name:  "password without uppercase",
			input: ports.SignUpInput{Role: domain.RoleAttendee, Name: "Alex Doe", Email: "alex@example.com", Password: "passw0rd!"},
			want:  domainerrors.ErrInvalidInput,
		},
		{
			name:  "password without special character",
			input: ports.SignUpInput{Role: domain.RoleAttendee, Name: "Alex Doe", Email: "alex@example.com", Password: "Passw0rd1"},
			want:  domainerrors.ErrInvalidInput,
		},
		{
			name:  "sponsor without company",
			input: ports.SignUpInput{Role: domain.RoleSponsor, Name: "Pat Lee", Email: "pat@example.com", Password: "Passw0rd!"},
			want:  domainerrors.ErrInvalidInput,
		},
		{
			name:  "unknown role",
			input: ports.SignUpInput{Role: "admin", Name: "Alex Doe", Email: "alex@example.com", Password: "Passw0rd!"},
			want:  domainerrors.ErrUnsupportedRole,
		},
	}
	for _, tc := range cases {
		if _, err := svc.SignUp(ctx, tc.input); !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestSignInNeverEnumeratesAccounts(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.SignUp(ctx, ports.SignUpInput{
		Role:     domain.RoleOrganiser,
		Name:     "Org Anne",
		Email:    "anne@example.com",
		Password: "Passw0rd!",
	}); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	_, wrongPassword := svc.SignIn(ctx, ports.SignInInput{Role: domain.RoleOrganiser, Email: "anne@example.com", Password: "WrongPass!"})
	_, unknownEmail := svc.SignIn(ctx, ports.SignInInput{Role: domain.RoleOrganiser, Email: "nobody@example.com", Password: "Passw0rd!"})

	if !errors.Is(wrongPassword, domainerrors.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPassword)
	}
	if !errors.Is(unknownEmail, domainerrors.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", unknownEmail)
	}
}

func TestOrganiserSignUpDefaultsPermissions(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	id, err := svc.SignUp(ctx, ports.SignUpInput{
		Role:         domain.RoleOrganiser,
		Name:         "Org Anne",
		Email:        "anne@example.com",
		Password:     "Passw0rd!",
		Organisation: "Confera Ltd",
	})
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	organiser, err := svc.Accounts.GetOrganiser(ctx, id)
	if err != nil {
		t.Fatalf("get organiser failed: %v", err)
	}
	if !organiser.Permissions.CanEditEvents || !organiser.Permissions.CanManageContent {
		t.Fatalf("expected default permissions enabled, got %+v", organiser.Permissions)
	}
	if !organiser.AnalyticsAccess {
		t.Fatalf("expected analytics access by default")
	}
}

func TestUpdateProfile(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	id, err := svc.SignUp(ctx, ports.SignUpInput{
		Role:     domain.RoleAttendee,
		Name:     "Alex Doe",
		Email:    "alex@example.com",
		Password: "Passw0rd!",
	})
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	profile, err := svc.UpdateProfile(ctx, domain.RoleAttendee, id, ports.UpdateProfileInput{
		Name:      "Alex D.",
		Interests: []string{"go", "distributed systems"},
		Skills:    []string{"backend"},
	})
	if err != nil {
		t.Fatalf("update profile failed: %v", err)
	}
	if profile.Name != "Alex D." {
		t.Fatalf("unexpected name %q", profile.Name)
	}
	if len(profile.Interests) != 2 || profile.Interests[0] != "go" {
		t.Fatalf("unexpected interests %v", profile.Interests)
	}

	if _, err := svc.UpdateProfile(ctx, domain.RoleAttendee, "missing", ports.UpdateProfileInput{Name: "X Y"}); !errors.Is(err, domainerrors.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}
