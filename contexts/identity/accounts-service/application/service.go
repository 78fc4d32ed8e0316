package application

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"
	"unicode"

	domainerrors "confera/contexts/identity/accounts-service/domain/errors"
	"confera/contexts/identity/accounts-service/ports"
	"confera/internal/domain"
	"confera/internal/store"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type Service struct {
	Accounts ports.Accounts
	Hasher   ports.PasswordHasher
	Tokens   ports.TokenMinter
	Clock    ports.Clock
	IDGen    ports.IDGenerator
	Logger   *slog.Logger
}

type signUpPayload struct {
	Name     string `validate:"required,min=3,max=50"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

func (s Service) SignUp(ctx context.Context, input ports.SignUpInput) (string, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	payload := signUpPayload{Name: input.Name, Email: input.Email, Password: input.Password}
	if err := validate.Struct(payload); err != nil {
		return "", domainerrors.ErrInvalidInput
	}
	if !hasUppercase(input.Password) || !hasSpecial(input.Password) {
		return "", domainerrors.ErrInvalidInput
	}
	if input.Role == domain.RoleSponsor && strings.TrimSpace(input.Company) == "" {
		return "", domainerrors.ErrInvalidInput
	}

	if err := s.checkEmailFree(ctx, input.Role, input.Email); err != nil {
		return "", err
	}

	hash, err := s.Hasher.Hash(input.Password)
	if err != nil {
		return "", err
	}
	id, err := s.IDGen.NewID(ctx)
	if err != nil {
		return "", err
	}
	now := s.now()

	switch input.Role {
	case domain.RoleAttendee:
		err = s.Accounts.SaveAttendee(ctx, domain.Attendee{
			ID:           id,
			Name:         input.Name,
			Email:        input.Email,
			PasswordHash: hash,
			Role:         domain.RoleAttendee,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	case domain.RoleOrganiser:
		err = s.Accounts.SaveOrganiser(ctx, domain.Organiser{
			ID:           id,
			Name:         input.Name,
			Email:        input.Email,
			PasswordHash: hash,
			Role:         domain.RoleOrganiser,
			Organisation: strings.TrimSpace(input.Organisation),
			Permissions: domain.OrganiserPermissions{
				CanEditEvents:    true,
				CanManageContent: true,
			},
			AnalyticsAccess: true,
			CreatedAt:       now,
			UpdatedAt:       now,
		})
	case domain.RoleSpeaker:
		err = s.Accounts.SaveSpeaker(ctx, domain.Speaker{
			ID:           id,
			Name:         input.Name,
			Email:        input.Email,
			PasswordHash: hash,
			Role:         domain.RoleSpeaker,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	case domain.RoleSponsor:
		err = s.Accounts.SaveSponsor(ctx, domain.Sponsor{
			ID:           id,
			Name:         input.Name,
			Email:        input.Email,
			PasswordHash: hash,
			Role:         domain.RoleSponsor,
			Company:      strings.TrimSpace(input.Company),
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	default:
		return "", domainerrors.ErrUnsupportedRole
	}
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			return "", domainerrors.ErrEmailTaken
		}
		return "", err
	}

	ResolveLogger(s.Logger).Info("account created",
		"event", "account_created",
		"module", "identity/accounts-service",
		"layer", "application",
		"role", input.Role,
		"user_id", id,
	)
	return id, nil
}

func (s Service) SignIn(ctx context.Context, input ports.SignInInput) (ports.SignInResult, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || input.Password == "" {
		return ports.SignInResult{}, domainerrors.ErrInvalidCredentials
	}

	var (
		id   string
		name string
		hash string
		err  error
	)
	switch input.Role {
	case domain.RoleAttendee:
		var attendee domain.Attendee
		attendee, err = s.Accounts.FindAttendeeByEmail(ctx, email)
		id, name, hash = attendee.ID, attendee.Name, attendee.PasswordHash
	case domain.RoleOrganiser:
		var organiser domain.Organiser
		organiser, err = s.Accounts.FindOrganiserByEmail(ctx, email)
		id, name, hash = organiser.ID, organiser.Name, organiser.PasswordHash
	case domain.RoleSpeaker:
		var speaker domain.Speaker
		speaker, err = s.Accounts.FindSpeakerByEmail(ctx, email)
		id, name, hash = speaker.ID, speaker.Name, speaker.PasswordHash
	case domain.RoleSponsor:
		var sponsor domain.Sponsor
		sponsor, err = s.Accounts.FindSponsorByEmail(ctx, email)
		id, name, hash = sponsor.ID, sponsor.Name, sponsor.PasswordHash
	default:
		return ports.SignInResult{}, domainerrors.ErrUnsupportedRole
	}
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Same error for unknown email and wrong password.
			return ports.SignInResult{}, domainerrors.ErrInvalidCredentials
		}
		return ports.SignInResult{}, err
	}
	if !s.Hasher.Verify(hash, input.Password) {
		return ports.SignInResult{}, domainerrors.ErrInvalidCredentials
	}

	token, err := s.Tokens.Mint(id, input.Role)
	if err != nil {
		return ports.SignInResult{}, err
	}

	ResolveLogger(s.Logger).Info("account signed in",
		"event", "account_signed_in",
		"module", "identity/accounts-service",
		"layer", "application",
		"role", input.Role,
		"user_id", id,
	)
	return ports.SignInResult{UserID: id, Name: name, Token: token}, nil
}

func (s Service) GetProfile(ctx context.Context, role string, userID string) (ports.Profile, error) {
	switch role {
	case domain.RoleAttendee:
		attendee, err := s.Accounts.GetAttendee(ctx, userID)
		if err != nil {
			return ports.Profile{}, s.mapLookupErr(err)
		}
		return ports.Profile{
			UserID:    attendee.ID,
			Role:      role,
			Name:      attendee.Name,
			Email:     attendee.Email,
			Interests: attendee.Interests,
			Skills:    attendee.Skills,
		}, nil
	case domain.RoleOrganiser:
		organiser, err := s.Accounts.GetOrganiser(ctx, userID)
		if err != nil {
			return ports.Profile{}, s.mapLookupErr(err)
		}
		return ports.Profile{
			UserID:       organiser.ID,
			Role:         role,
			Name:         organiser.Name,
			Email:        organiser.Email,
			Organisation: organiser.Organisation,
		}, nil
	case domain.RoleSpeaker:
		speaker, err := s.Accounts.GetSpeaker(ctx, userID)
		if err != nil {
			return ports.Profile{}, s.mapLookupErr(err)
		}
		return ports.Profile{
			UserID: speaker.ID,
			Role:   role,
			Name:   speaker.Name,
			Email:  speaker.Email,
			Bio:    speaker.Bio,
			Topics: speaker.Topics,
		}, nil
	case domain.RoleSponsor:
		sponsor, err := s.Accounts.GetSponsor(ctx, userID)
		if err != nil {
			return ports.Profile{}, s.mapLookupErr(err)
		}
		return ports.Profile{
			UserID:  sponsor.ID,
			Role:    role,
			Name:    sponsor.Name,
			Email:   sponsor.Email,
			Company: sponsor.Company,
		}, nil
	default:
		return ports.Profile{}, domainerrors.ErrUnsupportedRole
	}
}

func (s Service) UpdateProfile(ctx context.Context, role string, userID string, input ports.UpdateProfileInput) (ports.Profile, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return ports.Profile{}, domainerrors.ErrInvalidInput
	}

	switch role {
	case domain.RoleAttendee:
		attendee, err := s.Accounts.UpdateAttendeeProfile(ctx, userID, name, input.Interests, input.Skills)
		if err != nil {
			return ports.Profile{}, s.mapLookupErr(err)
		}
		return ports.Profile{
			UserID:    attendee.ID,
			Role:      role,
			Name:      attendee.Name,
			Email:     attendee.Email,
			Interests: attendee.Interests,
			Skills:    attendee.Skills,
		}, nil
	case domain.RoleOrganiser:
		organiser, err := s.Accounts.UpdateOrganiserProfile(ctx, userID, name, strings.TrimSpace(input.Organisation))
		if err != nil {
			return ports.Profile{}, s.mapLookupErr(err)
		}
		return ports.Profile{
			UserID:       organiser.ID,
			Role:         role,
			Name:         organiser.Name,
			Email:        organiser.Email,
			Organisation: organiser.Organisation,
		}, nil
	case domain.RoleSpeaker:
		speaker, err := s.Accounts.UpdateSpeakerProfile(ctx, userID, name, strings.TrimSpace(input.Bio), input.Topics)
		if err != nil {
			return ports.Profile{}, s.mapLookupErr(err)
		}
		return ports.Profile{
			UserID: speaker.ID,
			Role:   role,
			Name:   speaker.Name,
			Email:  speaker.Email,
			Bio:    speaker.Bio,
			Topics: speaker.Topics,
		}, nil
	case domain.RoleSponsor:
		if strings.TrimSpace(input.Company) == "" {
			return ports.Profile{}, domainerrors.ErrInvalidInput
		}
		sponsor, err := s.Accounts.UpdateSponsorProfile(ctx, userID, name, strings.TrimSpace(input.Company))
		if err != nil {
			return ports.Profile{}, s.mapLookupErr(err)
		}
		return ports.Profile{
			UserID:  sponsor.ID,
			Role:    role,
			Name:    sponsor.Name,
			Email:   sponsor.Email,
			Company: sponsor.Company,
		}, nil
	default:
		return ports.Profile{}, domainerrors.ErrUnsupportedRole
	}
}

func (s Service) checkEmailFree(ctx context.Context, role string, email string) error {
	var err error
	switch role {
	case domain.RoleAttendee:
		_, err = s.Accounts.FindAttendeeByEmail(ctx, email)
	case domain.RoleOrganiser:
		_, err = s.Accounts.FindOrganiserByEmail(ctx, email)
	case domain.RoleSpeaker:
		_, err = s.Accounts.FindSpeakerByEmail(ctx, email)
	case domain.RoleSponsor:
		_, err = s.Accounts.FindSponsorByEmail(ctx, email)
	default:
		return domainerrors.ErrUnsupportedRole
	}
	if err == nil {
		return domainerrors.ErrEmailTaken
	}
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	return err
}

func (s Service) mapLookupErr(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return domainerrors.ErrAccountNotFound
	}
	return err
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}

func hasUppercase(password string) bool {
	for _, r := range password {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

func hasSpecial(password string) bool {
	for _, r := range password {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
