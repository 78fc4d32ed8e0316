package application

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	domainerrors "confera/contexts/sponsorship/sponsor-service/domain/errors"
	"confera/contexts/sponsorship/sponsor-service/ports"
	"confera/internal/domain"
	"confera/internal/store"
)

type Service struct {
	Repo   ports.Booths
	Logger *slog.Logger
}

func (s Service) GetBooth(ctx context.Context, sponsorID string) (ports.Booth, error) {
	sponsor, err := s.Repo.GetSponsor(ctx, sponsorID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ports.Booth{}, domainerrors.ErrSponsorNotFound
		}
		return ports.Booth{}, err
	}
	return ports.Booth{
		SponsorID:       sponsor.ID,
		Name:            sponsor.Name,
		Company:         sponsor.Company,
		Resources:       sponsor.BoothResources,
		EventsSponsored: sponsor.EventsSponsored,
	}, nil
}

func (s Service) AddBoothResource(ctx context.Context, input ports.AddResourceInput) (ports.Booth, error) {
	title := strings.TrimSpace(input.Title)
	url := strings.TrimSpace(input.URL)
	kind := strings.TrimSpace(input.Type)
	if title == "" || url == "" || kind == "" {
		return ports.Booth{}, domainerrors.ErrInvalidResource
	}

	sponsor, err := s.Repo.AppendBoothResource(ctx, input.SponsorID, domain.BoothResource{
		Title: title,
		URL:   url,
		Type:  kind,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ports.Booth{}, domainerrors.ErrSponsorNotFound
		}
		return ports.Booth{}, err
	}

	ResolveLogger(s.Logger).Info("booth resource added",
		"event", "booth_resource_added",
		"module", "sponsorship/sponsor-service",
		"layer", "application",
		"sponsor_id", sponsor.ID,
		"resource_type", kind,
	)
	return ports.Booth{
		SponsorID:       sponsor.ID,
		Name:            sponsor.Name,
		Company:         sponsor.Company,
		Resources:       sponsor.BoothResources,
		EventsSponsored: sponsor.EventsSponsored,
	}, nil
}
