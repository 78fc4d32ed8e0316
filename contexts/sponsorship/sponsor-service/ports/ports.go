package ports

import (
	"context"

	"confera/internal/domain"
)

// Booths is the store slice for sponsor booth reads and resource appends.
type Booths interface {
	GetSponsor(ctx context.Context, id string) (domain.Sponsor, error)
	AppendBoothResource(ctx context.Context, sponsorID string, resource domain.BoothResource) (domain.Sponsor, error)
}

type Booth struct {
	SponsorID       string
	Name            string
	Company         string
	Resources       []domain.BoothResource
	EventsSponsored []string
}

type AddResourceInput struct {
	SponsorID string
	Title     string
	URL       string
	Type      string
}
