package domain

import "time"

type BoothResource struct {
	Title string
	URL   string
	Type  string
}

type SponsorAnalytics struct {
	BoothVisits       int
	ResourceDownloads int
}

type Sponsor struct {
	ID              string
	Name            string
	Email           string
	PasswordHash    string
	Role            string
	Company         string
	BoothResources  []BoothResource
	EventsSponsored []string
	Analytics       SponsorAnalytics
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
