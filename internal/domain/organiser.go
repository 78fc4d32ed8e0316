package domain

import "time"

type OrganiserPermissions struct {
	CanEditEvents    bool
	CanManageContent bool
}

type Organiser struct {
	ID              string
	Name            string
	Email           string
	PasswordHash    string
	Role            string
	Organisation    string
	EventsManaged   []string
	Permissions     OrganiserPermissions
	AnalyticsAccess bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
