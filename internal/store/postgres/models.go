package postgres

import (
	"encoding/json"
	"time"

	"confera/internal/domain"
)

// Row models keep scalar fields as columns and document-shaped fields
// (id sets, inboxes, polls) as jsonb, mirroring the document layout the
// services work with.

type attendeeRow struct {
	ID               string `gorm:"primaryKey"`
	Name             string
	Email            string `gorm:"uniqueIndex"`
	PasswordHash     string
	Role             string
	Interests        []byte `gorm:"type:jsonb"`
	Skills           []byte `gorm:"type:jsonb"`
	EventsRegistered []byte `gorm:"type:jsonb"`
	Connections      []byte `gorm:"type:jsonb"`
	Notifications    []byte `gorm:"type:jsonb"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (attendeeRow) TableName() string { return "attendees" }

type eventRow struct {
	ID            string `gorm:"primaryKey"`
	Name          string
	Description   string
	Date          time.Time
	OrganiserID   string `gorm:"index"`
	Sessions      []byte `gorm:"type:jsonb"`
	Attendees     []byte `gorm:"type:jsonb"`
	Sponsors      []byte `gorm:"type:jsonb"`
	Notifications []byte `gorm:"type:jsonb"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (eventRow) TableName() string { return "events" }

type sessionRow struct {
	ID           string `gorm:"primaryKey"`
	Title        string
	Description  string
	Date         time.Time
	EventID      string `gorm:"index"`
	SpeakerID    string
	Participants []byte `gorm:"type:jsonb"`
	Polls        []byte `gorm:"type:jsonb"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (sessionRow) TableName() string { return "sessions" }

type speakerRow struct {
	ID                 string `gorm:"primaryKey"`
	Name               string
	Email              string `gorm:"uniqueIndex"`
	PasswordHash       string
	Role               string
	Bio                string
	Topics             []byte `gorm:"type:jsonb"`
	Sessions           []byte `gorm:"type:jsonb"`
	SessionsPresented  int
	AttendeeEngagement int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (speakerRow) TableName() string { return "speakers" }

type sponsorRow struct {
	ID                string `gorm:"primaryKey"`
	Name              string
	Email             string `gorm:"uniqueIndex"`
	PasswordHash      string
	Role              string
	Company           string
	BoothResources    []byte `gorm:"type:jsonb"`
	EventsSponsored   []byte `gorm:"type:jsonb"`
	BoothVisits       int
	ResourceDownloads int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (sponsorRow) TableName() string { return "sponsors" }

type organiserRow struct {
	ID               string `gorm:"primaryKey"`
	Name             string
	Email            string `gorm:"uniqueIndex"`
	PasswordHash     string
	Role             string
	Organisation     string
	EventsManaged    []byte `gorm:"type:jsonb"`
	CanEditEvents    bool
	CanManageContent bool
	AnalyticsAccess  bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (organiserRow) TableName() string { return "organisers" }

func marshalDoc(v any) []byte {
	raw, _ := json.Marshal(v)
	return raw
}

func unmarshalStrings(raw []byte) []string {
	var out []string
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &out)
	}
	return out
}

func unmarshalNotifications(raw []byte) []domain.Notification {
	var out []domain.Notification
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &out)
	}
	return out
}

func unmarshalPolls(raw []byte) []domain.Poll {
	var out []domain.Poll
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &out)
	}
	return out
}

func unmarshalBoothResources(raw []byte) []domain.BoothResource {
	var out []domain.BoothResource
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &out)
	}
	return out
}

func attendeeRowFromEntity(attendee domain.Attendee) attendeeRow {
	return attendeeRow{
		ID:               attendee.ID,
		Name:             attendee.Name,
		Email:            attendee.Email,
		PasswordHash:     attendee.PasswordHash,
		Role:             attendee.Role,
		Interests:        marshalDoc(attendee.Interests),
		Skills:           marshalDoc(attendee.Skills),
		EventsRegistered: marshalDoc(attendee.EventsRegistered),
		Connections:      marshalDoc(attendee.Connections),
		Notifications:    marshalDoc(attendee.Notifications),
		CreatedAt:        attendee.CreatedAt,
		UpdatedAt:        attendee.UpdatedAt,
	}
}

func (r attendeeRow) toEntity() domain.Attendee {
	return domain.Attendee{
		ID:               r.ID,
		Name:             r.Name,
		Email:            r.Email,
		PasswordHash:     r.PasswordHash,
		Role:             r.Role,
		Interests:        unmarshalStrings(r.Interests),
		Skills:           unmarshalStrings(r.Skills),
		EventsRegistered: unmarshalStrings(r.EventsRegistered),
		Connections:      unmarshalStrings(r.Connections),
		Notifications:    unmarshalNotifications(r.Notifications),
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

func eventRowFromEntity(event domain.Event) eventRow {
	return eventRow{
		ID:            event.ID,
		Name:          event.Name,
		Description:   event.Description,
		Date:          event.Date,
		OrganiserID:   event.OrganiserID,
		Sessions:      marshalDoc(event.Sessions),
		Attendees:     marshalDoc(event.Attendees),
		Sponsors:      marshalDoc(event.Sponsors),
		Notifications: marshalDoc(event.Notifications),
		CreatedAt:     event.CreatedAt,
		UpdatedAt:     event.UpdatedAt,
	}
}

func (r eventRow) toEntity() domain.Event {
	return domain.Event{
		ID:            r.ID,
		Name:          r.Name,
		Description:   r.Description,
		Date:          r.Date,
		OrganiserID:   r.OrganiserID,
		Sessions:      unmarshalStrings(r.Sessions),
		Attendees:     unmarshalStrings(r.Attendees),
		Sponsors:      unmarshalStrings(r.Sponsors),
		Notifications: unmarshalStrings(r.Notifications),
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func sessionRowFromEntity(session domain.Session) sessionRow {
	return sessionRow{
		ID:           session.ID,
		Title:        session.Title,
		Description:  session.Description,
		Date:         session.Date,
		EventID:      session.EventID,
		SpeakerID:    session.SpeakerID,
		Participants: marshalDoc(session.Participants),
		Polls:        marshalDoc(session.Polls),
		CreatedAt:    session.CreatedAt,
		UpdatedAt:    session.UpdatedAt,
	}
}

func (r sessionRow) toEntity() domain.Session {
	return domain.Session{
		ID:           r.ID,
		Title:        r.Title,
		Description:  r.Description,
		Date:         r.Date,
		EventID:      r.EventID,
		SpeakerID:    r.SpeakerID,
		Participants: unmarshalStrings(r.Participants),
		Polls:        unmarshalPolls(r.Polls),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func speakerRowFromEntity(speaker domain.Speaker) speakerRow {
	return speakerRow{
		ID:                 speaker.ID,
		Name:               speaker.Name,
		Email:              speaker.Email,
		PasswordHash:       speaker.PasswordHash,
		Role:               speaker.Role,
		Bio:                speaker.Bio,
		Topics:             marshalDoc(speaker.Topics),
		Sessions:           marshalDoc(speaker.Sessions),
		SessionsPresented:  speaker.Analytics.SessionsPresented,
		AttendeeEngagement: speaker.Analytics.AttendeeEngagement,
		CreatedAt:          speaker.CreatedAt,
		UpdatedAt:          speaker.UpdatedAt,
	}
}

func (r speakerRow) toEntity() domain.Speaker {
	return domain.Speaker{
		ID:           r.ID,
		Name:         r.Name,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		Role:         r.Role,
		Bio:          r.Bio,
		Topics:       unmarshalStrings(r.Topics),
		Sessions:     unmarshalStrings(r.Sessions),
		Analytics: domain.SpeakerAnalytics{
			SessionsPresented:  r.SessionsPresented,
			AttendeeEngagement: r.AttendeeEngagement,
		},
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func sponsorRowFromEntity(sponsor domain.Sponsor) sponsorRow {
	return sponsorRow{
		ID:                sponsor.ID,
		Name:              sponsor.Name,
		Email:             sponsor.Email,
		PasswordHash:      sponsor.PasswordHash,
		Role:              sponsor.Role,
		Company:           sponsor.Company,
		BoothResources:    marshalDoc(sponsor.BoothResources),
		EventsSponsored:   marshalDoc(sponsor.EventsSponsored),
		BoothVisits:       sponsor.Analytics.BoothVisits,
		ResourceDownloads: sponsor.Analytics.ResourceDownloads,
		CreatedAt:         sponsor.CreatedAt,
		UpdatedAt:         sponsor.UpdatedAt,
	}
}

func (r sponsorRow) toEntity() domain.Sponsor {
	return domain.Sponsor{
		ID:              r.ID,
		Name:            r.Name,
		Email:           r.Email,
		PasswordHash:    r.PasswordHash,
		Role:            r.Role,
		Company:         r.Company,
		BoothResources:  unmarshalBoothResources(r.BoothResources),
		EventsSponsored: unmarshalStrings(r.EventsSponsored),
		Analytics: domain.SponsorAnalytics{
			BoothVisits:       r.BoothVisits,
			ResourceDownloads: r.ResourceDownloads,
		},
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func organiserRowFromEntity(organiser domain.Organiser) organiserRow {
	return organiserRow{
		ID:               organiser.ID,
		Name:             organiser.Name,
		Email:            organiser.Email,
		PasswordHash:     organiser.PasswordHash,
		Role:             organiser.Role,
		Organisation:     organiser.Organisation,
		EventsManaged:    marshalDoc(organiser.EventsManaged),
		CanEditEvents:    organiser.Permissions.CanEditEvents,
		CanManageContent: organiser.Permissions.CanManageContent,
		AnalyticsAccess:  organiser.AnalyticsAccess,
		CreatedAt:        organiser.CreatedAt,
		UpdatedAt:        organiser.UpdatedAt,
	}
}

func (r organiserRow) toEntity() domain.Organiser {
	return domain.Organiser{
		ID:            r.ID,
		Name:          r.Name,
		Email:         r.Email,
		PasswordHash:  r.PasswordHash,
		Role:          r.Role,
		Organisation:  r.Organisation,
		EventsManaged: unmarshalStrings(r.EventsManaged),
		Permissions: domain.OrganiserPermissions{
			CanEditEvents:    r.CanEditEvents,
			CanManageContent: r.CanManageContent,
		},
		AnalyticsAccess: r.AnalyticsAccess,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}
