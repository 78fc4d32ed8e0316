package postgres

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"confera/internal/domain"
	"confera/internal/store"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store implements every collection interface over one gorm handle. Document
// rewrites (id sets, inboxes, polls) run inside a transaction holding a row
// lock; counters use server-side increments so application code never
// read-modify-writes them.
type Store struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewStore(db *gorm.DB, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{db: db, logger: logger}
}

var _ store.Store = (*Store)(nil)

// AutoMigrate creates or updates the six collection tables.
func (s *Store) AutoMigrate() error {
	return s.db.AutoMigrate(
		&attendeeRow{},
		&eventRow{},
		&sessionRow{},
		&speakerRow{},
		&sponsorRow{},
		&organiserRow{},
	)
}

func (s *Store) logError(event string, err error, args ...any) error {
	args = append([]any{
		"event", event,
		"module", "internal/store/postgres",
		"layer", "adapter",
		"error", err.Error(),
	}, args...)
	s.logger.Error("store operation failed", args...)
	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func containsID(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

func (s *Store) upsert(ctx context.Context, event string, row any) error {
	create := s.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(row)
	if create.Error != nil {
		if isUniqueViolation(create.Error) {
			return store.ErrConflict
		}
		return s.logError(event, create.Error)
	}
	return nil
}

func (s *Store) withAttendee(ctx context.Context, id string, mutate func(*attendeeRow) error) (domain.Attendee, error) {
	var row attendeeRow
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return store.ErrNotFound
			}
			return s.logError("store_attendee_lock_failed", err, "attendee_id", id)
		}
		if err := mutate(&row); err != nil {
			return err
		}
		row.UpdatedAt = time.Now().UTC()
		return tx.Save(&row).Error
	})
	if err != nil {
		return domain.Attendee{}, err
	}
	return row.toEntity(), nil
}

func (s *Store) withEvent(ctx context.Context, id string, mutate func(*eventRow) error) (domain.Event, error) {
	var row eventRow
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return store.ErrNotFound
			}
			return s.logError("store_event_lock_failed", err, "event_id", id)
		}
		if err := mutate(&row); err != nil {
			return err
		}
		row.UpdatedAt = time.Now().UTC()
		return tx.Save(&row).Error
	})
	if err != nil {
		return domain.Event{}, err
	}
	return row.toEntity(), nil
}

func (s *Store) withSession(ctx context.Context, id string, mutate func(*sessionRow) error) (domain.Session, error) {
	var row sessionRow
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return store.ErrNotFound
			}
			return s.logError("store_session_lock_failed", err, "session_id", id)
		}
		if err := mutate(&row); err != nil {
			return err
		}
		row.UpdatedAt = time.Now().UTC()
		return tx.Save(&row).Error
	})
	if err != nil {
		return domain.Session{}, err
	}
	return row.toEntity(), nil
}

func (s *Store) withSpeaker(ctx context.Context, id string, mutate func(*speakerRow) error) (domain.Speaker, error) {
	var row speakerRow
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return store.ErrNotFound
			}
			return s.logError("store_speaker_lock_failed", err, "speaker_id", id)
		}
		if err := mutate(&row); err != nil {
			return err
		}
		row.UpdatedAt = time.Now().UTC()
		return tx.Save(&row).Error
	})
	if err != nil {
		return domain.Speaker{}, err
	}
	return row.toEntity(), nil
}

func (s *Store) withSponsor(ctx context.Context, id string, mutate func(*sponsorRow) error) (domain.Sponsor, error) {
	var row sponsorRow
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return store.ErrNotFound
			}
			return s.logError("store_sponsor_lock_failed", err, "sponsor_id", id)
		}
		if err := mutate(&row); err != nil {
			return err
		}
		row.UpdatedAt = time.Now().UTC()
		return tx.Save(&row).Error
	})
	if err != nil {
		return domain.Sponsor{}, err
	}
	return row.toEntity(), nil
}

func (s *Store) withOrganiser(ctx context.Context, id string, mutate func(*organiserRow) error) (domain.Organiser, error) {
	var row organiserRow
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return store.ErrNotFound
			}
			return s.logError("store_organiser_lock_failed", err, "organiser_id", id)
		}
		if err := mutate(&row); err != nil {
			return err
		}
		row.UpdatedAt = time.Now().UTC()
		return tx.Save(&row).Error
	})
	if err != nil {
		return domain.Organiser{}, err
	}
	return row.toEntity(), nil
}

func (s *Store) SaveAttendee(ctx context.Context, attendee domain.Attendee) error {
	row := attendeeRowFromEntity(attendee)
	return s.upsert(ctx, "store_save_attendee_failed", &row)
}

func (s *Store) GetAttendee(ctx context.Context, id string) (domain.Attendee, error) {
	var row attendeeRow
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Attendee{}, store.ErrNotFound
		}
		return domain.Attendee{}, s.logError("store_get_attendee_failed", err, "attendee_id", id)
	}
	return row.toEntity(), nil
}

func (s *Store) FindAttendeeByEmail(ctx context.Context, email string) (domain.Attendee, error) {
	var row attendeeRow
	if err := s.db.WithContext(ctx).Where("lower(email) = lower(?)", email).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Attendee{}, store.ErrNotFound
		}
		return domain.Attendee{}, s.logError("store_find_attendee_failed", err)
	}
	return row.toEntity(), nil
}

func (s *Store) UpdateAttendeeProfile(ctx context.Context, id string, name string, interests []string, skills []string) (domain.Attendee, error) {
	return s.withAttendee(ctx, id, func(row *attendeeRow) error {
		row.Name = name
		row.Interests = marshalDoc(interests)
		row.Skills = marshalDoc(skills)
		return nil
	})
}

func (s *Store) AddRegisteredEvent(ctx context.Context, attendeeID string, eventID string) (bool, error) {
	added := false
	_, err := s.withAttendee(ctx, attendeeID, func(row *attendeeRow) error {
		ids := unmarshalStrings(row.EventsRegistered)
		if containsID(ids, eventID) {
			return nil
		}
		added = true
		row.EventsRegistered = marshalDoc(append(ids, eventID))
		return nil
	})
	return added, err
}

func (s *Store) AppendAttendeeNotification(ctx context.Context, attendeeID string, notification domain.Notification) error {
	_, err := s.withAttendee(ctx, attendeeID, func(row *attendeeRow) error {
		inbox := unmarshalNotifications(row.Notifications)
		row.Notifications = marshalDoc(append(inbox, notification))
		return nil
	})
	return err
}

func (s *Store) MarkAttendeeNotificationsRead(ctx context.Context, attendeeID string) ([]domain.Notification, error) {
	attendee, err := s.withAttendee(ctx, attendeeID, func(row *attendeeRow) error {
		inbox := unmarshalNotifications(row.Notifications)
		for i := range inbox {
			inbox[i].Read = true
		}
		row.Notifications = marshalDoc(inbox)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return attendee.Notifications, nil
}

func (s *Store) SaveEvent(ctx context.Context, event domain.Event) error {
	row := eventRowFromEntity(event)
	return s.upsert(ctx, "store_save_event_failed", &row)
}

func (s *Store) GetEvent(ctx context.Context, id string) (domain.Event, error) {
	var row eventRow
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Event{}, store.ErrNotFound
		}
		return domain.Event{}, s.logError("store_get_event_failed", err, "event_id", id)
	}
	return row.toEntity(), nil
}

func (s *Store) ListEvents(ctx context.Context) ([]domain.Event, error) {
	var rows []eventRow
	if err := s.db.WithContext(ctx).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, s.logError("store_list_events_failed", err)
	}
	events := make([]domain.Event, 0, len(rows))
	for _, row := range rows {
		events = append(events, row.toEntity())
	}
	return events, nil
}

func (s *Store) UpdateEventDetails(ctx context.Context, id string, name string, description string, date time.Time) (domain.Event, error) {
	return s.withEvent(ctx, id, func(row *eventRow) error {
		row.Name = name
		row.Description = description
		row.Date = date
		return nil
	})
}

func (s *Store) DeleteEvent(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&eventRow{})
	if res.Error != nil {
		return s.logError("store_delete_event_failed", res.Error, "event_id", id)
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) AddEventAttendee(ctx context.Context, eventID string, attendeeID string) (bool, error) {
	added := false
	_, err := s.withEvent(ctx, eventID, func(row *eventRow) error {
		ids := unmarshalStrings(row.Attendees)
		if containsID(ids, attendeeID) {
			return nil
		}
		added = true
		row.Attendees = marshalDoc(append(ids, attendeeID))
		return nil
	})
	return added, err
}

func (s *Store) AddEventSession(ctx context.Context, eventID string, sessionID string) (bool, error) {
	added := false
	_, err := s.withEvent(ctx, eventID, func(row *eventRow) error {
		ids := unmarshalStrings(row.Sessions)
		if containsID(ids, sessionID) {
			return nil
		}
		added = true
		row.Sessions = marshalDoc(append(ids, sessionID))
		return nil
	})
	return added, err
}

func (s *Store) AppendEventNotification(ctx context.Context, eventID string, message string) (domain.Event, error) {
	return s.withEvent(ctx, eventID, func(row *eventRow) error {
		log := unmarshalStrings(row.Notifications)
		row.Notifications = marshalDoc(append(log, message))
		return nil
	})
}

func (s *Store) SaveSession(ctx context.Context, session domain.Session) error {
	row := sessionRowFromEntity(session)
	return s.upsert(ctx, "store_save_session_failed", &row)
}

func (s *Store) GetSession(ctx context.Context, id string) (domain.Session, error) {
	var row sessionRow
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Session{}, store.ErrNotFound
		}
		return domain.Session{}, s.logError("store_get_session_failed", err, "session_id", id)
	}
	return row.toEntity(), nil
}

func (s *Store) ListSessionsByEvent(ctx context.Context, eventID string) ([]domain.Session, error) {
	var rows []sessionRow
	if err := s.db.WithContext(ctx).Where("event_id = ?", eventID).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, s.logError("store_list_sessions_failed", err, "event_id", eventID)
	}
	sessions := make([]domain.Session, 0, len(rows))
	for _, row := range rows {
		sessions = append(sessions, row.toEntity())
	}
	return sessions, nil
}

func (s *Store) UpdateSessionDetails(ctx context.Context, id string, title string, description string, date time.Time) (domain.Session, error) {
	return s.withSession(ctx, id, func(row *sessionRow) error {
		row.Title = title
		row.Description = description
		row.Date = date
		return nil
	})
}

func (s *Store) DeleteSession(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&sessionRow{})
	if res.Error != nil {
		return s.logError("store_delete_session_failed", res.Error, "session_id", id)
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) SetSessionSpeaker(ctx context.Context, sessionID string, speakerID string) error {
	_, err := s.withSession(ctx, sessionID, func(row *sessionRow) error {
		row.SpeakerID = speakerID
		return nil
	})
	return err
}

func (s *Store) AddSessionParticipant(ctx context.Context, sessionID string, attendeeID string) (bool, error) {
	added := false
	_, err := s.withSession(ctx, sessionID, func(row *sessionRow) error {
		ids := unmarshalStrings(row.Participants)
		if containsID(ids, attendeeID) {
			return nil
		}
		added = true
		row.Participants = marshalDoc(append(ids, attendeeID))
		return nil
	})
	return added, err
}

func (s *Store) AppendSessionPoll(ctx context.Context, sessionID string, poll domain.Poll) (domain.Session, error) {
	return s.withSession(ctx, sessionID, func(row *sessionRow) error {
		polls := unmarshalPolls(row.Polls)
		row.Polls = marshalDoc(append(polls, poll))
		return nil
	})
}

func (s *Store) IncrementPollResponse(ctx context.Context, sessionID string, pollID string, option string, delta int) (domain.Poll, error) {
	var updated domain.Poll
	_, err := s.withSession(ctx, sessionID, func(row *sessionRow) error {
		polls := unmarshalPolls(row.Polls)
		for i := range polls {
			if polls[i].ID != pollID {
				continue
			}
			if _, declared := polls[i].Responses[option]; !declared {
				return store.ErrNotFound
			}
			polls[i].Responses[option] += delta
			updated = polls[i]
			row.Polls = marshalDoc(polls)
			return nil
		}
		return store.ErrNotFound
	})
	if err != nil {
		return domain.Poll{}, err
	}
	return updated, nil
}

func (s *Store) SaveSpeaker(ctx context.Context, speaker domain.Speaker) error {
	row := speakerRowFromEntity(speaker)
	return s.upsert(ctx, "store_save_speaker_failed", &row)
}

func (s *Store) GetSpeaker(ctx context.Context, id string) (domain.Speaker, error) {
	var row speakerRow
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Speaker{}, store.ErrNotFound
		}
		return domain.Speaker{}, s.logError("store_get_speaker_failed", err, "speaker_id", id)
	}
	return row.toEntity(), nil
}

func (s *Store) FindSpeakerByEmail(ctx context.Context, email string) (domain.Speaker, error) {
	var row speakerRow
	if err := s.db.WithContext(ctx).Where("lower(email) = lower(?)", email).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Speaker{}, store.ErrNotFound
		}
		return domain.Speaker{}, s.logError("store_find_speaker_failed", err)
	}
	return row.toEntity(), nil
}

func (s *Store) ListSpeakers(ctx context.Context) ([]domain.Speaker, error) {
	var rows []speakerRow
	if err := s.db.WithContext(ctx).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, s.logError("store_list_speakers_failed", err)
	}
	speakers := make([]domain.Speaker, 0, len(rows))
	for _, row := range rows {
		speakers = append(speakers, row.toEntity())
	}
	return speakers, nil
}

func (s *Store) UpdateSpeakerProfile(ctx context.Context, id string, name string, bio string, topics []string) (domain.Speaker, error) {
	return s.withSpeaker(ctx, id, func(row *speakerRow) error {
		row.Name = name
		row.Bio = bio
		row.Topics = marshalDoc(topics)
		return nil
	})
}

func (s *Store) AddSpeakerSession(ctx context.Context, speakerID string, sessionID string) (bool, error) {
	added := false
	_, err := s.withSpeaker(ctx, speakerID, func(row *speakerRow) error {
		ids := unmarshalStrings(row.Sessions)
		if containsID(ids, sessionID) {
			return nil
		}
		added = true
		row.Sessions = marshalDoc(append(ids, sessionID))
		return nil
	})
	return added, err
}

func (s *Store) IncrementSessionsPresented(ctx context.Context, speakerID string, delta int) error {
	return s.incrementSpeakerCounter(ctx, speakerID, "sessions_presented", delta)
}

func (s *Store) IncrementAttendeeEngagement(ctx context.Context, speakerID string, delta int) error {
	return s.incrementSpeakerCounter(ctx, speakerID, "attendee_engagement", delta)
}

func (s *Store) incrementSpeakerCounter(ctx context.Context, speakerID string, column string, delta int) error {
	res := s.db.WithContext(ctx).Model(&speakerRow{}).
		Where("id = ?", speakerID).
		UpdateColumns(map[string]any{
			column:       gorm.Expr(column+" + ?", delta),
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return s.logError("store_increment_speaker_counter_failed", res.Error,
			"speaker_id", speakerID,
			"column", column,
		)
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) SaveSponsor(ctx context.Context, sponsor domain.Sponsor) error {
	row := sponsorRowFromEntity(sponsor)
	return s.upsert(ctx, "store_save_sponsor_failed", &row)
}

func (s *Store) GetSponsor(ctx context.Context, id string) (domain.Sponsor, error) {
	var row sponsorRow
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Sponsor{}, store.ErrNotFound
		}
		return domain.Sponsor{}, s.logError("store_get_sponsor_failed", err, "sponsor_id", id)
	}
	return row.toEntity(), nil
}

func (s *Store) FindSponsorByEmail(ctx context.Context, email string) (domain.Sponsor, error) {
	var row sponsorRow
	if err := s.db.WithContext(ctx).Where("lower(email) = lower(?)", email).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Sponsor{}, store.ErrNotFound
		}
		return domain.Sponsor{}, s.logError("store_find_sponsor_failed", err)
	}
	return row.toEntity(), nil
}

func (s *Store) UpdateSponsorProfile(ctx context.Context, id string, name string, company string) (domain.Sponsor, error) {
	return s.withSponsor(ctx, id, func(row *sponsorRow) error {
		row.Name = name
		row.Company = company
		return nil
	})
}

func (s *Store) AppendBoothResource(ctx context.Context, sponsorID string, resource domain.BoothResource) (domain.Sponsor, error) {
	return s.withSponsor(ctx, sponsorID, func(row *sponsorRow) error {
		resources := unmarshalBoothResources(row.BoothResources)
		row.BoothResources = marshalDoc(append(resources, resource))
		return nil
	})
}

func (s *Store) SaveOrganiser(ctx context.Context, organiser domain.Organiser) error {
	row := organiserRowFromEntity(organiser)
	return s.upsert(ctx, "store_save_organiser_failed", &row)
}

func (s *Store) GetOrganiser(ctx context.Context, id string) (domain.Organiser, error) {
	var row organiserRow
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Organiser{}, store.ErrNotFound
		}
		return domain.Organiser{}, s.logError("store_get_organiser_failed", err, "organiser_id", id)
	}
	return row.toEntity(), nil
}

func (s *Store) FindOrganiserByEmail(ctx context.Context, email string) (domain.Organiser, error) {
	var row organiserRow
	if err := s.db.WithContext(ctx).Where("lower(email) = lower(?)", email).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Organiser{}, store.ErrNotFound
		}
		return domain.Organiser{}, s.logError("store_find_organiser_failed", err)
	}
	return row.toEntity(), nil
}

func (s *Store) UpdateOrganiserProfile(ctx context.Context, id string, name string, organisation string) (domain.Organiser, error) {
	return s.withOrganiser(ctx, id, func(row *organiserRow) error {
		row.Name = name
		row.Organisation = organisation
		return nil
	})
}

func (s *Store) AddManagedEvent(ctx context.Context, organiserID string, eventID string) (bool, error) {
	added := false
	_, err := s.withOrganiser(ctx, organiserID, func(row *organiserRow) error {
		ids := unmarshalStrings(row.EventsManaged)
		if containsID(ids, eventID) {
			return nil
		}
		added = true
		row.EventsManaged = marshalDoc(append(ids, eventID))
		return nil
	})
	return added, err
}
