package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"confera/internal/domain"
	"confera/internal/store"
)

// Store keeps every collection in process memory behind one RWMutex. It
// favors clarity over performance and backs both tests and DSN-less runs.
type Store struct {
	mu         sync.RWMutex
	attendees  map[string]domain.Attendee
	events     map[string]domain.Event
	sessions   map[string]domain.Session
	speakers   map[string]domain.Speaker
	sponsors   map[string]domain.Sponsor
	organisers map[string]domain.Organiser
}

func NewStore() *Store {
	return &Store{
		attendees:  make(map[string]domain.Attendee),
		events:     make(map[string]domain.Event),
		sessions:   make(map[string]domain.Session),
		speakers:   make(map[string]domain.Speaker),
		sponsors:   make(map[string]domain.Sponsor),
		organisers: make(map[string]domain.Organiser),
	}
}

var _ store.Store = (*Store)(nil)

func (s *Store) SaveAttendee(_ context.Context, attendee domain.Attendee) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attendees[attendee.ID] = cloneAttendee(attendee)
	return nil
}

func (s *Store) GetAttendee(_ context.Context, id string) (domain.Attendee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	attendee, ok := s.attendees[id]
	if !ok {
		return domain.Attendee{}, store.ErrNotFound
	}
	return cloneAttendee(attendee), nil
}

func (s *Store) FindAttendeeByEmail(_ context.Context, email string) (domain.Attendee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, attendee := range s.attendees {
		if strings.EqualFold(attendee.Email, email) {
			return cloneAttendee(attendee), nil
		}
	}
	return domain.Attendee{}, store.ErrNotFound
}

func (s *Store) UpdateAttendeeProfile(_ context.Context, id string, name string, interests []string, skills []string) (domain.Attendee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	attendee, ok := s.attendees[id]
	if !ok {
		return domain.Attendee{}, store.ErrNotFound
	}
	attendee.Name = name
	attendee.Interests = append([]string(nil), interests...)
	attendee.Skills = append([]string(nil), skills...)
	attendee.UpdatedAt = time.Now().UTC()
	s.attendees[id] = attendee
	return cloneAttendee(attendee), nil
}

func (s *Store) AddRegisteredEvent(_ context.Context, attendeeID string, eventID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	attendee, ok := s.attendees[attendeeID]
	if !ok {
		return false, store.ErrNotFound
	}
	if containsID(attendee.EventsRegistered, eventID) {
		return false, nil
	}
	attendee.EventsRegistered = append(attendee.EventsRegistered, eventID)
	attendee.UpdatedAt = time.Now().UTC()
	s.attendees[attendeeID] = attendee
	return true, nil
}

func (s *Store) AppendAttendeeNotification(_ context.Context, attendeeID string, notification domain.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	attendee, ok := s.attendees[attendeeID]
	if !ok {
		return store.ErrNotFound
	}
	attendee.Notifications = append(attendee.Notifications, notification)
	attendee.UpdatedAt = time.Now().UTC()
	s.attendees[attendeeID] = attendee
	return nil
}

func (s *Store) MarkAttendeeNotificationsRead(_ context.Context, attendeeID string) ([]domain.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	attendee, ok := s.attendees[attendeeID]
	if !ok {
		return nil, store.ErrNotFound
	}
	for i := range attendee.Notifications {
		attendee.Notifications[i].Read = true
	}
	attendee.UpdatedAt = time.Now().UTC()
	s.attendees[attendeeID] = attendee
	return append([]domain.Notification(nil), attendee.Notifications...), nil
}

func (s *Store) SaveEvent(_ context.Context, event domain.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events[event.ID] = cloneEvent(event)
	return nil
}

func (s *Store) GetEvent(_ context.Context, id string) (domain.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	event, ok := s.events[id]
	if !ok {
		return domain.Event{}, store.ErrNotFound
	}
	return cloneEvent(event), nil
}

func (s *Store) ListEvents(_ context.Context) ([]domain.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	events := make([]domain.Event, 0, len(s.events))
	for _, event := range s.events {
		events = append(events, cloneEvent(event))
	}
	sortByCreatedAt(events, func(e domain.Event) time.Time { return e.CreatedAt })
	return events, nil
}

func (s *Store) UpdateEventDetails(_ context.Context, id string, name string, description string, date time.Time) (domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	event, ok := s.events[id]
	if !ok {
		return domain.Event{}, store.ErrNotFound
	}
	event.Name = name
	event.Description = description
	event.Date = date
	event.UpdatedAt = time.Now().UTC()
	s.events[id] = event
	return cloneEvent(event), nil
}

func (s *Store) DeleteEvent(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.events[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.events, id)
	return nil
}

func (s *Store) AddEventAttendee(_ context.Context, eventID string, attendeeID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	event, ok := s.events[eventID]
	if !ok {
		return false, store.ErrNotFound
	}
	if containsID(event.Attendees, attendeeID) {
		return false, nil
	}
	event.Attendees = append(event.Attendees, attendeeID)
	event.UpdatedAt = time.Now().UTC()
	s.events[eventID] = event
	return true, nil
}

func (s *Store) AddEventSession(_ context.Context, eventID string, sessionID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	event, ok := s.events[eventID]
	if !ok {
		return false, store.ErrNotFound
	}
	if containsID(event.Sessions, sessionID) {
		return false, nil
	}
	event.Sessions = append(event.Sessions, sessionID)
	event.UpdatedAt = time.Now().UTC()
	s.events[eventID] = event
	return true, nil
}

func (s *Store) AppendEventNotification(_ context.Context, eventID string, message string) (domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	event, ok := s.events[eventID]
	if !ok {
		return domain.Event{}, store.ErrNotFound
	}
	event.Notifications = append(event.Notifications, message)
	event.UpdatedAt = time.Now().UTC()
	s.events[eventID] = event
	return cloneEvent(event), nil
}

func (s *Store) SaveSession(_ context.Context, session domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = cloneSession(session)
	return nil
}

func (s *Store) GetSession(_ context.Context, id string) (domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return domain.Session{}, store.ErrNotFound
	}
	return cloneSession(session), nil
}

func (s *Store) ListSessionsByEvent(_ context.Context, eventID string) ([]domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sessions := make([]domain.Session, 0)
	for _, session := range s.sessions {
		if session.EventID == eventID {
			sessions = append(sessions, cloneSession(session))
		}
	}
	sortByCreatedAt(sessions, func(sn domain.Session) time.Time { return sn.CreatedAt })
	return sessions, nil
}

func (s *Store) UpdateSessionDetails(_ context.Context, id string, title string, description string, date time.Time) (domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return domain.Session{}, store.ErrNotFound
	}
	session.Title = title
	session.Description = description
	session.Date = date
	session.UpdatedAt = time.Now().UTC()
	s.sessions[id] = session
	return cloneSession(session), nil
}

func (s *Store) DeleteSession(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.sessions, id)
	return nil
}

func (s *Store) SetSessionSpeaker(_ context.Context, sessionID string, speakerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return store.ErrNotFound
	}
	session.SpeakerID = speakerID
	session.UpdatedAt = time.Now().UTC()
	s.sessions[sessionID] = session
	return nil
}

func (s *Store) AddSessionParticipant(_ context.Context, sessionID string, attendeeID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return false, store.ErrNotFound
	}
	if containsID(session.Participants, attendeeID) {
		return false, nil
	}
	session.Participants = append(session.Participants, attendeeID)
	session.UpdatedAt = time.Now().UTC()
	s.sessions[sessionID] = session
	return true, nil
}

func (s *Store) AppendSessionPoll(_ context.Context, sessionID string, poll domain.Poll) (domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return domain.Session{}, store.ErrNotFound
	}
	session.Polls = append(session.Polls, clonePoll(poll))
	session.UpdatedAt = time.Now().UTC()
	s.sessions[sessionID] = session
	return cloneSession(session), nil
}

func (s *Store) IncrementPollResponse(_ context.Context, sessionID string, pollID string, option string, delta int) (domain.Poll, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return domain.Poll{}, store.ErrNotFound
	}
	for i := range session.Polls {
		if session.Polls[i].ID != pollID {
			continue
		}
		if _, declared := session.Polls[i].Responses[option]; !declared {
			return domain.Poll{}, store.ErrNotFound
		}
		session.Polls[i].Responses[option] += delta
		session.UpdatedAt = time.Now().UTC()
		s.sessions[sessionID] = session
		return clonePoll(session.Polls[i]), nil
	}
	return domain.Poll{}, store.ErrNotFound
}

func (s *Store) SaveSpeaker(_ context.Context, speaker domain.Speaker) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.speakers[speaker.ID] = cloneSpeaker(speaker)
	return nil
}

func (s *Store) GetSpeaker(_ context.Context, id string) (domain.Speaker, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	speaker, ok := s.speakers[id]
	if !ok {
		return domain.Speaker{}, store.ErrNotFound
	}
	return cloneSpeaker(speaker), nil
}

func (s *Store) FindSpeakerByEmail(_ context.Context, email string) (domain.Speaker, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, speaker := range s.speakers {
		if strings.EqualFold(speaker.Email, email) {
			return cloneSpeaker(speaker), nil
		}
	}
	return domain.Speaker{}, store.ErrNotFound
}

func (s *Store) ListSpeakers(_ context.Context) ([]domain.Speaker, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	speakers := make([]domain.Speaker, 0, len(s.speakers))
	for _, speaker := range s.speakers {
		speakers = append(speakers, cloneSpeaker(speaker))
	}
	sortByCreatedAt(speakers, func(sp domain.Speaker) time.Time { return sp.CreatedAt })
	return speakers, nil
}

func (s *Store) UpdateSpeakerProfile(_ context.Context, id string, name string, bio string, topics []string) (domain.Speaker, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	speaker, ok := s.speakers[id]
	if !ok {
		return domain.Speaker{}, store.ErrNotFound
	}
	speaker.Name = name
	speaker.Bio = bio
	speaker.Topics = append([]string(nil), topics...)
	speaker.UpdatedAt = time.Now().UTC()
	s.speakers[id] = speaker
	return cloneSpeaker(speaker), nil
}

func (s *Store) AddSpeakerSession(_ context.Context, speakerID string, sessionID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	speaker, ok := s.speakers[speakerID]
	if !ok {
		return false, store.ErrNotFound
	}
	if containsID(speaker.Sessions, sessionID) {
		return false, nil
	}
	speaker.Sessions = append(speaker.Sessions, sessionID)
	speaker.UpdatedAt = time.Now().UTC()
	s.speakers[speakerID] = speaker
	return true, nil
}

func (s *Store) IncrementSessionsPresented(_ context.Context, speakerID string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	speaker, ok := s.speakers[speakerID]
	if !ok {
		return store.ErrNotFound
	}
	speaker.Analytics.SessionsPresented += delta
	speaker.UpdatedAt = time.Now().UTC()
	s.speakers[speakerID] = speaker
	return nil
}

func (s *Store) IncrementAttendeeEngagement(_ context.Context, speakerID string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	speaker, ok := s.speakers[speakerID]
	if !ok {
		return store.ErrNotFound
	}
	speaker.Analytics.AttendeeEngagement += delta
	speaker.UpdatedAt = time.Now().UTC()
	s.speakers[speakerID] = speaker
	return nil
}

func (s *Store) SaveSponsor(_ context.Context, sponsor domain.Sponsor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sponsors[sponsor.ID] = cloneSponsor(sponsor)
	return nil
}

func (s *Store) GetSponsor(_ context.Context, id string) (domain.Sponsor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sponsor, ok := s.sponsors[id]
	if !ok {
		return domain.Sponsor{}, store.ErrNotFound
	}
	return cloneSponsor(sponsor), nil
}

func (s *Store) FindSponsorByEmail(_ context.Context, email string) (domain.Sponsor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sponsor := range s.sponsors {
		if strings.EqualFold(sponsor.Email, email) {
			return cloneSponsor(sponsor), nil
		}
	}
	return domain.Sponsor{}, store.ErrNotFound
}

func (s *Store) UpdateSponsorProfile(_ context.Context, id string, name string, company string) (domain.Sponsor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sponsor, ok := s.sponsors[id]
	if !ok {
		return domain.Sponsor{}, store.ErrNotFound
	}
	sponsor.Name = name
	sponsor.Company = company
	sponsor.UpdatedAt = time.Now().UTC()
	s.sponsors[id] = sponsor
	return cloneSponsor(sponsor), nil
}

func (s *Store) AppendBoothResource(_ context.Context, sponsorID string, resource domain.BoothResource) (domain.Sponsor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sponsor, ok := s.sponsors[sponsorID]
	if !ok {
		return domain.Sponsor{}, store.ErrNotFound
	}
	sponsor.BoothResources = append(sponsor.BoothResources, resource)
	sponsor.UpdatedAt = time.Now().UTC()
	s.sponsors[sponsorID] = sponsor
	return cloneSponsor(sponsor), nil
}

func (s *Store) SaveOrganiser(_ context.Context, organiser domain.Organiser) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.organisers[organiser.ID] = cloneOrganiser(organiser)
	return nil
}

func (s *Store) GetOrganiser(_ context.Context, id string) (domain.Organiser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	organiser, ok := s.organisers[id]
	if !ok {
		return domain.Organiser{}, store.ErrNotFound
	}
	return cloneOrganiser(organiser), nil
}

func (s *Store) FindOrganiserByEmail(_ context.Context, email string) (domain.Organiser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, organiser := range s.organisers {
		if strings.EqualFold(organiser.Email, email) {
			return cloneOrganiser(organiser), nil
		}
	}
	return domain.Organiser{}, store.ErrNotFound
}

func (s *Store) UpdateOrganiserProfile(_ context.Context, id string, name string, organisation string) (domain.Organiser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	organiser, ok := s.organisers[id]
	if !ok {
		return domain.Organiser{}, store.ErrNotFound
	}
	organiser.Name = name
	organiser.Organisation = organisation
	organiser.UpdatedAt = time.Now().UTC()
	s.organisers[id] = organiser
	return cloneOrganiser(organiser), nil
}

func (s *Store) AddManagedEvent(_ context.Context, organiserID string, eventID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	organiser, ok := s.organisers[organiserID]
	if !ok {
		return false, store.ErrNotFound
	}
	if containsID(organiser.EventsManaged, eventID) {
		return false, nil
	}
	organiser.EventsManaged = append(organiser.EventsManaged, eventID)
	organiser.UpdatedAt = time.Now().UTC()
	s.organisers[organiserID] = organiser
	return true, nil
}

func containsID(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
