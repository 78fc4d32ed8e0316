package memory

import (
	"sort"
	"time"

	"confera/internal/domain"
)

// Clones isolate callers from the maps so a returned document can be mutated
// without racing the store.

func cloneAttendee(attendee domain.Attendee) domain.Attendee {
	attendee.Interests = append([]string(nil), attendee.Interests...)
	attendee.Skills = append([]string(nil), attendee.Skills...)
	attendee.EventsRegistered = append([]string(nil), attendee.EventsRegistered...)
	attendee.Connections = append([]string(nil), attendee.Connections...)
	attendee.Notifications = append([]domain.Notification(nil), attendee.Notifications...)
	return attendee
}

func cloneEvent(event domain.Event) domain.Event {
	event.Sessions = append([]string(nil), event.Sessions...)
	event.Attendees = append([]string(nil), event.Attendees...)
	event.Sponsors = append([]string(nil), event.Sponsors...)
	event.Notifications = append([]string(nil), event.Notifications...)
	return event
}

func cloneSession(session domain.Session) domain.Session {
	session.Participants = append([]string(nil), session.Participants...)
	polls := make([]domain.Poll, 0, len(session.Polls))
	for _, poll := range session.Polls {
		polls = append(polls, clonePoll(poll))
	}
	session.Polls = polls
	return session
}

func clonePoll(poll domain.Poll) domain.Poll {
	poll.Options = append([]string(nil), poll.Options...)
	responses := make(map[string]int, len(poll.Responses))
	for option, count := range poll.Responses {
		responses[option] = count
	}
	poll.Responses = responses
	return poll
}

func cloneSpeaker(speaker domain.Speaker) domain.Speaker {
	speaker.Topics = append([]string(nil), speaker.Topics...)
	speaker.Sessions = append([]string(nil), speaker.Sessions...)
	return speaker
}

func cloneSponsor(sponsor domain.Sponsor) domain.Sponsor {
	sponsor.BoothResources = append([]domain.BoothResource(nil), sponsor.BoothResources...)
	sponsor.EventsSponsored = append([]string(nil), sponsor.EventsSponsored...)
	return sponsor
}

func cloneOrganiser(organiser domain.Organiser) domain.Organiser {
	organiser.EventsManaged = append([]string(nil), organiser.EventsManaged...)
	return organiser
}

func sortByCreatedAt[T any](items []T, createdAt func(T) time.Time) {
	sort.SliceStable(items, func(i, j int) bool {
		return createdAt(items[i]).Before(createdAt(items[j]))
	})
}
