package domain

// Role values stored on principal documents and embedded in auth tokens.
const (
	RoleAttendee  = "attendee"
	RoleOrganiser = "organiser"
	RoleSpeaker   = "speaker"
	RoleSponsor   = "sponsor"
)
