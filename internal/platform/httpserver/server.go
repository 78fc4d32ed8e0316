package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	notificationservice "confera/contexts/engagement/notification-service"
	registrationservice "confera/contexts/engagement/registration-service"
	accountsservice "confera/contexts/identity/accounts-service"
	eventservice "confera/contexts/programme/event-service"
	pollservice "confera/contexts/programme/poll-service"
	schedulingservice "confera/contexts/programme/scheduling-service"
	sponsorservice "confera/contexts/sponsorship/sponsor-service"
	"confera/internal/domain"
	"confera/internal/platform/auth"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "confera/internal/platform/httpserver/docs"
)

type Modules struct {
	Accounts      accountsservice.Module
	Registration  registrationservice.Module
	Notifications notificationservice.Module
	Events        eventservice.Module
	Scheduling    schedulingservice.Module
	Polls         pollservice.Module
	Sponsors      sponsorservice.Module
}

type Server struct {
	mux     *http.ServeMux
	logger  *slog.Logger
	addr    string
	tokens  *auth.TokenService
	modules Modules
}

func New(modules Modules, tokens *auth.TokenService, logger *slog.Logger, addr string) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:     http.NewServeMux(),
		logger:  logger,
		addr:    addr,
		tokens:  tokens,
		modules: modules,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

// Handler exposes the mux for tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// Attendees.
	s.mux.HandleFunc("POST /api/attendees/signup", s.handleAttendeeSignUp)
	s.mux.HandleFunc("POST /api/attendees/signin", s.handleAttendeeSignIn)
	s.mux.HandleFunc("GET /api/attendees/profile", s.handleAttendeeGetProfile)
	s.mux.HandleFunc("PUT /api/attendees/profile", s.handleAttendeeUpdateProfile)
	s.mux.HandleFunc("GET /api/attendees/events", s.handleListEvents)
	s.mux.HandleFunc("GET /api/attendees/events/registered", s.handleRegisteredEvents)
	s.mux.HandleFunc("GET /api/attendees/events/{event_id}", s.handleGetEvent)
	s.mux.HandleFunc("POST /api/attendees/events/{event_id}/register", s.handleRegister)
	s.mux.HandleFunc("GET /api/attendees/notifications", s.handleListNotifications)
	s.mux.HandleFunc("PUT /api/attendees/notifications/read", s.handleMarkNotificationsRead)
	s.mux.HandleFunc("POST /api/attendees/sessions/{session_id}/join", s.handleJoinSession)
	s.mux.HandleFunc("GET /api/attendees/sessions/{session_id}/polls", s.handleListPolls)
	s.mux.HandleFunc("POST /api/attendees/sessions/{session_id}/polls/{poll_id}/vote", s.handleVote)

	// Organisers.
	s.mux.HandleFunc("POST /api/organisers/signup", s.handleOrganiserSignUp)
	s.mux.HandleFunc("POST /api/organisers/signin", s.handleOrganiserSignIn)
	s.mux.HandleFunc("GET /api/organisers/profile", s.handleOrganiserGetProfile)
	s.mux.HandleFunc("PUT /api/organisers/profile", s.handleOrganiserUpdateProfile)
	s.mux.HandleFunc("POST /api/organisers/events", s.handleCreateEvent)
	s.mux.HandleFunc("PUT /api/organisers/events/{event_id}", s.handleUpdateEvent)
	s.mux.HandleFunc("DELETE /api/organisers/events/{event_id}", s.handleDeleteEvent)
	s.mux.HandleFunc("GET /api/organisers/events/{event_id}/attendees", s.handleEventAttendees)
	s.mux.HandleFunc("POST /api/organisers/events/{event_id}/notify", s.handleBroadcast)
	s.mux.HandleFunc("POST /api/organisers/events/{event_id}/sessions", s.handleCreateSession)
	s.mux.HandleFunc("GET /api/organisers/events/{event_id}/sessions", s.handleListEventSessions)
	s.mux.HandleFunc("PUT /api/organisers/sessions/{session_id}", s.handleUpdateSession)
	s.mux.HandleFunc("DELETE /api/organisers/sessions/{session_id}", s.handleDeleteSession)
	s.mux.HandleFunc("POST /api/organisers/sessions/{session_id}/assign-speaker", s.handleAssignSpeaker)
	s.mux.HandleFunc("GET /api/organisers/speakers", s.handleListSpeakers)
	s.mux.HandleFunc("GET /api/organisers/speakers/{speaker_id}", s.handleGetSpeaker)

	// Speakers.
	s.mux.HandleFunc("POST /api/speakers/signup", s.handleSpeakerSignUp)
	s.mux.HandleFunc("POST /api/speakers/signin", s.handleSpeakerSignIn)
	s.mux.HandleFunc("GET /api/speakers/profile", s.handleSpeakerGetProfile)
	s.mux.HandleFunc("PUT /api/speakers/profile", s.handleSpeakerUpdateProfile)
	s.mux.HandleFunc("GET /api/speakers/sessions", s.handleSpeakerSessions)
	s.mux.HandleFunc("GET /api/speakers/sessions/{session_id}", s.handleGetSession)
	s.mux.HandleFunc("GET /api/speakers/analytics", s.handleSpeakerAnalytics)
	s.mux.HandleFunc("POST /api/speakers/sessions/{session_id}/polls", s.handleCreatePoll)
	s.mux.HandleFunc("GET /api/speakers/sessions/{session_id}/polls/{poll_id}/results", s.handlePollResults)

	// Sponsors.
	s.mux.HandleFunc("POST /api/sponsors/signup", s.handleSponsorSignUp)
	s.mux.HandleFunc("POST /api/sponsors/signin", s.handleSponsorSignIn)
	s.mux.HandleFunc("GET /api/sponsors/profile", s.handleSponsorGetProfile)
	s.mux.HandleFunc("PUT /api/sponsors/profile", s.handleSponsorUpdateProfile)
	s.mux.HandleFunc("GET /api/sponsors/booth", s.handleGetBooth)
	s.mux.HandleFunc("POST /api/sponsors/booth/resources", s.handleAddBoothResource)
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// authenticate parses the bearer token and, when role is non-empty, requires
// the claims to carry that role. Writes the 401/403 itself on failure.
func (s *Server) authenticate(w http.ResponseWriter, r *http.Request, role string) (*auth.Claims, bool) {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		writeJSON(w, http.StatusUnauthorized, errorBody{Code: "unauthorized", Message: "Authorization bearer token is required"})
		return nil, false
	}
	claims, err := s.tokens.Verify(strings.TrimSpace(parts[1]))
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, errorBody{Code: "unauthorized", Message: "token is invalid or expired"})
		return nil, false
	}
	if role != "" && claims.Role != role {
		writeJSON(w, http.StatusForbidden, errorBody{Code: "forbidden", Message: "role is not allowed on this route"})
		return nil, false
	}
	return claims, true
}

func (s *Server) requireAttendee(w http.ResponseWriter, r *http.Request) (*auth.Claims, bool) {
	return s.authenticate(w, r, domain.RoleAttendee)
}

func (s *Server) requireOrganiser(w http.ResponseWriter, r *http.Request) (*auth.Claims, bool) {
	return s.authenticate(w, r, domain.RoleOrganiser)
}

func (s *Server) requireSpeaker(w http.ResponseWriter, r *http.Request) (*auth.Claims, bool) {
	return s.authenticate(w, r, domain.RoleSpeaker)
}

func (s *Server) requireSponsor(w http.ResponseWriter, r *http.Request) (*auth.Claims, bool) {
	return s.authenticate(w, r, domain.RoleSponsor)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
