package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	notificationservice "confera/contexts/engagement/notification-service"
	registrationservice "confera/contexts/engagement/registration-service"
	accountsservice "confera/contexts/identity/accounts-service"
	eventservice "confera/contexts/programme/event-service"
	pollservice "confera/contexts/programme/poll-service"
	schedulingservice "confera/contexts/programme/scheduling-service"
	sponsorservice "confera/contexts/sponsorship/sponsor-service"
	"confera/internal/platform/auth"
	"confera/internal/platform/messaging"
	"confera/internal/store"
	"confera/internal/store/memory"
)

// newTestServer wires every module against the in-memory store, mirroring the
// composition root, and starts the engagement consumer.
func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	entityStore := memory.NewStore()
	bus := messaging.NewBus(nil)
	tokens := auth.NewTokenService("test-signing-key", "confera-test", time.Hour)
	clock := store.SystemClock{}
	idGen := store.UUIDGenerator{}

	scheduling := schedulingservice.NewModule(schedulingservice.Dependencies{
		Repository:  entityStore,
		Publisher:   bus,
		Subscriber:  bus,
		Clock:       clock,
		IDGenerator: idGen,
		ServiceName: "confera-test",
	})
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	if err := scheduling.StartEngagementConsumer(ctx); err != nil {
		t.Fatalf("start engagement consumer failed: %v", err)
	}

	server := New(Modules{
		Accounts: accountsservice.NewModule(accountsservice.Dependencies{
			Accounts:    entityStore,
			Hasher:      auth.BcryptHasher{},
			Tokens:      tokens,
			Clock:       clock,
			IDGenerator: idGen,
		}),
		Registration: registrationservice.NewModule(registrationservice.Dependencies{
			Repository:  entityStore,
			Publisher:   bus,
			Clock:       clock,
			IDGenerator: idGen,
			ServiceName: "confera-test",
		}),
		Notifications: notificationservice.NewModule(notificationservice.Dependencies{
			Repository:  entityStore,
			Publisher:   bus,
			Clock:       clock,
			IDGenerator: idGen,
			ServiceName: "confera-test",
		}),
		Events: eventservice.NewModule(eventservice.Dependencies{
			Repository:  entityStore,
			Clock:       clock,
			IDGenerator: idGen,
		}),
		Scheduling: scheduling,
		Polls: pollservice.NewModule(pollservice.Dependencies{
			Repository:  entityStore,
			IDGenerator: idGen,
		}),
		Sponsors: sponsorservice.NewModule(sponsorservice.Dependencies{
			Repository: entityStore,
		}),
	}, tokens, nil, ":0")
	return server.Handler()
}

func doJSON(t *testing.T, handler http.Handler, method string, path string, token string, body any, out any) int {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request failed: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if out != nil && rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
			t.Fatalf("%s %s: decode response failed: %v (body %q)", method, path, err, rec.Body.String())
		}
	}
	return rec.Code
}

func signUpAndSignIn(t *testing.T, handler http.Handler, role string, name string, email string, extra map[string]string) (string, string) {
	t.Helper()

	payload := map[string]string{
		"name":     name,
		"email":    email,
		"password": "Passw0rd!",
	}
	for key, value := range extra {
		payload[key] = value
	}
	var signUp struct {
		UserID string `json:"user_id"`
	}
	if code := doJSON(t, handler, http.MethodPost, "/api/"+role+"/signup", "", payload, &signUp); code != http.StatusCreated {
		t.Fatalf("%s signup: expected 201, got %d", role, code)
	}

	var signIn struct {
		UserID string `json:"user_id"`
		Token  string `json:"token"`
	}
	code := doJSON(t, handler, http.MethodPost, "/api/"+role+"/signin", "", map[string]string{
		"email":    email,
		"password": "Passw0rd!",
	}, &signIn)
	if code != http.StatusOK {
		t.Fatalf("%s signin: expected 200, got %d", role, code)
	}
	if signIn.UserID != signUp.UserID || signIn.Token == "" {
		t.Fatalf("%s signin: unexpected result %+v", role, signIn)
	}
	return signIn.UserID, signIn.Token
}

func TestConferenceLifecycle(t *testing.T) {
	handler := newTestServer(t)

	_, organiserToken := signUpAndSignIn(t, handler, "organisers", "Org Anne", "anne@example.com", map[string]string{"organisation": "Confera Ltd"})
	attendeeID, attendeeToken := signUpAndSignIn(t, handler, "attendees", "Alex Doe", "alex@example.com", nil)
	speakerID, speakerToken := signUpAndSignIn(t, handler, "speakers", "Sam Ray", "sam@example.com", nil)
	_, sponsorToken := signUpAndSignIn(t, handler, "sponsors", "Pat Lee", "pat@example.com", map[string]string{"company": "Acme Cloud"})

	// Organiser creates an event and a session.
	var eventResp struct {
		Event struct {
			EventID string `json:"event_id"`
		} `json:"event"`
	}
	code := doJSON(t, handler, http.MethodPost, "/api/organisers/events", organiserToken, map[string]string{
		"name":        "GopherCon",
		"description": "Annual Go conference",
		"date":        "15/March/2026",
	}, &eventResp)
	if code != http.StatusCreated {
		t.Fatalf("create event: expected 201, got %d", code)
	}
	eventID := eventResp.Event.EventID

	var sessionResp struct {
		Session struct {
			SessionID string `json:"session_id"`
		} `json:"session"`
	}
	code = doJSON(t, handler, http.MethodPost, "/api/organisers/events/"+eventID+"/sessions", organiserToken, map[string]string{
		"title": "Generics in practice",
		"date":  "15/March/2026",
	}, &sessionResp)
	if code != http.StatusCreated {
		t.Fatalf("create session: expected 201, got %d", code)
	}
	sessionID := sessionResp.Session.SessionID

	// Attendee registers; a second attempt is a conflict.
	if code := doJSON(t, handler, http.MethodPost, "/api/attendees/events/"+eventID+"/register", attendeeToken, nil, nil); code != http.StatusOK {
		t.Fatalf("register: expected 200, got %d", code)
	}
	if code := doJSON(t, handler, http.MethodPost, "/api/attendees/events/"+eventID+"/register", attendeeToken, nil, nil); code != http.StatusConflict {
		t.Fatalf("duplicate register: expected 409, got %d", code)
	}

	var registered struct {
		Events []struct {
			EventID string `json:"event_id"`
		} `json:"events"`
	}
	if code := doJSON(t, handler, http.MethodGet, "/api/attendees/events/registered", attendeeToken, nil, &registered); code != http.StatusOK {
		t.Fatalf("registered events: expected 200, got %d", code)
	}
	if len(registered.Events) != 1 || registered.Events[0].EventID != eventID {
		t.Fatalf("unexpected registered events %+v", registered.Events)
	}

	// Organiser assigns the speaker; duplicate is a conflict.
	assignBody := map[string]string{"speaker_id": speakerID}
	if code := doJSON(t, handler, http.MethodPost, "/api/organisers/sessions/"+sessionID+"/assign-speaker", organiserToken, assignBody, nil); code != http.StatusOK {
		t.Fatalf("assign speaker: expected 200, got %d", code)
	}
	if code := doJSON(t, handler, http.MethodPost, "/api/organisers/sessions/"+sessionID+"/assign-speaker", organiserToken, assignBody, nil); code != http.StatusConflict {
		t.Fatalf("duplicate assign: expected 409, got %d", code)
	}

	// Attendee joins the session; the consumer credits the speaker.
	if code := doJSON(t, handler, http.MethodPost, "/api/attendees/sessions/"+sessionID+"/join", attendeeToken, nil, nil); code != http.StatusOK {
		t.Fatalf("join session: expected 200, got %d", code)
	}
	if code := doJSON(t, handler, http.MethodPost, "/api/attendees/sessions/"+sessionID+"/join", attendeeToken, nil, nil); code != http.StatusConflict {
		t.Fatalf("duplicate join: expected 409, got %d", code)
	}

	waitForAnalytics(t, handler, speakerToken, 1, 1)

	// Organiser broadcasts to the attendee set.
	var broadcast struct {
		Delivered int `json:"delivered"`
		Failed    int `json:"failed"`
	}
	code = doJSON(t, handler, http.MethodPost, "/api/organisers/events/"+eventID+"/notify", organiserToken, map[string]string{
		"message": "Doors open at nine.",
	}, &broadcast)
	if code != http.StatusOK {
		t.Fatalf("broadcast: expected 200, got %d", code)
	}
	if broadcast.Delivered != 1 || broadcast.Failed != 0 {
		t.Fatalf("unexpected broadcast counts %+v", broadcast)
	}

	var inbox struct {
		Notifications []struct {
			Message string `json:"message"`
			Read    bool   `json:"read"`
		} `json:"notifications"`
	}
	if code := doJSON(t, handler, http.MethodGet, "/api/attendees/notifications", attendeeToken, nil, &inbox); code != http.StatusOK {
		t.Fatalf("list notifications: expected 200, got %d", code)
	}
	if len(inbox.Notifications) != 1 || inbox.Notifications[0].Read {
		t.Fatalf("unexpected inbox %+v", inbox.Notifications)
	}
	if code := doJSON(t, handler, http.MethodPut, "/api/attendees/notifications/read", attendeeToken, nil, &inbox); code != http.StatusOK {
		t.Fatalf("mark read: expected 200, got %d", code)
	}
	if len(inbox.Notifications) != 1 || !inbox.Notifications[0].Read {
		t.Fatalf("expected read inbox, got %+v", inbox.Notifications)
	}

	// Speaker runs a poll; attendee votes.
	var polls struct {
		Polls []struct {
			PollID string `json:"poll_id"`
		} `json:"polls"`
	}
	code = doJSON(t, handler, http.MethodPost, "/api/speakers/sessions/"+sessionID+"/polls", speakerToken, map[string]any{
		"question": "Best session format?",
		"options":  []string{"talk", "workshop"},
	}, &polls)
	if code != http.StatusCreated {
		t.Fatalf("create poll: expected 201, got %d", code)
	}
	if len(polls.Polls) != 1 {
		t.Fatalf("expected one poll, got %d", len(polls.Polls))
	}
	pollID := polls.Polls[0].PollID

	if code := doJSON(t, handler, http.MethodPost, "/api/attendees/sessions/"+sessionID+"/polls/"+pollID+"/vote", attendeeToken, map[string]string{"option": "talk"}, nil); code != http.StatusOK {
		t.Fatalf("vote: expected 200, got %d", code)
	}
	if code := doJSON(t, handler, http.MethodPost, "/api/attendees/sessions/"+sessionID+"/polls/"+pollID+"/vote", attendeeToken, map[string]string{"option": "lightning"}, nil); code != http.StatusBadRequest {
		t.Fatalf("unknown option vote: expected 400, got %d", code)
	}

	var results struct {
		Results struct {
			TotalVotes int            `json:"total_votes"`
			Responses  map[string]int `json:"responses"`
		} `json:"results"`
	}
	if code := doJSON(t, handler, http.MethodGet, "/api/speakers/sessions/"+sessionID+"/polls/"+pollID+"/results", speakerToken, nil, &results); code != http.StatusOK {
		t.Fatalf("poll results: expected 200, got %d", code)
	}
	if results.Results.TotalVotes != 1 || results.Results.Responses["talk"] != 1 {
		t.Fatalf("unexpected results %+v", results.Results)
	}

	// Sponsor booth round trip.
	if code := doJSON(t, handler, http.MethodPost, "/api/sponsors/booth/resources", sponsorToken, map[string]string{
		"title": "Product brochure",
		"url":   "https://acme.example.com/brochure.pdf",
		"type":  "pdf",
	}, nil); code != http.StatusCreated {
		t.Fatalf("add booth resource: expected 201, got %d", code)
	}
	var booth struct {
		Booth struct {
			Resources []struct {
				Title string `json:"title"`
			} `json:"resources"`
		} `json:"booth"`
	}
	if code := doJSON(t, handler, http.MethodGet, "/api/sponsors/booth", sponsorToken, nil, &booth); code != http.StatusOK {
		t.Fatalf("get booth: expected 200, got %d", code)
	}
	if len(booth.Booth.Resources) != 1 {
		t.Fatalf("unexpected booth %+v", booth.Booth)
	}

	// Session participants reflect the join.
	var session struct {
		Session struct {
			SpeakerID    string   `json:"speaker_id"`
			Participants []string `json:"participants"`
		} `json:"session"`
	}
	if code := doJSON(t, handler, http.MethodGet, "/api/speakers/sessions/"+sessionID, speakerToken, nil, &session); code != http.StatusOK {
		t.Fatalf("get session: expected 200, got %d", code)
	}
	if session.Session.SpeakerID != speakerID {
		t.Fatalf("unexpected session speaker %q", session.Session.SpeakerID)
	}
	if len(session.Session.Participants) != 1 || session.Session.Participants[0] != attendeeID {
		t.Fatalf("unexpected participants %v", session.Session.Participants)
	}
}

// waitForAnalytics polls the speaker analytics route until the consumer has
// processed the join or the deadline passes.
func waitForAnalytics(t *testing.T, handler http.Handler, speakerToken string, presented int, engagement int) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for {
		var analytics struct {
			Analytics struct {
				SessionsPresented  int `json:"sessions_presented"`
				AttendeeEngagement int `json:"attendee_engagement"`
			} `json:"analytics"`
		}
		code := doJSON(t, handler, http.MethodGet, "/api/speakers/analytics", speakerToken, nil, &analytics)
		if code != http.StatusOK {
			t.Fatalf("analytics: expected 200, got %d", code)
		}
		if analytics.Analytics.SessionsPresented == presented && analytics.Analytics.AttendeeEngagement == engagement {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("analytics never reached presented=%d engagement=%d, got %+v", presented, engagement, analytics.Analytics)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestAuthGuards(t *testing.T) {
	handler := newTestServer(t)

	if code := doJSON(t, handler, http.MethodGet, "/api/attendees/notifications", "", nil, nil); code != http.StatusUnauthorized {
		t.Fatalf("missing token: expected 401, got %d", code)
	}

	_, attendeeToken := signUpAndSignIn(t, handler, "attendees", "Alex Doe", "alex@example.com", nil)
	if code := doJSON(t, handler, http.MethodPost, "/api/organisers/events", attendeeToken, map[string]string{
		"name": "GopherCon",
		"date": "15/March/2026",
	}, nil); code != http.StatusForbidden {
		t.Fatalf("wrong role: expected 403, got %d", code)
	}

	// Events are browsable without a token.
	if code := doJSON(t, handler, http.MethodGet, "/api/attendees/events", "", nil, nil); code != http.StatusOK {
		t.Fatalf("public event list: expected 200, got %d", code)
	}
}
