package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accrahealth/carebot/internal/assistant"
	"github.com/accrahealth/carebot/internal/booking"
	"github.com/accrahealth/carebot/internal/dialogue"
	"github.com/accrahealth/carebot/internal/locale"
	"github.com/accrahealth/carebot/internal/model"
	"github.com/accrahealth/carebot/internal/search"
	"github.com/accrahealth/carebot/pkg/logging"
)

type staticRouter struct{}

func (staticRouter) Route(_ context.Context, _ model.Request, _ model.RouteOptions) model.Response {
	return model.Response{Success: true, Text: "model answer", Model: "gemini"}
}

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	logger := logging.New("error")
	eng := search.NewEngine(search.DefaultSources(), logger)
	mgr := dialogue.NewManager([]dialogue.Service{
		{ID: "svc-cardiology", Name: "Cardiology", Aliases: []string{"heart"}},
	}, booking.NewMemorySubmitter(logger), logger)
	a := assistant.New(assistant.Options{
		Search:        eng,
		Dialogue:      mgr,
		Router:        staticRouter{},
		Logger:        logger,
		DefaultLocale: locale.EnglishGH,
		AutoDetect:    true,
	})
	return NewHandler(a, eng, logger)
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := logging.New("error")
	srv := httptest.NewServer(NewRouter(RouterConfig{
		Handler:            newTestHandler(t),
		Logger:             logger,
		CORSAllowedOrigins: []string{"*"},
	}))
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestMessageEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/chat/message", map[string]any{"message": "Hello there"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode[messageResponse](t, resp)
	assert.NotEmpty(t, body.SessionID)
	assert.Equal(t, assistant.ResponseText, body.Reply.Type)
	assert.NotEmpty(t, body.Reply.Text)
}

func TestMessageEndpointKeepsSessionState(t *testing.T) {
	srv := newTestServer(t)

	first := decode[messageResponse](t, postJSON(t, srv.URL+"/api/chat/message",
		map[string]any{"message": "book an appointment"}))
	assert.Equal(t, assistant.ResponseServiceSelection, first.Reply.Type)

	second := decode[messageResponse](t, postJSON(t, srv.URL+"/api/chat/message",
		map[string]any{"sessionId": first.SessionID, "message": "cardiology"}))
	assert.Equal(t, first.SessionID, second.SessionID)
	assert.Equal(t, assistant.ResponseDateSelection, second.Reply.Type)
}

func TestMessageEndpointRejectsEmpty(t *testing.T) {
	srv := newTestServer(t)
	resp := postJSON(t, srv.URL+"/api/chat/message", map[string]any{"message": ""})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestMessageEndpointVoiceGate(t *testing.T) {
	srv := newTestServer(t)
	resp := postJSON(t, srv.URL+"/api/chat/message",
		map[string]any{"message": "garbled input", "voiceConfidence": 0.3})
	body := decode[messageResponse](t, resp)
	assert.Equal(t, assistant.ResponseSystem, body.Reply.Type)
}

func TestHistoryEndpoint(t *testing.T) {
	srv := newTestServer(t)

	msg := decode[messageResponse](t, postJSON(t, srv.URL+"/api/chat/message",
		map[string]any{"message": "Hello there"}))

	resp, err := http.Get(fmt.Sprintf("%s/api/chat/history/%s", srv.URL, msg.SessionID))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode[map[string]any](t, resp)
	turns, ok := body["turns"].([]any)
	require.True(t, ok)
	assert.Len(t, turns, 1)

	resp, err = http.Get(srv.URL + "/api/chat/history/unknown-session")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestResetEndpoint(t *testing.T) {
	srv := newTestServer(t)

	msg := decode[messageResponse](t, postJSON(t, srv.URL+"/api/chat/message",
		map[string]any{"message": "book an appointment"}))

	resp := postJSON(t, srv.URL+"/api/chat/reset", map[string]any{"sessionId": msg.SessionID})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	hist, err := http.Get(fmt.Sprintf("%s/api/chat/history/%s", srv.URL, msg.SessionID))
	require.NoError(t, err)
	body := decode[map[string]any](t, hist)
	assert.Empty(t, body["turns"])
}

func TestSearchEndpoint(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/search?q=cardiology&limit=3")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode[map[string]any](t, resp)
	results, ok := body["results"].([]any)
	require.True(t, ok)
	assert.NotEmpty(t, results)

	resp, err = http.Get(srv.URL + "/api/search")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestLocalesEndpoint(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/api/locales")
	require.NoError(t, err)

	body := decode[map[string]any](t, resp)
	locales, ok := body["locales"].([]any)
	require.True(t, ok)
	assert.Len(t, locales, 2)
}

func TestSessionRegistryEvictsIdleSessions(t *testing.T) {
	h := newTestHandler(t)

	base := time.Now()
	h.now = func() time.Time { return base }

	idle := h.session("")
	active := h.session("")
	require.Len(t, h.sessions, 2)

	// active keeps talking, idle goes quiet.
	h.now = func() time.Time { return base.Add(20 * time.Minute) }
	h.session(active.ID)

	// Past the idle cutoff for idle but not for active; any new request
	// sweeps the registry.
	h.now = func() time.Time { return base.Add(45 * time.Minute) }
	h.session("")

	h.mu.Lock()
	_, idleAlive := h.sessions[idle.ID]
	_, activeAlive := h.sessions[active.ID]
	h.mu.Unlock()
	assert.False(t, idleAlive, "idle session must be evicted")
	assert.True(t, activeAlive, "recently active session must survive")

	_, ok := h.lookup(idle.ID)
	assert.False(t, ok)
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}
