// Package api exposes the conversational assistant over HTTP for the
// website chat widget.
package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/accrahealth/carebot/internal/assistant"
	"github.com/accrahealth/carebot/internal/locale"
	"github.com/accrahealth/carebot/internal/search"
	"github.com/accrahealth/carebot/pkg/logging"
)

// sessionTTL is how long an idle widget session is retained. Visitors who
// close the tab never say goodbye, so the registry evicts by last activity.
const sessionTTL = 30 * time.Minute

type sessionEntry struct {
	sess     *assistant.Session
	lastSeen time.Time
}

// Handler serves the chat endpoints and owns the session registry.
type Handler struct {
	assistant *assistant.Assistant
	engine    *search.Engine
	logger    *logging.Logger
	now       func() time.Time

	mu       sync.Mutex
	sessions map[string]*sessionEntry
}

func NewHandler(a *assistant.Assistant, engine *search.Engine, logger *logging.Logger) *Handler {
	if a == nil {
		panic("api: assistant is required")
	}
	if engine == nil {
		panic("api: search engine is required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		assistant: a,
		engine:    engine,
		logger:    logger,
		now:       time.Now,
		sessions:  make(map[string]*sessionEntry),
	}
}

func (h *Handler) session(id string) *assistant.Session {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.evictIdleLocked()
	if id != "" {
		if e, ok := h.sessions[id]; ok {
			e.lastSeen = h.now()
			return e.sess
		}
	}
	sess := h.assistant.NewSession(id)
	h.sessions[sess.ID] = &sessionEntry{sess: sess, lastSeen: h.now()}
	return sess
}

// lookup finds a live session without creating one. Expired entries are
// treated as absent.
func (h *Handler) lookup(id string) (*assistant.Session, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	e, ok := h.sessions[id]
	if !ok || h.now().Sub(e.lastSeen) > sessionTTL {
		return nil, false
	}
	e.lastSeen = h.now()
	return e.sess, true
}

func (h *Handler) evictIdleLocked() {
	cutoff := h.now().Add(-sessionTTL)
	for id, e := range h.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(h.sessions, id)
		}
	}
}

type messageRequest struct {
	SessionID       string   `json:"sessionId"`
	Message         string   `json:"message"`
	Locale          string   `json:"locale"`
	LockLocale      bool     `json:"lockLocale"`
	VoiceConfidence *float64 `json:"voiceConfidence"`
}

type messageResponse struct {
	SessionID string          `json:"sessionId"`
	Reply     assistant.Reply `json:"reply"`
}

// Message handles one chat turn. A voiceConfidence field routes the text
// through the voice gate; an explicit locale pins the session language.
func (h *Handler) Message(w http.ResponseWriter, r *http.Request) {
	var req messageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Message == "" {
		h.writeError(w, http.StatusBadRequest, "message is required")
		return
	}

	sess := h.session(req.SessionID)
	if req.Locale != "" {
		sess.SetLocale(req.Locale, req.LockLocale)
	}

	var reply assistant.Reply
	if req.VoiceConfidence != nil {
		reply = h.assistant.HandleVoiceTurn(r.Context(), sess, req.Message, *req.VoiceConfidence)
	} else {
		reply = h.assistant.HandleTurn(r.Context(), sess, req.Message)
	}

	h.writeJSON(w, http.StatusOK, messageResponse{SessionID: sess.ID, Reply: reply})
}

// Reset clears a session's draft and history.
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SessionID string `json:"sessionId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.SessionID == "" {
		h.writeError(w, http.StatusBadRequest, "sessionId is required")
		return
	}

	sess, ok := h.lookup(req.SessionID)
	if !ok {
		h.writeError(w, http.StatusNotFound, "session not found")
		return
	}

	sess.Reset()
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}

// History returns a session's turns and analytics.
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	sess, ok := h.lookup(sessionID)
	if !ok {
		h.writeError(w, http.StatusNotFound, "session not found")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"sessionId": sess.ID,
		"locale":    sess.Locale(),
		"turns":     sess.History().Turns(),
		"analytics": sess.History().Analytics(),
	})
}

// Search exposes the content index directly for the site's search box.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		h.writeError(w, http.StatusBadRequest, "q is required")
		return
	}

	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	results := h.engine.Search(query, search.Options{
		Limit:    limit,
		Type:     search.ContentType(r.URL.Query().Get("type")),
		MinScore: 0.1,
		Fuzzy:    true,
	})
	if results == nil {
		results = []search.Result{}
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"query": query, "results": results})
}

// Locales lists the supported languages for the widget's picker.
func (h *Handler) Locales(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]any{"locales": locale.Supported()})
}

// Health is the liveness probe.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("api: failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, map[string]string{"error": msg})
}
