package assistant

import (
	"sync"

	"github.com/google/uuid"

	"github.com/accrahealth/carebot/internal/dialogue"
	"github.com/accrahealth/carebot/internal/history"
	"github.com/accrahealth/carebot/internal/locale"
)

// Session holds everything belonging to one open chat instance: the active
// locale, the booking draft, and the bounded history. Sessions are
// independent; nothing here is shared across sessions.
type Session struct {
	ID string

	mu            sync.Mutex
	locale        string
	localeLocked  bool
	draft         dialogue.Draft
	bookingActive bool
	history       *history.Store
}

// NewSession creates a session with a fresh draft and history. An empty id
// gets a generated one.
func NewSession(id, localeCode string, historyLimit int) *Session {
	if id == "" {
		id = uuid.NewString()
	}
	return &Session{
		ID:      id,
		locale:  locale.Normalize(localeCode),
		draft:   dialogue.NewDraft(),
		history: history.NewStore(historyLimit),
	}
}

// Locale returns the active locale code.
func (s *Session) Locale() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.locale
}

// SetLocale pins the locale explicitly. A locked locale is never changed by
// auto-detection; only another explicit SetLocale can move it.
func (s *Session) SetLocale(code string, lock bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locale = locale.Normalize(code)
	s.localeLocked = lock
}

// LocaleLocked reports whether auto-detection is disabled for this session.
func (s *Session) LocaleLocked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.localeLocked
}

// History exposes the session's turn log.
func (s *Session) History() *history.Store { return s.history }

// Draft returns the current booking draft.
func (s *Session) Draft() dialogue.Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// BookingActive reports whether a booking flow is in progress, so
// follow-up answers ("tomorrow", "2pm") reach the dialogue manager even
// when their own intent is not booking-related.
func (s *Session) BookingActive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bookingActive
}

// Reset clears the draft and history but keeps the locale choice.
func (s *Session) Reset() {
	s.mu.Lock()
	s.draft = dialogue.NewDraft()
	s.bookingActive = false
	s.mu.Unlock()
	s.history.Reset()
}

func (s *Session) setDraft(d dialogue.Draft) {
	s.mu.Lock()
	s.draft = d
	s.bookingActive = !d.Step.Terminal()
	s.mu.Unlock()
}

func (s *Session) setDetectedLocale(code string) {
	s.mu.Lock()
	if !s.localeLocked {
		s.locale = code
	}
	s.mu.Unlock()
}
