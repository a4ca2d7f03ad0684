// Package booking defines the appointment submission boundary and an
// in-memory implementation used for local development and tests.
package booking

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/accrahealth/carebot/pkg/logging"
)

// Submission carries everything needed to create an appointment.
type Submission struct {
	ServiceID   string `json:"serviceId"`
	Service     string `json:"service"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	PatientName string `json:"patientName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Reason      string `json:"reason,omitempty"`
}

// Receipt is returned on a successful submission.
type Receipt struct {
	ConfirmationID string `json:"confirmationId"`
	MeetingLink    string `json:"meetingLink,omitempty"`
}

// Submitter accepts completed booking drafts. Implementations may call an
// external scheduling system; failures are returned as errors and never
// consume the caller's draft.
type Submitter interface {
	Submit(ctx context.Context, s Submission) (Receipt, error)
}

// MemorySubmitter stores submissions in memory and issues confirmation IDs
// of the form KBH-<year>-<5 chars>.
type MemorySubmitter struct {
	mu       sync.Mutex
	logger   *logging.Logger
	accepted []Submission
}

func NewMemorySubmitter(logger *logging.Logger) *MemorySubmitter {
	if logger == nil {
		logger = logging.Default()
	}
	return &MemorySubmitter{logger: logger}
}

func (m *MemorySubmitter) Submit(ctx context.Context, s Submission) (Receipt, error) {
	if err := ctx.Err(); err != nil {
		return Receipt{}, fmt.Errorf("booking: submit aborted: %w", err)
	}
	if s.ServiceID == "" || s.Date == "" || s.Time == "" {
		return Receipt{}, fmt.Errorf("booking: incomplete submission: service=%q date=%q time=%q",
			s.ServiceID, s.Date, s.Time)
	}
	if s.PatientName == "" || s.Email == "" || s.Phone == "" {
		return Receipt{}, fmt.Errorf("booking: missing patient contact details")
	}

	m.mu.Lock()
	m.accepted = append(m.accepted, s)
	m.mu.Unlock()

	id := fmt.Sprintf("KBH-%d-%s", time.Now().Year(),
		strings.ToUpper(uuid.NewString()[:5]))
	m.logger.Info("booking: submission accepted",
		"confirmation_id", id, "service", s.ServiceID, "date", s.Date)
	return Receipt{ConfirmationID: id}, nil
}

// Accepted returns a copy of every stored submission.
func (m *MemorySubmitter) Accepted() []Submission {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Submission, len(m.accepted))
	copy(out, m.accepted)
	return out
}
