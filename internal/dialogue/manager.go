package dialogue

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/accrahealth/carebot/internal/booking"
	"github.com/accrahealth/carebot/internal/entity"
	"github.com/accrahealth/carebot/internal/locale"
	"github.com/accrahealth/carebot/pkg/logging"
)

// Service is one bookable offering. Aliases widen matching against free
// text ("heart" -> Cardiology).
type Service struct {
	ID      string
	Name    string
	Aliases []string
}

// Prompt is the manager's structured reply for one turn. Kind mirrors the
// response-type vocabulary used across the assistant.
type Prompt struct {
	Kind           string `json:"kind"`
	Text           string `json:"text"`
	ConfirmationID string `json:"confirmationId,omitempty"`
}

const (
	PromptServiceSelection = "service_selection"
	PromptDateSelection    = "date_selection"
	PromptTimeSelection    = "time_selection"
	PromptPatientInfo      = "patient_info"
	PromptConfirmation     = "confirmation"
	PromptText             = "text"
	PromptError            = "error"
)

var (
	cancelRE  = regexp.MustCompile(`(?i)\b(cancel|stop|never mind|nevermind|forget it|start over|gyae)\b`)
	confirmRE = regexp.MustCompile(`(?i)^\s*(yes|yeah|yep|confirm|correct|that'?s right|aane|go ahead|ok(ay)?)\b`)
)

// Manager drives the booking flow: it turns user text and extracted
// entities into draft events, advances the state machine, and emits the
// next prompt in the active locale.
type Manager struct {
	services  []Service
	submitter booking.Submitter
	logger    *logging.Logger
}

func NewManager(services []Service, submitter booking.Submitter, logger *logging.Logger) *Manager {
	if submitter == nil {
		panic("dialogue: submitter is required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Manager{services: services, submitter: submitter, logger: logger}
}

// Services returns the bookable catalog.
func (m *Manager) Services() []Service { return m.services }

// HandleTurn consumes one user turn against the current draft. The returned
// draft replaces the caller's copy; the prompt is ready for the user.
func (m *Manager) HandleTurn(ctx context.Context, d Draft, localeCode, userText string, entities []entity.Entity) (Draft, Prompt) {
	if d.Step.Terminal() {
		d = NewDraft()
	}

	if cancelRE.MatchString(userText) {
		d = Transition(d, Event{Cancel: true})
		return d, Prompt{Kind: PromptText, Text: locale.Template(localeCode, locale.TplCancelled)}
	}

	if d.Step == StepConfirmation && confirmRE.MatchString(userText) {
		return m.submit(ctx, d, localeCode)
	}

	d = Transition(d, m.eventFromTurn(d, userText, entities))
	return d, m.promptFor(d, localeCode)
}

// eventFromTurn maps a turn's text and entities onto draft fields. Later
// entities of the same type overwrite earlier ones.
func (m *Manager) eventFromTurn(d Draft, userText string, entities []entity.Entity) Event {
	var ev Event
	for _, e := range entities {
		switch e.Type {
		case entity.TypeDate:
			ev.Date = e.Value
		case entity.TypeTime:
			ev.Time = e.Value
		case entity.TypeName:
			ev.PatientName = e.Value
		case entity.TypeSpecialty:
			if svc, ok := m.matchService(e.Value); ok {
				ev.ServiceID, ev.Service = svc.ID, svc.Name
			}
		}
	}
	if ev.ServiceID == "" {
		if svc, ok := m.matchService(userText); ok {
			ev.ServiceID, ev.Service = svc.ID, svc.Name
		}
	}
	if d.Step == StepPatientInfo {
		if email := entity.ExtractEmail(userText); email != "" {
			ev.Email = email
		}
		if phone := entity.ExtractPhone(userText); phone != "" {
			ev.Phone = phone
		}
	}
	return ev
}

// matchService resolves free text to a catalog entry by ID, name, or alias.
func (m *Manager) matchService(text string) (Service, bool) {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return Service{}, false
	}
	for _, svc := range m.services {
		if lower == strings.ToLower(svc.ID) || lower == strings.ToLower(svc.Name) {
			return svc, true
		}
	}
	for _, svc := range m.services {
		if strings.Contains(lower, strings.ToLower(svc.Name)) {
			return svc, true
		}
		for _, alias := range svc.Aliases {
			if strings.Contains(lower, strings.ToLower(alias)) {
				return svc, true
			}
		}
	}
	return Service{}, false
}

func (m *Manager) promptFor(d Draft, localeCode string) Prompt {
	switch d.Step {
	case StepServiceSelection:
		return Prompt{Kind: PromptServiceSelection, Text: locale.Template(localeCode, locale.TplAskService)}
	case StepDateSelection:
		return Prompt{Kind: PromptDateSelection, Text: locale.Template(localeCode, locale.TplAskDate)}
	case StepTimeSelection:
		return Prompt{Kind: PromptTimeSelection, Text: locale.Template(localeCode, locale.TplAskTime)}
	case StepPatientInfo:
		return Prompt{Kind: PromptPatientInfo, Text: locale.Template(localeCode, locale.TplAskPatientInfo)}
	case StepConfirmation:
		return Prompt{
			Kind: PromptConfirmation,
			Text: fmt.Sprintf(locale.Template(localeCode, locale.TplConfirm), m.summary(d)),
		}
	case StepCancelled:
		return Prompt{Kind: PromptText, Text: locale.Template(localeCode, locale.TplCancelled)}
	default:
		return Prompt{Kind: PromptText, Text: locale.Template(localeCode, locale.TplClarify)}
	}
}

// summary lists every confirmed field before submission.
func (m *Manager) summary(d Draft) string {
	return fmt.Sprintf("%s on %s at %s for %s (%s, %s)",
		d.Service, d.Date, d.Time, d.PatientName, d.Email, d.Phone)
}

// submit is the only path from confirmation to complete. A failed
// submission keeps the draft and state intact so the user can retry.
func (m *Manager) submit(ctx context.Context, d Draft, localeCode string) (Draft, Prompt) {
	receipt, err := m.submitter.Submit(ctx, booking.Submission{
		ServiceID:   d.ServiceID,
		Service:     d.Service,
		Date:        d.Date,
		Time:        d.Time,
		PatientName: d.PatientName,
		Email:       d.Email,
		Phone:       d.Phone,
		Reason:      d.Reason,
	})
	if err != nil {
		m.logger.Error("dialogue: booking submission failed", "error", err)
		return d, Prompt{
			Kind: PromptError,
			Text: fmt.Sprintf(locale.Template(localeCode, locale.TplBookingFailed), err.Error()),
		}
	}

	d.Step = StepComplete
	m.logger.Info("dialogue: booking complete", "confirmation_id", receipt.ConfirmationID)
	return d, Prompt{
		Kind:           PromptText,
		Text:           fmt.Sprintf(locale.Template(localeCode, locale.TplBookingDone), receipt.ConfirmationID),
		ConfirmationID: receipt.ConfirmationID,
	}
}
