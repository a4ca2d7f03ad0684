// Package dialogue implements the booking conversation as a finite state
// machine over a mutable draft. State transitions are pure functions so the
// flow can be unit-tested without a live session.
package dialogue

// Step identifies where a booking conversation currently is. Steps only
// advance forward and never skip a step whose required field is unset.
type Step string

const (
	StepServiceSelection Step = "service_selection"
	StepDateSelection    Step = "date_selection"
	StepTimeSelection    Step = "time_selection"
	StepPatientInfo      Step = "patient_info"
	StepConfirmation     Step = "confirmation"
	StepComplete         Step = "complete"
	StepCancelled        Step = "cancelled"
)

// Terminal reports whether no further transitions are possible.
func (s Step) Terminal() bool {
	return s == StepComplete || s == StepCancelled
}

// Draft is the single mutable aggregate for an in-progress appointment.
// It is owned exclusively by the dialogue manager.
type Draft struct {
	Step        Step   `json:"step"`
	ServiceID   string `json:"serviceId,omitempty"`
	Service     string `json:"service,omitempty"`
	Date        string `json:"date,omitempty"`
	Time        string `json:"time,omitempty"`
	PatientName string `json:"patientName,omitempty"`
	Email       string `json:"email,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Reason      string `json:"reason,omitempty"`
}

// NewDraft starts a fresh booking flow.
func NewDraft() Draft {
	return Draft{Step: StepServiceSelection}
}

// Event carries field updates extracted from one user turn. Empty fields
// leave the draft untouched; repeated non-empty fields overwrite (last
// wins). Cancel aborts the flow from any state.
type Event struct {
	ServiceID   string
	Service     string
	Date        string
	Time        string
	PatientName string
	Email       string
	Phone       string
	Reason      string
	Cancel      bool
}

// Transition merges the event into the draft and advances the step as far
// as the accumulated data allows. Out-of-order fields (a time before a
// date) are stored but never move the step past its gating requirement.
// The confirmation -> complete transition is not reachable here: it happens
// only through a successful submission.
func Transition(d Draft, ev Event) Draft {
	if d.Step.Terminal() {
		return d
	}
	if ev.Cancel {
		d.Step = StepCancelled
		return d
	}

	if ev.ServiceID != "" {
		d.ServiceID = ev.ServiceID
	}
	if ev.Service != "" {
		d.Service = ev.Service
	}
	if ev.Date != "" {
		d.Date = ev.Date
	}
	if ev.Time != "" {
		d.Time = ev.Time
	}
	if ev.PatientName != "" {
		d.PatientName = ev.PatientName
	}
	if ev.Email != "" {
		d.Email = ev.Email
	}
	if ev.Phone != "" {
		d.Phone = ev.Phone
	}
	if ev.Reason != "" {
		d.Reason = ev.Reason
	}

	for {
		next, ok := advance(d)
		if !ok {
			return d
		}
		d.Step = next
	}
}

// advance returns the next step if the current step's gate is satisfied.
func advance(d Draft) (Step, bool) {
	switch d.Step {
	case StepServiceSelection:
		if d.ServiceID != "" && d.Service != "" {
			return StepDateSelection, true
		}
	case StepDateSelection:
		if d.Date != "" {
			return StepTimeSelection, true
		}
	case StepTimeSelection:
		if d.Time != "" {
			return StepPatientInfo, true
		}
	case StepPatientInfo:
		if d.PatientName != "" && d.Email != "" && d.Phone != "" {
			return StepConfirmation, true
		}
	}
	return "", false
}
