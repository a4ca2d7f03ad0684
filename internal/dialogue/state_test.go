package dialogue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransitionAdvancesOnlyWhenGateMet(t *testing.T) {
	d := NewDraft()
	assert.Equal(t, StepServiceSelection, d.Step)

	d = Transition(d, Event{ServiceID: "svc-cardiology", Service: "Cardiology"})
	assert.Equal(t, StepDateSelection, d.Step)

	d = Transition(d, Event{Date: "tomorrow"})
	assert.Equal(t, StepTimeSelection, d.Step)

	d = Transition(d, Event{Time: "10:00 am"})
	assert.Equal(t, StepPatientInfo, d.Step)

	d = Transition(d, Event{PatientName: "Ama Mensah", Email: "ama@example.com", Phone: "0241234567"})
	assert.Equal(t, StepConfirmation, d.Step)
}

func TestTransitionOutOfOrderFieldStoredButNoAdvance(t *testing.T) {
	d := NewDraft()
	d = Transition(d, Event{ServiceID: "svc-dental", Service: "Dental Clinic"})
	assert.Equal(t, StepDateSelection, d.Step)

	// A time with no date is kept but must not move past date_selection.
	d = Transition(d, Event{Time: "2:00 pm"})
	assert.Equal(t, StepDateSelection, d.Step)
	assert.Equal(t, "2:00 pm", d.Time)

	// Once the date arrives the stored time lets the flow skip straight
	// through time_selection.
	d = Transition(d, Event{Date: "2026-09-20"})
	assert.Equal(t, StepPatientInfo, d.Step)
}

func TestTransitionNeverReachesConfirmationWithMissingFields(t *testing.T) {
	events := []Event{
		{Time: "9:00 am"},
		{PatientName: "Kofi Boateng", Email: "kofi@example.com", Phone: "0209876543"},
		{Date: "next friday"},
	}
	d := NewDraft()
	for _, ev := range events {
		d = Transition(d, ev)
		if d.Step == StepConfirmation || d.Step == StepComplete {
			assert.NotEmpty(t, d.ServiceID)
			assert.NotEmpty(t, d.Date)
			assert.NotEmpty(t, d.Time)
			assert.NotEmpty(t, d.PatientName)
		}
	}
	// No service was ever supplied, so the flow must still be gated there.
	assert.Equal(t, StepServiceSelection, d.Step)
	assert.Equal(t, "next friday", d.Date)
	assert.Equal(t, "9:00 am", d.Time)
}

func TestTransitionLastEntityWins(t *testing.T) {
	d := NewDraft()
	d = Transition(d, Event{ServiceID: "a", Service: "A", Date: "monday"})
	d = Transition(d, Event{Date: "tuesday"})
	assert.Equal(t, "tuesday", d.Date)
}

func TestTransitionCancelFromAnyState(t *testing.T) {
	for _, step := range []Step{StepServiceSelection, StepDateSelection, StepTimeSelection, StepPatientInfo, StepConfirmation} {
		d := Draft{Step: step}
		d = Transition(d, Event{Cancel: true})
		assert.Equal(t, StepCancelled, d.Step, "from %s", step)
	}
}

func TestTransitionTerminalStatesFrozen(t *testing.T) {
	done := Draft{Step: StepComplete}
	assert.Equal(t, done, Transition(done, Event{Date: "tomorrow"}))

	cancelled := Draft{Step: StepCancelled}
	assert.Equal(t, cancelled, Transition(cancelled, Event{ServiceID: "x", Service: "X"}))
}

func TestTransitionNeverSkipsToComplete(t *testing.T) {
	d := Draft{
		Step: StepConfirmation, ServiceID: "svc", Service: "Svc",
		Date: "tomorrow", Time: "9am",
		PatientName: "A", Email: "a@b.com", Phone: "0241111111",
	}
	// A fully populated draft stays at confirmation; only a successful
	// submission completes it.
	assert.Equal(t, StepConfirmation, Transition(d, Event{}).Step)
}
