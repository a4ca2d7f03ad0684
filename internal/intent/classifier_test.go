package intent

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Intent
	}{
		{"greeting", "Hello there", Greeting},
		{"greeting twi", "maakye, wo ho te sɛn?", Greeting},
		{"booking", "I'd like to book an appointment", Booking},
		{"booking schedule", "can you schedule me for Friday", Booking},
		{"services", "what services do you offer?", Services},
		{"services specialty", "do you do cardiology?", Services},
		{"hospital info", "tell me about your hospital", HospitalInfo},
		{"directions", "how do I get to the hospital?", Directions},
		{"hours", "what are your visiting hours?", Hours},
		{"emergency", "this is an emergency!", Emergency},
		{"doctors", "which doctors work in the clinic?", Doctors},
		{"facilities", "do you have a pharmacy and parking?", Facilities},
		{"goodbye", "ok thanks, bye", Goodbye},
		{"help", "help", Help},
		{"unknown", "the weather is nice today", Unknown},
		{"empty", "", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.text); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

// Emergency outranks every other pattern, even when the text also matches a
// lower-priority rule.
func TestClassifyEmergencyPriority(t *testing.T) {
	inputs := []string{
		"I need emergency help now",
		"help, this is urgent",
		"hello, I think this is an emergency",
		"book me an ambulance",
		"my father has chest pain, can I book an appointment?",
	}
	for _, text := range inputs {
		if got := Classify(text); got != Emergency {
			t.Errorf("Classify(%q) = %q, want emergency", text, got)
		}
	}
}

// Booking outranks the broad doctors/help patterns.
func TestClassifyBookingPriority(t *testing.T) {
	inputs := []string{
		"book an appointment with a doctor",
		"I want to schedule a consultation, can you help?",
	}
	for _, text := range inputs {
		if got := Classify(text); got != Booking {
			t.Errorf("Classify(%q) = %q, want booking", text, got)
		}
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	text := "can you help me find the pharmacy?"
	first := Classify(text)
	for i := 0; i < 10; i++ {
		if got := Classify(text); got != first {
			t.Fatalf("Classify not deterministic: %q then %q", first, got)
		}
	}
}

func TestIsBookingRelated(t *testing.T) {
	if !Booking.IsBookingRelated() {
		t.Error("booking should be booking-related")
	}
	for _, i := range []Intent{Greeting, Services, Emergency, Unknown} {
		if i.IsBookingRelated() {
			t.Errorf("%q should not be booking-related", i)
		}
	}
}
