// Package intent classifies a user turn into one of a closed set of
// conversational intents using ordered pattern rules.
package intent

// Intent is the closed-vocabulary classification of a user's goal for one turn.
type Intent string

const (
	Greeting     Intent = "greeting"
	Booking      Intent = "booking"
	Services     Intent = "services"
	HospitalInfo Intent = "hospital_info"
	Directions   Intent = "directions"
	Hours        Intent = "hours"
	Emergency    Intent = "emergency"
	Doctors      Intent = "doctors"
	Facilities   Intent = "facilities"
	Goodbye      Intent = "goodbye"
	Help         Intent = "help"
	Unknown      Intent = "unknown"
)

// IsBookingRelated reports whether the intent should be handled by the
// booking dialogue rather than content search.
func (i Intent) IsBookingRelated() bool {
	return i == Booking
}
