// Package locale holds the supported-locale catalog, keyword-based language
// detection, and the per-locale response template table used by the assistant.
package locale

// Locale is an immutable catalog entry for a supported response language.
type Locale struct {
	Code        string
	DisplayName string
	NativeName  string
}

const (
	// EnglishGH is the default locale for the site.
	EnglishGH = "en-GH"
	// TwiGH is Akan Twi as spoken in Ghana.
	TwiGH = "tw-GH"
)

var catalog = []Locale{
	{Code: EnglishGH, DisplayName: "English (Ghana)", NativeName: "English"},
	{Code: TwiGH, DisplayName: "Twi (Ghana)", NativeName: "Twi"},
}

// Supported returns the full locale catalog in registration order.
func Supported() []Locale {
	out := make([]Locale, len(catalog))
	copy(out, catalog)
	return out
}

// IsSupported reports whether code names a catalog locale.
func IsSupported(code string) bool {
	for _, l := range catalog {
		if l.Code == code {
			return true
		}
	}
	return false
}

// Normalize maps an arbitrary code onto a catalog locale, defaulting to en-GH.
func Normalize(code string) string {
	if IsSupported(code) {
		return code
	}
	return EnglishGH
}
