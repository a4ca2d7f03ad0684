// Package entity extracts booking-relevant values (dates, times, specialties,
// names) from free text using independent regex families. Extraction misses
// are not errors: fewer entities simply mean the dialogue re-prompts.
package entity

import (
	"regexp"
	"strings"
)

// Type is the closed set of entity kinds the extractor produces.
type Type string

const (
	TypeDate      Type = "date"
	TypeTime      Type = "time"
	TypeSpecialty Type = "specialty"
	TypeName      Type = "name"
)

// Entity is a single extracted value with a per-family confidence tag.
type Entity struct {
	Type       Type    `json:"type"`
	Value      string  `json:"value"`
	Confidence float64 `json:"confidence"`
}

// Confidence constants are fixed per regex family, not learned.
const (
	confDateISO      = 0.9
	confDate         = 0.8
	confTimeExplicit = 0.9
	confTime         = 0.85
	confSpecialty    = 0.9
	confName         = 0.7
)

var (
	isoDateRE     = regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`)
	slashDateRE   = regexp.MustCompile(`\b\d{1,2}[/.]\d{1,2}(?:[/.]\d{2,4})?\b`)
	relativeDayRE = regexp.MustCompile(`(?i)\b(today|tomorrow|next week|next month|(?:next |this )?(monday|tuesday|wednesday|thursday|friday|saturday|sunday))\b`)
	monthDayRE    = regexp.MustCompile(`(?i)\b(\d{1,2})(?:st|nd|rd|th)?\s+(?:of\s+)?(january|february|march|april|may|june|july|august|september|october|november|december)\b`)

	clockTimeRE  = regexp.MustCompile(`(?i)\b(\d{1,2})(?::(\d{2}))?\s*(am|pm)\b`)
	time24RE     = regexp.MustCompile(`\b([01]?\d|2[0-3]):[0-5]\d\b`)
	dayPartRE    = regexp.MustCompile(`(?i)\b(morning|afternoon|evening|noon|midday)\b`)
	// Case-insensitive lead-in, case-sensitive capture: requiring a
	// capitalized token avoids capturing "i'm looking" as a name.
	namePhraseRE = regexp.MustCompile(`\b(?i:my name is|i am called|this is|i'm)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+){0,2})`)
)

// specialties is the closed vocabulary of departments the extractor
// recognizes; aliases map onto the canonical department name.
var specialties = []struct {
	canonical string
	aliases   []string
}{
	{"cardiology", []string{"cardiology", "heart", "cardiac"}},
	{"dermatology", []string{"dermatology", "skin"}},
	{"pediatrics", []string{"pediatrics", "paediatrics", "children's clinic", "child health"}},
	{"orthopedics", []string{"orthopedics", "orthopaedics", "bone", "fracture"}},
	{"obstetrics & gynecology", []string{"gynecology", "gynaecology", "obstetrics", "maternity", "antenatal"}},
	{"neurology", []string{"neurology", "neurologist"}},
	{"ophthalmology", []string{"ophthalmology", "eye clinic", "eye doctor"}},
	{"ent", []string{"ent", "ear nose and throat"}},
	{"dental", []string{"dental", "dentist", "dentistry"}},
	{"radiology", []string{"radiology", "x-ray", "xray", "scan", "ultrasound"}},
	{"physiotherapy", []string{"physiotherapy", "physio"}},
	{"psychiatry", []string{"psychiatry", "mental health"}},
	{"general medicine", []string{"general medicine", "general consultation", "general practitioner", "check-up", "checkup"}},
}

// Extract returns every entity found in the text. Multiple matches of the
// same type are all returned; precedence (last wins) is the dialogue
// manager's decision, not the extractor's.
func Extract(text string) []Entity {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var out []Entity
	out = append(out, extractDates(text)...)
	out = append(out, extractTimes(text)...)
	out = append(out, extractSpecialties(text)...)
	out = append(out, extractNames(text)...)
	return out
}

func extractDates(text string) []Entity {
	var out []Entity
	for _, m := range isoDateRE.FindAllString(text, -1) {
		out = append(out, Entity{Type: TypeDate, Value: m, Confidence: confDateISO})
	}
	for _, m := range slashDateRE.FindAllString(text, -1) {
		out = append(out, Entity{Type: TypeDate, Value: m, Confidence: confDate})
	}
	for _, m := range relativeDayRE.FindAllString(text, -1) {
		out = append(out, Entity{Type: TypeDate, Value: strings.ToLower(m), Confidence: confDate})
	}
	for _, m := range monthDayRE.FindAllString(text, -1) {
		out = append(out, Entity{Type: TypeDate, Value: strings.ToLower(m), Confidence: confDate})
	}
	return out
}

func extractTimes(text string) []Entity {
	var out []Entity
	claimed := map[int]bool{}
	for _, loc := range clockTimeRE.FindAllStringIndex(text, -1) {
		claimed[loc[0]] = true
		out = append(out, Entity{Type: TypeTime, Value: strings.ToLower(text[loc[0]:loc[1]]), Confidence: confTimeExplicit})
	}
	for _, loc := range time24RE.FindAllStringIndex(text, -1) {
		// Skip 24h matches already covered by an am/pm match (e.g. "4:30 pm").
		if claimed[loc[0]] {
			continue
		}
		out = append(out, Entity{Type: TypeTime, Value: text[loc[0]:loc[1]], Confidence: confTime})
	}
	for _, m := range dayPartRE.FindAllString(text, -1) {
		out = append(out, Entity{Type: TypeTime, Value: strings.ToLower(m), Confidence: confTime})
	}
	return out
}

func extractSpecialties(text string) []Entity {
	lower := strings.ToLower(text)
	var out []Entity
	seen := map[string]bool{}
	for _, s := range specialties {
		for _, alias := range s.aliases {
			if containsWord(lower, alias) && !seen[s.canonical] {
				out = append(out, Entity{Type: TypeSpecialty, Value: s.canonical, Confidence: confSpecialty})
				seen[s.canonical] = true
				break
			}
		}
	}
	return out
}

func containsWord(haystack, needle string) bool {
	idx := 0
	for {
		i := strings.Index(haystack[idx:], needle)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(needle)
		beforeOK := start == 0 || !isWordByte(haystack[start-1])
		afterOK := end == len(haystack) || !isWordByte(haystack[end])
		if beforeOK && afterOK {
			return true
		}
		idx = start + 1
	}
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}

func extractNames(text string) []Entity {
	var out []Entity
	for _, m := range namePhraseRE.FindAllStringSubmatch(text, -1) {
		if len(m) > 1 {
			out = append(out, Entity{Type: TypeName, Value: m[1], Confidence: confName})
		}
	}
	return out
}

// emailRE matches common email address formats.
var emailRE = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)

// ExtractEmail returns the first email address in the text, lower-cased, or
// "" if none is present. Emails feed the booking draft directly and are not
// part of the entity vocabulary.
func ExtractEmail(text string) string {
	if m := emailRE.FindString(text); m != "" {
		return strings.ToLower(m)
	}
	return ""
}

// phoneRE accepts Ghanaian and international formats (0302 123 456,
// +233 24 123 4567, 0241234567).
var phoneRE = regexp.MustCompile(`(?:\+233[\s-]?|0)\d[\d\s-]{7,12}\d`)

// ExtractPhone returns the first phone number found with spacing removed, or
// "" if none is present.
func ExtractPhone(text string) string {
	m := phoneRE.FindString(text)
	if m == "" {
		return ""
	}
	var b strings.Builder
	for _, r := range m {
		if r == '+' || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
