package intent

import (
	"regexp"
	"strings"
)

type rule struct {
	tag      Intent
	patterns []*regexp.Regexp
}

// rules is evaluated top to bottom and the first match wins. The order is a
// fixed priority, not alphabetical: urgent and specific intents come before
// broad ones so that, for example, "I need emergency help" is never shadowed
// by the help patterns. Changing this order changes behaviour; the priority
// tests pin it down.
var rules = []rule{
	{Emergency, compile(
		`\bemergenc(y|ies)\b`,
		`\burgent(ly)?\b`,
		`\b(chest pain|severe bleeding|unconscious|not breathing|accident|collapsed)\b`,
		`\bambulance\b`,
	)},
	{Booking, compile(
		`\b(book|schedule|reserve)\b`,
		`\b(appointment|consultation)\b`,
		`\bsee (a|the) doctor\b`,
		`\bmake (an|a) (appointment|booking)\b`,
	)},
	{Doctors, compile(
		`\b(doctor|doctors|physician|specialist|consultant)s?\b`,
		`\bwho (treats|handles|sees)\b`,
	)},
	{Hours, compile(
		`\b(opening|closing|visiting) (hours|times?)\b`,
		`\bwhat time (do you|are you) (open|close)\b`,
		`\bwhen (are you|is the hospital) open\b`,
	)},
	{Directions, compile(
		`\b(directions?|how (do i|to) get)\b`,
		`\bwhere (are you|is the hospital) (located|situated)?\b`,
		`\b(address|location)\b`,
	)},
	{Facilities, compile(
		`\b(facilit(y|ies)|ward|laborator(y|ies)|lab|pharmacy|icu|theatre|radiology unit)\b`,
		`\b(parking|wheelchair|accessib)\w*\b`,
	)},
	{Services, compile(
		`\b(services?|treatments?|procedures?|clinics?)\b`,
		`\bwhat do you (offer|do|provide)\b`,
		`\b(cardiology|dermatology|pediatrics|maternity|physiotherapy|dental)\b`,
	)},
	{HospitalInfo, compile(
		`\babout (the|your) hospital\b`,
		`\b(hospital|clinic) (information|details|history)\b`,
		`\btell me about\b`,
	)},
	{Goodbye, compile(
		`\b(bye|goodbye|see you|farewell)\b`,
		`\b(nante yie|thanks,? bye)\b`,
	)},
	{Greeting, compile(
		`^\s*(hi|hello|hey|good (morning|afternoon|evening)|akwaaba|maakye|maaha)\b`,
		`\bhow are you\b`,
		`[eɛ]te s[eɛ]n`,
	)},
	{Help, compile(
		`\bhelp\b`,
		`\bwhat can you do\b`,
		`\b(assist|support) me\b`,
	)},
}

func compile(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, regexp.MustCompile(`(?i)`+e))
	}
	return out
}

// Classify maps normalized text to an intent using the ordered rule list.
// Pure function: no side effects, bounded work per call. Unmatched input
// resolves to Unknown, which is not an error condition.
func Classify(text string) Intent {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return Unknown
	}
	for _, r := range rules {
		for _, re := range r.patterns {
			if re.MatchString(text) {
				return r.tag
			}
		}
	}
	return Unknown
}
