package locale

import "regexp"

// Detector scores free text against per-locale keyword patterns. Detection is
// advisory: callers decide whether to act on the suggestion, and a session
// with a locked locale ignores it entirely.
type Detector struct {
	patterns map[string][]*regexp.Regexp
}

// NewDetector compiles the keyword pattern sets for every catalog locale.
// Note: \b is ASCII-only in Go regexp, so patterns containing ɛ/ɔ avoid word
// boundaries next to those letters.
func NewDetector() *Detector {
	return &Detector{
		patterns: map[string][]*regexp.Regexp{
			EnglishGH: compileAll(
				`\b(the|and|please|thank|hello|want|need|appointment|doctor|hospital)\b`,
				`\b(what|when|where|how|can|could|would)\b`,
			),
			TwiGH: compileAll(
				`\b(akwaaba|medaase|meda wo ase|ayaresabea|aane|daabi)\b`,
				`\b(mepa wo ky[eɛ]w|mesr[eɛ] wo|y[eɛ]fr[eɛ] me)`,
				`(mep[eɛ] s[eɛ]|mehia|[eɛ]te s[eɛ]n|oduruy[eɛ]fo)`,
			),
		},
	}
}

func compileAll(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, regexp.MustCompile(`(?i)`+e))
	}
	return out
}

// Detect returns the locale whose patterns match the text the most. Ties and
// all-zero scores keep the current locale, so the result is always valid.
func (d *Detector) Detect(text, current string) string {
	current = Normalize(current)
	if text == "" {
		return current
	}

	best := current
	bestScore := 0
	tied := false
	for _, l := range catalog {
		score := 0
		for _, re := range d.patterns[l.Code] {
			score += len(re.FindAllStringIndex(text, -1))
		}
		switch {
		case score > bestScore:
			best = l.Code
			bestScore = score
			tied = false
		case score == bestScore && score > 0 && l.Code != best:
			tied = true
		}
	}

	if bestScore == 0 || tied {
		return current
	}
	return best
}
