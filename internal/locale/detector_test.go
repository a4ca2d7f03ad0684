package locale

import "testing"

func TestDetect(t *testing.T) {
	d := NewDetector()

	tests := []struct {
		name    string
		text    string
		current string
		want    string
	}{
		{
			name:    "english phrasing keeps english",
			text:    "I want to book an appointment with a doctor please",
			current: EnglishGH,
			want:    EnglishGH,
		},
		{
			name:    "twi keywords switch from english",
			text:    "Mepa wo kyɛw, mepɛ sɛ mehunu oduruyɛfoɔ",
			current: EnglishGH,
			want:    TwiGH,
		},
		{
			name:    "twi greeting detected",
			text:    "akwaaba! ɛte sɛn?",
			current: EnglishGH,
			want:    TwiGH,
		},
		{
			name:    "no matches keep current",
			text:    "zzz 12345",
			current: TwiGH,
			want:    TwiGH,
		},
		{
			name:    "empty text keeps current",
			text:    "",
			current: TwiGH,
			want:    TwiGH,
		},
		{
			name:    "unknown current normalized to english",
			text:    "qqqq",
			current: "fr-FR",
			want:    EnglishGH,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.Detect(tt.text, tt.current); got != tt.want {
				t.Errorf("Detect(%q, %q) = %q, want %q", tt.text, tt.current, got, tt.want)
			}
		})
	}
}

func TestDetectAlwaysReturnsSupportedLocale(t *testing.T) {
	d := NewDetector()
	for _, text := range []string{"", "hello", "medaase", "42", "mixed medaase hello please"} {
		got := d.Detect(text, "xx-XX")
		if !IsSupported(got) {
			t.Fatalf("Detect(%q) returned unsupported locale %q", text, got)
		}
	}
}

func TestTemplateFallsBackToEnglish(t *testing.T) {
	if Template("fr-FR", TplGreeting) != Template(EnglishGH, TplGreeting) {
		t.Error("unknown locale should fall back to English templates")
	}
	if Template(TwiGH, TplApology) == "" {
		t.Error("Twi apology must be non-empty")
	}
	if Template(TwiGH, TplApology) == Template(EnglishGH, TplApology) {
		t.Error("Twi apology should be localized, not the English text")
	}
}

func TestSupportedCatalog(t *testing.T) {
	locales := Supported()
	if len(locales) != 2 {
		t.Fatalf("expected 2 locales, got %d", len(locales))
	}
	if locales[0].Code != EnglishGH || locales[1].Code != TwiGH {
		t.Errorf("unexpected catalog order: %+v", locales)
	}
}
