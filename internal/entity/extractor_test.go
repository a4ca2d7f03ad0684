package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func find(entities []Entity, t Type) []Entity {
	var out []Entity
	for _, e := range entities {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

func TestExtractDates(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantValue  string
		wantConf   float64
		wantAtMost int
	}{
		{"iso date", "book me for 2026-09-15 please", "2026-09-15", 0.9, 1},
		{"slash date", "is 12/9 free?", "12/9", 0.8, 1},
		{"slash date with year", "maybe 12/09/2026", "12/09/2026", 0.8, 1},
		{"tomorrow", "Tomorrow works for me", "tomorrow", 0.8, 1},
		{"weekday", "can we do next Friday?", "next friday", 0.8, 1},
		{"month day", "the 3rd of October", "3rd of october", 0.8, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dates := find(Extract(tt.input), TypeDate)
			if assert.NotEmpty(t, dates, "no date extracted from %q", tt.input) {
				assert.Equal(t, tt.wantValue, dates[0].Value)
				assert.InDelta(t, tt.wantConf, dates[0].Confidence, 0.001)
			}
			assert.LessOrEqual(t, len(dates), tt.wantAtMost)
		})
	}
}

func TestExtractTimes(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValue string
		wantConf  float64
	}{
		{"am pm", "around 4:30 PM would be great", "4:30 pm", 0.9},
		{"hour only am pm", "say 9am?", "9am", 0.9},
		{"24 hour", "the 14:00 slot", "14:00", 0.85},
		{"day part", "sometime in the Morning", "morning", 0.85},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			times := find(Extract(tt.input), TypeTime)
			if assert.NotEmpty(t, times, "no time extracted from %q", tt.input) {
				assert.Equal(t, tt.wantValue, times[0].Value)
				assert.InDelta(t, tt.wantConf, times[0].Confidence, 0.001)
			}
		})
	}
}

func TestExtractTimesNoDoubleCount(t *testing.T) {
	// "4:30 pm" must not also surface as a bare 24h match.
	times := find(Extract("see you at 4:30 pm"), TypeTime)
	assert.Len(t, times, 1)
	assert.Equal(t, "4:30 pm", times[0].Value)
}

func TestExtractSpecialties(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"I need a cardiology appointment", "cardiology"},
		{"something for my heart", "cardiology"},
		{"my child needs the paediatrics clinic", "pediatrics"},
		{"I want to see the dentist", "dental"},
		{"is the eye clinic open?", "ophthalmology"},
		{"book me for physio", "physiotherapy"},
		{"just a general check-up", "general medicine"},
		{"antenatal visit", "obstetrics & gynecology"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			specs := find(Extract(tt.input), TypeSpecialty)
			if assert.NotEmpty(t, specs, "no specialty extracted from %q", tt.input) {
				assert.Equal(t, tt.want, specs[0].Value)
				assert.InDelta(t, 0.9, specs[0].Confidence, 0.001)
			}
		})
	}
}

func TestExtractSpecialtyWordBoundary(t *testing.T) {
	// "entire" must not trigger the ent specialty.
	specs := find(Extract("the entire family is coming"), TypeSpecialty)
	assert.Empty(t, specs)
}

func TestExtractNames(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"my name is Ama Mensah", "Ama Mensah"},
		{"Hi, I'm Kwame", "Kwame"},
		{"this is Abena Owusu speaking", "Abena Owusu"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			names := find(Extract(tt.input), TypeName)
			if assert.NotEmpty(t, names, "no name extracted from %q", tt.input) {
				assert.Equal(t, tt.want, names[0].Value)
				assert.InDelta(t, 0.7, names[0].Confidence, 0.001)
			}
		})
	}
}

func TestExtractNamesRejectsLowercase(t *testing.T) {
	names := find(Extract("i'm looking for the pharmacy"), TypeName)
	assert.Empty(t, names)
}

func TestExtractMultipleEntities(t *testing.T) {
	got := Extract("my name is Kofi, I need cardiology tomorrow at 10:00 am")
	assert.NotEmpty(t, find(got, TypeName))
	assert.NotEmpty(t, find(got, TypeSpecialty))
	assert.NotEmpty(t, find(got, TypeDate))
	assert.NotEmpty(t, find(got, TypeTime))
}

func TestExtractEmptyInput(t *testing.T) {
	assert.Empty(t, Extract(""))
	assert.Empty(t, Extract("   "))
}

func TestExtractEmail(t *testing.T) {
	assert.Equal(t, "ama.mensah@example.com", ExtractEmail("reach me at Ama.Mensah@example.com thanks"))
	assert.Equal(t, "", ExtractEmail("no address here"))
}

func TestExtractPhone(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"call me on 024 123 4567", "0241234567"},
		{"my number is +233 24 123 4567", "+233241234567"},
		{"0302123456 is the line", "0302123456"},
		{"no digits here", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtractPhone(tt.input), "input %q", tt.input)
	}
}
