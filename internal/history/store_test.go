package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/accrahealth/carebot/internal/intent"
)

func turn(userText string, in intent.Intent, latency int64, search bool) Turn {
	return Turn{
		Timestamp:        time.Now(),
		UserText:         userText,
		Intent:           in,
		BotResponse:      "ok",
		ResponseType:     "text",
		Locale:           "en-GH",
		LatencyMS:        latency,
		HadSearchResults: search,
	}
}

func TestStoreAppendAndRead(t *testing.T) {
	s := NewStore(10)
	s.Append(turn("hello", intent.Greeting, 5, false))
	s.Append(turn("book appointment", intent.Booking, 12, false))

	turns := s.Turns()
	assert.Len(t, turns, 2)
	assert.Equal(t, "hello", turns[0].UserText)

	last, ok := s.Last()
	assert.True(t, ok)
	assert.Equal(t, "book appointment", last.UserText)
}

func TestStoreEvictsOldestAtCap(t *testing.T) {
	s := NewStore(3)
	for i, text := range []string{"one", "two", "three", "four", "five"} {
		s.Append(turn(text, intent.Unknown, int64(i), false))
	}
	turns := s.Turns()
	assert.Len(t, turns, 3)
	assert.Equal(t, "three", turns[0].UserText)
	assert.Equal(t, "five", turns[2].UserText)
}

func TestStoreDefaultLimit(t *testing.T) {
	s := NewStore(0)
	for i := 0; i < DefaultLimit+7; i++ {
		s.Append(turn("msg", intent.Unknown, 1, false))
	}
	assert.Equal(t, DefaultLimit, s.Len())
}

func TestStoreAnalytics(t *testing.T) {
	s := NewStore(10)
	assert.Equal(t, Analytics{}, s.Analytics())

	s.Append(turn("hello", intent.Greeting, 10, false))
	s.Append(turn("services?", intent.Services, 20, true))
	s.Append(turn("more services", intent.Services, 30, true))

	a := s.Analytics()
	assert.Equal(t, 3, a.TurnCount)
	assert.Equal(t, 2, a.DistinctIntents)
	assert.InDelta(t, 20.0, a.AvgLatencyMS, 0.001)
	assert.Equal(t, 2, a.TurnsWithSearch)
}

func TestStoreReset(t *testing.T) {
	s := NewStore(10)
	s.Append(turn("hello", intent.Greeting, 1, false))
	s.Reset()
	assert.Equal(t, 0, s.Len())
	_, ok := s.Last()
	assert.False(t, ok)
}
