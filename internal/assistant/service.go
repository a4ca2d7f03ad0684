package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/accrahealth/carebot/internal/dialogue"
	"github.com/accrahealth/carebot/internal/entity"
	"github.com/accrahealth/carebot/internal/history"
	"github.com/accrahealth/carebot/internal/intent"
	"github.com/accrahealth/carebot/internal/locale"
	"github.com/accrahealth/carebot/internal/model"
	"github.com/accrahealth/carebot/internal/observability/metrics"
	"github.com/accrahealth/carebot/internal/search"
	"github.com/accrahealth/carebot/pkg/logging"
)

// Routing is the slice of the model router the assistant depends on.
type Routing interface {
	Route(ctx context.Context, req model.Request, opts model.RouteOptions) model.Response
}

// Options bundles the assistant's dependencies and tunables.
type Options struct {
	Detector       *locale.Detector
	Search         *search.Engine
	Dialogue       *dialogue.Manager
	Router         Routing
	Archive        *history.Archive
	Metrics        *metrics.ConversationMetrics
	Logger         *logging.Logger
	DefaultLocale  string
	AutoDetect     bool
	VoiceThreshold float64
	SearchLimit    int
	HistoryLimit   int
}

// Assistant runs the per-turn pipeline. One instance serves all sessions;
// it holds no per-session state.
type Assistant struct {
	detector       *locale.Detector
	search         *search.Engine
	dialogue       *dialogue.Manager
	router         Routing
	archive        *history.Archive
	metrics        *metrics.ConversationMetrics
	logger         *logging.Logger
	defaultLocale  string
	autoDetect     bool
	voiceThreshold float64
	searchLimit    int
	historyLimit   int
}

func New(opts Options) *Assistant {
	if opts.Search == nil {
		panic("assistant: search engine is required")
	}
	if opts.Dialogue == nil {
		panic("assistant: dialogue manager is required")
	}
	if opts.Router == nil {
		panic("assistant: model router is required")
	}
	if opts.Detector == nil {
		opts.Detector = locale.NewDetector()
	}
	if opts.Logger == nil {
		opts.Logger = logging.Default()
	}
	if opts.VoiceThreshold <= 0 {
		opts.VoiceThreshold = 0.75
	}
	if opts.SearchLimit <= 0 {
		opts.SearchLimit = 5
	}
	return &Assistant{
		detector:       opts.Detector,
		search:         opts.Search,
		dialogue:       opts.Dialogue,
		router:         opts.Router,
		archive:        opts.Archive,
		metrics:        opts.Metrics,
		logger:         opts.Logger,
		defaultLocale:  locale.Normalize(opts.DefaultLocale),
		autoDetect:     opts.AutoDetect,
		voiceThreshold: opts.VoiceThreshold,
		searchLimit:    opts.SearchLimit,
		historyLimit:   opts.HistoryLimit,
	}
}

// NewSession creates a session bound to the assistant's default locale.
func (a *Assistant) NewSession(id string) *Session {
	return NewSession(id, a.defaultLocale, a.historyLimit)
}

// HandleTurn processes one user message and always returns a reply; the
// conversation is never left without a bot response.
func (a *Assistant) HandleTurn(ctx context.Context, sess *Session, userText string) Reply {
	start := time.Now()

	if a.autoDetect && !sess.LocaleLocked() {
		sess.setDetectedLocale(a.detector.Detect(userText, sess.Locale()))
	}
	loc := sess.Locale()

	in := intent.Classify(userText)
	ents := entity.Extract(userText)

	var reply Reply
	switch {
	case in == intent.Emergency:
		reply = a.handleEmergency(ctx, loc, userText)
	case in == intent.Greeting:
		reply = Reply{Type: ResponseText, Text: locale.Template(loc, locale.TplGreeting), Intent: in}
	case in == intent.Goodbye:
		reply = Reply{Type: ResponseText, Text: locale.Template(loc, locale.TplGoodbye), Intent: in}
	case in.IsBookingRelated() || sess.BookingActive():
		reply = a.handleBooking(ctx, sess, loc, userText, ents)
	default:
		reply = a.handleQuery(ctx, loc, in, userText, model.PriorityBalanced)
	}

	reply.Locale = loc
	reply.Intent = in
	a.record(ctx, sess, history.Turn{
		Timestamp:        start,
		UserText:         userText,
		Intent:           in,
		Entities:         ents,
		BotResponse:      reply.Text,
		ResponseType:     string(reply.Type),
		Locale:           loc,
		Model:            reply.Model,
		LatencyMS:        time.Since(start).Milliseconds(),
		HadSearchResults: len(reply.Results) > 0,
	})
	return reply
}

// HandleVoiceTurn applies the confidence gate before processing. Transcripts
// below the threshold get a clarification prompt instead of an autonomous
// reply.
func (a *Assistant) HandleVoiceTurn(ctx context.Context, sess *Session, transcript string, confidence float64) Reply {
	if confidence < a.voiceThreshold {
		loc := sess.Locale()
		a.logger.Debug("assistant: low-confidence transcript rejected",
			"session", sess.ID, "confidence", confidence)
		return Reply{
			Type:   ResponseSystem,
			Text:   locale.Template(loc, locale.TplLowConfidence),
			Locale: loc,
			Intent: intent.Unknown,
		}
	}
	return a.HandleTurn(ctx, sess, transcript)
}

func (a *Assistant) handleEmergency(ctx context.Context, loc, userText string) Reply {
	resp := a.router.Route(ctx, model.Request{
		SystemPrompt: a.systemPrompt(loc, nil),
		UserPrompt:   userText,
		MaxTokens:    400,
	}, model.RouteOptions{
		Intent:         intent.Emergency,
		Locale:         loc,
		EmergencyLevel: model.EmergencyHigh,
	})

	text := locale.Template(loc, locale.TplEmergency)
	if resp.Success && resp.Text != "" {
		text = text + "\n\n" + resp.Text
	}
	return Reply{Type: ResponseText, Text: text, Model: resp.Model}
}

func (a *Assistant) handleBooking(ctx context.Context, sess *Session, loc string, userText string, ents []entity.Entity) Reply {
	draft, prompt := a.dialogue.HandleTurn(ctx, sess.Draft(), loc, userText, ents)
	sess.setDraft(draft)

	if prompt.ConfirmationID != "" {
		a.metrics.RecordBooking("success")
	} else if prompt.Kind == dialogue.PromptError {
		a.metrics.RecordBooking("failure")
	}

	return Reply{
		Type:           ResponseType(prompt.Kind),
		Text:           prompt.Text,
		ConfirmationID: prompt.ConfirmationID,
	}
}

func (a *Assistant) handleQuery(ctx context.Context, loc string, in intent.Intent, userText string, prio model.Priority) Reply {
	a.metrics.RecordSearchQuery()
	results := a.search.Search(userText, search.Options{
		Limit:    a.searchLimit,
		MinScore: 0.2,
		Fuzzy:    true,
	})

	resp := a.router.Route(ctx, model.Request{
		SystemPrompt: a.systemPrompt(loc, results),
		UserPrompt:   userText,
		MaxTokens:    600,
	}, model.RouteOptions{
		Intent:   in,
		Priority: prio,
		Locale:   loc,
	})

	reply := Reply{Type: ResponseText, Text: resp.Text, Model: resp.Model}
	if resp.Streamed {
		reply.Streamed = true
		reply.Stream = resp.Stream
		reply.Text = ""
	}
	if len(results) > 0 {
		reply.Results = results
		if resp.Success && !resp.Streamed {
			reply.Type = ResponseEnhancedContent
		}
	} else if resp.Success && !resp.Streamed && resp.Text == "" {
		reply.Text = locale.Template(loc, locale.TplNoResults)
	}
	return reply
}

// systemPrompt frames the model call with the hospital persona, the reply
// locale, and any search context.
func (a *Assistant) systemPrompt(loc string, results []search.Result) string {
	var b strings.Builder
	b.WriteString("You are the virtual assistant for Accra Heights Hospital in Accra, Ghana. ")
	b.WriteString("Answer questions about the hospital's services, doctors, facilities, visiting hours, and directions. ")
	b.WriteString("Be warm and concise. Never give medical diagnoses; advise seeing a doctor instead.")
	if loc == locale.TwiGH {
		b.WriteString(" Reply in Twi.")
	} else {
		b.WriteString(" Reply in English.")
	}
	if len(results) > 0 {
		b.WriteString("\n\nRelevant hospital information:\n")
		for _, r := range results {
			fmt.Fprintf(&b, "- %s: %s\n", r.Item.Title, r.Item.RawContent)
		}
	}
	return b.String()
}

func (a *Assistant) record(ctx context.Context, sess *Session, t history.Turn) {
	sess.History().Append(t)
	a.metrics.RecordTurn(string(t.Intent), t.ResponseType)
	if err := a.archive.Append(ctx, sess.ID, t); err != nil {
		a.logger.Warn("assistant: transcript archive append failed",
			"session", sess.ID, "error", err)
	}
}
