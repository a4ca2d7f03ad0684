package model

import (
	"context"
	"sync"
	"time"

	"github.com/accrahealth/carebot/internal/intent"
	"github.com/accrahealth/carebot/internal/locale"
	"github.com/accrahealth/carebot/internal/observability/metrics"
	"github.com/accrahealth/carebot/pkg/logging"
)

// Priority biases provider selection for one call.
type Priority string

const (
	PriorityBalanced Priority = "balanced"
	PriorityCost     Priority = "cost"
	PrioritySpeed    Priority = "speed"
	PriorityQuality  Priority = "quality"
)

// EmergencyHigh forces the emergency selection rule regardless of priority.
const EmergencyHigh = "high"

// RouteOptions steers one routing decision.
type RouteOptions struct {
	Intent         intent.Intent
	Priority       Priority
	HasImages      bool
	Locale         string
	EmergencyLevel string
}

// Response is the router's answer for one turn. Exactly one of Text or
// Stream is populated; Model is "fallback" when no provider served the call.
type Response struct {
	Success  bool               `json:"success"`
	Text     string             `json:"response,omitempty"`
	Stream   <-chan StreamChunk `json:"-"`
	Streamed bool               `json:"streamed"`
	Model    string             `json:"model"`
	Metadata map[string]string  `json:"metadata,omitempty"`
}

// FallbackModel is the reported model name when every provider is down.
const FallbackModel = "fallback"

// Router picks a provider per turn and shields callers from provider
// failures: any provider error becomes the static fallback response.
type Router struct {
	providers   []Provider
	preferences map[intent.Intent][]string
	timeout     time.Duration
	logger      *logging.Logger
	metrics     *metrics.ConversationMetrics

	mu        sync.RWMutex
	available map[string]bool
}

// NewRouter builds a router over the given providers in registration order.
// A zero timeout disables the per-call deadline.
func NewRouter(providers []Provider, timeout time.Duration, logger *logging.Logger, m *metrics.ConversationMetrics) *Router {
	if logger == nil {
		logger = logging.Default()
	}
	return &Router{
		providers:   providers,
		preferences: defaultPreferences(),
		timeout:     timeout,
		logger:      logger,
		metrics:     m,
		available:   make(map[string]bool),
	}
}

// defaultPreferences is the static intent -> ordered provider table. IDs not
// registered are skipped at selection time.
func defaultPreferences() map[intent.Intent][]string {
	return map[intent.Intent][]string{
		intent.Booking:      {"openai", "gemini", "bedrock"},
		intent.Services:     {"gemini", "openai"},
		intent.Doctors:      {"gemini", "openai"},
		intent.Facilities:   {"gemini", "openai"},
		intent.Hours:        {"gemini", "openai"},
		intent.Directions:   {"gemini", "openai"},
		intent.HospitalInfo: {"gemini", "openai"},
		intent.Greeting:     {"gemini"},
		intent.Goodbye:      {"gemini"},
		intent.Help:         {"gemini", "openai"},
		intent.Unknown:      {"openai", "gemini", "bedrock"},
	}
}

// Refresh polls every provider's availability and caches the result. Call
// once at startup and again whenever credentials change.
func (r *Router) Refresh(ctx context.Context) {
	fresh := make(map[string]bool, len(r.providers))
	for _, p := range r.providers {
		id := p.Descriptor().ID
		fresh[id] = p.Available(ctx)
		r.logger.Debug("model: provider availability", "provider", id, "available", fresh[id])
	}
	r.mu.Lock()
	r.available = fresh
	r.mu.Unlock()
}

func (r *Router) isAvailable(ctx context.Context, p Provider) bool {
	id := p.Descriptor().ID
	r.mu.RLock()
	ok, cached := r.available[id]
	r.mu.RUnlock()
	if cached {
		return ok
	}
	ok = p.Available(ctx)
	r.mu.Lock()
	r.available[id] = ok
	r.mu.Unlock()
	return ok
}

// Route selects a provider per the fixed policy and executes the call.
// Errors never propagate: the worst outcome is the locale-appropriate
// fallback response with Model == FallbackModel.
func (r *Router) Route(ctx context.Context, req Request, opts RouteOptions) Response {
	cancel := context.CancelFunc(func() {})
	if r.timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
	}

	p := r.pick(ctx, opts)
	if p == nil {
		cancel()
		return r.fallback(opts.Locale)
	}
	desc := p.Descriptor()

	if opts.Priority == PrioritySpeed && desc.Has(CapabilityStreaming) {
		stream, err := p.Stream(ctx, req)
		if err == nil {
			// The stream outlives this call, so the deadline must too:
			// relayStream owns cancel and releases it once the stream ends.
			return Response{
				Success:  true,
				Stream:   relayStream(ctx, cancel, stream),
				Streamed: true,
				Model:    desc.ID,
				Metadata: map[string]string{"quality": string(desc.Quality)},
			}
		}
		r.logger.Warn("model: streaming failed, retrying single-shot",
			"provider", desc.ID, "error", err)
	}
	defer cancel()

	start := time.Now()
	text, err := p.Complete(ctx, req)
	r.metrics.ObserveProviderLatency(desc.ID, time.Since(start).Seconds())
	if err != nil {
		r.logger.Error("model: provider call failed", "provider", desc.ID, "error", err)
		return r.fallback(opts.Locale)
	}
	return Response{
		Success:  true,
		Text:     text,
		Model:    desc.ID,
		Metadata: map[string]string{"quality": string(desc.Quality)},
	}
}

// relayStream forwards provider chunks to the consumer and releases the
// per-call context only after the last chunk is delivered or the consumer's
// context ends. Cancelling before then would kill the provider's stream
// while the consumer is still reading it.
func relayStream(ctx context.Context, cancel context.CancelFunc, in <-chan StreamChunk) <-chan StreamChunk {
	out := make(chan StreamChunk)
	go func() {
		defer cancel()
		defer close(out)
		for chunk := range in {
			select {
			case out <- chunk:
			case <-ctx.Done():
				return
			}
			if chunk.Done || chunk.Err != nil {
				return
			}
		}
	}()
	return out
}

// pick applies the selection policy in order. A nil return means nothing is
// available.
func (r *Router) pick(ctx context.Context, opts RouteOptions) Provider {
	if opts.EmergencyLevel == EmergencyHigh {
		if p := r.pickEmergency(ctx); p != nil {
			return p
		}
	}

	if opts.HasImages {
		for _, p := range r.providers {
			if p.Descriptor().Has(CapabilityVision) && r.isAvailable(ctx, p) {
				return p
			}
		}
	}

	if preferred := r.preferences[opts.Intent]; len(preferred) > 0 {
		if opts.Priority == PriorityCost {
			if p := r.cheapestOf(ctx, preferred); p != nil {
				return p
			}
		} else if opts.Priority == PrioritySpeed {
			if p := r.fastestOf(ctx, preferred); p != nil {
				return p
			}
		} else {
			for _, id := range preferred {
				if p := r.byID(id); p != nil && r.isAvailable(ctx, p) {
					return p
				}
			}
		}
	}

	// Last resort before fallback: first registered available provider.
	for _, p := range r.providers {
		if r.isAvailable(ctx, p) {
			return p
		}
	}
	return nil
}

// pickEmergency returns the highest-quality vision-capable provider, or the
// highest-quality provider overall when none advertises vision.
func (r *Router) pickEmergency(ctx context.Context) Provider {
	var best Provider
	bestRank := -1
	for _, p := range r.providers {
		d := p.Descriptor()
		if !d.Has(CapabilityVision) || !r.isAvailable(ctx, p) {
			continue
		}
		if rank := qualityRank(d.Quality); rank > bestRank {
			best, bestRank = p, rank
		}
	}
	if best != nil {
		return best
	}
	for _, p := range r.providers {
		if !r.isAvailable(ctx, p) {
			continue
		}
		if rank := qualityRank(p.Descriptor().Quality); rank > bestRank {
			best, bestRank = p, rank
		}
	}
	return best
}

func (r *Router) cheapestOf(ctx context.Context, ids []string) Provider {
	var best Provider
	bestCost := 0.0
	for _, id := range ids {
		p := r.byID(id)
		if p == nil || !r.isAvailable(ctx, p) {
			continue
		}
		if cost := p.Descriptor().CostWeight; best == nil || cost < bestCost {
			best, bestCost = p, cost
		}
	}
	return best
}

func (r *Router) fastestOf(ctx context.Context, ids []string) Provider {
	var best Provider
	bestRank := -1
	for _, id := range ids {
		p := r.byID(id)
		if p == nil || !r.isAvailable(ctx, p) {
			continue
		}
		if rank := speedRank(p.Descriptor().Speed); rank > bestRank {
			best, bestRank = p, rank
		}
	}
	return best
}

func (r *Router) byID(id string) Provider {
	for _, p := range r.providers {
		if p.Descriptor().ID == id {
			return p
		}
	}
	return nil
}

func (r *Router) fallback(localeCode string) Response {
	r.metrics.RecordFallback()
	return Response{
		Success: false,
		Text:    locale.Template(localeCode, locale.TplApology),
		Model:   FallbackModel,
	}
}

func qualityRank(q QualityClass) int {
	switch q {
	case QualityPremium:
		return 3
	case QualityStandard:
		return 2
	case QualityBasic:
		return 1
	default:
		return 0
	}
}

func speedRank(s SpeedClass) int {
	switch s {
	case SpeedFast:
		return 3
	case SpeedStandard:
		return 2
	case SpeedSlow:
		return 1
	default:
		return 0
	}
}
