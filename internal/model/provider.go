// Package model routes conversation turns to a registered LLM provider
// based on intent, priority, and capability, and degrades to a canned
// fallback when no provider can serve the request.
package model

import (
	"context"
	"errors"
)

// Capability tags what a provider can do beyond plain text completion.
type Capability string

const (
	CapabilityText      Capability = "text"
	CapabilityVision    Capability = "vision"
	CapabilityStreaming Capability = "streaming"
)

// SpeedClass and QualityClass are coarse, static rankings used by the
// selection policy; lower cost weight means cheaper.
type (
	SpeedClass   string
	QualityClass string
)

const (
	SpeedFast     SpeedClass = "fast"
	SpeedStandard SpeedClass = "standard"
	SpeedSlow     SpeedClass = "slow"

	QualityBasic    QualityClass = "basic"
	QualityStandard QualityClass = "standard"
	QualityPremium  QualityClass = "premium"
)

// Descriptor is the static catalog entry for one provider.
type Descriptor struct {
	ID           string       `json:"id"`
	Capabilities []Capability `json:"capabilities"`
	CostWeight   float64      `json:"costWeight"`
	Speed        SpeedClass   `json:"speedClass"`
	Quality      QualityClass `json:"qualityClass"`
}

// Has reports whether the descriptor lists the capability.
func (d Descriptor) Has(c Capability) bool {
	for _, have := range d.Capabilities {
		if have == c {
			return true
		}
	}
	return false
}

// Request is one completion call. Images are attached as raw bytes when the
// caller has vision input.
type Request struct {
	SystemPrompt string
	UserPrompt   string
	Images       [][]byte
	MaxTokens    int
	Temperature  float32
}

// StreamChunk is one unit of a streaming response. Done marks the final
// chunk; Err reports a mid-stream failure.
type StreamChunk struct {
	Text string
	Err  error
	Done bool
}

// ErrStreamingUnsupported is returned by Stream on providers that only
// implement single-shot completion.
var ErrStreamingUnsupported = errors.New("model: provider does not support streaming")

// Provider is one LLM backend. Available is cheap and safe to call often;
// the router caches it. Complete returns the full response text. Stream
// sends chunks until Done or ctx cancellation and always closes the channel.
type Provider interface {
	Descriptor() Descriptor
	Available(ctx context.Context) bool
	Complete(ctx context.Context, req Request) (string, error)
	Stream(ctx context.Context, req Request) (<-chan StreamChunk, error)
}
