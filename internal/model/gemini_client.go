package model

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// GeminiProvider adapts Google's Gemini API to the Provider interface.
type GeminiProvider struct {
	client  *genai.Client
	modelID string
}

// NewGeminiProvider builds the provider, or an unavailable shell when the
// API key is empty.
func NewGeminiProvider(ctx context.Context, apiKey, modelID string) (*GeminiProvider, error) {
	if strings.TrimSpace(modelID) == "" {
		modelID = "gemini-2.5-flash"
	}
	p := &GeminiProvider{modelID: modelID}
	if strings.TrimSpace(apiKey) == "" {
		return p, nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("model: failed to create gemini client: %w", err)
	}
	p.client = client
	return p, nil
}

func (p *GeminiProvider) Descriptor() Descriptor {
	return Descriptor{
		ID:           "gemini",
		Capabilities: []Capability{CapabilityText, CapabilityVision, CapabilityStreaming},
		CostWeight:   0.4,
		Speed:        SpeedFast,
		Quality:      QualityStandard,
	}
}

func (p *GeminiProvider) Available(ctx context.Context) bool {
	return p.client != nil
}

// Close releases the underlying API client.
func (p *GeminiProvider) Close() error {
	if p.client == nil {
		return nil
	}
	return p.client.Close()
}

func (p *GeminiProvider) Complete(ctx context.Context, req Request) (string, error) {
	model, parts, err := p.prepare(req)
	if err != nil {
		return "", err
	}

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return "", fmt.Errorf("model: gemini completion failed: %w", err)
	}
	text := geminiText(resp)
	if text == "" {
		return "", errors.New("model: gemini returned empty content")
	}
	return text, nil
}

func (p *GeminiProvider) Stream(ctx context.Context, req Request) (<-chan StreamChunk, error) {
	model, parts, err := p.prepare(req)
	if err != nil {
		return nil, err
	}

	iter := model.GenerateContentStream(ctx, parts...)
	chunks := make(chan StreamChunk, 32)
	go func() {
		defer close(chunks)
		for {
			resp, err := iter.Next()
			if errors.Is(err, iterator.Done) {
				send(ctx, chunks, StreamChunk{Done: true})
				return
			}
			if err != nil {
				send(ctx, chunks, StreamChunk{Err: err, Done: true})
				return
			}
			if text := geminiText(resp); text != "" {
				if !send(ctx, chunks, StreamChunk{Text: text}) {
					return
				}
			}
		}
	}()
	return chunks, nil
}

func (p *GeminiProvider) prepare(req Request) (*genai.GenerativeModel, []genai.Part, error) {
	if p.client == nil {
		return nil, nil, errors.New("model: gemini provider is not configured")
	}

	model := p.client.GenerativeModel(p.modelID)
	if req.Temperature > 0 {
		model.SetTemperature(req.Temperature)
	}
	if req.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(req.MaxTokens))
	}
	if strings.TrimSpace(req.SystemPrompt) != "" {
		model.SystemInstruction = genai.NewUserContent(genai.Text(req.SystemPrompt))
	}

	parts := []genai.Part{genai.Text(req.UserPrompt)}
	for _, img := range req.Images {
		parts = append(parts, genai.ImageData("jpeg", img))
	}
	return model, parts, nil
}

func geminiText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	return strings.TrimSpace(b.String())
}
