package model

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// openAIChatAPI is the slice of the OpenAI client the provider needs,
// extracted so tests can substitute a stub.
type openAIChatAPI interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
	CreateChatCompletionStream(ctx context.Context, request openai.ChatCompletionRequest) (*openai.ChatCompletionStream, error)
}

// OpenAIProvider adapts the OpenAI chat API to the Provider interface.
type OpenAIProvider struct {
	api     openAIChatAPI
	modelID string
}

// NewOpenAIProvider builds the provider. The API key decides availability:
// an empty key yields a provider that reports unavailable.
func NewOpenAIProvider(apiKey, modelID string) *OpenAIProvider {
	if strings.TrimSpace(modelID) == "" {
		modelID = openai.GPT4oMini
	}
	p := &OpenAIProvider{modelID: modelID}
	if strings.TrimSpace(apiKey) != "" {
		p.api = openai.NewClient(apiKey)
	}
	return p
}

func (p *OpenAIProvider) Descriptor() Descriptor {
	return Descriptor{
		ID:           "openai",
		Capabilities: []Capability{CapabilityText, CapabilityVision, CapabilityStreaming},
		CostWeight:   1.0,
		Speed:        SpeedFast,
		Quality:      QualityPremium,
	}
}

func (p *OpenAIProvider) Available(ctx context.Context) bool {
	return p.api != nil
}

func (p *OpenAIProvider) Complete(ctx context.Context, req Request) (string, error) {
	if p.api == nil {
		return "", errors.New("model: openai provider is not configured")
	}

	resp, err := p.api.CreateChatCompletion(ctx, p.chatRequest(req, false))
	if err != nil {
		return "", fmt.Errorf("model: openai completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("model: openai returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (p *OpenAIProvider) Stream(ctx context.Context, req Request) (<-chan StreamChunk, error) {
	if p.api == nil {
		return nil, errors.New("model: openai provider is not configured")
	}

	stream, err := p.api.CreateChatCompletionStream(ctx, p.chatRequest(req, true))
	if err != nil {
		return nil, fmt.Errorf("model: openai stream failed: %w", err)
	}

	chunks := make(chan StreamChunk, 32)
	go func() {
		defer close(chunks)
		defer stream.Close()

		for {
			resp, err := stream.Recv()
			if errors.Is(err, io.EOF) {
				send(ctx, chunks, StreamChunk{Done: true})
				return
			}
			if err != nil {
				send(ctx, chunks, StreamChunk{Err: err, Done: true})
				return
			}
			if len(resp.Choices) == 0 {
				continue
			}
			if !send(ctx, chunks, StreamChunk{Text: resp.Choices[0].Delta.Content}) {
				return
			}
		}
	}()
	return chunks, nil
}

func (p *OpenAIProvider) chatRequest(req Request, stream bool) openai.ChatCompletionRequest {
	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if strings.TrimSpace(req.SystemPrompt) != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.SystemPrompt,
		})
	}

	if len(req.Images) > 0 {
		parts := []openai.ChatMessagePart{{
			Type: openai.ChatMessagePartTypeText,
			Text: req.UserPrompt,
		}}
		for _, img := range req.Images {
			parts = append(parts, openai.ChatMessagePart{
				Type: openai.ChatMessagePartTypeImageURL,
				ImageURL: &openai.ChatMessageImageURL{
					URL: "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(img),
				},
			})
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:         openai.ChatMessageRoleUser,
			MultiContent: parts,
		})
	} else {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleUser,
			Content: req.UserPrompt,
		})
	}

	out := openai.ChatCompletionRequest{
		Model:    p.modelID,
		Messages: messages,
		Stream:   stream,
	}
	if req.MaxTokens > 0 {
		out.MaxTokens = req.MaxTokens
	}
	if req.Temperature > 0 {
		out.Temperature = req.Temperature
	}
	return out
}

// send delivers a chunk unless the consumer has gone away; a false return
// tells the producer to stop and release the stream.
func send(ctx context.Context, ch chan<- StreamChunk, c StreamChunk) bool {
	select {
	case ch <- c:
		return true
	case <-ctx.Done():
		return false
	}
}
