package model

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	brtypes "github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
)

// bedrockConverseAPI is the slice of the Bedrock runtime the provider
// needs, extracted so tests can substitute a stub.
type bedrockConverseAPI interface {
	Converse(ctx context.Context, params *bedrockruntime.ConverseInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.ConverseOutput, error)
	ConverseStream(ctx context.Context, params *bedrockruntime.ConverseStreamInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.ConverseStreamOutput, error)
}

// BedrockProvider adapts AWS Bedrock's Converse API to the Provider
// interface.
type BedrockProvider struct {
	api     bedrockConverseAPI
	modelID string
}

// NewBedrockProvider builds the provider over an already-configured runtime
// client; pass nil to register an unavailable shell.
func NewBedrockProvider(api bedrockConverseAPI, modelID string) *BedrockProvider {
	if strings.TrimSpace(modelID) == "" {
		modelID = "anthropic.claude-3-5-haiku-20241022-v1:0"
	}
	return &BedrockProvider{api: api, modelID: modelID}
}

func (p *BedrockProvider) Descriptor() Descriptor {
	return Descriptor{
		ID:           "bedrock",
		Capabilities: []Capability{CapabilityText, CapabilityStreaming},
		CostWeight:   0.7,
		Speed:        SpeedStandard,
		Quality:      QualityStandard,
	}
}

func (p *BedrockProvider) Available(ctx context.Context) bool {
	return p.api != nil
}

func (p *BedrockProvider) Complete(ctx context.Context, req Request) (string, error) {
	if p.api == nil {
		return "", errors.New("model: bedrock provider is not configured")
	}

	system, messages, inference := p.converseParams(req)
	out, err := p.api.Converse(ctx, &bedrockruntime.ConverseInput{
		ModelId:         aws.String(p.modelID),
		System:          system,
		Messages:        messages,
		InferenceConfig: inference,
	})
	if err != nil {
		return "", fmt.Errorf("model: bedrock completion failed: %w", err)
	}

	msg, ok := out.Output.(*brtypes.ConverseOutputMemberMessage)
	if !ok {
		return "", errors.New("model: bedrock returned unexpected output type")
	}
	var b strings.Builder
	for _, block := range msg.Value.Content {
		if text, ok := block.(*brtypes.ContentBlockMemberText); ok {
			b.WriteString(text.Value)
		}
	}
	result := strings.TrimSpace(b.String())
	if result == "" {
		return "", errors.New("model: bedrock returned empty content")
	}
	return result, nil
}

func (p *BedrockProvider) Stream(ctx context.Context, req Request) (<-chan StreamChunk, error) {
	if p.api == nil {
		return nil, errors.New("model: bedrock provider is not configured")
	}

	system, messages, inference := p.converseParams(req)
	out, err := p.api.ConverseStream(ctx, &bedrockruntime.ConverseStreamInput{
		ModelId:         aws.String(p.modelID),
		System:          system,
		Messages:        messages,
		InferenceConfig: inference,
	})
	if err != nil {
		return nil, fmt.Errorf("model: bedrock stream failed: %w", err)
	}

	chunks := make(chan StreamChunk, 32)
	go func() {
		defer close(chunks)

		stream := out.GetStream()
		if stream == nil {
			send(ctx, chunks, StreamChunk{Err: errors.New("model: bedrock stream is nil"), Done: true})
			return
		}
		defer stream.Close()

		for event := range stream.Events() {
			delta, ok := event.(*brtypes.ConverseStreamOutputMemberContentBlockDelta)
			if !ok {
				continue
			}
			if text, ok := delta.Value.Delta.(*brtypes.ContentBlockDeltaMemberText); ok {
				if !send(ctx, chunks, StreamChunk{Text: text.Value}) {
					return
				}
			}
		}

		if err := stream.Err(); err != nil {
			send(ctx, chunks, StreamChunk{Err: err, Done: true})
			return
		}
		send(ctx, chunks, StreamChunk{Done: true})
	}()
	return chunks, nil
}

func (p *BedrockProvider) converseParams(req Request) ([]brtypes.SystemContentBlock, []brtypes.Message, *brtypes.InferenceConfiguration) {
	var system []brtypes.SystemContentBlock
	if strings.TrimSpace(req.SystemPrompt) != "" {
		system = append(system, &brtypes.SystemContentBlockMemberText{Value: req.SystemPrompt})
	}

	messages := []brtypes.Message{{
		Role: brtypes.ConversationRoleUser,
		Content: []brtypes.ContentBlock{
			&brtypes.ContentBlockMemberText{Value: req.UserPrompt},
		},
	}}

	inference := &brtypes.InferenceConfiguration{}
	if req.MaxTokens > 0 {
		inference.MaxTokens = aws.Int32(int32(req.MaxTokens))
	}
	if req.Temperature > 0 {
		inference.Temperature = aws.Float32(req.Temperature)
	}
	if inference.MaxTokens == nil && inference.Temperature == nil {
		inference = nil
	}
	return system, messages, inference
}
