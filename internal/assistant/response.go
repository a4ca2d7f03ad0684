// Package assistant wires the conversation pipeline together: locale
// detection, intent classification, entity extraction, the booking dialogue,
// content search, and the model router, recording every turn to history.
package assistant

import (
	"github.com/accrahealth/carebot/internal/intent"
	"github.com/accrahealth/carebot/internal/model"
	"github.com/accrahealth/carebot/internal/search"
)

// ResponseType tags a Reply so callers can render the right widget.
type ResponseType string

const (
	ResponseText             ResponseType = "text"
	ResponseServiceSelection ResponseType = "service_selection"
	ResponseDateSelection    ResponseType = "date_selection"
	ResponseTimeSelection    ResponseType = "time_selection"
	ResponsePatientInfo      ResponseType = "patient_info"
	ResponseConfirmation     ResponseType = "confirmation"
	ResponseEnhancedContent  ResponseType = "enhanced_content"
	ResponseError            ResponseType = "error"
	ResponseSystem           ResponseType = "system"
)

// Reply is the assistant's answer for one turn. Stream is set only for
// streamed turns, in which case Text holds nothing until the stream ends.
type Reply struct {
	Type           ResponseType            `json:"type"`
	Text           string                  `json:"text,omitempty"`
	Locale         string                  `json:"locale"`
	Intent         intent.Intent           `json:"intent"`
	Model          string                  `json:"model,omitempty"`
	Results        []search.Result         `json:"results,omitempty"`
	ConfirmationID string                  `json:"confirmationId,omitempty"`
	Streamed       bool                    `json:"streamed,omitempty"`
	Stream         <-chan model.StreamChunk `json:"-"`
}
