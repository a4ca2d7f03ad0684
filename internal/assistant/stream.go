package assistant

import (
	"context"
	"strings"
	"time"

	"github.com/accrahealth/carebot/internal/entity"
	"github.com/accrahealth/carebot/internal/history"
	"github.com/accrahealth/carebot/internal/intent"
	"github.com/accrahealth/carebot/internal/model"
)

// StreamTurn is the speed-priority variant of HandleTurn. When the selected
// provider supports incremental output the reply carries a stream; consumers
// may stop reading at any time (by cancelling ctx) and whatever text arrived
// up to that point is recorded to history as the bot response.
func (a *Assistant) StreamTurn(ctx context.Context, sess *Session, userText string) Reply {
	start := time.Now()

	if a.autoDetect && !sess.LocaleLocked() {
		sess.setDetectedLocale(a.detector.Detect(userText, sess.Locale()))
	}
	loc := sess.Locale()

	in := intent.Classify(userText)
	ents := entity.Extract(userText)

	// Emergencies and booking turns never stream: their replies are
	// structured, not free text.
	if in == intent.Emergency || in.IsBookingRelated() || sess.BookingActive() {
		return a.HandleTurn(ctx, sess, userText)
	}

	reply := a.handleQuery(ctx, loc, in, userText, model.PrioritySpeed)
	reply.Locale = loc
	reply.Intent = in

	turn := history.Turn{
		Timestamp:        start,
		UserText:         userText,
		Intent:           in,
		Entities:         ents,
		Locale:           loc,
		Model:            reply.Model,
		ResponseType:     string(reply.Type),
		HadSearchResults: len(reply.Results) > 0,
	}

	if !reply.Streamed {
		turn.BotResponse = reply.Text
		turn.LatencyMS = time.Since(start).Milliseconds()
		a.record(ctx, sess, turn)
		return reply
	}

	reply.Stream = a.forwardStream(ctx, sess, reply.Stream, turn, start)
	return reply
}

// forwardStream relays provider chunks to the caller while accumulating the
// text. The turn is recorded exactly once when the relay ends, whether the
// stream completed, failed, or the consumer aborted early.
func (a *Assistant) forwardStream(ctx context.Context, sess *Session, in <-chan model.StreamChunk, turn history.Turn, start time.Time) <-chan model.StreamChunk {
	out := make(chan model.StreamChunk)
	go func() {
		var b strings.Builder
		defer func() {
			close(out)
			turn.BotResponse = b.String()
			turn.LatencyMS = time.Since(start).Milliseconds()
			a.record(context.WithoutCancel(ctx), sess, turn)
		}()

		for chunk := range in {
			select {
			case out <- chunk:
				b.WriteString(chunk.Text)
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
