package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const (
	archiveKeyPrefix = "transcript:"
	archiveTTL       = 7 * 24 * time.Hour
)

// Archive persists session transcripts to redis for callers that need
// durability beyond the in-memory store. A nil Archive is a no-op, so hosts
// without redis configured can skip it entirely.
type Archive struct {
	redis    *redis.Client
	tracer   trace.Tracer
	maxTurns int64
}

func NewArchive(redisClient *redis.Client) *Archive {
	if redisClient == nil {
		return nil
	}
	return &Archive{
		redis:    redisClient,
		tracer:   otel.Tracer("carebot.internal.history.archive"),
		maxTurns: 250,
	}
}

// Append stores one turn at the tail of the session's transcript list.
func (a *Archive) Append(ctx context.Context, sessionID string, t Turn) error {
	if a == nil || a.redis == nil {
		return nil
	}
	if sessionID == "" {
		return errors.New("history: archive sessionID required")
	}
	if t.Timestamp.IsZero() {
		t.Timestamp = time.Now().UTC()
	}

	data, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("history: marshal turn: %w", err)
	}

	ctx, span := a.tracer.Start(ctx, "history.archive.append")
	defer span.End()

	key := archiveKey(sessionID)
	pipe := a.redis.TxPipeline()
	pipe.RPush(ctx, key, data)
	pipe.Expire(ctx, key, archiveTTL)
	if a.maxTurns > 0 {
		pipe.LTrim(ctx, key, -a.maxTurns, -1)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("history: append transcript: %w", err)
	}
	return nil
}

// Transcript returns the archived turns for a session, oldest first.
func (a *Archive) Transcript(ctx context.Context, sessionID string) ([]Turn, error) {
	if a == nil || a.redis == nil {
		return nil, nil
	}
	if sessionID == "" {
		return nil, errors.New("history: archive sessionID required")
	}

	ctx, span := a.tracer.Start(ctx, "history.archive.transcript")
	defer span.End()

	raw, err := a.redis.LRange(ctx, archiveKey(sessionID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("history: read transcript: %w", err)
	}

	turns := make([]Turn, 0, len(raw))
	for _, item := range raw {
		var t Turn
		if err := json.Unmarshal([]byte(item), &t); err != nil {
			return nil, fmt.Errorf("history: decode transcript turn: %w", err)
		}
		turns = append(turns, t)
	}
	return turns, nil
}

func archiveKey(sessionID string) string {
	return archiveKeyPrefix + sessionID
}
