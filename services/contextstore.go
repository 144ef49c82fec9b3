package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/BrikiApp/briki-api/models"
)

// ContextStore persists chat contexts in Postgres with a Redis hot cache in
// front. Redis being down is never fatal: reads fall through to Postgres and
// writes just skip the cache.
type ContextStore struct {
	db    *sql.DB
	cache *redis.Client
	ttl   time.Duration
}

func NewContextStore(db *sql.DB, cache *redis.Client) *ContextStore {
	return &ContextStore{
		db:    db,
		cache: cache,
		ttl:   30 * time.Minute,
	}
}

func contextCacheKey(sessionID string) string {
	return "briki:ctx:" + sessionID
}

// Get returns the stored context for a session, or an empty context when the
// session is new.
func (s *ContextStore) Get(ctx context.Context, sessionID string) (models.UserContext, error) {
	var uc models.UserContext

	if s.cache != nil {
		raw, err := s.cache.Get(ctx, contextCacheKey(sessionID)).Bytes()
		if err == nil {
			if jsonErr := json.Unmarshal(raw, &uc); jsonErr == nil {
				return uc, nil
			}
		} else if err != redis.Nil {
			log.Printf("⚠️ Context cache read failed for %s: %v", sessionID, err)
		}
	}

	var raw []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT context FROM chat_contexts WHERE session_id = $1`,
		sessionID).Scan(&raw)
	if err == sql.ErrNoRows {
		return models.UserContext{}, nil
	}
	if err != nil {
		return uc, fmt.Errorf("failed to load context: %w", err)
	}
	if err := json.Unmarshal(raw, &uc); err != nil {
		return uc, fmt.Errorf("corrupt context for session %s: %w", sessionID, err)
	}

	s.fillCache(ctx, sessionID, raw)
	return uc, nil
}

// Save upserts the context for a session and refreshes the cache.
func (s *ContextStore) Save(ctx context.Context, sessionID string, uc models.UserContext) error {
	raw, err := json.Marshal(uc)
	if err != nil {
		return fmt.Errorf("failed to encode context: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO chat_contexts (session_id, context, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (session_id) DO UPDATE SET context = $2, updated_at = NOW()
	`, sessionID, raw)
	if err != nil {
		return fmt.Errorf("failed to save context: %w", err)
	}

	s.fillCache(ctx, sessionID, raw)
	return nil
}

// Delete removes a session's context from both stores.
func (s *ContextStore) Delete(ctx context.Context, sessionID string) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM chat_contexts WHERE session_id = $1`, sessionID); err != nil {
		return fmt.Errorf("failed to delete context: %w", err)
	}
	if s.cache != nil {
		if err := s.cache.Del(ctx, contextCacheKey(sessionID)).Err(); err != nil {
			log.Printf("⚠️ Context cache delete failed for %s: %v", sessionID, err)
		}
	}
	return nil
}

func (s *ContextStore) fillCache(ctx context.Context, sessionID string, raw []byte) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, contextCacheKey(sessionID), raw, s.ttl).Err(); err != nil {
		log.Printf("⚠️ Context cache write failed for %s: %v", sessionID, err)
	}
}

// LogQuoteRequest records a plan search for the funnel dashboard.
func (s *ContextStore) LogQuoteRequest(ctx context.Context, sessionID string, category models.PlanCategory, criteria models.FilterCriteria, sortMode models.SortOption, resultCount int) error {
	raw, err := json.Marshal(criteria)
	if err != nil {
		return fmt.Errorf("failed to encode criteria: %w", err)
	}

	var sid interface{}
	if sessionID != "" {
		sid = sessionID
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO quote_requests (session_id, category, criteria, sort_mode, result_count)
		VALUES ($1, $2, $3, $4, $5)
	`, sid, string(category), raw, string(sortMode), resultCount)
	if err != nil {
		return fmt.Errorf("failed to log quote request: %w", err)
	}
	return nil
}
