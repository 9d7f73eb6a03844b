// Package views counts public quote views, deduplicated per visitor
// session so reloads do not inflate the counter.
package views

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	applog "github.com/LucasManfrin/Orcamentos/internal/platform/logging"
	"github.com/LucasManfrin/Orcamentos/internal/service/quote"
)

// guardTTL bounds how long a session suppresses repeat counting.
const guardTTL = 24 * time.Hour

// Guard decides whether a view is the first one for a session.
type Guard interface {
	// FirstView returns true exactly once per (sessionID, quoteID)
	// within the guard window.
	FirstView(ctx context.Context, sessionID, quoteID string) (bool, error)
}

// RedisGuard implements Guard with a TTL'd SETNX key per session and quote.
type RedisGuard struct {
	client *redis.Client
}

// NewRedisGuard creates a Redis-backed guard.
func NewRedisGuard(client *redis.Client) *RedisGuard {
	return &RedisGuard{client: client}
}

func guardKey(sessionID, quoteID string) string {
	return fmt.Sprintf("views:%s:%s", sessionID, quoteID)
}

// FirstView claims the session's view slot for the quote. SetNX makes
// the claim atomic under concurrent requests from the same session.
func (g *RedisGuard) FirstView(ctx context.Context, sessionID, quoteID string) (bool, error) {
	return g.client.SetNX(ctx, guardKey(sessionID, quoteID), "1", guardTTL).Result()
}

// Service records quote views.
type Service struct {
	quotes quote.Service
	guard  Guard
}

// NewService creates a view recording service.
func NewService(quotes quote.Service, guard Guard) *Service {
	return &Service{quotes: quotes, guard: guard}
}

// RecordView counts a view of a shared quote. Repeat views from the
// same session are acknowledged but not counted. The first counted view
// promotes a sent quote to viewed; a failed promotion is logged and
// swallowed since the count itself already landed.
func (s *Service) RecordView(ctx context.Context, sessionID, quoteID string) (counted bool, err error) {
	if _, err := s.quotes.Get(ctx, quoteID); err != nil {
		return false, err
	}

	first, err := s.guard.FirstView(ctx, sessionID, quoteID)
	if err != nil {
		return false, fmt.Errorf("checking view guard: %w", err)
	}
	if !first {
		return false, nil
	}

	if err := s.quotes.IncrementViews(ctx, quoteID); err != nil {
		return false, fmt.Errorf("incrementing views: %w", err)
	}

	if err := s.quotes.MarkViewed(ctx, quoteID); err != nil {
		applog.LogError(ctx, "failed to promote quote to viewed", err,
			zap.String("quoteId", quoteID))
	}

	return true, nil
}

// Compile-time interface check
var _ Guard = (*RedisGuard)(nil)
