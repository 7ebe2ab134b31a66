package cart

import (
	"context"

	"github.com/razoraze123/gnamgnam/internal/domain"
)

// Store persists a session's cart lines. Every mutation in the service
// writes the full line list back through the store; a missing or
// unreadable entry loads as an empty cart.
type Store interface {
	Load(ctx context.Context, sessionID string) ([]domain.CartLine, error)
	Save(ctx context.Context, sessionID string, lines []domain.CartLine) error
	Delete(ctx context.Context, sessionID string) error
}
