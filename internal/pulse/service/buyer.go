package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/zappabad/pulse/internal/token"
)

// Buyer executes the quick-buy action of a card.
type Buyer interface {
	Buy(ctx context.Context, pair token.Pair) error
}

// LogBuyer records buy intents without trading.
type LogBuyer struct {
	Logger *slog.Logger
}

// Buy logs the intent and always succeeds.
func (b LogBuyer) Buy(ctx context.Context, pair token.Pair) error {
	logger := b.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.InfoContext(ctx, "buy_requested",
		"request_id", uuid.NewString(),
		"pair", pair.ID,
		"symbol", pair.Token.Symbol,
		"category", pair.Category,
		"sol", pair.SolAmount.String(),
	)
	return nil
}
