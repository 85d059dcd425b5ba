package round

import (
	"context"

	"github.com/fadedpez/blackjack/pkg/entities"
)

// Repository defines storage operations for finished rounds and the player
// statistics derived from them
type Repository interface {
	// Round results
	SaveRoundResult(ctx context.Context, result *entities.RoundResult) error
	GetPlayerResults(ctx context.Context, playerID string) ([]*entities.RoundResult, error)
	GetRecentResults(ctx context.Context, limit int) ([]*entities.RoundResult, error)

	// Statistics
	GetPlayerStatistics(ctx context.Context, playerID string) (*entities.PlayerStatistics, error)
	GetAllPlayerStatistics(ctx context.Context) ([]*entities.PlayerStatistics, error)

	// Close closes any resources used by the repository
	Close() error
}
