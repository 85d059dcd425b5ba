package round

import (
	"context"
	"sync"

	"github.com/fadedpez/blackjack/internal/types"
	"github.com/fadedpez/blackjack/pkg/entities"
)

var ErrNilResult = types.NewGameError(types.ErrInvalidArgument, "round result is required")

// MemoryRepository implements Repository interface with in-memory storage
type MemoryRepository struct {
	mu sync.RWMutex
	// Every saved round, oldest first
	results []*entities.RoundResult
	// Map of playerID to the rounds they took part in
	playerResults map[string][]*entities.RoundResult
}

// NewMemoryRepository creates a new in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		results:       make([]*entities.RoundResult, 0),
		playerResults: make(map[string][]*entities.RoundResult),
	}
}

// SaveRoundResult stores a round result and adds it to each player's history
func (r *MemoryRepository) SaveRoundResult(ctx context.Context, result *entities.RoundResult) error {
	if result == nil {
		return ErrNilResult
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.results = append(r.results, result)
	for _, playerID := range result.PlayerIDs() {
		r.playerResults[playerID] = append(r.playerResults[playerID], result)
	}
	return nil
}

// GetPlayerResults retrieves every round a player took part in, oldest first
func (r *MemoryRepository) GetPlayerResults(ctx context.Context, playerID string) ([]*entities.RoundResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := r.playerResults[playerID]
	return append([]*entities.RoundResult(nil), results...), nil
}

// GetRecentResults retrieves up to limit rounds, newest first. A limit of
// zero or less returns every round.
func (r *MemoryRepository) GetRecentResults(ctx context.Context, limit int) ([]*entities.RoundResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit <= 0 || limit > len(r.results) {
		limit = len(r.results)
	}
	recent := make([]*entities.RoundResult, 0, limit)
	for i := len(r.results) - 1; i >= 0 && len(recent) < limit; i-- {
		recent = append(recent, r.results[i])
	}
	return recent, nil
}

// Close is a no-op for memory repository
func (r *MemoryRepository) Close() error {
	return nil
}
