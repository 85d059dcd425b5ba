package round

import (
	"context"
	"sort"

	"github.com/fadedpez/blackjack/pkg/entities"
)

// GetPlayerStatistics aggregates every stored round of one player. A player
// with no rounds gets zeroed statistics.
func (r *MemoryRepository) GetPlayerStatistics(ctx context.Context, playerID string) (*entities.PlayerStatistics, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.playerStatistics(playerID), nil
}

// GetAllPlayerStatistics aggregates statistics for every player seen, ordered
// by player ID
func (r *MemoryRepository) GetAllPlayerStatistics(ctx context.Context) ([]*entities.PlayerStatistics, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	playerIDs := make([]string, 0, len(r.playerResults))
	for playerID := range r.playerResults {
		playerIDs = append(playerIDs, playerID)
	}
	sort.Strings(playerIDs)

	allStats := make([]*entities.PlayerStatistics, 0, len(playerIDs))
	for _, playerID := range playerIDs {
		allStats = append(allStats, r.playerStatistics(playerID))
	}
	return allStats, nil
}

// playerStatistics must be called with the lock held
func (r *MemoryRepository) playerStatistics(playerID string) *entities.PlayerStatistics {
	stats := &entities.PlayerStatistics{PlayerID: playerID}

	for _, result := range r.playerResults[playerID] {
		stats.Rounds++
		if result.CompletedAt.After(stats.LastUpdated) {
			stats.LastUpdated = result.CompletedAt
		}

		for _, hand := range result.Hands {
			// Skip hands that don't belong to this player
			if hand.PlayerID != playerID {
				continue
			}

			stats.Name = hand.Name
			stats.HandsPlayed++
			if hand.HandIndex > 0 {
				stats.Splits++
			}

			// Update result counters
			switch hand.Result {
			case entities.StringResultWin:
				stats.Wins++
			case entities.StringResultLose:
				stats.Losses++
			case entities.StringResultDraw:
				stats.Draws++
			}

			if hand.Natural {
				stats.Naturals++
			}
			if hand.Bust {
				stats.Busts++
			}
		}
	}
	return stats
}
