package statistics

import (
	"context"
	"sort"
	"time"

	"github.com/coder/quartz"

	"github.com/fadedpez/blackjack/internal/types"
	"github.com/fadedpez/blackjack/pkg/entities"
	"github.com/fadedpez/blackjack/pkg/repositories/round"
	"github.com/fadedpez/blackjack/pkg/services/blackjack"
)

var ErrNilTable = types.NewGameError(types.ErrInvalidArgument, "table is required")

// Service records finished rounds and builds the session leaderboard
type Service struct {
	repository round.Repository
	clock      quartz.Clock
}

// NewService creates a new statistics service
func NewService(repository round.Repository) *Service {
	return NewServiceWithClock(repository, quartz.NewReal())
}

// NewServiceWithClock creates a statistics service that timestamps rounds
// with clock
func NewServiceWithClock(repository round.Repository, clock quartz.Clock) *Service {
	return &Service{
		repository: repository,
		clock:      clock,
	}
}

// PlayerRank represents a player's statistics with ranking information
type PlayerRank struct {
	*entities.PlayerStatistics
	Rank        int  `json:"rank"`
	IsTopWinner bool `json:"is_top_winner"`
	IsTopPlayer bool `json:"is_top_player"`
}

// Leaderboard represents a paginated leaderboard of player statistics
type Leaderboard struct {
	Players        []*PlayerRank `json:"players"`
	TotalPlayers   int           `json:"total_players"`
	CurrentPage    int           `json:"current_page"`
	TotalPages     int           `json:"total_pages"`
	PlayersPerPage int           `json:"players_per_page"`
	LastUpdated    time.Time     `json:"last_updated"`
}

// RecordRound stores the outcome of a finished round. results are the hand
// results of the round played on table, in seat then hand order.
func (s *Service) RecordRound(ctx context.Context, table *blackjack.Table, results []blackjack.HandResult) (*entities.RoundResult, error) {
	if table == nil || table.DealerHand() == nil {
		return nil, ErrNilTable
	}

	dealerHand := table.DealerHand()
	roundResult := &entities.RoundResult{
		RoundID:     table.RoundID(),
		CompletedAt: s.clock.Now(),
		DealerScore: dealerHand.Score(),
		DealerBust:  !dealerHand.IsValid(),
		Hands:       make([]*entities.HandResult, 0, len(results)),
	}

	for _, r := range results {
		player, err := table.Player(r.PlayerIndex)
		if err != nil {
			return nil, err
		}
		roundResult.Hands = append(roundResult.Hands, &entities.HandResult{
			PlayerID:  r.PlayerID,
			Name:      player.Name,
			HandIndex: r.HandIndex,
			Result:    entities.StringResult(r.Result.String()),
			Score:     r.Score,
			Natural:   r.Natural,
			Bust:      r.Bust,
		})
	}

	if err := s.repository.SaveRoundResult(ctx, roundResult); err != nil {
		return nil, err
	}
	return roundResult, nil
}

// PlayerStatistics returns the aggregated statistics of one player
func (s *Service) PlayerStatistics(ctx context.Context, playerID string) (*entities.PlayerStatistics, error) {
	return s.repository.GetPlayerStatistics(ctx, playerID)
}

// GetLeaderboard retrieves a paginated leaderboard, ranked by wins and then
// by fewest losses
func (s *Service) GetLeaderboard(ctx context.Context, page, playersPerPage int) (*Leaderboard, error) {
	// Default values
	if page < 1 {
		page = 1
	}
	if playersPerPage < 1 {
		playersPerPage = 10
	}

	allStats, err := s.repository.GetAllPlayerStatistics(ctx)
	if err != nil {
		return nil, err
	}

	playerRanks := make([]*PlayerRank, 0, len(allStats))
	for _, stats := range allStats {
		// Skip players with no hands
		if stats.HandsPlayed == 0 {
			continue
		}
		playerRanks = append(playerRanks, &PlayerRank{PlayerStatistics: stats})
	}

	sort.SliceStable(playerRanks, func(i, j int) bool {
		if playerRanks[i].Wins != playerRanks[j].Wins {
			return playerRanks[i].Wins > playerRanks[j].Wins
		}
		return playerRanks[i].Losses < playerRanks[j].Losses
	})

	if len(playerRanks) > 0 {
		playerRanks[0].IsTopWinner = true

		// Find the player with the most hands played
		mostHandsIdx := 0
		for i := 1; i < len(playerRanks); i++ {
			if playerRanks[i].HandsPlayed > playerRanks[mostHandsIdx].HandsPlayed {
				mostHandsIdx = i
			}
		}
		playerRanks[mostHandsIdx].IsTopPlayer = true
	}

	for i := range playerRanks {
		playerRanks[i].Rank = i + 1
	}

	// Calculate pagination
	totalPlayers := len(playerRanks)
	totalPages := (totalPlayers + playersPerPage - 1) / playersPerPage
	if page > totalPages && totalPages > 0 {
		page = totalPages
	}

	start := (page - 1) * playersPerPage
	end := start + playersPerPage
	if end > totalPlayers {
		end = totalPlayers
	}

	currentPagePlayers := []*PlayerRank{}
	if start < totalPlayers {
		currentPagePlayers = playerRanks[start:end]
	}

	return &Leaderboard{
		Players:        currentPagePlayers,
		TotalPlayers:   totalPlayers,
		CurrentPage:    page,
		TotalPages:     totalPages,
		PlayersPerPage: playersPerPage,
		LastUpdated:    s.clock.Now(),
	}, nil
}
