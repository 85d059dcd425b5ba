package entities

import "time"

// StringResult is the stored form of a hand's outcome
type StringResult string

// String returns the string representation of the result
func (r StringResult) String() string {
	return string(r)
}

// IsWin returns true if this result represents a win
func (r StringResult) IsWin() bool {
	return r == StringResultWin
}

// Common result constants
const (
	StringResultWin  StringResult = "WIN"
	StringResultLose StringResult = "LOSE"
	StringResultDraw StringResult = "DRAW"
)

// RoundResult represents the outcome of one finished round
type RoundResult struct {
	RoundID     string
	CompletedAt time.Time
	DealerScore int
	DealerBust  bool
	Hands       []*HandResult
}

// HandResult is one player hand's outcome within a round. A player who split
// has one entry per hand; HandIndex 0 is the hand that was dealt.
type HandResult struct {
	PlayerID  string
	Name      string
	HandIndex int
	Result    StringResult
	Score     int
	Natural   bool
	Bust      bool
}

// PlayerIDs returns the distinct players in the round in the order they
// first appear
func (r *RoundResult) PlayerIDs() []string {
	seen := make(map[string]bool, len(r.Hands))
	ids := make([]string, 0, len(r.Hands))
	for _, hand := range r.Hands {
		if seen[hand.PlayerID] {
			continue
		}
		seen[hand.PlayerID] = true
		ids = append(ids, hand.PlayerID)
	}
	return ids
}
