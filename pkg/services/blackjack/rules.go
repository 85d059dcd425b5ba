package blackjack

import (
	"github.com/fadedpez/blackjack/pkg/entities"
)

const (
	MaxScore         = 21 // Highest score that is not a bust
	DealerStandScore = 17 // Dealer stops hitting at this score
	InitialCards     = 2  // Cards dealt to each hand at the start of a round
	SplitWays        = 2  // A split yields this many hands
	MaxPlayers       = 7  // Max number of players at one table
	aceBonus         = 10 // Extra value of an ace counted high
)

// Result represents the outcome of a hand compared against another
type Result int

const (
	ResultWin Result = iota
	ResultLose
	ResultDraw
)

var resultNames = map[Result]string{
	ResultWin:  "WIN",
	ResultLose: "LOSE",
	ResultDraw: "DRAW",
}

// String returns the string representation of the result
func (r Result) String() string {
	if name, ok := resultNames[r]; ok {
		return name
	}
	return "UNKNOWN"
}

// CardValue returns the blackjack value of a card: face cards count 10, an
// ace counts 1 and a joker counts 0.
func CardValue(card entities.Card) int {
	if !card.Suit.HasNumber() {
		return 0
	}
	return min(10, max(0, card.Number))
}

// Score returns the best total for cards. Every ace is counted as 1, then
// aces are raised to 11 one at a time while the total stays at or below 21.
func Score(cards []entities.Card) int {
	score := 0
	aces := 0

	for _, card := range cards {
		score += CardValue(card)
		if card.IsAce() {
			aces++
		}
	}

	for i := 0; i < aces; i++ {
		if score+aceBonus > MaxScore {
			break
		}
		score += aceBonus
	}

	return score
}

// IsNatural reports whether cards are a two-card 21
func IsNatural(cards []entities.Card) bool {
	return len(cards) == InitialCards && Score(cards) == MaxScore
}

// IsBust checks if a set of cards exceeds 21
func IsBust(cards []entities.Card) bool {
	return Score(cards) > MaxScore
}
