package blackjack

import (
	"fmt"
	"strings"

	"github.com/fadedpez/blackjack/internal/types"
	"github.com/fadedpez/blackjack/pkg/entities"
)

var (
	ErrHandInactive = types.NewGameError(types.ErrHandInactive, "hand is no longer active")
	ErrCannotSplit  = types.NewGameError(types.ErrCannotSplit, "hand cannot be split")
	ErrNilHand      = types.NewGameError(types.ErrInvalidArgument, "hand is required")
)

// Hand represents a hand in a game of blackjack. A hand stays active until
// it stands, busts or reaches exactly 21; an inactive hand takes no more
// cards and cannot be split.
type Hand struct {
	base   *entities.Hand
	active bool
}

// NewHand creates an empty, active blackjack hand drawing from deck
func NewHand(deck *entities.Deck) (*Hand, error) {
	base, err := entities.NewHand(deck)
	if err != nil {
		return nil, err
	}
	return &Hand{base: base, active: true}, nil
}

// Cards returns a copy of the hand's cards in draw order
func (h *Hand) Cards() []entities.Card {
	return h.base.Cards()
}

// Count returns the number of cards held
func (h *Hand) Count() int {
	return h.base.Count()
}

// Deck returns the deck the hand draws from
func (h *Hand) Deck() *entities.Deck {
	return h.base.Deck()
}

// Score returns the best total for the hand
func (h *Hand) Score() int {
	return Score(h.base.Cards())
}

// IsValid reports whether the hand has not bust
func (h *Hand) IsValid() bool {
	return h.Score() <= MaxScore
}

// IsActive reports whether the hand can still take actions
func (h *Hand) IsActive() bool {
	return h.active
}

// IsNatural reports whether the hand is a two-card 21
func (h *Hand) IsNatural() bool {
	return IsNatural(h.base.Cards())
}

// DrawFromDeck draws n cards into an active hand. Nothing is drawn and false
// is returned when the hand is inactive or the deck is short. The hand is
// fixed as soon as its score reaches 21 or more.
func (h *Hand) DrawFromDeck(n int) bool {
	if !h.active || !h.base.DrawFromDeck(n) {
		return false
	}

	if h.Score() >= MaxScore {
		h.active = false
	}
	return true
}

// CanSplit reports whether the hand is active and holds exactly two cards
// of equal value
func (h *Hand) CanSplit() bool {
	if !h.active || h.base.Count() != SplitWays {
		return false
	}

	cards := h.base.Cards()
	first := CardValue(cards[0])
	for _, card := range cards[1:] {
		if CardValue(card) != first {
			return false
		}
	}
	return true
}

// Split moves the second card into a new hand on the same deck, then draws
// one card into this hand and one into the new hand, in that order. The new
// hand is returned; the caller owns adding it to a player.
func (h *Hand) Split() (*Hand, error) {
	if !h.CanSplit() {
		return nil, ErrCannotSplit
	}

	split := make([]*Hand, 0, SplitWays)
	split = append(split, h)

	var sibling *Hand
	for i := 1; i < SplitWays; i++ {
		hand, err := NewHand(h.base.Deck())
		if err != nil {
			return nil, err
		}
		card, err := h.base.RemoveAt(1)
		if err != nil {
			return nil, err
		}
		hand.base.Add(card)
		split = append(split, hand)
		sibling = hand
	}

	for _, hand := range split {
		hand.DrawFromDeck(1)
	}

	return sibling, nil
}

// Hit draws one card into the hand
func (h *Hand) Hit() error {
	if !h.active {
		return ErrHandInactive
	}
	if !h.DrawFromDeck(1) {
		return entities.ErrEmptyDeck
	}
	return nil
}

// Stand fixes the hand regardless of its score
func (h *Hand) Stand() {
	h.active = false
}

// ResultAgainst compares this hand with other. Two busts draw; a valid hand
// beats a bust; otherwise the higher score wins. Equal scores draw unless
// both are 21, in which case a two-card 21 beats a longer 21.
func (h *Hand) ResultAgainst(other *Hand) (Result, error) {
	if other == nil {
		return ResultDraw, ErrNilHand
	}

	valid, otherValid := h.IsValid(), other.IsValid()
	switch {
	case !valid && !otherValid:
		return ResultDraw, nil
	case valid && !otherValid:
		return ResultWin, nil
	case !valid && otherValid:
		return ResultLose, nil
	}

	score, otherScore := h.Score(), other.Score()
	switch {
	case score > otherScore:
		return ResultWin, nil
	case score < otherScore:
		return ResultLose, nil
	case score < MaxScore || otherScore < MaxScore:
		return ResultDraw, nil
	}

	natural, otherNatural := h.Count() == InitialCards, other.Count() == InitialCards
	switch {
	case natural && !otherNatural:
		return ResultWin, nil
	case !natural && otherNatural:
		return ResultLose, nil
	}
	return ResultDraw, nil
}

// String renders the hand as "<score> [S 1] [H10]"
func (h *Hand) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "<%2d>", h.Score())
	for _, card := range h.base.Cards() {
		fmt.Fprintf(&b, " [%s]", card)
	}
	return b.String()
}
