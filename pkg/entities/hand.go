package entities

import (
	"fmt"

	"github.com/fadedpez/blackjack/internal/types"
)

var (
	ErrNilDeck   = types.NewGameError(types.ErrInvalidArgument, "hand requires a deck")
	ErrCardIndex = types.NewGameError(types.ErrInvalidArgument, "card index out of range")
)

// Hand is an ordered set of cards drawn from a deck. The hand does not own
// the deck; it keeps a handle to it for later draws.
type Hand struct {
	cards []Card
	deck  *Deck
}

// NewHand creates an empty hand that draws from deck
func NewHand(deck *Deck) (*Hand, error) {
	if deck == nil {
		return nil, ErrNilDeck
	}
	return &Hand{
		cards: make([]Card, 0, 2),
		deck:  deck,
	}, nil
}

// Add appends a card to the hand
func (h *Hand) Add(card Card) {
	h.cards = append(h.cards, card)
}

// RemoveAt removes and returns the card at index
func (h *Hand) RemoveAt(index int) (Card, error) {
	if index < 0 || index >= len(h.cards) {
		return Card{}, types.WrapError(types.ErrInvalidArgument, ErrCardIndex.Message, fmt.Errorf("index %d, %d cards", index, len(h.cards)))
	}
	card := h.cards[index]
	h.cards = append(h.cards[:index], h.cards[index+1:]...)
	return card, nil
}

// DrawFromDeck moves n cards from the deck into the hand. When the deck
// holds fewer than n cards nothing is drawn and false is returned.
func (h *Hand) DrawFromDeck(n int) bool {
	if n < 0 || h.deck.Count() < n {
		return false
	}

	for i := 0; i < n; i++ {
		card, err := h.deck.Draw()
		if err != nil {
			// Count was checked above
			panic(err)
		}
		h.Add(card)
	}
	return true
}

// Count returns the number of cards in the hand
func (h *Hand) Count() int {
	return len(h.cards)
}

// Cards returns a copy of the cards in the order they were added
func (h *Hand) Cards() []Card {
	return append([]Card(nil), h.cards...)
}

// Card returns the card at index
func (h *Hand) Card(index int) Card {
	return h.cards[index]
}

// Deck returns the deck this hand draws from
func (h *Hand) Deck() *Deck {
	return h.deck
}
