package blackjack

import (
	"fmt"

	"github.com/fadedpez/blackjack/internal/types"
	"github.com/fadedpez/blackjack/pkg/entities"
)

var (
	ErrNilDeck   = types.NewGameError(types.ErrInvalidArgument, "player requires a deck")
	ErrHandIndex = types.NewGameError(types.ErrInvalidArgument, "hand index out of range")
	ErrShortDeal = types.NewGameError(types.ErrEmptyDeck, "not enough cards for the opening deal")
)

// Player holds the hands of one seat for the current round. Hands are only
// ever appended, so indices stay stable for the whole round.
type Player struct {
	ID    string
	Name  string
	deck  *entities.Deck
	hands []*Hand
}

// NewPlayer creates a player with no hands that draws from deck
func NewPlayer(id, name string, deck *entities.Deck) (*Player, error) {
	if deck == nil {
		return nil, ErrNilDeck
	}
	return &Player{
		ID:    id,
		Name:  name,
		deck:  deck,
		hands: make([]*Hand, 0, 1),
	}, nil
}

// Initialize discards any hands and deals one fresh two-card hand
func (p *Player) Initialize() error {
	hand, err := NewHand(p.deck)
	if err != nil {
		return err
	}
	if !hand.DrawFromDeck(InitialCards) {
		return types.WrapError(types.ErrEmptyDeck, ErrShortDeal.Message,
			fmt.Errorf("%d cards left for %s", p.deck.Count(), p.Name))
	}

	p.hands = []*Hand{hand}
	return nil
}

// IsActive reports whether any of the player's hands can still act
func (p *Player) IsActive() bool {
	for _, hand := range p.hands {
		if hand.IsActive() {
			return true
		}
	}
	return false
}

// Hands returns the player's hands in the order they were created
func (p *Player) Hands() []*Hand {
	return append([]*Hand(nil), p.hands...)
}

// HandCount returns the number of hands the player holds
func (p *Player) HandCount() int {
	return len(p.hands)
}

// Hand returns the hand at index
func (p *Player) Hand(index int) (*Hand, error) {
	if index < 0 || index >= len(p.hands) {
		return nil, ErrHandIndex
	}
	return p.hands[index], nil
}

// AddHand appends a hand produced by a split
func (p *Player) AddHand(hand *Hand) error {
	if hand == nil {
		return ErrNilHand
	}
	p.hands = append(p.hands, hand)
	return nil
}

// Split splits the hand at index and appends the new hand to the player
func (p *Player) Split(index int) (*Hand, error) {
	hand, err := p.Hand(index)
	if err != nil {
		return nil, err
	}

	sibling, err := hand.Split()
	if err != nil {
		return nil, err
	}
	if err := p.AddHand(sibling); err != nil {
		return nil, err
	}
	return sibling, nil
}
