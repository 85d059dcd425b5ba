package entities

import (
	"fmt"
	"math/rand/v2"

	"github.com/fadedpez/blackjack/internal/types"
)

var (
	ErrEmptyDeck     = types.NewGameError(types.ErrEmptyDeck, "no cards left in deck")
	ErrInvalidJokers = types.NewGameError(types.ErrInvalidArgument, "joker count must not be negative")
)

// Shuffler permutes n elements by calling swap, like rand.Shuffle
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// ShufflerFunc adapts a function to Shuffler
type ShufflerFunc func(n int, swap func(i, j int))

func (f ShufflerFunc) Shuffle(n int, swap func(i, j int)) {
	f(n, swap)
}

// RandomShuffler uses the process-wide generator
var RandomShuffler Shuffler = ShufflerFunc(rand.Shuffle)

// NoShuffle leaves the order untouched. Useful for deterministic deals.
var NoShuffle Shuffler = ShufflerFunc(func(int, func(i, j int)) {})

// Deck is an ordered pile of cards. The last card is the top of the pile.
type Deck struct {
	cards    []Card
	shuffler Shuffler
}

// NewDeck creates the 52 numeric cards, one of each suit and number, in
// construction order followed by jokerCount jokers. The deck is not shuffled.
func NewDeck(jokerCount int) (*Deck, error) {
	if jokerCount < 0 {
		return nil, ErrInvalidJokers
	}

	cards := make([]Card, 0, 4*(MaxNumber-MinNumber+1)+jokerCount)
	for _, suit := range Suits() {
		if !suit.HasNumber() {
			continue
		}
		for n := MinNumber; n <= MaxNumber; n++ {
			cards = append(cards, NewCard(suit, n))
		}
	}

	for i := 0; i < jokerCount; i++ {
		cards = append(cards, NewJoker())
	}

	return &Deck{cards: cards, shuffler: RandomShuffler}, nil
}

// NewDeckFromCards creates a deck holding a copy of cards. The last element
// is drawn first.
func NewDeckFromCards(cards []Card) *Deck {
	return &Deck{
		cards:    append([]Card(nil), cards...),
		shuffler: RandomShuffler,
	}
}

// SetShuffler replaces the permutation source. nil restores RandomShuffler.
func (d *Deck) SetShuffler(s Shuffler) {
	if s == nil {
		s = RandomShuffler
	}
	d.shuffler = s
}

func (d *Deck) Shuffle() {
	d.shuffler.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Draw removes and returns the top card from the deck
func (d *Deck) Draw() (Card, error) {
	if !d.HasCards() {
		return Card{}, ErrEmptyDeck
	}
	last := len(d.cards) - 1
	card := d.cards[last]
	d.cards = d.cards[:last]
	return card, nil
}

// Count returns the number of cards left
func (d *Deck) Count() int {
	return len(d.cards)
}

// HasCards reports whether at least one card is left
func (d *Deck) HasCards() bool {
	return len(d.cards) > 0
}

// Cards returns a copy of the remaining cards, bottom first
func (d *Deck) Cards() []Card {
	return append([]Card(nil), d.cards...)
}

func (d *Deck) String() string {
	return fmt.Sprintf("Deck(%d)", len(d.cards))
}
