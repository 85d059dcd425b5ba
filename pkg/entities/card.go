package entities

import "fmt"

// Suit represents a card suit

type Suit int

const (
	Spade Suit = iota
	Heart
	Diamond
	Club
	Joker
)

type suitInfo struct {
	numeric bool
	symbol  string
	name    string
}

var suitInfos = map[Suit]suitInfo{
	Spade:   {numeric: true, symbol: "S", name: "SPADE"},
	Heart:   {numeric: true, symbol: "H", name: "HEART"},
	Diamond: {numeric: true, symbol: "D", name: "DIAMOND"},
	Club:    {numeric: true, symbol: "C", name: "CLUB"},
	Joker:   {numeric: false, symbol: "J", name: "JOKER"},
}

// Suits returns every suit in declaration order
func Suits() []Suit {
	return []Suit{Spade, Heart, Diamond, Club, Joker}
}

// HasNumber reports whether cards of this suit carry a rank number
func (s Suit) HasNumber() bool {
	return suitInfos[s].numeric
}

// Symbol returns the one-letter display symbol

func (s Suit) Symbol() string {
	return suitInfos[s].symbol
}

// IsRed reports whether the suit is printed in red
func (s Suit) IsRed() bool {
	return s == Heart || s == Diamond
}

func (s Suit) String() string {
	if info, ok := suitInfos[s]; ok {
		return info.name
	}
	return fmt.Sprintf("Suit(%d)", int(s))
}

const (
	MinNumber = 1
	MaxNumber = 13
)

// Card represents a playing card. Cards are plain values and compare with ==.

type Card struct {
	Suit   Suit
	Number int
}

// NewCard creates a new card

func NewCard(suit Suit, number int) Card {
	return Card{
		Suit:   suit,
		Number: number,
	}
}

// NewJoker creates a joker card
func NewJoker() Card {
	return Card{Suit: Joker, Number: 0}
}

// IsAce reports whether the card is an ace
func (c Card) IsAce() bool {
	return c.Suit.HasNumber() && c.Number == 1
}

// String returns the symbol followed by a two-wide number, e.g. "S 1" or "H10"

func (c Card) String() string {
	return fmt.Sprintf("%s%2d", c.Suit.Symbol(), c.Number)
}
