package blackjack

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/fadedpez/blackjack/internal/types"
	"github.com/fadedpez/blackjack/pkg/entities"
)

func spade(n int) entities.Card   { return entities.NewCard(entities.Spade, n) }
func heart(n int) entities.Card   { return entities.NewCard(entities.Heart, n) }
func diamond(n int) entities.Card { return entities.NewCard(entities.Diamond, n) }
func club(n int) entities.Card    { return entities.NewCard(entities.Club, n) }

// stackedDeck returns a deck that deals cards in the order given
func stackedDeck(cards ...entities.Card) *entities.Deck {
	reversed := make([]entities.Card, len(cards))
	for i, card := range cards {
		reversed[len(cards)-1-i] = card
	}
	return entities.NewDeckFromCards(reversed)
}

// handOf builds an active hand holding cards without drawing them
func handOf(deck *entities.Deck, cards ...entities.Card) *Hand {
	hand, err := NewHand(deck)
	if err != nil {
		panic(err)
	}
	for _, card := range cards {
		hand.base.Add(card)
	}
	return hand
}

type HandTestSuite struct {
	suite.Suite
	deck *entities.Deck
}

func TestHandSuite(t *testing.T) {
	suite.Run(t, new(HandTestSuite))
}

func (s *HandTestSuite) SetupTest() {
	s.deck = stackedDeck()
}

func (s *HandTestSuite) TestCardValue() {
	s.Equal(1, CardValue(spade(1)))
	s.Equal(7, CardValue(heart(7)))
	s.Equal(10, CardValue(club(10)))
	s.Equal(10, CardValue(diamond(11)))
	s.Equal(10, CardValue(spade(13)))
	s.Equal(0, CardValue(entities.NewJoker()))
}

func (s *HandTestSuite) TestScore() {
	testCases := []struct {
		name     string
		cards    []entities.Card
		expected int
	}{
		{name: "empty hand", cards: nil, expected: 0},
		{name: "face cards", cards: []entities.Card{spade(13), heart(12)}, expected: 20},
		{name: "ace high", cards: []entities.Card{spade(1), heart(9)}, expected: 20},
		{name: "ace low", cards: []entities.Card{spade(1), heart(9), club(2)}, expected: 12},
		{name: "two aces", cards: []entities.Card{spade(1), heart(1)}, expected: 12},
		{name: "two aces and nine", cards: []entities.Card{spade(1), heart(1), club(9)}, expected: 21},
		{name: "four aces", cards: []entities.Card{spade(1), heart(1), club(1), diamond(1)}, expected: 14},
		{name: "natural", cards: []entities.Card{spade(1), heart(10)}, expected: 21},
		{name: "bust", cards: []entities.Card{spade(10), heart(10), club(5)}, expected: 25},
		{name: "joker counts zero", cards: []entities.Card{entities.NewJoker(), club(5)}, expected: 5},
		{name: "joker with ace", cards: []entities.Card{entities.NewJoker(), club(1)}, expected: 11},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			hand := handOf(s.deck, tc.cards...)
			s.Equal(tc.expected, hand.Score(), "Score should match expected")
			s.Equal(tc.expected <= MaxScore, hand.IsValid(), "Valid should follow the score")
		})
	}
}

func (s *HandTestSuite) TestNaturalIsValid() {
	hand := handOf(s.deck, spade(1), heart(10))

	s.Equal(21, hand.Score())
	s.True(hand.IsValid())
	s.True(hand.IsNatural())
}

func (s *HandTestSuite) TestBustDeactivatesOnDraw() {
	deck := stackedDeck(club(5))
	hand := handOf(deck, spade(10), heart(10))
	s.True(hand.IsActive())

	s.NoError(hand.Hit())

	s.Equal(25, hand.Score())
	s.False(hand.IsValid())
	s.False(hand.IsActive(), "A bust hand should be fixed")
}

func (s *HandTestSuite) TestExactTwentyOneDeactivates() {
	deck := stackedDeck(club(1))
	hand := handOf(deck, spade(10), heart(10))

	s.NoError(hand.Hit())

	s.Equal(21, hand.Score())
	s.True(hand.IsValid())
	s.False(hand.IsActive(), "A hand at 21 should be fixed")
}

func (s *HandTestSuite) TestDealtNaturalIsInactive() {
	deck := stackedDeck(spade(1), heart(13))
	hand, err := NewHand(deck)
	s.Require().NoError(err)

	s.True(hand.DrawFromDeck(2))

	s.True(hand.IsNatural())
	s.False(hand.IsActive())
}

func (s *HandTestSuite) TestHitKeepsActiveBelowTwentyOne() {
	deck := stackedDeck(club(2))
	hand := handOf(deck, spade(10), heart(5))

	s.NoError(hand.Hit())

	s.Equal(17, hand.Score())
	s.True(hand.IsActive())
	s.Equal(0, deck.Count())
}

func (s *HandTestSuite) TestHitInactive() {
	deck := stackedDeck(club(2))
	hand := handOf(deck, spade(10), heart(5))
	hand.Stand()

	err := hand.Hit()

	s.ErrorIs(err, ErrHandInactive)
	s.True(types.IsGameError(err, types.ErrHandInactive))
	s.Equal(2, hand.Count())
	s.Equal(1, deck.Count(), "Deck should be untouched")
}

func (s *HandTestSuite) TestHitEmptyDeck() {
	hand := handOf(s.deck, spade(10), heart(5))

	err := hand.Hit()

	s.ErrorIs(err, entities.ErrEmptyDeck)
	s.True(hand.IsActive())
}

func (s *HandTestSuite) TestStandAlwaysDeactivates() {
	hand := handOf(s.deck, spade(2), heart(3))

	hand.Stand()

	s.False(hand.IsActive())
	s.Equal(5, hand.Score())
}

func (s *HandTestSuite) TestDrawFromDeckRefusedWhenInactive() {
	deck := stackedDeck(club(2))
	hand := handOf(deck, spade(2), heart(3))
	hand.Stand()

	s.False(hand.DrawFromDeck(1))
	s.Equal(1, deck.Count())
}

func (s *HandTestSuite) TestDrawFromDeckShortDeck() {
	deck := stackedDeck(club(2))
	hand := handOf(deck, spade(2))

	s.False(hand.DrawFromDeck(2))

	s.Equal(1, hand.Count())
	s.Equal(1, deck.Count())
}

func (s *HandTestSuite) TestCanSplit() {
	testCases := []struct {
		name     string
		cards    []entities.Card
		stand    bool
		expected bool
	}{
		{name: "pair of eights", cards: []entities.Card{spade(8), heart(8)}, expected: true},
		{name: "eight and nine", cards: []entities.Card{spade(8), heart(9)}, expected: false},
		{name: "ten and king", cards: []entities.Card{spade(10), heart(13)}, expected: true},
		{name: "pair of aces", cards: []entities.Card{spade(1), heart(1)}, expected: true},
		{name: "three cards", cards: []entities.Card{spade(2), heart(2), club(2)}, expected: false},
		{name: "one card", cards: []entities.Card{spade(2)}, expected: false},
		{name: "inactive pair", cards: []entities.Card{spade(8), heart(8)}, stand: true, expected: false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			hand := handOf(s.deck, tc.cards...)
			if tc.stand {
				hand.Stand()
			}
			s.Equal(tc.expected, hand.CanSplit())
		})
	}
}

func (s *HandTestSuite) TestSplit() {
	deck := stackedDeck(diamond(3), club(2), club(9))
	hand := handOf(deck, spade(8), heart(8))
	before := deck.Count()

	sibling, err := hand.Split()

	s.Require().NoError(err)
	s.Require().NotNil(sibling)
	s.Equal([]entities.Card{spade(8), diamond(3)}, hand.Cards(), "Original keeps the first card and draws first")
	s.Equal([]entities.Card{heart(8), club(2)}, sibling.Cards(), "Sibling gets the second card and draws next")
	s.Equal(before-2, deck.Count(), "Split should draw exactly two cards")
	s.Same(deck, sibling.Deck(), "Sibling should share the deck")
	s.True(hand.IsActive())
	s.True(sibling.IsActive())
}

func (s *HandTestSuite) TestSplitNotAllowed() {
	deck := stackedDeck(diamond(3))
	hand := handOf(deck, spade(8), heart(9))

	sibling, err := hand.Split()

	s.Nil(sibling)
	s.ErrorIs(err, ErrCannotSplit)
	s.Equal(2, hand.Count())
	s.Equal(1, deck.Count())
}

func (s *HandTestSuite) TestSplitCanRepeat() {
	deck := stackedDeck(diamond(8), club(2))
	hand := handOf(deck, spade(8), heart(8))

	_, err := hand.Split()
	s.Require().NoError(err)

	s.True(hand.CanSplit(), "A new pair may be split again")
}

func (s *HandTestSuite) TestSplitDrawToTwentyOneFixesHand() {
	deck := stackedDeck(diamond(13), club(2))
	hand := handOf(deck, spade(1), heart(1))

	sibling, err := hand.Split()
	s.Require().NoError(err)

	s.Equal(21, hand.Score())
	s.False(hand.IsActive())
	s.Equal(13, sibling.Score())
	s.True(sibling.IsActive())
}

func (s *HandTestSuite) TestResultAgainst() {
	testCases := []struct {
		name     string
		hand     []entities.Card
		other    []entities.Card
		expected Result
	}{
		{name: "both bust", hand: []entities.Card{spade(10), heart(10), club(5)}, other: []entities.Card{spade(9), heart(9), club(9)}, expected: ResultDraw},
		{name: "other bust", hand: []entities.Card{spade(2), heart(3)}, other: []entities.Card{spade(9), heart(9), club(9)}, expected: ResultWin},
		{name: "this bust", hand: []entities.Card{spade(10), heart(10), club(5)}, other: []entities.Card{spade(2), heart(3)}, expected: ResultLose},
		{name: "higher wins", hand: []entities.Card{spade(10), heart(10)}, other: []entities.Card{spade(10), heart(9)}, expected: ResultWin},
		{name: "lower loses", hand: []entities.Card{spade(10), heart(8)}, other: []entities.Card{spade(10), heart(9)}, expected: ResultLose},
		{name: "equal below 21", hand: []entities.Card{spade(10), heart(9)}, other: []entities.Card{club(10), diamond(9)}, expected: ResultDraw},
		{name: "natural beats three-card 21", hand: []entities.Card{spade(1), heart(10)}, other: []entities.Card{spade(7), heart(7), club(7)}, expected: ResultWin},
		{name: "three-card 21 loses to natural", hand: []entities.Card{spade(7), heart(7), club(7)}, other: []entities.Card{spade(1), heart(10)}, expected: ResultLose},
		{name: "two naturals", hand: []entities.Card{spade(1), heart(10)}, other: []entities.Card{club(1), diamond(13)}, expected: ResultDraw},
		{name: "two long 21s", hand: []entities.Card{spade(7), heart(7), club(7)}, other: []entities.Card{spade(10), heart(5), club(6)}, expected: ResultDraw},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			hand := handOf(s.deck, tc.hand...)
			other := handOf(s.deck, tc.other...)

			result, err := hand.ResultAgainst(other)

			s.NoError(err)
			s.Equal(tc.expected, result, "got %s", result)
		})
	}
}

func (s *HandTestSuite) TestResultAgainstIsAntiSymmetric() {
	hands := [][]entities.Card{
		{spade(10), heart(10), club(5)},
		{spade(1), heart(10)},
		{spade(7), heart(7), club(7)},
		{spade(10), heart(8)},
		{spade(2), heart(3)},
	}
	opposite := map[Result]Result{ResultWin: ResultLose, ResultLose: ResultWin, ResultDraw: ResultDraw}

	for _, a := range hands {
		for _, b := range hands {
			ab, err := handOf(s.deck, a...).ResultAgainst(handOf(s.deck, b...))
			s.NoError(err)
			ba, err := handOf(s.deck, b...).ResultAgainst(handOf(s.deck, a...))
			s.NoError(err)
			s.Equal(opposite[ab], ba, "%v vs %v", a, b)
		}
	}
}

func (s *HandTestSuite) TestResultAgainstNil() {
	hand := handOf(s.deck, spade(10))

	_, err := hand.ResultAgainst(nil)

	s.ErrorIs(err, ErrNilHand)
	s.True(types.IsGameError(err, types.ErrInvalidArgument))
}

func (s *HandTestSuite) TestString() {
	hand := handOf(s.deck, spade(1), heart(10))
	s.Equal("<21> [S 1] [H10]", hand.String())
}

func (s *HandTestSuite) TestResultString() {
	s.Equal("WIN", ResultWin.String())
	s.Equal("LOSE", ResultLose.String())
	s.Equal("DRAW", ResultDraw.String())
	s.Equal("UNKNOWN", Result(42).String())
}
