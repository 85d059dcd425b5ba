package blackjack

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/fadedpez/blackjack/internal/logging"
	"github.com/fadedpez/blackjack/internal/types"
	"github.com/fadedpez/blackjack/pkg/entities"
)

var (
	ErrNotEnoughPlayers = types.NewGameError(types.ErrNotEnoughPlayers, "a table needs at least one player")
	ErrNotInitialized   = types.NewGameError(types.ErrInvalidState, "table has not been initialized")
	ErrPlayerIndex      = types.NewGameError(types.ErrInvalidArgument, "player index out of range")
)

// DeckSource creates the deck for a new round
type DeckSource func() (*entities.Deck, error)

func standardDeck() (*entities.Deck, error) {
	return entities.NewDeck(0)
}

// TableOption configures a Table
type TableOption func(*Table)

// WithShuffler sets the shuffler applied to every new round's deck
func WithShuffler(s entities.Shuffler) TableOption {
	return func(t *Table) {
		t.shuffler = s
	}
}

// WithDeckSource replaces the standard 52-card deck
func WithDeckSource(source DeckSource) TableOption {
	return func(t *Table) {
		t.newDeck = source
	}
}

// WithLogger sets the logger used for round events
func WithLogger(logger *logging.Logger) TableOption {
	return func(t *Table) {
		t.logger = logger
	}
}

// Table owns the deck, the dealer and the players of a round. Every hand
// draws from the table's deck; the deck lives until the next Initialize.
type Table struct {
	playerCount int
	playerIDs   []string
	dealerID    string

	roundID string
	deck    *entities.Deck
	dealer  *Player
	players []*Player

	shuffler entities.Shuffler
	newDeck  DeckSource
	logger   *logging.Logger
}

// NewTable creates a table with playerCount seats. Seat IDs stay the same
// across rounds.
func NewTable(playerCount int, opts ...TableOption) (*Table, error) {
	if playerCount <= 0 {
		return nil, types.WrapError(types.ErrNotEnoughPlayers, ErrNotEnoughPlayers.Message,
			fmt.Errorf("got %d players", playerCount))
	}

	t := &Table{
		playerCount: playerCount,
		playerIDs:   make([]string, playerCount),
		dealerID:    uuid.New().String(),
		shuffler:    entities.RandomShuffler,
		newDeck:     standardDeck,
		logger:      logging.Default,
	}
	for i := range t.playerIDs {
		t.playerIDs[i] = uuid.New().String()
	}

	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Initialize starts a new round: a fresh shuffled deck, then a two-card hand
// for the dealer followed by each player in seat order.
func (t *Table) Initialize() error {
	deck, err := t.newDeck()
	if err != nil {
		return fmt.Errorf("failed to create deck: %w", err)
	}
	deck.SetShuffler(t.shuffler)
	deck.Shuffle()

	dealer, err := NewPlayer(t.dealerID, "Dealer", deck)
	if err != nil {
		return err
	}
	if err := dealer.Initialize(); err != nil {
		return err
	}

	players := make([]*Player, 0, t.playerCount)
	for i := 0; i < t.playerCount; i++ {
		player, err := NewPlayer(t.playerIDs[i], fmt.Sprintf("Player %d", i+1), deck)
		if err != nil {
			return err
		}
		if err := player.Initialize(); err != nil {
			return err
		}
		players = append(players, player)
	}

	t.roundID = uuid.New().String()
	t.deck = deck
	t.dealer = dealer
	t.players = players

	t.logger.Debug("Round dealt",
		"round", t.roundID,
		"players", t.playerCount,
		"deck", deck.Count(),
	)
	return nil
}

// IsInitialized reports whether a round has been dealt
func (t *Table) IsInitialized() bool {
	return t.dealer != nil
}

// RoundID identifies the current round
func (t *Table) RoundID() string {
	return t.roundID
}

// Deck returns the deck of the current round
func (t *Table) Deck() *entities.Deck {
	return t.deck
}

// Dealer returns the dealer of the current round
func (t *Table) Dealer() *Player {
	return t.dealer
}

// DealerHand returns the dealer's only hand
func (t *Table) DealerHand() *Hand {
	if t.dealer == nil || t.dealer.HandCount() == 0 {
		return nil
	}
	return t.dealer.hands[0]
}

// Players returns the players in seat order
func (t *Table) Players() []*Player {
	return append([]*Player(nil), t.players...)
}

// Player returns the player at seat index
func (t *Table) Player(index int) (*Player, error) {
	if index < 0 || index >= len(t.players) {
		return nil, ErrPlayerIndex
	}
	return t.players[index], nil
}

// PlayerCount returns the number of seats
func (t *Table) PlayerCount() int {
	return t.playerCount
}

// Logger returns the table's logger
func (t *Table) Logger() *logging.Logger {
	return t.logger
}
