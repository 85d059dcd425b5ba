package blackjack

import (
	"fmt"
	"strings"

	"github.com/fadedpez/blackjack/internal/types"
)

var ErrUnknownAction = types.NewGameError(types.ErrInvalidArgument, "unknown action")

// Action is something a player can do with the hand whose turn it is
type Action int

const (
	ActionHit Action = iota
	ActionStand
	ActionSplit
)

var actionNames = map[Action]string{
	ActionHit:   "HIT",
	ActionStand: "STAND",
	ActionSplit: "SPLIT",
}

var actionKeys = map[Action]string{
	ActionHit:   "h",
	ActionStand: "s",
	ActionSplit: "p",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// Key returns the single-letter console key for the action
func (a Action) Key() string {
	return actionKeys[a]
}

// ParseAction accepts an action key ("h", "s", "p") or name ("hit")
func ParseAction(input string) (Action, error) {
	input = strings.TrimSpace(input)
	for action, key := range actionKeys {
		if input == key || strings.EqualFold(input, actionNames[action]) {
			return action, nil
		}
	}
	return 0, types.WrapError(types.ErrInvalidArgument, ErrUnknownAction.Message, fmt.Errorf("%q", input))
}

// ApplyTo performs the action on the player's hand at handIndex
func (a Action) ApplyTo(player *Player, handIndex int) error {
	hand, err := player.Hand(handIndex)
	if err != nil {
		return err
	}

	switch a {
	case ActionHit:
		return hand.Hit()
	case ActionStand:
		hand.Stand()
		return nil
	case ActionSplit:
		_, err := player.Split(handIndex)
		return err
	default:
		return ErrUnknownAction
	}
}

// StateKind tells whose turn it is
type StateKind int

const (
	KindPlayerTurn StateKind = iota
	KindDealerTurn
	KindTerminal
)

var stateKindNames = map[StateKind]string{
	KindPlayerTurn: "PLAYER_TURN",
	KindDealerTurn: "DEALER_TURN",
	KindTerminal:   "TERMINAL",
}

func (k StateKind) String() string {
	if name, ok := stateKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("StateKind(%d)", int(k))
}

// State is the position of the turn sequence. PlayerIndex and HandIndex
// address a hand only for KindPlayerTurn; the dealer and terminal states use
// PlayerIndex -1. States are values: a transition produces a new State.
type State struct {
	Kind        StateKind
	PlayerIndex int
	HandIndex   int
}

// PlayerTurn addresses one hand of one player
func PlayerTurn(playerIndex, handIndex int) State {
	return State{Kind: KindPlayerTurn, PlayerIndex: playerIndex, HandIndex: handIndex}
}

// DealerTurn is the state in which the dealer draws
func DealerTurn() State {
	return State{Kind: KindDealerTurn, PlayerIndex: -1}
}

// Terminal is the state after the dealer has finished
func Terminal() State {
	return State{Kind: KindTerminal, PlayerIndex: -1}
}

// FirstState is the first player's first hand
func FirstState() State {
	return PlayerTurn(0, 0)
}

func (s State) String() string {
	if s.Kind == KindPlayerTurn {
		return fmt.Sprintf("%s(%d,%d)", s.Kind, s.PlayerIndex, s.HandIndex)
	}
	return s.Kind.String()
}

// currentHand returns the player and hand addressed by a player-turn state
func currentHand(t *Table, s State) (*Player, *Hand, error) {
	if s.Kind != KindPlayerTurn {
		return nil, nil, types.NewGameError(types.ErrInvalidState, fmt.Sprintf("no hand to act on in %s", s))
	}
	player, err := t.Player(s.PlayerIndex)
	if err != nil {
		return nil, nil, err
	}
	hand, err := player.Hand(s.HandIndex)
	if err != nil {
		return nil, nil, err
	}
	return player, hand, nil
}

// LegalActions lists the actions allowed in state s. Only a player turn on
// an active hand has any.
func LegalActions(t *Table, s State) []Action {
	_, hand, err := currentHand(t, s)
	if err != nil || !hand.IsActive() {
		return []Action{}
	}
	if hand.CanSplit() {
		return []Action{ActionHit, ActionStand, ActionSplit}
	}
	return []Action{ActionHit, ActionStand}
}

// IsLegal reports whether action is allowed in state s
func IsLegal(t *Table, s State, action Action) bool {
	for _, legal := range LegalActions(t, s) {
		if legal == action {
			return true
		}
	}
	return false
}

// Advance returns the state after the hand addressed by s is done: the same
// player's next hand, else the next player's first hand, else the dealer.
func Advance(t *Table, s State) State {
	if s.Kind != KindPlayerTurn {
		return s
	}

	player, err := t.Player(s.PlayerIndex)
	if err == nil && s.HandIndex+1 < player.HandCount() {
		return PlayerTurn(s.PlayerIndex, s.HandIndex+1)
	}
	if s.PlayerIndex+1 < t.PlayerCount() {
		return PlayerTurn(s.PlayerIndex+1, 0)
	}
	return DealerTurn()
}

// PlayDealer hits the dealer's hand while it is active, valid and below 17.
// A dealer that runs out of cards stands where it is.
func PlayDealer(t *Table) error {
	hand := t.DealerHand()
	if hand == nil {
		return ErrNotInitialized
	}

	for hand.IsActive() && hand.IsValid() && hand.Score() < DealerStandScore {
		if err := hand.Hit(); err != nil {
			t.logger.Warn("Dealer stopped drawing", "round", t.roundID, "err", err)
			hand.Stand()
			return nil
		}
	}

	t.logger.Debug("Dealer finished", "round", t.roundID, "score", hand.Score(), "cards", hand.Count())
	return nil
}

// HandResult is one player hand's outcome against the dealer
type HandResult struct {
	PlayerIndex int
	HandIndex   int
	PlayerID    string
	Result      Result
	Score       int
	Natural     bool
	Bust        bool
}

// Results compares every player hand with the dealer's hand, in seat then
// hand order
func Results(t *Table) ([]HandResult, error) {
	dealerHand := t.DealerHand()
	if dealerHand == nil {
		return nil, ErrNotInitialized
	}

	results := make([]HandResult, 0, t.PlayerCount())
	for p, player := range t.players {
		for h, hand := range player.hands {
			result, err := hand.ResultAgainst(dealerHand)
			if err != nil {
				return nil, err
			}
			results = append(results, HandResult{
				PlayerIndex: p,
				HandIndex:   h,
				PlayerID:    player.ID,
				Result:      result,
				Score:       hand.Score(),
				Natural:     hand.IsNatural(),
				Bust:        !hand.IsValid(),
			})
		}
	}
	return results, nil
}
