package blackjack

import (
	"fmt"

	"github.com/fadedpez/blackjack/internal/types"
)

var (
	ErrIllegalAction = types.NewGameError(types.ErrInvalidAction, "action is not legal in the current state")
	ErrRoundNotOver  = types.NewGameError(types.ErrInvalidState, "round is not finished")
)

var noopObserver = ObserverFunc(func(State) {})

// Round drives one dealt table through its turns. Players act through
// DoAction; once the last player hand is done the dealer plays and the round
// ends in the terminal state.
type Round struct {
	table    *Table
	state    State
	observer Observer
}

// NewRound starts the turn sequence on an initialized table. Hands that are
// already fixed by the deal, such as a natural 21, are skipped.
func NewRound(table *Table, observer Observer) (*Round, error) {
	if table == nil || !table.IsInitialized() {
		return nil, ErrNotInitialized
	}
	if observer == nil {
		observer = noopObserver
	}

	r := &Round{
		table:    table,
		observer: observer,
	}
	state, err := r.settle(FirstState())
	if err != nil {
		return nil, err
	}
	r.state = state
	return r, nil
}

// Table returns the table the round is played on
func (r *Round) Table() *Table {
	return r.table
}

// State returns the current state
func (r *Round) State() State {
	return r.state
}

// Actions returns the actions legal in the current state
func (r *Round) Actions() []Action {
	return LegalActions(r.table, r.state)
}

// IsOver reports whether the round has reached the terminal state
func (r *Round) IsOver() bool {
	return r.state.Kind == KindTerminal
}

// DoAction applies action to the current hand. An action outside Actions()
// fails without changing anything. The observer is notified once if the
// state changes and not at all otherwise.
func (r *Round) DoAction(action Action) error {
	if !IsLegal(r.table, r.state, action) {
		return types.WrapError(types.ErrInvalidAction, ErrIllegalAction.Message,
			fmt.Errorf("%s in %s", action, r.state))
	}

	player, hand, err := currentHand(r.table, r.state)
	if err != nil {
		return err
	}
	if err := action.ApplyTo(player, r.state.HandIndex); err != nil {
		return err
	}

	r.table.logger.Debug("Action applied",
		"round", r.table.roundID,
		"player", player.ID,
		"hand", r.state.HandIndex,
		"action", action,
		"score", hand.Score(),
	)

	if hand.IsActive() {
		return nil
	}

	next, err := r.settle(Advance(r.table, r.state))
	if err != nil {
		return err
	}
	if next != r.state {
		r.state = next
		r.observer.OnStateChanged(next)
	}
	return nil
}

// settle moves past player hands that cannot act and plays the dealer when
// the dealer's turn comes up
func (r *Round) settle(state State) (State, error) {
	for state.Kind == KindPlayerTurn {
		_, hand, err := currentHand(r.table, state)
		if err != nil {
			return state, err
		}
		if hand.IsActive() {
			return state, nil
		}
		state = Advance(r.table, state)
	}

	if state.Kind == KindDealerTurn {
		if err := PlayDealer(r.table); err != nil {
			return state, err
		}
		state = Terminal()
	}
	return state, nil
}

// Results returns each player hand's outcome. Only available once the
// round is over.
func (r *Round) Results() ([]HandResult, error) {
	if !r.IsOver() {
		return nil, ErrRoundNotOver
	}
	return Results(r.table)
}
