package blackjack

//go:generate mockgen -source=$GOFILE -destination=mock/observer.go -package=mock_blackjack

// Observer is told about every change of a round's state
type Observer interface {
	// OnStateChanged is called once after each action that moves the round
	// to a new state
	OnStateChanged(state State)
}

// ObserverFunc adapts a function to Observer
type ObserverFunc func(state State)

// OnStateChanged calls f(state)
func (f ObserverFunc) OnStateChanged(state State) {
	f(state)
}
