package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ErrorTestSuite struct {
	suite.Suite
}

func TestErrorSuite(t *testing.T) {
	suite.Run(t, new(ErrorTestSuite))
}

func (s *ErrorTestSuite) TestNewGameError() {
	// Setup
	code := ErrEmptyDeck
	message := "deck is empty"

	// Execute
	err := NewGameError(code, message)

	// Assert
	s.Equal(code, err.Code, "Error code should match")
	s.Equal(message, err.Message, "Error message should match")
	s.Nil(err.Err, "Underlying error should be nil")
}

func (s *ErrorTestSuite) TestWrapError() {
	// Setup
	code := ErrConfigError
	message := "could not parse environment"
	underlying := errors.New("bad int")

	// Execute
	err := WrapError(code, message, underlying)

	// Assert
	s.Equal(code, err.Code, "Error code should match")
	s.Equal(message, err.Message, "Error message should match")
	s.Equal(underlying, err.Err, "Underlying error should match")
	s.ErrorIs(err, underlying, "Unwrap should expose the cause")
}

func (s *ErrorTestSuite) TestErrorString() {
	testCases := []struct {
		name     string
		err      *GameError
		expected string
	}{
		{
			name:     "Simple error",
			err:      NewGameError(ErrHandInactive, "hand is no longer active"),
			expected: "HAND_INACTIVE: hand is no longer active",
		},
		{
			name:     "Wrapped error",
			err:      WrapError(ErrConfigError, "invalid config", errors.New("players must be positive")),
			expected: "CONFIG_ERROR: invalid config (players must be positive)",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, tc.err.Error(), "Error string should match expected format")
		})
	}
}

func (s *ErrorTestSuite) TestIsGameError() {
	// Setup
	gameErr := NewGameError(ErrCannotSplit, "hand cannot be split")
	regularErr := errors.New("regular error")

	testCases := []struct {
		name     string
		err      error
		code     ErrorCode
		expected bool
	}{
		{
			name:     "Matching game error",
			err:      gameErr,
			code:     ErrCannotSplit,
			expected: true,
		},
		{
			name:     "Non-matching game error",
			err:      gameErr,
			code:     ErrInternalError,
			expected: false,
		},
		{
			name:     "Wrapped game error",
			err:      fmt.Errorf("split failed: %w", gameErr),
			code:     ErrCannotSplit,
			expected: true,
		},
		{
			name:     "Regular error",
			err:      regularErr,
			code:     ErrCannotSplit,
			expected: false,
		},
		{
			name:     "Nil error",
			err:      nil,
			code:     ErrCannotSplit,
			expected: false,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			result := IsGameError(tc.err, tc.code)
			s.Equal(tc.expected, result, "IsGameError result should match expected value")
		})
	}
}

func (s *ErrorTestSuite) TestErrorsIsMatchesByCode() {
	sentinel := NewGameError(ErrInvalidAction, "action is not legal")
	other := NewGameError(ErrInvalidAction, "split is not legal in this state")

	s.ErrorIs(other, sentinel, "Errors with the same code should match")
	s.NotErrorIs(NewGameError(ErrInvalidState, "x"), sentinel, "Different codes should not match")
}

func (s *ErrorTestSuite) TestAs() {
	// Setup
	gameErr := NewGameError(ErrEmptyDeck, "deck is empty")
	regularErr := errors.New("regular error")

	testCases := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "Game error",
			err:      gameErr,
			expected: true,
		},
		{
			name:     "Wrapped game error",
			err:      fmt.Errorf("draw: %w", gameErr),
			expected: true,
		},
		{
			name:     "Regular error",
			err:      regularErr,
			expected: false,
		},
		{
			name:     "Nil error",
			err:      nil,
			expected: false,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			var target *GameError
			result := As(tc.err, &target)
			s.Equal(tc.expected, result, "As result should match expected value")
			if tc.expected {
				s.Equal(gameErr, target, "Target should be set to the game error")
			}
		})
	}
}
