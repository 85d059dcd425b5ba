package main

import (
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fadedpez/blackjack/internal/config"
	"github.com/fadedpez/blackjack/internal/logging"
)

func parse(t *testing.T, args ...string) *CLI {
	t.Helper()
	var cli CLI
	parser, err := kong.New(&cli, kong.Vars{"version": "test"})
	require.NoError(t, err)
	_, err = parser.Parse(args)
	require.NoError(t, err)
	return &cli
}

func TestPlayFlags(t *testing.T) {
	cli := parse(t, "play", "--players", "3", "--rounds", "2", "--no-color", "--debug")

	assert.Equal(t, PlayCmd{Players: 3, Rounds: 2, NoColor: true, Debug: true}, cli.Play)
}

func TestPlayIsDefaultCommand(t *testing.T) {
	cli := parse(t, "-n", "2")

	assert.Equal(t, 2, cli.Play.Players)
	assert.Equal(t, -1, cli.Play.Rounds)
}

func TestApplyTo(t *testing.T) {
	base := config.Config{Players: 1, Rounds: 4, LogLevel: "INFO"}

	testCases := []struct {
		name     string
		cmd      PlayCmd
		expected config.Config
	}{
		{
			name:     "no flags keep config",
			cmd:      PlayCmd{Rounds: -1},
			expected: base,
		},
		{
			name:     "flags override",
			cmd:      PlayCmd{Players: 5, Rounds: 0, NoColor: true, Debug: true},
			expected: config.Config{Players: 5, Rounds: 0, LogLevel: logging.DEBUG.String(), NoColor: true},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base
			tc.cmd.applyTo(&cfg)
			assert.Equal(t, tc.expected, cfg)
		})
	}
}
