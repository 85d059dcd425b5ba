package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fadedpez/blackjack/internal/logging"
	"github.com/fadedpez/blackjack/internal/types"
	"github.com/fadedpez/blackjack/pkg/entities"
	"github.com/fadedpez/blackjack/pkg/repositories/round"
	"github.com/fadedpez/blackjack/pkg/services/blackjack"
	"github.com/fadedpez/blackjack/pkg/services/statistics"
)

var ErrInputClosed = types.NewGameError(types.ErrInvalidState, "input closed before the round finished")

const (
	hiddenScore = "??"
	bustScore   = "XX"
)

// Options configures a Console session
type Options struct {
	Players int
	// Rounds to play; 0 asks after every round
	Rounds  int
	NoColor bool

	Shuffler   entities.Shuffler
	DeckSource blackjack.DeckSource
	Logger     *logging.Logger
	Stats      *statistics.Service
}

// Console plays blackjack rounds against lines read from in, rendering the
// table to out
type Console struct {
	in     *bufio.Scanner
	out    io.Writer
	styles *Styles
	table  *blackjack.Table
	stats  *statistics.Service
	rounds int
	logger *logging.Logger
}

// New creates a console session with a fresh table
func New(in io.Reader, out io.Writer, opts Options) (*Console, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Default
	}
	stats := opts.Stats
	if stats == nil {
		stats = statistics.NewService(round.NewMemoryRepository())
	}

	tableOpts := []blackjack.TableOption{blackjack.WithLogger(logger)}
	if opts.Shuffler != nil {
		tableOpts = append(tableOpts, blackjack.WithShuffler(opts.Shuffler))
	}
	if opts.DeckSource != nil {
		tableOpts = append(tableOpts, blackjack.WithDeckSource(opts.DeckSource))
	}
	table, err := blackjack.NewTable(opts.Players, tableOpts...)
	if err != nil {
		return nil, err
	}

	return &Console{
		in:     bufio.NewScanner(in),
		out:    out,
		styles: NewStyles(out, opts.NoColor),
		table:  table,
		stats:  stats,
		rounds: opts.Rounds,
		logger: logger,
	}, nil
}

// Run plays rounds until the configured count is reached or the user
// declines another round, then prints the leaderboard
func (c *Console) Run(ctx context.Context) error {
	for played := 1; ; played++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := c.playRound(ctx, played); err != nil {
			return err
		}

		if c.rounds > 0 {
			if played >= c.rounds {
				break
			}
			continue
		}
		again, err := c.askAgain()
		if err != nil {
			return err
		}
		if !again {
			break
		}
	}

	return c.printLeaderboard(ctx)
}

func (c *Console) playRound(ctx context.Context, number int) error {
	if err := c.table.Initialize(); err != nil {
		return err
	}
	c.printf("\n%s\n", c.styles.Header.Render(fmt.Sprintf("Round %d", number)))

	r, err := blackjack.NewRound(c.table, blackjack.ObserverFunc(func(state blackjack.State) {
		c.logger.Debug("Turn changed", "round", c.table.RoundID(), "state", state)
	}))
	if err != nil {
		return err
	}

	for !r.IsOver() {
		c.printTable(r.State(), true)

		action, err := c.promptAction(r)
		if err != nil {
			return err
		}
		if err := r.DoAction(action); err != nil {
			c.logger.LogError(err)
			c.printf("%s\n", c.styles.Error.Render(err.Error()))
		}
	}

	c.printTable(r.State(), false)
	results, err := r.Results()
	if err != nil {
		return err
	}
	c.printResults(results)

	_, err = c.stats.RecordRound(ctx, c.table, results)
	return err
}

// promptAction reads lines until one names a legal action for the hand in
// play
func (c *Console) promptAction(r *blackjack.Round) (blackjack.Action, error) {
	actions := r.Actions()
	options := make([]string, 0, len(actions))
	for _, action := range actions {
		options = append(options, fmt.Sprintf("%s : '%s'", titleCase(action.String()), action.Key()))
	}

	for {
		c.printf("%s %s\n> ", c.styles.Prompt.Render(handLabel(c.table, r.State())+":"), strings.Join(options, ", "))

		line, ok := c.readLine()
		if !ok {
			return 0, c.inputError()
		}

		action, err := blackjack.ParseAction(line)
		if err != nil {
			c.printf("%s\n", c.styles.Error.Render(fmt.Sprintf("Unknown action %q", strings.TrimSpace(line))))
			continue
		}
		if !containsAction(actions, action) {
			c.printf("%s\n", c.styles.Error.Render(fmt.Sprintf("%s is not allowed now", titleCase(action.String()))))
			continue
		}
		return action, nil
	}
}

// askAgain asks whether to deal another round. Closed input means no.
func (c *Console) askAgain() (bool, error) {
	for {
		c.printf("%s\n> ", c.styles.Prompt.Render("Play another round? (y/n)"))
		line, ok := c.readLine()
		if !ok {
			if err := c.in.Err(); err != nil {
				return false, err
			}
			return false, nil
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
	}
}

func (c *Console) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}

func (c *Console) inputError() error {
	if err := c.in.Err(); err != nil {
		return types.WrapError(types.ErrInvalidState, ErrInputClosed.Message, err)
	}
	return ErrInputClosed
}

// printTable shows every hand. While players act, the dealer's hand shows
// only its first card and the hand in play is marked.
func (c *Console) printTable(state blackjack.State, masked bool) {
	c.printf("%s %s\n", c.styles.Label.Render(fmt.Sprintf("  %-12s", "Dealer")), c.renderHand(c.table.DealerHand(), masked))

	for p, player := range c.table.Players() {
		for h, hand := range player.Hands() {
			marker := "  "
			label := c.styles.Label
			if state.Kind == blackjack.KindPlayerTurn && state.PlayerIndex == p && state.HandIndex == h {
				marker = "> "
				label = c.styles.Current
			}
			name := fmt.Sprintf("%s%-12s", marker, handName(player, h))
			c.printf("%s %s\n", label.Render(name), c.renderHand(hand, false))
		}
	}
}

// renderHand formats a hand as "<score> [S 1] [H10]"
func (c *Console) renderHand(hand *blackjack.Hand, masked bool) string {
	cards := hand.Cards()

	var score string
	switch {
	case masked:
		score = c.styles.Hidden.Render(fmt.Sprintf("<%2s>", hiddenScore))
		cards = cards[:1]
	case !hand.IsValid():
		score = c.styles.Bust.Render(fmt.Sprintf("<%2s>", bustScore))
	default:
		score = c.styles.Score.Render(fmt.Sprintf("<%2d>", hand.Score()))
	}

	var sb strings.Builder
	sb.WriteString(score)
	for _, card := range cards {
		style := c.styles.CardBlack
		if card.Suit.IsRed() {
			style = c.styles.CardRed
		}
		sb.WriteString(" ")
		sb.WriteString(style.Render("[" + card.String() + "]"))
	}
	return sb.String()
}

func (c *Console) printResults(results []blackjack.HandResult) {
	c.printf("%s\n", c.styles.Header.Render("Results"))
	for _, result := range results {
		player, err := c.table.Player(result.PlayerIndex)
		if err != nil {
			continue
		}

		style := c.styles.Draw
		switch result.Result {
		case blackjack.ResultWin:
			style = c.styles.Win
		case blackjack.ResultLose:
			style = c.styles.Lose
		}

		note := ""
		switch {
		case result.Natural:
			note = " (blackjack)"
		case result.Bust:
			note = " (bust)"
		}
		c.printf("  %-12s %s%s\n", handName(player, result.HandIndex), style.Render(result.Result.String()), note)
	}
}

func (c *Console) printLeaderboard(ctx context.Context) error {
	leaderboard, err := c.stats.GetLeaderboard(ctx, 1, blackjack.MaxPlayers)
	if err != nil {
		return err
	}

	c.printf("\n%s\n", c.styles.Header.Render("Leaderboard"))
	for _, rank := range leaderboard.Players {
		c.printf("  %d. %-10s W:%d L:%d D:%d  %5.1f%%\n",
			rank.Rank, rank.Name, rank.Wins, rank.Losses, rank.Draws, rank.WinRate())
	}
	return nil
}

func (c *Console) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

// handLabel names the hand addressed by a player-turn state
func handLabel(table *blackjack.Table, state blackjack.State) string {
	player, err := table.Player(state.PlayerIndex)
	if err != nil {
		return state.String()
	}
	return handName(player, state.HandIndex)
}

// handName is the player's name, with the hand number once the player has
// split
func handName(player *blackjack.Player, handIndex int) string {
	if player.HandCount() < 2 {
		return player.Name
	}
	return fmt.Sprintf("%s/%d", player.Name, handIndex+1)
}

func titleCase(name string) string {
	if name == "" {
		return name
	}
	return name[:1] + strings.ToLower(name[1:])
}

func containsAction(actions []blackjack.Action, action blackjack.Action) bool {
	for _, a := range actions {
		if a == action {
			return true
		}
	}
	return false
}
