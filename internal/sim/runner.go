// internal/sim/runner.go
package sim

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/jason-s-yu/uno/internal/game"
	"github.com/jason-s-yu/uno/internal/middleware"
	"github.com/jason-s-yu/uno/internal/models"
	"github.com/sirupsen/logrus"
)

// ErrInvariant is returned when a game reaches a state that should be impossible.
var ErrInvariant = errors.New("invariant violated")

// GameOptions configures a single simulated game.
type GameOptions struct {
	Players  int
	MaxSteps int
	Seed     int64
	Rules    *game.Ruleset // copied; nil uses the defaults
	Logger   *logrus.Logger
}

// Result describes one finished (or abandoned) simulated game.
type Result struct {
	GameID     uuid.UUID                  `json:"game_id"`
	Seed       int64                      `json:"seed"`
	WinnerID   int64                      `json:"winner_id,omitempty"`
	WinnerSeat int                        `json:"winner_seat"`
	Steps      int                        `json:"steps"`
	Rejected   int                        `json:"rejected"` // actions the game refused
	Stalled    bool                       `json:"stalled"`
	HandSizes  []int                      `json:"hand_sizes"` // by seat, at the end
	Events     map[game.GameEventType]int `json:"events"`
}

// Finished reports whether the game ended with a winner.
func (r Result) Finished() bool {
	return r.WinnerID != 0
}

// RunGame plays one game between random bots until someone wins, the step
// limit is hit, or no player can act. After every accepted move it checks card
// conservation, the turn index, and that a stack only exists while a plus card
// is pending. A rejected move must leave the game untouched.
func RunGame(ctx context.Context, opts GameOptions) (Result, error) {
	rules := game.DefaultRuleset()
	if opts.Rules != nil {
		copied := *opts.Rules
		rules = &copied
	}
	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	g, err := game.NewGame(rules, rand.New(rand.NewSource(rng.Int63())))
	if err != nil {
		return Result{}, err
	}
	g.SetLogger(logger)

	res := Result{
		GameID:     g.ID,
		Seed:       opts.Seed,
		WinnerSeat: -1,
		Events:     make(map[game.GameEventType]int),
	}
	g.OnEvent = middleware.LogEvents(logger, func(ev game.GameEvent) {
		res.Events[ev.Type]++
	})

	for i := 0; i < opts.Players; i++ {
		if _, err := g.CreatePlayer(int64(i + 1)); err != nil {
			return res, fmt.Errorf("seating player %d: %w", i+1, err)
		}
	}
	if err := g.StartGame(); err != nil {
		return res, err
	}
	if err := checkInvariants(g); err != nil {
		return res, err
	}

	bot := NewRandomBot(rng)
	for res.Steps < opts.MaxSteps && g.State != game.PlayerWon {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		if rules.JumpIns && rng.Intn(4) == 0 {
			jumper := g.Players[rng.Intn(len(g.Players))]
			ok, err := tryActions(g, bot, jumper, bot.JumpInCandidates(g, jumper), &res)
			if err != nil {
				return res, err
			}
			if ok {
				res.Steps++
				continue
			}
		}

		current := g.CurrentPlayer()
		ok, err := tryActions(g, bot, current, bot.Candidates(g, current), &res)
		if err != nil {
			return res, err
		}
		if !ok {
			res.Stalled = true
			logger.WithFields(logrus.Fields{"game_id": g.ID.String(), "state": g.State.String()}).Warn("No player can act")
			break
		}
		res.Steps++
	}

	if winner := g.Winner(); winner != nil {
		res.WinnerID = winner.ID
		res.WinnerSeat = g.TurnIndex
	}
	res.HandSizes = make([]int, len(g.Players))
	for seat, p := range g.Players {
		res.HandSizes[seat] = len(p.Hand)
	}
	return res, nil
}

// tryActions lets the bot act for p and verifies the game afterwards.
func tryActions(g *game.Game, bot *RandomBot, p *models.Player, actions []models.GameAction, res *Result) (bool, error) {
	if len(actions) == 0 {
		return false, nil
	}
	before := g.Snapshot(p.ID)
	_, rejected, err := bot.Act(g, p, actions)
	res.Rejected += rejected
	if errors.Is(err, ErrNoLegalAction) {
		if !before.Equal(g.Snapshot(p.ID)) {
			return false, fmt.Errorf("%w: rejected moves changed game %s", ErrInvariant, g.ID)
		}
		return false, nil
	}
	return true, checkInvariants(g)
}

func checkInvariants(g *game.Game) error {
	if got, want := g.CardsInPlay(), g.Deck.Size(); got != want {
		return fmt.Errorf("%w: game %s holds %d cards, expected %d", ErrInvariant, g.ID, got, want)
	}
	if len(g.Players) > 0 && (g.TurnIndex < 0 || g.TurnIndex >= len(g.Players)) {
		return fmt.Errorf("%w: game %s turn index %d with %d players", ErrInvariant, g.ID, g.TurnIndex, len(g.Players))
	}
	if g.State != game.WaitingForPlusResponse && g.CurrentStack != 0 {
		return fmt.Errorf("%w: game %s has stack %d in %s", ErrInvariant, g.ID, g.CurrentStack, g.State)
	}
	return nil
}
