package sim

import (
	"context"
	"math/rand"
	"testing"

	"github.com/jason-s-yu/uno/internal/game"
	"github.com/jason-s-yu/uno/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	logger, _ := test.NewNullLogger()
	return logger
}

func houseRules() *game.Ruleset {
	rules := game.DefaultRuleset()
	rules.JumpIns = true
	rules.JumpInsStack = true
	rules.Stacking = true
	rules.StackPlusFoursOnPlusTwos = true
	rules.StackColorMatchingPlusTwosOnPlusFours = true
	rules.SevenSwapHands = true
	rules.JumpInDuringSeven = true
	rules.ZeroRotateHands = true
	rules.ForceZeroRotate = true
	return rules
}

func TestRunGameDefaultRules(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		res, err := RunGame(context.Background(), GameOptions{
			Players:  4,
			MaxSteps: 5000,
			Seed:     seed,
			Logger:   quietLogger(),
		})
		require.NoError(t, err, "seed %d", seed)
		assert.Positive(t, res.Steps)
		assert.Equal(t, 4, res.Events[game.EventPlayerJoined])
		assert.Equal(t, 1, res.Events[game.EventGameStarted])
		require.Len(t, res.HandSizes, 4)
		if res.Finished() {
			assert.Equal(t, 1, res.Events[game.EventPlayerWon])
			require.GreaterOrEqual(t, res.WinnerSeat, 0)
			assert.Zero(t, res.HandSizes[res.WinnerSeat])
		}
	}
}

func TestRunGameHouseRules(t *testing.T) {
	for _, players := range []int{2, 3, 6} {
		for seed := int64(1); seed <= 10; seed++ {
			_, err := RunGame(context.Background(), GameOptions{
				Players:  players,
				MaxSteps: 3000,
				Seed:     seed,
				Rules:    houseRules(),
				Logger:   quietLogger(),
			})
			require.NoError(t, err, "players %d seed %d", players, seed)
		}
	}
}

func TestRunGameIsDeterministic(t *testing.T) {
	opts := GameOptions{Players: 3, MaxSteps: 2000, Seed: 1234, Rules: houseRules(), Logger: quietLogger()}
	a, err := RunGame(context.Background(), opts)
	require.NoError(t, err)
	b, err := RunGame(context.Background(), opts)
	require.NoError(t, err)

	assert.Equal(t, a.Steps, b.Steps)
	assert.Equal(t, a.WinnerID, b.WinnerID)
	assert.Equal(t, a.Events, b.Events)
	assert.NotEqual(t, a.GameID, b.GameID)
}

func TestRunGameRespectsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := RunGame(ctx, GameOptions{Players: 2, MaxSteps: 100, Seed: 1, Logger: quietLogger()})
	require.ErrorIs(t, err, context.Canceled)
}

func TestRunGameTooManyPlayers(t *testing.T) {
	_, err := RunGame(context.Background(), GameOptions{Players: 20, MaxSteps: 10, Seed: 1, Logger: quietLogger()})
	require.ErrorIs(t, err, game.ErrOutOfCards)
}

func TestRunBatch(t *testing.T) {
	summary, err := RunBatch(context.Background(), BatchOptions{
		Games:    16,
		Players:  4,
		Workers:  4,
		Seed:     7,
		MaxSteps: 3000,
		Rules:    houseRules(),
		Logger:   quietLogger(),
	})
	require.NoError(t, err)
	assert.Equal(t, 16, summary.Games)
	assert.Len(t, summary.Results, 16)
	assert.Equal(t, 16*4, summary.Events[string(game.EventPlayerJoined)])
	assert.Positive(t, summary.AverageSteps())

	wins := 0
	for _, n := range summary.SeatWins {
		wins += n
	}
	assert.Equal(t, summary.Finished, wins)
	if summary.Finished > 0 {
		assert.Len(t, summary.SeatRatings, 4)
	}
}

func TestRunBatchRejectsBadOptions(t *testing.T) {
	_, err := RunBatch(context.Background(), BatchOptions{Games: 0, Players: 2, MaxSteps: 10})
	require.ErrorIs(t, err, game.ErrInvalidArgument)
}

func TestRandomBotCandidates(t *testing.T) {
	g, err := game.NewGame(nil, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	p, err := g.CreatePlayer(1)
	require.NoError(t, err)
	_, err = g.CreatePlayer(2)
	require.NoError(t, err)
	require.NoError(t, g.StartGame())

	p.Hand = []models.Card{
		models.NewCard(models.Red, models.One),
		models.NewCard(models.Red, models.One),
		models.NewCard(models.Blue, models.Two),
	}
	bot := NewRandomBot(rand.New(rand.NewSource(1)))
	// 2 distinct cards, draw, pass, two rotate choices, four colors, two seats
	assert.Len(t, bot.Candidates(g, p), 2+2+2+4+2)

	g.Deck.TopCard = models.NewCard(models.Red, models.One)
	assert.Len(t, bot.JumpInCandidates(g, p), 2)

	action, _, err := bot.Act(g, p, bot.Candidates(g, p))
	require.NoError(t, err)
	assert.Equal(t, models.ActionPlayCard, action.ActionType, "red one is the only legal move")
}
