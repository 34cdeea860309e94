package middleware

import (
	"testing"

	"github.com/google/uuid"
	"github.com/jason-s-yu/uno/internal/game"
	"github.com/jason-s-yu/uno/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogEventsForwardsAndLogs(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	var forwarded []game.GameEvent
	handler := LogEvents(logger, func(ev game.GameEvent) {
		forwarded = append(forwarded, ev)
	})

	c := models.NewCard(models.Red, models.Skip)
	ev := game.GameEvent{
		Type:     game.EventCardPlayed,
		GameID:   uuid.New(),
		PlayerID: 3,
		Card:     &c,
		State:    game.WaitingForPlay,
		Message:  "Player 3 played red skip",
	}
	handler(ev)

	require.Len(t, forwarded, 1)
	assert.Equal(t, ev, forwarded[0])

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.DebugLevel, entry.Level)
	assert.Equal(t, "Player 3 played red skip", entry.Message)
	assert.Equal(t, "card_played", entry.Data["event"])
	assert.Equal(t, "red skip", entry.Data["card"])
	assert.Equal(t, int64(3), entry.Data["player"])
	assert.NotContains(t, entry.Data, "target")
}

func TestLogEventsLifecycleAtInfo(t *testing.T) {
	logger, hook := test.NewNullLogger()
	handler := LogEvents(logger, nil)

	handler(game.GameEvent{Type: game.EventPlayerWon, PlayerID: 1, State: game.PlayerWon, Message: "Player 1 won the game"})
	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, logrus.InfoLevel, hook.LastEntry().Level)

	// debug events are filtered at the default level
	handler(game.GameEvent{Type: game.EventTurnPassed, PlayerID: 1, Message: "Player 1 passed"})
	assert.Len(t, hook.AllEntries(), 1)
}

func TestLogEventsWiredToGame(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	g, err := game.NewGame(nil, nil)
	require.NoError(t, err)
	g.OnEvent = LogEvents(logger, nil)

	_, err = g.CreatePlayer(1)
	require.NoError(t, err)
	require.NoError(t, g.StartGame())

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, "player_joined", entries[0].Data["event"])
	assert.Equal(t, "game_started", entries[1].Data["event"])
	assert.Equal(t, g.ID.String(), entries[1].Data["game_id"])
}
