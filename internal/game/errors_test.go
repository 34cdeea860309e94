package game

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNone, KindOf(nil))
	assert.Equal(t, KindUnknown, KindOf(errors.New("boom")))

	for _, k := range kinds {
		wrapped := fmt.Errorf("%w: some detail", k.err)
		assert.Equal(t, k.kind, KindOf(wrapped), k.err.Error())
		assert.NotEqual(t, "unknown", k.kind.String())
	}
}

func TestKindOfMoves(t *testing.T) {
	g, players, _ := setupTestGame(t, 2, nil)
	assert.Equal(t, KindOutOfTurn, KindOf(g.DrawCardMove(players[1])))
	assert.Equal(t, KindNotFound, KindOf(g.RemovePlayer(77)))
	assert.Equal(t, "out_of_turn", KindOutOfTurn.String())
}
