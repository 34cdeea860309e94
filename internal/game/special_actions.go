// internal/game/special_actions.go
package game

import (
	"fmt"

	"github.com/jason-s-yu/uno/internal/models"
	"github.com/sirupsen/logrus"
)

// ChooseColorMove completes a wild or plus four. The top card is replaced by a
// ghost of the chosen color, and the card's effect then runs as if that ghost
// had been played.
func (g *Game) ChooseColorMove(p *models.Player, color models.Color) error {
	if g.State != WaitingForWildColor {
		return fmt.Errorf("%w: no color choice pending", ErrOutOfTurn)
	}
	idx, player, err := g.resolve(p)
	if err != nil {
		return err
	}
	if idx != g.TurnIndex {
		return fmt.Errorf("%w: not player %d's turn", ErrOutOfTurn, player.ID)
	}
	if !isRealColor(color) {
		return fmt.Errorf("%w: %s is not a color that can be chosen", ErrInvalidCardPlayed, color)
	}

	ghost := models.NewGhostCard(color, g.Deck.TopCard.Face)
	g.Deck.PlayCard(ghost)
	g.State = WaitingForPlay
	g.CurrentStack = g.heldStack
	g.heldStack = 0
	g.processCardStateChanges(ghost)

	g.log.WithFields(logrus.Fields{"player": player.ID, "color": color.String()}).Debug("Color chosen")
	g.fireEvent(GameEvent{
		Type:     EventColorChosen,
		PlayerID: player.ID,
		Card:     cardPtr(ghost),
		Message:  fmt.Sprintf("Player %d chose %s", player.ID, color),
	})
	return nil
}

func isRealColor(color models.Color) bool {
	for _, c := range models.Colors {
		if c == color {
			return true
		}
	}
	return false
}

// SevenSwapMove swaps the current player's hand with the player seated at
// target. Picking your own seat declines the swap unless ForceSevenSwap is set.
func (g *Game) SevenSwapMove(p *models.Player, target int) error {
	if g.State != WaitingForPickPlayerToSwap {
		return fmt.Errorf("%w: no swap pending", ErrOutOfTurn)
	}
	idx, player, err := g.resolve(p)
	if err != nil {
		return err
	}
	if idx != g.TurnIndex {
		return fmt.Errorf("%w: not player %d's turn", ErrOutOfTurn, player.ID)
	}
	if target < 0 || target >= len(g.Players) {
		return fmt.Errorf("%w: no player at seat %d", ErrIndex, target)
	}

	if target == idx {
		if g.Rules.ForceSevenSwap {
			return fmt.Errorf("%w: must swap with another player", ErrInvalidArgument)
		}
		g.advanceTurn(1)
		g.State = WaitingForPlay

		g.log.WithField("player", player.ID).Debug("Swap declined")
		g.fireEvent(GameEvent{
			Type:     EventSwapDeclined,
			PlayerID: player.ID,
			Message:  fmt.Sprintf("Player %d kept their hand", player.ID),
		})
		return nil
	}

	other := g.Players[target]
	player.Hand, other.Hand = other.Hand, player.Hand
	g.advanceTurn(1)
	g.State = WaitingForPlay

	g.log.WithFields(logrus.Fields{"player": player.ID, "target": other.ID}).Debug("Hands swapped")
	g.fireEvent(GameEvent{
		Type:     EventHandsSwapped,
		PlayerID: player.ID,
		TargetID: other.ID,
		Message:  fmt.Sprintf("Player %d swapped hands with player %d", player.ID, other.ID),
	})
	return nil
}

// ZeroRotateMove resolves a played 0. If rotate is set every hand moves one
// seat in the direction of play.
func (g *Game) ZeroRotateMove(p *models.Player, rotate bool) error {
	if g.State != WaitingForChooseToRotate {
		return fmt.Errorf("%w: no rotation pending", ErrOutOfTurn)
	}
	idx, player, err := g.resolve(p)
	if err != nil {
		return err
	}
	if idx != g.TurnIndex {
		return fmt.Errorf("%w: not player %d's turn", ErrOutOfTurn, player.ID)
	}
	if !rotate && g.Rules.ForceZeroRotate {
		return fmt.Errorf("%w: hands must be rotated", ErrInvalidArgument)
	}

	evType, msg := EventRotateDeclined, fmt.Sprintf("Player %d did not rotate hands", player.ID)
	if rotate {
		g.rotateHands()
		evType, msg = EventHandsRotated, fmt.Sprintf("Player %d rotated all hands", player.ID)
	}
	g.advanceTurn(1)
	g.State = WaitingForPlay

	g.log.WithFields(logrus.Fields{"player": player.ID, "rotate": rotate}).Debug("Zero resolved")
	g.fireEvent(GameEvent{Type: evType, PlayerID: player.ID, Message: msg})
	return nil
}

// rotateHands passes the hand at seat i to the next seat in the direction of play.
func (g *Game) rotateHands() {
	n := len(g.Players)
	hands := make([][]models.Card, n)
	step := 1
	if g.Reversed {
		step = -1
	}
	for i, pl := range g.Players {
		hands[wrapIndex(i+step, n)] = pl.Hand
	}
	for i, pl := range g.Players {
		pl.Hand = hands[i]
	}
}
