// internal/game/moves.go
package game

import (
	"fmt"

	"github.com/jason-s-yu/uno/internal/models"
	"github.com/sirupsen/logrus"
)

// PlayCardMove has p play card from their hand, on their turn or as a jump-in,
// and updates the game state accordingly.
//
// Errors:
//   - ErrOutOfTurn: the game is not in progress, it is not p's turn and the
//     card is not a permitted jump-in, or a swap/rotate choice is pending.
//   - ErrInvalidCardPlayed: it is p's turn but the card does not match the
//     pile, or cannot answer the pending stack.
//   - ErrPlayerDoesNotHaveCard: the play is legal but p does not hold the card.
func (g *Game) PlayCardMove(p *models.Player, card models.Card) error {
	if !g.State.InProgress() {
		return fmt.Errorf("%w: game is not in progress", ErrOutOfTurn)
	}
	idx, player, err := g.resolve(p)
	if err != nil {
		return err
	}
	top := g.Deck.TopCard

	switch g.State {
	case WaitingForPickPlayerToSwap:
		if !g.Rules.JumpInDuringSeven {
			return fmt.Errorf("%w: waiting for a swap target", ErrOutOfTurn)
		}
	case WaitingForChooseToRotate:
		if !g.Rules.JumpInDuringZero {
			return fmt.Errorf("%w: waiting for the rotate choice", ErrOutOfTurn)
		}
	case WaitingForWildColor:
		// A colored copy of the wild on top names the color, which is how a
		// color choice comes back through a card picker.
		if idx == g.TurnIndex && card.Face == top.Face && card.Color != models.Wild {
			return g.ChooseColorMove(player, card.Color)
		}
	}

	if idx == g.TurnIndex {
		switch g.State {
		case WaitingForPlay, WaitingForDrawResponse:
			return g.playOnTurn(idx, player, card, false)
		case WaitingForPlusResponse:
			return g.respondToStack(idx, player, card)
		}
	}

	return g.jumpIn(idx, player, card)
}

// playOnTurn plays card for the player holding the turn. allowMismatch skips
// the color/face matching check for accepted cross-type stacks.
func (g *Game) playOnTurn(idx int, player *models.Player, card models.Card, allowMismatch bool) error {
	if !allowMismatch && !card.CanBePlayed(g.Deck.TopCard) {
		return fmt.Errorf("%w: %s cannot be played on %s", ErrInvalidCardPlayed, card, g.Deck.TopCard)
	}
	if !holds(player, card) {
		return fmt.Errorf("%w: %s", ErrPlayerDoesNotHaveCard, card)
	}

	g.commitPlay(player, card, EventCardPlayed, fmt.Sprintf("Player %d played %s", player.ID, card))
	return nil
}

// respondToStack handles a card played by the player a plus card is aimed at.
func (g *Game) respondToStack(idx int, player *models.Player, card models.Card) error {
	if !g.Rules.Stacking {
		return fmt.Errorf("%w: stacking is disabled, draw the stack", ErrInvalidCardPlayed)
	}
	if !g.canStack(card, g.Deck.TopCard) {
		return fmt.Errorf("%w: %s cannot be stacked on %s", ErrInvalidCardPlayed, card, g.Deck.TopCard)
	}
	return g.playOnTurn(idx, player, card, true)
}

// canStack reports whether card may answer the plus card top under the current rules.
func (g *Game) canStack(card, top models.Card) bool {
	switch {
	case !card.IsPlus():
		return false
	case card.Face == top.Face:
		return true
	case g.Rules.StackPlusFoursOnPlusTwos && top.Face == models.PlusTwo && card.Face == models.PlusFour:
		return true
	case g.Rules.StackAllPlusTwosOnPlusFours && top.Face == models.PlusFour && card.Face == models.PlusTwo:
		return true
	case g.Rules.StackColorMatchingPlusTwosOnPlusFours && top.Face == models.PlusFour && card.Face == models.PlusTwo:
		return top.Color == card.Color
	}
	return false
}

// jumpIn plays card out of turn and hands the turn to the jumping player.
func (g *Game) jumpIn(idx int, player *models.Player, card models.Card) error {
	if !g.Rules.JumpIns || !card.CanBeJumpedIn(g.Deck.TopCard) {
		return fmt.Errorf("%w: not player %d's turn", ErrOutOfTurn, player.ID)
	}
	if !holds(player, card) {
		return fmt.Errorf("%w: %s", ErrPlayerDoesNotHaveCard, card)
	}

	g.TurnIndex = idx
	if card.IsPlus() && !g.Rules.JumpInsStack {
		g.CurrentStack = 0
		g.heldStack = 0
	}
	g.commitPlay(player, card, EventJumpIn, fmt.Sprintf("Player %d jumped in with %s", player.ID, card))
	return nil
}

// holds reports whether player has card in hand. Nobody holds a ghost.
func holds(player *models.Player, card models.Card) bool {
	return card.ReturnsToDiscard() && player.HasCard(card)
}

// commitPlay moves an already validated card from player to the pile, checks
// for a win, and runs the card's effect.
func (g *Game) commitPlay(player *models.Player, card models.Card, evType GameEventType, msg string) {
	player.PlayCard(card)
	g.Deck.PlayCard(card)

	g.log.WithFields(logrus.Fields{
		"player": player.ID,
		"card":   card.String(),
		"event":  string(evType),
	}).Debug("Card played")

	if len(player.Hand) == 0 {
		g.State = PlayerWon
		g.CurrentStack = 0
		g.heldStack = 0
		g.fireEvent(GameEvent{Type: evType, PlayerID: player.ID, Card: cardPtr(card), Message: msg})

		g.log.WithField("player", player.ID).Info("Player won")
		g.fireEvent(GameEvent{
			Type:     EventPlayerWon,
			PlayerID: player.ID,
			Message:  fmt.Sprintf("Player %d won the game", player.ID),
		})
		return
	}

	g.processCardStateChanges(card)
	g.fireEvent(GameEvent{Type: evType, PlayerID: player.ID, Card: cardPtr(card), Message: msg})
}

// processCardStateChanges applies the effect of the card just played by the
// player holding the turn.
func (g *Game) processCardStateChanges(card models.Card) {
	if card.Color == models.Wild {
		// no stack is visible while the color is pending
		g.heldStack += g.CurrentStack
		g.CurrentStack = 0
		g.State = WaitingForWildColor
		return
	}

	switch card.Face {
	case models.PlusFour:
		g.CurrentStack += 4
		g.advanceTurn(1)
		g.State = WaitingForPlusResponse
	case models.PlusTwo:
		g.CurrentStack += 2
		g.advanceTurn(1)
		g.State = WaitingForPlusResponse
	case models.Skip:
		g.advanceTurn(2)
		g.State = WaitingForPlay
	case models.Reverse:
		g.Reversed = !g.Reversed
		if len(g.Players) == 2 {
			// acts as a skip in a 1v1
			g.advanceTurn(2)
		} else {
			g.advanceTurn(1)
		}
		g.State = WaitingForPlay
	case models.Zero:
		if g.Rules.ZeroRotateHands {
			g.State = WaitingForChooseToRotate
			return
		}
		g.advanceTurn(1)
		g.State = WaitingForPlay
	case models.Seven:
		if g.Rules.SevenSwapHands {
			g.State = WaitingForPickPlayerToSwap
			return
		}
		g.advanceTurn(1)
		g.State = WaitingForPlay
	case models.One, models.Two, models.Three, models.Four, models.Five,
		models.Six, models.Eight, models.Nine, models.WildFace:
		g.advanceTurn(1)
		g.State = WaitingForPlay
	default:
		panic(fmt.Sprintf("unhandled card face %d", card.Face))
	}
}

// DrawCardMove has the current player draw. While a plus card is pending this
// takes the whole stack and ends the turn. Otherwise the player draws one card,
// or with DrawUntilCanPlay keeps drawing until they can play, and may then play
// or pass.
func (g *Game) DrawCardMove(p *models.Player) error {
	if !g.State.InProgress() {
		return fmt.Errorf("%w: game is not in progress", ErrOutOfTurn)
	}
	idx, player, err := g.resolve(p)
	if err != nil {
		return err
	}
	if idx != g.TurnIndex {
		return fmt.Errorf("%w: not player %d's turn", ErrOutOfTurn, player.ID)
	}

	switch g.State {
	case WaitingForPlusResponse:
		owed := g.CurrentStack
		drawn := g.drawInto(player, owed)
		g.CurrentStack = 0
		g.advanceTurn(1)
		g.State = WaitingForPlay

		g.log.WithFields(logrus.Fields{"player": player.ID, "owed": owed, "drawn": drawn}).Debug("Stack drawn")
		g.fireEvent(GameEvent{
			Type:     EventStackDrawn,
			PlayerID: player.ID,
			Count:    drawn,
			Message:  fmt.Sprintf("Player %d drew %d cards", player.ID, drawn),
		})
		return nil
	case WaitingForPlay:
	default:
		return fmt.Errorf("%w: cannot draw while %s", ErrOutOfTurn, g.State)
	}

	top := g.Deck.TopCard
	if g.Rules.ForcePlay && player.HasCardToPlay(top) {
		return ErrMustPlayCard
	}

	drawn := g.drawInto(player, 1)
	if g.Rules.DrawUntilCanPlay {
		for drawn > 0 && !player.HasCardToPlay(top) {
			if g.drawInto(player, 1) == 0 {
				break
			}
			drawn++
		}
		g.State = WaitingForDrawResponse
	} else {
		g.advanceTurn(1)
		g.State = WaitingForPlay
	}

	g.log.WithFields(logrus.Fields{"player": player.ID, "drawn": drawn}).Debug("Cards drawn")
	g.fireEvent(GameEvent{
		Type:     EventCardsDrawn,
		PlayerID: player.ID,
		Count:    drawn,
		Message:  fmt.Sprintf("Player %d drew %d card(s)", player.ID, drawn),
	})
	return nil
}

// PassTurnMove ends the current player's turn without playing. This is only
// allowed right after drawing when ForcePlay is off, or when the deck is out
// of cards and the player has nothing to play.
func (g *Game) PassTurnMove(p *models.Player) error {
	idx, player, err := g.resolve(p)
	if err != nil {
		return err
	}
	if idx != g.TurnIndex {
		return fmt.Errorf("%w: not player %d's turn", ErrOutOfTurn, player.ID)
	}
	if g.State != WaitingForPlay && g.State != WaitingForDrawResponse {
		return fmt.Errorf("%w: not a valid time to pass", ErrOutOfTurn)
	}

	afterDraw := g.State == WaitingForDrawResponse && !g.Rules.ForcePlay
	stuck := g.Deck.Empty() && !player.HasCardToPlay(g.Deck.TopCard)
	if !afterDraw && !stuck {
		if !g.Deck.Empty() {
			return fmt.Errorf("%w: there are still cards left to draw", ErrOutOfTurn)
		}
		return fmt.Errorf("%w: player has at least one valid play", ErrOutOfTurn)
	}

	g.advanceTurn(1)
	g.State = WaitingForPlay

	g.log.WithField("player", player.ID).Debug("Turn passed")
	g.fireEvent(GameEvent{
		Type:     EventTurnPassed,
		PlayerID: player.ID,
		Message:  fmt.Sprintf("Player %d passed", player.ID),
	})
	return nil
}
