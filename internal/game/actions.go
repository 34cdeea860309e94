// internal/game/actions.go
package game

import (
	"fmt"

	"github.com/jason-s-yu/uno/internal/models"
	"github.com/sirupsen/logrus"
)

// HandlePlayerAction interprets a play_card, draw_card, pass_turn,
// choose_color, seven_swap or zero_rotate action from the given player and
// routes it to the matching move. Malformed payloads are rejected with
// ErrInvalidArgument before the game is touched.
func (g *Game) HandlePlayerAction(playerID int64, action models.GameAction) error {
	player, err := g.GetPlayer(playerID)
	if err != nil {
		g.log.WithFields(logrus.Fields{"player": playerID, "action": action.ActionType}).Warn("Action from unknown player")
		return err
	}

	err = g.routeAction(player, action)
	if err != nil {
		g.log.WithFields(logrus.Fields{
			"player": playerID,
			"action": action.ActionType,
			"kind":   KindOf(err).String(),
		}).Debug("Action rejected")
	}
	return err
}

func (g *Game) routeAction(player *models.Player, action models.GameAction) error {
	switch action.ActionType {
	case models.ActionPlayCard:
		card, err := payloadCard(action.Payload)
		if err != nil {
			return err
		}
		return g.PlayCardMove(player, card)
	case models.ActionDrawCard:
		return g.DrawCardMove(player)
	case models.ActionPassTurn:
		return g.PassTurnMove(player)
	case models.ActionChooseColor:
		s, err := payloadString(action.Payload, "color")
		if err != nil {
			return err
		}
		color, err := models.ParseColor(s)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
		}
		return g.ChooseColorMove(player, color)
	case models.ActionSevenSwap:
		target, err := payloadInt(action.Payload, "target")
		if err != nil {
			return err
		}
		return g.SevenSwapMove(player, target)
	case models.ActionZeroRotate:
		rotate, ok := action.Payload["rotate"].(bool)
		if !ok {
			return fmt.Errorf("%w: rotate must be a boolean", ErrInvalidArgument)
		}
		return g.ZeroRotateMove(player, rotate)
	default:
		return fmt.Errorf("%w: unknown action type %q", ErrInvalidArgument, action.ActionType)
	}
}

func payloadString(payload map[string]interface{}, key string) (string, error) {
	s, ok := payload[key].(string)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a string", ErrInvalidArgument, key)
	}
	return s, nil
}

func payloadCard(payload map[string]interface{}) (models.Card, error) {
	s, err := payloadString(payload, "card")
	if err != nil {
		return models.Card{}, err
	}
	card, err := models.ParseCard(s)
	if err != nil {
		return models.Card{}, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	return card, nil
}

// payloadInt accepts JSON numbers (float64) as well as Go ints.
func payloadInt(payload map[string]interface{}, key string) (int, error) {
	switch v := payload[key].(type) {
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("%w: %s must be a whole number", ErrInvalidArgument, key)
		}
		return int(v), nil
	case int:
		return v, nil
	case int64:
		return int(v), nil
	default:
		return 0, fmt.Errorf("%w: %s must be a number", ErrInvalidArgument, key)
	}
}
