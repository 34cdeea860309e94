package models

// Action types understood by the game's action router.
const (
	ActionPlayCard    = "play_card"
	ActionDrawCard    = "draw_card"
	ActionPassTurn    = "pass_turn"
	ActionChooseColor = "choose_color"
	ActionSevenSwap   = "seven_swap"
	ActionZeroRotate  = "zero_rotate"
)

// GameAction captures a player's in-game move
type GameAction struct {
	ActionType string                 `json:"action_type"`
	Payload    map[string]interface{} `json:"payload"`
}

// PlayCardAction builds a play_card action for card.
func PlayCardAction(card Card) GameAction {
	return GameAction{ActionType: ActionPlayCard, Payload: map[string]interface{}{"card": card.String()}}
}

// ChooseColorAction builds a choose_color action.
func ChooseColorAction(color Color) GameAction {
	return GameAction{ActionType: ActionChooseColor, Payload: map[string]interface{}{"color": color.String()}}
}

// SevenSwapAction builds a seven_swap action targeting the player at index target.
func SevenSwapAction(target int) GameAction {
	return GameAction{ActionType: ActionSevenSwap, Payload: map[string]interface{}{"target": float64(target)}}
}

// ZeroRotateAction builds a zero_rotate action.
func ZeroRotateAction(rotate bool) GameAction {
	return GameAction{ActionType: ActionZeroRotate, Payload: map[string]interface{}{"rotate": rotate}}
}
