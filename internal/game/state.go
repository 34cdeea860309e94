package game

// State is the phase of a game, i.e. what the engine is waiting for.
type State int

const (
	Pregame State = iota
	WaitingForPlay
	WaitingForPlusResponse
	WaitingForWildColor
	WaitingForPickPlayerToSwap
	WaitingForChooseToRotate
	WaitingForDrawResponse
	PlayerWon
)

func (s State) String() string {
	switch s {
	case Pregame:
		return "pregame"
	case WaitingForPlay:
		return "waiting_for_play"
	case WaitingForPlusResponse:
		return "waiting_for_plus_response"
	case WaitingForWildColor:
		return "waiting_for_wild_color"
	case WaitingForPickPlayerToSwap:
		return "waiting_for_pick_player_to_swap"
	case WaitingForChooseToRotate:
		return "waiting_for_choose_to_rotate"
	case WaitingForDrawResponse:
		return "waiting_for_draw_response"
	case PlayerWon:
		return "player_won"
	default:
		return "unknown"
	}
}

// InProgress reports whether moves can be made in this state.
func (s State) InProgress() bool {
	return s != Pregame && s != PlayerWon
}
