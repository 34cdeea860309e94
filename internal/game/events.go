// internal/game/events.go
package game

import (
	"github.com/google/uuid"
	"github.com/jason-s-yu/uno/internal/models"
)

// GameEventType is an enum-like type for broadcasting game actions.
type GameEventType string

const (
	EventPlayerJoined   GameEventType = "player_joined"
	EventPlayerLeft     GameEventType = "player_left"
	EventGameStarted    GameEventType = "game_started"
	EventCardPlayed     GameEventType = "card_played"
	EventJumpIn         GameEventType = "jump_in"
	EventColorChosen    GameEventType = "color_chosen"
	EventCardsDrawn     GameEventType = "cards_drawn"
	EventStackDrawn     GameEventType = "stack_drawn"
	EventTurnPassed     GameEventType = "turn_passed"
	EventHandsSwapped   GameEventType = "hands_swapped"
	EventSwapDeclined   GameEventType = "swap_declined"
	EventHandsRotated   GameEventType = "hands_rotated"
	EventRotateDeclined GameEventType = "rotate_declined"
	EventPlayerWon      GameEventType = "player_won"
)

// GameEvent holds data about something that happened in a game, in a form the
// presentation layer can render or forward. Events never carry hidden cards.
type GameEvent struct {
	Type     GameEventType `json:"type"`
	GameID   uuid.UUID     `json:"game_id"`
	PlayerID int64         `json:"player_id,omitempty"`
	TargetID int64         `json:"target_id,omitempty"`
	Card     *models.Card  `json:"card,omitempty"`
	Count    int           `json:"count,omitempty"`

	// state after the event
	State     State `json:"state"`
	TurnIndex int   `json:"turn_index"`
	Reversed  bool  `json:"reversed"`
	Stack     int   `json:"stack"`

	// Message is a one-line status description, e.g. "Player 3 played red skip".
	Message string `json:"message"`
}
