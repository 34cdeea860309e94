// internal/game/sync_state.go
package game

import (
	"github.com/google/uuid"
	"github.com/jason-s-yu/uno/internal/models"
)

// PlayerState is one seat as seen by the requesting player.
type PlayerState struct {
	PlayerID      int64         `json:"player_id"`
	Seat          int           `json:"seat"`
	HandSize      int           `json:"hand_size"`
	IsCurrentTurn bool          `json:"is_current_turn"`
	Hand          []models.Card `json:"hand,omitempty"` // only for the requester
}

// GameState is returned by Snapshot.
type GameState struct {
	GameID          uuid.UUID     `json:"game_id"`
	State           State         `json:"state"`
	TurnIndex       int           `json:"turn_index"`
	CurrentPlayerID int64         `json:"current_player_id,omitempty"`
	Reversed        bool          `json:"reversed"`
	Stack           int           `json:"stack"`
	TopCard         models.Card   `json:"top_card"`
	DrawPileSize    int           `json:"draw_pile_size"`
	DiscardPileSize int           `json:"discard_pile_size"`
	Players         []PlayerState `json:"players"`
	WinnerID        int64         `json:"winner_id,omitempty"`
	Rules           Ruleset       `json:"rules"`
}

// Snapshot generates a view of the game for forPlayer. Only forPlayer's own
// hand is included; other seats show their hand size.
func (g *Game) Snapshot(forPlayer int64) GameState {
	gs := GameState{
		GameID:          g.ID,
		State:           g.State,
		TurnIndex:       g.TurnIndex,
		Reversed:        g.Reversed,
		Stack:           g.CurrentStack,
		TopCard:         g.Deck.TopCard,
		DrawPileSize:    len(g.Deck.DrawPile),
		DiscardPileSize: len(g.Deck.DiscardPile),
		Players:         make([]PlayerState, 0, len(g.Players)),
		Rules:           *g.Rules,
	}
	if current := g.CurrentPlayer(); current != nil {
		gs.CurrentPlayerID = current.ID
	}
	if winner := g.Winner(); winner != nil {
		gs.WinnerID = winner.ID
	}

	for i, pl := range g.Players {
		ps := PlayerState{
			PlayerID:      pl.ID,
			Seat:          i,
			HandSize:      len(pl.Hand),
			IsCurrentTurn: i == g.TurnIndex,
		}
		if pl.ID == forPlayer {
			ps.Hand = append([]models.Card(nil), pl.Hand...)
		}
		gs.Players = append(gs.Players, ps)
	}
	return gs
}

// Equal reports whether two snapshots show the same game position.
func (gs GameState) Equal(other GameState) bool {
	if gs.GameID != other.GameID || gs.State != other.State ||
		gs.TurnIndex != other.TurnIndex || gs.CurrentPlayerID != other.CurrentPlayerID ||
		gs.Reversed != other.Reversed || gs.Stack != other.Stack ||
		gs.TopCard != other.TopCard || gs.WinnerID != other.WinnerID ||
		gs.DrawPileSize != other.DrawPileSize || gs.DiscardPileSize != other.DiscardPileSize ||
		gs.Rules != other.Rules || len(gs.Players) != len(other.Players) {
		return false
	}
	for i, ps := range gs.Players {
		if !ps.equal(other.Players[i]) {
			return false
		}
	}
	return true
}

func (ps PlayerState) equal(other PlayerState) bool {
	if ps.PlayerID != other.PlayerID || ps.Seat != other.Seat ||
		ps.HandSize != other.HandSize || ps.IsCurrentTurn != other.IsCurrentTurn ||
		len(ps.Hand) != len(other.Hand) {
		return false
	}
	for i, c := range ps.Hand {
		if c != other.Hand[i] {
			return false
		}
	}
	return true
}
