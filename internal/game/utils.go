// internal/game/utils.go
package game

import (
	"encoding/json"

	"github.com/jason-s-yu/uno/internal/models"
)

// wrapIndex reduces i into [0, n).
func wrapIndex(i, n int) int {
	return ((i % n) + n) % n
}

func cardPtr(c models.Card) *models.Card {
	return &c
}

// MarshalText lets states appear by name in JSON.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// EventJSON marshals a GameEvent into JSON bytes.
// Returns empty JSON "{}" on marshalling error.
func EventJSON(ev GameEvent) []byte {
	data, err := json.Marshal(ev)
	if err != nil {
		return []byte("{}")
	}
	return data
}
