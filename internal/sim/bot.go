// internal/sim/bot.go
package sim

import (
	"errors"
	"math/rand"

	"github.com/jason-s-yu/uno/internal/game"
	"github.com/jason-s-yu/uno/internal/models"
)

// ErrNoLegalAction is returned by Act when every candidate was rejected.
var ErrNoLegalAction = errors.New("no legal action")

// RandomBot plays by trying candidate actions in random order until the game
// accepts one. It knows nothing about the rules beyond which actions exist;
// the game rejects anything illegal without changing state.
type RandomBot struct {
	rng *rand.Rand
}

// NewRandomBot returns a bot drawing its choices from rng.
func NewRandomBot(rng *rand.Rand) *RandomBot {
	return &RandomBot{rng: rng}
}

// Candidates lists every action p could attempt in g right now.
func (b *RandomBot) Candidates(g *game.Game, p *models.Player) []models.GameAction {
	var out []models.GameAction
	seen := make(map[models.Card]bool, len(p.Hand))
	for _, c := range p.Hand {
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, models.PlayCardAction(c))
	}
	out = append(out,
		models.GameAction{ActionType: models.ActionDrawCard},
		models.GameAction{ActionType: models.ActionPassTurn},
		models.ZeroRotateAction(true),
		models.ZeroRotateAction(false),
	)
	for _, color := range models.Colors {
		out = append(out, models.ChooseColorAction(color))
	}
	for seat := range g.Players {
		out = append(out, models.SevenSwapAction(seat))
	}
	return out
}

// JumpInCandidates lists the cards p holds that exactly match the top card.
func (b *RandomBot) JumpInCandidates(g *game.Game, p *models.Player) []models.GameAction {
	var out []models.GameAction
	for _, c := range p.Hand {
		if c.CanBeJumpedIn(g.Deck.TopCard) {
			out = append(out, models.PlayCardAction(c))
		}
	}
	return out
}

// Act tries actions for p in random order and returns the first one the game
// accepted, along with how many were rejected before it.
func (b *RandomBot) Act(g *game.Game, p *models.Player, actions []models.GameAction) (models.GameAction, int, error) {
	b.rng.Shuffle(len(actions), func(i, j int) {
		actions[i], actions[j] = actions[j], actions[i]
	})
	for i, action := range actions {
		if err := g.HandlePlayerAction(p.ID, action); err == nil {
			return action, i, nil
		}
	}
	return models.GameAction{}, len(actions), ErrNoLegalAction
}
