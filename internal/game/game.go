// internal/game/game.go
package game

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/jason-s-yu/uno/internal/models"
	"github.com/sirupsen/logrus"
)

// Game holds the entire state for a single match in memory.
//
// A Game is not safe for concurrent use; the caller serializes moves against
// one instance. Every move either succeeds completely or returns an error and
// leaves the game untouched.
type Game struct {
	ID uuid.UUID

	// Rules is read on every decision; edits take effect on the next move.
	Rules *Ruleset

	Players      []*models.Player // turn order
	Deck         *Deck
	TurnIndex    int
	Reversed     bool
	CurrentStack int // cards owed by the current player while WaitingForPlusResponse
	State        State

	// OnEvent is invoked after every successful mutation. If nil, no event is fired.
	OnEvent func(ev GameEvent)

	// heldStack parks a running stack while a +4 waits for its color.
	heldStack int
	log       *logrus.Entry
}

// NewGame builds a game in Pregame with a fresh deck. A nil rules uses
// DefaultRuleset; a nil rng uses a time-seeded source.
func NewGame(rules *Ruleset, rng *rand.Rand) (*Game, error) {
	if rules == nil {
		rules = DefaultRuleset()
	}
	if err := rules.Validate(); err != nil {
		return nil, err
	}

	id, _ := uuid.NewRandom()
	g := &Game{
		ID:      id,
		Rules:   rules,
		Players: []*models.Player{},
		State:   Pregame,
	}

	deck, err := NewDeck(rules.NumberOfDecks, rng)
	if err != nil {
		return nil, err
	}
	g.Deck = deck
	g.SetLogger(logrus.StandardLogger())

	g.log.WithField("cards", deck.Size()).Debug("Game created")
	return g, nil
}

// SetLogger routes the game's log output through logger.
func (g *Game) SetLogger(logger *logrus.Logger) {
	g.log = logger.WithField("game_id", g.ID.String())
	if g.Deck != nil {
		g.Deck.log = g.log
	}
}

// CreatePlayer adds a player with the given id, deals them a starting hand and
// appends them to the turn order.
func (g *Game) CreatePlayer(id int64) (*models.Player, error) {
	if g.indexOf(id) >= 0 {
		return nil, fmt.Errorf("%w: %d", ErrDuplicateID, id)
	}
	if g.State == PlayerWon {
		return nil, fmt.Errorf("%w: game is over", ErrOutOfTurn)
	}
	if g.Deck.Remaining() < g.Rules.StartingHandSize {
		return nil, fmt.Errorf("%w: %d cards left, need %d", ErrOutOfCards, g.Deck.Remaining(), g.Rules.StartingHandSize)
	}

	p := models.NewPlayer(id)
	g.drawInto(p, g.Rules.StartingHandSize)
	g.Players = append(g.Players, p)

	g.log.WithFields(logrus.Fields{"player": id, "seat": len(g.Players) - 1}).Debug("Player joined")
	g.fireEvent(GameEvent{
		Type:     EventPlayerJoined,
		PlayerID: id,
		Count:    len(p.Hand),
		Message:  fmt.Sprintf("Player %d joined the game", id),
	})
	return p, nil
}

// RemovePlayer takes a player out of the turn order and archives their hand
// to the discard pile.
func (g *Game) RemovePlayer(id int64) error {
	idx := g.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}

	player := g.Players[idx]
	g.Deck.Discard(player.Hand...)
	player.Hand = []models.Card{}
	g.Players = append(g.Players[:idx:idx], g.Players[idx+1:]...)

	wasCurrent := idx == g.TurnIndex
	n := len(g.Players)
	switch {
	case n == 0:
		g.TurnIndex = 0
	case idx < g.TurnIndex:
		g.TurnIndex--
	case wasCurrent && g.Reversed:
		g.TurnIndex = wrapIndex(idx-1, n)
	case wasCurrent:
		g.TurnIndex = wrapIndex(idx, n)
	}

	if wasCurrent {
		switch g.State {
		case WaitingForPickPlayerToSwap, WaitingForChooseToRotate, WaitingForDrawResponse:
			// the choice belonged to the departing player
			g.State = WaitingForPlay
		}
	}

	g.log.WithFields(logrus.Fields{"player": id, "state": g.State.String()}).Debug("Player left")
	g.fireEvent(GameEvent{
		Type:     EventPlayerLeft,
		PlayerID: id,
		Message:  fmt.Sprintf("Player %d left the game", id),
	})
	return nil
}

// GetPlayer returns the player with the given id.
func (g *Game) GetPlayer(id int64) (*models.Player, error) {
	idx := g.indexOf(id)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return g.Players[idx], nil
}

// StartGame moves the game out of Pregame. The first player in turn order starts.
func (g *Game) StartGame() error {
	if g.State != Pregame {
		return fmt.Errorf("%w: game already started", ErrOutOfTurn)
	}
	if len(g.Players) == 0 {
		return ErrNotEnoughPlayers
	}

	g.State = WaitingForPlay
	g.TurnIndex = 0

	g.log.WithFields(logrus.Fields{"players": len(g.Players), "top": g.Deck.TopCard.String()}).Info("Game started")
	g.fireEvent(GameEvent{
		Type:     EventGameStarted,
		PlayerID: g.Players[0].ID,
		Card:     cardPtr(g.Deck.TopCard),
		Message:  fmt.Sprintf("Game started with %d players", len(g.Players)),
	})
	return nil
}

// CurrentPlayer returns the player whose turn it is, or nil if there are no players.
func (g *Game) CurrentPlayer() *models.Player {
	if g.TurnIndex < 0 || g.TurnIndex >= len(g.Players) {
		return nil
	}
	return g.Players[g.TurnIndex]
}

// IsPlayersTurn reports whether it is p's turn.
func (g *Game) IsPlayersTurn(p *models.Player) bool {
	current := g.CurrentPlayer()
	return current != nil && current.Equal(p)
}

// Winner returns the player who emptied their hand, or nil while no one has.
func (g *Game) Winner() *models.Player {
	if g.State != PlayerWon {
		return nil
	}
	return g.CurrentPlayer()
}

// CardsInPlay counts every physical card the game holds: deck, piles and hands.
// It always equals Deck.Size().
func (g *Game) CardsInPlay() int {
	n := g.Deck.CardCount()
	for _, p := range g.Players {
		n += len(p.Hand)
	}
	return n
}

func (g *Game) indexOf(id int64) int {
	for i, p := range g.Players {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// resolve maps a caller-supplied player onto the game's own seat.
func (g *Game) resolve(p *models.Player) (int, *models.Player, error) {
	if p == nil {
		return -1, nil, fmt.Errorf("%w: nil player", ErrNotFound)
	}
	idx := g.indexOf(p.ID)
	if idx < 0 {
		return -1, nil, fmt.Errorf("%w: %d", ErrNotFound, p.ID)
	}
	return idx, g.Players[idx], nil
}

// advanceTurn moves the turn k seats in the current direction of play.
func (g *Game) advanceTurn(k int) {
	if len(g.Players) == 0 {
		return
	}
	step := k
	if g.Reversed {
		step = -k
	}
	g.TurnIndex = wrapIndex(g.TurnIndex+step, len(g.Players))
}

// drawInto draws up to n cards into p's hand, stopping quietly if the deck
// runs dry. Returns the number of cards drawn.
func (g *Game) drawInto(p *models.Player, n int) int {
	drawn := 0
	for ; drawn < n; drawn++ {
		card, err := g.Deck.DrawCard()
		if err != nil {
			g.log.WithFields(logrus.Fields{"player": p.ID, "wanted": n, "drawn": drawn}).Warn("Deck exhausted while drawing")
			break
		}
		p.AddCardToHand(card)
	}
	return drawn
}

func (g *Game) fireEvent(ev GameEvent) {
	if g.OnEvent == nil {
		return
	}
	ev.GameID = g.ID
	ev.State = g.State
	ev.TurnIndex = g.TurnIndex
	ev.Reversed = g.Reversed
	ev.Stack = g.CurrentStack
	g.OnEvent(ev)
}
