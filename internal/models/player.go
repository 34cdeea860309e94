package models

// Player is a seat in a game. Players are equal when their IDs match.
type Player struct {
	ID   int64  `json:"id"`
	Hand []Card `json:"hand"`
}

// NewPlayer builds a player with an empty hand.
func NewPlayer(id int64) *Player {
	return &Player{ID: id, Hand: []Card{}}
}

// Equal compares player IDs.
func (p *Player) Equal(other *Player) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.ID == other.ID
}

// AddCardToHand appends card to the hand.
func (p *Player) AddCardToHand(card Card) {
	p.Hand = append(p.Hand, card)
}

// PlayCard removes the first card equal to card from the hand.
// Ghost cards are never in a hand, so playing one always succeeds and leaves
// the hand untouched. Returns false if the player does not hold the card.
func (p *Player) PlayCard(card Card) bool {
	if !card.ReturnsToDiscard() {
		return true
	}
	for i, c := range p.Hand {
		if c.Equal(card) {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return true
		}
	}
	return false
}

// HasCard reports whether the hand holds a card equal to card.
func (p *Player) HasCard(card Card) bool {
	for _, c := range p.Hand {
		if c.Equal(card) {
			return true
		}
	}
	return false
}

// HasCardToPlay determines if any card in hand can be played on top.
func (p *Player) HasCardToPlay(top Card) bool {
	for _, c := range p.Hand {
		if c.CanBePlayed(top) {
			return true
		}
	}
	return false
}

// PlayableCards returns the distinct cards in hand that can be played on top,
// in hand order.
func (p *Player) PlayableCards(top Card) []Card {
	var out []Card
	for _, c := range p.Hand {
		if !c.CanBePlayed(top) {
			continue
		}
		dup := false
		for _, seen := range out {
			if seen.Equal(c) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, c)
		}
	}
	return out
}
