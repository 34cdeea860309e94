// internal/game/deck.go
package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/jason-s-yu/uno/internal/models"
	"github.com/sirupsen/logrus"
)

// CardsPerDeck is the size of one standard deck.
const CardsPerDeck = 108

// Deck holds the draw pile, the discard pile and the card currently face up.
// Draws are uniformly random, so the order of either pile is irrelevant.
type Deck struct {
	DrawPile    []models.Card
	DiscardPile []models.Card
	TopCard     models.Card

	size int
	rng  *rand.Rand
	log  *logrus.Entry
}

// NewDeck builds count standard decks into one draw pile and turns up a
// starting card. A nil rng is replaced by a time-seeded source.
func NewDeck(count int, rng *rand.Rand) (*Deck, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: deck count must be 1 or more", ErrInvalidArgument)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	d := &Deck{
		DrawPile:    make([]models.Card, 0, count*CardsPerDeck),
		DiscardPile: []models.Card{},
		size:        count * CardsPerDeck,
		rng:         rng,
		log:         logrus.NewEntry(logrus.StandardLogger()),
	}
	for i := 0; i < count; i++ {
		d.DrawPile = append(d.DrawPile, standardDeck()...)
	}

	top, err := d.DrawStartingCard()
	if err != nil {
		return nil, err
	}
	d.TopCard = top
	return d, nil
}

// standardDeck returns the 108 cards of one deck: per color one 0, two of each
// 1-9, two skips, two reverses and two +2s; plus four wilds and four +4s.
func standardDeck() []models.Card {
	faces := []models.Face{models.Zero}
	for _, f := range []models.Face{
		models.One, models.Two, models.Three, models.Four, models.Five,
		models.Six, models.Seven, models.Eight, models.Nine,
		models.Skip, models.Reverse, models.PlusTwo,
	} {
		faces = append(faces, f, f)
	}

	cards := make([]models.Card, 0, CardsPerDeck)
	for _, color := range models.Colors {
		for _, face := range faces {
			cards = append(cards, models.NewCard(color, face))
		}
	}
	for i := 0; i < 4; i++ {
		cards = append(cards, models.NewCard(models.Wild, models.WildFace))
		cards = append(cards, models.NewCard(models.Wild, models.PlusFour))
	}
	return cards
}

// DrawCard removes a random card from the draw pile. If the draw pile is empty
// the discard pile is shuffled back in first.
func (d *Deck) DrawCard() (models.Card, error) {
	if len(d.DrawPile) == 0 {
		if len(d.DiscardPile) > 0 {
			d.log.WithField("cards", len(d.DiscardPile)).Info("Draw pile empty, reshuffling discard pile")
		}
		d.DrawPile = append(d.DrawPile, d.DiscardPile...)
		d.DiscardPile = []models.Card{}
	}
	if len(d.DrawPile) == 0 {
		return models.Card{}, fmt.Errorf("%w: no cards left to draw", ErrOutOfCards)
	}

	idx := d.rng.Intn(len(d.DrawPile))
	card := d.DrawPile[idx]
	last := len(d.DrawPile) - 1
	d.DrawPile[idx] = d.DrawPile[last]
	d.DrawPile = d.DrawPile[:last]
	return card, nil
}

// PlayCard puts card face up. The previous top card is archived to the
// discard pile unless it is a ghost, in which case it simply disappears.
// No legality checks are made here.
func (d *Deck) PlayCard(card models.Card) {
	if d.TopCard.ReturnsToDiscard() {
		d.DiscardPile = append(d.DiscardPile, d.TopCard)
	}
	d.TopCard = card
}

// Discard archives cards straight to the discard pile without touching the top card.
func (d *Deck) Discard(cards ...models.Card) {
	for _, c := range cards {
		if c.ReturnsToDiscard() {
			d.DiscardPile = append(d.DiscardPile, c)
		}
	}
}

// DrawStartingCard draws until a non-wild card turns up. Wild cards drawn on
// the way go back into the draw pile rather than the discard pile. If only
// wilds are left to draw, the discard pile is folded back in first.
func (d *Deck) DrawStartingCard() (models.Card, error) {
	card, err := d.DrawCard()
	if err != nil {
		return models.Card{}, err
	}
	for card.IsWild() {
		d.DrawPile = append(d.DrawPile, card)
		if !hasNonWild(d.DrawPile) {
			if !hasNonWild(d.DiscardPile) {
				return models.Card{}, fmt.Errorf("%w: no non-wild starting card available", ErrOutOfCards)
			}
			d.DrawPile = append(d.DrawPile, d.DiscardPile...)
			d.DiscardPile = []models.Card{}
		}
		if card, err = d.DrawCard(); err != nil {
			return models.Card{}, err
		}
	}
	return card, nil
}

func hasNonWild(cards []models.Card) bool {
	for _, c := range cards {
		if !c.IsWild() {
			return true
		}
	}
	return false
}

// Remaining is the number of cards that can still be drawn, counting the
// discard pile that would be reshuffled in.
func (d *Deck) Remaining() int {
	return len(d.DrawPile) + len(d.DiscardPile)
}

// Empty reports whether no card can be drawn.
func (d *Deck) Empty() bool {
	return d.Remaining() == 0
}

// Size is the number of physical cards the deck was built with.
func (d *Deck) Size() int {
	return d.size
}

// CardCount counts the physical cards held by the deck: both piles plus the
// top card unless it is a ghost standing in for an archived wild.
func (d *Deck) CardCount() int {
	n := d.Remaining()
	if d.TopCard.ReturnsToDiscard() {
		n++
	}
	return n
}
