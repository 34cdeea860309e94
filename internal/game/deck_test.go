package game

import (
	"math/rand"
	"testing"

	"github.com/jason-s-yu/uno/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeck(t *testing.T) {
	for _, count := range []int{1, 2, 3} {
		d, err := NewDeck(count, rand.New(rand.NewSource(int64(count))))
		require.NoError(t, err)
		assert.Equal(t, count*CardsPerDeck, d.Size())
		assert.Equal(t, count*CardsPerDeck-1, len(d.DrawPile))
		assert.Empty(t, d.DiscardPile)
		assert.False(t, d.TopCard.IsWild(), "starting card is never wild")
		assert.Equal(t, d.Size(), d.CardCount())
	}

	_, err := NewDeck(0, nil)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestStandardDeckComposition(t *testing.T) {
	counts := map[models.Card]int{}
	for _, c := range standardDeck() {
		counts[c]++
	}

	assert.Equal(t, 4, counts[card(models.Wild, models.WildFace)])
	assert.Equal(t, 4, counts[card(models.Wild, models.PlusFour)])
	for _, color := range models.Colors {
		assert.Equal(t, 1, counts[card(color, models.Zero)], color.String())
		assert.Equal(t, 2, counts[card(color, models.Nine)], color.String())
		assert.Equal(t, 2, counts[card(color, models.Skip)], color.String())
		assert.Equal(t, 2, counts[card(color, models.Reverse)], color.String())
		assert.Equal(t, 2, counts[card(color, models.PlusTwo)], color.String())
	}
	assert.Len(t, standardDeck(), CardsPerDeck)
}

func TestDrawCardReshufflesDiscard(t *testing.T) {
	d, err := NewDeck(1, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	logger, hook := test.NewNullLogger()
	d.log = logrus.NewEntry(logger)

	var drawn []models.Card
	for len(d.DrawPile) > 0 {
		c, err := d.DrawCard()
		require.NoError(t, err)
		drawn = append(drawn, c)
	}
	require.Len(t, drawn, CardsPerDeck-1)
	assert.Equal(t, 1, d.CardCount())

	d.Discard(drawn[:10]...)
	c, err := d.DrawCard()
	require.NoError(t, err)
	assert.Contains(t, drawn[:10], c)
	assert.Len(t, d.DrawPile, 9)
	assert.Empty(t, d.DiscardPile)

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.InfoLevel, hook.LastEntry().Level)
	assert.Equal(t, "Draw pile empty, reshuffling discard pile", hook.LastEntry().Message)

	for len(d.DrawPile) > 0 {
		_, err := d.DrawCard()
		require.NoError(t, err)
	}
	_, err = d.DrawCard()
	require.ErrorIs(t, err, ErrOutOfCards)
	assert.True(t, d.Empty())
}

func TestDeckPlayCardArchivesOnlyPhysicalCards(t *testing.T) {
	d, err := NewDeck(1, rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	first := d.TopCard

	wild := card(models.Wild, models.WildFace)
	d.PlayCard(wild)
	assert.Equal(t, []models.Card{first}, d.DiscardPile)

	ghost := models.NewGhostCard(models.Green, models.WildFace)
	d.PlayCard(ghost)
	assert.Equal(t, []models.Card{first, wild}, d.DiscardPile)
	assert.Equal(t, d.Remaining(), d.CardCount(), "a ghost on top is not counted")

	d.PlayCard(card(models.Green, models.One))
	assert.Len(t, d.DiscardPile, 2, "ghosts are never archived")

	d.Discard(models.NewGhostCard(models.Red, models.PlusFour), card(models.Red, models.One))
	assert.Len(t, d.DiscardPile, 3)
}

func TestDrawStartingCardSkipsWilds(t *testing.T) {
	d, err := NewDeck(1, rand.New(rand.NewSource(11)))
	require.NoError(t, err)

	d.DrawPile = []models.Card{
		card(models.Wild, models.WildFace),
		card(models.Wild, models.PlusFour),
		card(models.Blue, models.Six),
	}
	d.DiscardPile = nil

	c, err := d.DrawStartingCard()
	require.NoError(t, err)
	assert.Equal(t, card(models.Blue, models.Six), c)
	assert.Len(t, d.DrawPile, 2, "wilds go back to the draw pile")
	assert.Empty(t, d.DiscardPile)

	_, err = d.DrawStartingCard()
	require.ErrorIs(t, err, ErrOutOfCards)
}

func TestDrawStartingCardFoldsDiscardIntoWildOnlyPile(t *testing.T) {
	d, err := NewDeck(1, rand.New(rand.NewSource(5)))
	require.NoError(t, err)

	d.DrawPile = []models.Card{card(models.Wild, models.WildFace)}
	d.DiscardPile = []models.Card{card(models.Red, models.Five)}

	c, err := d.DrawStartingCard()
	require.NoError(t, err)
	assert.Equal(t, card(models.Red, models.Five), c)
	assert.Equal(t, []models.Card{card(models.Wild, models.WildFace)}, d.DrawPile)
	assert.Empty(t, d.DiscardPile)

	d.DrawPile = []models.Card{card(models.Wild, models.PlusFour)}
	d.DiscardPile = []models.Card{card(models.Wild, models.WildFace)}
	_, err = d.DrawStartingCard()
	require.ErrorIs(t, err, ErrOutOfCards)
	assert.Equal(t, 2, d.Remaining(), "wilds stay drawable")
}
