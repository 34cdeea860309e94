package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlayerPlayCard(t *testing.T) {
	p := NewPlayer(1)
	p.AddCardToHand(NewCard(Red, Five))
	p.AddCardToHand(NewCard(Blue, Five))
	p.AddCardToHand(NewCard(Red, Five))

	assert.True(t, p.PlayCard(NewCard(Red, Five)))
	assert.Equal(t, []Card{NewCard(Blue, Five), NewCard(Red, Five)}, p.Hand, "only the first copy is removed")

	assert.False(t, p.PlayCard(NewCard(Green, Five)))
	assert.Len(t, p.Hand, 2)

	t.Run("ghost plays bypass the hand", func(t *testing.T) {
		assert.True(t, p.PlayCard(NewGhostCard(Green, WildFace)))
		assert.Len(t, p.Hand, 2)
	})
}

func TestPlayerHasCardToPlay(t *testing.T) {
	p := NewPlayer(1)
	top := NewCard(Yellow, Eight)
	assert.False(t, p.HasCardToPlay(top), "empty hand")

	p.AddCardToHand(NewCard(Red, One))
	assert.False(t, p.HasCardToPlay(top))

	p.AddCardToHand(NewCard(Blue, Eight))
	assert.True(t, p.HasCardToPlay(top))
	assert.True(t, p.HasCard(NewCard(Blue, Eight)))
	assert.False(t, p.HasCard(NewCard(Blue, Nine)))
}

func TestPlayerPlayableCards(t *testing.T) {
	p := NewPlayer(1)
	p.Hand = []Card{
		NewCard(Red, One),
		NewCard(Wild, WildFace),
		NewCard(Yellow, Two),
		NewCard(Wild, WildFace),
		NewCard(Green, Eight),
	}
	got := p.PlayableCards(NewCard(Yellow, Eight))
	assert.Equal(t, []Card{NewCard(Wild, WildFace), NewCard(Yellow, Two), NewCard(Green, Eight)}, got)
}

func TestPlayerEqual(t *testing.T) {
	a := &Player{ID: 3, Hand: []Card{NewCard(Red, One)}}
	b := NewPlayer(3)
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(NewPlayer(4)))
	assert.False(t, a.Equal(nil))
}
