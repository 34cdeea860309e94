// internal/models/card.go
package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCard is returned when card text cannot be decoded.
var ErrInvalidCard = errors.New("invalid card")

// Color is the color of a card. Wild cards are black until a player names a color.
type Color int

const (
	Red Color = iota
	Yellow
	Green
	Blue
	Wild
)

var colorTokens = []string{"red", "yellow", "green", "blue", "black"}

// Colors lists the colors a player may name for a wild card.
var Colors = []Color{Red, Yellow, Green, Blue}

func (c Color) String() string {
	if c < Red || c > Wild {
		return fmt.Sprintf("color(%d)", int(c))
	}
	return colorTokens[c]
}

// ParseColor decodes a lower-case color token ("red", ..., "black").
func ParseColor(s string) (Color, error) {
	for i, tok := range colorTokens {
		if tok == s {
			return Color(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown color %q", ErrInvalidCard, s)
}

// Face is the printed value of a card.
type Face int

const (
	Zero Face = iota
	One
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Skip
	Reverse
	PlusTwo
	PlusFour
	WildFace
)

var faceTokens = []string{
	"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
	"skip", "reverse", "plus_two", "plus_four", "wild",
}

func (f Face) String() string {
	if f < Zero || f > WildFace {
		return fmt.Sprintf("face(%d)", int(f))
	}
	return faceTokens[f]
}

// ParseFace decodes a lower-case face token ("zero", ..., "plus_four", "wild").
func ParseFace(s string) (Face, error) {
	for i, tok := range faceTokens {
		if tok == s {
			return Face(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown face %q", ErrInvalidCard, s)
}

// Card is a single card value.
//
// A card built with NewGhostCard represents a wild whose color has been chosen.
// It sits on top of the pile in place of the wild but is never archived to the
// discard pile and never lives in a hand. Ghost-ness does not take part in Equal.
type Card struct {
	Color Color
	Face  Face

	ghost bool
}

// NewCard builds a physical card.
func NewCard(color Color, face Face) Card {
	return Card{Color: color, Face: face}
}

// NewGhostCard builds a color-chosen stand-in for a wild or plus four.
func NewGhostCard(color Color, face Face) Card {
	return Card{Color: color, Face: face, ghost: true}
}

// ReturnsToDiscard reports whether the card is archived when covered.
func (c Card) ReturnsToDiscard() bool {
	return !c.ghost
}

// Equal compares color and face.
func (c Card) Equal(other Card) bool {
	return c.Color == other.Color && c.Face == other.Face
}

// IsWild reports whether the card is an uncolored wild or plus four.
func (c Card) IsWild() bool {
	return c.Color == Wild
}

// IsPlus reports whether the card forces the next player to draw.
func (c Card) IsPlus() bool {
	return c.Face == PlusTwo || c.Face == PlusFour
}

// CanBePlayed determines if this card can be played on top of top.
func (c Card) CanBePlayed(top Card) bool {
	if c.Color == Wild {
		return true
	}
	return c.Color == top.Color || c.Face == top.Face
}

// CanBeJumpedIn determines if this card can be played out of turn on top of top.
// Nothing can be jumped in on an uncolored wild.
func (c Card) CanBeJumpedIn(top Card) bool {
	if top.Color == Wild {
		return false
	}
	if c.Color == top.Color && c.Face == top.Face {
		return true
	}
	return c.Color == Wild && c.Face == top.Face
}

// String encodes the card as "<color> <face>", e.g. "blue eight" or "black plus_four".
func (c Card) String() string {
	return c.Color.String() + " " + c.Face.String()
}

// ParseCard decodes the text produced by String. A concrete color paired with a
// wild or plus four face comes back as a ghost card.
func ParseCard(s string) (Card, error) {
	parts := strings.Fields(s)
	if len(parts) != 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}
	color, err := ParseColor(parts[0])
	if err != nil {
		return Card{}, err
	}
	face, err := ParseFace(parts[1])
	if err != nil {
		return Card{}, err
	}
	if (face == WildFace || face == PlusFour) && color != Wild {
		return NewGhostCard(color, face), nil
	}
	return NewCard(color, face), nil
}

// MarshalText implements encoding.TextMarshaler.
func (c Card) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Card) UnmarshalText(text []byte) error {
	parsed, err := ParseCard(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
