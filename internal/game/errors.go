// internal/game/errors.go
package game

import "errors"

// Move and player-management failures. Every operation that returns one of
// these leaves the game exactly as it was.
var (
	ErrOutOfTurn             = errors.New("out of turn")
	ErrInvalidCardPlayed     = errors.New("invalid card played")
	ErrPlayerDoesNotHaveCard = errors.New("player does not have card")
	ErrMustPlayCard          = errors.New("must play a card")
	ErrOutOfCards            = errors.New("out of cards")
	ErrDuplicateID           = errors.New("duplicate player id")
	ErrNotFound              = errors.New("player not found")
	ErrIndex                 = errors.New("index out of range")
	ErrInvalidArgument       = errors.New("invalid argument")
	ErrNotEnoughPlayers      = errors.New("not enough players")
)

// ErrorKind classifies an error returned by the engine.
type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindOutOfTurn
	KindInvalidCardPlayed
	KindPlayerDoesNotHaveCard
	KindMustPlayCard
	KindOutOfCards
	KindDuplicateID
	KindNotFound
	KindIndex
	KindInvalidArgument
	KindNotEnoughPlayers
	KindUnknown
)

var kinds = []struct {
	err  error
	kind ErrorKind
}{
	{ErrOutOfTurn, KindOutOfTurn},
	{ErrInvalidCardPlayed, KindInvalidCardPlayed},
	{ErrPlayerDoesNotHaveCard, KindPlayerDoesNotHaveCard},
	{ErrMustPlayCard, KindMustPlayCard},
	{ErrOutOfCards, KindOutOfCards},
	{ErrDuplicateID, KindDuplicateID},
	{ErrNotFound, KindNotFound},
	{ErrIndex, KindIndex},
	{ErrInvalidArgument, KindInvalidArgument},
	{ErrNotEnoughPlayers, KindNotEnoughPlayers},
}

// KindOf maps err onto the closed set of engine error kinds so callers can
// switch over every case. A nil error is KindNone.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindNone
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return KindUnknown
}

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindOutOfTurn:
		return "out_of_turn"
	case KindInvalidCardPlayed:
		return "invalid_card_played"
	case KindPlayerDoesNotHaveCard:
		return "player_does_not_have_card"
	case KindMustPlayCard:
		return "must_play_card"
	case KindOutOfCards:
		return "out_of_cards"
	case KindDuplicateID:
		return "duplicate_id"
	case KindNotFound:
		return "not_found"
	case KindIndex:
		return "index"
	case KindInvalidArgument:
		return "invalid_argument"
	case KindNotEnoughPlayers:
		return "not_enough_players"
	default:
		return "unknown"
	}
}
