// internal/middleware/logging.go

package middleware

import (
	"github.com/jason-s-yu/uno/internal/game"
	"github.com/sirupsen/logrus"
)

// LogEvents wraps an event handler so every game event is logged using Logrus
// before being passed on. next may be nil, in which case events are only logged.
// Game lifecycle events log at Info, everything else at Debug.
func LogEvents(logger *logrus.Logger, next func(game.GameEvent)) func(game.GameEvent) {
	return func(ev game.GameEvent) {
		fields := logrus.Fields{
			"game_id": ev.GameID.String(),
			"event":   string(ev.Type),
			"state":   ev.State.String(),
			"turn":    ev.TurnIndex,
		}
		if ev.PlayerID != 0 {
			fields["player"] = ev.PlayerID
		}
		if ev.TargetID != 0 {
			fields["target"] = ev.TargetID
		}
		if ev.Card != nil {
			fields["card"] = ev.Card.String()
		}
		if ev.Count != 0 {
			fields["count"] = ev.Count
		}
		if ev.Stack != 0 {
			fields["stack"] = ev.Stack
		}

		entry := logger.WithFields(fields)
		switch ev.Type {
		case game.EventGameStarted, game.EventPlayerWon, game.EventPlayerLeft:
			entry.Info(ev.Message)
		default:
			entry.Debug(ev.Message)
		}

		if next != nil {
			next(ev)
		}
	}
}
