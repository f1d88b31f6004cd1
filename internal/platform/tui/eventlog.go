package tui

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/pongblast/internal/event"
	"github.com/vovakirdan/pongblast/internal/registry"
)

// EventLogger writes every gameplay event of one match to a structured log.
type EventLogger struct {
	logger  *log.Logger
	matchID string
}

// NewEventLogger creates a logger tagged with a fresh match ID.
// A nil logger discards everything.
func NewEventLogger(logger *log.Logger) *EventLogger {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	id := uuid.NewString()
	return &EventLogger{
		logger:  logger.With("match", id),
		matchID: id,
	}
}

// MatchID returns the ID attached to every log line.
func (l *EventLogger) MatchID() string {
	return l.matchID
}

// Attach subscribes the logger to the game's bus if the game publishes events.
// Returns false for games without an event bus.
func (l *EventLogger) Attach(game registry.Game) bool {
	src, ok := game.(registry.EventSource)
	if !ok {
		return false
	}
	src.Events().SubscribeAll(l.handle)
	l.logger.Info("match started", "game", game.ID())
	return true
}

func (l *EventLogger) handle(e event.Event) {
	kind := e.Kind().String()
	switch ev := e.(type) {
	case event.RallyCrossing:
		l.logger.Debug(kind, "by", ev.By)
	case event.BlockHit:
		l.logger.Debug(kind, "owner", ev.Owner, "by", ev.By)
	case event.BlockDestroyed:
		l.logger.Debug(kind, "owner", ev.Owner, "by", ev.By)
	case event.ScoreChanged:
		l.logger.Debug(kind, "player", ev.Player, "enemy", ev.Enemy)
	case event.RallyChanged:
		l.logger.Debug(kind, "rally", ev.Rally)
	case event.BallOut:
		l.logger.Debug(kind, "conceded", ev.Conceded)
	default:
		l.logger.Warn("unhandled event", "kind", kind)
	}
}
