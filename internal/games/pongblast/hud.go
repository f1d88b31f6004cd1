package pongblast

import (
	"fmt"

	"github.com/vovakirdan/pongblast/internal/event"
)

// HUD keeps the presentation copy of the score line. It only learns about
// scores through the bus.
type HUD struct {
	player int
	enemy  int
	rally  int
}

// NewHUD subscribes a HUD to bus.
func NewHUD(bus *event.Bus) *HUD {
	h := &HUD{}
	event.SubscribeTo(bus, func(e event.ScoreChanged) {
		h.player, h.enemy = e.Player, e.Enemy
	})
	event.SubscribeTo(bus, func(e event.RallyChanged) {
		h.rally = e.Rally
	})
	return h
}

// Line returns the score line shown above the arena.
func (h *HUD) Line() string {
	return fmt.Sprintf("You: %d    Enemy: %d    Rally: %d", h.player, h.enemy, h.rally)
}
