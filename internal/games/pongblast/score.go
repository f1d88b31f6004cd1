package pongblast

import (
	"github.com/vovakirdan/pongblast/internal/core"
	"github.com/vovakirdan/pongblast/internal/event"
)

// Points awarded per attributed event.
const (
	RallyPoints     = 1
	BlockHitPoints  = 1
	BlockKillPoints = 3
)

// Totals is a read-only copy of the score state.
type Totals struct {
	Player int
	Enemy  int
	Rally  int
}

// ScoreAggregator owns the running totals. It listens for attributed
// gameplay events on the bus and republishes the consolidated state.
type ScoreAggregator struct {
	bus    *event.Bus
	player int
	enemy  int
	rally  int
}

// NewScoreAggregator subscribes to bus and publishes the initial state.
// A nil bus yields an aggregator that only changes through Award.
func NewScoreAggregator(bus *event.Bus) *ScoreAggregator {
	s := &ScoreAggregator{bus: bus}

	event.SubscribeTo(bus, func(e event.RallyCrossing) {
		if !e.By.Valid() {
			return
		}
		s.rally++
		s.Award(e.By, RallyPoints)
		s.publishRally()
	})
	event.SubscribeTo(bus, func(e event.BlockHit) {
		s.Award(e.By, BlockHitPoints)
	})
	event.SubscribeTo(bus, func(e event.BlockDestroyed) {
		s.Award(e.By, BlockKillPoints)
	})

	s.publishScore()
	s.publishRally()
	return s
}

// Award adds amount to side's total and republishes the score. Any side
// other than player or enemy is ignored.
func (s *ScoreAggregator) Award(side core.Side, amount int) {
	switch side {
	case core.SidePlayer:
		s.player += amount
	case core.SideEnemy:
		s.enemy += amount
	default:
		return
	}
	s.publishScore()
}

// ResetRally zeroes the rally count. Point totals are untouched.
func (s *ScoreAggregator) ResetRally() {
	s.rally = 0
	s.publishRally()
}

// ResetAll zeroes both totals and the rally count.
func (s *ScoreAggregator) ResetAll() {
	s.player = 0
	s.enemy = 0
	s.rally = 0
	s.publishScore()
	s.publishRally()
}

// Totals returns the current score state.
func (s *ScoreAggregator) Totals() Totals {
	if s == nil {
		return Totals{}
	}
	return Totals{Player: s.player, Enemy: s.enemy, Rally: s.rally}
}

func (s *ScoreAggregator) publishScore() {
	s.bus.Publish(event.ScoreChanged{Player: s.player, Enemy: s.enemy})
}

func (s *ScoreAggregator) publishRally() {
	s.bus.Publish(event.RallyChanged{Rally: s.rally})
}
