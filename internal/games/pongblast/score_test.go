package pongblast

import (
	"testing"

	"github.com/vovakirdan/pongblast/internal/core"
	"github.com/vovakirdan/pongblast/internal/event"
)

func TestScoreAggregatorPublishesInitialState(t *testing.T) {
	bus := event.NewBus()
	log := newEventLog(bus)
	NewScoreAggregator(bus)

	if len(log.events) != 2 {
		t.Fatalf("initial events = %d, expected 2", len(log.events))
	}
	if e, ok := log.events[0].(event.ScoreChanged); !ok || e.Player != 0 || e.Enemy != 0 {
		t.Errorf("events[0] = %#v, expected zero ScoreChanged", log.events[0])
	}
	if e, ok := log.events[1].(event.RallyChanged); !ok || e.Rally != 0 {
		t.Errorf("events[1] = %#v, expected zero RallyChanged", log.events[1])
	}
}

func TestScoreAggregatorEvents(t *testing.T) {
	tests := []struct {
		name     string
		events   []event.Event
		expected Totals
	}{
		{
			name:     "rally crossing",
			events:   []event.Event{event.RallyCrossing{By: core.SidePlayer}},
			expected: Totals{Player: 1, Rally: 1},
		},
		{
			name: "block hit credits attacker",
			events: []event.Event{
				event.BlockHit{Owner: core.SidePlayer, By: core.SideEnemy},
			},
			expected: Totals{Enemy: 1},
		},
		{
			name: "block destroyed",
			events: []event.Event{
				event.BlockDestroyed{Owner: core.SideEnemy, By: core.SidePlayer},
			},
			expected: Totals{Player: 3},
		},
		{
			name: "rally with no side",
			events: []event.Event{
				event.RallyCrossing{By: core.SideNone},
			},
			expected: Totals{},
		},
		{
			name: "mixed",
			events: []event.Event{
				event.RallyCrossing{By: core.SidePlayer},
				event.RallyCrossing{By: core.SideEnemy},
				event.BlockHit{Owner: core.SideEnemy, By: core.SidePlayer},
				event.BlockHit{Owner: core.SideEnemy, By: core.SideEnemy},
				event.BallOut{Conceded: core.SidePlayer},
			},
			expected: Totals{Player: 2, Enemy: 2, Rally: 2},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			bus := event.NewBus()
			s := NewScoreAggregator(bus)
			for _, e := range tc.events {
				bus.Publish(e)
			}
			if got := s.Totals(); got != tc.expected {
				t.Errorf("Totals() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestScoreAggregatorRallyRepublishes(t *testing.T) {
	bus := event.NewBus()
	NewScoreAggregator(bus)
	log := newEventLog(bus)

	bus.Publish(event.RallyCrossing{By: core.SideEnemy})

	var score *event.ScoreChanged
	var rally *event.RallyChanged
	for _, e := range log.events {
		switch v := e.(type) {
		case event.ScoreChanged:
			score = &v
		case event.RallyChanged:
			rally = &v
		}
	}
	if score == nil || score.Enemy != 1 || score.Player != 0 {
		t.Errorf("ScoreChanged = %+v, expected enemy 1", score)
	}
	if rally == nil || rally.Rally != 1 {
		t.Errorf("RallyChanged = %+v, expected rally 1", rally)
	}
}

func TestAwardIgnoresUnknownSide(t *testing.T) {
	bus := event.NewBus()
	s := NewScoreAggregator(bus)
	log := newEventLog(bus)

	s.Award(core.SideNone, 5)
	s.Award(core.Side(9), 5)

	if got := s.Totals(); got != (Totals{}) {
		t.Errorf("Totals() = %+v, expected zero", got)
	}
	if len(log.events) != 0 {
		t.Errorf("events = %d, expected none for ignored awards", len(log.events))
	}
}

func TestResetRallyKeepsTotals(t *testing.T) {
	bus := event.NewBus()
	s := NewScoreAggregator(bus)
	bus.Publish(event.RallyCrossing{By: core.SidePlayer})
	bus.Publish(event.RallyCrossing{By: core.SideEnemy})
	bus.Publish(event.BlockDestroyed{Owner: core.SideEnemy, By: core.SidePlayer})

	log := newEventLog(bus)
	s.ResetRally()

	if got := s.Totals(); got != (Totals{Player: 4, Enemy: 1, Rally: 0}) {
		t.Errorf("Totals() = %+v, expected player 4, enemy 1, rally 0", got)
	}
	if log.count(event.KindRallyChanged) != 1 || log.count(event.KindScoreChanged) != 0 {
		t.Errorf("ResetRally published %v, expected one RallyChanged", log.events)
	}
}

func TestResetAll(t *testing.T) {
	bus := event.NewBus()
	s := NewScoreAggregator(bus)
	bus.Publish(event.RallyCrossing{By: core.SidePlayer})
	bus.Publish(event.BlockHit{Owner: core.SidePlayer, By: core.SideEnemy})

	s.ResetAll()

	if got := s.Totals(); got != (Totals{}) {
		t.Errorf("Totals() = %+v, expected zero", got)
	}
}

func TestScoreAggregatorWithoutBus(t *testing.T) {
	s := NewScoreAggregator(nil)
	s.Award(core.SidePlayer, 2)
	s.ResetRally()

	if got := s.Totals(); got != (Totals{Player: 2}) {
		t.Errorf("Totals() = %+v, expected player 2", got)
	}
}

func TestHUDFollowsBus(t *testing.T) {
	bus := event.NewBus()
	hud := NewHUD(bus)
	NewScoreAggregator(bus)

	bus.Publish(event.RallyCrossing{By: core.SidePlayer})
	bus.Publish(event.BlockDestroyed{Owner: core.SidePlayer, By: core.SideEnemy})

	expected := "You: 1    Enemy: 3    Rally: 1"
	if got := hud.Line(); got != expected {
		t.Errorf("Line() = %q, expected %q", got, expected)
	}
}
