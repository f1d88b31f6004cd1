package pongblast

import (
	"math"
	"testing"

	"github.com/vovakirdan/pongblast/internal/config"
	"github.com/vovakirdan/pongblast/internal/core"
	"github.com/vovakirdan/pongblast/internal/event"
)

// sideOnly is a paddle that cannot report its velocity.
type sideOnly core.Side

func (s sideOnly) Side() core.Side { return core.Side(s) }

func TestBlockLifetimeScoring(t *testing.T) {
	bus := event.NewBus()
	scores := NewScoreAggregator(bus)
	log := newEventLog(bus)
	ball := newTestBall(bus, 1)
	attr := NewAttributor(ball, bus)

	ball.OnPaddleContact(core.SidePlayer, 0)
	block := NewBlock(core.SideEnemy, core.BoxAt(700, 300, 38, 100), 3)

	for range 3 {
		attr.OnBlock(block)
	}

	if got := log.count(event.KindBlockHit); got != 3 {
		t.Errorf("block-hit events = %d, expected 3", got)
	}
	if got := log.count(event.KindBlockDestroyed); got != 1 {
		t.Errorf("block-destroyed events = %d, expected 1", got)
	}
	for _, e := range log.events {
		switch v := e.(type) {
		case event.BlockHit:
			if v.Owner != core.SideEnemy || v.By != core.SidePlayer {
				t.Errorf("BlockHit = %+v, expected owner enemy, by player", v)
			}
		case event.BlockDestroyed:
			if v.Owner != core.SideEnemy || v.By != core.SidePlayer {
				t.Errorf("BlockDestroyed = %+v, expected owner enemy, by player", v)
			}
		}
	}
	if block.Alive() {
		t.Error("block should be destroyed after 3 hits")
	}
	if got := scores.Totals().Player; got != 6 {
		t.Errorf("player total = %d, expected 6", got)
	}

	// A fourth collision against the destroyed block is a no-op.
	n := len(log.events)
	attr.OnBlock(block)
	if len(log.events) != n {
		t.Errorf("events after 4th hit = %d, expected %d", len(log.events), n)
	}
	if got := scores.Totals().Player; got != 6 {
		t.Errorf("player total = %d after 4th hit, expected 6", got)
	}
}

func TestBlockHitOnOwnGridCreditsAttacker(t *testing.T) {
	bus := event.NewBus()
	scores := NewScoreAggregator(bus)
	ball := newTestBall(bus, 1)
	attr := NewAttributor(ball, bus)

	ball.OnPaddleContact(core.SideEnemy, 0)
	attr.OnBlock(NewBlock(core.SideEnemy, core.BoxAt(700, 300, 38, 100), 3))

	if got := scores.Totals(); got != (Totals{Enemy: 1}) {
		t.Errorf("Totals() = %+v, expected enemy 1", got)
	}
}

func TestBlockHitWithoutAttacker(t *testing.T) {
	bus := event.NewBus()
	log := newEventLog(bus)
	ball := newTestBall(bus, 1)
	attr := NewAttributor(ball, bus)
	block := NewBlock(core.SidePlayer, core.BoxAt(100, 300, 38, 100), 1)

	attr.OnBlock(block)

	if block.Alive() {
		t.Error("block should still take damage without an attacker")
	}
	if len(log.events) != 0 {
		t.Errorf("events = %d, expected 0", len(log.events))
	}
}

func TestPaddleContactRatchetsAndSpins(t *testing.T) {
	ball := newTestBall(nil, 1)
	ball.Serve(DirLeft)
	attr := NewAttributor(ball, nil)

	p := NewPaddle(core.SidePlayer, 134, 300, config.DefaultPongBlastConfig().Paddle, 600)
	p.Move(1, 1.0/60.0)

	attr.OnPaddle(p)

	if ball.LastHitBy() != core.SidePlayer || !ball.RallyEligible() {
		t.Errorf("lastHitBy %v, eligible %v, expected player and armed", ball.LastHitBy(), ball.RallyEligible())
	}
	if math.Abs(ball.Spin()-42) > 1e-6 {
		t.Errorf("Spin() = %v, expected 42", ball.Spin())
	}
	if math.Abs(ball.Speed()-284) > 1e-9 {
		t.Errorf("Speed() = %v, expected 284", ball.Speed())
	}
}

func TestPaddleWithoutVelocity(t *testing.T) {
	ball := newTestBall(nil, 1)
	ball.Serve(DirRight)
	attr := NewAttributor(ball, nil)

	attr.OnPaddle(sideOnly(core.SideEnemy))
	attr.OnPaddle(nil)

	if ball.LastHitBy() != core.SideEnemy {
		t.Errorf("LastHitBy() = %v, expected enemy", ball.LastHitBy())
	}
	if ball.Spin() != 0 {
		t.Errorf("Spin() = %v, expected 0", ball.Spin())
	}
}

func TestBlockDamage(t *testing.T) {
	b := NewBlock(core.SidePlayer, core.BoxAt(0, 0, 10, 10), 2)

	if b.Damage(0) {
		t.Error("Damage(0) should not destroy")
	}
	if b.Damage(1) || b.HP() != 1 {
		t.Errorf("after first hit HP = %d, expected 1", b.HP())
	}
	if !b.Damage(1) || b.Alive() || b.HP() != 0 {
		t.Errorf("second hit: alive %v, HP %d, expected destroyed", b.Alive(), b.HP())
	}
	if b.Damage(1) {
		t.Error("Damage on a destroyed block should report false")
	}
}
