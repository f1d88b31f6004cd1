package pongblast

import (
	"math/rand"

	"github.com/vovakirdan/pongblast/internal/config"
	"github.com/vovakirdan/pongblast/internal/core"
	"github.com/vovakirdan/pongblast/internal/event"
)

var arenaCenter = core.V(400, 300)

func newTestBall(bus *event.Bus, seed int64) *Ball {
	return NewBall(config.DefaultPongBlastConfig().Ball, arenaCenter, bus, rand.New(rand.NewSource(seed)))
}

// eventLog records every event published on a bus.
type eventLog struct {
	events []event.Event
}

func newEventLog(bus *event.Bus) *eventLog {
	l := &eventLog{}
	bus.SubscribeAll(func(e event.Event) { l.events = append(l.events, e) })
	return l
}

func (l *eventLog) count(k event.Kind) int {
	n := 0
	for _, e := range l.events {
		if e.Kind() == k {
			n++
		}
	}
	return n
}

func (l *eventLog) reset() {
	l.events = nil
}

// moveTo places the ball at x and runs one Update, as the frame loop would.
func moveTo(b *Ball, x float64) {
	b.SetPosition(core.V(x, b.Position().Y))
	b.Update(1.0 / 60.0)
}

// collisionRecorder stands in for the attributor in solver tests.
type collisionRecorder struct {
	paddles []Contact
	blocks  []*Block
}

func (r *collisionRecorder) OnPaddle(p Contact) { r.paddles = append(r.paddles, p) }
func (r *collisionRecorder) OnBlock(b *Block) { r.blocks = append(r.blocks, b) }
