package headless

import (
	"log"
	"sync"
	"time"

	"github.com/automoto/tilebrawl/shared/intent"
	"github.com/automoto/tilebrawl/systems"
)

// Loop feeds scripted frames to a simulation, paced by a ticker or as fast
// as possible.
type Loop struct {
	sim      *systems.Simulation
	frames   []intent.Set
	tickRate int

	stopChan chan struct{}
	stopOnce sync.Once
}

func NewLoop(sim *systems.Simulation, frames []intent.Set, tickRate int) *Loop {
	return &Loop{
		sim:      sim,
		frames:   frames,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

func (l *Loop) delta() time.Duration {
	return time.Second / time.Duration(l.tickRate)
}

// Run steps once per tick until the script ends or Stop is called. It
// returns the number of ticks run.
func (l *Loop) Run() int {
	ticker := time.NewTicker(l.delta())
	defer ticker.Stop()

	log.Printf("Headless loop started at %d ticks/second, %d frames", l.tickRate, len(l.frames))

	n := 0
	for n < len(l.frames) {
		// A pending stop wins over a pending tick.
		select {
		case <-l.stopChan:
			log.Printf("Headless loop stopped after %d ticks", n)
			return n
		default:
		}

		select {
		case <-l.stopChan:
			log.Printf("Headless loop stopped after %d ticks", n)
			return n
		case <-ticker.C:
			l.step(n)
			n++
		}
	}
	log.Printf("Headless loop finished %d ticks", n)
	return n
}

// RunFast steps through every frame without waiting between ticks.
func (l *Loop) RunFast() int {
	for n := range l.frames {
		select {
		case <-l.stopChan:
			return n
		default:
		}
		l.step(n)
	}
	return len(l.frames)
}

func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.stopChan) })
}

func (l *Loop) step(n int) {
	l.sim.Step(systems.Frame{Intents: l.frames[n], Delta: l.delta()})
}
