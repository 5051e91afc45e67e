package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// AttackCooldownData gates attacks. Elapsed never leaves [0, Duration].
type AttackCooldownData struct {
	Elapsed  time.Duration
	Duration time.Duration
}

// Advance moves the timer forward by dt, clamped at Duration.
func (c *AttackCooldownData) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	c.Elapsed += dt
	if c.Elapsed > c.Duration {
		c.Elapsed = c.Duration
	}
}

func (c *AttackCooldownData) Ready() bool {
	return c.Elapsed >= c.Duration
}

// Reset starts a new cooldown cycle.
func (c *AttackCooldownData) Reset() {
	c.Elapsed = 0
}

// Finish makes the timer ready immediately.
func (c *AttackCooldownData) Finish() {
	c.Elapsed = c.Duration
}

var AttackCooldown = donburi.NewComponentType[AttackCooldownData]()
