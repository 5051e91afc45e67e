// Package render draws the simulation. Nothing here feeds back into it.
package render

import (
	"time"

	"github.com/automoto/tilebrawl/components"
	cfg "github.com/automoto/tilebrawl/config"
	"github.com/automoto/tilebrawl/systems"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// Camera follows the player horizontally and centers vertically on the
// active level, easing between levels when the player crosses into another.
type Camera struct {
	X, Y float64

	level string
	pan   *gween.Tween
}

func (c *Camera) Update(e *ecs.ECS, level string, dt time.Duration) {
	px, ok := playerCenterX(e)
	if ok {
		c.X = px + cfg.Camera.FollowOffsetX
	}
	if level == "" {
		return
	}

	l := components.Level.Get(systems.MustLevel(e, level))
	targetY := (l.MinY + l.MaxY) / 2

	if level != c.level {
		if c.level == "" {
			c.Y = targetY
		} else {
			c.pan = gween.New(float32(c.Y), float32(targetY), float32(cfg.Camera.PanDuration.Seconds()), ease.OutQuad)
		}
		c.level = level
	}

	if c.pan != nil {
		y, done := c.pan.Update(float32(dt.Seconds()))
		c.Y = float64(y)
		if done {
			c.pan = nil
		}
	}
}

// Offset returns the translation from world to screen for a w x h screen.
func (c *Camera) Offset(w, h int) (float64, float64) {
	return float64(w)/2 - c.X, float64(h)/2 - c.Y
}

func playerCenterX(e *ecs.ECS) (float64, bool) {
	entry, ok := components.Player.First(e.World)
	if !ok {
		return 0, false
	}
	obj := components.Object.Get(entry).Object
	return obj.X + obj.W/2, true
}
