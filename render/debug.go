package render

import (
	"fmt"
	"image/color"

	"github.com/automoto/tilebrawl/components"
	cfg "github.com/automoto/tilebrawl/config"
	"github.com/automoto/tilebrawl/shared/intent"
	"github.com/automoto/tilebrawl/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	levelColor  = color.RGBA{60, 60, 80, 255}
	solidColor  = color.RGBA{100, 100, 100, 255}
	playerColor = color.RGBA{0, 0, 255, 255}
	hitboxColor = color.RGBA{255, 0, 0, 255}
)

// DrawWorld draws level bounds, colliders, the player and live hitboxes.
// Walls are outlined only when collider debugging is on.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image, cam *Camera) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	camX, camY := cam.Offset(w, h)

	tags.Level.Each(e.World, func(entry *donburi.Entry) {
		l := components.Level.Get(entry)
		outline(screen, l.MinX+camX, l.MinY+camY, l.MaxX-l.MinX, l.MaxY-l.MinY, levelColor)
	})

	viewX, viewY := -camX, -camY
	tags.Wall.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry).Object
		// Cull objects outside viewport
		if obj.X+obj.W < viewX || obj.X > viewX+float64(w) || obj.Y+obj.H < viewY || obj.Y > viewY+float64(h) {
			return
		}
		x, y := obj.X+camX, obj.Y+camY
		if cfg.Debug.DrawColliders {
			outline(screen, x, y, obj.W, obj.H, color.White)
			return
		}
		vector.FillRect(screen, float32(x), float32(y), float32(obj.W), float32(obj.H), solidColor, false)
	})

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry).Object
		vector.FillRect(screen, float32(obj.X+camX), float32(obj.Y+camY), float32(obj.W), float32(obj.H), playerColor, false)
	})

	tags.Hitbox.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry).Object
		outline(screen, obj.X+camX, obj.Y+camY, obj.W, obj.H, hitboxColor)
	})
}

// DrawHUD prints the active level and the player's state.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image, level string, tick uint64, in intent.Set) {
	entry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	physics := components.Physics.Get(entry)
	player := components.Player.Get(entry)

	msg := fmt.Sprintf("level %s  tick %d\nspeed %.1f,%.1f grounded=%v\nfacing %s stance %s\nintents %s",
		level, tick, physics.SpeedX, physics.SpeedY, physics.Grounded, player.Facing, player.Stance, in)
	if cfg.Debug.DrawColliders {
		msg += fmt.Sprintf("\ncontacts %v", physics.Contacts)
	}
	ebitenutil.DebugPrint(screen, msg)
}

func outline(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), 1, c, false)     // Top
	vector.FillRect(screen, float32(x), float32(y+h-1), float32(w), 1, c, false) // Bottom
	vector.FillRect(screen, float32(x), float32(y), 1, float32(h), c, false)     // Left
	vector.FillRect(screen, float32(x+w-1), float32(y), 1, float32(h), c, false) // Right
}
