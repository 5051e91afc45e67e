// Package input turns keyboard and gamepad state into intent sets.
package input

import (
	"github.com/automoto/tilebrawl/shared/intent"
	"github.com/hajimehoshi/ebiten/v2"
)

// Mapper polls ebiten's input state once per tick.
type Mapper struct {
	cfg Config

	// Reused between polls to avoid allocating every frame.
	gamepadIDs []ebiten.GamepadID
}

func NewMapper(cfg Config) *Mapper {
	return &Mapper{cfg: cfg}
}

// Poll returns the intents held down right now.
func (m *Mapper) Poll() intent.Set {
	var set intent.Set
	m.gamepadIDs = ebiten.AppendGamepadIDs(m.gamepadIDs[:0])

	for action, binding := range m.cfg.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				set = set.With(action)
			}
		}
		for _, id := range m.gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(id) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(id, btn) {
					set = set.With(action)
				}
			}
		}
	}

	return set | m.pollSticks()
}

// pollSticks merges the left analog stick into the directional intents.
func (m *Mapper) pollSticks() intent.Set {
	var set intent.Set
	dz := m.cfg.AnalogDeadzone
	for _, id := range m.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		switch {
		case h < -dz:
			set = set.With(intent.MoveLeft)
		case h > dz:
			set = set.With(intent.MoveRight)
		}
		switch {
		case v < -dz:
			set = set.With(intent.MoveUp)
		case v > dz:
			set = set.With(intent.MoveDown)
		}
	}
	return set
}
