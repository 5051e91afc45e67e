package input

import (
	"github.com/automoto/tilebrawl/shared/intent"
	"github.com/hajimehoshi/ebiten/v2"
)

// Binding is the set of keys and buttons that raise one intent.
type Binding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Config holds all input mappings.
type Config struct {
	Bindings map[intent.Action]Binding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// DefaultConfig returns the stock keyboard and gamepad layout.
func DefaultConfig() Config {
	return Config{
		AnalogDeadzone: 0.25,
		Bindings: map[intent.Action]Binding{
			intent.MoveLeft: {
				Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftLeft,
				},
			},
			intent.MoveRight: {
				Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftRight,
				},
			},
			// Up doubles as jump.
			intent.MoveUp: {
				Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW, ebiten.KeySpace},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftTop,
					ebiten.StandardGamepadButtonRightBottom, // A / Cross
				},
			},
			intent.MoveDown: {
				Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftBottom,
				},
			},
			intent.Attack: {
				Keys: []ebiten.Key{ebiten.KeyJ, ebiten.KeyZ},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightLeft, // X / Square
				},
			},
			intent.ResetLevel: {
				Keys: []ebiten.Key{ebiten.KeyR},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterLeft, // Select / Share
				},
			},
		},
	}
}
