package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputSystem maps keyboard and wheel input to cannon controls
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// InputState holds one tick of control input
type InputState struct {
	Yaw           float64 // -1..1, positive turns right
	Elevation     float64 // -1..1, positive raises the barrel
	Scroll        float64 // wheel delta, positive adds power
	Fire          bool
	TogglePreview bool
	Pause         bool
	Restart       bool
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	_, wheelY := ebiten.Wheel()

	scroll := wheelY
	if ebiten.IsKeyPressed(ebiten.KeyE) {
		scroll += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyQ) {
		scroll -= 1
	}

	return InputState{
		Yaw: Axis(
			ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft),
			ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight),
		),
		Elevation: Axis(
			ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown),
			ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp),
		),
		Scroll:        scroll,
		Fire:          inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		TogglePreview: inpututil.IsKeyJustPressed(ebiten.KeyTab),
		Pause:         inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Restart:       inpututil.IsKeyJustPressed(ebiten.KeyR),
	}
}

// Axis converts a pair of opposing keys to -1, 0 or 1
func Axis(negative, positive bool) float64 {
	v := 0.0
	if negative {
		v -= 1
	}
	if positive {
		v += 1
	}
	return v
}

// Intents converts the cannon-related parts of the input into intents,
// in the order they are applied: aim, power, preview mode, fire.
func (in InputState) Intents() []Intent {
	intents := make([]Intent, 0, 4)
	if in.Yaw != 0 || in.Elevation != 0 {
		intents = append(intents, AimIntent{Yaw: in.Yaw, Elevation: in.Elevation})
	}
	if in.Scroll != 0 {
		intents = append(intents, PowerIntent{Scroll: in.Scroll})
	}
	if in.TogglePreview {
		intents = append(intents, PreviewModeIntent{})
	}
	if in.Fire {
		intents = append(intents, FireIntent{})
	}
	return intents
}
