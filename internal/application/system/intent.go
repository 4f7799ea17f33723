package system

// Intent represents a control action for the cannon
type Intent interface {
	isIntent()
}

// AimIntent rotates the barrel by axis values scaled by the aim speeds
type AimIntent struct {
	Yaw, Elevation float64
}

func (AimIntent) isIntent() {}

// PowerIntent adjusts shot power by a scroll delta
type PowerIntent struct {
	Scroll float64
}

func (PowerIntent) isIntent() {}

// PreviewModeIntent toggles the preview model
type PreviewModeIntent struct{}

func (PreviewModeIntent) isIntent() {}

// FireIntent fires the cannon
type FireIntent struct{}

func (FireIntent) isIntent() {}

// Apply executes intents against the cannon in order. The first launch
// error stops processing.
func (c *CannonController) Apply(intents []Intent, dt float64) error {
	for _, in := range intents {
		switch v := in.(type) {
		case AimIntent:
			c.UpdateAim(v.Yaw, v.Elevation, dt)
		case PowerIntent:
			c.AdjustPower(v.Scroll)
		case PreviewModeIntent:
			c.TogglePreviewMode()
		case FireIntent:
			if _, err := c.Fire(); err != nil {
				return err
			}
		}
	}
	return nil
}
