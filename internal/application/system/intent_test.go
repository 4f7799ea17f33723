package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntents(t *testing.T) {
	tests := []struct {
		name   string
		intent Intent
	}{
		{"aim", AimIntent{Yaw: 1, Elevation: -1}},
		{"power", PowerIntent{Scroll: 2}},
		{"preview mode", PreviewModeIntent{}},
		{"fire", FireIntent{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Should not panic
			tt.intent.isIntent()
		})
	}
}

func TestApply_NoIntents(t *testing.T) {
	c, launcher, _ := newTestCannon(createTestPhysicsConfig())
	before := *c.Aim

	assert.NoError(t, c.Apply(nil, 0.1))
	assert.NoError(t, c.Apply([]Intent{}, 0.1))
	assert.Equal(t, before, *c.Aim)
	assert.Empty(t, launcher.shots)
}

func TestApply_Order(t *testing.T) {
	c, launcher, _ := newTestCannon(createTestPhysicsConfig())
	start := c.ShotPower()

	// Power change lands before the shot that follows it
	err := c.Apply([]Intent{PowerIntent{Scroll: 1}, FireIntent{}}, 0.1)
	assert.NoError(t, err)
	if assert.Len(t, launcher.shots, 1) {
		assert.Greater(t, launcher.shots[0].Speed, start)
	}
}
