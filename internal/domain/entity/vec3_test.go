package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	assert.Equal(t, Vec3{5, -3, 9}, a.Add(b))
	assert.Equal(t, Vec3{-3, 7, -3}, a.Sub(b))
	assert.Equal(t, Vec3{2, 4, 6}, a.Scale(2))
	assert.Equal(t, 4.0-10.0+18.0, a.Dot(b))
	assert.Equal(t, 14.0, a.LenSq())
	assert.InDelta(t, math.Sqrt(14), a.Len(), 1e-12)
}

func TestVec3_Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   Vec3
		want Vec3
	}{
		{"axis", Vec3{0, 5, 0}, Up},
		{"diagonal", Vec3{3, 0, 4}, Vec3{0.6, 0, 0.8}},
		{"zero stays zero", Vec3{}, Vec3{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize()
			assert.InDelta(t, tt.want.X, got.X, 1e-12)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-12)
			assert.InDelta(t, tt.want.Z, got.Z, 1e-12)
		})
	}
}

func TestVec3_Reflect(t *testing.T) {
	// Falling at 45 degrees onto flat ground bounces up at 45 degrees
	v := Vec3{X: 1, Y: -1}
	r := v.Reflect(Up)
	assert.Equal(t, Vec3{X: 1, Y: 1}, r)

	// Head-on reverses
	head := Vec3{Z: 2}.Reflect(Vec3{Z: -1})
	assert.Equal(t, Vec3{Z: -2}, head)

	// Speed preserved
	v = Vec3{X: 3, Y: -2, Z: 1}
	n := Vec3{X: 1, Y: 1}.Normalize()
	assert.InDelta(t, v.Len(), v.Reflect(n).Len(), 1e-12)
}

func TestVec3_IsFinite(t *testing.T) {
	assert.True(t, Vec3{1, 2, 3}.IsFinite())
	assert.False(t, Vec3{math.NaN(), 0, 0}.IsFinite())
	assert.False(t, Vec3{0, math.Inf(1), 0}.IsFinite())
	assert.False(t, Vec3{0, 0, math.Inf(-1)}.IsFinite())
}

func TestVec3_Horizontal(t *testing.T) {
	assert.Equal(t, Vec3{X: 1, Z: 3}, Vec3{1, 2, 3}.Horizontal())
	assert.True(t, Vec3{}.IsZero())
	assert.False(t, Up.IsZero())
}
