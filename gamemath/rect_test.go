package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi/features/math"
)

func TestRectOverlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}

	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"identical", Rect{0, 0, 10, 10}, true},
		{"partial", Rect{5, 5, 10, 10}, true},
		{"contained", Rect{2, 2, 2, 2}, true},
		{"touching right edge", Rect{10, 0, 5, 5}, false},
		{"touching bottom edge", Rect{0, 10, 5, 5}, false},
		{"apart", Rect{20, 20, 5, 5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(a))
		})
	}
}

func TestRectCenter(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 40, H: 20}
	assert.Equal(t, math.Vec2{X: 30, Y: 30}, r.Center())
	assert.Equal(t, 50.0, r.Right())
	assert.Equal(t, 40.0, r.Bottom())
}

func TestWithinRadiusBoundary(t *testing.T) {
	origin := math.Vec2{X: 0, Y: 0}

	assert.True(t, WithinRadius(origin, math.Vec2{X: 80, Y: 0}, 80))
	assert.True(t, WithinRadius(origin, math.Vec2{X: 48, Y: 64}, 80))
	assert.False(t, WithinRadius(origin, math.Vec2{X: 48, Y: 64.01}, 80))
	assert.InDelta(t, 80.0, Distance(origin, math.Vec2{X: 48, Y: 64}), 1e-9)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-5, 0, 10))
	assert.Equal(t, 10.0, Clamp(15, 0, 10))
	assert.Equal(t, 7.0, Clamp(7, 0, 10))
	assert.Equal(t, 3.0, Clamp(7, 3, 1))
}
