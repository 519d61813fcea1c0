package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLerp(t *testing.T) {
	cases := []struct {
		name    string
		a, b, t float64
		want    float64
	}{
		{"start", 0, 10, 0, 0},
		{"middle", 0, 10, 0.5, 5},
		{"end", 0, 10, 1, 10},
		{"negative", 0, 10, -0.5, -5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.InDelta(t, c.want, Lerp(c.a, c.b, c.t), 1e-9)
		})
	}
	assert.InDelta(t, float32(2.5), Lerp[float32](0, 10, 0.25), 1e-6)
}

func TestClamp(t *testing.T) {
	cases := []struct {
		name      string
		v, lo, hi float64
		want      float64
	}{
		{"below", -1, 0, 1, 0},
		{"inside", 0.5, 0, 1, 0.5},
		{"above", 3, 0, 1, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Clamp(c.v, c.lo, c.hi))
		})
	}
}

func TestClampInt(t *testing.T) {
	assert.Equal(t, 5, Clamp(9, 1, 5))
	assert.Equal(t, 1, Clamp(-2, 1, 5))
}

func TestRectImage(t *testing.T) {
	r := Rect{X: 160, Y: 320, Width: 160, Height: 160}
	assert.False(t, r.Empty())
	assert.Equal(t, 320, r.Image().Max.X)
	assert.Equal(t, 480, r.Image().Max.Y)
	assert.True(t, Rect{}.Empty())
}
