package game

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestProjectionCorners(t *testing.T) {
	proj := Projection(800, 600)

	cases := []struct {
		name   string
		px, py float32
		nx, ny float32
	}{
		{"top-left", 0, 0, -1, 1},
		{"top-right", 800, 0, 1, 1},
		{"bottom-left", 0, 600, -1, -1},
		{"bottom-right", 800, 600, 1, -1},
		{"center", 400, 300, 0, 0},
	}
	const eps = 1e-6
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := proj.Mul4x1(mgl32.Vec4{tc.px, tc.py, 0, 1})
			if math.Abs(float64(v.X()-tc.nx)) > eps || math.Abs(float64(v.Y()-tc.ny)) > eps {
				t.Errorf("(%v, %v) -> (%v, %v), want (%v, %v)", tc.px, tc.py, v.X(), v.Y(), tc.nx, tc.ny)
			}
		})
	}
}
