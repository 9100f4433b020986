package actor

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const epsilon = 1e-9

func TestNewBaseBox(t *testing.T) {
	box := NewBaseBox(mgl64.Vec3{2, 0.8, 0.9})

	if box.Min != (mgl64.Vec3{-1, 0, -0.45}) {
		t.Errorf("Min = %v, want (-1, 0, -0.45)", box.Min)
	}
	if box.Max != (mgl64.Vec3{1, 0.8, 0.45}) {
		t.Errorf("Max = %v, want (1, 0.8, 0.45)", box.Max)
	}
}

func TestBoxComputeAABB(t *testing.T) {
	box := NewBaseBox(mgl64.Vec3{2, 1, 1})

	tests := []struct {
		name      string
		transform Transform
		expected  AABB
	}{
		{
			name:      "identity",
			transform: NewTransform(),
			expected:  AABB{Min: mgl64.Vec3{-1, 0, -0.5}, Max: mgl64.Vec3{1, 1, 0.5}},
		},
		{
			name:      "translated, base elevation kept",
			transform: Transform{Position: mgl64.Vec3{3, 0.1, -2}},
			expected:  AABB{Min: mgl64.Vec3{2, 0.1, -2.5}, Max: mgl64.Vec3{4, 1.1, -1.5}},
		},
		{
			name:      "quarter turn swaps width and depth",
			transform: Transform{Yaw: math.Pi / 2},
			expected:  AABB{Min: mgl64.Vec3{-0.5, 0, -1}, Max: mgl64.Vec3{0.5, 1, 1}},
		},
		{
			name:      "half turn",
			transform: Transform{Yaw: math.Pi},
			expected:  AABB{Min: mgl64.Vec3{-1, 0, -0.5}, Max: mgl64.Vec3{1, 1, 0.5}},
		},
		{
			name:      "45 degrees grows the enclosing box",
			transform: Transform{Yaw: math.Pi / 4},
			expected: AABB{
				Min: mgl64.Vec3{-1.5 / math.Sqrt2, 0, -1.5 / math.Sqrt2},
				Max: mgl64.Vec3{1.5 / math.Sqrt2, 1, 1.5 / math.Sqrt2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := box.ComputeAABB(tt.transform)
			if !got.ApproxEqual(tt.expected, epsilon) {
				t.Errorf("ComputeAABB() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestBoxComputeAABB_FullTurn(t *testing.T) {
	box := NewBaseBox(mgl64.Vec3{1.8, 0.75, 0.9})
	position := mgl64.Vec3{1.2, 0.1, -0.7}

	for _, yaw := range []float64{0, 0.3, 1.1, -2.4} {
		a := box.ComputeAABB(Transform{Position: position, Yaw: yaw})
		b := box.ComputeAABB(Transform{Position: position, Yaw: yaw + 2*math.Pi})
		if !a.ApproxEqual(b, epsilon) {
			t.Errorf("yaw %v: %v != %v after a full turn", yaw, a, b)
		}
	}
}

func TestBoxComputeAABB_ContainsFootprint(t *testing.T) {
	obb := OrientedBox{
		Box:       NewBaseBox(mgl64.Vec3{3, 0.05, 2}),
		Transform: Transform{Position: mgl64.Vec3{1, 0, 1}, Yaw: 0.7},
	}
	aabb := obb.AABB()

	for _, corner := range obb.Footprint() {
		p := mgl64.Vec3{corner.X(), 0, corner.Y()}
		// guard against rounding on the enclosing faces
		grown := AABB{Min: aabb.Min.Sub(mgl64.Vec3{epsilon, epsilon, epsilon}), Max: aabb.Max.Add(mgl64.Vec3{epsilon, epsilon, epsilon})}
		if !grown.ContainsPoint(p) {
			t.Errorf("footprint corner %v escapes %v", corner, aabb)
		}
	}
}

func TestOrientedBoxVerticalRange(t *testing.T) {
	obb := OrientedBox{
		Box:       NewBaseBox(mgl64.Vec3{1, 2.1, 0.1}),
		Transform: Transform{Position: mgl64.Vec3{0, 0.5, 0}, Yaw: 1},
	}
	lo, hi := obb.VerticalRange()
	if lo != 0.5 || math.Abs(hi-2.6) > epsilon {
		t.Errorf("VerticalRange() = (%v, %v), want (0.5, 2.6)", lo, hi)
	}
}

func TestTransformApply(t *testing.T) {
	transform := Transform{Position: mgl64.Vec3{1, 0, 1}, Yaw: math.Pi / 2}

	got := transform.Apply(mgl64.Vec3{1, 0, 0})
	want := mgl64.Vec3{1, 0, 0}
	if !got.ApproxEqualThreshold(want, epsilon) {
		t.Errorf("Apply() = %v, want %v", got, want)
	}
}
