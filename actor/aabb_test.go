package actor

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// =============================================================================
// AABB Overlap Tests
// =============================================================================

func TestAABBOverlaps_Separated(t *testing.T) {
	unit := AABB{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 1, 1}}

	tests := []struct {
		name  string
		other AABB
	}{
		{"Separated on X axis (positive)", AABB{Min: mgl64.Vec3{2, 0, 0}, Max: mgl64.Vec3{3, 1, 1}}},
		{"Separated on X axis (negative)", AABB{Min: mgl64.Vec3{-2, 0, 0}, Max: mgl64.Vec3{-1, 1, 1}}},
		{"Separated on Y axis (stacked)", AABB{Min: mgl64.Vec3{0, 1.5, 0}, Max: mgl64.Vec3{1, 2, 1}}},
		{"Separated on Z axis", AABB{Min: mgl64.Vec3{0, 0, -3}, Max: mgl64.Vec3{1, 1, -0.01}}},
		{"Overlapping on X and Z but not Y", AABB{Min: mgl64.Vec3{0.5, 2, 0.5}, Max: mgl64.Vec3{2, 3, 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if unit.Overlaps(tt.other) {
				t.Errorf("AABBs should not overlap")
			}
			if tt.other.Overlaps(unit) {
				t.Errorf("AABBs should not overlap (symmetry test)")
			}
		})
	}
}

func TestAABBOverlaps_Overlapping(t *testing.T) {
	tests := []struct {
		name  string
		aabb1 AABB
		aabb2 AABB
	}{
		{
			name:  "Identical",
			aabb1: AABB{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 1, 1}},
			aabb2: AABB{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 1, 1}},
		},
		{
			name:  "Two 6x4 rooms shifted by 3m",
			aabb1: AABB{Min: mgl64.Vec3{-3, 0, -2}, Max: mgl64.Vec3{3, 2.6, 2}},
			aabb2: AABB{Min: mgl64.Vec3{0, 0, -2}, Max: mgl64.Vec3{6, 2.6, 2}},
		},
		{
			name:  "Containment",
			aabb1: AABB{Min: mgl64.Vec3{-5, 0, -5}, Max: mgl64.Vec3{5, 3, 5}},
			aabb2: AABB{Min: mgl64.Vec3{-1, 0.1, -1}, Max: mgl64.Vec3{1, 0.9, 1}},
		},
		{
			name:  "Negative coordinates",
			aabb1: AABB{Min: mgl64.Vec3{-4, -1, -4}, Max: mgl64.Vec3{-2, 1, -2}},
			aabb2: AABB{Min: mgl64.Vec3{-3, 0, -3}, Max: mgl64.Vec3{-1, 2, -1}},
		},
		{
			name:  "Thin wall crossing a box",
			aabb1: AABB{Min: mgl64.Vec3{-2.1, 0, -1.6}, Max: mgl64.Vec3{2.1, 2.6, -1.4}},
			aabb2: AABB{Min: mgl64.Vec3{0, 0, -2}, Max: mgl64.Vec3{1, 1, -1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.aabb1.Overlaps(tt.aabb2) {
				t.Errorf("AABBs should overlap")
			}
			if !tt.aabb2.Overlaps(tt.aabb1) {
				t.Errorf("AABBs should overlap (symmetry test)")
			}
		})
	}
}

func TestAABBOverlaps_Touching(t *testing.T) {
	a := AABB{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 1, 1}}

	tests := []struct {
		name  string
		other AABB
	}{
		{"Face touching on X axis", AABB{Min: mgl64.Vec3{1, 0, 0}, Max: mgl64.Vec3{2, 1, 1}}},
		{"Face touching on Y axis", AABB{Min: mgl64.Vec3{0, 1, 0}, Max: mgl64.Vec3{1, 2, 1}}},
		{"Face touching on Z axis", AABB{Min: mgl64.Vec3{0, 0, 1}, Max: mgl64.Vec3{1, 1, 2}}},
		{"Corner touching", AABB{Min: mgl64.Vec3{1, 1, 1}, Max: mgl64.Vec3{2, 2, 2}}},
		{"Point box on a face", AABB{Min: mgl64.Vec3{1, 0.5, 0.5}, Max: mgl64.Vec3{1, 0.5, 0.5}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !a.Overlaps(tt.other) || !tt.other.Overlaps(a) {
				t.Errorf("touching AABBs must count as overlapping")
			}
		})
	}
}

func TestAABBOverlaps_Reflexivity(t *testing.T) {
	boxes := []AABB{
		{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 1, 1}},
		{Min: mgl64.Vec3{-10, 0, 3}, Max: mgl64.Vec3{-9.5, 0, 3}},
		{Min: mgl64.Vec3{2, 2, 2}, Max: mgl64.Vec3{2, 2, 2}},
	}
	for _, box := range boxes {
		if !box.Overlaps(box) {
			t.Errorf("%v should overlap itself", box)
		}
	}
}

func TestAABBContainsPoint(t *testing.T) {
	aabb := AABB{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{2, 2, 2}}

	tests := []struct {
		name     string
		point    mgl64.Vec3
		expected bool
	}{
		{"Center point", mgl64.Vec3{1, 1, 1}, true},
		{"Min corner", mgl64.Vec3{0, 0, 0}, true},
		{"Max corner", mgl64.Vec3{2, 2, 2}, true},
		{"Outside (X too large)", mgl64.Vec3{3, 1, 1}, false},
		{"Outside (Y too small)", mgl64.Vec3{1, -1, 1}, false},
		{"Outside (Z too large)", mgl64.Vec3{1, 1, 2.0001}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := aabb.ContainsPoint(tt.point)
			if result != tt.expected {
				t.Errorf("ContainsPoint(%v) = %v, expected %v", tt.point, result, tt.expected)
			}
		})
	}
}

func TestAABBCenterAndSize(t *testing.T) {
	aabb := AABB{Min: mgl64.Vec3{-3, 0, -2}, Max: mgl64.Vec3{3, 2.6, 2}}

	if got := aabb.Center(); got != (mgl64.Vec3{0, 1.3, 0}) {
		t.Errorf("Center() = %v, want (0, 1.3, 0)", got)
	}
	if got := aabb.Size(); got != (mgl64.Vec3{6, 2.6, 4}) {
		t.Errorf("Size() = %v, want (6, 2.6, 4)", got)
	}
}
