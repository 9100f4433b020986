// Package sat implements an exact overlap test for yaw-rotated boxes using the
// Separating Axis Theorem.
//
// Floor plan volumes only ever rotate about the vertical axis, so a box is an
// extruded rectangle: two boxes overlap iff their vertical intervals overlap and
// their floor rectangles overlap. For two convex polygons the candidate
// separating axes are the edge normals of both, which for rectangles reduces
// to 4 axes.
//
// The test is run after the AABB test passed, to drop the false positives the
// enclosing boxes produce for rotated furniture and diagonal walls.
//
// Contact follows the same convention as actor.AABB.Overlaps: touching counts
// as overlapping.
//
// References:
//   - Gottschalk, Lin, Manocha: "OBBTree: A Hierarchical Structure for Rapid
//     Interference Detection" (1996)
//   - Ericson: "Real-Time Collision Detection", chapter 4.4 (2005)
package sat

import (
	"math"

	"github.com/akmonengine/floorplan/actor"
	"github.com/go-gl/mathgl/mgl64"
)

// Overlaps reports whether two yaw-rotated boxes intersect.
func Overlaps(a, b actor.OrientedBox) bool {
	aMin, aMax := a.VerticalRange()
	bMin, bMax := b.VerticalRange()
	if aMax < bMin || bMax < aMin {
		return false
	}

	return FootprintsOverlap(a.Footprint(), b.Footprint())
}

// FootprintsOverlap reports whether two convex quads on the floor intersect.
// Each quad is given as its 4 corners in winding order.
func FootprintsOverlap(a, b [4]mgl64.Vec2) bool {
	// Two adjacent edges span a rectangle's normals; parallel edges add nothing.
	axes := [4]mgl64.Vec2{
		edgeNormal(a[0], a[1]),
		edgeNormal(a[1], a[2]),
		edgeNormal(b[0], b[1]),
		edgeNormal(b[1], b[2]),
	}

	for _, axis := range axes {
		if separates(axis, a, b) {
			return false
		}
	}
	return true
}

// separates tests whether the projections of a and b on axis are disjoint.
// A degenerate (zero) axis projects everything on 0 and never separates.
func separates(axis mgl64.Vec2, a, b [4]mgl64.Vec2) bool {
	aMin, aMax := project(axis, a)
	bMin, bMax := project(axis, b)
	return aMax < bMin || bMax < aMin
}

func project(axis mgl64.Vec2, corners [4]mgl64.Vec2) (float64, float64) {
	min := axis.Dot(corners[0])
	max := min
	for i := 1; i < 4; i++ {
		d := axis.Dot(corners[i])
		min = math.Min(min, d)
		max = math.Max(max, d)
	}
	return min, max
}

func edgeNormal(from, to mgl64.Vec2) mgl64.Vec2 {
	edge := to.Sub(from)
	return mgl64.Vec2{-edge.Y(), edge.X()}
}
