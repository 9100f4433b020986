package actor

import "github.com/go-gl/mathgl/mgl64"

// AABB represents an axis-aligned bounding box in world space
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// ContainsPoint checks if a point is inside the AABB
func (a AABB) ContainsPoint(point mgl64.Vec3) bool {
	return point.X() >= a.Min.X() && point.X() <= a.Max.X() &&
		point.Y() >= a.Min.Y() && point.Y() <= a.Max.Y() &&
		point.Z() >= a.Min.Z() && point.Z() <= a.Max.Z()
}

// Overlaps checks if two AABBs overlap.
// Boxes that only touch on a face, edge or corner count as overlapping.
func (a AABB) Overlaps(other AABB) bool {
	return a.Min.X() <= other.Max.X() && other.Min.X() <= a.Max.X() &&
		a.Min.Y() <= other.Max.Y() && other.Min.Y() <= a.Max.Y() &&
		a.Min.Z() <= other.Max.Z() && other.Min.Z() <= a.Max.Z()
}

func (a AABB) Center() mgl64.Vec3 {
	return a.Min.Add(a.Max).Mul(0.5)
}

func (a AABB) Size() mgl64.Vec3 {
	return a.Max.Sub(a.Min)
}

// ApproxEqual compares both corners component-wise within threshold
func (a AABB) ApproxEqual(other AABB, threshold float64) bool {
	return a.Min.ApproxEqualThreshold(other.Min, threshold) &&
		a.Max.ApproxEqualThreshold(other.Max, threshold)
}
