package actor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Box is a local-space box, not necessarily centered on its origin.
// Furniture boxes sit on their origin (base-center), wall prisms too.
type Box struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// NewBaseBox creates a box of the given size (width, height, depth) whose
// origin is the center of its bottom face: [-w/2,w/2] x [0,h] x [-d/2,d/2]
func NewBaseBox(size mgl64.Vec3) Box {
	hw, hd := size.X()/2, size.Z()/2
	return Box{
		Min: mgl64.Vec3{-hw, 0, -hd},
		Max: mgl64.Vec3{hw, size.Y(), hd},
	}
}

func (b Box) corners() [8]mgl64.Vec3 {
	return [8]mgl64.Vec3{
		{b.Min.X(), b.Min.Y(), b.Min.Z()},
		{b.Max.X(), b.Min.Y(), b.Min.Z()},
		{b.Min.X(), b.Max.Y(), b.Min.Z()},
		{b.Max.X(), b.Max.Y(), b.Min.Z()},
		{b.Min.X(), b.Min.Y(), b.Max.Z()},
		{b.Max.X(), b.Min.Y(), b.Max.Z()},
		{b.Min.X(), b.Max.Y(), b.Max.Z()},
		{b.Max.X(), b.Max.Y(), b.Max.Z()},
	}
}

// ComputeAABB rotates the 8 corners of the box by the transform's yaw,
// translates them, and returns the axis-aligned box enclosing them.
// For a non-zero yaw this over-approximates the box.
func (b Box) ComputeAABB(transform Transform) AABB {
	rotation := transform.Rotation()
	corners := b.corners()

	worldCorner := rotation.Rotate(corners[0]).Add(transform.Position)
	min := worldCorner
	max := worldCorner

	for i := 1; i < 8; i++ {
		worldCorner = rotation.Rotate(corners[i]).Add(transform.Position)

		min[0] = math.Min(min[0], worldCorner[0])
		min[1] = math.Min(min[1], worldCorner[1])
		min[2] = math.Min(min[2], worldCorner[2])

		max[0] = math.Max(max[0], worldCorner[0])
		max[1] = math.Max(max[1], worldCorner[1])
		max[2] = math.Max(max[2], worldCorner[2])
	}

	return AABB{Min: min, Max: max}
}

// OrientedBox is a local box placed in the world by a yaw-only transform
type OrientedBox struct {
	Box       Box
	Transform Transform
}

func (o OrientedBox) AABB() AABB {
	return o.Box.ComputeAABB(o.Transform)
}

// VerticalRange returns the world y interval covered by the box.
// A yaw never changes it.
func (o OrientedBox) VerticalRange() (float64, float64) {
	y := o.Transform.Position.Y()
	return o.Box.Min.Y() + y, o.Box.Max.Y() + y
}

// Footprint returns the 4 world corners of the box projected on the floor,
// as (x, z) pairs, in winding order.
func (o OrientedBox) Footprint() [4]mgl64.Vec2 {
	sin, cos := math.Sincos(o.Transform.Yaw)
	local := [4]mgl64.Vec2{
		{o.Box.Min.X(), o.Box.Min.Z()},
		{o.Box.Max.X(), o.Box.Min.Z()},
		{o.Box.Max.X(), o.Box.Max.Z()},
		{o.Box.Min.X(), o.Box.Max.Z()},
	}

	var world [4]mgl64.Vec2
	for i, p := range local {
		// yaw about +Y: x' = x cos + z sin, z' = -x sin + z cos
		world[i] = mgl64.Vec2{
			p.X()*cos + p.Y()*sin + o.Transform.Position.X(),
			-p.X()*sin + p.Y()*cos + o.Transform.Position.Z(),
		}
	}
	return world
}
