package actor

import "github.com/go-gl/mathgl/mgl64"

// Up is the vertical axis. Every rotation in a floor plan is a yaw about it.
var Up = mgl64.Vec3{0, 1, 0}

// Transform places a local volume in the world: a yaw about Up, then a translation
type Transform struct {
	Position mgl64.Vec3
	Yaw      float64 // radians
}

// NewTransform creates an identity transform
func NewTransform() Transform {
	return Transform{Position: mgl64.Vec3{0, 0, 0}}
}

// Rotation returns the yaw as a quaternion
func (t Transform) Rotation() mgl64.Quat {
	return mgl64.QuatRotate(t.Yaw, Up)
}

// Apply maps a local point to world space
func (t Transform) Apply(local mgl64.Vec3) mgl64.Vec3 {
	return t.Rotation().Rotate(local).Add(t.Position)
}
