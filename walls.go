package floorplan

import (
	"math"

	"github.com/akmonengine/floorplan/actor"
	"github.com/akmonengine/floorplan/layout"
	"github.com/go-gl/mathgl/mgl64"
)

// WallSegment is one edge of a room boundary, materialized as a thin prism
// of size (Length + thickness, height, thickness) standing on the floor.
type WallSegment struct {
	ID       WallID
	Length   float64
	Midpoint mgl64.Vec3 // world, on the floor
	// Heading is the yaw mapping the local +X axis onto the edge direction
	Heading float64
	Volume  actor.OrientedBox
	AABB    actor.AABB
}

// WallSegments returns the walls of a room in outline order: one per edge,
// the last one closing the loop back to the first vertex. Rectangular rooms
// are walked as their 4 corners, so wall 0 is the -Z side, 1 is +X, 2 is +Z
// and 3 is -X. Degenerate rooms return no walls and an error wrapping
// layout.ErrDegenerateRoom.
func WallSegments(room layout.Room) ([]WallSegment, error) {
	return appendWallSegments(nil, room)
}

func appendWallSegments(dst []WallSegment, room layout.Room) ([]WallSegment, error) {
	if err := room.Validate(); err != nil {
		return dst, err
	}

	outline := room.Outline()
	for i := range outline {
		p1 := outline[i]
		p2 := outline[(i+1)%len(outline)]
		dst = append(dst, wallSegment(room, p1, p2, i))
	}
	return dst, nil
}

func wallSegment(room layout.Room, p1, p2 mgl64.Vec2, wallIndex int) WallSegment {
	dx := p2.X() - p1.X()
	dz := p2.Y() - p1.Y()
	length := math.Hypot(dx, dz)

	midpoint := mgl64.Vec3{
		room.Position.X() + (p1.X()+p2.X())/2,
		0,
		room.Position.Y() + (p1.Y()+p2.Y())/2,
	}

	// A yaw of h maps +X to (cos h, 0, -sin h)
	heading := math.Atan2(-dz, dx)

	halfLength := (length + room.WallThickness) / 2
	halfThickness := room.WallThickness / 2
	volume := actor.OrientedBox{
		Box: actor.Box{
			Min: mgl64.Vec3{-halfLength, 0, -halfThickness},
			Max: mgl64.Vec3{halfLength, room.Height, halfThickness},
		},
		Transform: actor.Transform{Position: midpoint, Yaw: heading},
	}

	return WallSegment{
		ID:       WallID{RoomID: room.ID, WallIndex: wallIndex},
		Length:   length,
		Midpoint: midpoint,
		Heading:  heading,
		Volume:   volume,
		AABB:     volume.AABB(),
	}
}
