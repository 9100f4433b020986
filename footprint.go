package floorplan

import (
	"fmt"
	"math"

	"github.com/akmonengine/floorplan/actor"
	"github.com/akmonengine/floorplan/layout"
	"github.com/go-gl/mathgl/mgl64"
)

// RoomFootprint returns the floor extent of a room extruded to its height.
// Polygon rooms use the bounds of their vertices. A polygon with too few
// vertices falls back to its width and length when those are set.
func RoomFootprint(room layout.Room) (actor.AABB, error) {
	err := room.Validate()
	if err == nil && room.Shape == layout.ShapePolygon {
		bound := room.Ring().Bound()
		return actor.AABB{
			Min: mgl64.Vec3{bound.Min.X(), 0, bound.Min.Y()},
			Max: mgl64.Vec3{bound.Max.X(), room.Height, bound.Max.Y()},
		}, nil
	}

	if !finite(room.Position.X(), room.Position.Y(), room.Width, room.Length, room.Height) ||
		room.Width <= 0 || room.Length <= 0 {
		if err == nil {
			err = fmt.Errorf("room %q: %w", room.ID, layout.ErrDegenerateRoom)
		}
		return actor.AABB{}, err
	}

	hw, hl := room.Width/2, room.Length/2
	return actor.AABB{
		Min: mgl64.Vec3{room.Position.X() - hw, 0, room.Position.Y() - hl},
		Max: mgl64.Vec3{room.Position.X() + hw, room.Height, room.Position.Y() + hl},
	}, nil
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
