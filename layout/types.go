// Package layout holds the floor plan model the collision engine reads:
// rooms, placed furniture items and the template catalog that sizes them.
//
// All values are plain data owned by the editor. The engine never mutates them.
package layout

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// ShapeKind represents how a room footprint is described
type ShapeKind int

const (
	// ShapeRectangular rooms are described by Width and Length, centered on Position
	ShapeRectangular ShapeKind = iota
	// ShapePolygon rooms are described by an ordered loop of local Vertices
	ShapePolygon
)

// MinPolygonVertices is the smallest vertex count of a closed polygon room
const MinPolygonVertices = 3

func (s ShapeKind) String() string {
	switch s {
	case ShapeRectangular:
		return "RECTANGLE"
	case ShapePolygon:
		return "CUSTOM"
	}
	return fmt.Sprintf("ShapeKind(%d)", int(s))
}

func (s ShapeKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON accepts the editor's shape names. L and U shaped rooms have no
// geometry of their own yet and are handled as their bounding rectangle.
func (s *ShapeKind) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	switch name {
	case "RECTANGLE", "L_SHAPE", "U_SHAPE", "":
		*s = ShapeRectangular
	case "CUSTOM":
		*s = ShapePolygon
	default:
		return fmt.Errorf("unknown room shape %q", name)
	}
	return nil
}

// Room is a room footprint with its walls
type Room struct {
	ID            string       `json:"id"`
	Name          string       `json:"name,omitempty"`
	Shape         ShapeKind    `json:"shape"`
	Position      mgl64.Vec2   `json:"position"` // world (x, z) offset
	Width         float64      `json:"width"`
	Length        float64      `json:"length"`
	Height        float64      `json:"height"`
	WallThickness float64      `json:"wallThickness"`
	Vertices      []mgl64.Vec2 `json:"vertices,omitempty"` // local (x, z), polygon rooms only
}

// NewRectRoom creates a rectangular room with a fresh id
func NewRectRoom(name string, position mgl64.Vec2, width, length, height, wallThickness float64) Room {
	return Room{
		ID:            "room-" + uuid.NewString(),
		Name:          name,
		Shape:         ShapeRectangular,
		Position:      position,
		Width:         width,
		Length:        length,
		Height:        height,
		WallThickness: wallThickness,
	}
}

// NewPolygonRoom creates a free-form room with a fresh id
func NewPolygonRoom(name string, position mgl64.Vec2, vertices []mgl64.Vec2, height, wallThickness float64) Room {
	return Room{
		ID:            "room-" + uuid.NewString(),
		Name:          name,
		Shape:         ShapePolygon,
		Position:      position,
		Vertices:      vertices,
		Height:        height,
		WallThickness: wallThickness,
	}
}

// Outline returns the local boundary loop of the room, in traversal order.
// A rectangle is walked from its (-x, -z) corner: -z edge, +x edge, +z edge, -x edge.
// It returns nil if the room has no usable outline.
func (r Room) Outline() []mgl64.Vec2 {
	if r.Shape == ShapePolygon {
		if len(r.Vertices) < MinPolygonVertices {
			return nil
		}
		return r.Vertices
	}
	if !r.hasRectExtent() {
		return nil
	}
	hw, hl := r.Width/2, r.Length/2
	return []mgl64.Vec2{
		{-hw, -hl},
		{hw, -hl},
		{hw, hl},
		{-hw, hl},
	}
}

// Ring returns the world-space boundary of a polygon room as a closed orb ring
func (r Room) Ring() orb.Ring {
	ring := make(orb.Ring, 0, len(r.Vertices)+1)
	for _, v := range r.Vertices {
		ring = append(ring, orb.Point{v.X() + r.Position.X(), v.Y() + r.Position.Y()})
	}
	if len(ring) > 0 && !ring.Closed() {
		ring = append(ring, ring[0])
	}
	return ring
}

func (r Room) hasRectExtent() bool {
	return r.Width > 0 && r.Length > 0
}

// Validate reports why a room cannot produce walls, wrapping ErrDegenerateRoom
func (r Room) Validate() error {
	if !finite(r.Position.X(), r.Position.Y(), r.Width, r.Length, r.Height, r.WallThickness) {
		return fmt.Errorf("room %q: non-finite dimensions: %w", r.ID, ErrDegenerateRoom)
	}
	switch r.Shape {
	case ShapePolygon:
		if len(r.Vertices) < MinPolygonVertices {
			return fmt.Errorf("room %q: %d vertices, need %d: %w", r.ID, len(r.Vertices), MinPolygonVertices, ErrDegenerateRoom)
		}
		for _, v := range r.Vertices {
			if !finite(v.X(), v.Y()) {
				return fmt.Errorf("room %q: non-finite vertex: %w", r.ID, ErrDegenerateRoom)
			}
		}
	default:
		if !r.hasRectExtent() {
			return fmt.Errorf("room %q: non-positive width or length: %w", r.ID, ErrDegenerateRoom)
		}
	}
	return nil
}

// Item is a furniture instance placed in the plan
type Item struct {
	InstanceID string     `json:"instanceId"`
	TemplateID string     `json:"templateId"`
	Position   mgl64.Vec3 `json:"position"` // y is the base elevation
	Rotation   float64    `json:"rotation"` // yaw, radians
}

// NewItem creates an item with a fresh instance id
func NewItem(templateID string, position mgl64.Vec3, yaw float64) Item {
	return Item{
		InstanceID: "item-" + uuid.NewString(),
		TemplateID: templateID,
		Position:   position,
		Rotation:   yaw,
	}
}

// Dimensions resolves the item size (width, height, depth) from the catalog
func (i Item) Dimensions(catalog Catalog) (mgl64.Vec3, error) {
	if !finite(i.Position.X(), i.Position.Y(), i.Position.Z(), i.Rotation) {
		return mgl64.Vec3{}, fmt.Errorf("item %q: non-finite placement: %w", i.InstanceID, ErrInvalidItem)
	}
	if catalog == nil {
		return mgl64.Vec3{}, fmt.Errorf("item %q: template %q: %w", i.InstanceID, i.TemplateID, ErrMissingTemplate)
	}
	size, ok := catalog.Dimensions(i.TemplateID)
	if !ok {
		return mgl64.Vec3{}, fmt.Errorf("item %q: template %q: %w", i.InstanceID, i.TemplateID, ErrMissingTemplate)
	}
	if !finite(size.X(), size.Y(), size.Z()) || size.X() <= 0 || size.Y() <= 0 || size.Z() <= 0 {
		return mgl64.Vec3{}, fmt.Errorf("item %q: template %q has size %v: %w", i.InstanceID, i.TemplateID, size, ErrInvalidItem)
	}
	return size, nil
}

// Snapshot is one immutable view of the plan
type Snapshot struct {
	Rooms   []Room  `json:"rooms"`
	Items   []Item  `json:"items"`
	Catalog Catalog `json:"-"`
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
