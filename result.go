package floorplan

import "fmt"

// WallID addresses one wall segment of one room. WallIndex follows the
// traversal order of the room outline and is stable across passes.
type WallID struct {
	RoomID    string `json:"roomId"`
	WallIndex int    `json:"wallIndex"`
}

func (w WallID) String() string {
	return fmt.Sprintf("%s-wall-%d", w.RoomID, w.WallIndex)
}

// Skip records an entity left out of a pass, with the reason why
type Skip struct {
	ID  string
	Err error
}

// Result is the outcome of one detection pass
type Result struct {
	CollidingItems []string `json:"collidingItems"` // sorted, unique
	CollidingRooms []string `json:"collidingRooms"` // sorted, unique
	CollidingWalls []WallID `json:"collidingWalls"` // unique, in room then wall order
	HasCollision   bool     `json:"hasCollision"`

	// Skipped lists rooms and items excluded from some or all tests
	Skipped []Skip `json:"-"`
}

func emptyResult() Result {
	return Result{
		CollidingItems: []string{},
		CollidingRooms: []string{},
		CollidingWalls: []WallID{},
	}
}

func (r Result) ItemColliding(instanceID string) bool {
	return contains(r.CollidingItems, instanceID)
}

func (r Result) RoomColliding(roomID string) bool {
	return contains(r.CollidingRooms, roomID)
}

func (r Result) WallColliding(roomID string, wallIndex int) bool {
	for _, w := range r.CollidingWalls {
		if w.RoomID == roomID && w.WallIndex == wallIndex {
			return true
		}
	}
	return false
}

// WallsOf returns the colliding wall indices of one room, in wall order
func (r Result) WallsOf(roomID string) []int {
	var indices []int
	for _, w := range r.CollidingWalls {
		if w.RoomID == roomID {
			indices = append(indices, w.WallIndex)
		}
	}
	return indices
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
