package floorplan

import (
	"fmt"
	"sort"
	"sync"

	"github.com/akmonengine/floorplan/actor"
	"github.com/akmonengine/floorplan/layout"
	"github.com/akmonengine/floorplan/sat"
)

// Precision selects how rotated volumes are compared
type Precision int

const (
	// PrecisionConservative compares the axis-aligned boxes enclosing each
	// volume. Rotated furniture and diagonal walls may report overlaps their
	// true shapes do not have.
	PrecisionConservative Precision = iota
	// PrecisionExact confirms every AABB overlap between items, and between
	// items and walls, with a separating axis test on the rotated boxes.
	// Room footprints are always compared as boxes.
	PrecisionExact
)

func (p Precision) String() string {
	switch p {
	case PrecisionConservative:
		return "conservative"
	case PrecisionExact:
		return "exact"
	}
	return fmt.Sprintf("Precision(%d)", int(p))
}

// PrecisionFromString parses "conservative" or "exact". The empty string is conservative.
func PrecisionFromString(s string) (Precision, error) {
	switch s {
	case "", "conservative":
		return PrecisionConservative, nil
	case "exact":
		return PrecisionExact, nil
	}
	return PrecisionConservative, fmt.Errorf("unknown precision %q", s)
}

// Detector runs detection passes. Its buffers are reused from one pass to the
// next so that a pass per drag frame stays allocation-light; nothing else
// carries over. A Detector must not be used by several goroutines at once.
type Detector struct {
	Precision Precision

	items    []ItemVolume
	itemHits []bool
	rooms    []roomFootprint
	walls    []WallSegment
	wallHits []bool
	skipped  []Skip
}

type roomFootprint struct {
	id   string
	aabb actor.AABB
	hit  bool
}

func NewDetector(precision Precision) *Detector {
	return &Detector{Precision: precision}
}

var detectorPool = sync.Pool{
	New: func() interface{} {
		return NewDetector(PrecisionConservative)
	},
}

// Detect runs one conservative detection pass over the snapshot.
// It is safe for concurrent use.
func Detect(snapshot *layout.Snapshot, enabled bool) Result {
	d := detectorPool.Get().(*Detector)
	defer detectorPool.Put(d)

	return d.Detect(snapshot, enabled)
}

// Detect finds overlapping rooms, overlapping items, and items crossing walls.
// A disabled pass, a nil snapshot, or a pass that fails for any other reason
// returns an empty result. Rooms and items that cannot be measured are left out
// and listed in Result.Skipped.
func (d *Detector) Detect(snapshot *layout.Snapshot, enabled bool) (result Result) {
	if !enabled {
		return emptyResult()
	}
	if snapshot == nil {
		Logf("floorplan: detection skipped: %v", layout.ErrInvalidSnapshot)
		return emptyResult()
	}

	defer func() {
		if r := recover(); r != nil {
			Logf("floorplan: detection pass aborted: %v", r)
			result = emptyResult()
		}
	}()

	d.reset()
	d.extractItems(snapshot)
	d.buildFootprints(snapshot.Rooms)
	d.segmentWalls(snapshot.Rooms)

	d.collideRooms()
	d.collideItems()
	d.collideItemsWithWalls()

	return d.assemble()
}

func (d *Detector) reset() {
	d.items = d.items[:0]
	d.itemHits = d.itemHits[:0]
	d.rooms = d.rooms[:0]
	d.walls = d.walls[:0]
	d.wallHits = d.wallHits[:0]
	d.skipped = d.skipped[:0]
}

func (d *Detector) extractItems(snapshot *layout.Snapshot) {
	for _, item := range snapshot.Items {
		volume, err := ExtractItem(item, snapshot.Catalog)
		if err != nil {
			d.skipped = append(d.skipped, Skip{ID: item.InstanceID, Err: err})
			continue
		}
		d.items = append(d.items, volume)
		d.itemHits = append(d.itemHits, false)
	}
}

func (d *Detector) buildFootprints(rooms []layout.Room) {
	for _, room := range rooms {
		aabb, err := RoomFootprint(room)
		if err != nil {
			continue // reported by segmentWalls, Validate fails for the same room
		}
		d.rooms = append(d.rooms, roomFootprint{id: room.ID, aabb: aabb})
	}
}

func (d *Detector) segmentWalls(rooms []layout.Room) {
	for _, room := range rooms {
		var err error
		if d.walls, err = appendWallSegments(d.walls, room); err != nil {
			d.skipped = append(d.skipped, Skip{ID: room.ID, Err: err})
		}
	}
	for range d.walls {
		d.wallHits = append(d.wallHits, false)
	}
}

// collideRooms tests every unordered pair of distinct footprints once
func (d *Detector) collideRooms() {
	for i := 0; i < len(d.rooms); i++ {
		for j := i + 1; j < len(d.rooms); j++ {
			if d.rooms[i].aabb.Overlaps(d.rooms[j].aabb) {
				d.rooms[i].hit = true
				d.rooms[j].hit = true
			}
		}
	}
}

// collideItems tests every unordered pair of distinct items once
func (d *Detector) collideItems() {
	for i := 0; i < len(d.items); i++ {
		for j := i + 1; j < len(d.items); j++ {
			if d.overlaps(d.items[i].AABB, d.items[j].AABB, d.items[i].Volume, d.items[j].Volume) {
				d.itemHits[i] = true
				d.itemHits[j] = true
			}
		}
	}
}

func (d *Detector) collideItemsWithWalls() {
	for w := range d.walls {
		for i := range d.items {
			if d.overlaps(d.items[i].AABB, d.walls[w].AABB, d.items[i].Volume, d.walls[w].Volume) {
				d.itemHits[i] = true
				d.wallHits[w] = true
			}
		}
	}
}

func (d *Detector) overlaps(a, b actor.AABB, volumeA, volumeB actor.OrientedBox) bool {
	if !a.Overlaps(b) {
		return false
	}
	if d.Precision == PrecisionExact {
		return sat.Overlaps(volumeA, volumeB)
	}
	return true
}

func (d *Detector) assemble() Result {
	result := emptyResult()

	for i, hit := range d.itemHits {
		if hit {
			result.CollidingItems = append(result.CollidingItems, d.items[i].ID)
		}
	}
	result.CollidingItems = sortUnique(result.CollidingItems)

	for _, room := range d.rooms {
		if room.hit {
			result.CollidingRooms = append(result.CollidingRooms, room.id)
		}
	}
	result.CollidingRooms = sortUnique(result.CollidingRooms)

	for w, hit := range d.wallHits {
		if hit && !result.WallColliding(d.walls[w].ID.RoomID, d.walls[w].ID.WallIndex) {
			result.CollidingWalls = append(result.CollidingWalls, d.walls[w].ID)
		}
	}

	result.HasCollision = len(result.CollidingItems) > 0 ||
		len(result.CollidingRooms) > 0 ||
		len(result.CollidingWalls) > 0

	if len(d.skipped) > 0 {
		result.Skipped = append([]Skip(nil), d.skipped...)
	}

	return result
}

func sortUnique(ids []string) []string {
	if len(ids) < 2 {
		return ids
	}
	sort.Strings(ids)

	n := 1
	for i := 1; i < len(ids); i++ {
		if ids[i] != ids[n-1] {
			ids[n] = ids[i]
			n++
		}
	}
	return ids[:n]
}
