package floorplan

import (
	"github.com/akmonengine/floorplan/actor"
	"github.com/akmonengine/floorplan/layout"
)

// ItemVolume is the world-space volume of one furniture item
type ItemVolume struct {
	ID     string
	Volume actor.OrientedBox
	AABB   actor.AABB
}

// ExtractItem places the item's template box at the item's base-center and yaw.
// Items whose template cannot be resolved return an error wrapping
// layout.ErrMissingTemplate and must be left out of every test.
func ExtractItem(item layout.Item, catalog layout.Catalog) (ItemVolume, error) {
	size, err := item.Dimensions(catalog)
	if err != nil {
		return ItemVolume{}, err
	}

	volume := actor.OrientedBox{
		Box:       actor.NewBaseBox(size),
		Transform: actor.Transform{Position: item.Position, Yaw: item.Rotation},
	}

	return ItemVolume{
		ID:     item.InstanceID,
		Volume: volume,
		AABB:   volume.AABB(),
	}, nil
}
