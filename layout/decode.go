package layout

import (
	"encoding/json"
	"fmt"
	"io"
)

// plan mirrors the project file layout so that the top level shape can be
// checked before rooms and items are decoded.
type plan struct {
	Rooms json.RawMessage `json:"rooms"`
	Items json.RawMessage `json:"items"`
}

// Decode reads a plan ({"rooms": [...], "items": [...]}) and returns a snapshot
// using the default catalog. A plan whose rooms are not an array, or whose
// entries cannot be decoded, fails with ErrInvalidSnapshot.
func Decode(r io.Reader) (*Snapshot, error) {
	var p plan
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return nil, fmt.Errorf("decode plan: %v: %w", err, ErrInvalidSnapshot)
	}
	if !isArray(p.Rooms) {
		return nil, fmt.Errorf("plan rooms must be an array: %w", ErrInvalidSnapshot)
	}

	snapshot := &Snapshot{Catalog: DefaultCatalog()}
	if err := json.Unmarshal(p.Rooms, &snapshot.Rooms); err != nil {
		return nil, fmt.Errorf("decode rooms: %v: %w", err, ErrInvalidSnapshot)
	}

	if len(p.Items) > 0 && string(p.Items) != "null" {
		if !isArray(p.Items) {
			return nil, fmt.Errorf("plan items must be an array: %w", ErrInvalidSnapshot)
		}
		if err := json.Unmarshal(p.Items, &snapshot.Items); err != nil {
			return nil, fmt.Errorf("decode items: %v: %w", err, ErrInvalidSnapshot)
		}
	}

	return snapshot, nil
}

func isArray(raw json.RawMessage) bool {
	for _, c := range raw {
		switch c {
		case ' ', '\t', '\n', '\r':
			continue
		case '[':
			return true
		default:
			return false
		}
	}
	return false
}
