package floorplan

const (
	ITEM_ENTER EventType = iota
	ITEM_EXIT
	ROOM_ENTER
	ROOM_EXIT
	WALL_ENTER
	WALL_EXIT
	COLLISION_RAISED
	COLLISION_CLEARED
)

type EventType uint8

// Event interface - all events implement this
type Event interface {
	Type() EventType
}

// Item events
type ItemEnterEvent struct {
	InstanceID string
}

func (e ItemEnterEvent) Type() EventType { return ITEM_ENTER }

type ItemExitEvent struct {
	InstanceID string
}

func (e ItemExitEvent) Type() EventType { return ITEM_EXIT }

// Room events
type RoomEnterEvent struct {
	RoomID string
}

func (e RoomEnterEvent) Type() EventType { return ROOM_ENTER }

type RoomExitEvent struct {
	RoomID string
}

func (e RoomExitEvent) Type() EventType { return ROOM_EXIT }

// Wall events
type WallEnterEvent struct {
	Wall WallID
}

func (e WallEnterEvent) Type() EventType { return WALL_ENTER }

type WallExitEvent struct {
	Wall WallID
}

func (e WallExitEvent) Type() EventType { return WALL_EXIT }

// Flag events, for the notification layer
type CollisionRaisedEvent struct{}

func (e CollisionRaisedEvent) Type() EventType { return COLLISION_RAISED }

type CollisionClearedEvent struct{}

func (e CollisionClearedEvent) Type() EventType { return COLLISION_CLEARED }

// EventListener - callback for events
type EventListener func(event Event)

// Events turns successive detection results into enter/exit transitions.
// It lives outside the detection pass: Detect stays a pure function and the
// caller decides which results to feed here.
type Events struct {
	// Listeners by event type
	listeners map[EventType][]EventListener

	// Event buffer to send at flush
	buffer []Event

	previousItems map[string]bool
	currentItems  map[string]bool
	previousRooms map[string]bool
	currentRooms  map[string]bool
	previousWalls map[WallID]bool
	currentWalls  map[WallID]bool

	hasCollision bool
}

func NewEvents() Events {
	return Events{
		listeners:     make(map[EventType][]EventListener),
		buffer:        make([]Event, 0, 64),
		previousItems: make(map[string]bool),
		currentItems:  make(map[string]bool),
		previousRooms: make(map[string]bool),
		currentRooms:  make(map[string]bool),
		previousWalls: make(map[WallID]bool),
		currentWalls:  make(map[WallID]bool),
	}
}

// Subscribe adds a listener for an event type
func (e *Events) Subscribe(eventType EventType, listener EventListener) {
	e.listeners[eventType] = append(e.listeners[eventType], listener)
}

// Record compares a result with the previous recorded one and dispatches
// an event for every entity that started or stopped colliding.
func (e *Events) Record(result Result) {
	for _, id := range result.CollidingItems {
		e.currentItems[id] = true
	}
	for _, id := range result.CollidingRooms {
		e.currentRooms[id] = true
	}
	for _, wall := range result.CollidingWalls {
		e.currentWalls[wall] = true
	}

	e.processItemEvents(result.CollidingItems)
	e.processRoomEvents(result.CollidingRooms)
	e.processWallEvents(result.CollidingWalls)

	if result.HasCollision != e.hasCollision {
		if result.HasCollision {
			e.buffer = append(e.buffer, CollisionRaisedEvent{})
		} else {
			e.buffer = append(e.buffer, CollisionClearedEvent{})
		}
		e.hasCollision = result.HasCollision
	}

	e.flush()
}

// Enter events follow the result order; exit events are emitted in map order.
func (e *Events) processItemEvents(colliding []string) {
	for _, id := range colliding {
		if !e.previousItems[id] {
			e.buffer = append(e.buffer, ItemEnterEvent{InstanceID: id})
		}
	}
	for id := range e.previousItems {
		if !e.currentItems[id] {
			e.buffer = append(e.buffer, ItemExitEvent{InstanceID: id})
		}
	}

	e.previousItems, e.currentItems = e.currentItems, e.previousItems
	clear(e.currentItems)
}

func (e *Events) processRoomEvents(colliding []string) {
	for _, id := range colliding {
		if !e.previousRooms[id] {
			e.buffer = append(e.buffer, RoomEnterEvent{RoomID: id})
		}
	}
	for id := range e.previousRooms {
		if !e.currentRooms[id] {
			e.buffer = append(e.buffer, RoomExitEvent{RoomID: id})
		}
	}

	e.previousRooms, e.currentRooms = e.currentRooms, e.previousRooms
	clear(e.currentRooms)
}

func (e *Events) processWallEvents(colliding []WallID) {
	for _, wall := range colliding {
		if !e.previousWalls[wall] {
			e.buffer = append(e.buffer, WallEnterEvent{Wall: wall})
		}
	}
	for wall := range e.previousWalls {
		if !e.currentWalls[wall] {
			e.buffer = append(e.buffer, WallExitEvent{Wall: wall})
		}
	}

	e.previousWalls, e.currentWalls = e.currentWalls, e.previousWalls
	clear(e.currentWalls)
}

// Reset forgets the previous result, so the next Record reports every
// collision as new. Listeners are kept.
func (e *Events) Reset() {
	clear(e.previousItems)
	clear(e.previousRooms)
	clear(e.previousWalls)
	e.hasCollision = false
	e.buffer = e.buffer[:0]
}

// flush sends all buffered events and clears the buffer
func (e *Events) flush() {
	for _, event := range e.buffer {
		if listeners, ok := e.listeners[event.Type()]; ok {
			for _, listener := range listeners {
				listener(event)
			}
		}
	}
	e.buffer = e.buffer[:0]
}
