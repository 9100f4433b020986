package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/akmonengine/floorplan"
	"github.com/akmonengine/floorplan/config"
	"github.com/akmonengine/floorplan/layout"
	"github.com/go-gl/mathgl/mgl64"
)

// EventPrinter prints the collision transitions of a drag
type EventPrinter struct{}

func (p *EventPrinter) Subscribe(events *floorplan.Events) {
	events.Subscribe(floorplan.ITEM_ENTER, func(e floorplan.Event) {
		fmt.Printf("   ⛔ item %s collides\n", e.(floorplan.ItemEnterEvent).InstanceID)
	})
	events.Subscribe(floorplan.ITEM_EXIT, func(e floorplan.Event) {
		fmt.Printf("   ✅ item %s is free\n", e.(floorplan.ItemExitEvent).InstanceID)
	})
	events.Subscribe(floorplan.WALL_ENTER, func(e floorplan.Event) {
		fmt.Printf("   🧱 wall %s crossed\n", e.(floorplan.WallEnterEvent).Wall)
	})
	events.Subscribe(floorplan.WALL_EXIT, func(e floorplan.Event) {
		fmt.Printf("   🧱 wall %s cleared\n", e.(floorplan.WallExitEvent).Wall)
	})
	events.Subscribe(floorplan.COLLISION_RAISED, func(floorplan.Event) {
		fmt.Println("   🔔 plan has collisions")
	})
	events.Subscribe(floorplan.COLLISION_CLEARED, func(floorplan.Event) {
		fmt.Println("   🔕 plan is clear")
	})
}

// SetupScene creates a two room apartment with a sofa to drag around
func SetupScene() (*layout.Snapshot, int) {
	living := layout.NewRectRoom("Living room", mgl64.Vec2{0, 0}, 6, 4, 2.6, 0.15)
	kitchen := layout.NewPolygonRoom("Kitchen", mgl64.Vec2{3.2, -2},
		[]mgl64.Vec2{{0, 0}, {3, 0}, {3, 4}, {1, 4}, {0, 3}}, 2.6, 0.15)

	snapshot := &layout.Snapshot{
		Rooms: []layout.Room{living, kitchen},
		Items: []layout.Item{
			layout.NewItem("modern-sofa", mgl64.Vec3{-1, 0, 0}, 0),
			layout.NewItem("coffee-table", mgl64.Vec3{-1, 0, 1}, 0),
			layout.NewItem("floor-lamp", mgl64.Vec3{-2.5, 0, -1.5}, 0),
		},
		Catalog: layout.DefaultCatalog(),
	}
	return snapshot, 0
}

func loadPlan(path string) (*layout.Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return layout.Decode(f)
}

func main() {
	planPath := flag.String("plan", "", "floor plan JSON file; a demo plan is used when empty")
	configPath := flag.String("config", "", "detection config JSON file")
	drag := flag.Int("drag", -1, "index of the item to drag along +X, -1 to check the plan once")
	steps := flag.Int("steps", 12, "drag steps")
	stride := flag.Float64("stride", 0.25, "drag distance per step, in meters")
	flag.Parse()

	cfg := config.Defaults()
	if *configPath != "" {
		loaded, err := config.LoadDetectionConfig(*configPath)
		if err != nil {
			log.Fatalf("loading config: %v", err)
		}
		cfg = loaded
	}

	precision, err := floorplan.PrecisionFromString(cfg.GetPrecision())
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	detector := floorplan.NewDetector(precision)

	var snapshot *layout.Snapshot
	if *planPath != "" {
		if snapshot, err = loadPlan(*planPath); err != nil {
			log.Fatalf("loading plan: %v", err)
		}
	} else {
		var dragged int
		snapshot, dragged = SetupScene()
		if *drag < 0 {
			*drag = dragged
		}
	}

	fmt.Printf("Plan: %d rooms, %d items, precision %s\n", len(snapshot.Rooms), len(snapshot.Items), precision)

	if *drag < 0 || *drag >= len(snapshot.Items) {
		printResult(detector.Detect(snapshot, cfg.GetEnabled()))
		return
	}

	events := floorplan.NewEvents()
	(&EventPrinter{}).Subscribe(&events)

	for step := 0; step < *steps; step++ {
		item := &snapshot.Items[*drag]
		fmt.Printf("--- STEP %d: %s at %v ---\n", step+1, item.TemplateID, item.Position)

		events.Record(detector.Detect(snapshot, cfg.GetEnabled()))
		item.Position = item.Position.Add(mgl64.Vec3{*stride, 0, 0})
	}

	fmt.Println("Final state:")
	printResult(detector.Detect(snapshot, cfg.GetEnabled()))
}

func printResult(result floorplan.Result) {
	for _, skip := range result.Skipped {
		fmt.Printf("skipped %s: %v\n", skip.ID, skip.Err)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		log.Fatalf("encoding result: %v", err)
	}
}
