package layout

import "github.com/go-gl/mathgl/mgl64"

// Catalog resolves a template id to the size of the furniture it describes
type Catalog interface {
	Dimensions(templateID string) (mgl64.Vec3, bool)
}

// Template describes a piece of furniture independently of where it is placed
type Template struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Dimensions mgl64.Vec3 `json:"dimensions"` // width, height, depth in meters
}

// Templates is a Catalog backed by a map keyed by template id
type Templates map[string]Template

func (t Templates) Dimensions(templateID string) (mgl64.Vec3, bool) {
	template, ok := t[templateID]
	if !ok {
		return mgl64.Vec3{}, false
	}
	return template.Dimensions, true
}

// NewTemplates indexes a list of templates by id
func NewTemplates(templates ...Template) Templates {
	t := make(Templates, len(templates))
	for _, template := range templates {
		t[template.ID] = template
	}
	return t
}

var defaultTemplates = []Template{
	{ID: "modern-sofa", Name: "Modern Sofa", Dimensions: mgl64.Vec3{2, 0.8, 0.9}},
	{ID: "armchair", Name: "Lounge Chair", Dimensions: mgl64.Vec3{0.8, 0.9, 0.8}},
	{ID: "coffee-table", Name: "Coffee Table", Dimensions: mgl64.Vec3{1.2, 0.4, 0.6}},
	{ID: "dining-table", Name: "Dining Table", Dimensions: mgl64.Vec3{1.8, 0.75, 0.9}},
	{ID: "king-bed", Name: "King Bed", Dimensions: mgl64.Vec3{2, 0.6, 2.2}},
	{ID: "floor-lamp", Name: "Floor Lamp", Dimensions: mgl64.Vec3{0.3, 1.8, 0.3}},
	{ID: "potted-plant", Name: "Monstera", Dimensions: mgl64.Vec3{0.5, 1.2, 0.5}},
	{ID: "area-rug", Name: "Area Rug", Dimensions: mgl64.Vec3{3, 0.05, 2}},
	{ID: "standard-door", Name: "Internal Door", Dimensions: mgl64.Vec3{0.9, 2.1, 0.1}},
	{ID: "glass-door", Name: "Glass Door", Dimensions: mgl64.Vec3{1.6, 2.1, 0.1}},
	{ID: "axolotl-aquarium", Name: "Axolotl Aquarium", Dimensions: mgl64.Vec3{0.6, 0.7, 0.4}},
}

// DefaultCatalog returns the built-in furniture store. The returned map is a
// fresh copy and may be extended by the caller.
func DefaultCatalog() Templates {
	return NewTemplates(defaultTemplates...)
}
