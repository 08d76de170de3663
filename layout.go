// layout.go re-exports the geometry the engine API is written in.
package mediaview

import "github.com/grindlemire/mediaview/internal/layout"

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// Size represents a width/height pair.
type Size = layout.Size

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect { return layout.NewRect(x, y, width, height) }

// RectLTRB creates a Rect from its left, top, right and bottom edges.
func RectLTRB(left, top, right, bottom int) Rect {
	return layout.RectLTRB(left, top, right, bottom)
}

// EdgeAll pads every side by n.
func EdgeAll(n int) Edges { return layout.EdgeAll(n) }

// EdgeTRBL builds padding in top, right, bottom, left order.
func EdgeTRBL(top, right, bottom, left int) Edges {
	return layout.EdgeTRBL(top, right, bottom, left)
}
