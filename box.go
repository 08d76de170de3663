package mediaview

// Box is a Child with a fixed intrinsic size.
// It reports that size clamped to the measure bound and records where it
// was placed. Hosts without a view toolkit, and the CLI, use it directly.
type Box struct {
	Name      string
	Intrinsic Size

	measured Size
	bounds   Rect
	placed   bool
}

// NewBox creates a Box with the given intrinsic dimensions.
func NewBox(name string, width, height int) *Box {
	return &Box{Name: name, Intrinsic: Size{Width: width, Height: height}}
}

// Measure returns the intrinsic size clamped to [0, max] on each axis.
func (b *Box) Measure(maxWidth, maxHeight int) Size {
	b.measured = b.Intrinsic.Clamp(Size{Width: maxWidth, Height: maxHeight})
	return b.measured
}

// Place records the committed rectangle.
func (b *Box) Place(r Rect) {
	b.bounds = r
	b.placed = true
}

// Measured returns the size from the last Measure call.
func (b *Box) Measured() Size {
	return b.measured
}

// Bounds returns the last placed rectangle.
func (b *Box) Bounds() Rect {
	return b.bounds
}

// Placed reports whether Place has been called.
func (b *Box) Placed() bool {
	return b.placed
}

// Children converts boxes to the Child slice Layout expects.
// Nil boxes become nil children so the precondition check sees them.
func Children(boxes ...*Box) []Child {
	children := make([]Child, len(boxes))
	for i, b := range boxes {
		if b != nil {
			children[i] = b
		}
	}
	return children
}
