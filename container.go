package mediaview

// Container is the measured box the children are laid out in.
// Values are taken as given; negative or oversized padding yields
// degenerate but well-defined geometry.
type Container struct {
	Width, Height int
	Padding       Edges
}

// Available returns the container size minus padding on each side.
func (c Container) Available() Size {
	return Size{
		Width:  c.Width - c.Padding.Horizontal(),
		Height: c.Height - c.Padding.Vertical(),
	}
}

// ContentRect returns the padded content box in container coordinates.
func (c Container) ContentRect() Rect {
	return NewRect(0, 0, c.Width, c.Height).Inset(c.Padding)
}
