package layout

// Edges is the padding a container keeps clear on each side of its content.
type Edges struct {
	Top, Right, Bottom, Left int
}

// EdgeAll pads every side by n.
func EdgeAll(n int) Edges {
	return Edges{Top: n, Right: n, Bottom: n, Left: n}
}

// EdgeTRBL builds padding in top, right, bottom, left order.
func EdgeTRBL(top, right, bottom, left int) Edges {
	return Edges{Top: top, Right: right, Bottom: bottom, Left: left}
}

// Horizontal is the width the padding removes from the content box.
func (e Edges) Horizontal() int {
	return e.Left + e.Right
}

// Vertical is the height the padding removes from the content box.
func (e Edges) Vertical() int {
	return e.Top + e.Bottom
}
