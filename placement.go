package mediaview

// Placements holds the rectangle committed to each child, in container coordinates.
type Placements struct {
	Attachment  Rect
	Title       Rect
	Description Rect
	Icon        Rect
}

// Get returns the rectangle for role. Unknown roles yield a zero Rect.
func (p Placements) Get(role Role) Rect {
	switch role {
	case RoleAttachment:
		return p.Attachment
	case RoleTitle:
		return p.Title
	case RoleDescription:
		return p.Description
	case RoleIcon:
		return p.Icon
	default:
		return Rect{}
	}
}

// All returns the rectangles in child order.
func (p Placements) All() [ChildCount]Rect {
	return [ChildCount]Rect{p.Attachment, p.Title, p.Description, p.Icon}
}

// Bounds returns the smallest rectangle covering every non-empty placement.
func (p Placements) Bounds() Rect {
	var r Rect
	for _, pr := range p.All() {
		r = r.Union(pr)
	}
	return r
}

// Overflow returns the roles whose rectangle leaves the container's content box.
// The text stack is bounded only by the full available height, so a tall
// stack can run past the bottom padding; the engine reports this but never
// corrects it.
func (p Placements) Overflow(c Container) []Role {
	content := c.ContentRect()
	var roles []Role
	for _, role := range Roles {
		if !content.ContainsRect(p.Get(role)) {
			roles = append(roles, role)
		}
	}
	return roles
}
