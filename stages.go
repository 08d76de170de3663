package mediaview

// frame is the content origin and available area shared by every stage.
type frame struct {
	left, top int
	avail     Size
}

func newFrame(c Container) frame {
	return frame{
		left:  c.Padding.Left,
		top:   c.Padding.Top,
		avail: c.Available(),
	}
}

// attachmentStage carries the resolved attachment box into the later stages.
type attachmentStage struct {
	rect Rect
}

// textStack carries the resolved title and description boxes.
type textStack struct {
	title       Rect
	description Rect
}

// height is the combined height of the text band the icon centers against.
func (s textStack) height() int {
	return s.title.Height + s.description.Height
}

// placeAttachment sizes the attachment against the full width and a
// ratio-capped share of the height, leaving room for the text below.
func (e *Engine) placeAttachment(f frame, child Child) attachmentStage {
	bound := Size{
		Width:  f.avail.Width,
		Height: int(e.attachmentHeightRatio * float64(f.avail.Height)),
	}
	size := e.measure(RoleAttachment, child, bound)

	r := NewRect(f.left, f.top, size.Width, size.Height)
	child.Place(r)
	e.log().Debug("attachment placed", "rect", r, "bound", bound)
	return attachmentStage{rect: r}
}

// placeTextStack stacks title then description beneath the attachment.
// Each is bounded by the full available area rather than the remainder, so
// the stack may run past the container when the text is tall.
func (e *Engine) placeTextStack(f frame, att attachmentStage, title, description Child) textStack {
	ts := e.measure(RoleTitle, title, f.avail)
	titleRect := NewRect(f.left, att.rect.Bottom(), ts.Width, ts.Height)
	title.Place(titleRect)

	ds := e.measure(RoleDescription, description, f.avail)
	descRect := NewRect(f.left, titleRect.Bottom(), ds.Width, ds.Height)
	description.Place(descRect)

	e.log().Debug("text stack placed", "title", titleRect, "description", descRect)
	return textStack{title: titleRect, description: descRect}
}

// placeIcon right-aligns the icon with the attachment and centers it on the
// text band. Go's integer division truncates toward zero, so an icon taller
// than the band rises above the band's top edge.
func (e *Engine) placeIcon(f frame, att attachmentStage, stack textStack, icon Child) Rect {
	size := e.measure(RoleIcon, icon, f.avail)

	top := att.rect.Bottom() + (stack.height()-size.Height)/2
	right := att.rect.Right()
	r := RectLTRB(right-size.Width, top, right, top+size.Height)
	icon.Place(r)

	e.log().Debug("icon placed", "rect", r, "band", stack.height())
	return r
}

func (e *Engine) measure(role Role, child Child, bound Size) Size {
	size := child.Measure(bound.Width, bound.Height)
	if !size.Fits(bound) {
		e.log().Warn("child measured beyond its bound", "role", role, "size", size, "bound", bound)
	}
	return size
}
