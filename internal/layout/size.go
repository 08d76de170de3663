package layout

// Size represents a width/height pair.
type Size struct {
	Width, Height int
}

// Clamp returns s limited to [0, bound] on each axis.
// A negative bound clamps that axis to zero.
func (s Size) Clamp(bound Size) Size {
	return Size{
		Width:  clamp(s.Width, 0, bound.Width),
		Height: clamp(s.Height, 0, bound.Height),
	}
}

// Fits reports whether s is within bound on both axes.
func (s Size) Fits(bound Size) bool {
	return s.Width <= bound.Width && s.Height <= bound.Height
}

// clamp restricts v to the range [minVal, maxVal].
// If minVal > maxVal, minVal wins.
func clamp(v, minVal, maxVal int) int {
	if maxVal < minVal {
		maxVal = minVal
	}
	return min(max(v, minVal), maxVal)
}
