package ui

// Base provides size, focus and screen placement for panel components.
// Embed it in component models:
//
//	type Model struct {
//	    ui.Base
//	    list list.Model[playlist.Track]
//	}
type Base struct {
	x, y          int
	width, height int
	focused       bool
}

// SetFocused sets whether the component is focused.
func (b *Base) SetFocused(focused bool) {
	b.focused = focused
}

// IsFocused returns whether the component is focused.
func (b Base) IsFocused() bool {
	return b.focused
}

// SetSize sets the component dimensions.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// SetOrigin records the screen cell of the component's top-left corner.
func (b *Base) SetOrigin(x, y int) {
	b.x = x
	b.y = y
}

// Width returns the component width.
func (b Base) Width() int {
	return b.width
}

// Height returns the component height.
func (b Base) Height() int {
	return b.height
}

// ListHeight returns available height for list content after subtracting overhead.
func (b Base) ListHeight(overhead int) int {
	return max(b.height-overhead, 0)
}

// Local translates a screen cell into component coordinates.
// ok is false when the cell falls outside the component.
func (b Base) Local(x, y int) (lx, ly int, ok bool) {
	lx, ly = x-b.x, y-b.y
	if lx < 0 || ly < 0 || lx >= b.width || ly >= b.height {
		return 0, 0, false
	}
	return lx, ly, true
}
