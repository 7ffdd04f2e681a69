package ui

// Cursor manages position and scroll offset for a scrollable list.
// List length and viewport height are passed to methods rather than
// stored, since they change dynamically.
type Cursor struct {
	pos    int
	offset int
	margin int
}

// NewCursor creates a cursor with the given scroll margin.
func NewCursor(margin int) Cursor {
	return Cursor{margin: margin}
}

// Pos returns the current cursor position.
func (c Cursor) Pos() int {
	return c.pos
}

// Offset returns the current scroll offset.
func (c Cursor) Offset() int {
	return c.offset
}

// Move moves the cursor by delta positions within a list of given length,
// clamping to bounds and keeping the cursor visible.
func (c *Cursor) Move(delta, listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = clampCursor(c.pos+delta, listLen-1)
	c.ensureVisible(listLen, height)
}

// Jump sets the cursor to an absolute position.
func (c *Cursor) Jump(pos, listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = clampCursor(pos, listLen-1)
	c.ensureVisible(listLen, height)
}

// JumpStart moves the cursor to position 0 and resets the offset.
func (c *Cursor) JumpStart() {
	c.pos = 0
	c.offset = 0
}

// JumpEnd moves the cursor to the last position.
func (c *Cursor) JumpEnd(listLen, height int) {
	if listLen == 0 {
		return
	}
	c.pos = listLen - 1
	c.ensureVisible(listLen, height)
}

// ClampToBounds pulls the cursor back in range after the list shrank.
// Returns true if the cursor moved.
func (c *Cursor) ClampToBounds(listLen int) bool {
	if listLen == 0 {
		moved := c.pos != 0 || c.offset != 0
		c.pos = 0
		c.offset = 0
		return moved
	}
	if c.pos > listLen-1 {
		c.pos = listLen - 1
		return true
	}
	return false
}

func (c *Cursor) ensureVisible(listLen, height int) {
	if height <= 0 || listLen == 0 {
		return
	}

	if c.pos < c.offset+c.margin {
		c.offset = max(c.pos-c.margin, 0)
	}
	if c.pos >= c.offset+height-c.margin {
		c.offset = c.pos - height + c.margin + 1
	}

	maxOffset := max(listLen-height, 0)
	c.offset = clampCursor(c.offset, maxOffset)
}

func clampCursor(v, maxVal int) int {
	if v < 0 {
		return 0
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
