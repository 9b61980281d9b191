package screen

// Cursor tracks the selected index of a list, wrapping at both ends.
// All methods take the current list length so the index can never land
// outside the list, including when the list is empty or just shrank.
type Cursor struct {
	pos int
}

// Up moves the selection one entry up, wrapping to the last entry.
// No-op when the list is empty.
func (c *Cursor) Up(count int) {
	if count == 0 {
		return
	}
	if c.pos > 0 {
		c.pos--
	} else {
		c.pos = count - 1
	}
}

// Down moves the selection one entry down, wrapping to the first entry.
// No-op when the list is empty.
func (c *Cursor) Down(count int) {
	if count == 0 {
		return
	}
	if c.pos < count-1 {
		c.pos++
	} else {
		c.pos = 0
	}
}

// Pos returns the selected index. Only meaningful when the list is non-empty.
func (c *Cursor) Pos() int {
	return c.pos
}

// Reset moves the selection back to the first entry.
func (c *Cursor) Reset() {
	c.pos = 0
}

// Clamp pulls the selection back into range after the list shrank.
func (c *Cursor) Clamp(count int) {
	if count == 0 {
		c.pos = 0
		return
	}
	if c.pos >= count {
		c.pos = count - 1
	}
}
