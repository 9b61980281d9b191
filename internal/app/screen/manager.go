package screen

// Manager keeps the stack of open screens. The top of the stack receives
// key input; popping it resumes whichever screen was underneath, which is
// how a loading overlay hands control back to the view it covered.
type Manager struct {
	current Screen
	stack   []Screen
}

// NewManager creates an empty screen manager.
func NewManager() *Manager {
	return &Manager{
		stack: make([]Screen, 0),
	}
}

// Push opens a screen on top of the current one.
func (m *Manager) Push(s Screen) {
	if s == nil {
		return
	}
	if m.current != nil {
		m.stack = append(m.stack, m.current)
	}
	m.current = s
}

// Pop closes the current screen and resumes the previous one.
// Returns the screen that was closed, or nil if none was open.
func (m *Manager) Pop() Screen {
	removed := m.current
	if len(m.stack) > 0 {
		m.current = m.stack[len(m.stack)-1]
		m.stack = m.stack[:len(m.stack)-1]
	} else {
		m.current = nil
	}
	return removed
}

// Current returns the screen on top of the stack, or nil if none is open.
func (m *Manager) Current() Screen {
	return m.current
}

// Under returns the screen directly below the current one, or nil.
// Used to render the covered view behind a modal overlay.
func (m *Manager) Under() Screen {
	if len(m.stack) == 0 {
		return nil
	}
	return m.stack[len(m.stack)-1]
}

// IsActive reports whether any screen is open.
func (m *Manager) IsActive() bool {
	return m.current != nil
}

// Type returns the type of the current screen, or TypeNone if none is open.
func (m *Manager) Type() Type {
	if m.current == nil {
		return TypeNone
	}
	return m.current.Type()
}

// Clear closes every screen.
func (m *Manager) Clear() {
	m.current = nil
	m.stack = m.stack[:0]
}

// Depth returns the number of screens below the current one.
func (m *Manager) Depth() int {
	return len(m.stack)
}
