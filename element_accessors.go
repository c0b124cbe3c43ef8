package tui

// ID returns the element's identity, or "" if it is anonymous.
func (e *Element) ID() string {
	return e.id
}

// IsFocusable returns whether this element can receive keyboard focus.
func (e *Element) IsFocusable() bool {
	return e.focusable
}

// SetFocusable updates whether this element can receive keyboard focus.
func (e *Element) SetFocusable(focusable bool) {
	e.focusable = focusable
}

// TabIndex returns the element's position in the tab order.
func (e *Element) TabIndex() int {
	return e.tabIndex
}

// IsFocused returns whether this element currently holds focus.
func (e *Element) IsFocused() bool {
	return e.focused
}

// setFocused flips the focus flag and fires the matching callback on a
// transition. Called by FocusManager.ApplyFocusToTree.
func (e *Element) setFocused(focused bool) {
	if e.focused == focused {
		return
	}
	e.focused = focused
	if focused {
		if e.onFocus != nil {
			e.onFocus()
		}
	} else if e.onBlur != nil {
		e.onBlur()
	}
}

// Bounds returns the last-computed layout bounds.
func (e *Element) Bounds() Rect {
	return e.bounds
}

// SetBounds records the element's computed layout bounds.
// The layout engine calls this after each layout pass.
func (e *Element) SetBounds(r Rect) {
	e.bounds = r
}
