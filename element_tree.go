package tui

// --- Element tree API ---

// AddChild appends children to this Element.
func (e *Element) AddChild(children ...*Element) {
	for _, child := range children {
		child.parent = e
		e.children = append(e.children, child)
	}
}

// RemoveChild removes a child from this Element, preserving the order of
// the remaining children. Returns true if the child was found and removed.
func (e *Element) RemoveChild(child *Element) bool {
	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

// RemoveAllChildren removes all children from this Element.
func (e *Element) RemoveAllChildren() {
	for _, child := range e.children {
		child.parent = nil
	}
	e.children = nil
}

// Children returns the child elements.
func (e *Element) Children() []*Element {
	return e.children
}

// Parent returns the parent element, or nil if this is the root.
func (e *Element) Parent() *Element {
	return e.parent
}

// walk visits the element and all descendants in depth-first pre-order.
// Returning false from fn stops the walk.
func (e *Element) walk(fn func(*Element) bool) bool {
	if e == nil {
		return true
	}
	if !fn(e) {
		return false
	}
	for _, child := range e.children {
		if !child.walk(fn) {
			return false
		}
	}
	return true
}

// Walk visits the element and all descendants in depth-first pre-order.
func (e *Element) Walk(fn func(*Element)) {
	e.walk(func(el *Element) bool {
		fn(el)
		return true
	})
}

// childAt follows a path of child-array indices from this element.
// Returns nil as soon as an index is out of range.
func (e *Element) childAt(path []int) *Element {
	node := e
	for _, idx := range path {
		if idx < 0 || idx >= len(node.children) {
			return nil
		}
		node = node.children[idx]
	}
	return node
}
