package tui

// Option configures an Element.
type Option func(*Element)

// WithID assigns a stable identity used as the dispatch key for messages,
// hierarchy building, and focus lookup.
func WithID(id string) Option {
	return func(e *Element) {
		e.id = id
	}
}

// WithFocusable marks the element as able to receive keyboard focus.
func WithFocusable() Option {
	return func(e *Element) {
		e.focusable = true
	}
}

// WithTabIndex sets the element's position in the tab order.
// Lower values are visited first; ties keep tree encounter order.
func WithTabIndex(index int) Option {
	return func(e *Element) {
		e.tabIndex = index
	}
}

// WithChildren appends child elements.
func WithChildren(children ...*Element) Option {
	return func(e *Element) {
		e.AddChild(children...)
	}
}

// WithBounds sets the element's layout bounds. Normally the layout engine
// writes these after each layout pass; the option exists for tests and for
// embedding without a layout engine.
func WithBounds(r Rect) Option {
	return func(e *Element) {
		e.bounds = r
	}
}

// WithOnFocus sets a callback invoked when focus is applied to this element.
func WithOnFocus(fn func()) Option {
	return func(e *Element) {
		e.onFocus = fn
	}
}

// WithOnBlur sets a callback invoked when this element loses focus.
func WithOnBlur(fn func()) Option {
	return func(e *Element) {
		e.onBlur = fn
	}
}
