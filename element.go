package tui

// Element is a node in the UI tree as seen by the dispatch core: an
// optional identity, focus properties, and ordered children. Layout and
// visual properties live in the rendering layer; the only layout artifact
// this core consumes is the last-computed bounds rectangle, which the
// layout engine writes back via SetBounds for mouse hit-testing.
type Element struct {
	// Tree structure (single source of truth)
	children []*Element
	parent   *Element

	// Identity. Empty means the element is anonymous: it cannot be a
	// dispatch target and is skipped transparently when building the
	// bubbling hierarchy.
	id string

	// Focus properties
	focusable bool
	focused   bool
	tabIndex  int
	onFocus   func()
	onBlur    func()

	// Last-computed layout bounds, used for hit-testing.
	bounds Rect
}

// New creates a new Element with the given options.
// By default, an Element is anonymous, not focusable, and has tab index 0.
func New(opts ...Option) *Element {
	e := &Element{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
