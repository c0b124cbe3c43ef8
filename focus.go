package tui

import (
	"fmt"
	"sort"

	"github.com/samber/lo"

	"github.com/entrepeneur4lyf/reactive-tui-go/internal/debug"
)

// FocusableElement is a snapshot of one focusable node taken during
// BuildFocusList: its id, tab index, and the path of child-array indices
// needed to re-locate the node from the root. Valid only until the next
// rebuild.
type FocusableElement struct {
	ID       string
	TabIndex int
	Path     []int
}

// FocusInfo is a read-only snapshot of focus state for diagnostics.
type FocusInfo struct {
	// TotalFocusable is the number of focusable elements found at the
	// last rebuild.
	TotalFocusable int
	// CurrentIndex is the focused element's position within the tab
	// order, or -1 when nothing is focused.
	CurrentIndex int
	// CurrentElement is the focused element's id, or "" when nothing
	// is focused.
	CurrentElement string
}

// FocusManager tracks keyboard focus across the focusable elements of one
// element tree. It does NOT automatically handle Tab navigation; the
// caller controls when focus moves by calling Next(), Prev(), or
// FocusByID(). Rebuild the list with BuildFocusList whenever the tree
// changes shape.
//
// Absence of focus is a normal state: every operation on an empty or
// focus-less manager degrades to a no-op/nil rather than erroring.
type FocusManager struct {
	elements []FocusableElement // Focusable elements in tree (pre-order) order
	order    []int              // Indices into elements, ascending tab index, stable
	current  int                // Index into elements of the focused one (-1 = none)
}

// NewFocusManager creates an empty FocusManager.
// Use BuildFocusList to populate it from an element tree.
func NewFocusManager() *FocusManager {
	return &FocusManager{
		current: -1,
	}
}

// BuildFocusList resets the manager and repopulates it from the tree in a
// single pass: every node with the focusable flag set is collected in
// depth-first pre-order along with its tree path, the tab order is derived
// by a stable sort on ascending tab index, and focus resets to the first
// focusable element in tree order (or none if there are no focusable
// elements). Idempotent given an unchanged tree.
func (f *FocusManager) BuildFocusList(root *Element) {
	f.elements = nil
	f.order = nil
	f.current = -1

	var path []int
	var collect func(el *Element)
	collect = func(el *Element) {
		if el.IsFocusable() {
			f.elements = append(f.elements, FocusableElement{
				ID:       el.ID(),
				TabIndex: el.TabIndex(),
				Path:     append([]int(nil), path...),
			})
		}
		for i, child := range el.Children() {
			path = append(path, i)
			collect(child)
			path = path[:len(path)-1]
		}
	}
	if root != nil {
		collect(root)
	}

	f.order = make([]int, len(f.elements))
	for i := range f.order {
		f.order[i] = i
	}
	sort.SliceStable(f.order, func(a, b int) bool {
		return f.elements[f.order[a]].TabIndex < f.elements[f.order[b]].TabIndex
	})

	if len(f.elements) > 0 {
		f.current = 0
	}
	debug.Log("FocusManager.BuildFocusList: %d focusable elements, current=%d", len(f.elements), f.current)
}

// Next advances focus to the next element in tab order, wrapping around
// at the end. From the no-focus state it starts at the first element in
// tab order. Returns the newly focused element, or nil if there are no
// focusable elements.
func (f *FocusManager) Next() *FocusableElement {
	if len(f.order) == 0 {
		return nil
	}
	pos := f.orderPos()
	if pos == -1 {
		pos = 0
	} else {
		pos = (pos + 1) % len(f.order)
	}
	f.current = f.order[pos]
	debug.Log("FocusManager.Next: focused %q (order pos %d)", f.elements[f.current].ID, pos)
	return &f.elements[f.current]
}

// Prev retreats focus to the previous element in tab order, wrapping
// around at the beginning. From the no-focus state it starts at the last
// element in tab order. Returns the newly focused element, or nil if
// there are no focusable elements.
func (f *FocusManager) Prev() *FocusableElement {
	if len(f.order) == 0 {
		return nil
	}
	pos := f.orderPos()
	if pos == -1 {
		pos = len(f.order) - 1
	} else {
		pos--
		if pos < 0 {
			pos = len(f.order) - 1
		}
	}
	f.current = f.order[pos]
	debug.Log("FocusManager.Prev: focused %q (order pos %d)", f.elements[f.current].ID, pos)
	return &f.elements[f.current]
}

// FocusByID moves focus to the element with the given id. On a miss the
// focus state is left unchanged and nil is returned; a miss is a lookup
// signal, not an error.
func (f *FocusManager) FocusByID(id string) *FocusableElement {
	_, idx, found := lo.FindIndexOf(f.elements, func(el FocusableElement) bool {
		return el.ID == id
	})
	if !found {
		return nil
	}
	f.current = idx
	return &f.elements[f.current]
}

// Focused returns the currently focused element, or nil if none.
func (f *FocusManager) Focused() *FocusableElement {
	if f.current < 0 || f.current >= len(f.elements) {
		return nil
	}
	return &f.elements[f.current]
}

// ApplyFocusToTree clears the focused flag from every node in the tree,
// then sets it on exactly the node reachable via the current focus's
// recorded path. This is the sole mutation bridge back into the element
// tree. Returns an error if the recorded path no longer resolves — the
// tree changed shape without a BuildFocusList, which is a caller bug
// worth surfacing early.
func (f *FocusManager) ApplyFocusToTree(root *Element) error {
	if root == nil {
		return nil
	}
	root.Walk(func(el *Element) {
		el.setFocused(false)
	})
	focused := f.Focused()
	if focused == nil {
		return nil
	}
	node := root.childAt(focused.Path)
	if node == nil {
		return fmt.Errorf("stale focus path %v for element %q: rebuild the focus list after tree changes", focused.Path, focused.ID)
	}
	node.setFocused(true)
	return nil
}

// Info returns a read-only snapshot of the focus state.
func (f *FocusManager) Info() FocusInfo {
	info := FocusInfo{
		TotalFocusable: len(f.elements),
		CurrentIndex:   f.orderPos(),
	}
	if focused := f.Focused(); focused != nil {
		info.CurrentElement = focused.ID
	}
	return info
}

// orderPos returns the current focus's position within the tab order,
// or -1 if nothing is focused.
func (f *FocusManager) orderPos() int {
	if f.current < 0 {
		return -1
	}
	return lo.IndexOf(f.order, f.current)
}
