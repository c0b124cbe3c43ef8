package tui

import "sync"

// ElementAt finds the deepest element containing the point (x, y).
// Children are checked in reverse order because the last child renders
// on top. Returns nil if no element contains the point.
func (e *Element) ElementAt(x, y int) *Element {
	if !e.bounds.Contains(x, y) {
		return nil
	}
	for i := len(e.children) - 1; i >= 0; i-- {
		if hit := e.children[i].ElementAt(x, y); hit != nil {
			return hit
		}
	}
	return e
}

// ElementIDAt resolves the dispatch target at (x, y): the deepest hit
// element, or its nearest identified ancestor when the hit element is
// anonymous. Satisfies MouseTargeting, so a tree root can serve as the
// router's hit-testing collaborator directly.
func (e *Element) ElementIDAt(x, y int) (string, bool) {
	hit := e.ElementAt(x, y)
	for hit != nil {
		if hit.id != "" {
			return hit.id, true
		}
		hit = hit.parent
	}
	return "", false
}

var _ MouseTargeting = (*Element)(nil)

// BoundsMap is a standalone MouseTargeting implementation: a registry of
// element ids and their last-computed layout bounds, for embedders whose
// layout engine reports bounds without exposing an element tree. Later
// registrations are treated as drawn on top and win overlapping lookups.
type BoundsMap struct {
	mu     sync.RWMutex
	order  []string
	bounds map[string]Rect
}

// NewBoundsMap creates an empty BoundsMap.
func NewBoundsMap() *BoundsMap {
	return &BoundsMap{
		bounds: make(map[string]Rect),
	}
}

// Update records or replaces the bounds for an element id.
func (b *BoundsMap) Update(id string, r Rect) {
	b.mu.Lock()
	if _, ok := b.bounds[id]; !ok {
		b.order = append(b.order, id)
	}
	b.bounds[id] = r
	b.mu.Unlock()
}

// Remove drops an element from the registry.
func (b *BoundsMap) Remove(id string) {
	b.mu.Lock()
	if _, ok := b.bounds[id]; ok {
		delete(b.bounds, id)
		for i, existing := range b.order {
			if existing == id {
				b.order = append(b.order[:i], b.order[i+1:]...)
				break
			}
		}
	}
	b.mu.Unlock()
}

// ElementIDAt returns the topmost element whose bounds contain (x, y).
func (b *BoundsMap) ElementIDAt(x, y int) (string, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for i := len(b.order) - 1; i >= 0; i-- {
		id := b.order[i]
		if b.bounds[id].Contains(x, y) {
			return id, true
		}
	}
	return "", false
}

var _ MouseTargeting = (*BoundsMap)(nil)
