package tui

import (
	"github.com/entrepeneur4lyf/reactive-tui-go/internal/debug"
)

// Core is the application-shell owner of the dispatch subsystem: one
// focus manager, one message manager, and one event router bound to one
// element tree. Construct a Core per tree; nothing here is global, so
// independent trees (and tests) never share state.
type Core struct {
	root     *Element
	focus    *FocusManager
	messages *MessageManager
	router   *EventRouter

	// Element ids present at the last Rebuild, in tree order.
	// Diffed on the next Rebuild to emit mount/unmount messages.
	knownIDs []string
}

// NewCore wires a focus manager, message manager, and router around the
// given tree and performs the initial Rebuild, emitting mount messages
// for every identified element already in the tree.
func NewCore(root *Element) *Core {
	c := &Core{
		root:     root,
		focus:    NewFocusManager(),
		messages: NewMessageManager(),
	}
	c.router = NewEventRouter(c.messages, c.focus, root)
	c.Rebuild()
	return c
}

// Root returns the element tree this core is bound to.
func (c *Core) Root() *Element { return c.root }

// Focus returns the focus manager.
func (c *Core) Focus() *FocusManager { return c.focus }

// Messages returns the message manager.
func (c *Core) Messages() *MessageManager { return c.messages }

// Router returns the event router.
func (c *Core) Router() *EventRouter { return c.router }

// Rebuild re-derives all tree-shaped state after a structural change:
// the focus list, the bubbling hierarchy, and the mount bookkeeping.
// Elements that appeared since the last rebuild receive a MountMessage;
// elements that disappeared receive an UnmountMessage and then have
// their handlers, hierarchy entries, and listeners removed.
//
// Must not be called from inside a message handler; queue a follow-up
// through Messages().QueueMessage instead.
func (c *Core) Rebuild() {
	c.focus.BuildFocusList(c.root)
	c.messages.BuildHierarchyFromElement(c.root, "")

	var currentIDs []string
	current := make(map[string]bool)
	if c.root != nil {
		c.root.Walk(func(el *Element) {
			if id := el.ID(); id != "" && !current[id] {
				current[id] = true
				currentIDs = append(currentIDs, id)
			}
		})
	}

	known := make(map[string]bool, len(c.knownIDs))
	for _, id := range c.knownIDs {
		known[id] = true
	}

	for _, id := range c.knownIDs {
		if !current[id] {
			debug.Log("Core.Rebuild: unmounting %q", id)
			c.messages.SendFrom(id, UnmountMessage{ElementID: id})
			c.messages.RemoveElementHandlers(id)
			c.router.RemoveElementHandlers(id)
		}
	}
	for _, id := range currentIDs {
		if !known[id] {
			debug.Log("Core.Rebuild: mounting %q", id)
			c.messages.SendFrom(id, MountMessage{ElementID: id})
		}
	}
	c.knownIDs = currentIDs
}

// RouteEvent bridges one driver event into the dispatch pipeline.
// Keyboard events go to the focused element (with Tab and Shift+Tab
// additionally moving focus after the keypress dispatches); mouse events
// hit-test the tree. Resize is a layout concern and is ignored here.
// The only error surface is a mouse event kind with no message mapping.
func (c *Core) RouteEvent(event Event) error {
	switch ev := event.(type) {
	case KeyEvent:
		c.router.RouteKeyEvent(ev)
		if ev.Key == KeyTab {
			if ev.Mod.Has(ModShift) {
				return c.FocusPrev()
			}
			if ev.Mod == ModNone {
				return c.FocusNext()
			}
		}
		return nil
	case MouseEvent:
		return c.router.RouteMouseEvent(ev)
	default:
		return nil
	}
}

// FocusNext moves focus to the next element in tab order, applies the
// focused flags back into the tree, and emits blur/focus messages for
// the elements losing and gaining focus.
func (c *Core) FocusNext() error {
	return c.moveFocus(c.focus.Next)
}

// FocusPrev moves focus to the previous element in tab order, applies
// the focused flags back into the tree, and emits blur/focus messages.
func (c *Core) FocusPrev() error {
	return c.moveFocus(c.focus.Prev)
}

// FocusByID moves focus to the element with the given id, applying tree
// flags and emitting blur/focus messages. A miss leaves focus unchanged.
func (c *Core) FocusByID(id string) error {
	return c.moveFocus(func() *FocusableElement {
		return c.focus.FocusByID(id)
	})
}

func (c *Core) moveFocus(move func() *FocusableElement) error {
	previous := c.focus.Focused()
	next := move()
	if next == nil {
		return nil
	}
	if previous != nil && previous.ID == next.ID {
		return nil
	}
	if err := c.focus.ApplyFocusToTree(c.root); err != nil {
		return err
	}
	if previous != nil && previous.ID != "" {
		c.messages.SendFrom(previous.ID, BlurMessage{ElementID: previous.ID})
	}
	if next.ID != "" {
		c.messages.SendFrom(next.ID, FocusMessage{ElementID: next.ID})
	}
	return nil
}
