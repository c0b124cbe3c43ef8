package tui

import (
	"fmt"
	"sync"
	"time"

	"github.com/entrepeneur4lyf/reactive-tui-go/internal/debug"
)

// ComponentHandler processes one element visit during three-phase
// routing. The context carries the phase; handlers that only care about
// one phase self-filter on ctx.Phase. There are no separate capture and
// bubble registrations — a deliberate simplification of DOM semantics.
type ComponentHandler func(ctx *EventContext, msg Message)

// MouseTargeting resolves which element occupies a screen coordinate,
// using last-computed layout bounds. The element tree itself implements
// this; a standalone BoundsMap is available when no tree is at hand.
type MouseTargeting interface {
	// ElementIDAt returns the id of the element at (x, y), or
	// ("", false) when no identified element contains the point.
	ElementIDAt(x, y int) (string, bool)
}

// EventRouter bridges raw driver events into the message pipeline and
// runs DOM-style capture/target/bubble dispatch over component handlers.
// Mouse events resolve their target by hit-testing; keyboard events
// always go to the focused element, never to a coordinate.
type EventRouter struct {
	messages *MessageManager
	focus    *FocusManager
	targets  MouseTargeting

	mu sync.RWMutex
	// component handlers: element id -> message kind -> handlers
	handlers map[string]map[string][]ComponentHandler
}

// NewEventRouter creates a router over the given collaborators. targets
// may be nil, in which case every mouse event dispatches globally.
func NewEventRouter(messages *MessageManager, focus *FocusManager, targets MouseTargeting) *EventRouter {
	return &EventRouter{
		messages: messages,
		focus:    focus,
		targets:  targets,
		handlers: make(map[string]map[string][]ComponentHandler),
	}
}

// SetMouseTargeting swaps the hit-testing collaborator, typically after
// the element tree is rebuilt.
func (r *EventRouter) SetMouseTargeting(targets MouseTargeting) {
	r.mu.Lock()
	r.targets = targets
	r.mu.Unlock()
}

// RegisterHandler adds a component handler for one element and message
// kind. The same handler list serves all three phases.
func (r *EventRouter) RegisterHandler(elementID, kind string, fn ComponentHandler) {
	r.mu.Lock()
	kinds, ok := r.handlers[elementID]
	if !ok {
		kinds = make(map[string][]ComponentHandler)
		r.handlers[elementID] = kinds
	}
	kinds[kind] = append(kinds[kind], fn)
	r.mu.Unlock()
}

// RemoveElementHandlers drops all component handlers for an element.
func (r *EventRouter) RemoveElementHandlers(elementID string) {
	r.mu.Lock()
	delete(r.handlers, elementID)
	r.mu.Unlock()
}

// ProcessEventPhases dispatches msg to targetID in three phases: capture
// walks the ancestor path from the root down to (excluding) the target,
// the target phase visits the target itself, and bubble walks back up to
// the root. Stop flags are rechecked at every step; a stopped dispatch
// returns immediately with the context as it stood. The returned context
// exposes the final prevent-default and stop flags.
func (r *EventRouter) ProcessEventPhases(targetID string, msg Message) *EventContext {
	ctx := &EventContext{
		TargetElement: targetID,
		Phase:         PhaseCapture,
		Timestamp:     time.Now(),
	}

	path := r.messages.GetElementPath(targetID)
	if len(path) == 0 {
		path = []string{targetID}
	}
	ancestors := path[:len(path)-1]
	debug.Log("EventRouter.ProcessEventPhases: target=%q kind=%q ancestors=%v", targetID, msg.Kind(), ancestors)

	for _, id := range ancestors {
		r.invokeHandlers(ctx, id, msg)
		if ctx.stopped() {
			return ctx
		}
	}

	ctx.Phase = PhaseTarget
	r.invokeHandlers(ctx, targetID, msg)
	if ctx.stopped() {
		return ctx
	}

	ctx.Phase = PhaseBubble
	for i := len(ancestors) - 1; i >= 0; i-- {
		r.invokeHandlers(ctx, ancestors[i], msg)
		if ctx.stopped() {
			return ctx
		}
	}
	return ctx
}

// invokeHandlers runs the component handlers registered for one element
// and the message's kind, honoring StopImmediatePropagation between
// handlers.
func (r *EventRouter) invokeHandlers(ctx *EventContext, elementID string, msg Message) {
	r.mu.RLock()
	var handlers []ComponentHandler
	if kinds, ok := r.handlers[elementID]; ok {
		handlers = append(handlers, kinds[msg.Kind()]...)
	}
	r.mu.RUnlock()

	ctx.CurrentElement = elementID
	for _, fn := range handlers {
		fn(ctx, msg)
		if ctx.stopImmediate {
			return
		}
	}
}

// RouteMouseEvent converts a driver mouse event into a ClickMessage and
// sends it through the bubbling path, addressed to the hit-tested element
// or globally when nothing is under the cursor. Event kinds with no
// message mapping (drags, wheel motion) are a reported error — silently
// dropping them would hide a driver integration gap.
func (r *EventRouter) RouteMouseEvent(event MouseEvent) error {
	if event.Action != MousePress && event.Action != MouseRelease {
		return fmt.Errorf("no message mapping for mouse action %d", event.Action)
	}
	switch event.Button {
	case MouseLeft, MouseMiddle, MouseRight:
	default:
		return fmt.Errorf("no message mapping for mouse button %q", event.Button)
	}

	msg := ClickMessage{X: event.X, Y: event.Y, Button: event.Button.String()}

	r.mu.RLock()
	targets := r.targets
	r.mu.RUnlock()

	if targets != nil {
		if id, ok := targets.ElementIDAt(event.X, event.Y); ok {
			debug.Log("EventRouter.RouteMouseEvent: hit %q at (%d,%d)", id, event.X, event.Y)
			r.messages.SendFrom(id, msg)
			return nil
		}
	}
	debug.Log("EventRouter.RouteMouseEvent: miss at (%d,%d), dispatching globally", event.X, event.Y)
	r.messages.Send(msg)
	return nil
}

// RouteKeyEvent converts a driver key event into a KeyPressMessage
// addressed to the currently focused element. With no focus the message
// dispatches globally; focus absence is a normal state, not an error.
func (r *EventRouter) RouteKeyEvent(event KeyEvent) {
	msg := KeyPressMessage{
		Key:       keyName(event),
		Modifiers: event.Mod.Names(),
	}

	var focused *FocusableElement
	if r.focus != nil {
		focused = r.focus.Focused()
	}
	if focused == nil {
		debug.Log("EventRouter.RouteKeyEvent: no focus, dispatching %q globally", msg.Key)
		r.messages.Send(msg)
		return
	}
	msg.ElementID = focused.ID
	r.messages.SendFrom(focused.ID, msg)
}
