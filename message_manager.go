package tui

import (
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/entrepeneur4lyf/reactive-tui-go/internal/debug"
)

// Handler processes one dispatched message event. Handlers run
// synchronously to completion and may pull the event's stop levers;
// they must not mutate the shared payload.
type Handler func(*MessageEvent)

// asyncQueueCapacity bounds the async channel. SendAsync reports an
// error instead of blocking when the consumer has fallen this far behind.
const asyncQueueCapacity = 128

// MessageManager is the typed pub/sub bus: per-element and global
// handlers keyed by message kind, a child-to-parent hierarchy for
// bubbling, a FIFO batch queue, and a single-consumer async channel.
//
// Each internal structure is guarded by its own lock, so dispatch under
// one structure never blocks on mutation of another. The flip side is
// that cross-structure atomicity is not guaranteed: a hierarchy update
// concurrent with a dispatch may be observed mid-ascent. Hierarchy
// mutation (mount/unmount) is rare relative to dispatch, so the
// throughput win is worth the weaker consistency.
//
// Handlers must not synchronously trigger structural rebuilds of the
// structures they are being dispatched from; defer such work through
// QueueMessage instead.
type MessageManager struct {
	handlerMu sync.RWMutex
	global    map[string][]Handler            // kind -> handlers, registration order
	element   map[string]map[string][]Handler // element id -> kind -> handlers

	hierarchyMu sync.RWMutex
	hierarchy   map[string]string // child id -> parent id

	queueMu sync.Mutex
	queue   []*MessageEvent

	async         chan *MessageEvent
	receiverMu    sync.Mutex
	receiverTaken bool

	listenerMu sync.Mutex
	listeners  []*MessageListener // sorted descending by priority, stable
}

// NewMessageManager creates an empty MessageManager.
func NewMessageManager() *MessageManager {
	return &MessageManager{
		global:    make(map[string][]Handler),
		element:   make(map[string]map[string][]Handler),
		hierarchy: make(map[string]string),
		async:     make(chan *MessageEvent, asyncQueueCapacity),
	}
}

// On registers a global handler for the given message kind. Global
// handlers fire after bubbling completes, in registration order, unless
// a handler stopped propagation.
func (m *MessageManager) On(kind string, fn Handler) {
	m.handlerMu.Lock()
	m.global[kind] = append(m.global[kind], fn)
	m.handlerMu.Unlock()
}

// OnElement registers a handler for the given message kind scoped to one
// element id. Element handlers fire in registration order when bubbling
// visits that element.
func (m *MessageManager) OnElement(elementID, kind string, fn Handler) {
	m.handlerMu.Lock()
	kinds, ok := m.element[elementID]
	if !ok {
		kinds = make(map[string][]Handler)
		m.element[elementID] = kinds
	}
	kinds[kind] = append(kinds[kind], fn)
	m.handlerMu.Unlock()
}

// Send dispatches a message with no origin element: bubbling is skipped
// and only global handlers and listeners fire.
func (m *MessageManager) Send(msg Message) *MessageEvent {
	return m.SendFrom("", msg)
}

// SendFrom dispatches a message synchronously from the given origin
// element, returning the processed event so callers can inspect the
// visited path and the prevent-default flag.
func (m *MessageManager) SendFrom(senderID string, msg Message) *MessageEvent {
	ev := NewMessageEvent(senderID, msg)
	m.ProcessMessage(ev)
	return ev
}

// ProcessMessage runs the bubbling algorithm on an already-built event:
// the origin element's handlers fire first, then each ancestor's in tree
// order, then global handlers. StopImmediatePropagation aborts the
// remaining handlers at the current element; StopPropagation aborts
// ascent after it; a non-bubbling payload never ascends past its origin
// but still reaches global handlers.
func (m *MessageManager) ProcessMessage(ev *MessageEvent) {
	kind := ev.Msg.Kind()
	debug.Log("MessageManager.ProcessMessage: kind=%q sender=%q", kind, ev.SenderID)

	current := ev.SenderID
	for current != "" {
		ev.Path = append(ev.Path, current)
		m.dispatchToElement(current, kind, ev)
		if ev.stopped() {
			debug.Log("MessageManager.ProcessMessage: propagation stopped at %q", current)
			return
		}
		if !ev.Msg.ShouldBubble() {
			break
		}
		current = m.parentOf(current)
	}

	m.handlerMu.RLock()
	handlers := append([]Handler(nil), m.global[kind]...)
	m.handlerMu.RUnlock()
	for _, fn := range handlers {
		fn(ev)
		if ev.stopImmediate {
			return
		}
	}
	m.fireListeners("", kind, ev)
}

// dispatchToElement runs the element-scoped handlers for one element,
// then its listeners in priority order.
func (m *MessageManager) dispatchToElement(elementID, kind string, ev *MessageEvent) {
	m.handlerMu.RLock()
	var handlers []Handler
	if kinds, ok := m.element[elementID]; ok {
		handlers = append(handlers, kinds[kind]...)
	}
	m.handlerMu.RUnlock()

	for _, fn := range handlers {
		fn(ev)
		if ev.stopImmediate {
			return
		}
	}
	m.fireListeners(elementID, kind, ev)
}

// fireListeners invokes the matching listeners for one scope. Listeners
// are already priority-sorted. A once-listener is claimed at invocation
// time, never earlier, so a stop flag raised ahead of it leaves it armed
// for the next dispatch; when it does fire, its registration is removed.
// The claim is a check-and-set under the lock, so reentrant dispatch
// from inside a handler cannot fire a once-listener twice.
func (m *MessageManager) fireListeners(elementID, kind string, ev *MessageEvent) {
	m.listenerMu.Lock()
	var matched []*MessageListener
	for _, l := range m.listeners {
		if l.ElementID == elementID && l.Kind == kind {
			matched = append(matched, l)
		}
	}
	m.listenerMu.Unlock()

	for _, l := range matched {
		if ev.stopImmediate {
			return
		}
		m.listenerMu.Lock()
		if l.Once && l.triggered {
			m.listenerMu.Unlock()
			continue
		}
		l.triggered = true
		m.listenerMu.Unlock()

		if l.Once {
			m.RemoveListener(l.ID)
		}
		if l.Handler != nil {
			l.Handler(ev)
		}
	}
}

// AddListener registers a declarative listener and returns its id,
// generating one if the listener did not carry its own. The listener
// list stays sorted descending by priority after every insertion, with
// ties keeping registration order.
func (m *MessageManager) AddListener(l MessageListener) string {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	m.listenerMu.Lock()
	m.listeners = append(m.listeners, &l)
	sort.SliceStable(m.listeners, func(a, b int) bool {
		return m.listeners[a].Priority > m.listeners[b].Priority
	})
	m.listenerMu.Unlock()
	return l.ID
}

// RemoveListener removes the listener with the given id.
// Returns false if no such listener exists.
func (m *MessageManager) RemoveListener(id string) bool {
	m.listenerMu.Lock()
	defer m.listenerMu.Unlock()
	for i, l := range m.listeners {
		if l.ID == id {
			m.listeners = append(m.listeners[:i], m.listeners[i+1:]...)
			return true
		}
	}
	return false
}

// UpdateHierarchy records parentID as the parent of childID. An empty
// parentID marks the child as a root.
func (m *MessageManager) UpdateHierarchy(childID, parentID string) {
	m.hierarchyMu.Lock()
	if parentID == "" {
		delete(m.hierarchy, childID)
	} else {
		m.hierarchy[childID] = parentID
	}
	m.hierarchyMu.Unlock()
}

// BuildHierarchyFromElement walks the element tree and records each
// identified node's parent. Nodes without an id are skipped
// transparently: their children link directly to the nearest identified
// ancestor, never to the anonymous node itself. Nodes that resolve to
// the root have their entry cleared, so re-walking after a structural
// change never leaves a stale parent behind.
func (m *MessageManager) BuildHierarchyFromElement(el *Element, parentID string) {
	if el == nil {
		return
	}
	effectiveParent := parentID
	if id := el.ID(); id != "" {
		m.UpdateHierarchy(id, parentID)
		effectiveParent = id
	}
	for _, child := range el.Children() {
		m.BuildHierarchyFromElement(child, effectiveParent)
	}
}

// GetElementPath walks the hierarchy upward from elementID and returns
// the visited ids root-first, ending with elementID itself. Returns nil
// for an empty id.
func (m *MessageManager) GetElementPath(elementID string) []string {
	if elementID == "" {
		return nil
	}
	m.hierarchyMu.RLock()
	defer m.hierarchyMu.RUnlock()

	path := []string{elementID}
	seen := map[string]bool{elementID: true}
	current := elementID
	for {
		parent, ok := m.hierarchy[current]
		if !ok || parent == "" || seen[parent] {
			break
		}
		path = append(path, parent)
		seen[parent] = true
		current = parent
	}
	return lo.Reverse(path)
}

// RemoveElementHandlers drops all state registered for a destroyed
// element: its handlers, its hierarchy entry, and its listeners. The
// owning widget must call this on unmount or the maps leak entries for
// dead ids.
func (m *MessageManager) RemoveElementHandlers(elementID string) {
	m.handlerMu.Lock()
	delete(m.element, elementID)
	m.handlerMu.Unlock()

	m.hierarchyMu.Lock()
	delete(m.hierarchy, elementID)
	m.hierarchyMu.Unlock()

	m.listenerMu.Lock()
	m.listeners = lo.Filter(m.listeners, func(l *MessageListener, _ int) bool {
		return l.ElementID != elementID
	})
	m.listenerMu.Unlock()
}

// QueueMessage defers dispatch of a message until the next ProcessQueue.
func (m *MessageManager) QueueMessage(senderID string, msg Message) {
	ev := NewMessageEvent(senderID, msg)
	m.queueMu.Lock()
	m.queue = append(m.queue, ev)
	m.queueMu.Unlock()
}

// ProcessQueue drains the batch queue and replays the queued events in
// FIFO order. The queue is swapped out before draining, so messages
// queued by handlers during the drain land in a fresh queue for the next
// call instead of extending this one.
func (m *MessageManager) ProcessQueue() {
	m.queueMu.Lock()
	batch := m.queue
	m.queue = nil
	m.queueMu.Unlock()

	for _, ev := range batch {
		m.ProcessMessage(ev)
	}
}

// SendAsync enqueues a message on the async channel without dispatching
// it. Returns an error if the channel is full rather than blocking the
// producer.
func (m *MessageManager) SendAsync(senderID string, msg Message) error {
	ev := NewMessageEvent(senderID, msg)
	select {
	case m.async <- ev:
		return nil
	default:
		return fmt.Errorf("async message queue full (capacity %d)", asyncQueueCapacity)
	}
}

// TakeReceiver hands over the async channel's receive side. The receiver
// is a move-once resource: the first call returns the channel, every
// later call returns nil. Consumers that take the receiver own async
// consumption and should not also call ProcessAsyncMessages.
func (m *MessageManager) TakeReceiver() <-chan *MessageEvent {
	m.receiverMu.Lock()
	defer m.receiverMu.Unlock()
	if m.receiverTaken {
		return nil
	}
	m.receiverTaken = true
	return m.async
}

// ProcessAsyncMessages drains the currently buffered async messages
// through the normal bubbling dispatch and returns the number processed.
// Does not block waiting for producers.
func (m *MessageManager) ProcessAsyncMessages() int {
	processed := 0
	for {
		select {
		case ev := <-m.async:
			m.ProcessMessage(ev)
			processed++
		default:
			return processed
		}
	}
}

// parentOf resolves the hierarchy parent of an element id, or "" when
// the element is unmapped or a root.
func (m *MessageManager) parentOf(elementID string) string {
	m.hierarchyMu.RLock()
	defer m.hierarchyMu.RUnlock()
	return m.hierarchy[elementID]
}
