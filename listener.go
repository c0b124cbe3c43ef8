package tui

// MessageListener is a declarative handler registration. Unlike the plain
// On/OnElement handler maps, listeners carry a priority (higher fires
// first; ties keep registration order) and an optional fire-once policy.
// Listeners participate in the same dispatch walk as plain handlers and
// run after them at each element.
type MessageListener struct {
	// ID uniquely identifies the registration for later removal.
	// Assigned by AddListener when left empty.
	ID string

	// ElementID scopes the listener to one element, or "" for global.
	ElementID string

	// Kind is the message kind this listener matches.
	Kind string

	// Handler is invoked on a match. A nil handler is pure bookkeeping.
	Handler Handler

	// Once removes the listener after its first invocation.
	Once bool

	// Priority orders listeners at the same element; higher fires first.
	Priority int

	triggered bool
}

// Triggered reports whether the listener has fired at least once.
func (l *MessageListener) Triggered() bool {
	return l.triggered
}
