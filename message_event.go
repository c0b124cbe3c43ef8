package tui

import "time"

// Phase identifies which pass of a three-phase dispatch is executing.
type Phase int

const (
	// PhaseCapture is the root-to-target pass, excluding the target.
	PhaseCapture Phase = iota
	// PhaseTarget is the pass over the target element itself.
	PhaseTarget
	// PhaseBubble is the target-to-root pass, excluding the target.
	PhaseBubble
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseCapture:
		return "capture"
	case PhaseTarget:
		return "target"
	case PhaseBubble:
		return "bubble"
	default:
		return "unknown"
	}
}

// MessageEvent wraps one Message with per-dispatch metadata. The wrapper
// is mutated in place as dispatch ascends; the payload itself is shared
// across handlers and must be treated as read-only.
type MessageEvent struct {
	// Msg is the dispatched payload, shared by every handler.
	Msg Message

	// SenderID is the origin element id, or "" for a global-only send.
	SenderID string

	// Path records the element ids visited so far, origin first.
	Path []string

	// Timestamp is when the event was created.
	Timestamp time.Time

	preventDefault  bool
	stopPropagation bool
	stopImmediate   bool
}

// NewMessageEvent wraps msg for dispatch from senderID ("" = none).
func NewMessageEvent(senderID string, msg Message) *MessageEvent {
	return &MessageEvent{
		Msg:       msg,
		SenderID:  senderID,
		Timestamp: time.Now(),
	}
}

// PreventDefault asks the default action for this message to be skipped.
// A no-op when the payload reports CanPreventDefault() == false.
func (ev *MessageEvent) PreventDefault() {
	if ev.Msg != nil && !ev.Msg.CanPreventDefault() {
		return
	}
	ev.preventDefault = true
}

// DefaultPrevented reports whether a handler called PreventDefault.
func (ev *MessageEvent) DefaultPrevented() bool {
	return ev.preventDefault
}

// StopPropagation halts ascent past the current element. Remaining
// handlers at the current element still run.
func (ev *MessageEvent) StopPropagation() {
	ev.stopPropagation = true
}

// PropagationStopped reports whether StopPropagation was called.
func (ev *MessageEvent) PropagationStopped() bool {
	return ev.stopPropagation
}

// StopImmediatePropagation halts dispatch entirely: no further handlers
// at the current element and no ascent.
func (ev *MessageEvent) StopImmediatePropagation() {
	ev.stopImmediate = true
}

// ImmediatePropagationStopped reports whether StopImmediatePropagation
// was called.
func (ev *MessageEvent) ImmediatePropagationStopped() bool {
	return ev.stopImmediate
}

// stopped reports whether either stop lever has been pulled.
func (ev *MessageEvent) stopped() bool {
	return ev.stopPropagation || ev.stopImmediate
}

// EventContext is the transient per-dispatch state visible to component
// handlers during three-phase routing. Handlers are not phase-specific
// registrations; a handler that only cares about one phase self-filters
// by inspecting Phase.
type EventContext struct {
	// TargetElement is the element id the dispatch is addressed to.
	TargetElement string

	// CurrentElement is the element whose handlers are running now.
	CurrentElement string

	// Phase is the dispatch pass currently executing.
	Phase Phase

	// Timestamp is when the dispatch started.
	Timestamp time.Time

	preventDefault  bool
	stopPropagation bool
	stopImmediate   bool
}

// PreventDefault asks the default action to be skipped.
func (ctx *EventContext) PreventDefault() {
	ctx.preventDefault = true
}

// DefaultPrevented reports whether a handler called PreventDefault.
func (ctx *EventContext) DefaultPrevented() bool {
	return ctx.preventDefault
}

// StopPropagation halts dispatch after the current element's handlers.
func (ctx *EventContext) StopPropagation() {
	ctx.stopPropagation = true
}

// PropagationStopped reports whether StopPropagation was called.
func (ctx *EventContext) PropagationStopped() bool {
	return ctx.stopPropagation
}

// StopImmediatePropagation halts dispatch immediately: no further
// handlers at the current element and no further elements.
func (ctx *EventContext) StopImmediatePropagation() {
	ctx.stopImmediate = true
}

// ImmediatePropagationStopped reports whether StopImmediatePropagation
// was called.
func (ctx *EventContext) ImmediatePropagationStopped() bool {
	return ctx.stopImmediate
}

// stopped reports whether either stop lever has been pulled.
func (ctx *EventContext) stopped() bool {
	return ctx.stopPropagation || ctx.stopImmediate
}
