package tui

import (
	"encoding/json"
	"fmt"
)

// Built-in message kinds. The kind string is the dispatch key used by
// handler registration; custom messages use their own name as the kind.
const (
	KindClick    = "click"
	KindFocus    = "focus"
	KindBlur     = "blur"
	KindInput    = "input"
	KindSubmit   = "submit"
	KindKeyPress = "keypress"
	KindMount    = "mount"
	KindUnmount  = "unmount"
)

// Message is the capability set every dispatchable payload implements.
// The kind string is an explicit discriminant: it identifies the payload
// for handler lookup without any runtime type comparison.
//
// Handlers receive the payload through a shared MessageEvent and must
// treat it as read-only; use Clone to obtain an owned copy.
type Message interface {
	// Kind returns the dispatch key for this payload.
	Kind() string

	// Clone returns an owned copy of the payload.
	Clone() Message

	// ShouldBubble reports whether the message ascends to ancestor
	// elements after the origin's own handlers have fired.
	ShouldBubble() bool

	// CanPreventDefault reports whether handlers may suppress the
	// default action for this message.
	CanPreventDefault() bool
}

// messageDefaults carries the common Message policy: bubbles, cancelable.
// Embed it and override per type where the policy differs.
type messageDefaults struct{}

func (messageDefaults) ShouldBubble() bool      { return true }
func (messageDefaults) CanPreventDefault() bool { return true }

// ClickMessage is produced by the router for mouse button presses and
// releases, carrying the cell coordinates and the canonical button name.
type ClickMessage struct {
	messageDefaults
	X      int
	Y      int
	Button string
}

func (ClickMessage) Kind() string { return KindClick }

func (m ClickMessage) Clone() Message { return m }

// FocusMessage announces that an element gained focus. Focus changes are
// local facts and do not bubble, matching DOM focus semantics.
type FocusMessage struct {
	messageDefaults
	ElementID string
}

func (FocusMessage) Kind() string { return KindFocus }

func (m FocusMessage) Clone() Message { return m }

func (FocusMessage) ShouldBubble() bool { return false }

// BlurMessage announces that an element lost focus. Does not bubble.
type BlurMessage struct {
	messageDefaults
	ElementID string
}

func (BlurMessage) Kind() string { return KindBlur }

func (m BlurMessage) Clone() Message { return m }

func (BlurMessage) ShouldBubble() bool { return false }

// InputMessage carries an element's changed input value.
type InputMessage struct {
	messageDefaults
	ElementID string
	Value     string
}

func (InputMessage) Kind() string { return KindInput }

func (m InputMessage) Clone() Message { return m }

// SubmitMessage carries the values of a submitted form-like element.
type SubmitMessage struct {
	messageDefaults
	ElementID string
	Values    map[string]string
}

func (SubmitMessage) Kind() string { return KindSubmit }

func (m SubmitMessage) Clone() Message {
	clone := m
	if m.Values != nil {
		clone.Values = make(map[string]string, len(m.Values))
		for k, v := range m.Values {
			clone.Values[k] = v
		}
	}
	return clone
}

// KeyPressMessage is produced by the router for keyboard events, carrying
// the canonical key name and the active modifier names in order.
type KeyPressMessage struct {
	messageDefaults
	ElementID string
	Key       string
	Modifiers []string
}

func (KeyPressMessage) Kind() string { return KindKeyPress }

func (m KeyPressMessage) Clone() Message {
	clone := m
	clone.Modifiers = append([]string(nil), m.Modifiers...)
	return clone
}

// MountMessage announces that an element entered the tree.
type MountMessage struct {
	messageDefaults
	ElementID string
}

func (MountMessage) Kind() string { return KindMount }

func (m MountMessage) Clone() Message { return m }

// UnmountMessage announces that an element left the tree.
type UnmountMessage struct {
	messageDefaults
	ElementID string
}

func (UnmountMessage) Kind() string { return KindUnmount }

func (m UnmountMessage) Clone() Message { return m }

// CustomMessage is an application-defined payload. Its name doubles as
// the dispatch kind, and its data is encoded once at construction time so
// encode failures surface before the message ever enters dispatch.
type CustomMessage struct {
	Name    string
	Data    json.RawMessage
	Bubbles bool
}

// NewCustomMessage encodes data as JSON and wraps it in a bubbling
// CustomMessage named name. Returns an error if the data cannot encode.
func NewCustomMessage(name string, data any) (CustomMessage, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return CustomMessage{}, fmt.Errorf("encoding custom message %q: %w", name, err)
	}
	return CustomMessage{Name: name, Data: raw, Bubbles: true}, nil
}

func (m CustomMessage) Kind() string { return m.Name }

func (m CustomMessage) Clone() Message {
	clone := m
	clone.Data = append(json.RawMessage(nil), m.Data...)
	return clone
}

func (m CustomMessage) ShouldBubble() bool { return m.Bubbles }

func (CustomMessage) CanPreventDefault() bool { return true }

// Decode unmarshals the message data into v.
func (m CustomMessage) Decode(v any) error {
	if err := json.Unmarshal(m.Data, v); err != nil {
		return fmt.Errorf("decoding custom message %q: %w", m.Name, err)
	}
	return nil
}

// Compile-time checks that the built-in payloads satisfy Message.
var (
	_ Message = ClickMessage{}
	_ Message = FocusMessage{}
	_ Message = BlurMessage{}
	_ Message = InputMessage{}
	_ Message = SubmitMessage{}
	_ Message = KeyPressMessage{}
	_ Message = MountMessage{}
	_ Message = UnmountMessage{}
	_ Message = CustomMessage{}
)
