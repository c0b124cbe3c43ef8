package tui

import "testing"

func TestCore_InitialRebuildMountsIdentifiedElements(t *testing.T) {
	root := New(WithID("root"), WithChildren(
		New(WithID("a")),
		New(), // anonymous, never mounted
		New(WithID("b")),
	))

	// Handlers can only be registered after construction, so re-run the
	// rebuild to observe the mount messages.
	c := NewCore(root)
	var mounted []string
	c.Messages().On(KindMount, func(ev *MessageEvent) {
		mounted = append(mounted, ev.Msg.(MountMessage).ElementID)
	})
	c.knownIDs = nil
	c.Rebuild()

	want := []string{"root", "a", "b"}
	if len(mounted) != len(want) {
		t.Fatalf("mounted = %v, want %v", mounted, want)
	}
	for i := range want {
		if mounted[i] != want[i] {
			t.Fatalf("mounted = %v, want %v (tree order)", mounted, want)
		}
	}
}

func TestCore_RebuildDiffsMountsAndUnmounts(t *testing.T) {
	a := New(WithID("a"))
	root := New(WithID("root"), WithChildren(a))
	c := NewCore(root)

	var mounted, unmounted []string
	c.Messages().On(KindMount, func(ev *MessageEvent) {
		mounted = append(mounted, ev.Msg.(MountMessage).ElementID)
	})
	c.Messages().On(KindUnmount, func(ev *MessageEvent) {
		unmounted = append(unmounted, ev.Msg.(UnmountMessage).ElementID)
	})

	root.RemoveChild(a)
	root.AddChild(New(WithID("b")))
	c.Rebuild()

	if len(mounted) != 1 || mounted[0] != "b" {
		t.Fatalf("mounted = %v, want [b]", mounted)
	}
	if len(unmounted) != 1 || unmounted[0] != "a" {
		t.Fatalf("unmounted = %v, want [a]", unmounted)
	}
}

func TestCore_UnmountCleansUpHandlers(t *testing.T) {
	a := New(WithID("a"))
	root := New(WithID("root"), WithChildren(a))
	c := NewCore(root)

	var fired int
	c.Messages().OnElement("a", KindClick, func(*MessageEvent) { fired++ })

	root.RemoveChild(a)
	c.Rebuild()

	c.Messages().SendFrom("a", ClickMessage{Button: "left"})
	if fired != 0 {
		t.Fatal("handlers for an unmounted element must not fire")
	}
}

func TestCore_TabMovesFocusAndEmitsMessages(t *testing.T) {
	root := New(WithID("root"), WithChildren(
		New(WithID("one"), WithFocusable(), WithTabIndex(1)),
		New(WithID("two"), WithFocusable(), WithTabIndex(2)),
	))
	c := NewCore(root)

	var focusLog []string
	c.Messages().On(KindFocus, func(ev *MessageEvent) {
		focusLog = append(focusLog, "focus:"+ev.Msg.(FocusMessage).ElementID)
	})
	c.Messages().On(KindBlur, func(ev *MessageEvent) {
		focusLog = append(focusLog, "blur:"+ev.Msg.(BlurMessage).ElementID)
	})

	// Initial focus is "one" (first in tree order); Tab moves to "two".
	if err := c.RouteEvent(KeyEvent{Key: KeyTab}); err != nil {
		t.Fatalf("RouteEvent(Tab): %v", err)
	}

	if got := c.Focus().Focused(); got == nil || got.ID != "two" {
		t.Fatalf("Focused() after Tab = %v, want two", got)
	}
	want := []string{"blur:one", "focus:two"}
	if len(focusLog) != 2 || focusLog[0] != want[0] || focusLog[1] != want[1] {
		t.Fatalf("focusLog = %v, want %v", focusLog, want)
	}

	var focused []string
	root.Walk(func(el *Element) {
		if el.IsFocused() {
			focused = append(focused, el.ID())
		}
	})
	if len(focused) != 1 || focused[0] != "two" {
		t.Fatalf("tree focused flags = %v, want exactly [two]", focused)
	}
}

func TestCore_ShiftTabMovesFocusBackward(t *testing.T) {
	root := New(WithID("root"), WithChildren(
		New(WithID("one"), WithFocusable(), WithTabIndex(1)),
		New(WithID("two"), WithFocusable(), WithTabIndex(2)),
	))
	c := NewCore(root)

	if err := c.RouteEvent(KeyEvent{Key: KeyTab, Mod: ModShift}); err != nil {
		t.Fatalf("RouteEvent(Shift+Tab): %v", err)
	}
	// From "one", backward wraps to "two".
	if got := c.Focus().Focused(); got == nil || got.ID != "two" {
		t.Fatalf("Focused() after Shift+Tab = %v, want two", got)
	}
}

func TestCore_KeyEventRoutesBeforeTabNavigation(t *testing.T) {
	root := New(WithID("root"), WithChildren(
		New(WithID("one"), WithFocusable()),
		New(WithID("two"), WithFocusable()),
	))
	c := NewCore(root)

	var keypressTargets []string
	c.Messages().On(KindKeyPress, func(ev *MessageEvent) {
		keypressTargets = append(keypressTargets, ev.Msg.(KeyPressMessage).ElementID)
	})

	if err := c.RouteEvent(KeyEvent{Key: KeyTab}); err != nil {
		t.Fatalf("RouteEvent: %v", err)
	}

	// The Tab keypress goes to the element that held focus when the key
	// arrived, before navigation moves focus on.
	if len(keypressTargets) != 1 || keypressTargets[0] != "one" {
		t.Fatalf("keypress targets = %v, want [one]", keypressTargets)
	}
}

func TestCore_RouteEvent_MouseAndResize(t *testing.T) {
	button := New(WithID("button"), WithFocusable(), WithBounds(Rect{X: 0, Y: 0, Width: 10, Height: 3}))
	root := New(WithID("root"), WithBounds(Rect{X: 0, Y: 0, Width: 80, Height: 24}), WithChildren(button))
	c := NewCore(root)

	var clicks []string
	c.Messages().OnElement("button", KindClick, func(ev *MessageEvent) {
		clicks = append(clicks, ev.Msg.(ClickMessage).Button)
	})

	if err := c.RouteEvent(MouseEvent{Button: MouseLeft, Action: MousePress, X: 4, Y: 1}); err != nil {
		t.Fatalf("RouteEvent(mouse): %v", err)
	}
	if len(clicks) != 1 || clicks[0] != "left" {
		t.Fatalf("clicks = %v, want [left]", clicks)
	}

	if err := c.RouteEvent(MouseEvent{Button: MouseLeft, Action: MouseDrag, X: 4, Y: 1}); err == nil {
		t.Fatal("unsupported mouse kinds must surface an error")
	}

	// Resize is a layout concern; the core ignores it without error.
	if err := c.RouteEvent(ResizeEvent{Width: 100, Height: 40}); err != nil {
		t.Fatalf("RouteEvent(resize): %v", err)
	}
}

func TestCore_FocusByID(t *testing.T) {
	root := New(WithID("root"), WithChildren(
		New(WithID("one"), WithFocusable()),
		New(WithID("two"), WithFocusable()),
	))
	c := NewCore(root)

	if err := c.FocusByID("two"); err != nil {
		t.Fatalf("FocusByID: %v", err)
	}
	if got := c.Focus().Focused(); got == nil || got.ID != "two" {
		t.Fatalf("Focused() = %v, want two", got)
	}

	// A miss leaves focus unchanged and is not an error.
	if err := c.FocusByID("missing"); err != nil {
		t.Fatalf("FocusByID(missing): %v", err)
	}
	if got := c.Focus().Focused(); got.ID != "two" {
		t.Fatalf("Focused() after miss = %q, want two", got.ID)
	}
}

func TestCore_RebuildClearsStaleParentAfterReparenting(t *testing.T) {
	x := New(WithID("x"))
	a := New(WithID("a"), WithChildren(x))
	root := New(WithChildren(a)) // anonymous root
	c := NewCore(root)

	a.RemoveChild(x)
	root.AddChild(x)
	c.Rebuild()

	if path := c.Messages().GetElementPath("x"); len(path) != 1 || path[0] != "x" {
		t.Fatalf("GetElementPath(x) = %v, want [x]", path)
	}

	var fired []string
	c.Messages().OnElement("a", KindClick, func(*MessageEvent) { fired = append(fired, "a") })
	c.Messages().OnElement("x", KindClick, func(*MessageEvent) { fired = append(fired, "x") })

	c.Messages().SendFrom("x", ClickMessage{Button: "left"})

	if len(fired) != 1 || fired[0] != "x" {
		t.Fatalf("fired = %v, want only [x]; a is no longer an ancestor", fired)
	}
}
