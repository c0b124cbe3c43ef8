package tui

import "testing"

func TestKeyName(t *testing.T) {
	type tc struct {
		event KeyEvent
		want  string
	}

	tests := map[string]tc{
		"printable rune": {
			event: KeyEvent{Key: KeyRune, Rune: 'a'},
			want:  "a",
		},
		"rune keeps name under ctrl": {
			event: KeyEvent{Key: KeyRune, Rune: 'a', Mod: ModCtrl},
			want:  "a",
		},
		"enter": {
			event: KeyEvent{Key: KeyEnter},
			want:  "Enter",
		},
		"escape": {
			event: KeyEvent{Key: KeyEscape},
			want:  "Escape",
		},
		"function key": {
			event: KeyEvent{Key: KeyF5},
			want:  "F5",
		},
		"highest function key": {
			event: KeyEvent{Key: KeyF12},
			want:  "F12",
		},
		"page navigation": {
			event: KeyEvent{Key: KeyPageDown},
			want:  "PageDown",
		},
		"arrow": {
			event: KeyEvent{Key: KeyLeft},
			want:  "Left",
		},
		"no key falls back to unknown": {
			event: KeyEvent{Key: KeyNone},
			want:  "Unknown",
		},
		"unmapped code falls back to unknown": {
			event: KeyEvent{Key: Key(999)},
			want:  "Unknown",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := keyName(tt.event); got != tt.want {
				t.Errorf("keyName(%+v) = %q, want %q", tt.event, got, tt.want)
			}
		})
	}
}

func TestModifier_Names(t *testing.T) {
	type tc struct {
		mod  Modifier
		want []string
	}

	tests := map[string]tc{
		"none":       {mod: ModNone, want: nil},
		"ctrl":       {mod: ModCtrl, want: []string{"ctrl"}},
		"shift":      {mod: ModShift, want: []string{"shift"}},
		"ctrl+shift": {mod: ModCtrl | ModShift, want: []string{"ctrl", "shift"}},
		"all ordered": {
			mod:  ModShift | ModAlt | ModCtrl,
			want: []string{"ctrl", "alt", "shift"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := tt.mod.Names()
			if len(got) != len(tt.want) {
				t.Fatalf("Names() = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("Names() = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestKeyEvent_Is(t *testing.T) {
	ev := KeyEvent{Key: KeyRune, Rune: 'x', Mod: ModCtrl}
	if !ev.Is(KeyRune, ModCtrl) {
		t.Error("Is(KeyRune, ModCtrl) should match")
	}
	if ev.Is(KeyRune) != true {
		t.Error("Is(KeyRune) without mods should match any modifiers")
	}
	if ev.Is(KeyEnter) {
		t.Error("Is(KeyEnter) should not match a rune event")
	}
	if ev.Is(KeyRune, ModAlt) {
		t.Error("Is(KeyRune, ModAlt) should not match a ctrl event")
	}
}
