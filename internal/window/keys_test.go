// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package window

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/gogpu/gpucontext"
)

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		in   glfw.Key
		want gpucontext.Key
	}{
		{glfw.KeyEscape, gpucontext.KeyEscape},
		{glfw.KeyA, gpucontext.KeyA},
		{glfw.KeyZ, gpucontext.KeyZ},
		{glfw.Key5, gpucontext.Key5},
		{glfw.KeyF12, gpucontext.KeyF12},
		{glfw.KeyGraveAccent, gpucontext.KeyGrave},
		{glfw.KeyKPEnter, gpucontext.KeyNumpadEnter},
		{glfw.KeyWorld1, gpucontext.KeyUnknown},
		{glfw.KeyUnknown, gpucontext.KeyUnknown},
	}
	for _, tt := range tests {
		if got := translateKey(tt.in); got != tt.want {
			t.Errorf("translateKey(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestKeyMapIsInjective(t *testing.T) {
	seen := make(map[gpucontext.Key]glfw.Key, len(keyMap))
	for from, to := range keyMap {
		if prev, ok := seen[to]; ok {
			t.Errorf("glfw keys %d and %d both map to %d", prev, from, to)
		}
		seen[to] = from
	}
}

func TestTranslateMods(t *testing.T) {
	got := translateMods(glfw.ModShift | glfw.ModSuper | glfw.ModNumLock)
	want := gpucontext.ModShift | gpucontext.ModSuper | gpucontext.ModNumLock
	if got != want {
		t.Errorf("translateMods() = %#x, want %#x", got, want)
	}
	if got := translateMods(0); got != 0 {
		t.Errorf("translateMods(0) = %#x, want 0", got)
	}
}

func TestKeyboardInput(t *testing.T) {
	tests := []struct {
		name        string
		action      glfw.Action
		wantOK      bool
		wantPressed bool
	}{
		{"press", glfw.Press, true, true},
		{"repeat", glfw.Repeat, true, true},
		{"release", glfw.Release, true, false},
		{"unknown action", glfw.Action(42), false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok := keyboardInput(glfw.KeyEscape, tt.action, glfw.ModControl)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if ev.Pressed != tt.wantPressed {
				t.Errorf("Pressed = %v, want %v", ev.Pressed, tt.wantPressed)
			}
			if ev.Key != gpucontext.KeyEscape || ev.Mods != gpucontext.ModControl {
				t.Errorf("event = %+v, want Escape with Control", ev)
			}
		})
	}
}
