// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package event defines the window events the render loop reacts to and the
// control-flow decision returned for each of them.
package event

import (
	"fmt"

	"github.com/gogpu/gpucontext"
)

// Event is one of the types declared in this package.
type Event interface {
	event()
}

// CloseRequested is sent when the user asks to close the window.
type CloseRequested struct{}

// KeyboardInput reports a key press or release.
type KeyboardInput struct {
	Key     gpucontext.Key
	Mods    gpucontext.Modifiers
	Pressed bool
}

// Resized reports the new framebuffer size in physical pixels.
type Resized struct {
	Width, Height int
}

// ScaleFactorChanged reports a new content scale and the framebuffer size
// that goes with it.
type ScaleFactorChanged struct {
	Scale         float64
	Width, Height int
}

// RedrawRequested asks for a frame to be drawn.
type RedrawRequested struct{}

// MainEventsCleared ends a batch of events.
type MainEventsCleared struct{}

func (CloseRequested) event()     {}
func (KeyboardInput) event()      {}
func (Resized) event()            {}
func (ScaleFactorChanged) event() {}
func (RedrawRequested) event()    {}
func (MainEventsCleared) event()  {}

func (e KeyboardInput) String() string {
	state := "released"
	if e.Pressed {
		state = "pressed"
	}
	return fmt.Sprintf("KeyboardInput(key=%d %s, mods=%#x)", uint16(e.Key), state, uint8(e.Mods))
}

func (e Resized) String() string {
	return fmt.Sprintf("Resized(%dx%d)", e.Width, e.Height)
}

func (e ScaleFactorChanged) String() string {
	return fmt.Sprintf("ScaleFactorChanged(%g, %dx%d)", e.Scale, e.Width, e.Height)
}

func (CloseRequested) String() string    { return "CloseRequested" }
func (RedrawRequested) String() string   { return "RedrawRequested" }
func (MainEventsCleared) String() string { return "MainEventsCleared" }

// ControlFlow tells the event loop whether to keep running.
type ControlFlow int

const (
	// Continue keeps the loop running.
	Continue ControlFlow = iota
	// Exit stops the loop.
	Exit
)

func (c ControlFlow) String() string {
	switch c {
	case Continue:
		return "Continue"
	case Exit:
		return "Exit"
	default:
		return fmt.Sprintf("ControlFlow(%d)", int(c))
	}
}
