// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package window

import "github.com/gogpu/tri/event"

// queue collects events from GLFW callbacks between polls.
// GLFW calls back on the polling thread, so no locking is needed.
type queue struct {
	pending []event.Event
	redraw  bool
}

func (q *queue) push(ev event.Event) {
	q.pending = append(q.pending, ev)
}

func (q *queue) requestRedraw() {
	q.redraw = true
}

// drain returns the pending events terminated by the end-of-batch events
// and resets the queue.
func (q *queue) drain() []event.Event {
	out := q.pending
	q.pending = nil
	if q.redraw {
		q.redraw = false
		out = append(out, event.RedrawRequested{})
	}
	return append(out, event.MainEventsCleared{})
}
