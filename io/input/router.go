// SPDX-License-Identifier: Unlicense OR MIT

// Package input exposes the ordered event model that connects a
// platform window to a user interface.
//
// The app package translates platform events into io/pointer,
// io/key and io/clipboard events and queues them on a Router in
// arrival order. The user interface drains the log once per frame
// and queues commands, such as clipboard writes and redraw
// requests, that the platform side executes after the frame.
package input

import (
	"time"

	"orbeui.org/io/clipboard"
	"orbeui.org/io/event"
	"orbeui.org/io/key"
	"orbeui.org/io/pointer"
)

// Command is a request from the user interface with platform
// side-effects, such as initiating a clipboard write.
type Command interface {
	ImplementsCommand()
}

// InvalidateCmd requests a redraw no later than At.
type InvalidateCmd struct {
	At time.Time
}

// Router is the ordered event log for one window. Events are queued
// by the platform side and drained by the user interface; commands
// flow the other way. A Router is not safe for concurrent use.
type Router struct {
	events    []event.Event
	commands  []Command
	modifiers key.Modifiers

	cursor pointer.Cursor

	wakeup     bool
	wakeupTime time.Time
}

// Queue appends events to the frame's log, preserving their order.
// Key events update the tracked modifier state.
func (q *Router) Queue(events ...event.Event) {
	for _, e := range events {
		if ke, ok := e.(key.Event); ok {
			q.trackModifiers(ke)
		}
		q.events = append(q.events, e)
	}
}

// Events returns the queued events in arrival order and clears
// the log.
func (q *Router) Events() []event.Event {
	evts := q.events
	q.events = nil
	return evts
}

// Execute queues a command for the platform side. InvalidateCmd is
// consumed by the Router itself and aggregated into WakeupTime.
func (q *Router) Execute(c Command) {
	switch c := c.(type) {
	case InvalidateCmd:
		if !q.wakeup || c.At.Before(q.wakeupTime) {
			q.wakeup = true
			q.wakeupTime = c.At
		}
	default:
		q.commands = append(q.commands, c)
	}
}

// Commands returns the queued commands in order and clears the queue.
func (q *Router) Commands() []Command {
	cmds := q.commands
	q.commands = nil
	return cmds
}

// RequestRepaintAfter requests a redraw when d has passed, to drive
// animation such as a blinking cursor.
func (q *Router) RequestRepaintAfter(d time.Duration) {
	q.Execute(InvalidateCmd{At: time.Now().Add(d)})
}

// WakeupTime returns the deadline of the earliest queued redraw
// request, clearing it.
func (q *Router) WakeupTime() (time.Time, bool) {
	t, ok := q.wakeupTime, q.wakeup
	q.wakeup = false
	return t, ok
}

// SetCursor records the cursor icon requested during the frame.
func (q *Router) SetCursor(c pointer.Cursor) {
	q.cursor = c
}

// Cursor returns the cursor icon requested during the frame, and
// resets it to pointer.CursorDefault.
func (q *Router) Cursor() pointer.Cursor {
	c := q.cursor
	q.cursor = pointer.CursorDefault
	return c
}

// Modifiers returns the set of modifier keys pressed according to the
// most recent key events.
func (q *Router) Modifiers() key.Modifiers {
	return q.modifiers
}

// ClipboardRequested reports whether any queued command asks to read
// the clipboard, without draining the command queue.
func (q *Router) ClipboardRequested() bool {
	for _, c := range q.commands {
		if _, ok := c.(clipboard.ReadCmd); ok {
			return true
		}
	}
	return false
}

func (q *Router) trackModifiers(e key.Event) {
	var mod key.Modifiers
	switch e.Name {
	case key.NameCtrl:
		mod = key.ModCtrl
	case key.NameCommand:
		mod = key.ModCommand
	case key.NameShift:
		mod = key.ModShift
	case key.NameAlt:
		mod = key.ModAlt
	case key.NameSuper:
		mod = key.ModSuper
	default:
		return
	}
	if e.State == key.Press {
		q.modifiers |= mod
	} else {
		q.modifiers &^= mod
	}
}

func (InvalidateCmd) ImplementsCommand() {}
