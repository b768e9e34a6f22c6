// SPDX-License-Identifier: Unlicense OR MIT

// Package clipboard implements clipboard events and commands.
package clipboard

import (
	"orbeui.org/io/event"
)

// Event is generated when the clipboard content is requested
// with ReadCmd and the platform clipboard has text available.
type Event struct {
	Text string
}

// CutEvent requests that the focused handler cuts its selection
// to the clipboard. It is generated when the platform cut shortcut
// is pressed.
type CutEvent struct{}

// CopyEvent requests that the focused handler copies its selection
// to the clipboard. It is generated when the platform copy shortcut
// is pressed.
type CopyEvent struct{}

// WriteCmd copies Text to the clipboard.
type WriteCmd struct {
	Text string
}

// ReadCmd requests the text of the clipboard, delivered to
// the handler through an Event.
type ReadCmd struct {
	Tag event.Tag
}

func (Event) ImplementsEvent()     {}
func (CutEvent) ImplementsEvent()  {}
func (CopyEvent) ImplementsEvent() {}

func (WriteCmd) ImplementsCommand() {}
func (ReadCmd) ImplementsCommand()  {}
