// SPDX-License-Identifier: Unlicense OR MIT

// Package transfer contains events for transferring data into a
// window, such as files dragged from another program.
package transfer

// HoverEvent is generated when a file is dragged over the window. A
// drag of several files generates one HoverEvent per file.
type HoverEvent struct {
	// Path is the file path reported by the platform.
	Path string
}

// CancelEvent is generated when a drag leaves the window without a
// drop. It cancels all hovered files.
type CancelEvent struct{}

// DropEvent is generated when a hovered file is dropped on the
// window.
type DropEvent struct {
	// Path is the file path reported by the platform.
	Path string
}

func (HoverEvent) ImplementsEvent()  {}
func (CancelEvent) ImplementsEvent() {}
func (DropEvent) ImplementsEvent()   {}
