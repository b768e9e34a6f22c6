// SPDX-License-Identifier: Unlicense OR MIT

/*
Package app bridges platform windows and the io event model.

A State translates platform window events, with coordinates in device
pixels, into io/pointer, io/key and io/clipboard events in device
independent pixels, queued on an input.Router in arrival order. In the
other direction it applies the interface's per-frame Output and queued
commands to a platform Window.

Platform window implementations are provided elsewhere; this package
defines their contract through the Window interface.
*/
package app

import (
	"image"

	"orbeui.org/io/key"
	"orbeui.org/io/pointer"
	"orbeui.org/unit"
)

// Window is the contract of a platform window. All sizes and
// positions are in device pixels.
type Window interface {
	// SetCursor changes the cursor icon shown over the window.
	SetCursor(c pointer.Cursor)
	// SetCursorVisible shows or hides the cursor.
	SetCursorVisible(visible bool)
	// SetTitle changes the window title.
	SetTitle(title string)
	// SetSize requests a new window size.
	SetSize(size image.Point)
	// SetMinSize constrains the minimum window size.
	SetMinSize(size image.Point)
	// SetMaxSize constrains the maximum window size.
	SetMaxSize(size image.Point)
	// SetDecorated shows or hides the system decorations.
	SetDecorated(decorated bool)
	// SetMinimized minimizes or restores the window.
	SetMinimized(minimized bool)
	// SetMaximized maximizes or restores the window.
	SetMaximized(maximized bool)
	// SetFullscreen enters or leaves fullscreen mode.
	SetFullscreen(fullscreen bool)
	// Raise requests keyboard focus for the window.
	Raise()
	// Close closes the window.
	Close()
	// SetIMEAllowed enables or disables input method composition.
	SetIMEAllowed(allowed bool)
	// SetIMERect positions the input method candidate box near the
	// text caret.
	SetIMERect(r image.Rectangle)
	// SetIMESnippet gives the input method the text surrounding the
	// caret, for context dependent composition.
	SetIMESnippet(s key.Snippet)
	// WriteClipboard replaces the clipboard content with text.
	WriteClipboard(text string)
	// ReadClipboard returns the text content of the clipboard, if
	// any.
	ReadClipboard() (string, bool)
	// Invalidate schedules a redraw of the window.
	Invalidate()
}

// TitleCmd sets the window title.
type TitleCmd struct {
	Title string
}

// SizeCmd requests a new window size.
type SizeCmd struct {
	Width  unit.Dp
	Height unit.Dp
}

// MinSizeCmd constrains the minimum window size.
type MinSizeCmd struct {
	Width  unit.Dp
	Height unit.Dp
}

// MaxSizeCmd constrains the maximum window size.
type MaxSizeCmd struct {
	Width  unit.Dp
	Height unit.Dp
}

// DecoratedCmd shows or hides the system decorations.
type DecoratedCmd struct {
	Decorated bool
}

// MinimizedCmd minimizes or restores the window.
type MinimizedCmd struct {
	Minimized bool
}

// MaximizedCmd maximizes or restores the window.
type MaximizedCmd struct {
	Maximized bool
}

// FullscreenCmd enters or leaves fullscreen mode.
type FullscreenCmd struct {
	Fullscreen bool
}

// RaiseCmd requests keyboard focus for the window.
type RaiseCmd struct{}

// CloseCmd closes the window.
type CloseCmd struct{}

// CursorVisibleCmd shows or hides the cursor.
type CursorVisibleCmd struct {
	Visible bool
}

func (TitleCmd) ImplementsCommand()         {}
func (SizeCmd) ImplementsCommand()          {}
func (MinSizeCmd) ImplementsCommand()       {}
func (MaxSizeCmd) ImplementsCommand()       {}
func (DecoratedCmd) ImplementsCommand()     {}
func (MinimizedCmd) ImplementsCommand()     {}
func (MaximizedCmd) ImplementsCommand()     {}
func (FullscreenCmd) ImplementsCommand()    {}
func (RaiseCmd) ImplementsCommand()         {}
func (CloseCmd) ImplementsCommand()         {}
func (CursorVisibleCmd) ImplementsCommand() {}
