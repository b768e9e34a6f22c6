// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"image"
	"math"
	"strings"
	"time"

	"orbeui.org/f32"
	"orbeui.org/io/clipboard"
	"orbeui.org/io/event"
	"orbeui.org/io/input"
	"orbeui.org/io/key"
	"orbeui.org/io/pointer"
	"orbeui.org/io/system"
	"orbeui.org/io/transfer"
	"orbeui.org/unit"
)

// Response reports how an input event was handled.
type Response struct {
	// Consumed is set when the interface wants exclusive use of the
	// event. Hosts embedding the interface in a larger application
	// should only act on events with Consumed unset.
	Consumed bool
	// Repaint is set when the event requires a new frame.
	Repaint bool
}

// TouchPhase is the phase of a touch contact.
type TouchPhase uint8

const (
	// TouchStart is the first contact of a touch.
	TouchStart TouchPhase = iota
	// TouchMove is a movement of an active touch.
	TouchMove
	// TouchEnd is the orderly end of a touch.
	TouchEnd
	// TouchCancel is the abnormal end of a touch, for example when
	// the platform takes over the gesture.
	TouchCancel
)

// State translates between one platform window and the io event
// model. Create one per window. State is not safe for concurrent use.
type State struct {
	// SimulateTouchScreen treats mouse input as touches, for
	// debugging touch handling on desktop. Real touch input creates
	// duplicate touches while it is set.
	SimulateTouchScreen bool

	router *input.Router
	metric unit.Metric
	start  time.Time

	// pointerPos is the pointer position in dp while the pointer is
	// inside the window.
	pointerPos      f32.Point
	pointerInWindow bool
	anyButtonDown   bool

	cursor      pointer.Cursor
	cursorKnown bool

	// touchPointerID is the touch contact being translated to
	// pointer events. Only one touch acts as the pointer at a time.
	touchPointerID pointer.ID
	touchActive    bool

	hasSentIMEStart bool
	allowIME        bool
	imeRect         image.Rectangle
	imeRectKnown    bool
	snippet         key.Snippet
	snippetKnown    bool

	modifiers key.Modifiers
}

// NewState constructs a State for a window with the given metric.
func NewState(m unit.Metric) *State {
	return &State{
		router: new(input.Router),
		metric: m,
		start:  time.Now(),
	}
}

// Router returns the event log the state feeds.
func (s *State) Router() *input.Router {
	return s.router
}

// Metric returns the current pixel conversion metric.
func (s *State) Metric() unit.Metric {
	return s.metric
}

// Frame is the accumulated input of one frame, handed to the user
// interface by TakeInput.
type Frame struct {
	// Events is the frame's event log in arrival order.
	Events []event.Event
	// Now is the time elapsed since the State was created.
	Now time.Duration
	// Size is the window size in dp. A minimized window has zero
	// size.
	Size f32.Point
	// Metric converts between dp and device pixels.
	Metric unit.Metric
}

// TakeInput drains the event log into a Frame. size is the window
// size in device pixels.
func (s *State) TakeInput(size image.Point) Frame {
	scale := s.pxPerDp()
	return Frame{
		Events: s.router.Events(),
		Now:    time.Since(s.start),
		Size:   f32.Pt(float32(size.X)/scale, float32(size.Y)/scale),
		Metric: s.metric,
	}
}

// PointerMove records a pointer move to pos, in device pixels.
func (s *State) PointerMove(pos f32.Point) Response {
	p := pos.Div(s.pxPerDp())
	s.pointerPos = p
	s.pointerInWindow = true
	move := pointer.Event{
		Kind:      pointer.Move,
		Source:    pointer.Mouse,
		Position:  p,
		Modifiers: s.modifiers,
		Time:      s.now(),
	}
	if s.SimulateTouchScreen {
		// Hover is invisible to a touch screen. Only moves with a
		// button held are reported, as both pointer and touch.
		if s.anyButtonDown {
			s.router.Queue(move)
			s.router.Queue(pointer.Event{
				Kind:      pointer.Drag,
				Source:    pointer.Touch,
				Position:  p,
				Modifiers: s.modifiers,
				Time:      s.now(),
			})
		}
	} else {
		s.router.Queue(move)
	}
	return Response{Repaint: true}
}

// PointerButton records a press or release of button at the last
// known pointer position. It is ignored while the pointer is outside
// the window.
func (s *State) PointerButton(pressed bool, button pointer.Buttons) Response {
	if !s.pointerInWindow {
		return Response{Repaint: true}
	}
	kind := pointer.Release
	if pressed {
		kind = pointer.Press
	}
	s.router.Queue(pointer.Event{
		Kind:      kind,
		Source:    pointer.Mouse,
		Position:  s.pointerPos,
		Buttons:   button,
		Modifiers: s.modifiers,
		Time:      s.now(),
	})
	if s.SimulateTouchScreen {
		if pressed {
			s.anyButtonDown = true
			s.router.Queue(pointer.Event{
				Kind:      pointer.Press,
				Source:    pointer.Touch,
				Position:  s.pointerPos,
				Modifiers: s.modifiers,
				Time:      s.now(),
			})
		} else {
			s.anyButtonDown = false
			s.pointerGone()
			s.router.Queue(pointer.Event{
				Kind:      pointer.Release,
				Source:    pointer.Touch,
				Position:  s.pointerPos,
				Modifiers: s.modifiers,
				Time:      s.now(),
			})
		}
	}
	return Response{Repaint: true}
}

// PointerLeave records that the pointer left the window.
func (s *State) PointerLeave() Response {
	s.pointerGone()
	return Response{Repaint: true}
}

// Scroll records a scroll by delta. Deltas in pointer.ScrollPoints
// are in device pixels; deltas in pointer.ScrollLines are line
// counts.
func (s *State) Scroll(delta f32.Point, u pointer.ScrollUnit) Response {
	if u == pointer.ScrollPoints {
		delta = delta.Div(s.pxPerDp())
	}
	s.router.Queue(pointer.Event{
		Kind:       pointer.Scroll,
		Source:     pointer.Mouse,
		Position:   s.pointerPos,
		Scroll:     delta,
		ScrollUnit: u,
		Modifiers:  s.modifiers,
		Time:       s.now(),
	})
	return Response{Repaint: true}
}

// Zoom records a pinch gesture. delta is the logarithmic zoom
// increment reported by the platform; the queued event carries the
// multiplicative factor.
func (s *State) Zoom(delta float32) Response {
	s.router.Queue(pointer.ZoomEvent{
		Factor: float32(math.Exp(float64(delta))),
		Time:   s.now(),
	})
	return Response{Repaint: true}
}

// Touch records a touch contact event. pos is in device pixels and
// force is the normalized contact pressure, or zero when unknown.
//
// The first active touch additionally drives the pointer, so that
// single-finger interaction works like a mouse.
func (s *State) Touch(id pointer.ID, phase TouchPhase, pos f32.Point, force float32) Response {
	p := pos.Div(s.pxPerDp())
	var kind pointer.Kind
	switch phase {
	case TouchStart:
		kind = pointer.Press
	case TouchMove:
		kind = pointer.Move
	case TouchEnd:
		kind = pointer.Release
	case TouchCancel:
		kind = pointer.Cancel
	}
	s.router.Queue(pointer.Event{
		Kind:      kind,
		Source:    pointer.Touch,
		PointerID: id,
		Position:  p,
		Modifiers: s.modifiers,
		Force:     force,
		Time:      s.now(),
	})
	if s.touchActive && s.touchPointerID != id {
		return Response{Repaint: true}
	}
	switch phase {
	case TouchStart:
		s.touchActive = true
		s.touchPointerID = id
		// Move the pointer into place before pressing.
		s.PointerMove(pos)
		s.PointerButton(true, pointer.ButtonPrimary)
	case TouchMove:
		s.PointerMove(pos)
	case TouchEnd:
		s.touchActive = false
		s.PointerButton(false, pointer.ButtonPrimary)
		// The pointer vanishes entirely so nothing stays hovered.
		s.pointerGone()
	case TouchCancel:
		s.touchActive = false
		s.pointerGone()
	}
	return Response{Repaint: true}
}

// HoveredFile records that a file is dragged over the window. A drag
// of several files is reported one file at a time.
func (s *State) HoveredFile(path string) Response {
	s.router.Queue(transfer.HoverEvent{Path: path})
	return Response{Repaint: true}
}

// HoveredFileCancelled records that dragged files left the window
// without a drop.
func (s *State) HoveredFileCancelled() Response {
	s.router.Queue(transfer.CancelEvent{})
	return Response{Repaint: true}
}

// DroppedFile records that a dragged file was dropped on the window.
func (s *State) DroppedFile(path string) Response {
	s.router.Queue(transfer.DropEvent{Path: path})
	return Response{Repaint: true}
}

// KeyboardInput records a key event. text is the text produced by the
// key press according to the keyboard layout, or empty. Synthetic
// presses, generated by some platforms when focus changes, are
// ignored.
//
// Presses of the platform cut, copy and paste shortcuts are
// intercepted: cut and copy are delivered as clipboard.CutEvent and
// clipboard.CopyEvent, and paste reads w's clipboard and delivers its
// text as a clipboard.Event.
func (s *State) KeyboardInput(w Window, e key.Event, text string, synthetic bool) Response {
	if synthetic && e.State == key.Press {
		return Response{Repaint: true}
	}
	pressed := e.State == key.Press
	if pressed {
		switch {
		case isCutShortcut(s.modifiers, e.Name):
			s.router.Queue(clipboard.CutEvent{})
			return Response{Repaint: true}
		case isCopyShortcut(s.modifiers, e.Name):
			s.router.Queue(clipboard.CopyEvent{})
			return Response{Repaint: true}
		case isPasteShortcut(s.modifiers, e.Name):
			if content, ok := w.ReadClipboard(); ok {
				content = strings.ReplaceAll(content, "\r\n", "\n")
				if content != "" {
					s.router.Queue(clipboard.Event{Text: content})
				}
			}
			return Response{Repaint: true}
		}
	}
	s.router.Queue(e)
	if text != "" && pressed && printable(text) {
		// Shortcuts such as ctrl-W produce text on some platforms.
		// Text that is a side effect of a command is not input.
		if !s.modifiers.Contain(key.ModCtrl) && !s.modifiers.Contain(key.ModCommand) {
			s.router.Queue(key.EditEvent{Text: text})
		}
	}
	// Tab moves focus between elements, so it is always used.
	return Response{Repaint: true, Consumed: e.Name == key.NameTab}
}

// ModifiersChanged records the set of held modifier keys.
func (s *State) ModifiersChanged(m key.Modifiers) Response {
	s.modifiers = m
	return Response{Repaint: true}
}

// FocusChanged records that the window gained or lost keyboard focus.
func (s *State) FocusChanged(focus bool) Response {
	s.router.Queue(key.FocusEvent{Focus: focus})
	return Response{Repaint: true}
}

// ScaleFactorChanged records a new device scale, in pixels per dp.
func (s *State) ScaleFactorChanged(pxPerDp float32) Response {
	s.metric = unit.Metric{PxPerDp: pxPerDp, PxPerSp: pxPerDp}
	return Response{Repaint: true}
}

// ThemeChanged records a system theme switch.
func (s *State) ThemeChanged(dark bool) Response {
	s.router.Queue(system.ThemeEvent{Dark: dark})
	return Response{Repaint: true}
}

// StageChanged records a window lifecycle change.
func (s *State) StageChanged(stage system.Stage) Response {
	s.router.Queue(system.StageEvent{Stage: stage})
	return Response{Repaint: true}
}

// Destroyed records that the platform destroyed the window. The
// DestroyEvent is the last event of the window; err is the cause for
// premature closures, or nil.
func (s *State) Destroyed(err error) Response {
	s.router.Queue(system.DestroyEvent{Err: err})
	return Response{}
}

// IMEEnabled records that the platform started an input method
// composition. Duplicate notifications, which some platforms send
// around every commit, collapse into a single key.IMEStart event.
func (s *State) IMEEnabled() Response {
	s.imeStart()
	return Response{Repaint: true}
}

// IMEPreedit records the tentative composition text. hasCursor
// distinguishes an active preedit from a cleared one; a cleared
// preedit ends the composition.
func (s *State) IMEPreedit(text string, hasCursor bool) Response {
	if !hasCursor {
		s.imeEnd()
		return Response{Repaint: true}
	}
	s.imeStart()
	s.router.Queue(key.IMEEvent{State: key.IMEPreedit, Text: text})
	return Response{Repaint: true}
}

// IMECommit records the final composed text and ends the
// composition.
func (s *State) IMECommit(text string) Response {
	s.imeStart()
	s.router.Queue(key.IMEEvent{State: key.IMECommit, Text: text})
	s.imeEnd()
	return Response{Repaint: true}
}

// IMEDisabled records that the platform ended the composition.
func (s *State) IMEDisabled() Response {
	s.imeEnd()
	return Response{Repaint: true}
}

// IMESelection records that the input method moved the selection to
// r.
func (s *State) IMESelection(r key.Range) Response {
	s.router.Queue(key.SelectionEvent(r))
	return Response{Repaint: true}
}

// IMESnippet records that the input method requested the snippet
// range r. The interface answers with a key.SnippetCmd.
func (s *State) IMESnippet(r key.Range) Response {
	s.router.Queue(key.SnippetEvent(r))
	return Response{Repaint: true}
}

// Output is the per-frame output of the user interface, applied to
// the platform window by ProcessOutput.
type Output struct {
	// Cursor is the icon to show over the window.
	Cursor pointer.Cursor
	// CopiedText, when non-empty, replaces the clipboard content.
	CopiedText string
	// IME, when non-nil, is the caret rectangle in dp where input
	// method composition happens. Nil disables the input method.
	IME *f32.Rectangle
}

// ProcessOutput applies the user interface output for one frame to w.
func (s *State) ProcessOutput(w Window, o Output) {
	if o.CopiedText != "" {
		w.WriteClipboard(o.CopiedText)
	}
	s.setCursor(w, o.Cursor)
	allow := o.IME != nil
	if s.allowIME != allow {
		s.allowIME = allow
		w.SetIMEAllowed(allow)
	}
	if o.IME != nil {
		s.setIMERect(w, s.toPxRect(*o.IME))
	} else {
		s.imeRectKnown = false
	}
}

// ProcessCommands applies commands drained from the Router to w.
func (s *State) ProcessCommands(w Window, cmds []input.Command) {
	for _, c := range cmds {
		switch c := c.(type) {
		case clipboard.WriteCmd:
			w.WriteClipboard(c.Text)
		case clipboard.ReadCmd:
			if content, ok := w.ReadClipboard(); ok {
				content = strings.ReplaceAll(content, "\r\n", "\n")
				if content != "" {
					s.router.Queue(clipboard.Event{Text: content})
				}
			}
		case key.SoftKeyboardCmd:
			w.SetIMEAllowed(c.Show)
		case key.SelectionCmd:
			s.setIMERect(w, s.toPxRect(f32.Rectangle{
				Min: f32.Pt(c.Caret.Pos.X, c.Caret.Pos.Y-c.Caret.Ascent),
				Max: f32.Pt(c.Caret.Pos.X, c.Caret.Pos.Y+c.Caret.Descent),
			}))
		case key.SnippetCmd:
			if !s.snippetKnown || c.Snippet != s.snippet {
				s.snippet = c.Snippet
				s.snippetKnown = true
				w.SetIMESnippet(c.Snippet)
			}
		case TitleCmd:
			w.SetTitle(c.Title)
		case SizeCmd:
			w.SetSize(s.toPxSize(c.Width, c.Height))
		case MinSizeCmd:
			w.SetMinSize(s.toPxSize(c.Width, c.Height))
		case MaxSizeCmd:
			w.SetMaxSize(s.toPxSize(c.Width, c.Height))
		case DecoratedCmd:
			w.SetDecorated(c.Decorated)
		case MinimizedCmd:
			w.SetMinimized(c.Minimized)
		case MaximizedCmd:
			w.SetMaximized(c.Maximized)
		case FullscreenCmd:
			w.SetFullscreen(c.Fullscreen)
		case RaiseCmd:
			w.Raise()
		case CloseCmd:
			w.Close()
		case CursorVisibleCmd:
			w.SetCursorVisible(c.Visible)
		}
	}
}

func (s *State) setIMERect(w Window, px image.Rectangle) {
	if s.imeRectKnown && px == s.imeRect {
		return
	}
	s.imeRect = px
	s.imeRectKnown = true
	w.SetIMERect(px)
}

func (s *State) setCursor(w Window, c pointer.Cursor) {
	// Skipping repeated icons avoids flicker near the frame boundary
	// when the platform also controls the icon, such as during
	// window resizing.
	if s.cursorKnown && s.cursor == c {
		return
	}
	if !s.pointerInWindow {
		// Set the icon again once the pointer returns.
		s.cursorKnown = false
		return
	}
	s.cursor = c
	s.cursorKnown = true
	if c == pointer.CursorNone {
		w.SetCursorVisible(false)
	} else {
		w.SetCursorVisible(true)
		w.SetCursor(c)
	}
}

func (s *State) pointerGone() {
	s.pointerInWindow = false
	s.router.Queue(pointer.Event{
		Kind:      pointer.Leave,
		Source:    pointer.Mouse,
		Position:  s.pointerPos,
		Modifiers: s.modifiers,
		Time:      s.now(),
	})
}

func (s *State) imeStart() {
	if !s.hasSentIMEStart {
		s.router.Queue(key.IMEEvent{State: key.IMEStart})
		s.hasSentIMEStart = true
	}
}

func (s *State) imeEnd() {
	s.router.Queue(key.IMEEvent{State: key.IMEEnd})
	s.hasSentIMEStart = false
}

func (s *State) now() time.Duration {
	return time.Since(s.start)
}

func (s *State) pxPerDp() float32 {
	if s.metric.PxPerDp == 0 {
		return 1
	}
	return s.metric.PxPerDp
}

func (s *State) toPxSize(w, h unit.Dp) image.Point {
	sz := image.Pt(s.metric.Dp(w), s.metric.Dp(h))
	if sz.X < 1 {
		sz.X = 1
	}
	if sz.Y < 1 {
		sz.Y = 1
	}
	return sz
}

func (s *State) toPxRect(r f32.Rectangle) image.Rectangle {
	scale := s.pxPerDp()
	return image.Rect(
		int(r.Min.X*scale), int(r.Min.Y*scale),
		int(r.Max.X*scale), int(r.Max.Y*scale),
	)
}

func isCutShortcut(m key.Modifiers, n key.Name) bool {
	return shortcutModifier(m) && n == "X"
}

func isCopyShortcut(m key.Modifiers, n key.Name) bool {
	return shortcutModifier(m) && n == "C"
}

func isPasteShortcut(m key.Modifiers, n key.Name) bool {
	return shortcutModifier(m) && n == "V"
}

func shortcutModifier(m key.Modifiers) bool {
	return m.Contain(key.ModCtrl) || m.Contain(key.ModCommand)
}

// printable reports whether text contains only characters a key press
// may insert. Some platforms deliver special keys, such as delete, as
// private use area characters.
func printable(text string) bool {
	for _, r := range text {
		inPUA := '' <= r && r <= '' ||
			'\U000F0000' <= r && r <= '\U000FFFFD' ||
			'\U00100000' <= r && r <= '\U0010FFFD'
		if inPUA || r < 0x20 || r == 0x7f {
			return false
		}
	}
	return text != ""
}
