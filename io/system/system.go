// SPDX-License-Identifier: Unlicense OR MIT

// Package system contains events usually handled at the top-level
// program level.
package system

// A StageEvent is generated whenever the stage of a
// window changes.
type StageEvent struct {
	Stage Stage
}

// DestroyEvent is the last event sent through
// a window event channel.
type DestroyEvent struct {
	// Err is nil for normal window closures. If a
	// window is prematurely closed, Err is the cause.
	Err error
}

// A ThemeEvent is generated when the system theme
// changes between light and dark.
type ThemeEvent struct {
	Dark bool
}

// Stage of a window.
type Stage uint8

const (
	// StagePaused is the stage for windows that have no on-screen representation.
	// Paused windows don't receive frames.
	StagePaused Stage = iota
	// StageInactive is the stage for windows that are visible, but not active.
	StageInactive
	// StageRunning is for active and visible windows.
	StageRunning
)

func (l Stage) String() string {
	switch l {
	case StagePaused:
		return "StagePaused"
	case StageInactive:
		return "StageInactive"
	case StageRunning:
		return "StageRunning"
	default:
		panic("unexpected Stage value")
	}
}

func (StageEvent) ImplementsEvent()   {}
func (DestroyEvent) ImplementsEvent() {}
func (ThemeEvent) ImplementsEvent()   {}
