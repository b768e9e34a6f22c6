// SPDX-License-Identifier: Unlicense OR MIT

/*
Package unit implements device independent units.

Device independent pixel, or dp, is the unit for sizes independent of
the underlying display device.

Scaled pixels, or sp, is the unit for text sizes. An sp is like dp with
text scaling applied.

Device pixels, or px, are the pixels of the underlying display. The
Metric type converts between dp, sp and px.
*/
package unit

import "math"

// Dp is a device independent pixel count.
type Dp float32

// Sp is a scaled pixel count, for text sizes.
type Sp float32

// Metric converts device independent units to device pixels.
type Metric struct {
	// PxPerDp is the device-dependent pixels per dp.
	PxPerDp float32
	// PxPerSp is the device-dependent pixels per sp.
	PxPerSp float32
}

// Dp rounds the value v to the nearest whole pixel.
func (c Metric) Dp(v Dp) int {
	return roundPx(float32(v) * c.scaleDp())
}

// Sp rounds the value v to the nearest whole pixel.
func (c Metric) Sp(v Sp) int {
	return roundPx(float32(v) * c.scaleSp())
}

// DpToSp converts a value in dp to the equivalent in sp.
func (c Metric) DpToSp(v Dp) Sp {
	return Sp(float32(v) * c.scaleDp() / c.scaleSp())
}

// SpToDp converts a value in sp to the equivalent in dp.
func (c Metric) SpToDp(v Sp) Dp {
	return Dp(float32(v) * c.scaleSp() / c.scaleDp())
}

// PxToDp converts a number of whole pixels to the equivalent in dp.
func (c Metric) PxToDp(v int) Dp {
	return Dp(float32(v) / c.scaleDp())
}

// PxToSp converts a number of whole pixels to the equivalent in sp.
func (c Metric) PxToSp(v int) Sp {
	return Sp(float32(v) / c.scaleSp())
}

func (c Metric) scaleDp() float32 {
	if c.PxPerDp == 0 {
		return 1
	}
	return c.PxPerDp
}

func (c Metric) scaleSp() float32 {
	if c.PxPerSp == 0 {
		return 1
	}
	return c.PxPerSp
}

func roundPx(v float32) int {
	return int(math.Round(float64(v)))
}
