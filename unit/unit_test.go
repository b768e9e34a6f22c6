// SPDX-License-Identifier: Unlicense OR MIT

package unit

import "testing"

func TestMetric(t *testing.T) {
	m := Metric{PxPerDp: 2, PxPerSp: 3}
	if got := m.Dp(10); got != 20 {
		t.Errorf("Dp(10) = %d, want 20", got)
	}
	if got := m.Sp(10); got != 30 {
		t.Errorf("Sp(10) = %d, want 30", got)
	}
	if got := m.PxToDp(20); got != 10 {
		t.Errorf("PxToDp(20) = %v, want 10", got)
	}
	if got := m.DpToSp(3); got != 2 {
		t.Errorf("DpToSp(3) = %v, want 2", got)
	}
}

func TestMetricZeroValue(t *testing.T) {
	var m Metric
	if got := m.Dp(10); got != 10 {
		t.Errorf("zero metric Dp(10) = %d, want 10", got)
	}
	if got := m.PxToSp(7); got != 7 {
		t.Errorf("zero metric PxToSp(7) = %v, want 7", got)
	}
}

func TestMetricRounding(t *testing.T) {
	m := Metric{PxPerDp: 1.5}
	if got := m.Dp(3); got != 5 {
		t.Errorf("Dp(3) at 1.5x = %d, want 5", got)
	}
}
