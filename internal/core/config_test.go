package core

import (
	"math"
	"testing"
)

func TestRuntimeConfigFrameMs(t *testing.T) {
	tests := []struct {
		rate int
		want float64
	}{
		{60, 1000.0 / 60},
		{30, 1000.0 / 30},
		{0, 1000.0 / 60},
		{-4, 1000.0 / 60},
	}

	for _, tc := range tests {
		got := RuntimeConfig{TickRate: tc.rate}.FrameMs()
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("FrameMs() with rate %d = %v, expected %v", tc.rate, got, tc.want)
		}
	}
}

func TestActionString(t *testing.T) {
	if ActionJump.String() != "Jump" {
		t.Errorf("ActionJump.String() = %q", ActionJump.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown, got %q", Action(99).String())
	}
}
