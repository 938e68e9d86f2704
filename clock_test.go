package ssengine

import (
	"math"
	"testing"
	"time"
)

func TestFrameClockFirstTickOnlyStarts(t *testing.T) {
	ft := newFakeTime()
	slept := time.Duration(0)
	c := &FrameClock{Now: ft.now, Sleep: func(d time.Duration) { slept += d; ft.sleep(d) }}

	c.Tick(60)
	if slept != 0 {
		t.Errorf("first tick slept %v, want 0", slept)
	}
	if c.FPS() != 0 {
		t.Errorf("FPS after first tick = %v, want 0", c.FPS())
	}
}

func TestFrameClockPacesToTarget(t *testing.T) {
	ft := newFakeTime()
	slept := time.Duration(0)
	c := &FrameClock{Now: ft.now, Sleep: func(d time.Duration) { slept += d; ft.sleep(d) }}

	c.Tick(50)
	ft.advance(5 * time.Millisecond)
	c.Tick(50)
	if slept != 15*time.Millisecond {
		t.Errorf("slept %v, want 15ms", slept)
	}
	if math.Abs(c.FPS()-50) > 1e-9 {
		t.Errorf("FPS = %v, want 50", c.FPS())
	}
}

func TestFrameClockSlowFramesDoNotSleep(t *testing.T) {
	ft := newFakeTime()
	slept := time.Duration(0)
	c := &FrameClock{Now: ft.now, Sleep: func(d time.Duration) { slept += d; ft.sleep(d) }}

	c.Tick(100)
	ft.advance(40 * time.Millisecond)
	c.Tick(100)
	if slept != 0 {
		t.Errorf("slept %v on a slow frame", slept)
	}
	if math.Abs(c.FPS()-25) > 1e-9 {
		t.Errorf("FPS = %v, want 25", c.FPS())
	}
}

func TestFrameClockAveragesRecentFrames(t *testing.T) {
	ft := newFakeTime()
	c := ft.clock()

	c.Tick(0)
	// 10 fast frames then 10 slow ones; only the slow ones remain
	for i := 0; i < fpsSamples; i++ {
		ft.advance(10 * time.Millisecond)
		c.Tick(0)
	}
	if math.Abs(c.FPS()-100) > 1e-9 {
		t.Errorf("FPS = %v, want 100", c.FPS())
	}
	for i := 0; i < fpsSamples; i++ {
		ft.advance(20 * time.Millisecond)
		c.Tick(0)
	}
	if math.Abs(c.FPS()-50) > 1e-9 {
		t.Errorf("FPS = %v, want 50", c.FPS())
	}

	// a partial window mixes both
	ft.advance(10 * time.Millisecond)
	c.Tick(0)
	want := float64(fpsSamples) / (0.010 + 0.020*float64(fpsSamples-1))
	if math.Abs(c.FPS()-want) > 1e-9 {
		t.Errorf("FPS = %v, want %v", c.FPS(), want)
	}
}

func TestFrameClockNonPositiveFPSNeverSleeps(t *testing.T) {
	ft := newFakeTime()
	slept := false
	c := &FrameClock{Now: ft.now, Sleep: func(time.Duration) { slept = true }}
	for i := 0; i < 3; i++ {
		c.Tick(0)
		c.Tick(-5)
	}
	if slept {
		t.Error("clock slept with no target rate")
	}
}
