package ssengine

import "time"

// fpsSamples is the number of recent frame durations averaged by FrameClock.
const fpsSamples = 10

// FrameClock is a sleeping frame limiter that averages the last few frame
// durations to report a measured rate.
type FrameClock struct {
	// Now and Sleep default to time.Now and time.Sleep.
	Now   func() time.Time
	Sleep func(time.Duration)

	last    time.Time
	started bool
	samples [fpsSamples]time.Duration
	n       int
	next    int
}

// NewFrameClock returns a clock on the wall-clock time source.
func NewFrameClock() *FrameClock {
	return &FrameClock{Now: time.Now, Sleep: time.Sleep}
}

// Tick sleeps so the time since the previous Tick is at least 1/fps seconds
// and records the frame duration. A non-positive fps never sleeps.
func (c *FrameClock) Tick(fps int) {
	now := c.now()
	if !c.started {
		c.started = true
		c.last = now
		return
	}
	if fps > 0 {
		target := time.Second / time.Duration(fps)
		if elapsed := now.Sub(c.last); elapsed < target {
			c.sleep(target - elapsed)
			now = c.now()
		}
	}
	c.samples[c.next] = now.Sub(c.last)
	c.next = (c.next + 1) % fpsSamples
	if c.n < fpsSamples {
		c.n++
	}
	c.last = now
}

func (c *FrameClock) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

func (c *FrameClock) sleep(d time.Duration) {
	if c.Sleep == nil {
		time.Sleep(d)
		return
	}
	c.Sleep(d)
}

// FPS returns the average rate over the recorded frames, or 0 before the
// second Tick.
func (c *FrameClock) FPS() float64 {
	if c.n == 0 {
		return 0
	}
	var total time.Duration
	for i := 0; i < c.n; i++ {
		total += c.samples[i]
	}
	if total <= 0 {
		return 0
	}
	return float64(c.n) / total.Seconds()
}
