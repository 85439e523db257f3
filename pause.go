package ggdraw

import "time"

// Pause blocks the calling goroutine for ms milliseconds. It is meant for
// pacing animations and cannot be interrupted. A negative duration returns
// ErrInvalidArgument.
func (c *Canvas) Pause(ms int) error {
	if ms < 0 {
		return invalidf("Pause: negative duration %d", ms)
	}
	c.sleep(time.Duration(ms) * time.Millisecond)
	return nil
}
