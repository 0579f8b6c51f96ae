package constant

import "time"

// Frame Loop
const (
	// FramePeriod paces the simulation at roughly 60 FPS
	FramePeriod = 16 * time.Millisecond

	// KeyHoldWindow is how long a key counts as held after a press event.
	// Terminals report repeats rather than releases, so the window has to
	// outlast the auto-repeat gap or paddle movement stutters.
	KeyHoldWindow = 550 * time.Millisecond
)
