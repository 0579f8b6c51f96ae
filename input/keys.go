// Package input converts terminal events into the per-frame input state
// the simulation samples: a queryable key-down state for the four movement
// keys plus at most one pending pointer-down.
package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/coin-pong/constant"
)

// Action is one of the movement controls sampled once per frame.
type Action int

const (
	LeftUp Action = iota
	LeftDown
	RightUp
	RightDown
	actionCount
)

// Tracker turns terminal key events into a queryable instantaneous
// key-down state. Terminals deliver key repeats rather than releases, so a
// press marks its action held for a fixed window and auto-repeat keeps it
// alive; Held answers against an explicit clock so frames and tests sample
// the same way.
type Tracker struct {
	heldUntil [actionCount]time.Time

	clicked        bool
	clickX, clickY int

	muteToggled bool
}

func NewTracker() *Tracker {
	return &Tracker{}
}

// HandleEvent records one terminal event. It returns false when the event
// asks to quit (Esc, Ctrl-C or q); the caller stops at the start of the
// next frame, never mid-step.
func (t *Tracker) HandleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			t.press(RightUp, now)
		case tcell.KeyDown:
			t.press(RightDown, now)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case 'w', 'W':
				t.press(LeftUp, now)
			case 's', 'S':
				t.press(LeftDown, now)
			case 'm', 'M':
				t.muteToggled = true
			}
		}

	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			t.clickX, t.clickY = ev.Position()
			t.clicked = true
		}
	}
	return true
}

func (t *Tracker) press(a Action, now time.Time) {
	t.heldUntil[a] = now.Add(constant.KeyHoldWindow)
}

// Held reports whether the action's key counts as down at the given
// instant.
func (t *Tracker) Held(a Action, now time.Time) bool {
	return now.Before(t.heldUntil[a])
}

// TakeClick returns and clears the pending pointer-down in screen cell
// coordinates. Only the most recent press between frames is kept.
func (t *Tracker) TakeClick() (x, y int, ok bool) {
	if !t.clicked {
		return 0, 0, false
	}
	t.clicked = false
	return t.clickX, t.clickY, true
}

// TakeMuteToggle returns and clears whether the mute key was pressed since
// the last frame.
func (t *Tracker) TakeMuteToggle() bool {
	toggled := t.muteToggled
	t.muteToggled = false
	return toggled
}
