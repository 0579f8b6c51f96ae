package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/coin-pong/audio"
	"github.com/lixenwraith/coin-pong/constant"
	"github.com/lixenwraith/coin-pong/game"
	"github.com/lixenwraith/coin-pong/input"
	"github.com/lixenwraith/coin-pong/render"
	"github.com/lixenwraith/coin-pong/terminal"
)

var (
	muteFlag = flag.Bool("mute", false, "start with sound muted (toggle in game with m)")
	seedFlag = flag.Int64("seed", 0, "RNG seed for serves and coin spawns (0 = time-based)")
)

func main() {
	// Panic recovery: restore the terminal before anything is printed so
	// the trace is readable after a crash mid-frame.
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCOIN-PONG CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	// Audio is optional: a failed speaker just means a silent game.
	sound := audio.NewManager()
	if err := sound.Init(); err != nil {
		log.Printf("Audio initialization failed: %v (continuing without sound)", err)
	}
	sound.SetMuted(*muteFlag)
	defer sound.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableMouse()

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	state := game.NewState(seed, sound, render.CoinSprite{})
	renderer := render.New(screen)
	tracker := input.NewTracker()

	run(screen, state, renderer, tracker, sound)
}

// run drives the frame loop: terminal events feed the input tracker, and a
// ticker advances the simulation and redraws. One goroutine mutates state;
// a quit event takes effect at the start of the next iteration, never
// mid-frame.
func run(screen tcell.Screen, state *game.State, renderer *render.Renderer, tracker *input.Tracker, sound *audio.Manager) {
	ticker := time.NewTicker(constant.FramePeriod)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			events <- screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
				continue
			}
			if !tracker.HandleEvent(ev, time.Now()) {
				return
			}

		case <-ticker.C:
			if tracker.TakeMuteToggle() {
				sound.ToggleMuted()
			}

			now := time.Now()
			frame := game.Frame{
				LeftUp:    tracker.Held(input.LeftUp, now),
				LeftDown:  tracker.Held(input.LeftDown, now),
				RightUp:   tracker.Held(input.RightUp, now),
				RightDown: tracker.Held(input.RightDown, now),
			}
			if cx, cy, ok := tracker.TakeClick(); ok {
				cols, rows := screen.Size()
				frame.Click = true
				frame.ClickX, frame.ClickY = render.CellToWorld(cx, cy, cols, rows)
			}

			state.Step(frame)
			renderer.Draw(state)
		}
	}
}
