// Package audio synthesizes the game's sound effects through the beep
// speaker. There are no audio asset files; every sound is generated.
package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Manager owns the speaker and plays the game's sound effects. A manager
// whose Init failed (or was never called) stays silent: every Play method
// is a safe no-op, so the game runs without sound rather than failing.
type Manager struct {
	ready bool
	muted bool
}

func NewManager() *Manager {
	return &Manager{}
}

// Init opens the speaker. Called once at startup; failure leaves the
// manager disabled and is not retried.
func (m *Manager) Init() error {
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	m.ready = true
	return nil
}

// SetMuted silences or restores playback without touching the speaker.
func (m *Manager) SetMuted(muted bool) { m.muted = muted }

// ToggleMuted flips the mute state.
func (m *Manager) ToggleMuted() { m.muted = !m.muted }

// Muted reports whether playback is currently silenced.
func (m *Manager) Muted() bool { return m.muted }

// PlayHit plays the short coin blip used for both paddle hits and coin
// pickups. Fire-and-forget: overlapping plays mix in the speaker.
func (m *Manager) PlayHit() {
	if !m.ready || m.muted {
		return
	}
	speaker.Play(newCoinBlip())
}

// Close shuts the speaker down.
func (m *Manager) Close() {
	if m.ready {
		speaker.Close()
	}
}

// newCoinBlip builds the classic two-note coin arpeggio, B5 into E6, as
// enveloped square waves. Each call returns a fresh streamer so plays can
// overlap.
func newCoinBlip() beep.Streamer {
	first := NewEnvelope(
		NewOscillator(987.77, 60*time.Millisecond, WaveSquare, sampleRate),
		60*time.Millisecond, 2*time.Millisecond, 15*time.Millisecond, sampleRate,
	)
	second := NewEnvelope(
		NewOscillator(1318.51, 180*time.Millisecond, WaveSquare, sampleRate),
		180*time.Millisecond, 2*time.Millisecond, 120*time.Millisecond, sampleRate,
	)
	return &effects.Gain{
		Streamer: beep.Seq(first, second),
		Gain:     -0.75,
	}
}
