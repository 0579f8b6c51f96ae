package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// TestOscillatorSine verifies sine wave generation stays in range
func TestOscillatorSine(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, rate)

	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)

	if !ok {
		t.Error("Expected stream to return ok=true")
	}
	if n != 100 {
		t.Errorf("Expected to stream 100 samples, got %d", n)
	}
	for i := 0; i < n; i++ {
		if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
			t.Errorf("Sample %d out of range: %f", i, samples[i][0])
		}
		if samples[i][0] != samples[i][1] {
			t.Errorf("Sample %d: expected identical stereo channels", i)
		}
	}
	if osc.Err() != nil {
		t.Errorf("Expected no error, got: %v", osc.Err())
	}
}

// TestOscillatorSquare verifies square wave samples only take the two rail
// values
func TestOscillatorSquare(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(220, 50*time.Millisecond, WaveSquare, rate)

	samples := make([][2]float64, 50)
	n, _ := osc.Stream(samples)

	for i := 0; i < n; i++ {
		if samples[i][0] != 1.0 && samples[i][0] != -1.0 {
			t.Errorf("Sample %d: expected rail value, got %f", i, samples[i][0])
		}
	}
}

// TestOscillatorTerminates verifies the streamer ends after exactly the
// requested duration
func TestOscillatorTerminates(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 10 * time.Millisecond
	osc := NewOscillator(440, duration, WaveSine, rate)

	total := 0
	buf := make([][2]float64, 64)
	for {
		n, ok := osc.Stream(buf)
		total += n
		if !ok {
			break
		}
	}

	if want := rate.N(duration); total != want {
		t.Errorf("Expected %d samples, got %d", want, total)
	}
}

// TestEnvelopeShaping verifies attack starts from silence and release ends
// near silence
func TestEnvelopeShaping(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 20 * time.Millisecond

	env := NewEnvelope(
		NewOscillator(440, duration, WaveSquare, rate),
		duration, 5*time.Millisecond, 5*time.Millisecond, rate,
	)

	total := rate.N(duration)
	samples := make([][2]float64, total)
	n, _ := env.Stream(samples)
	if n != total {
		t.Fatalf("Expected %d samples, got %d", total, n)
	}

	// Attack: first sample silent, gain rising
	if samples[0][0] != 0 {
		t.Errorf("Expected attack to start at silence, got %f", samples[0][0])
	}

	// Release: final samples attenuated below the rail
	last := samples[n-1][0]
	if last < -0.01 || last > 0.01 {
		t.Errorf("Expected release to end near silence, got %f", last)
	}

	// Sustain: middle runs at full rail amplitude
	mid := samples[n/2][0]
	if mid != 1.0 && mid != -1.0 {
		t.Errorf("Expected full amplitude mid-stream, got %f", mid)
	}
}

// TestCoinBlipStream verifies the blip streams attenuated samples and
// terminates
func TestCoinBlipStream(t *testing.T) {
	blip := newCoinBlip()

	total := 0
	buf := make([][2]float64, 512)
	for {
		n, ok := blip.Stream(buf)
		for i := 0; i < n; i++ {
			if buf[i][0] < -0.3 || buf[i][0] > 0.3 {
				t.Fatalf("Sample %d louder than the gain allows: %f", total+i, buf[i][0])
			}
		}
		total += n
		if !ok {
			break
		}
		if total > int(sampleRate) {
			t.Fatal("Blip did not terminate within a second of audio")
		}
	}

	if want := sampleRate.N(240 * time.Millisecond); total != want {
		t.Errorf("Expected %d samples for the two notes, got %d", want, total)
	}
}

// TestManagerSilentWithoutInit verifies an uninitialized manager is a safe
// no-op
func TestManagerSilentWithoutInit(t *testing.T) {
	m := NewManager()

	// Must not panic or touch the speaker
	m.PlayHit()
	m.Close()

	if m.Muted() {
		t.Error("Expected manager unmuted by default")
	}
	m.SetMuted(true)
	if !m.Muted() {
		t.Error("Expected manager muted after SetMuted(true)")
	}
	m.ToggleMuted()
	if m.Muted() {
		t.Error("Expected toggle to unmute")
	}
}
