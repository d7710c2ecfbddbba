package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/palette/constants"
)

// drain streams s to exhaustion and returns every sample produced
func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

// ones is an endless streamer of full-scale samples
func ones() beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{1, 1}
		}
		return len(samples), true
	})
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(44100)

	tests := []struct {
		name     string
		wave     WaveType
		duration time.Duration
	}{
		{"Sine 100ms", WaveSine, 100 * time.Millisecond},
		{"Saw 20ms", WaveSaw, 20 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := drain(NewOscillator(440, tt.duration, tt.wave, rate))
			if len(got) != rate.N(tt.duration) {
				t.Fatalf("streamed %d samples, want %d", len(got), rate.N(tt.duration))
			}
			for i, s := range got {
				if s[0] < -1 || s[0] > 1 || s[0] != s[1] {
					t.Fatalf("sample %d = %v", i, s)
				}
			}
		})
	}
}

func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	env := NewEnvelope(ones(), 100*time.Millisecond, 10*time.Millisecond, 20*time.Millisecond, rate)
	got := drain(env)

	if len(got) != 100 {
		t.Fatalf("streamed %d samples, want 100", len(got))
	}
	if got[0][0] != 0 {
		t.Errorf("attack should start silent, got %f", got[0][0])
	}
	if got[5][0] != 0.5 {
		t.Errorf("mid-attack = %f, want 0.5", got[5][0])
	}
	if got[50][0] != 1 {
		t.Errorf("sustain = %f, want 1", got[50][0])
	}
	if got[99][0] <= 0 || got[99][0] > 0.1 {
		t.Errorf("release tail = %f", got[99][0])
	}
}

func TestChimeSound(t *testing.T) {
	rate := beep.SampleRate(constants.SampleRate)
	got := drain(CreateChimeSound(rate, 1))

	if len(got) != rate.N(constants.ChimeDuration) {
		t.Fatalf("chime length %d, want %d", len(got), rate.N(constants.ChimeDuration))
	}

	peak := 0.0
	for _, s := range got {
		peak = math.Max(peak, math.Abs(s[0]))
	}
	if peak == 0 || peak > 1 {
		t.Errorf("chime peak %f outside (0,1]", peak)
	}
}

func TestZeroVolumeIsSilent(t *testing.T) {
	rate := beep.SampleRate(constants.SampleRate)
	for i, s := range drain(CreateBuzzSound(rate, 0)) {
		if s[0] != 0 || s[1] != 0 {
			t.Fatalf("sample %d = %v, want silence", i, s)
		}
	}
}

func TestOpenDisabled(t *testing.T) {
	p := Open(false, 1, zerolog.Nop())
	if _, ok := p.(Silent); !ok {
		t.Fatalf("Open(false) = %T, want Silent", p)
	}
	p.Copied()
	p.Failed()
	p.Close()
}

func TestSpeakerWithoutDevice(t *testing.T) {
	// Never initialised: playback and close are no-ops
	s := NewSpeaker(0.5, zerolog.Nop())
	s.Copied()
	s.Failed()
	s.Close()
}
