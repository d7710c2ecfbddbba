// @focus: #sys { audio }
package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/palette/constants"
)

// Player gives audible feedback for clipboard actions. Calls must not block.
type Player interface {
	Copied()
	Failed()
	Close()
}

// Silent is the Player used when sound is disabled or the device failed
type Silent struct{}

func (Silent) Copied() {}
func (Silent) Failed() {}
func (Silent) Close()  {}

// Speaker plays effects through the beep speaker
type Speaker struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	volume      float64
	initialized bool
	log         zerolog.Logger
}

// NewSpeaker creates an uninitialised speaker player; volume is in [0,1]
func NewSpeaker(volume float64, log zerolog.Logger) *Speaker {
	return &Speaker{
		rate:   beep.SampleRate(constants.SampleRate),
		volume: volume,
		log:    log.With().Str("component", "audio").Logger(),
	}
}

// Init opens the output device
func (s *Speaker) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(s.rate, s.rate.N(constants.SpeakerBuffer)); err != nil {
		return err
	}
	s.initialized = true
	s.log.Debug().Int("rate", int(s.rate)).Float64("volume", s.volume).Msg("speaker ready")
	return nil
}

// Copied plays the chime
func (s *Speaker) Copied() {
	s.play(CreateChimeSound(s.rate, s.volume))
}

// Failed plays the buzz
func (s *Speaker) Failed() {
	s.play(CreateBuzzSound(s.rate, s.volume))
}

func (s *Speaker) play(st beep.Streamer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Play(st)
}

// Close stops playback and releases the device
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	s.initialized = false
}

// Open returns a working Speaker, or Silent when sound is off or the device is unavailable.
// A device failure is logged and never fatal.
func Open(enabled bool, volume float64, log zerolog.Logger) Player {
	if !enabled {
		return Silent{}
	}
	sp := NewSpeaker(volume, log)
	if err := sp.Init(); err != nil {
		log.Warn().Err(err).Msg("audio initialization failed, continuing without sound")
		return Silent{}
	}
	return sp
}
