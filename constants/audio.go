package constants

import "time"

// Audio Sample Rate
const (
	// SampleRate is the speaker rate used for every effect
	SampleRate = 48000

	// SpeakerBuffer is the latency buffer handed to the speaker
	SpeakerBuffer = 100 * time.Millisecond
)

// Copy Chime Timing
const (
	ChimeDuration           = 250 * time.Millisecond
	ChimeAttack             = 5 * time.Millisecond
	ChimeFundamentalRelease = 220 * time.Millisecond
	ChimeOvertoneRelease    = 90 * time.Millisecond
	ChimeFundamentalHz      = 1318.5 // E6
	ChimeOvertoneHz         = 2637.0 // E7
	ChimeFundamentalMix     = 0.7
	ChimeOvertoneMix        = 0.3
	DefaultChimeVolume      = 0.5
)

// Error Buzz Timing
const (
	BuzzDuration = 80 * time.Millisecond
	BuzzAttack   = 5 * time.Millisecond
	BuzzRelease  = 20 * time.Millisecond
	BuzzHz       = 110.0
)
