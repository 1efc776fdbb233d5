package constants

import "time"

// Audio Engine Constants
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// AudioDefaultVolume is the master volume in [0, 1]
	AudioDefaultVolume = 0.5
)

// Sound Cue Timing
const (
	EatSoundDuration  = 60 * time.Millisecond
	EatSoundFrequency = 880
	EatSoundRelease   = 40 * time.Millisecond

	// One note per cleared line, rising from C5
	ClearSoundDuration = 90 * time.Millisecond
	ClearSoundBaseFreq = 523.25
	ClearSoundRelease  = 50 * time.Millisecond

	GameOverSoundDuration = 600 * time.Millisecond
	GameOverSoundStart    = 220
	GameOverSoundEnd      = 55
	GameOverSoundRelease  = 300 * time.Millisecond

	SoundAttack = 5 * time.Millisecond
)
