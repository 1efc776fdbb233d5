// Package audio plays short synthesized cues for game events
package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/grid-arcade/constants"
)

const sampleRate = beep.SampleRate(constants.AudioSampleRate)

// SoundManager manages all game audio. Every Play method is a no-op until
// Initialize succeeds, so the game runs silently without an audio device.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSoundManager creates a sound manager at the given master volume
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// Initialized reports whether the speaker is live
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// PlayEat plays the food pickup blip
func (sm *SoundManager) PlayEat() {
	sm.play(func() beep.Streamer { return CreateEatSound(sampleRate, sm.volume) })
}

// PlayClear plays one arpeggio note per cleared line
func (sm *SoundManager) PlayClear(lines int) {
	sm.play(func() beep.Streamer { return CreateClearSound(sampleRate, lines, sm.volume) })
}

// PlayGameOver plays the falling sweep
func (sm *SoundManager) PlayGameOver() {
	sm.play(func() beep.Streamer { return CreateGameOverSound(sampleRate, sm.volume) })
}

// play builds the cue only when it can be heard
func (sm *SoundManager) play(build func() beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.volume <= 0 {
		return
	}
	s := build()
	if s == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
