package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/spiral-carousel/parameter"
)

const (
	sampleRate = beep.SampleRate(parameter.AudioSampleRate)
)

// SoundManager plays the carousel's feedback sounds
// Every method is a no-op until Initialize succeeds, so the viewer runs without an audio device
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	lastTick    time.Time
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	// beep has no speaker Close; clearing the mixer silences everything queued
	sm.mixer.Clear()
	sm.initialized = false
}

// SetMuted toggles output without tearing down the speaker
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
	if muted && sm.initialized {
		sm.mixer.Clear()
	}
}

// Muted reports the mute state
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Enabled reports whether sounds will actually be heard
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized && !sm.muted
}

// PlayTick plays the short click for a center item change
// Ticks closer than MinSoundGap are dropped so fast spins don't smear into a buzz
func (sm *SoundManager) PlayTick(now time.Time) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return false
	}
	if !sm.lastTick.IsZero() && now.Sub(sm.lastTick) < parameter.MinSoundGap {
		return false
	}
	sm.lastTick = now

	streamer := beep.Take(sampleRate.N(parameter.TickSoundDuration),
		NewToneGenerator(sampleRate, parameter.TickSoundFreq, parameter.TickSoundVolume, parameter.TickSoundDuration))
	sm.mixer.Add(streamer)
	return true
}

// PlayStep plays a rising chirp for zoom in (+1) and a falling one for zoom out (-1)
func (sm *SoundManager) PlayStep(dir int) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted || dir == 0 {
		return
	}

	from, to := parameter.StepSoundFreqLow, parameter.StepSoundFreqHigh
	if dir < 0 {
		from, to = to, from
	}
	streamer := beep.Take(sampleRate.N(parameter.StepSoundDuration),
		NewChirpGenerator(sampleRate, from, to, parameter.StepSoundVolume, parameter.StepSoundDuration))
	sm.mixer.Add(streamer)
}

// ToneGenerator generates a sine ping with exponential decay
type ToneGenerator struct {
	sr     beep.SampleRate
	freq   float64
	volume float64
	decay  float64 // per second
	pos    int
}

// NewToneGenerator creates a ping that fades to ~1% over duration
func NewToneGenerator(sr beep.SampleRate, freq, volume float64, duration time.Duration) *ToneGenerator {
	return &ToneGenerator{
		sr:     sr,
		freq:   freq,
		volume: volume,
		decay:  decayFor(duration),
	}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		sample := g.volume * math.Exp(-g.decay*t) * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}

// ChirpGenerator generates a linear frequency sweep
type ChirpGenerator struct {
	sr       beep.SampleRate
	from     float64
	to       float64
	volume   float64
	duration float64 // seconds
	phase    float64
	pos      int
}

// NewChirpGenerator creates a sweep from one frequency to another over duration
func NewChirpGenerator(sr beep.SampleRate, from, to, volume float64, duration time.Duration) *ChirpGenerator {
	return &ChirpGenerator{
		sr:       sr,
		from:     from,
		to:       to,
		volume:   volume,
		duration: duration.Seconds(),
	}
}

func (g *ChirpGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		progress := 1.0
		if g.duration > 0 {
			progress = math.Min(t/g.duration, 1)
		}
		freq := g.from + (g.to-g.from)*progress

		// Phase accumulation keeps the sweep click-free
		g.phase += 2 * math.Pi * freq / float64(g.sr)
		envelope := math.Sin(math.Pi * progress)
		sample := g.volume * envelope * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChirpGenerator) Err() error {
	return nil
}

// decayFor returns the rate that brings e^(-rate·t) to 0.01 at duration
func decayFor(duration time.Duration) float64 {
	s := duration.Seconds()
	if s <= 0 {
		return 0
	}
	return math.Log(100) / s
}
