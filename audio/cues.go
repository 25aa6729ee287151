package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	cueDuration  = 350 * time.Millisecond
	cueAmplitude = 0.18
)

// CueManager plays short transition cues for camera zoom events
// Initialization failure is non-fatal; an uninitialized manager swallows Play
// calls so the host keeps running silent
type CueManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewCueManager creates an uninitialized cue manager
func NewCueManager() *CueManager {
	return &CueManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the speaker and attaches the mixer
func (cm *CueManager) Initialize() error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(cm.mixer)
	cm.initialized = true
	return nil
}

// Cleanup silences and detaches all streamers
func (cm *CueManager) Cleanup() {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if !cm.initialized {
		return
	}

	cm.mixer.Clear()
	cm.initialized = false
}

// PlayZoomIn plays a short rising sweep
func (cm *CueManager) PlayZoomIn() {
	cm.playSweep(220, 660)
}

// PlayZoomOut plays a short falling sweep
func (cm *CueManager) PlayZoomOut() {
	cm.playSweep(660, 220)
}

func (cm *CueManager) playSweep(fromHz, toHz float64) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if !cm.initialized {
		return
	}

	streamer := beep.Take(sampleRate.N(cueDuration), NewSweepGenerator(sampleRate, fromHz, toHz, cueDuration))
	cm.mixer.Add(streamer)
}

// SweepGenerator produces a sine sweep between two frequencies with a
// fade-out envelope
type SweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	samples  int
	pos      int
	phase    float64
}

// NewSweepGenerator creates a sweep over the given duration
func NewSweepGenerator(sr beep.SampleRate, fromHz, toHz float64, duration time.Duration) *SweepGenerator {
	return &SweepGenerator{
		sr:      sr,
		from:    fromHz,
		to:      toHz,
		samples: sr.N(duration),
	}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := float64(g.pos) / float64(g.samples)
		if progress > 1 {
			progress = 1
		}

		// Phase accumulation keeps the sweep click-free
		freq := g.from + (g.to-g.from)*progress
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		envelope := cueAmplitude * (1 - progress)
		sample := envelope * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}
