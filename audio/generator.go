package audio

import (
	"math"
	"sync/atomic"

	"github.com/gopxl/beep"
)

// GlideGenerator hums at a pitch proportional to sled speed
type GlideGenerator struct {
	sr    beep.SampleRate
	pos   int
	phase float64
	speed atomic.Uint64 // float64 bits, written by the UI, read by the speaker
}

// NewGlideGenerator creates a silent glide generator
func NewGlideGenerator(sr beep.SampleRate) *GlideGenerator {
	return &GlideGenerator{sr: sr}
}

// SetSpeed is safe to call while the generator is streaming
func (g *GlideGenerator) SetSpeed(speed float64) {
	g.speed.Store(math.Float64bits(speed))
}

// Frequency maps speed to pitch: 60Hz at rest rising 12Hz per unit, capped at 600Hz
func (g *GlideGenerator) Frequency() float64 {
	speed := math.Float64frombits(g.speed.Load())
	if speed <= 0 {
		return 0
	}
	return min(60+12*speed, 600)
}

func (g *GlideGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	freq := g.Frequency()
	step := 2 * math.Pi * freq / float64(g.sr)
	for i := range samples {
		// Slow tremolo keeps a constant tone from sounding like a test signal
		t := float64(g.pos) / float64(g.sr)
		amplitude := 0.08 * (0.75 + 0.25*math.Sin(2*math.Pi*3*t))
		sample := amplitude * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.phase = math.Mod(g.phase+step, 2*math.Pi)
		g.pos++
	}
	return len(samples), true
}

func (g *GlideGenerator) Err() error {
	return nil
}

// CrashGenerator generates a crunching noise burst with a low rumble
type CrashGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
}

// NewCrashGenerator creates a crash generator; equal seeds produce equal output
func NewCrashGenerator(sr beep.SampleRate, seed int64) *CrashGenerator {
	return &CrashGenerator{
		sr:   sr,
		seed: seed & 0x7fffffff,
	}
}

func (g *CrashGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Quick attack, slower decay
		envelope := math.Exp(-t * 8)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1

		rumble := 0.3 * math.Sin(2*math.Pi*70*t)

		sample := envelope * (0.25*noise + rumble)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *CrashGenerator) Err() error {
	return nil
}
