package main

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

const (
	analysisWindow  = 1024
	energyHistory   = 43 // ~0.7s of history at 60 fps
	beatSensitivity = 1.35
	minBeatGap      = 0.2 // seconds
)

// AudioFrame is the per-render-frame feature set consumed by effect nodes:
// a waveform window, its magnitude spectrum and a beat flag.
type AudioFrame struct {
	Time     float64
	Waveform []float64 // analysisWindow samples, -1..1
	Spectrum []float64 // analysisWindow/2 magnitudes, normalized
	Energy   float64
	Beat     bool
}

// WaveValue returns the waveform sample at normalized position pos in
// [0,1), linearly interpolated. Used to bind the scope's 'v' variable.
func (af *AudioFrame) WaveValue(pos float64) float64 {
	n := len(af.Waveform)
	if n == 0 {
		return 0
	}
	if pos < 0 {
		pos = 0
	}
	if pos >= 1 {
		pos = math.Nextafter(1, 0)
	}
	fpos := pos * float64(n-1)
	i := int(fpos)
	frac := fpos - float64(i)
	if i+1 >= n {
		return af.Waveform[n-1]
	}
	return af.Waveform[i]*(1-frac) + af.Waveform[i+1]*frac
}

// SpectrumValue returns the magnitude at normalized frequency position pos.
func (af *AudioFrame) SpectrumValue(pos float64) float64 {
	n := len(af.Spectrum)
	if n == 0 {
		return 0
	}
	i := int(pos * float64(n))
	if i < 0 {
		i = 0
	}
	if i >= n {
		i = n - 1
	}
	return af.Spectrum[i]
}

// Analyzer slices a decoded mono tape into per-frame feature sets.
// Beat detection compares instantaneous energy against a short history,
// with a refractory gap so one kick is one beat.
type Analyzer struct {
	samples    []float64
	sampleRate int
	energyHist []float64
	histPos    int
	histFull   bool
	lastBeatAt float64
}

func CreateAnalyzer(samples []float64, sampleRate int) *Analyzer {
	return &Analyzer{
		samples:    samples,
		sampleRate: sampleRate,
		energyHist: make([]float64, energyHistory),
		lastBeatAt: -minBeatGap,
	}
}

func (a *Analyzer) Duration() float64 {
	if a.sampleRate == 0 {
		return 0
	}
	return float64(len(a.samples)) / float64(a.sampleRate)
}

// FrameAt computes the feature set for playback position t (seconds).
// Calls must be monotonic in t for beat detection to behave; rewinding the
// track should go through a fresh Analyzer.
func (a *Analyzer) FrameAt(t float64) AudioFrame {
	af := AudioFrame{
		Time:     t,
		Waveform: make([]float64, analysisWindow),
		Spectrum: make([]float64, analysisWindow/2),
	}
	start := int(t * float64(a.sampleRate))
	for i := range af.Waveform {
		j := start + i
		if j >= 0 && j < len(a.samples) {
			af.Waveform[i] = a.samples[j]
		}
	}

	spec := fft.FFTReal(af.Waveform)
	norm := 2.0 / float64(analysisWindow)
	for i := range af.Spectrum {
		af.Spectrum[i] = cmplx.Abs(spec[i]) * norm
	}

	energy := 0.0
	for _, s := range af.Waveform {
		energy += s * s
	}
	energy /= float64(analysisWindow)
	af.Energy = energy
	af.Beat = a.detectBeat(t, energy)
	return af
}

func (a *Analyzer) detectBeat(t, energy float64) bool {
	count := len(a.energyHist)
	if !a.histFull {
		count = a.histPos
	}
	avg := 0.0
	for i := 0; i < count; i++ {
		avg += a.energyHist[i]
	}
	if count > 0 {
		avg /= float64(count)
	}

	a.energyHist[a.histPos] = energy
	a.histPos++
	if a.histPos == len(a.energyHist) {
		a.histPos = 0
		a.histFull = true
	}

	if count < 4 {
		return false
	}
	if energy > avg*beatSensitivity && energy > 1e-5 && t-a.lastBeatAt >= minBeatGap {
		a.lastBeatAt = t
		return true
	}
	return false
}
