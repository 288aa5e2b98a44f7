package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dh1tw/gosamplerate"
	"github.com/go-audio/wav"
	mp3 "github.com/hajimehoshi/go-mp3"
)

// EngineSampleRate is the rate everything downstream of decoding runs at;
// decoded audio at any other rate is resampled on load.
const EngineSampleRate = 44100

// Tape is a fully decoded track: interleaved stereo float64 samples at
// EngineSampleRate.
type Tape struct {
	samples []float64
}

func (t *Tape) NFrames() int {
	return len(t.samples) / 2
}

func (t *Tape) Duration() float64 {
	return float64(t.NFrames()) / float64(EngineSampleRate)
}

// Mono mixes the track down to one channel for analysis.
func (t *Tape) Mono() []float64 {
	out := make([]float64, t.NFrames())
	for i := range out {
		out[i] = (t.samples[i*2] + t.samples[i*2+1]) * 0.5
	}
	return out
}

// LoadTape decodes a WAV or MP3 file into a Tape.
func LoadTape(path string) (*Tape, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return loadWav(path)
	case ".mp3":
		return loadMp3(path)
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", path)
	}
}

func loadWav(path string) (*Tape, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	dec := wav.NewDecoder(f)
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	nchannels := buf.Format.NumChannels
	if nchannels < 1 {
		return nil, fmt.Errorf("%s: no channels", path)
	}
	bitDepth := buf.SourceBitDepth
	if bitDepth == 0 {
		bitDepth = int(dec.BitDepth)
	}
	scale := 1.0 / float64(int64(1)<<(bitDepth-1))
	nframes := len(buf.Data) / nchannels
	samples := make([]float64, nframes*2)
	for i := 0; i < nframes; i++ {
		left := float64(buf.Data[i*nchannels]) * scale
		right := left
		if nchannels > 1 {
			right = float64(buf.Data[i*nchannels+1]) * scale
		}
		samples[i*2] = left
		samples[i*2+1] = right
	}
	return resampleTape(samples, buf.Format.SampleRate)
}

func loadMp3(path string) (*Tape, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	dec, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	// go-mp3 always emits 16-bit little-endian stereo
	nframes := len(raw) / 4
	samples := make([]float64, nframes*2)
	for i := 0; i < nframes*2; i++ {
		s := int16(uint16(raw[i*2]) | uint16(raw[i*2+1])<<8)
		samples[i] = float64(s) / 32768.0
	}
	return resampleTape(samples, dec.SampleRate())
}

// resampleTape converts interleaved stereo samples at rate to
// EngineSampleRate using libsamplerate's one-shot API.
func resampleTape(samples []float64, rate int) (*Tape, error) {
	if rate == EngineSampleRate {
		return &Tape{samples: samples}, nil
	}
	ratio := float64(EngineSampleRate) / float64(rate)
	tempBuf := make([]float32, len(samples))
	for i, smp := range samples {
		tempBuf[i] = float32(smp)
	}
	resampledBuf, err := gosamplerate.Simple(tempBuf, ratio, 2, gosamplerate.SRC_SINC_FASTEST)
	if err != nil {
		return nil, fmt.Errorf("resampling %d -> %d Hz: %w", rate, EngineSampleRate, err)
	}
	out := make([]float64, len(resampledBuf))
	for i, smp := range resampledBuf {
		out[i] = float64(smp)
	}
	return &Tape{samples: out}, nil
}
