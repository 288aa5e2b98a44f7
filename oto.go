package main

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/ebitengine/oto/v3"
)

var otoContext *oto.Context

func InitOtoContext(sampleRate int) error {
	otoContextOptions := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatFloat32LE,
		BufferSize:   0,
	}
	ctx, readyChan, err := oto.NewContext(otoContextOptions)
	if err != nil {
		return err
	}
	<-readyChan
	otoContext = ctx
	return nil
}

// tapeReader streams a Tape's samples as float32 LE bytes for oto.
type tapeReader struct {
	tape *Tape
	pos  int // sample index, not frame index
}

func (r *tapeReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.tape.samples) {
		return 0, io.EOF
	}
	n := 0
	for n+4 <= len(p) && r.pos < len(r.tape.samples) {
		bits := math.Float32bits(float32(r.tape.samples[r.pos]))
		binary.LittleEndian.PutUint32(p[n:], bits)
		n += 4
		r.pos++
	}
	return n, nil
}

// TapePlayer plays one Tape through the shared oto context.
type TapePlayer struct {
	player *oto.Player
}

func PlayTape(t *Tape) *TapePlayer {
	player := otoContext.NewPlayer(&tapeReader{tape: t})
	player.Play()
	return &TapePlayer{player: player}
}

func (tp *TapePlayer) IsPlaying() bool {
	return tp.player.IsPlaying()
}

func (tp *TapePlayer) Stop() {
	if tp.player != nil {
		tp.player.Close()
		tp.player = nil
	}
}
