package main

import (
	"math"
	"testing"
)

func silentFrame(t float64) AudioFrame {
	return AudioFrame{Time: t, Waveform: make([]float64, 32)}
}

func beatFrame(t float64) AudioFrame {
	af := silentFrame(t)
	af.Beat = true
	return af
}

func TestScopeEndToEnd(t *testing.T) {
	// init once, frame script owns the time variable, points follow it
	s := CreateSuperscope("test")
	s.InitScript = "n=800"
	s.FrameScript = "t=t-0.05"
	s.PointScript = "x=cos(t)*0.5; y=sin(t)*0.5"
	fb := CreateFramebuffer(64, 64)

	want := 0.0
	for frame := 1; frame <= 3; frame++ {
		af := silentFrame(float64(frame) / 60)
		s.Render(fb, &af)
		want -= 0.05
		got := s.Runner().Get("t", 999)
		if math.Abs(got-want) > 1e-12 {
			t.Fatalf("frame %d: t = %v, want %v", frame, got, want)
		}
		// the point pass saw this frame's t, not the previous frame's
		wantX := math.Cos(want) * 0.5
		if got := s.Runner().Get("x", 999); math.Abs(got-wantX) > 1e-12 {
			t.Fatalf("frame %d: x = %v, want %v", frame, got, wantX)
		}
	}
	if got := s.Runner().Get("n", 0); got != 800 {
		t.Errorf("n = %v, want 800", got)
	}
}

func TestScopePointIndexScaling(t *testing.T) {
	s := CreateSuperscope("test")
	s.InitScript = "n=800; mini=2; maxi=-1"
	s.PointScript = "mini=min(mini,i); maxi=max(maxi,i)"
	fb := CreateFramebuffer(8, 8)
	af := silentFrame(0)
	s.Render(fb, &af)
	if got := s.Runner().Get("mini", -1); got != 0 {
		t.Errorf("first i = %v, want 0", got)
	}
	maxi := s.Runner().Get("maxi", -1)
	if maxi != 799.0/800.0 {
		t.Errorf("last i = %v, want %v", maxi, 799.0/800.0)
	}
	if maxi >= 1 {
		t.Error("i must stay below 1")
	}
}

func TestScopePointCountClamp(t *testing.T) {
	s := CreateSuperscope("test")
	s.InitScript = "n=500000; cnt=0"
	s.PointScript = "cnt=cnt+1"
	fb := CreateFramebuffer(8, 8)
	af := silentFrame(0)
	s.Render(fb, &af)
	if got := s.Runner().Get("cnt", 0); got != maxScopePoints {
		t.Errorf("point count = %v, want %v", got, maxScopePoints)
	}

	s2 := CreateSuperscope("test")
	s2.InitScript = "n=-5; cnt=0"
	s2.PointScript = "cnt=cnt+1"
	s2.Render(fb, &af)
	if got := s2.Runner().Get("cnt", 0); got != 1 {
		t.Errorf("point count = %v, want 1 for negative n", got)
	}
}

func TestScopeInitCadence(t *testing.T) {
	fb := CreateFramebuffer(8, 8)
	af := silentFrame(0)

	once := CreateSuperscope("once")
	once.InitScript = "inits=inits+1"
	once.Render(fb, &af)
	once.Render(fb, &af)
	if got := once.Runner().Get("inits", 0); got != 1 {
		t.Errorf("init ran %v times, want 1", got)
	}

	every := CreateSuperscope("every")
	every.InitScript = "inits=inits+1"
	every.InitEveryFrame = true
	every.Render(fb, &af)
	every.Render(fb, &af)
	if got := every.Runner().Get("inits", 0); got != 2 {
		t.Errorf("init ran %v times, want 2 with InitEveryFrame", got)
	}
}

func TestScopeBeatScript(t *testing.T) {
	s := CreateSuperscope("test")
	s.BeatScript = "beats=beats+1"
	fb := CreateFramebuffer(8, 8)

	af := silentFrame(0)
	s.Render(fb, &af)
	if got := s.Runner().Get("beats", 0); got != 0 {
		t.Errorf("beat script ran without a beat: %v", got)
	}
	if got := s.Runner().Get("b", -1); got != 0 {
		t.Errorf("b = %v, want 0 off-beat", got)
	}

	bf := beatFrame(0.5)
	s.Render(fb, &bf)
	if got := s.Runner().Get("beats", 0); got != 1 {
		t.Errorf("beats = %v, want 1", got)
	}
	if got := s.Runner().Get("b", -1); got != 1 {
		t.Errorf("b = %v, want 1 on beat", got)
	}
}

func TestScopeDrawsPixels(t *testing.T) {
	s := CreateSuperscope("test")
	s.InitScript = "n=64"
	s.PointScript = "x=i*2-1; y=0; red=1; green=1; blue=1"
	fb := CreateFramebuffer(32, 32)
	af := silentFrame(0)
	s.Render(fb, &af)
	lit := 0
	for x := 0; x < fb.Width; x++ {
		for y := 0; y < fb.Height; y++ {
			if r, _, _ := fb.GetPixel(x, y); r == 255 {
				lit++
			}
		}
	}
	if lit < fb.Width/2 {
		t.Errorf("horizontal scope line lit %d pixels, want most of a row", lit)
	}
}

func TestScopeSkipBreaksLine(t *testing.T) {
	s := CreateSuperscope("test")
	s.InitScript = "n=3"
	// middle point skipped: no segment may cross the center column
	s.PointScript = "x=i*3-1; y=0; skip=(i>0.2)&&(i<0.5); red=1; green=1; blue=1"
	fb := CreateFramebuffer(33, 33)
	af := silentFrame(0)
	s.Render(fb, &af)
	if r, _, _ := fb.GetPixel(8, 16); r != 0 {
		t.Error("segment drawn through a skipped point")
	}
}

func TestScopeClampsOutOfRangeCoords(t *testing.T) {
	s := CreateSuperscope("test")
	s.InitScript = "n=4"
	s.PointScript = "x=1/0; y=0/0; red=2; green=-1; blue=0.5"
	s.DrawMode = DrawPoints
	fb := CreateFramebuffer(16, 16)
	af := silentFrame(0)
	s.Render(fb, &af)
	// NaN y clamps to row 0, +Inf x clamps to the last column
	r, g, b := fb.GetPixel(15, 0)
	if r != 255 || g != 0 || b != 127 {
		t.Errorf("clamped pixel = (%d,%d,%d), want (255,0,127)", r, g, b)
	}
}

func TestScopeReset(t *testing.T) {
	s := CreateSuperscope("test")
	s.InitScript = "n=100"
	fb := CreateFramebuffer(8, 8)
	af := silentFrame(0)
	s.Render(fb, &af)
	s.Runner().Set("leftover", 1)
	s.Reset()
	if got := s.Runner().Get("leftover", 0); got != 0 {
		t.Error("Reset kept old environment state")
	}
	s.Render(fb, &af)
	if got := s.Runner().Get("n", 0); got != 100 {
		t.Error("init script did not re-run after Reset")
	}
}
