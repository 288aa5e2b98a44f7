package main

import "math"

const (
	maxScopePoints     = 128000
	defaultScopePoints = 512
	skipThreshold      = 0.00001
)

type ScopeDrawMode int

const (
	DrawLines ScopeDrawMode = iota
	DrawPoints
)

// Superscope plots a parametric point cloud or polyline each frame by
// running a small user script once per point. It owns one Runner and
// therefore one variable environment; nothing is shared between scope
// instances, so preview and live scopes cannot interfere.
//
// Script contract, by convention of the preset format:
// host-seeded inputs are t, i, v, b, w, h; script outputs are
// x, y (-1..1), red, green, blue (0..1) and skip.
type Superscope struct {
	ScopeName   string
	InitScript  string
	FrameScript string
	BeatScript  string
	PointScript string
	DrawMode    ScopeDrawMode

	// InitEveryFrame re-runs the init script on every frame. Legacy
	// presets exist written against hosts with either cadence, so this is
	// a per-node knob rather than engine behavior.
	InitEveryFrame bool

	// TimeStep is added to t before each frame's scripts run. Presets
	// that advance t themselves (frame scripts like "t=t-0.05") want 0.
	TimeStep float64

	runner      *Runner
	initialized bool
}

func CreateSuperscope(name string) *Superscope {
	return &Superscope{
		ScopeName: name,
		DrawMode:  DrawLines,
		runner:    CreateRunner(),
	}
}

func (s *Superscope) Name() string {
	return s.ScopeName
}

func (s *Superscope) Runner() *Runner {
	return s.runner
}

// Reset forgets all script state; the next Render runs the init script
// against a fresh environment.
func (s *Superscope) Reset() {
	s.runner = CreateRunner()
	s.initialized = false
}

// Script returns the four scripts joined for display/clipboard purposes.
func (s *Superscope) Script() string {
	return "// init\n" + s.InitScript + "\n// frame\n" + s.FrameScript +
		"\n// beat\n" + s.BeatScript + "\n// point\n" + s.PointScript
}

func (s *Superscope) Render(fb *Framebuffer, af *AudioFrame) {
	r := s.runner
	r.Set("w", float64(fb.Width))
	r.Set("h", float64(fb.Height))

	if !s.initialized || s.InitEveryFrame {
		r.Execute(s.InitScript)
		s.initialized = true
	}
	if s.TimeStep != 0 {
		r.Set("t", r.Get("t", 0)+s.TimeStep)
	}
	if af.Beat {
		r.Set("b", 1)
	} else {
		r.Set("b", 0)
	}
	r.Execute(s.FrameScript)
	if af.Beat {
		r.Execute(s.BeatScript)
	}

	n := int(r.Get("n", defaultScopePoints))
	if n < 1 {
		n = 1
	}
	if n > maxScopePoints {
		n = maxScopePoints
	}

	havePrev := false
	prevX, prevY := 0, 0
	for idx := 0; idx < n; idx++ {
		pos := float64(idx) / float64(n)
		r.Set("i", pos)
		r.Set("v", af.WaveValue(pos))
		r.Execute(s.PointScript)

		if r.Get("skip", 0) > skipThreshold {
			havePrev = false
			continue
		}
		px, py := s.toPixel(fb, r.Get("x", 0), r.Get("y", 0))
		cr := colorByte(r.Get("red", 1))
		cg := colorByte(r.Get("green", 1))
		cb := colorByte(r.Get("blue", 1))
		if s.DrawMode == DrawLines && havePrev {
			fb.DrawLine(prevX, prevY, px, py, cr, cg, cb)
		} else {
			fb.SetPixel(px, py, cr, cg, cb)
		}
		prevX, prevY = px, py
		havePrev = true
	}
}

// toPixel maps normalized coordinates (-1..1, y up) to clamped pixel
// coordinates. NaN/Inf from script arithmetic clamp like any other
// out-of-range value.
func (s *Superscope) toPixel(fb *Framebuffer, x, y float64) (int, int) {
	px := (x + 1) * 0.5 * float64(fb.Width-1)
	py := (1 - y) * 0.5 * float64(fb.Height-1)
	return clampInt(px, 0, fb.Width-1), clampInt(py, 0, fb.Height-1)
}

func clampInt(v float64, lo, hi int) int {
	if math.IsNaN(v) || v < float64(lo) {
		return lo
	}
	if v > float64(hi) {
		return hi
	}
	return int(v)
}

func colorByte(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v * 255)
}
