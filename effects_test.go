package main

import "testing"

func flatFrame() AudioFrame {
	return AudioFrame{Waveform: make([]float64, 32)}
}

func TestEffectChainToggle(t *testing.T) {
	chain := CreateEffectChain(&Fadeout{Amount: 255}, &ColorReduce{Bits: 4})
	if !chain.IsEnabled("fadeout") {
		t.Error("nodes should start enabled")
	}
	if chain.Toggle("fadeout") {
		t.Error("Toggle should report the new (disabled) state")
	}
	fb := CreateFramebuffer(2, 2)
	fb.SetPixel(0, 0, 200, 200, 200)
	af := flatFrame()
	chain.Render(fb, &af)
	if r, _, _ := fb.GetPixel(0, 0); r == 0 {
		t.Error("disabled fadeout still ran")
	}
	if chain.Toggle("nosuch") {
		t.Error("Toggle of unknown node should report false")
	}
}

func TestColorReduce(t *testing.T) {
	fb := CreateFramebuffer(1, 1)
	fb.SetPixel(0, 0, 0xAB, 0xCD, 0xEF)
	af := flatFrame()
	cr := &ColorReduce{Bits: 4}
	cr.Render(fb, &af)
	r, g, b := fb.GetPixel(0, 0)
	if r != 0xA0 || g != 0xC0 || b != 0xE0 {
		t.Errorf("got (%#x,%#x,%#x), want (0xa0,0xc0,0xe0)", r, g, b)
	}
}

func TestBrightnessContrastClamps(t *testing.T) {
	fb := CreateFramebuffer(2, 1)
	fb.SetPixel(0, 0, 250, 5, 128)
	af := flatFrame()
	bc := &BrightnessContrast{Brightness: 50, Contrast: 1}
	bc.Render(fb, &af)
	r, g, b := fb.GetPixel(0, 0)
	if r != 255 {
		t.Errorf("r = %d, want saturated 255", r)
	}
	if g != 55 || b != 178 {
		t.Errorf("got g=%d b=%d, want 55/178", g, b)
	}
}

func TestBoxBlurSpreads(t *testing.T) {
	fb := CreateFramebuffer(5, 5)
	fb.SetPixel(2, 2, 255, 255, 255)
	af := flatFrame()
	bl := &BoxBlur{Radius: 1}
	bl.Render(fb, &af)
	center, _, _ := fb.GetPixel(2, 2)
	neighbor, _, _ := fb.GetPixel(2, 1)
	if center == 255 {
		t.Error("blur left the center untouched")
	}
	if neighbor == 0 {
		t.Error("blur did not spread to neighbors")
	}
	if corner, _, _ := fb.GetPixel(0, 0); corner != 0 {
		t.Error("single-pass blur reached the far corner")
	}
}

func TestConvolutionSharpenOnFlatImage(t *testing.T) {
	fb := CreateFramebuffer(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			fb.SetPixel(x, y, 80, 90, 100)
		}
	}
	af := flatFrame()
	cv := &Convolution{Kernel: KernelSharpen}
	cv.Render(fb, &af)
	// sharpen weights sum to 1, so a flat image is a fixed point
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			r, g, b := fb.GetPixel(x, y)
			if r != 80 || g != 90 || b != 100 {
				t.Fatalf("pixel (%d,%d) = (%d,%d,%d), changed on flat input", x, y, r, g, b)
			}
		}
	}
}

func TestConvolutionEdgeOnFlatImage(t *testing.T) {
	fb := CreateFramebuffer(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			fb.SetPixel(x, y, 200, 200, 200)
		}
	}
	af := flatFrame()
	cv := &Convolution{Kernel: KernelEdge}
	cv.Render(fb, &af)
	// edge kernel sums to 0: flat input goes black
	if r, _, _ := fb.GetPixel(1, 1); r != 0 {
		t.Errorf("edge-detect on flat input = %d, want 0", r)
	}
}

func TestParticlesBurstAndDecay(t *testing.T) {
	ps := CreateParticles(1234)
	fb := CreateFramebuffer(32, 32)
	af := flatFrame()
	af.Beat = true
	af.Energy = 0.2
	af.Time = 0.016
	ps.Render(fb, &af)
	if len(ps.particles) == 0 {
		t.Fatal("beat did not burst any particles")
	}
	count := len(ps.particles)

	// run well past the particle lifetime with no further beats
	af.Beat = false
	for frame := 0; frame < 300; frame++ {
		af.Time += 0.016
		ps.Render(fb, &af)
	}
	if len(ps.particles) != 0 {
		t.Errorf("%d of %d particles still alive after their lifetime", len(ps.particles), count)
	}
}

func TestParticlesDeterministicSeed(t *testing.T) {
	render := func() []particle {
		ps := CreateParticles(42)
		fb := CreateFramebuffer(16, 16)
		af := flatFrame()
		af.Beat = true
		af.Energy = 0.1
		af.Time = 0.016
		ps.Render(fb, &af)
		return ps.particles
	}
	a := render()
	b := render()
	if len(a) != len(b) {
		t.Fatalf("runs produced %d vs %d particles", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("particle %d differs between identically seeded runs", i)
		}
	}
}

func TestWaterRippleSpreads(t *testing.T) {
	wt := CreateWater()
	fb := CreateFramebuffer(32, 32)
	af := flatFrame()
	wt.Render(fb, &af) // allocate field
	wt.Splash(16, 16, 2, 10)
	for i := 0; i < 8; i++ {
		wt.Render(fb, &af)
	}
	energy := 0.0
	for _, h := range wt.previous {
		if h < 0 {
			energy -= h
		} else {
			energy += h
		}
	}
	if energy == 0 {
		t.Error("splash energy vanished immediately")
	}
	// the wavefront moves about one cell per step, so after 8 steps some
	// height must exist well outside the original splash radius
	spread := 0.0
	for y := 1; y < 31; y++ {
		for x := 1; x < 31; x++ {
			if abs(y-16) >= 5 || abs(x-16) >= 5 {
				h := wt.previous[y*32+x]
				if h < 0 {
					h = -h
				}
				spread += h
			}
		}
	}
	if spread == 0 {
		t.Error("ripple did not propagate away from the splash center")
	}
}

func TestBlendPixels(t *testing.T) {
	a := []uint8{200, 100, 0, 255}
	b := []uint8{100, 100, 50, 255}
	dst := make([]uint8, 4)
	BlendPixels(dst, a, b, BlendAdditive)
	if dst[0] != 255 || dst[1] != 200 || dst[2] != 50 {
		t.Errorf("additive = %v", dst[:3])
	}
	BlendPixels(dst, a, b, BlendAverage)
	if dst[0] != 150 || dst[1] != 100 || dst[2] != 25 {
		t.Errorf("average = %v", dst[:3])
	}
	BlendPixels(dst, a, b, BlendMaximum)
	if dst[0] != 200 || dst[1] != 100 || dst[2] != 50 {
		t.Errorf("maximum = %v", dst[:3])
	}
}

func TestFeedbackGhosts(t *testing.T) {
	fx := &Feedback{Mode: BlendMaximum}
	fb := CreateFramebuffer(4, 4)
	af := flatFrame()
	fb.SetPixel(1, 1, 200, 0, 0)
	fx.Render(fb, &af) // primes the history buffer
	fb.Clear()
	fx.Render(fb, &af)
	if r, _, _ := fb.GetPixel(1, 1); r != 200 {
		t.Errorf("ghost pixel = %d, want 200 from the previous frame", r)
	}
}
