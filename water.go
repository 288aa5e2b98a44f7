package main

// Water runs the classic two-buffer height-field ripple simulation and
// refracts the framebuffer through it. Bright pixels drop energy into the
// field; beats drop a large splash in the middle.
type Water struct {
	Damping float64

	w, h     int
	current  []float64
	previous []float64
	scratch  *Framebuffer
}

func CreateWater() *Water {
	return &Water{Damping: 0.97}
}

func (wt *Water) Name() string { return "water" }

func (wt *Water) resize(w, h int) {
	wt.w, wt.h = w, h
	wt.current = make([]float64, w*h)
	wt.previous = make([]float64, w*h)
	wt.scratch = CreateFramebuffer(w, h)
}

// Splash adds height energy at pixel (x, y) with the given radius.
func (wt *Water) Splash(x, y, radius int, strength float64) {
	if wt.current == nil {
		return
	}
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy > radius*radius {
				continue
			}
			px, py := x+dx, y+dy
			if px < 1 || px >= wt.w-1 || py < 1 || py >= wt.h-1 {
				continue
			}
			wt.previous[py*wt.w+px] += strength
		}
	}
}

func (wt *Water) Render(fb *Framebuffer, af *AudioFrame) {
	if wt.w != fb.Width || wt.h != fb.Height {
		wt.resize(fb.Width, fb.Height)
	}
	if af.Beat {
		wt.Splash(wt.w/2, wt.h/2, wt.h/16+1, 40*af.Energy+4)
	}

	w, h := wt.w, wt.h
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			i := y*w + x
			v := (wt.previous[i-1]+wt.previous[i+1]+wt.previous[i-w]+wt.previous[i+w])/2 - wt.current[i]
			wt.current[i] = v * wt.Damping
		}
	}
	wt.current, wt.previous = wt.previous, wt.current

	wt.scratch.CopyFrom(fb)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			i := y*w + x
			// refract by the local height gradient
			ox := int(wt.previous[i-1] - wt.previous[i+1])
			oy := int(wt.previous[i-w] - wt.previous[i+w])
			sx := clampRange(x+ox, 0, w-1)
			sy := clampRange(y+oy, 0, h-1)
			si := (sy*w + sx) * 4
			di := i * 4
			fb.Pix[di] = wt.scratch.Pix[si]
			fb.Pix[di+1] = wt.scratch.Pix[si+1]
			fb.Pix[di+2] = wt.scratch.Pix[si+2]
		}
	}
}
