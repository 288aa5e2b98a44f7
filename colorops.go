package main

// Brightness/contrast adjustment. Brightness is an additive offset in
// -255..255, contrast a multiplier around the midpoint.
type BrightnessContrast struct {
	Brightness int
	Contrast   float64
}

func (bc *BrightnessContrast) Name() string { return "brightness" }

func (bc *BrightnessContrast) Render(fb *Framebuffer, af *AudioFrame) {
	var lut [256]uint8
	contrast := bc.Contrast
	if contrast == 0 {
		contrast = 1
	}
	for i := range lut {
		v := (float64(i)-128)*contrast + 128 + float64(bc.Brightness)
		lut[i] = clampByte(v)
	}
	for i := 0; i < len(fb.Pix); i += 4 {
		fb.Pix[i] = lut[fb.Pix[i]]
		fb.Pix[i+1] = lut[fb.Pix[i+1]]
		fb.Pix[i+2] = lut[fb.Pix[i+2]]
	}
}

// ColorReduce quantizes each channel to 2^Bits levels, the classic AVS
// posterize look. Bits outside 1..8 clamp.
type ColorReduce struct {
	Bits int
}

func (cr *ColorReduce) Name() string { return "colorreduce" }

func (cr *ColorReduce) Render(fb *Framebuffer, af *AudioFrame) {
	bits := cr.Bits
	if bits < 1 {
		bits = 1
	}
	if bits > 8 {
		bits = 8
	}
	mask := uint8(0xFF << (8 - bits))
	for i := 0; i < len(fb.Pix); i += 4 {
		fb.Pix[i] &= mask
		fb.Pix[i+1] &= mask
		fb.Pix[i+2] &= mask
	}
}

// Fadeout darkens the whole buffer each frame, producing motion trails for
// whatever draws after it in the chain.
type Fadeout struct {
	Amount uint8
}

func (f *Fadeout) Name() string { return "fadeout" }

func (f *Fadeout) Render(fb *Framebuffer, af *AudioFrame) {
	fb.Fade(f.Amount)
}

func clampByte(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
