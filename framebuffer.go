package main

// Framebuffer is a width×height RGBA pixel buffer. Pixels are packed
// R,G,B,A byte quadruples in row-major order, directly uploadable as a
// GL_RGBA texture.
type Framebuffer struct {
	Width  int
	Height int
	Pix    []uint8
}

func CreateFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*4),
	}
}

func (fb *Framebuffer) Contains(x, y int) bool {
	return x >= 0 && x < fb.Width && y >= 0 && y < fb.Height
}

func (fb *Framebuffer) SetPixel(x, y int, r, g, b uint8) {
	if !fb.Contains(x, y) {
		return
	}
	i := (y*fb.Width + x) * 4
	fb.Pix[i] = r
	fb.Pix[i+1] = g
	fb.Pix[i+2] = b
	fb.Pix[i+3] = 255
}

func (fb *Framebuffer) GetPixel(x, y int) (r, g, b uint8) {
	if !fb.Contains(x, y) {
		return 0, 0, 0
	}
	i := (y*fb.Width + x) * 4
	return fb.Pix[i], fb.Pix[i+1], fb.Pix[i+2]
}

// AddPixel blends additively with saturation.
func (fb *Framebuffer) AddPixel(x, y int, r, g, b uint8) {
	if !fb.Contains(x, y) {
		return
	}
	i := (y*fb.Width + x) * 4
	fb.Pix[i] = satAdd(fb.Pix[i], r)
	fb.Pix[i+1] = satAdd(fb.Pix[i+1], g)
	fb.Pix[i+2] = satAdd(fb.Pix[i+2], b)
	fb.Pix[i+3] = 255
}

func satAdd(a, b uint8) uint8 {
	s := uint16(a) + uint16(b)
	if s > 255 {
		return 255
	}
	return uint8(s)
}

func (fb *Framebuffer) Clear() {
	for i := range fb.Pix {
		fb.Pix[i] = 0
	}
}

// Fade subtracts amount from every color channel, leaving alpha opaque.
// Effects use this for per-frame trails.
func (fb *Framebuffer) Fade(amount uint8) {
	for i := 0; i < len(fb.Pix); i += 4 {
		fb.Pix[i] = satSub(fb.Pix[i], amount)
		fb.Pix[i+1] = satSub(fb.Pix[i+1], amount)
		fb.Pix[i+2] = satSub(fb.Pix[i+2], amount)
		fb.Pix[i+3] = 255
	}
}

func satSub(a, b uint8) uint8 {
	if a < b {
		return 0
	}
	return a - b
}

// DrawLine draws a clipped Bresenham segment. Endpoints may lie outside
// the buffer; out-of-range pixels are dropped per pixel, which is fine for
// the short segments a scope emits.
func (fb *Framebuffer) DrawLine(x0, y0, x1, y1 int, r, g, b uint8) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		fb.SetPixel(x0, y0, r, g, b)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// CopyFrom copies src pixels; both buffers must have the same dimensions.
func (fb *Framebuffer) CopyFrom(src *Framebuffer) {
	copy(fb.Pix, src.Pix)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
