package main

type BlendMode int

const (
	BlendAdditive BlendMode = iota
	BlendAverage
	BlendMaximum
)

// BlendPixels combines two packed buffers of equal size into dst.
func BlendPixels(dst, a, b []uint8, mode BlendMode) {
	switch mode {
	case BlendAdditive:
		for i := range dst {
			dst[i] = satAdd(a[i], b[i])
		}
	case BlendAverage:
		for i := range dst {
			dst[i] = uint8((uint16(a[i]) + uint16(b[i])) / 2)
		}
	case BlendMaximum:
		for i := range dst {
			if a[i] > b[i] {
				dst[i] = a[i]
			} else {
				dst[i] = b[i]
			}
		}
	}
}

// Feedback blends the previous frame back into the current one, the usual
// trick for ghosting/echo composites.
type Feedback struct {
	Mode BlendMode

	prev *Framebuffer
}

func (fx *Feedback) Name() string { return "feedback" }

func (fx *Feedback) Render(fb *Framebuffer, af *AudioFrame) {
	if fx.prev == nil || fx.prev.Width != fb.Width || fx.prev.Height != fb.Height {
		fx.prev = CreateFramebuffer(fb.Width, fb.Height)
		fx.prev.CopyFrom(fb)
		return
	}
	BlendPixels(fb.Pix, fb.Pix, fx.prev.Pix, fx.Mode)
	fx.prev.CopyFrom(fb)
}
