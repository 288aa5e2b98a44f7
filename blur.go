package main

// BoxBlur averages each pixel with its horizontal and vertical neighbors,
// Radius times. A scratch buffer is reused across frames.
type BoxBlur struct {
	Radius  int
	scratch *Framebuffer
}

func (bl *BoxBlur) Name() string { return "blur" }

func (bl *BoxBlur) Render(fb *Framebuffer, af *AudioFrame) {
	passes := bl.Radius
	if passes < 1 {
		passes = 1
	}
	if bl.scratch == nil || bl.scratch.Width != fb.Width || bl.scratch.Height != fb.Height {
		bl.scratch = CreateFramebuffer(fb.Width, fb.Height)
	}
	for pass := 0; pass < passes; pass++ {
		blurPass(fb, bl.scratch)
		fb.CopyFrom(bl.scratch)
	}
}

func blurPass(src, dst *Framebuffer) {
	w, h := src.Width, src.Height
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sr, sg, sb, count uint32
			for _, d := range [5][2]int{{0, 0}, {-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
				nx, ny := x+d[0], y+d[1]
				if !src.Contains(nx, ny) {
					continue
				}
				i := (ny*w + nx) * 4
				sr += uint32(src.Pix[i])
				sg += uint32(src.Pix[i+1])
				sb += uint32(src.Pix[i+2])
				count++
			}
			j := (y*w + x) * 4
			dst.Pix[j] = uint8(sr / count)
			dst.Pix[j+1] = uint8(sg / count)
			dst.Pix[j+2] = uint8(sb / count)
			dst.Pix[j+3] = 255
		}
	}
}
