package main

// Kernel3 is a 3×3 convolution kernel with a divisor and bias, applied per
// color channel with edge clamping.
type Kernel3 struct {
	Weights [9]float64
	Divisor float64
	Bias    float64
}

var (
	KernelBlur = Kernel3{
		Weights: [9]float64{1, 2, 1, 2, 4, 2, 1, 2, 1},
		Divisor: 16,
	}
	KernelSharpen = Kernel3{
		Weights: [9]float64{0, -1, 0, -1, 5, -1, 0, -1, 0},
		Divisor: 1,
	}
	KernelEdge = Kernel3{
		Weights: [9]float64{-1, -1, -1, -1, 8, -1, -1, -1, -1},
		Divisor: 1,
	}
	KernelEmboss = Kernel3{
		Weights: [9]float64{-2, -1, 0, -1, 1, 1, 0, 1, 2},
		Divisor: 1,
		Bias:    0,
	}
)

type Convolution struct {
	Kernel  Kernel3
	scratch *Framebuffer
}

func (cv *Convolution) Name() string { return "convolution" }

func (cv *Convolution) Render(fb *Framebuffer, af *AudioFrame) {
	if cv.scratch == nil || cv.scratch.Width != fb.Width || cv.scratch.Height != fb.Height {
		cv.scratch = CreateFramebuffer(fb.Width, fb.Height)
	}
	cv.scratch.CopyFrom(fb)
	src := cv.scratch
	w, h := fb.Width, fb.Height
	div := cv.Kernel.Divisor
	if div == 0 {
		div = 1
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var sr, sg, sb float64
			ki := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					nx := clampRange(x+dx, 0, w-1)
					ny := clampRange(y+dy, 0, h-1)
					i := (ny*w + nx) * 4
					weight := cv.Kernel.Weights[ki]
					sr += weight * float64(src.Pix[i])
					sg += weight * float64(src.Pix[i+1])
					sb += weight * float64(src.Pix[i+2])
					ki++
				}
			}
			j := (y*w + x) * 4
			fb.Pix[j] = clampByte(sr/div + cv.Kernel.Bias)
			fb.Pix[j+1] = clampByte(sg/div + cv.Kernel.Bias)
			fb.Pix[j+2] = clampByte(sb/div + cv.Kernel.Bias)
			fb.Pix[j+3] = 255
		}
	}
}

func clampRange(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
