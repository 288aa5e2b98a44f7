package main

import "math"

const maxParticles = 4096

type particle struct {
	x, y   float64 // normalized -1..1
	vx, vy float64
	life   float64 // seconds remaining
	r, g   uint8
	b      uint8
}

// Particles bursts a ring of particles on each beat and integrates them
// with gravity and drag. The xorshift32 generator keeps runs deterministic
// for a given seed.
type Particles struct {
	BurstCount int
	Gravity    float64
	Life       float64
	Seed       uint32

	particles []particle
	rngState  uint32
	lastTime  float64
}

func CreateParticles(seed uint32) *Particles {
	if seed == 0 {
		seed = 1
	}
	return &Particles{
		BurstCount: 160,
		Gravity:    0.6,
		Life:       1.8,
		Seed:       seed,
		rngState:   seed,
		particles:  make([]particle, 0, maxParticles),
	}
}

func (ps *Particles) Name() string { return "particles" }

// rand01 is xorshift32 mapped to [0,1).
func (ps *Particles) rand01() float64 {
	s := ps.rngState
	s ^= s << 13
	s ^= s >> 17
	s ^= s << 5
	ps.rngState = s
	return float64(s) / float64(^uint32(0))
}

func (ps *Particles) burst(af *AudioFrame) {
	count := ps.BurstCount
	if len(ps.particles)+count > maxParticles {
		count = maxParticles - len(ps.particles)
	}
	strength := 0.4 + 4*af.Energy
	if strength > 1.2 {
		strength = 1.2
	}
	for i := 0; i < count; i++ {
		angle := ps.rand01() * 2 * math.Pi
		speed := strength * (0.3 + 0.7*ps.rand01())
		hue := ps.rand01()
		r, g, b := hueToRGB(hue)
		ps.particles = append(ps.particles, particle{
			vx:   math.Cos(angle) * speed,
			vy:   math.Sin(angle) * speed,
			life: ps.Life * (0.5 + 0.5*ps.rand01()),
			r:    r, g: g, b: b,
		})
	}
}

func (ps *Particles) Render(fb *Framebuffer, af *AudioFrame) {
	dt := af.Time - ps.lastTime
	ps.lastTime = af.Time
	if dt <= 0 || dt > 0.25 {
		dt = 1.0 / 60
	}
	if af.Beat {
		ps.burst(af)
	}
	alive := ps.particles[:0]
	for _, p := range ps.particles {
		p.life -= dt
		if p.life <= 0 {
			continue
		}
		p.vy -= ps.Gravity * dt
		p.vx *= 1 - 0.4*dt
		p.x += p.vx * dt
		p.y += p.vy * dt
		if p.x < -1.2 || p.x > 1.2 || p.y < -1.2 {
			continue
		}
		px := int((p.x + 1) * 0.5 * float64(fb.Width-1))
		py := int((1 - p.y) * 0.5 * float64(fb.Height-1))
		fade := p.life / ps.Life
		if fade > 1 {
			fade = 1
		}
		fb.AddPixel(px, py, uint8(float64(p.r)*fade), uint8(float64(p.g)*fade), uint8(float64(p.b)*fade))
		alive = append(alive, p)
	}
	ps.particles = alive
}

// hueToRGB converts hue in [0,1) at full saturation and value.
func hueToRGB(hue float64) (uint8, uint8, uint8) {
	h := hue * 6
	sector := int(h) % 6
	frac := h - math.Floor(h)
	q := uint8(255 * (1 - frac))
	t := uint8(255 * frac)
	switch sector {
	case 0:
		return 255, t, 0
	case 1:
		return q, 255, 0
	case 2:
		return 0, 255, t
	case 3:
		return 0, q, 255
	case 4:
		return t, 0, 255
	default:
		return 255, 0, q
	}
}
