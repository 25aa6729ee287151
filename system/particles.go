package system

import (
	"math"
	"sync/atomic"

	"github.com/lixenwraith/vista/engine"
	"github.com/lixenwraith/vista/parameter"
	"github.com/lixenwraith/vista/status"
	"github.com/lixenwraith/vista/vmath"
)

// ParticleConfig tunes a particle field; zero values fall back to defaults
type ParticleConfig struct {
	Count          int
	MaxRadius      float64 // Planar containment radius
	FloatSpeed     float64 // Base forcing frequency
	FloatAmplitude float64 // Base forcing amplitude
	Dampening      float64 // Per-tick velocity multiplier, 0 < d < 1
	BoundsZ        float64 // |z| containment bound
	Seed           uint64  // Explicit seed for reproducible layouts
}

// DefaultParticleConfig returns the stock field configuration
func DefaultParticleConfig() ParticleConfig {
	return ParticleConfig{
		Count:          parameter.ParticleCount,
		MaxRadius:      parameter.ParticleMaxRadius,
		FloatSpeed:     parameter.ParticleFloatSpeed,
		FloatAmplitude: parameter.ParticleFloatAmplitude,
		Dampening:      parameter.ParticleDampening,
		BoundsZ:        parameter.ParticleBoundsZ,
		Seed:           1,
	}
}

// normalize fills unset fields and clamps dampening into (0, 1)
func (c *ParticleConfig) normalize() {
	def := DefaultParticleConfig()
	if c.Count <= 0 {
		c.Count = def.Count
	}
	if c.MaxRadius <= 0 {
		c.MaxRadius = def.MaxRadius
	}
	if c.FloatSpeed <= 0 {
		c.FloatSpeed = def.FloatSpeed
	}
	if c.FloatAmplitude <= 0 {
		c.FloatAmplitude = def.FloatAmplitude
	}
	if c.Dampening <= 0 || c.Dampening >= 1 {
		c.Dampening = def.Dampening
	}
	if c.BoundsZ <= 0 {
		c.BoundsZ = def.BoundsZ
	}
	if c.Seed == 0 {
		c.Seed = 1
	}
}

// particleMotion is the immutable per-particle forcing table entry,
// a pure function of particle index computed once at creation
type particleMotion struct {
	phase     float64
	speed     float64
	amplitude float64
}

// ParticleSimulator owns position/velocity state for a fixed set of point
// masses and advances it once per scheduler tick with deterministic
// pseudo-periodic forcing, damping, and inelastic boundary reflection.
// Buffers are owned exclusively by the simulator; consumers read the
// snapshot refreshed at the end of each advance
type ParticleSimulator struct {
	config ParticleConfig

	// Flat xyz-interleaved buffers of length 3·Count
	positions  []float64
	velocities []float64
	motion     []particleMotion

	snapshot []float64

	// Telemetry
	statBounces *atomic.Int64
	statActive  *atomic.Int64
}

// NewParticleSimulator creates a field with positions and velocities sampled
// uniformly in small cubes from the config seed
func NewParticleSimulator(config ParticleConfig, statusReg *status.Registry) *ParticleSimulator {
	config.normalize()

	n := config.Count
	s := &ParticleSimulator{
		config:      config,
		positions:   make([]float64, 3*n),
		velocities:  make([]float64, 3*n),
		motion:      make([]particleMotion, n),
		snapshot:    make([]float64, 3*n),
		statBounces: statusReg.Ints.Get("particles.bounces"),
		statActive:  statusReg.Ints.Get("particles.active"),
	}

	rng := vmath.NewFastRand(config.Seed)
	for i := 0; i < n; i++ {
		base := i * 3
		s.positions[base] = rng.Range(-parameter.ParticleSpawnExtent, parameter.ParticleSpawnExtent)
		s.positions[base+1] = rng.Range(-parameter.ParticleSpawnExtent, parameter.ParticleSpawnExtent)
		s.positions[base+2] = rng.Range(-parameter.ParticleSpawnExtent, parameter.ParticleSpawnExtent)
		s.velocities[base] = rng.Range(-parameter.ParticleSpawnSpeed, parameter.ParticleSpawnSpeed)
		s.velocities[base+1] = rng.Range(-parameter.ParticleSpawnSpeed, parameter.ParticleSpawnSpeed)
		s.velocities[base+2] = rng.Range(-parameter.ParticleSpawnSpeed, parameter.ParticleSpawnSpeed)

		s.motion[i] = particleMotion{
			phase:     float64(i) * 0.1,
			speed:     config.FloatSpeed + float64(i%3)*0.3,
			amplitude: config.FloatAmplitude + float64(i%2)*0.0005,
		}
	}

	copy(s.snapshot, s.positions)
	s.statActive.Store(int64(n))
	return s
}

// Advance runs one simulation tick. Order-independent per particle:
// integrate, apply forcing, damp, reflect at the bounds. The bounce clamps
// strictly inside the boundary and attenuates the reflected velocity, so
// positions stay bounded for all time under any in-range initial condition
func (s *ParticleSimulator) Advance(sample engine.ClockSample) {
	cfg := &s.config
	elapsed := sample.Elapsed
	restitution := parameter.ParticleBounceRestitution
	var bounces int64

	for i := 0; i < cfg.Count; i++ {
		base := i * 3
		px := s.positions[base] + s.velocities[base]
		py := s.positions[base+1] + s.velocities[base+1]
		pz := s.positions[base+2] + s.velocities[base+2]

		m := &s.motion[i]
		px += math.Sin(elapsed*m.speed+m.phase) * m.amplitude
		py += math.Cos(elapsed*m.speed*0.7+m.phase) * m.amplitude
		pz += math.Sin(elapsed*m.speed*0.5+m.phase) * m.amplitude * 0.5

		s.velocities[base] *= cfg.Dampening
		s.velocities[base+1] *= cfg.Dampening
		s.velocities[base+2] *= cfg.Dampening

		// Planar containment: inelastic bounce back inside the circle
		if planar := math.Sqrt(px*px + py*py); planar > cfg.MaxRadius {
			angle := math.Atan2(py, px)
			inset := cfg.MaxRadius * parameter.ParticleBounceInset
			px = math.Cos(angle) * inset
			py = math.Sin(angle) * inset
			s.velocities[base] *= -restitution
			s.velocities[base+1] *= -restitution
			bounces++
		}

		// Depth containment
		if pz > cfg.BoundsZ {
			pz = cfg.BoundsZ
			s.velocities[base+2] *= -restitution
			bounces++
		} else if pz < -cfg.BoundsZ {
			pz = -cfg.BoundsZ
			s.velocities[base+2] *= -restitution
			bounces++
		}

		s.positions[base] = px
		s.positions[base+1] = py
		s.positions[base+2] = pz
	}

	// Snapshot refresh completes the tick; same-frame consumers never observe
	// a half-updated buffer
	copy(s.snapshot, s.positions)

	if bounces > 0 {
		s.statBounces.Add(bounces)
	}
}

// Positions returns the read-only xyz-interleaved snapshot of the last
// completed tick. Callers must not mutate it
func (s *ParticleSimulator) Positions() []float64 {
	return s.snapshot
}

// Count returns the particle count
func (s *ParticleSimulator) Count() int {
	return s.config.Count
}
