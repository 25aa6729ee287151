package parameter

// Particle Field
const (
	// ParticleCount is the default number of point masses in the field
	ParticleCount = 120

	// ParticleMaxRadius is the planar (xy) containment radius in world units
	ParticleMaxRadius = 4.0

	// ParticleFloatSpeed is the base frequency of the pseudo-periodic forcing
	ParticleFloatSpeed = 0.4

	// ParticleFloatAmplitude is the base forcing amplitude per tick
	ParticleFloatAmplitude = 0.002

	// ParticleDampening is the per-tick velocity multiplier (0 < d < 1)
	ParticleDampening = 0.98

	// ParticleBoundsZ is the |z| containment bound in world units
	ParticleBoundsZ = 2.0

	// ParticleSpawnExtent is the half-size of the initial position cube
	ParticleSpawnExtent = 1.5

	// ParticleSpawnSpeed is the half-size of the initial velocity cube
	ParticleSpawnSpeed = 0.004

	// ParticleBounceRestitution is the inverted velocity fraction retained
	// after a boundary bounce (inelastic)
	ParticleBounceRestitution = 0.3

	// ParticleBounceInset places a bounced particle at this fraction of the
	// containment radius, strictly inside the boundary
	ParticleBounceInset = 0.9
)
