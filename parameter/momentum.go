package parameter

// Momentum decay after release
const (
	// MomentumDecayRate is k in v(t) = v0·e^(-k·t), per second
	MomentumDecayRate = 6.0

	// MomentumFloor zeroes velocity below this magnitude (offset units per second)
	MomentumFloor = 1.0
)

// Presentation spring easing the displayed offset toward the engine offset
const (
	// SpringFrequency is the harmonica angular frequency
	SpringFrequency = 7.0

	// SpringDamping is the harmonica damping ratio (0.7 ≈ slightly bouncy)
	SpringDamping = 0.7
)
