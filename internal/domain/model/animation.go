package model

import "time"

// Default entrance animation parameters.
const (
	DefaultBaseDelay = 80 * time.Millisecond
	DefaultDuration  = 500 * time.Millisecond
	DefaultStiffness = 60.0
	DefaultOffsetY   = 40.0
	EasingSpring     = "spring"
)

// AnimationConfig holds the fixed parameters of the staggered entrance animation.
type AnimationConfig struct {
	BaseDelay time.Duration // Added per index position.
	Duration  time.Duration
	Stiffness float64
	OffsetY   float64 // Initial vertical offset; items fade in from opacity 0.
	Easing    string
}

// DefaultAnimationConfig returns the stock entrance animation.
func DefaultAnimationConfig() AnimationConfig {
	return AnimationConfig{
		BaseDelay: DefaultBaseDelay,
		Duration:  DefaultDuration,
		Stiffness: DefaultStiffness,
		OffsetY:   DefaultOffsetY,
		Easing:    EasingSpring,
	}
}

// AnimationStep is the entrance timing assigned to one item of a filtered sequence.
type AnimationStep struct {
	Record    CredentialRecord
	Index     int
	Delay     time.Duration
	Duration  time.Duration
	Stiffness float64
	OffsetY   float64
	Easing    string
}

// End returns the offset at which this item's entrance animation completes.
func (s AnimationStep) End() time.Duration {
	return s.Delay + s.Duration
}

// AnimationPlan is the full entrance plan for one filtered sequence. Generation
// increases every time the plan is recomputed so renderers can restart motion
// even when the membership of the sequence did not change.
type AnimationPlan struct {
	Generation uint64
	Steps      []AnimationStep
}
