package application

import (
	"time"

	"github.com/ericfisherdev/certpanel/internal/domain/model"
)

// PresentationSequencer assigns staggered entrance timing to a filtered
// sequence. It is a pure function of its config and input.
type PresentationSequencer struct {
	cfg model.AnimationConfig
}

// NewPresentationSequencer creates a sequencer. Unset fields of cfg fall back
// to the defaults in model.DefaultAnimationConfig. A zero BaseDelay is a valid
// setting that disables the stagger; only a negative one falls back.
func NewPresentationSequencer(cfg model.AnimationConfig) *PresentationSequencer {
	def := model.DefaultAnimationConfig()
	if cfg.BaseDelay < 0 {
		cfg.BaseDelay = def.BaseDelay
	}
	if cfg.Duration <= 0 {
		cfg.Duration = def.Duration
	}
	if cfg.Stiffness <= 0 {
		cfg.Stiffness = def.Stiffness
	}
	if cfg.OffsetY == 0 {
		cfg.OffsetY = def.OffsetY
	}
	if cfg.Easing == "" {
		cfg.Easing = def.Easing
	}
	return &PresentationSequencer{cfg: cfg}
}

// Config returns the effective animation parameters.
func (s *PresentationSequencer) Config() model.AnimationConfig {
	return s.cfg
}

// Plan returns one step per record. The item at index i enters after
// i*BaseDelay; indices always start at zero for the sequence given.
func (s *PresentationSequencer) Plan(filtered []model.CredentialRecord) []model.AnimationStep {
	steps := make([]model.AnimationStep, 0, len(filtered))
	for i, r := range filtered {
		steps = append(steps, model.AnimationStep{
			Record:    r,
			Index:     i,
			Delay:     time.Duration(i) * s.cfg.BaseDelay,
			Duration:  s.cfg.Duration,
			Stiffness: s.cfg.Stiffness,
			OffsetY:   s.cfg.OffsetY,
			Easing:    s.cfg.Easing,
		})
	}
	return steps
}

// TotalDuration returns the offset at which the last step of a plan for n
// items finishes. It is zero for an empty sequence.
func (s *PresentationSequencer) TotalDuration(n int) time.Duration {
	if n <= 0 {
		return 0
	}
	return time.Duration(n-1)*s.cfg.BaseDelay + s.cfg.Duration
}
