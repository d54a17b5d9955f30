package phicp

import "fmt"

// Computer runs the acoplanarity pipeline for a fixed pair of leg
// configurations. The zero value is not usable; the leg configurations
// must name supported (method, mode) pairs.
type Computer struct {
	Leg1 LegConfig
	Leg2 LegConfig

	// Polarimetric supplies the external a1 polarimetric algorithm.
	// Required only when a leg uses the polarimetric-vector method in
	// the a1 mode.
	Polarimetric PolarimetricFunc
}

// Compute runs the five pipeline stages over one event batch: vector
// selection per leg, frame determination, restructuring per leg, and
// the angle combination. It returns one angle per event, aligned with
// the input batch.
func (c *Computer) Compute(leg1, leg2 *LegKinematics) ([]float32, error) {
	if err := c.validate(leg1, leg2); err != nil {
		return nil, err
	}

	prep1, err := SelectVectors(leg1, c.Leg1)
	if err != nil {
		return nil, fmt.Errorf("leg 1: %w", err)
	}
	prep2, err := SelectVectors(leg2, c.Leg2)
	if err != nil {
		return nil, fmt.Errorf("leg 2: %w", err)
	}

	boost, err := FrameBoost(prep1, prep2, c.Leg1, c.Leg2)
	if err != nil {
		return nil, err
	}

	res1, err := Restructure(prep1, leg1, boost, c.Leg1, c.Polarimetric)
	if err != nil {
		return nil, fmt.Errorf("leg 1: %w", err)
	}
	res2, err := Restructure(prep2, leg2, boost, c.Leg2, c.Polarimetric)
	if err != nil {
		return nil, fmt.Errorf("leg 2: %w", err)
	}

	return ComputeAngle(&AngleInputs{
		P1: res1.P, R1: res1.R, H1: res1.H, C1: prep1.Charge, Y1: res1.Y,
		P2: res2.P, R2: res2.R, H2: res2.H, C2: prep2.Charge, Y2: res2.Y,
	})
}

// validate enforces the caller contract before any stage runs: both
// configurations supported, the second leg hadronic, batches aligned,
// per-mode multiplicities satisfied, and the polarimetric collaborator
// present when an a1 leg needs it.
func (c *Computer) validate(leg1, leg2 *LegKinematics) error {
	if !c.Leg1.Supported() {
		return fmt.Errorf("%w: leg 1 %s", ErrUnsupportedConfig, c.Leg1)
	}
	if !c.Leg2.Supported() {
		return fmt.Errorf("%w: leg 2 %s", ErrUnsupportedConfig, c.Leg2)
	}
	if !c.Leg2.Mode.Hadronic() {
		return fmt.Errorf("%w: leg 2 mode %s, want a hadronic mode", ErrUnsupportedConfig, c.Leg2.Mode)
	}

	n := leg1.Len()
	if leg2.Len() != n {
		return fmt.Errorf("%w: leg batches have %d and %d events", ErrStructuralMismatch, n, leg2.Len())
	}
	if err := leg1.validate(c.Leg1, n, "leg 1"); err != nil {
		return err
	}
	if err := leg2.validate(c.Leg2, n, "leg 2"); err != nil {
		return err
	}

	a1Leg := c.Leg1 == LegConfig{MethodPV, ModeA1} || c.Leg2 == LegConfig{MethodPV, ModeA1}
	if a1Leg && c.Polarimetric == nil {
		return ErrNoPolarimetric
	}
	return nil
}

// Compute is a convenience wrapper for configurations that do not need
// a polarimetric collaborator.
func Compute(leg1, leg2 *LegKinematics, cfg1, cfg2 LegConfig) ([]float32, error) {
	c := Computer{Leg1: cfg1, Leg2: cfg2}
	return c.Compute(leg1, leg2)
}
