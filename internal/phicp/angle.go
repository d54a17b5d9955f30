package phicp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/htautau-data/phicp.report/internal/fourvec"
)

// AngleInputs is the ten-component intermediate passed to the angle
// computation: both legs' restructured vectors, their charges, and the
// optional phase-shift discriminants. The R vectors must already be
// unit, transverse-projected 3-vectors.
type AngleInputs struct {
	P1, R1, H1 []r3.Vec
	C1         []float64
	Y1         []float64

	P2, R2, H2 []r3.Vec
	C2         []float64
	Y2         []float64
}

// check enforces the structural contract on the intermediate set: the
// eight mandatory components present and mutually aligned, and any
// phase-shift component aligned too. It returns the batch length.
func (in *AngleInputs) check() (int, error) {
	n := len(in.R1)
	vecs := map[string][]r3.Vec{
		"P1": in.P1, "R1": in.R1, "H1": in.H1,
		"P2": in.P2, "R2": in.R2, "H2": in.H2,
	}
	for name, v := range vecs {
		if v == nil {
			return 0, fmt.Errorf("%w: missing component %s", ErrStructuralMismatch, name)
		}
		if len(v) != n {
			return 0, fmt.Errorf("%w: component %s has %d events, want %d", ErrStructuralMismatch, name, len(v), n)
		}
	}
	charges := map[string][]float64{"C1": in.C1, "C2": in.C2}
	for name, c := range charges {
		if c == nil {
			return 0, fmt.Errorf("%w: missing component %s", ErrStructuralMismatch, name)
		}
		if len(c) != n {
			return 0, fmt.Errorf("%w: component %s has %d events, want %d", ErrStructuralMismatch, name, len(c), n)
		}
	}
	shifts := map[string][]float64{"Y1": in.Y1, "Y2": in.Y2}
	for name, y := range shifts {
		if y != nil && len(y) != n {
			return 0, fmt.Errorf("%w: component %s has %d events, want %d", ErrStructuralMismatch, name, len(y), n)
		}
	}
	return n, nil
}

// ComputeAngle combines both legs' restructured vectors into the final
// acoplanarity angle, one single-precision value per event in [0, 2pi).
//
// The angle is arccos(R1.R2), reflected to the other hemisphere when
// the charge-ordered triple product is negative, shifted by pi when the
// combined phase-shift discriminant is negative, and wrapped.
func ComputeAngle(in *AngleInputs) ([]float32, error) {
	n, err := in.check()
	if err != nil {
		return nil, err
	}

	// Phase-shift combination: the product when both legs carry one,
	// the single present one otherwise, or no shift at all.
	var y []float64
	switch {
	case in.Y1 != nil && in.Y2 != nil:
		y = make([]float64, n)
		for i := range y {
			y[i] = in.Y1[i] * in.Y2[i]
		}
	case in.Y1 != nil:
		y = in.Y1
	case in.Y2 != nil:
		y = in.Y2
	}

	// Order the sign vectors by charge: (Pm, Hm) from the negative leg,
	// Hp from the positive one.
	negLeg1 := make([]bool, n)
	for i := range negLeg1 {
		negLeg1[i] = in.C1[i] < 0
	}
	pm := fourvec.SelectVecs(negLeg1, in.P1, in.P2)
	hm := fourvec.SelectVecs(negLeg1, in.H1, in.H2)
	hp := fourvec.SelectVecs(negLeg1, in.H2, in.H1)

	out := make([]float32, n)
	for i := 0; i < n; i++ {
		acop := math.Acos(clipUnit(r3.Dot(in.R1[i], in.R2[i])))
		if r3.Dot(pm[i], r3.Cross(hp[i], hm[i])) < 0 {
			acop = 2*math.Pi - acop
		}
		if y != nil && y[i] < 0 {
			acop += math.Pi
		}
		// The float64 wrap is exact, but the single-precision cast can
		// round a value just below 2pi up to exactly 2pi; fold that to 0.
		a := float32(wrapTwoPi(acop))
		if a >= twoPi32 {
			a = 0
		}
		out[i] = a
	}
	return out, nil
}

const twoPi32 float32 = 2 * math.Pi

// clipUnit clamps x into [-1, 1], guarding the arccos domain against
// floating-point overshoot. Out-of-domain values here are a numerical
// artefact, not a reportable condition.
func clipUnit(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}

// wrapTwoPi maps an angle into [0, 2pi). A single correction per side
// suffices: the preceding steps move the value at most pi beyond either
// bound.
func wrapTwoPi(a float64) float64 {
	if a >= 2*math.Pi {
		a -= 2 * math.Pi
	}
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
