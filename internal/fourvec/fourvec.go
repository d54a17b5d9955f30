// Package fourvec provides the Lorentz four-vector primitive and small
// batched-array helpers used by the acoplanarity pipeline. Spatial
// 3-vector algebra is delegated to gonum's spatial/r3 package.
package fourvec

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// FourVec is a Lorentz four-vector in (px, py, pz, E) representation
// with metric signature (+,-,-,-). Momenta and energies are in GeV.
type FourVec struct {
	Px, Py, Pz, E float64
}

// New returns the four-vector with the given momentum components and energy.
func New(px, py, pz, e float64) FourVec {
	return FourVec{Px: px, Py: py, Pz: pz, E: e}
}

// FromVec builds a four-vector from a spatial 3-vector and an energy.
func FromVec(p r3.Vec, e float64) FourVec {
	return FourVec{Px: p.X, Py: p.Y, Pz: p.Z, E: e}
}

// Vec returns the spatial momentum components.
func (v FourVec) Vec() r3.Vec {
	return r3.Vec{X: v.Px, Y: v.Py, Z: v.Pz}
}

// Add returns the four-vector sum v + u.
func (v FourVec) Add(u FourVec) FourVec {
	return FourVec{v.Px + u.Px, v.Py + u.Py, v.Pz + u.Pz, v.E + u.E}
}

// Sub returns the four-vector difference v - u.
func (v FourVec) Sub(u FourVec) FourVec {
	return FourVec{v.Px - u.Px, v.Py - u.Py, v.Pz - u.Pz, v.E - u.E}
}

// Dot returns the Minkowski inner product E1*E2 - p1.p2.
func (v FourVec) Dot(u FourVec) float64 {
	return v.E*u.E - v.Px*u.Px - v.Py*u.Py - v.Pz*u.Pz
}

// M2 returns the invariant mass squared. It is negative for spacelike
// four-vectors (for example the pi-pi0 difference in the rank-2
// polarimetric construction), so callers must not assume positivity.
func (v FourVec) M2() float64 {
	return v.Dot(v)
}

// M returns the invariant mass, or zero when M2 is non-positive.
func (v FourVec) M() float64 {
	m2 := v.M2()
	if m2 <= 0 {
		return 0
	}
	return math.Sqrt(m2)
}

// BoostVec returns the 3-velocity beta = p/E of the four-vector. The
// zero vector is returned for E == 0.
func (v FourVec) BoostVec() r3.Vec {
	if v.E == 0 {
		return r3.Vec{}
	}
	return r3.Scale(1/v.E, v.Vec())
}

// Boost applies a Lorentz boost with velocity b. The convention follows
// ROOT's TLorentzVector: boosting a four-vector by the negated boost
// vector of a frame expresses it in that frame's rest system.
func (v FourVec) Boost(b r3.Vec) FourVec {
	b2 := r3.Norm2(b)
	gamma := 1 / math.Sqrt(1-b2)
	bp := r3.Dot(b, v.Vec())
	var gamma2 float64
	if b2 > 0 {
		gamma2 = (gamma - 1) / b2
	}
	p := r3.Add(v.Vec(), r3.Scale(gamma2*bp+gamma*v.E, b))
	return FromVec(p, gamma*(v.E+bp))
}
