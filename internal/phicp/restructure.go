package phicp

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/htautau-data/phicp.report/internal/fourvec"
)

// Restructured holds one leg's frame-corrected vectors: the unit
// primary direction P, the unit transverse reference direction R, the
// sign-reference vector H, and (decay-plane method only) the
// phase-shift discriminant Y. Y is nil for the other methods.
type Restructured struct {
	P []r3.Vec
	R []r3.Vec
	H []r3.Vec
	Y []float64
}

// PolarimetricFunc computes the polarimetric vector of a three-prong
// (a1) tau decay. All four-vectors are already boosted into the
// zero-momentum frame; the pions arrive opposite-sign first and the tau
// charge resolves their ordering. The pipeline treats the algorithm as
// a black box.
type PolarimetricFunc func(tau, osPi, ssPi1, ssPi2 fourvec.FourVec, charge float64) r3.Vec

// Restructure boosts one leg's prepared vectors into the frame defined
// by boost and derives the (P, R, H, Y) set consumed by the angle
// computation. leg supplies the raw vectors some methods need beyond
// the prepared pair (the pi0 for PV/rho, the impact parameter for IP).
func Restructure(prep *Prepared, leg *LegKinematics, boost []r3.Vec, cfg LegConfig, pol PolarimetricFunc) (*Restructured, error) {
	switch cfg.Method {
	case MethodDP:
		return restructureDP(prep, boost), nil
	case MethodPV:
		return restructurePV(prep, leg, boost, cfg.Mode, pol)
	case MethodIP:
		return restructureIP(prep, leg, boost), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedConfig, cfg)
}

// restructureDP boosts the charged pion and the pi0 into the frame,
// projects the pi0 direction transverse to the pion direction
// (Gram-Schmidt), and derives the energy-asymmetry phase shift.
func restructureDP(prep *Prepared, boost []r3.Vec) *Restructured {
	n := len(boost)
	out := &Restructured{
		P: make([]r3.Vec, n),
		R: make([]r3.Vec, n),
		H: make([]r3.Vec, n),
		Y: make([]float64, n),
	}
	for i := range boost {
		neg := r3.Scale(-1, boost[i])
		pi := prep.P[i].Boost(neg)
		pi0 := prep.R[i].Boost(neg)

		piU := r3.Unit(pi.Vec())
		pi0U := r3.Unit(pi0.Vec())
		out.P[i] = piU
		out.R[i] = transverseUnit(pi0U, piU)
		out.H[i] = out.R[i]
		out.Y[i] = (pi.E - pi0.E) / (pi.E + pi0.E)
	}
	return out
}

// restructurePV boosts the tau into the frame and orients the leg by
// its polarimetric vector: P is the tau direction, H the unit
// polarimetric vector and R their normalised cross product.
func restructurePV(prep *Prepared, leg *LegKinematics, boost []r3.Vec, mode Mode, pol PolarimetricFunc) (*Restructured, error) {
	if mode == ModeA1 && pol == nil {
		return nil, fmt.Errorf("%w: PV/a1 leg", ErrNoPolarimetric)
	}

	n := len(boost)
	out := &Restructured{
		P: make([]r3.Vec, n),
		R: make([]r3.Vec, n),
		H: make([]r3.Vec, n),
	}
	for i := range boost {
		neg := r3.Scale(-1, boost[i])
		tau := prep.P[i].Boost(neg)

		var pv r3.Vec
		switch mode {
		case ModePi:
			pv = prep.Pions[i][0].Boost(neg).Vec()
		case ModeRho:
			pi := prep.Pions[i][0].Boost(neg)
			pi0 := leg.Pi0[i].Boost(neg)
			q := pi.Sub(pi0)
			nres := tau.Sub(pi.Add(pi0))
			// Rank-2 polarimetric construction from the rho decay
			// kinematics: pv = 2(q.N)q - q^2 N, with Minkowski products.
			pv = r3.Sub(r3.Scale(2*q.Dot(nres), q.Vec()), r3.Scale(q.M2(), nres.Vec()))
		case ModeA1:
			osPi := prep.Pions[i][0].Boost(neg)
			ssPi1 := prep.Pions[i][1].Boost(neg)
			ssPi2 := prep.Pions[i][2].Boost(neg)
			pv = r3.Scale(-1, pol(tau, osPi, ssPi1, ssPi2, prep.Charge[i]))
		default:
			return nil, fmt.Errorf("%w: %s under PV", ErrUnsupportedMode, mode)
		}

		p := r3.Unit(tau.Vec())
		h := r3.Unit(pv)
		out.P[i] = p
		out.H[i] = h
		out.R[i] = r3.Unit(r3.Cross(h, p))
	}
	return out, nil
}

// restructureIP boosts the primary (lepton or pion) into the frame,
// embeds the candidate's impact-parameter 3-vector as a four-vector
// with zero time component, boosts it too, and projects it transverse
// to the primary direction.
func restructureIP(prep *Prepared, leg *LegKinematics, boost []r3.Vec) *Restructured {
	n := len(boost)
	out := &Restructured{
		P: make([]r3.Vec, n),
		R: make([]r3.Vec, n),
		H: make([]r3.Vec, n),
	}
	for i := range boost {
		neg := r3.Scale(-1, boost[i])
		pZMF := prep.P[i].Boost(neg).Vec()
		ipZMF := fourvec.FromVec(leg.IP[i], 0).Boost(neg).Vec()

		pU := r3.Unit(pZMF)
		out.P[i] = pU
		out.R[i] = transverseUnit(r3.Unit(ipZMF), pU)
		out.H[i] = out.R[i]
	}
	return out
}

// transverseUnit projects unit vector v orthogonal to unit vector axis
// and renormalises: unit(v - axis*(axis.v)).
func transverseUnit(v, axis r3.Vec) r3.Vec {
	return r3.Unit(r3.Sub(v, r3.Scale(r3.Dot(axis, v), axis)))
}
