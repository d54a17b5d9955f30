package phicp

import (
	"fmt"
	"math"

	"github.com/htautau-data/phicp.report/internal/fourvec"
)

// rhoMassGeV is the nominal rho(770) meson mass used to pick the
// reference pion in three-prong decay-plane reconstruction.
const rhoMassGeV = 0.77526

// Prepared holds one leg's selected primary and reference four-vectors
// together with the candidate charge. For the polarimetric-vector
// method the reference is the full charged-pion set (Pions); the exact
// use of the pions is deferred to the restructuring stage. The other
// methods fill the single-vector reference R.
type Prepared struct {
	P      []fourvec.FourVec
	R      []fourvec.FourVec
	Pions  [][]fourvec.FourVec
	Charge []float64
}

type selectorFunc func(leg *LegKinematics) *Prepared

// selectors is the exhaustive (method, mode) dispatch table. A pair
// absent from this table is an unsupported configuration, reported as
// such rather than silently falling through.
var selectors = map[LegConfig]selectorFunc{
	{MethodDP, ModeRho}: selectDPRho,
	{MethodDP, ModeA1}:  selectDPA1,
	{MethodPV, ModePi}:  selectPV,
	{MethodPV, ModeRho}: selectPV,
	{MethodPV, ModeA1}:  selectPV,
	{MethodIP, ModeE}:   selectIPLepton,
	{MethodIP, ModeMu}:  selectIPLepton,
	{MethodIP, ModePi}:  selectIPPi,
}

// SelectVectors picks the primary (P) and reference (R) vectors of one
// leg according to its configuration, and passes the candidate charge
// through unmodified.
func SelectVectors(leg *LegKinematics, cfg LegConfig) (*Prepared, error) {
	sel, ok := selectors[cfg]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedConfig, cfg)
	}
	return sel(leg), nil
}

// selectDPRho maps the rho decay onto the decay-plane method: the
// charged pion is the primary, the reconstructed pi0 the reference.
func selectDPRho(leg *LegKinematics) *Prepared {
	n := leg.Len()
	p := make([]fourvec.FourVec, n)
	for i := range p {
		p[i] = leg.Pions[i][0]
	}
	return &Prepared{P: p, R: leg.Pi0, Charge: leg.Charge}
}

// selectDPA1 maps the three-prong decay onto the decay-plane method.
// The primary is the same-sign pion whose pairing with the
// opposite-sign pion has invariant mass closest to the rho mass; the
// reference is the opposite-sign pion itself.
func selectDPA1(leg *LegKinematics) *Prepared {
	n := leg.Len()
	mask := make([]bool, n)
	ss1 := make([]fourvec.FourVec, n)
	ss2 := make([]fourvec.FourVec, n)
	r := make([]fourvec.FourVec, n)
	for i := range mask {
		pi := leg.Pions[i]
		ss1[i], ss2[i] = pi[1], pi[2]
		r[i] = pi[0]
		m1 := pi[0].Add(pi[1]).M()
		m2 := pi[0].Add(pi[2]).M()
		mask[i] = math.Abs(rhoMassGeV-m1) < math.Abs(rhoMassGeV-m2)
	}
	return &Prepared{
		P:      fourvec.SelectFourVecs(mask, ss1, ss2),
		R:      r,
		Charge: leg.Charge,
	}
}

// selectPV keeps the full tau candidate as the primary and the complete
// charged-pion set as the reference; the polarimetric construction in
// the restructuring stage decides how the pions are used per mode.
func selectPV(leg *LegKinematics) *Prepared {
	return &Prepared{P: leg.Cand, Pions: leg.Pions, Charge: leg.Charge}
}

// selectIPLepton uses the leptonic candidate as both primary and
// reference; the impact-parameter vector is built downstream.
func selectIPLepton(leg *LegKinematics) *Prepared {
	return &Prepared{P: leg.Cand, R: leg.Cand, Charge: leg.Charge}
}

// selectIPPi uses the charged pion as the primary and the tau candidate
// (carrier of the impact parameter) as the reference.
func selectIPPi(leg *LegKinematics) *Prepared {
	n := leg.Len()
	p := make([]fourvec.FourVec, n)
	for i := range p {
		p[i] = leg.Pions[i][0]
	}
	return &Prepared{P: p, R: leg.Cand, Charge: leg.Charge}
}
