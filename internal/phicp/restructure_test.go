package phicp

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/htautau-data/phicp.report/internal/fourvec"
)

// restframe is a zero boost for single-event tests built directly in
// the pair's zero-momentum frame.
var restframe = []r3.Vec{{}}

func TestRestructureDP(t *testing.T) {
	// Pion along z, pi0 tilted into the x-z plane. The transverse
	// projection of the pi0 direction must be pure x.
	prep := &Prepared{
		P:      []fourvec.FourVec{fourvec.New(0, 0, 1, 2)},
		R:      []fourvec.FourVec{fourvec.New(1, 0, 1, math.Sqrt2)},
		Charge: []float64{-1},
	}

	res, err := Restructure(prep, &LegKinematics{}, restframe, LegConfig{MethodDP, ModeRho}, nil)
	require.NoError(t, err)

	assert.InDelta(t, 1, res.P[0].Z, 1e-12)
	assert.InDelta(t, 1, res.R[0].X, 1e-12)
	assert.InDelta(t, 0, res.R[0].Z, 1e-12)
	assert.Equal(t, res.R[0], res.H[0], "H is the transverse reference for DP")
	require.NotNil(t, res.Y)
	assert.InDelta(t, (2-math.Sqrt2)/(2+math.Sqrt2), res.Y[0], 1e-12)
}

func TestRestructureDPBoosted(t *testing.T) {
	// With a nonzero frame velocity the outputs must stay orthonormal.
	prep := &Prepared{
		P:      []fourvec.FourVec{fourvec.New(0.3, 0.1, 2, 2.2)},
		R:      []fourvec.FourVec{fourvec.New(0.5, -0.2, 1.5, 1.7)},
		Charge: []float64{-1},
	}
	boost := []r3.Vec{{X: 0.1, Y: -0.2, Z: 0.4}}

	res, err := Restructure(prep, &LegKinematics{}, boost, LegConfig{MethodDP, ModeRho}, nil)
	require.NoError(t, err)
	assert.InDelta(t, 1, r3.Norm(res.P[0]), 1e-12)
	assert.InDelta(t, 1, r3.Norm(res.R[0]), 1e-12)
	assert.InDelta(t, 0, r3.Dot(res.P[0], res.R[0]), 1e-12, "R must be transverse to P")
}

func TestRestructurePVPi(t *testing.T) {
	prep := &Prepared{
		P:      []fourvec.FourVec{fourvec.New(0, 0, 5, 5.3)},
		Pions:  [][]fourvec.FourVec{{fourvec.New(1, 0, 0, 1.01)}},
		Charge: []float64{-1},
	}

	res, err := Restructure(prep, &LegKinematics{}, restframe, LegConfig{MethodPV, ModePi}, nil)
	require.NoError(t, err)
	assert.InDelta(t, 1, res.P[0].Z, 1e-12)
	assert.InDelta(t, 1, res.H[0].X, 1e-12)
	// R = unit(H x P) = (0, -1, 0).
	assert.InDelta(t, -1, res.R[0].Y, 1e-12)
	assert.Nil(t, res.Y, "PV produces no phase shift")
}

func TestRestructurePVRhoOrthogonality(t *testing.T) {
	tau := fourvec.New(0.4, -0.3, 20, 20.1)
	pi := fourvec.New(0.3, 0.1, 12, 12.01)
	pi0 := fourvec.New(0.1, -0.35, 7, 7.02)
	prep := &Prepared{
		P:      []fourvec.FourVec{tau},
		Pions:  [][]fourvec.FourVec{{pi}},
		Charge: []float64{1},
	}
	leg := &LegKinematics{Pi0: []fourvec.FourVec{pi0}}
	boost := []r3.Vec{{Z: 0.3}}

	res, err := Restructure(prep, leg, boost, LegConfig{MethodPV, ModeRho}, nil)
	require.NoError(t, err)
	assert.InDelta(t, 1, r3.Norm(res.P[0]), 1e-12)
	assert.InDelta(t, 1, r3.Norm(res.H[0]), 1e-12)
	assert.InDelta(t, 1, r3.Norm(res.R[0]), 1e-12)
	assert.InDelta(t, 0, r3.Dot(res.R[0], res.P[0]), 1e-12, "R orthogonal to the tau direction")
	assert.InDelta(t, 0, r3.Dot(res.R[0], res.H[0]), 1e-12, "R orthogonal to the polarimetric vector")
}

func TestRestructurePVA1UsesPolarimetric(t *testing.T) {
	var gotCharge float64
	var gotOS fourvec.FourVec
	pol := func(tau, osPi, ssPi1, ssPi2 fourvec.FourVec, charge float64) r3.Vec {
		gotCharge = charge
		gotOS = osPi
		return r3.Vec{Y: 1}
	}

	osPi := fourvec.New(1, 0, 0, 1.01)
	prep := &Prepared{
		P: []fourvec.FourVec{fourvec.New(0, 0, 5, 5.3)},
		Pions: [][]fourvec.FourVec{{
			osPi, fourvec.New(0, 1, 0, 1.01), fourvec.New(0, 0, 1, 1.01),
		}},
		Charge: []float64{-1},
	}

	res, err := Restructure(prep, &LegKinematics{}, restframe, LegConfig{MethodPV, ModeA1}, pol)
	require.NoError(t, err)
	assert.Equal(t, -1.0, gotCharge, "tau charge resolves pion ordering")
	assert.Equal(t, osPi, gotOS, "zero boost passes pions through unchanged")
	// The polarimetric result is negated before normalisation.
	assert.InDelta(t, -1, res.H[0].Y, 1e-12)
}

func TestRestructurePVA1WithoutPolarimetric(t *testing.T) {
	prep := &Prepared{
		P:      []fourvec.FourVec{fourvec.New(0, 0, 5, 5.3)},
		Pions:  [][]fourvec.FourVec{{fourvec.New(1, 0, 0, 1), fourvec.New(0, 1, 0, 1), fourvec.New(0, 0, 1, 1)}},
		Charge: []float64{-1},
	}
	_, err := Restructure(prep, &LegKinematics{}, restframe, LegConfig{MethodPV, ModeA1}, nil)
	assert.True(t, errors.Is(err, ErrNoPolarimetric))
}

func TestRestructurePVUnknownMode(t *testing.T) {
	prep := &Prepared{
		P:      []fourvec.FourVec{fourvec.New(0, 0, 5, 5.3)},
		Charge: []float64{-1},
	}
	_, err := Restructure(prep, &LegKinematics{}, restframe, LegConfig{MethodPV, ModeE}, nil)
	assert.True(t, errors.Is(err, ErrUnsupportedMode))
}

func TestRestructureIP(t *testing.T) {
	prep := &Prepared{
		P:      []fourvec.FourVec{fourvec.New(0, 0, 1, 1.05)},
		R:      []fourvec.FourVec{fourvec.New(0, 0, 1, 1.05)},
		Charge: []float64{-1},
	}
	leg := &LegKinematics{IP: []r3.Vec{{X: 2e-3, Z: 1e-3}}}

	res, err := Restructure(prep, leg, restframe, LegConfig{MethodIP, ModeMu}, nil)
	require.NoError(t, err)
	assert.InDelta(t, 1, res.P[0].Z, 1e-12)
	// The z component of the impact parameter projects away.
	assert.InDelta(t, 1, res.R[0].X, 1e-12)
	assert.InDelta(t, 0, res.R[0].Z, 1e-12)
	assert.Equal(t, res.R[0], res.H[0])
	assert.Nil(t, res.Y)
}
