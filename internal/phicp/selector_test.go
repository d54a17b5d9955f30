package phicp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/htautau-data/phicp.report/internal/fourvec"
)

func TestSelectVectorsUnsupported(t *testing.T) {
	leg := &LegKinematics{
		Cand:   []fourvec.FourVec{fourvec.New(0, 0, 1, 2)},
		Charge: []float64{-1},
	}
	// The decay-plane method has no single-pion rule.
	_, err := SelectVectors(leg, LegConfig{MethodDP, ModePi})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedConfig))

	for _, cfg := range []LegConfig{
		{MethodDP, ModeE},
		{MethodPV, ModeMu},
		{MethodIP, ModeA1},
	} {
		_, err := SelectVectors(leg, cfg)
		assert.True(t, errors.Is(err, ErrUnsupportedConfig), "config %s", cfg)
	}
}

func TestSelectDPRho(t *testing.T) {
	pi := fourvec.New(0, 0, 1, 2)
	pi0 := fourvec.New(1, 0, 0, 1)
	leg := &LegKinematics{
		Cand:   []fourvec.FourVec{fourvec.New(0, 0, 1.2, 2.5)},
		Pions:  [][]fourvec.FourVec{{pi}},
		Pi0:    []fourvec.FourVec{pi0},
		Charge: []float64{-1},
	}

	prep, err := SelectVectors(leg, LegConfig{MethodDP, ModeRho})
	require.NoError(t, err)
	assert.Equal(t, pi, prep.P[0])
	assert.Equal(t, pi0, prep.R[0])
	assert.Equal(t, -1.0, prep.Charge[0])
}

func TestSelectDPA1RhoMassRule(t *testing.T) {
	os := fourvec.New(1, 0, 0, 1)

	// Pairing with ss1 gives m = 2, with ss2 gives m = sqrt(2); the
	// second is closer to the rho mass, so ss2 is the primary.
	ss1 := fourvec.New(-1, 0, 0, 1)
	ss2 := fourvec.New(0, 1, 0, 1)
	// Second event reversed: the ss1 pairing has m = 1, closest.
	ss1b := fourvec.New(0, 0.5, 0, 0.5)
	ss2b := fourvec.New(-1, 0, 0, 1)

	leg := &LegKinematics{
		Cand: []fourvec.FourVec{fourvec.New(0, 0, 3, 4), fourvec.New(0, 0, 3, 4)},
		Pions: [][]fourvec.FourVec{
			{os, ss1, ss2},
			{os, ss1b, ss2b},
		},
		Charge: []float64{1, 1},
	}

	prep, err := SelectVectors(leg, LegConfig{MethodDP, ModeA1})
	require.NoError(t, err)
	assert.Equal(t, ss2, prep.P[0], "event 0 should pick the second same-sign pion")
	assert.Equal(t, ss1b, prep.P[1], "event 1 should pick the first same-sign pion")
	assert.Equal(t, os, prep.R[0], "reference is always the opposite-sign pion")
	assert.Equal(t, os, prep.R[1])
}

func TestSelectPVKeepsFullPionSet(t *testing.T) {
	tau := fourvec.New(0, 0, 5, 5.5)
	pions := []fourvec.FourVec{
		fourvec.New(1, 0, 0, 1), fourvec.New(0, 1, 0, 1), fourvec.New(0, 0, 1, 1),
	}
	leg := &LegKinematics{
		Cand:   []fourvec.FourVec{tau},
		Pions:  [][]fourvec.FourVec{pions},
		Charge: []float64{1},
	}

	prep, err := SelectVectors(leg, LegConfig{MethodPV, ModeA1})
	require.NoError(t, err)
	assert.Equal(t, tau, prep.P[0])
	assert.Equal(t, pions, prep.Pions[0])
	assert.Nil(t, prep.R)
}

func TestSelectIP(t *testing.T) {
	cand := fourvec.New(0, 0, 2, 2.1)
	pi := fourvec.New(0.5, 0, 1, 1.2)
	leg := &LegKinematics{
		Cand:   []fourvec.FourVec{cand},
		Pions:  [][]fourvec.FourVec{{pi}},
		IP:     []r3.Vec{{X: 1e-3}},
		Charge: []float64{-1},
	}

	prep, err := SelectVectors(leg, LegConfig{MethodIP, ModeMu})
	require.NoError(t, err)
	assert.Equal(t, cand, prep.P[0])
	assert.Equal(t, cand, prep.R[0])

	prep, err = SelectVectors(leg, LegConfig{MethodIP, ModePi})
	require.NoError(t, err)
	assert.Equal(t, pi, prep.P[0], "single-pion leg leads with the pion")
	assert.Equal(t, cand, prep.R[0], "candidate carries the impact parameter")
}
