package eventio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBatch() *Batch {
	return &Batch{Events: []Event{
		{
			Leg1: Leg{
				Cand:   P4{Px: 0, Py: 0, Pz: 1.2, E: 2.2},
				Charge: -1,
				Pions:  []P4{{Pz: 1, E: 2}},
				Pi0:    &P4{Px: 1, E: 1},
				IP:     &Vec3{X: 1e-3},
			},
			Leg2: Leg{
				Cand:   P4{Pz: -1.2, E: 2.2},
				Charge: 1,
				Pions:  []P4{{Pz: -1, E: 2}},
				Pi0:    &P4{Py: 1, E: 3},
			},
		},
	}}
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.json")
	b := sampleBatch()
	require.NoError(t, WriteFile(path, b))

	got, err := ReadFile(path)
	require.NoError(t, err)
	if diff := cmp.Diff(b, got); diff != "" {
		t.Errorf("batch mismatch (-want +got):\n%s", diff)
	}
}

func TestReadFileRejectsNonJSON(t *testing.T) {
	_, err := ReadFile("events.csv")
	assert.Error(t, err)
}

func TestReadFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))
	_, err := ReadFile(path)
	assert.Error(t, err)
}

func TestLegs(t *testing.T) {
	leg1, leg2, err := sampleBatch().Legs()
	require.NoError(t, err)

	require.Equal(t, 1, leg1.Len())
	assert.Equal(t, -1.0, leg1.Charge[0])
	assert.Equal(t, 1.0, leg2.Charge[0])
	assert.Equal(t, 1.2, leg1.Cand[0].Pz)
	require.Len(t, leg1.Pions[0], 1)
	assert.Equal(t, 2.0, leg1.Pions[0][0].E)
	assert.Equal(t, 1.0, leg1.Pi0[0].Px)
	assert.Equal(t, 1e-3, leg1.IP[0].X)
	// Missing optional records decode to zero values.
	assert.Zero(t, leg2.IP[0])
}

func TestLegsRejectsNeutralCharge(t *testing.T) {
	b := sampleBatch()
	b.Events[0].Leg2.Charge = 0
	_, _, err := b.Legs()
	assert.Error(t, err)
}
