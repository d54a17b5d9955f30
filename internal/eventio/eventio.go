// Package eventio reads and writes the JSON event-batch format used by
// the command-line tools. It converts caller-side event records into
// the aligned per-leg batches the phicp core consumes; the core itself
// performs no I/O.
package eventio

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/htautau-data/phicp.report/internal/fourvec"
	"github.com/htautau-data/phicp.report/internal/phicp"
)

// P4 is a four-vector event record.
type P4 struct {
	Px float64 `json:"px"`
	Py float64 `json:"py"`
	Pz float64 `json:"pz"`
	E  float64 `json:"e"`
}

// Vec3 is a 3-vector event record (used for the impact parameter).
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Leg is the raw decay record of one leg in one event.
type Leg struct {
	Cand   P4    `json:"cand"`
	Charge int   `json:"charge"`
	Pions  []P4  `json:"pions,omitempty"`
	Pi0    *P4   `json:"pi0,omitempty"`
	IP     *Vec3 `json:"ip,omitempty"`
}

// Event pairs the two decay legs of one candidate.
type Event struct {
	Leg1 Leg `json:"leg1"`
	Leg2 Leg `json:"leg2"`
}

// Batch is the on-disk event collection.
type Batch struct {
	Events []Event `json:"events"`
}

// ReadFile decodes a JSON event batch from disk.
func ReadFile(path string) (*Batch, error) {
	if ext := filepath.Ext(path); ext != ".json" {
		return nil, fmt.Errorf("event file must have .json extension, got %q", ext)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read events: %w", err)
	}
	var b Batch
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}
	return &b, nil
}

// WriteFile encodes a batch as indented JSON.
func WriteFile(path string, b *Batch) error {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return fmt.Errorf("encode events: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write events: %w", err)
	}
	return nil
}

// Legs converts the batch into the two aligned LegKinematics batches
// the pipeline consumes. Missing optional records (pi0, ip) become zero
// values; whether they are actually required is decided by the core's
// per-mode validation.
func (b *Batch) Legs() (*phicp.LegKinematics, *phicp.LegKinematics, error) {
	n := len(b.Events)
	leg1 := newLegKinematics(n)
	leg2 := newLegKinematics(n)
	for i, ev := range b.Events {
		if err := fillLeg(leg1, i, &ev.Leg1); err != nil {
			return nil, nil, fmt.Errorf("event %d leg 1: %w", i, err)
		}
		if err := fillLeg(leg2, i, &ev.Leg2); err != nil {
			return nil, nil, fmt.Errorf("event %d leg 2: %w", i, err)
		}
	}
	return leg1, leg2, nil
}

func newLegKinematics(n int) *phicp.LegKinematics {
	return &phicp.LegKinematics{
		Cand:   make([]fourvec.FourVec, n),
		Pions:  make([][]fourvec.FourVec, n),
		Pi0:    make([]fourvec.FourVec, n),
		IP:     make([]r3.Vec, n),
		Charge: make([]float64, n),
	}
}

func fillLeg(dst *phicp.LegKinematics, i int, src *Leg) error {
	if src.Charge != 1 && src.Charge != -1 {
		return fmt.Errorf("charge %d, want +1 or -1", src.Charge)
	}
	dst.Cand[i] = toFourVec(src.Cand)
	dst.Charge[i] = float64(src.Charge)
	if len(src.Pions) > 0 {
		pions := make([]fourvec.FourVec, len(src.Pions))
		for j, p := range src.Pions {
			pions[j] = toFourVec(p)
		}
		dst.Pions[i] = pions
	}
	if src.Pi0 != nil {
		dst.Pi0[i] = toFourVec(*src.Pi0)
	}
	if src.IP != nil {
		dst.IP[i] = r3.Vec{X: src.IP.X, Y: src.IP.Y, Z: src.IP.Z}
	}
	return nil
}

func toFourVec(p P4) fourvec.FourVec {
	return fourvec.New(p.Px, p.Py, p.Pz, p.E)
}
