package phicp

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/htautau-data/phicp.report/internal/fourvec"
)

// LegKinematics carries the raw batched decay kinematics of one leg.
// All slices are aligned: index i belongs to event i throughout.
//
// Pions holds the charged decay pions: one per event for the pi and rho
// modes, exactly three for a1 with the opposite-sign pion first. The
// opposite-sign-first ordering is a caller precondition; only the
// multiplicity is validated here. Leptonic legs may leave Pions empty.
//
// IP is the impact-parameter 3-vector of the decay candidate, required
// only by the impact-parameter method.
type LegKinematics struct {
	Cand   []fourvec.FourVec
	Pions  [][]fourvec.FourVec
	Pi0    []fourvec.FourVec
	IP     []r3.Vec
	Charge []float64
}

// Len returns the number of events in the batch.
func (l *LegKinematics) Len() int {
	return len(l.Cand)
}

// validate checks the per-mode structural requirements of the leg
// against the expected batch length n.
func (l *LegKinematics) validate(cfg LegConfig, n int, name string) error {
	if len(l.Cand) != n {
		return fmt.Errorf("%w: %s has %d candidates, want %d", ErrStructuralMismatch, name, len(l.Cand), n)
	}
	if len(l.Charge) != n {
		return fmt.Errorf("%w: %s has %d charges, want %d", ErrStructuralMismatch, name, len(l.Charge), n)
	}
	for i, c := range l.Charge {
		if c != 1 && c != -1 {
			return fmt.Errorf("%w: %s event %d has charge %v, want +1 or -1", ErrStructuralMismatch, name, i, c)
		}
	}

	if np := cfg.Mode.NPions(); np > 0 {
		if len(l.Pions) != n {
			return fmt.Errorf("%w: %s has %d pion records, want %d", ErrStructuralMismatch, name, len(l.Pions), n)
		}
		for i, pi := range l.Pions {
			if len(pi) != np {
				return fmt.Errorf("%w: %s event %d has %d charged pions, mode %s wants %d",
					ErrStructuralMismatch, name, i, len(pi), cfg.Mode, np)
			}
		}
	}

	needPi0 := cfg == LegConfig{MethodDP, ModeRho} || cfg == LegConfig{MethodPV, ModeRho}
	if needPi0 && len(l.Pi0) != n {
		return fmt.Errorf("%w: %s has %d pi0 records, want %d", ErrStructuralMismatch, name, len(l.Pi0), n)
	}

	if cfg.Method == MethodIP && len(l.IP) != n {
		return fmt.Errorf("%w: %s has %d impact-parameter vectors, want %d", ErrStructuralMismatch, name, len(l.IP), n)
	}

	return nil
}
