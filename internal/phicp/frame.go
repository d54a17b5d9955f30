package phicp

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/htautau-data/phicp.report/internal/fourvec"
)

// FrameBoost computes the boost vector of the candidate pair's
// zero-momentum frame, one per event. The frame is derived from both
// legs jointly, never per leg.
//
// When both legs use the polarimetric-vector method in the single-pion
// mode, the primaries (the taus) are not yet fully determined while
// both charged-pion momenta are, so the frame is built from the pion
// sum. Every other combination sums the primaries.
func FrameBoost(p1, p2 *Prepared, cfg1, cfg2 LegConfig) ([]r3.Vec, error) {
	n := len(p1.P)
	if len(p2.P) != n {
		return nil, fmt.Errorf("%w: leg batches have %d and %d events", ErrStructuralMismatch, n, len(p2.P))
	}

	pionFrame := cfg1.Method == MethodPV && cfg2.Method == MethodPV &&
		cfg1.Mode == ModePi && cfg2.Mode == ModePi

	boost := make([]r3.Vec, n)
	for i := range boost {
		var frame fourvec.FourVec
		if pionFrame {
			frame = p1.Pions[i][0].Add(p2.Pions[i][0])
		} else {
			frame = p1.P[i].Add(p2.P[i])
		}
		boost[i] = frame.BoostVec()
	}
	return boost, nil
}
