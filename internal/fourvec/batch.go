package fourvec

import "gonum.org/v1/gonum/spatial/r3"

// Batched elementwise selection primitives. The pipeline is an array
// transform over aligned per-event slices; wherever one of two batched
// vectors must be chosen per event, the choice is expressed through a
// boolean mask rather than per-event control flow in the caller.

// SelectVecs returns the elementwise choice between two 3-vector
// batches: a[i] where mask[i] is true, b[i] otherwise. All slices must
// have the same length.
func SelectVecs(mask []bool, a, b []r3.Vec) []r3.Vec {
	out := make([]r3.Vec, len(mask))
	for i, m := range mask {
		if m {
			out[i] = a[i]
		} else {
			out[i] = b[i]
		}
	}
	return out
}

// SelectFourVecs returns the elementwise choice between two four-vector
// batches: a[i] where mask[i] is true, b[i] otherwise.
func SelectFourVecs(mask []bool, a, b []FourVec) []FourVec {
	out := make([]FourVec, len(mask))
	for i, m := range mask {
		if m {
			out[i] = a[i]
		} else {
			out[i] = b[i]
		}
	}
	return out
}

// SelectFloats returns the elementwise choice between two scalar
// batches: a[i] where mask[i] is true, b[i] otherwise.
func SelectFloats(mask []bool, a, b []float64) []float64 {
	out := make([]float64, len(mask))
	for i, m := range mask {
		if m {
			out[i] = a[i]
		} else {
			out[i] = b[i]
		}
	}
	return out
}
