package phicp

import "errors"

var (
	// ErrUnsupportedConfig reports a (method, mode) pair the pipeline has
	// no selection rule for. The call aborts; there is no safe default.
	ErrUnsupportedConfig = errors.New("phicp: unsupported method/mode configuration")

	// ErrUnsupportedMode reports a decay mode that reached a method
	// branch it does not belong to.
	ErrUnsupportedMode = errors.New("phicp: unsupported mode for method")

	// ErrStructuralMismatch reports misaligned batches or a malformed
	// intermediate vector set. It indicates a caller contract violation.
	ErrStructuralMismatch = errors.New("phicp: structural mismatch")

	// ErrNoPolarimetric reports an a1 decay mode requested on a Computer
	// with no polarimetric function configured.
	ErrNoPolarimetric = errors.New("phicp: polarimetric function not configured")
)
