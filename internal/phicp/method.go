package phicp

import "fmt"

// Method identifies the reconstruction technique applied to one decay leg.
type Method uint8

const (
	MethodUnknown Method = iota
	// MethodDP is the decay-plane (neutral-pion) method.
	MethodDP
	// MethodPV is the polarimetric-vector method.
	MethodPV
	// MethodIP is the impact-parameter method.
	MethodIP
)

func (m Method) String() string {
	switch m {
	case MethodDP:
		return "DP"
	case MethodPV:
		return "PV"
	case MethodIP:
		return "IP"
	}
	return "unknown"
}

// ParseMethod converts the analysis-level method label into a Method.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "DP":
		return MethodDP, nil
	case "PV":
		return MethodPV, nil
	case "IP":
		return MethodIP, nil
	}
	return MethodUnknown, fmt.Errorf("%w: method %q", ErrUnsupportedConfig, s)
}

// Mode identifies the decay-product topology of one leg.
type Mode uint8

const (
	ModeUnknown Mode = iota
	ModeE
	ModeMu
	ModePi
	ModeRho
	ModeA1
)

func (m Mode) String() string {
	switch m {
	case ModeE:
		return "e"
	case ModeMu:
		return "mu"
	case ModePi:
		return "pi"
	case ModeRho:
		return "rho"
	case ModeA1:
		return "a1"
	}
	return "unknown"
}

// ParseMode converts the analysis-level decay-mode label into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "e":
		return ModeE, nil
	case "mu":
		return ModeMu, nil
	case "pi":
		return ModePi, nil
	case "rho":
		return ModeRho, nil
	case "a1":
		return ModeA1, nil
	}
	return ModeUnknown, fmt.Errorf("%w: mode %q", ErrUnsupportedConfig, s)
}

// Hadronic reports whether the mode is a hadronic tau decay. The second
// leg of a candidate pair is always hadronic in this analysis.
func (m Mode) Hadronic() bool {
	return m == ModePi || m == ModeRho || m == ModeA1
}

// NPions returns the charged-pion multiplicity the mode requires, or
// zero for leptonic modes where the candidate itself is used.
func (m Mode) NPions() int {
	switch m {
	case ModePi, ModeRho:
		return 1
	case ModeA1:
		return 3
	}
	return 0
}

// LegConfig pairs the reconstruction method and decay mode of one leg.
// It is a static parameter, fixed per call.
type LegConfig struct {
	Method Method
	Mode   Mode
}

func (c LegConfig) String() string {
	return c.Method.String() + "/" + c.Mode.String()
}

// Supported reports whether the pair has a selection rule. The full set
// of valid configurations is the key set of the selector dispatch table.
func (c LegConfig) Supported() bool {
	_, ok := selectors[c]
	return ok
}
