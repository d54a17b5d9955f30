// Package phicp reconstructs the CP-sensitive acoplanarity angle of a
// Higgs candidate decaying to a pair of tau leptons.
//
// The pipeline runs five stages over a batch of events: per-leg vector
// selection, zero-momentum-frame determination, per-leg boosting and
// normalisation, angle combination, and orchestration. Each stage is a
// pure function of its inputs; output event i always corresponds to
// input event i.
//
// Dependency rule: phicp may depend on fourvec but never on the I/O,
// storage or reporting packages.
package phicp
