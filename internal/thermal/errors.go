package thermal

import "errors"

// Solver failure taxonomy. Callers match with errors.Is; wrapped messages
// carry the offending values for diagnostics.
var (
	// ErrInvalidInput marks physically invalid parameters. Retrying with
	// the same inputs cannot succeed.
	ErrInvalidInput = errors.New("invalid thermal input")

	// ErrTargetUnattainable means the target U-value cannot be reached
	// even at the maximum insulation thickness. A caller may retry with a
	// larger bound or a lower-conductivity insulation material.
	ErrTargetUnattainable = errors.New("target u-value unattainable")

	// ErrNoBracketedRoot means the residual does not change sign across
	// the search interval despite passing the earlier checks. Given the
	// monotonicity of the resistance model this should be unreachable; it
	// indicates an internal inconsistency, not bad user input.
	ErrNoBracketedRoot = errors.New("residual does not bracket a root")

	// ErrNonConvergence means the root-finder exhausted its iteration
	// budget without meeting tolerance.
	ErrNonConvergence = errors.New("root-finder did not converge")
)
