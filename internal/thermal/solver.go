// Package thermal solves the radial heat-conduction model of an insulated
// district-heating pipe for the insulation thickness required to hit a
// target U-value.
//
// The cross-section is three concentric cylindrical shells: the pipe wall
// (inner diameter di, outer diameter da), the insulation layer, and an
// outer protective jacket. Their length-specific thermal resistances add
// in series:
//
//	R(t) = ln(da/di)/(2·λw) + ln((da+2t)/da)/(2·λi) + ln((da+2t+2o)/(da+2t))/(2·λw)
//
// where t is the insulation thickness and o the jacket thickness. R is
// strictly increasing in t, so the residual R(t) − π/U has at most one
// root and a sign-based bracketing method is guaranteed to find it.
package thermal

import (
	"fmt"
	"math"
)

// DefaultMaxThickness is the upper search bound [m] used when a Spec
// leaves MaxThickness zero.
const DefaultMaxThickness = 1.0

// lowerBound is the smallest trial thickness [m]. Strictly positive so the
// insulation logarithm never evaluates exactly at ln(1).
const lowerBound = 1e-9

// Spec holds the geometry and material parameters of one pipe variant.
// All lengths are in meters, conductivities in W/(m·K).
type Spec struct {
	TargetUValue        float64 // overall heat-transfer coefficient to achieve, > 0
	LambdaInsulation    float64 // insulation conductivity, > 0
	LambdaWall          float64 // pipe wall / jacket conductivity, > 0
	InnerDiameter       float64 // di, > 0
	OuterDiameter       float64 // da, > di
	OuterLayerThickness float64 // protective jacket thickness, >= 0
	MaxThickness        float64 // search bound, > 0; 0 means DefaultMaxThickness
}

// Validate checks the physical preconditions. Each violation wraps
// ErrInvalidInput with the offending field.
func (s Spec) Validate() error {
	switch {
	case s.TargetUValue <= 0:
		return fmt.Errorf("%w: target u-value must be positive, got %g", ErrInvalidInput, s.TargetUValue)
	case s.LambdaInsulation <= 0:
		return fmt.Errorf("%w: insulation conductivity must be positive, got %g", ErrInvalidInput, s.LambdaInsulation)
	case s.LambdaWall <= 0:
		return fmt.Errorf("%w: wall conductivity must be positive, got %g", ErrInvalidInput, s.LambdaWall)
	case s.InnerDiameter <= 0:
		return fmt.Errorf("%w: inner diameter must be positive, got %g", ErrInvalidInput, s.InnerDiameter)
	case s.OuterDiameter <= 0:
		return fmt.Errorf("%w: outer diameter must be positive, got %g", ErrInvalidInput, s.OuterDiameter)
	case s.OuterLayerThickness < 0:
		return fmt.Errorf("%w: outer layer thickness must not be negative, got %g", ErrInvalidInput, s.OuterLayerThickness)
	case s.OuterDiameter <= s.InnerDiameter:
		return fmt.Errorf("%w: outer diameter %g must exceed inner diameter %g", ErrInvalidInput, s.OuterDiameter, s.InnerDiameter)
	}
	return nil
}

// maxThickness returns the effective upper search bound.
func (s Spec) maxThickness() float64 {
	if s.MaxThickness <= 0 {
		return DefaultMaxThickness
	}
	return s.MaxThickness
}

// wallResistance is the length-specific resistance of the bare pipe wall.
func (s Spec) wallResistance() float64 {
	return math.Log(s.OuterDiameter/s.InnerDiameter) / (2 * s.LambdaWall)
}

// Resistance evaluates the total radial resistance R(t) for a trial
// insulation thickness t. For t <= 0 the insulation and jacket terms
// vanish and only the bare wall remains, which keeps the logarithms out
// of degenerate territory.
func (s Spec) Resistance(t float64) float64 {
	rWall := s.wallResistance()
	if t <= 0 {
		return rWall
	}
	da := s.OuterDiameter
	rIns := math.Log((da+2*t)/da) / (2 * s.LambdaInsulation)
	rJacket := math.Log((da+2*t+2*s.OuterLayerThickness)/(da+2*t)) / (2 * s.LambdaWall)
	return rWall + rIns + rJacket
}

// Solve computes the insulation thickness [m] at which the assembly meets
// the target U-value. A result of 0 means the bare wall alone already
// meets or beats the target; that is a success, not an error. Failures
// wrap one of ErrInvalidInput, ErrTargetUnattainable, ErrNoBracketedRoot,
// or ErrNonConvergence.
func Solve(spec Spec) (float64, error) {
	if err := spec.Validate(); err != nil {
		return 0, err
	}

	required := math.Pi / spec.TargetUValue
	if spec.wallResistance() >= required {
		// Bare wall already meets the target.
		return 0, nil
	}

	residual := func(t float64) float64 {
		return spec.Resistance(t) - required
	}

	upper := spec.maxThickness()
	fLower := residual(lowerBound)
	fUpper := residual(upper)

	// Kept separate from the wallResistance check above: evaluation at
	// t=1e-9 can disagree with the exact t=0 comparison in edge cases.
	if fLower > 0 {
		return 0, nil
	}
	if fUpper < 0 {
		return 0, fmt.Errorf("%w: u-value %g requires more than %g m of insulation",
			ErrTargetUnattainable, spec.TargetUValue, upper)
	}
	if fLower*fUpper > 0 {
		return 0, fmt.Errorf("%w: residual(%g)=%g, residual(%g)=%g",
			ErrNoBracketedRoot, lowerBound, fLower, upper, fUpper)
	}

	return brent(residual, lowerBound, upper, fLower, fUpper, brentMaxIter)
}

// brentMaxIter bounds the root-finding loop so pathological floating-point
// inputs cannot hang the solver.
const brentMaxIter = 100

// brentTol is the absolute thickness tolerance [m].
const brentTol = 1e-12

// brent finds the root of f in [a, b] given f(a)=fa and f(b)=fb with
// opposite signs. Classic Brent's method: inverse quadratic interpolation
// with a secant fallback, guarded by bisection steps so the bracket
// always shrinks. maxIter caps the loop; exhausting it returns
// ErrNonConvergence.
func brent(f func(float64) float64, a, b, fa, fb float64, maxIter int) (float64, error) {
	c, fc := a, fa
	d := b - a
	e := d

	for i := 0; i < maxIter; i++ {
		if math.Abs(fc) < math.Abs(fb) {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}

		const eps = 2.220446049250313e-16
		tol := 2*eps*math.Abs(b) + brentTol/2
		m := 0.5 * (c - b)

		if math.Abs(m) <= tol || fb == 0 {
			return b, nil
		}

		if math.Abs(e) < tol || math.Abs(fa) <= math.Abs(fb) {
			// Interpolation is not trustworthy here; bisect.
			d, e = m, m
		} else {
			s := fb / fa
			var p, q float64
			if a == c {
				// Secant step.
				p = 2 * m * s
				q = 1 - s
			} else {
				// Inverse quadratic interpolation.
				q = fa / fc
				r := fb / fc
				p = s * (2*m*q*(q-r) - (b-a)*(r-1))
				q = (q - 1) * (r - 1) * (s - 1)
			}
			if p > 0 {
				q = -q
			} else {
				p = -p
			}
			if 2*p < math.Min(3*m*q-math.Abs(tol*q), math.Abs(e*q)) {
				e = d
				d = p / q
			} else {
				d, e = m, m
			}
		}

		a, fa = b, fb
		if math.Abs(d) > tol {
			b += d
		} else if m > 0 {
			b += tol
		} else {
			b -= tol
		}
		fb = f(b)

		if (fb > 0) == (fc > 0) {
			c, fc = a, fa
			d = b - a
			e = d
		}
	}

	return 0, fmt.Errorf("%w: no root within tolerance after %d iterations", ErrNonConvergence, maxIter)
}
