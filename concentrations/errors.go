package concentrations

import "errors"

// ErrOverflow signifies that the parameter map produced a mole fraction
// that would overflow float64 at a point the solver must trust: the
// initial guess, an accepted step, or a gradient/Hessian evaluation. It
// indicates malformed inputs or exhaustion of floating-point range; the
// initial-guess heuristic is designed to make it unreachable for
// well-posed inputs.
var ErrOverflow = errors.New("concentrations: overflow in parameter map")

// ErrZeroDimensional signifies the solver was called with numSS or
// numTotal equal to zero.
var ErrZeroDimensional = errors.New("concentrations: zero dimensional problem")

// ErrDimMismatch signifies that the dimensions of A, G or x0 are not
// mutually consistent.
var ErrDimMismatch = errors.New("concentrations: dimension mismatch between A, G and x0")
