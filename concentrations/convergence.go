package concentrations

import "gonum.org/v1/gonum/mat"

// converged reports whether every entry of grad is within the
// corresponding absolute tolerance absTol[i].
func converged(grad *mat.VecDense, absTol []float64) bool {
	for i, tol := range absTol {
		g := grad.AtVec(i)
		if g < 0 {
			g = -g
		}
		if g > tol {
			return false
		}
	}
	return true
}
