package concentrations

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// getX computes the parameter map x[j] = exp(-G[j] + <lambda, AT[j]>) for
// every complex, writing the result into dst. logx_j is (AT*lambda)[j] -
// G[j], computed as a single matrix-vector product via AT (numTotal x
// numSS, float64-promoted once per Solve call) rather than numTotal
// separate dot products, the same way optimize/nlls/lmopt.go leans on
// mat.Dense/mat.VecDense products instead of hand-rolled loops.
//
// It reports ErrOverflow, leaving dst in a partially-updated state, if
// any logx_j exceeds MaxLogX. It has no side effects on lambda or G.
func getX(dst *mat.VecDense, lambda *mat.VecDense, at *mat.Dense, g []float64) error {
	dst.MulVec(at, lambda)
	n := dst.Len()
	for j := 0; j < n; j++ {
		logx := dst.AtVec(j) - g[j]
		if logx > MaxLogX {
			return ErrOverflow
		}
		dst.SetVec(j, math.Exp(logx))
	}
	return nil
}
