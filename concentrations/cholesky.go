package concentrations

import "gonum.org/v1/gonum/mat"

// newtonStep attempts to solve Hes*step = -Grad via Cholesky
// factorization of Hes. It reports ok=false if Hes is not (numerically)
// positive definite, in which case the caller falls back to a Cauchy
// step. This mirrors CalcConc.c's choleskyDecomposition/choleskySolve
// pair, but delegates the factorization and solve themselves to
// gonum.org/v1/gonum/mat's Cholesky type, the same way the historical
// gonum Newton method (root newton.go) and optimize/nlls/lmopt.go use it:
// factorize a copy, solve, done — no separate diagonal scratch buffer is
// kept, since mat.Cholesky already owns its decomposition.
func newtonStep(hes *mat.SymDense, grad *mat.VecDense) (step *mat.VecDense, ok bool) {
	var chol mat.Cholesky
	if ok := chol.Factorize(hes); !ok {
		return nil, false
	}
	n := grad.Len()
	step = mat.NewVecDense(n, nil)
	if err := chol.SolveVecTo(step, grad); err != nil {
		return nil, false
	}
	step.ScaleVec(-1, step)
	return step, true
}
