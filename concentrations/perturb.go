package concentrations

import "gonum.org/v1/gonum/mat"

// perturbLambda draws lambda'[i] = lambda[i] + scale*(2*u-1), u ~
// U[0,1) independent per i, and checks the resulting parameter map for
// overflow via getX. On overflow it halves scale and retries; this
// terminates because reducing scale shrinks the perturbation toward zero
// from a feasible starting point (lambda itself never overflows, since it
// is only ever called on an already-feasible vector).
func perturbLambda(lambda *mat.VecDense, scale float64, atDense *mat.Dense, g []float64, rng *restartRNG) (*mat.VecDense, error) {
	numSS := lambda.Len()
	numTotal := len(g)

	candidate := mat.NewVecDense(numSS, nil)
	dummy := mat.NewVecDense(numTotal, nil)
	for {
		for i := 0; i < numSS; i++ {
			candidate.SetVec(i, lambda.AtVec(i)+scale*2*(rng.Float64()-0.5))
		}
		if err := getX(dummy, candidate, atDense, g); err == nil {
			return candidate, nil
		}
		scale /= 2.0
	}
}
