package concentrations

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// initialGuess chooses the scalar lambda0 that saturates the tightest
// overflow constraint, lambda0 = min_j (MaxLogX + G[j]) / sum_i AT[j][i],
// and sets every lambda[i] = lambda0.
//
// If restart is true (this is not the first trial), the full vector is
// perturbed before inert species are pinned, so that a restart perturbs
// every coordinate and then re-pins the analytically known ones -- the
// ordering spec.md's Open Questions call for, even though the original C
// pins before perturbing.
//
// Every monomer i that is inert (row i of A has exactly one non-zero
// entry) is then pinned to its analytic value lambda[i] = log(x0[i]) +
// G[j*], where j* is the unique complex containing it.
func initialGuess(a, at [][]int, atDense *mat.Dense, g, x0 []float64, perturbScale float64, restart bool, rng *restartRNG) (*mat.VecDense, error) {
	numSS := len(x0)
	numTotal := len(g)

	lambda0 := (MaxLogX + g[0]) / float64(sumIntRow(at[0]))
	for j := 1; j < numTotal; j++ {
		v := (MaxLogX + g[j]) / float64(sumIntRow(at[j]))
		if v < lambda0 {
			lambda0 = v
		}
	}

	lambdaData := make([]float64, numSS)
	for i := range lambdaData {
		lambdaData[i] = lambda0
	}
	lambda := mat.NewVecDense(numSS, lambdaData)

	if restart {
		perturbed, err := perturbLambda(lambda, perturbScale, atDense, g, rng)
		if err != nil {
			return nil, err
		}
		lambda = perturbed
	}

	for i := 0; i < numSS; i++ {
		if isInert(a[i]) {
			jStar := findNonZero(a[i])
			lambda.SetVec(i, math.Log(x0[i])+g[jStar])
		}
	}

	return lambda, nil
}
