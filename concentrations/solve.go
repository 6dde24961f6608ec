package concentrations

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Solve computes the equilibrium mole fractions of problem's complexes
// using a trust-region Newton method with a dogleg search direction on
// the concave dual of the free-energy minimization (Nocedal and Wright,
// Numerical Optimization, 1999, p.68-71).
//
// Settings tunes the optimizer; a zero Settings uses the package
// defaults. Solve returns ErrOverflow if the parameter map overflows at a
// point the algorithm must trust (the initial guess, an accepted step, or
// a post-step gradient evaluation); overflow during a trial-step rho
// evaluation is not fatal and only rejects that step. Result.Converged
// reports whether the gradient tolerance was reached with a trial to
// spare (nTrial < Settings.MaxTrial on exit): a solution that only
// reaches tolerance on the last permitted trial is reported as
// non-convergent, matching CalcConc.c. Result.X always holds the mole
// fractions at the best lambda explored in the final trial, converged or
// not.
func Solve(problem Problem, settings Settings) (*Result, error) {
	if err := problem.validate(); err != nil {
		return nil, err
	}
	defaultSettings(&settings)

	numSS := problem.NumSS()
	numTotal := problem.NumTotal()

	at := transposeInt(problem.A)
	atDense := denseFromInt(at)
	aFloat := denseFromInt(problem.A)
	x0Vec := mat.NewVecDense(numSS, problem.X0)

	absTol := make([]float64, numSS)
	for i, v := range problem.X0 {
		absTol[i] = settings.Tol * v
	}

	var (
		rng      *restartRNG
		lambda   *mat.VecDense
		x        *mat.VecDense
		grad     *mat.VecDense
		runStats RunStats
		iters    int
		gotTol   bool
	)

	nTrial := 0
	for !gotTol && nTrial < settings.MaxTrial {
		if nTrial == 1 {
			rng = newRestartRNG(settings.Seed)
		}
		restart := nTrial >= 1

		var err error
		lambda, err = initialGuess(problem.A, at, atDense, problem.G, problem.X0, settings.PerturbScale, restart, rng)
		if err != nil {
			return nil, err
		}

		x = mat.NewVecDense(numTotal, nil)
		if err := getX(x, lambda, atDense, problem.G); err != nil {
			return nil, err
		}
		grad = getGrad(problem.X0, x, aFloat)

		delta := 0.99 * settings.DeltaBar
		nNoStep := 0
		runStats = RunStats{}
		iters = 0

		for iters < settings.MaxIters && !converged(grad, absTol) && nNoStep < settings.MaxNoStep {
			hes := getHes(problem.A, x)

			p, kind := searchDirection(grad, hes, delta)
			runStats[kind]++

			rho := trialRho(lambda, p, grad, x, hes, x0Vec, problem.G, atDense)

			normP := mat.Norm(p, 2)
			switch {
			case rho < 0.25:
				delta /= 4
			case rho > 0.75 && math.Abs(normP-delta) < NumPrecision:
				delta = math.Min(2*delta, settings.DeltaBar)
			}

			if rho > settings.Eta {
				lambda.AddVec(lambda, p)
				nNoStep = 0
			} else {
				nNoStep++
			}

			if err := getX(x, lambda, atDense, problem.G); err != nil {
				return nil, err
			}
			grad = getGrad(problem.X0, x, aFloat)

			iters++
		}

		gotTol = converged(grad, absTol)
		nTrial++
	}

	// CalcConc.c:228-233 reports convergence iff the loop exited with
	// trials to spare, not from the gradient test alone: a solution found
	// on exactly the last allowed trial (nTrial == MaxTrial) is reported
	// as non-convergent.
	hasConverged := nTrial < settings.MaxTrial

	xOut := vecToSlice(x)
	fe := freeEnergy(problem.X0, xOut, problem.G, settings.KT, settings.MolesWaterPerLiter)

	return &Result{
		X:          xOut,
		Converged:  hasConverged,
		FreeEnergy: fe,
		Stats: Stats{
			Trials:     nTrial,
			Iterations: iters,
			RunStats:   runStats,
		},
	}, nil
}
