package concentrations

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// freeEnergy computes the free energy of the solution from converged mole
// fractions x, in kcal per liter:
//
//	F = sum_i x0[i]*(1 - log x0[i]) + sum_{j: x[j]>0} x[j]*(log x[j] + G[j] - 1)
//
// scaled by kT*MolesWaterPerLiter. Each sum is built as a per-term slice
// and reduced with floats.Sum, rather than accumulated in the same loop
// that computes the terms, so the reduction itself goes through the same
// floats helper the rest of the package uses (see rho.go).
func freeEnergy(x0, x, g []float64, kT, molesWaterPerLiter float64) float64 {
	ref := make([]float64, len(x0))
	for i, v := range x0 {
		ref[i] = v * (1 - math.Log(v))
	}

	sol := make([]float64, 0, len(x))
	for j, xj := range x {
		if xj > 0 {
			sol = append(sol, xj*(math.Log(xj)+g[j]-1))
		}
	}

	f := floats.Sum(ref) + floats.Sum(sol)
	return f * kT * molesWaterPerLiter
}
