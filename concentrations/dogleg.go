package concentrations

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// searchDirection implements the dogleg method (Nocedal and Wright,
// Numerical Optimization, 1999, p.68-71): it prefers the pure Newton
// step, falls back to the Cauchy point when Newton lands outside the
// trust region or Cholesky fails, and otherwise interpolates along the
// dogleg path. It reports which of the six CalcConc.c outcomes occurred,
// so the caller can tally RunStats.
func searchDirection(grad *mat.VecDense, hes *mat.SymDense, delta float64) (p *mat.VecDense, kind StepKind) {
	n := grad.Len()
	delta2 := delta * delta

	pB, cholOK := newtonStep(hes, grad)
	var pB2 float64
	if cholOK {
		pB2 = mat.Dot(pB, pB)
		if pB2 <= delta2 {
			return pB, Newton
		}
	}

	hGrad := mat.NewVecDense(n, nil)
	hGrad.MulVec(hes, grad)
	magGrad2 := mat.Dot(grad, grad)
	magGradHGrad := mat.Dot(grad, hGrad)
	pUCoeff := magGrad2 / magGradHGrad

	pU := mat.NewVecDense(n, nil)
	pU.ScaleVec(-pUCoeff, grad)
	pU2 := mat.Dot(pU, pU)

	if pU2 >= delta2 {
		tau := math.Sqrt(delta2 / pU2)
		step := mat.NewVecDense(n, nil)
		step.ScaleVec(tau, pU)
		if !cholOK {
			return step, HarmlessCholeskyFail
		}
		return step, CauchyBoundary
	}

	if !cholOK {
		return pU, ForcedCauchyCholeskyFail
	}

	// Dogleg: solve ||pU + alpha*(pB-pU)||^2 = delta^2 for alpha in [0,1],
	// using the numerically stable quadratic-formula form.
	pBpU := mat.Dot(pB, pU)
	a := pB2 + pU2 - 2*pBpU
	b := 2 * (pBpU - pU2)
	c := pU2 - delta2
	sgnB := 1.0
	if b < 0 {
		sgnB = -1.0
	}
	q := -0.5 * (b + sgnB*math.Sqrt(b*b-4*a*c))
	x1 := q / a
	x2 := c / q

	diff := mat.NewVecDense(n, nil)
	diff.SubVec(pB, pU)

	var alpha float64
	switch {
	case x2 >= 0 && x2 <= 1.0:
		alpha = x2
	case x1 >= 0 && x1 <= 1.0:
		alpha = x1
	default:
		return pU, DoglegRootFail
	}

	step := mat.NewVecDense(n, nil)
	step.AddScaledVec(pU, alpha, diff)
	return step, Dogleg
}
