package concentrations

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// trialRho computes rho = (negh(lambda) - negh(lambda+p)) / (-<Grad,p> - p'Hp/2),
// the ratio of actual to predicted reduction used to adjust the trust
// radius and decide step acceptance (Nocedal and Wright, eq. 4.4/4.1).
// negh(lambda) = -h(lambda) = sum_j x_j(lambda) - <lambda,x0> is the
// function being minimized (Grad and Hes are its gradient and Hessian);
// following CalcConc.c's getRho, this works with negh throughout.
//
// If the trial point lambda+p overflows, rho is set to -1, a guaranteed
// rejection, since the true denominator is always positive.
func trialRho(lambda, p, grad *mat.VecDense, x *mat.VecDense, hes *mat.SymDense, x0Vec *mat.VecDense, g []float64, atDense *mat.Dense) float64 {
	numSS := lambda.Len()
	numTotal := x.Len()

	negh := floats.Sum(vecToSlice(x)) - mat.Dot(lambda, x0Vec)

	newLambda := mat.NewVecDense(numSS, nil)
	newLambda.AddVec(lambda, p)

	newX := mat.NewVecDense(numTotal, nil)
	if err := getX(newX, newLambda, atDense, g); err != nil {
		return -1
	}

	newNegh := floats.Sum(vecToSlice(newX)) - mat.Dot(newLambda, x0Vec)

	hp := mat.NewVecDense(numSS, nil)
	hp.MulVec(hes, p)
	pHp := mat.Dot(p, hp)

	denom := -mat.Dot(grad, p) - pHp/2
	return (negh - newNegh) / denom
}
