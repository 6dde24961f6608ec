package concentrations

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// getGrad computes Grad[i] = <x, A[i,:]> - x0[i], the mass-balance
// residual for every monomer, as a single matrix-vector product (aFloat
// is the numSS x numTotal float-promoted A, cached once per Solve call)
// rather than numSS separate dot products.
func getGrad(x0 []float64, x *mat.VecDense, aFloat *mat.Dense) *mat.VecDense {
	numSS, _ := aFloat.Dims()
	grad := mat.NewVecDense(numSS, nil)
	grad.MulVec(aFloat, x)
	for i := 0; i < numSS; i++ {
		grad.SetVec(i, grad.AtVec(i)-x0[i])
	}
	return grad
}

// getHes builds the symmetric Hessian Hes[m,n] = sum_j A[m,j]*A[n,j]*x[j]
// for m <= n and mirrors it into the lower triangle, following
// CalcConc.c's getHes exactly: for each pair (m,n) it forms the
// element-wise product of rows m and n of A (promoted to float64) and
// dots it against x with floats.Dot, rather than a general matrix
// product, since only the m<=n half is ever computed.
func getHes(a [][]int, x *mat.VecDense) *mat.SymDense {
	numSS := len(a)
	numTotal := x.Len()

	xs := make([]float64, numTotal)
	for j := 0; j < numTotal; j++ {
		xs[j] = x.AtVec(j)
	}

	data := make([]float64, numSS*numSS)
	avec := make([]float64, numTotal)
	for n := 0; n < numSS; n++ {
		for m := 0; m <= n; m++ {
			for j := 0; j < numTotal; j++ {
				avec[j] = float64(a[m][j]) * float64(a[n][j])
			}
			v := floats.Dot(avec, xs)
			data[m*numSS+n] = v
			data[n*numSS+m] = v
		}
	}
	return mat.NewSymDense(numSS, data)
}
