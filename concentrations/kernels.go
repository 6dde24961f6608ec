package concentrations

import "gonum.org/v1/gonum/mat"

// denseFromInt promotes an integer matrix to a *mat.Dense of float64,
// matching CalcConc.c's convention of promoting integer products to
// reals before accumulation.
func denseFromInt(m [][]int) *mat.Dense {
	rows := len(m)
	if rows == 0 {
		return mat.NewDense(0, 0, nil)
	}
	cols := len(m[0])
	data := make([]float64, rows*cols)
	for i, row := range m {
		for j, v := range row {
			data[i*cols+j] = float64(v)
		}
	}
	return mat.NewDense(rows, cols, data)
}

// transposeInt returns the transpose of the numSS x numTotal integer
// matrix A, as a numTotal x numSS matrix. gonum/mat has no integer dense
// matrix type, so this stays on plain [][]int and a manual loop rather
// than reaching for mat.Dense.
func transposeInt(a [][]int) [][]int {
	numSS := len(a)
	if numSS == 0 {
		return nil
	}
	numTotal := len(a[0])
	at := make([][]int, numTotal)
	for j := 0; j < numTotal; j++ {
		at[j] = make([]int, numSS)
		for i := 0; i < numSS; i++ {
			at[j][i] = a[i][j]
		}
	}
	return at
}

// sumIntRow returns the sum of the entries of row.
func sumIntRow(row []int) int {
	s := 0
	for _, v := range row {
		s += v
	}
	return s
}

// findNonZero returns the index of the first non-zero entry of row, or
// -1 if row is entirely zero.
func findNonZero(row []int) int {
	for i, v := range row {
		if v != 0 {
			return i
		}
	}
	return -1
}

// vecToSlice copies a *mat.VecDense into a fresh []float64, the shape
// floats.* helpers and the Result/output boundary expect.
func vecToSlice(v *mat.VecDense) []float64 {
	n := v.Len()
	s := make([]float64, n)
	for i := 0; i < n; i++ {
		s[i] = v.AtVec(i)
	}
	return s
}

// isInert reports whether monomer row (A[i,:]) appears in exactly one
// complex, i.e. the monomer is inert: its equilibrium fraction is
// analytically known rather than solved for.
func isInert(row []int) bool {
	count := 0
	for _, v := range row {
		if v != 0 {
			count++
		}
	}
	return count == 1
}
