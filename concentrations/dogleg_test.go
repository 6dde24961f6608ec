package concentrations

import (
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestSearchDirectionPureNewton(t *testing.T) {
	// A well-conditioned, strongly diagonally dominant Hessian with a
	// small gradient: the Newton step should land well inside a large
	// trust region.
	hes := mat.NewSymDense(2, []float64{4, 0, 0, 4})
	grad := mat.NewVecDense(2, []float64{0.1, -0.2})

	p, kind := searchDirection(grad, hes, 10)
	if kind != Newton {
		t.Fatalf("got StepKind %v, want Newton", kind)
	}
	if mat.Dot(p, p) > 100 {
		t.Errorf("unexpectedly large Newton step: %v", p.RawVector().Data)
	}
}

func TestSearchDirectionCauchyBoundary(t *testing.T) {
	hes := mat.NewSymDense(2, []float64{4, 0, 0, 4})
	grad := mat.NewVecDense(2, []float64{10, 10})

	// A tiny trust region forces the step to the boundary.
	p, kind := searchDirection(grad, hes, 0.01)
	if kind != CauchyBoundary && kind != Dogleg {
		t.Fatalf("got StepKind %v, want CauchyBoundary or Dogleg", kind)
	}
	norm := mat.Dot(p, p)
	if norm > 0.01*0.01+1e-9 {
		t.Errorf("step norm^2 = %v exceeds delta^2 = %v", norm, 0.01*0.01)
	}
}

func TestSearchDirectionForcedCauchyOnIndefiniteHessian(t *testing.T) {
	// A non-positive-definite (indefinite) Hessian forces Cholesky to
	// fail, so the step must fall back to Cauchy.
	hes := mat.NewSymDense(2, []float64{1, 2, 2, 1})
	grad := mat.NewVecDense(2, []float64{1, 1})

	_, kind := searchDirection(grad, hes, 10)
	if kind != ForcedCauchyCholeskyFail && kind != HarmlessCholeskyFail {
		t.Errorf("got StepKind %v, want a Cholesky-failure classification", kind)
	}
}
