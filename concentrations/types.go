package concentrations

import "fmt"

// MaxLogX is the ceiling on log(x[j]) used by the parameter map. It keeps
// exp(logx) finite and, per the initial-guess heuristic, keeps the
// maximal mole fraction around e.
const MaxLogX = 1.0

// NumPrecision is the tolerance used to decide whether a step landed on
// the trust-region boundary (the "step hits boundary" test in the trust
// radius update).
const NumPrecision = 1e-12

// Problem describes one equilibrium system: the stoichiometry of every
// complex, its free energy, and the total amount of every monomer.
//
// A is numSS x numTotal: A[i][j] is the number of monomers of type i in
// complex j. Every column must have at least one non-zero entry, and
// every row must have at least one non-zero entry (every monomer appears
// somewhere, including possibly as its own size-1 complex).
//
// G holds free energies in units of kT, ordered to match the columns of
// A. x0 holds the strictly-positive target mole fraction of every
// monomer.
type Problem struct {
	A  [][]int
	G  []float64
	X0 []float64
}

// NumSS returns the number of monomer (single) species.
func (p Problem) NumSS() int { return len(p.X0) }

// NumTotal returns the number of complexes.
func (p Problem) NumTotal() int { return len(p.G) }

// validate checks the dimensions and basic invariants of a Problem.
func (p Problem) validate() error {
	numSS, numTotal := p.NumSS(), p.NumTotal()
	if numSS == 0 || numTotal == 0 {
		return ErrZeroDimensional
	}
	if len(p.A) != numSS {
		return ErrDimMismatch
	}
	for _, row := range p.A {
		if len(row) != numTotal {
			return ErrDimMismatch
		}
	}
	for _, v := range p.X0 {
		if v <= 0 {
			return fmt.Errorf("concentrations: x0 entries must be strictly positive, got %v", v)
		}
	}
	return nil
}

// Settings holds the tuning parameters of the trust-region dual solver.
// Zero-value fields are filled in with defaults by defaultSettings; the
// caller only needs to set what it cares about.
type Settings struct {
	// MaxIters bounds the number of inner (trust-region) iterations per
	// trial. Defaults to 2500.
	MaxIters int
	// Tol is the relative convergence tolerance: the absolute tolerance
	// on monomer i is Tol*X0[i]. Defaults to 1e-8.
	Tol float64
	// DeltaBar bounds the trust-region radius above. Defaults to 1000.
	DeltaBar float64
	// Eta is the step-acceptance threshold on rho, in (0, 1/4). Defaults
	// to 1e-4.
	Eta float64
	// KT is the thermal energy unit, in kcal/mol, used to scale the
	// free-energy result. Defaults to 0.001987204259 * 310.15 (kT at
	// 37C).
	KT float64
	// MaxNoStep bounds the number of consecutive rejected steps before a
	// trial is abandoned as stalled. Defaults to 50.
	MaxNoStep int
	// MaxTrial bounds the number of restarts (including the first,
	// unperturbed trial). Defaults to 10.
	MaxTrial int
	// PerturbScale scales the uniform noise added to lambda on restart.
	// Defaults to 100.
	PerturbScale float64
	// MolesWaterPerLiter converts the free energy to kcal per liter of
	// solution. Defaults to 55.14 (standard value used for water at
	// 37C).
	MolesWaterPerLiter float64
	// Seed seeds the restart RNG. Zero requests a seed derived from the
	// process clock.
	Seed uint64
}

func defaultSettings(set *Settings) {
	if set.MaxIters == 0 {
		set.MaxIters = 2500
	}
	if set.Tol == 0 {
		set.Tol = 1e-8
	}
	if set.DeltaBar == 0 {
		set.DeltaBar = 1000
	}
	if set.Eta == 0 {
		set.Eta = 1e-4
	}
	if set.KT == 0 {
		set.KT = 0.001987204259 * 310.15
	}
	if set.MaxNoStep == 0 {
		set.MaxNoStep = 50
	}
	if set.MaxTrial == 0 {
		set.MaxTrial = 10
	}
	if set.PerturbScale == 0 {
		set.PerturbScale = 100
	}
	if set.MolesWaterPerLiter == 0 {
		set.MolesWaterPerLiter = 55.14
	}
}

// StepKind classifies the outcome of a single dogleg search-direction
// computation (see dogleg.go). It mirrors gonum's own Operation bitmap
// pattern of a small enum plus a String method and a name table, except
// here the values are mutually exclusive outcomes rather than a bitmap.
type StepKind int

// Supported StepKind values, in the same order as the historical
// CalcConc RunStats slots.
const (
	// Newton is a pure Newton step: Cholesky succeeded and the step was
	// inside the trust region.
	Newton StepKind = iota
	// CauchyBoundary is a pure Cauchy step that hit the trust-region
	// boundary, with a successful Cholesky factorization available but
	// unused.
	CauchyBoundary
	// Dogleg is an interpolated step between the Cauchy and Newton
	// points.
	Dogleg
	// ForcedCauchyCholeskyFail is a Cauchy step taken because Cholesky
	// failed, with the Cauchy point itself inside the trust region.
	ForcedCauchyCholeskyFail
	// HarmlessCholeskyFail is a Cauchy-boundary step where Cholesky
	// failed but it would not have mattered: the Cauchy point alone was
	// already outside the trust region.
	HarmlessCholeskyFail
	// DoglegRootFail is a Cauchy step taken because neither root of the
	// dogleg quadratic lies in [0,1]; this should not occur for a
	// well-posed problem.
	DoglegRootFail

	numStepKinds
)

var stepKindNames = [numStepKinds]string{
	Newton:                   "Newton",
	CauchyBoundary:           "CauchyBoundary",
	Dogleg:                   "Dogleg",
	ForcedCauchyCholeskyFail: "ForcedCauchyCholeskyFail",
	HarmlessCholeskyFail:     "HarmlessCholeskyFail",
	DoglegRootFail:           "DoglegRootFail",
}

func (k StepKind) String() string {
	if k < 0 || int(k) >= len(stepKindNames) {
		return fmt.Sprintf("StepKind(%d)", int(k))
	}
	return stepKindNames[k]
}

// RunStats counts how many times each StepKind occurred during the final
// (converged, or last attempted) trial.
type RunStats [numStepKinds]int64

func (r RunStats) String() string {
	return fmt.Sprintf("{Newton:%d CauchyBoundary:%d Dogleg:%d ForcedCauchyCholeskyFail:%d HarmlessCholeskyFail:%d DoglegRootFail:%d}",
		r[Newton], r[CauchyBoundary], r[Dogleg], r[ForcedCauchyCholeskyFail], r[HarmlessCholeskyFail], r[DoglegRootFail])
}

// Stats reports the work done to produce a Result.
type Stats struct {
	// Trials is the number of initial conditions attempted, including
	// the unperturbed first one.
	Trials int
	// Iterations is the number of inner trust-region iterations taken
	// in the final trial.
	Iterations int
	// RunStats classifies the search-direction outcome of every inner
	// iteration of the final trial.
	RunStats RunStats
}

// Result is the outcome of a Solve call.
type Result struct {
	// X holds the converged (or best-effort, if !Converged) mole
	// fraction of every complex.
	X []float64
	// Converged reports whether the gradient tolerance was satisfied
	// with a trial to spare (fewer than MaxTrial trials used): a solution
	// that reaches tolerance only on the last permitted trial is reported
	// as not converged.
	Converged bool
	// FreeEnergy is the free energy of the solution, in kcal per liter,
	// computed from X.
	FreeEnergy float64
	Stats      Stats
}
