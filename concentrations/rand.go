package concentrations

import (
	"math/rand"
	"os"
	"time"
)

// restartRNG is the seeded uniform generator used by the perturbation
// restart path. It follows the same injected-source shape gonum uses for
// its own distributions (e.g. distuv.Normal and distuv.Beta both carry a
// `Source *rand.Rand` field): the solver owns one stream per invocation,
// seeded once on the first restart, and never shared across concurrent
// invocations.
type restartRNG struct {
	Source *rand.Rand
}

// newRestartRNG seeds a fresh stream. A non-zero seed is used verbatim,
// for reproducibility; a zero seed derives one from the process clock and
// pid, mirroring CalcConc.c's GetRandSeed fallback.
func newRestartRNG(seed uint64) *restartRNG {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano()) ^ uint64(os.Getpid())
	}
	return &restartRNG{Source: rand.New(rand.NewSource(int64(seed)))}
}

// Float64 draws the next uniform value in [0,1) from the stream.
func (r *restartRNG) Float64() float64 {
	return r.Source.Float64()
}
