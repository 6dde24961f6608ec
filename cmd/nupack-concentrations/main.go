// Command nupack-concentrations demonstrates concentrations.Solve on a
// small dimerization example (monomer + monomer <-> dimer).
//
// It is a minimal illustration, not a general command-line interface:
// input-file parsing and report formatting are external collaborators of
// the solver and are out of this program's scope.
package main

import (
	"flag"
	"log"

	"github.com/bagnacan/nupack-concentrations/concentrations"
)

func main() {
	seed := flag.Uint64("seed", 0, "restart RNG seed (0 derives one from the process clock)")
	flag.Parse()

	problem := concentrations.Problem{
		A:  [][]int{{1, 2}},
		G:  []float64{0, -10},
		X0: []float64{1e-5},
	}

	result, err := concentrations.Solve(problem, concentrations.Settings{Seed: *seed})
	if err != nil {
		log.Fatalf("solve: %v", err)
	}

	log.Printf("converged=%v trials=%d iterations=%d", result.Converged, result.Stats.Trials, result.Stats.Iterations)
	log.Printf("x=%v", result.X)
	log.Printf("free energy = %.6f kcal/L", result.FreeEnergy)
}
