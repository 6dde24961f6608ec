// Package concentrations computes equilibrium mole fractions of a set of
// molecular complexes formed by aggregation of a fixed set of monomer
// species in dilute solution.
//
// Given the stoichiometry of each complex, its standard free energy, and
// the total amount of each monomer, the package solves the constrained
// minimization of a convex free-energy functional subject to mass-balance
// constraints. The primal problem is converted to an unconstrained concave
// dual and solved with a trust-region Newton method using a dogleg step,
// following Nocedal and Wright, Numerical Optimization (1999), chapter 4.
//
// The package does not decide which complexes are thermodynamically
// relevant, does not compute partition functions from sequence, and does
// not perform any sequence-level modeling: it assumes the stoichiometry
// matrix and per-complex free energies are supplied by the caller.
package concentrations
