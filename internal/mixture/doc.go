// Package mixture evaluates thermodynamic and transport properties of a
// multicomponent ideal-gas mixture.
//
// A [Mixture] is built once from a [Config] describing every species (the
// last entry is the inert carrier) and is then driven through
// [Mixture.UpdateState] with a temperature and the mass fractions of the
// transported species. Each call fully recomputes composition, gas constant,
// density, specific heats, mixture viscosity and conductivity through the
// configured mixing rule, and per-species mass diffusivities.
//
// A Mixture instance is not safe for concurrent UpdateState calls; use one
// instance per goroutine, mirroring one evaluator per mesh point in a
// solver.
//
// Inputs are not range-checked: negative or non-physical mass fractions,
// zero molar masses and zero species properties propagate into degenerate
// outputs rather than errors.
package mixture
