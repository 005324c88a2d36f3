// Package pinset generates deterministic pin sets for tests, benchmarks and
// the CLI's --fixture flag: grid layouts, random-sparse layouts, colinear
// runs, and the literal six-pin net the original author hand-checked.
//
// Modeled on lvlath/builder: a functional-options config (Option) resolved
// once per call, generators that validate early and return sentinel errors,
// and explicit seeding (WithSeed) rather than a package-level RNG, so two
// calls with the same seed always produce the same pins.
package pinset
