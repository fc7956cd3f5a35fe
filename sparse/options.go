// SPDX-License-Identifier: MIT

// Package sparse: functional configuration for matrix construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.
package sparse

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSparsityDivisor is the denominator of the pre-sizing heuristic:
	// NewWithShape reserves map capacity for roughly rows*cols/divisor
	// entries. A quarter of the dense cell count is a deliberate guess for
	// "sparse but not tiny" workloads; it is a hint, never a hard limit.
	DefaultSparsityDivisor = 4

	// DefaultCapacityHint of zero means "derive capacity from the shape via
	// the sparsity divisor". A positive hint overrides the heuristic.
	DefaultCapacityHint = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicCapacityHintInvalid    = "sparse: WithCapacityHint: hint must be non-negative"
	panicSparsityDivisorInvalid = "sparse: WithSparsityDivisor: divisor must be >= 1"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// It is intentionally opaque to prevent external mutation; public entry
// points accept `...Option` and internally resolve them via gatherOptions.
type Options struct {
	capacityHint    int // 0 ⇒ derive from shape; >0 ⇒ exact map reservation
	sparsityDivisor int // >= 1; denominator of the rows*cols heuristic
}

// ---------- Constructors (WithX) ----------

// WithCapacityHint reserves map capacity for exactly hint entries, bypassing
// the rows*cols/divisor heuristic.
// Implementation:
//   - Stage 1: validate hint >= 0.
//   - Stage 2: return a setter that writes hint into Options.
//
// Inputs:
//   - hint: expected nonzero count; 0 restores the heuristic.
//
// Returns:
//   - Option: functional setter.
//
// Errors:
//   - Panics with a stable message when hint is negative.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - A hint only pre-sizes the store; the matrix still grows past it.
//
// AI-Hints:
//   - Pass the known triplet count before a bulk InsertTriplets to avoid
//     incremental map growth.
func WithCapacityHint(hint int) Option {
	if hint < 0 {
		panic(panicCapacityHintInvalid)
	}

	// Assign validated hint.
	return func(o *Options) { o.capacityHint = hint }
}

// WithSparsityDivisor tunes the pre-sizing heuristic denominator: the store
// reserves capacity for rows*cols/divisor entries.
// Implementation:
//   - Stage 1: validate divisor >= 1.
//   - Stage 2: return a setter that writes divisor into Options.
//
// Inputs:
//   - divisor: larger values assume sparser data (smaller reservation).
//
// Returns:
//   - Option: functional setter.
//
// Errors:
//   - Panics with a stable message when divisor < 1.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Ignored when a positive capacity hint is present (hint wins).
//
// AI-Hints:
//   - Keep the default for general use; raise it for very sparse data
//     (e.g. 100 for ~1% fill) to shrink the initial reservation.
func WithSparsityDivisor(divisor int) Option {
	if divisor < 1 {
		panic(panicSparsityDivisorInvalid)
	}

	return func(o *Options) { o.sparsityDivisor = divisor }
}

// --------------------------- Option Resolution ---------------------------

// gatherOptions applies user-provided Option setters on top of defaults.
// Stage 1: start from documented Default* constants.
// Stage 2: apply setters in order; last-writer-wins semantics.
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		capacityHint:    DefaultCapacityHint,
		sparsityDivisor: DefaultSparsityDivisor,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}

// reserveFor resolves the initial map reservation for a rows×cols matrix:
// an explicit hint wins; otherwise the rows*cols/divisor heuristic applies.
// Complexity: O(1).
func (o Options) reserveFor(rows, cols int) int {
	if o.capacityHint > 0 {
		return o.capacityHint
	}

	return rows * cols / o.sparsityDivisor
}
