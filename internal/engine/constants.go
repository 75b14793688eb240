// Package engine implements the three interchangeable search
// strategies (MTD-bi, forced-variation, alpha-beta with aspiration
// windows) and a principal-variation walker (§4.6-4.9). The walker
// reads the MTD-bi searcher's table only; the forced-variation and
// alpha-beta tables have no PV walk.
package engine

// MateValue marks a position as a forced win/loss; any |score| at or
// above it is treated as a terminal result rather than material
// score, exactly as in the teacher's chess package.
const MateValue = 90000

// DefaultMaxNodes and DefaultTableSize are the engine's out-of-the-box
// tunables, carried over from the original implementation's
// MAX_NODES/TABLE_SIZE module constants and overridable via
// internal/config.
const (
	DefaultMaxNodes  = 1000
	DefaultTableSize = 1_000_000
)

// EvalRoughness bounds the MTD-bi bisection: the search stops
// narrowing [lower, upper) once the gap is this small, trading a
// little precision for fewer re-searches.
const EvalRoughness = 3

// DefaultAspirationWindow is the half-width the alpha-beta strategy
// opens around the previous iteration's score before falling back to
// a full window on a fail-high/fail-low, used when internal/config
// supplies no other value.
const DefaultAspirationWindow = 50
