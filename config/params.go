// Package config holds the solver's tunable parameters and the
// functional-option constructor that builds a validated Params from
// caller-supplied overrides.
//
// Complexity: New applies N options in O(N) time, O(1) extra space.
package config

// ColouringVariant selects which Colourer implementation the solver
// builds; see package colour.
type ColouringVariant int

const (
	// GreedyOnly performs no unit propagation (variant 0).
	GreedyOnly ColouringVariant = 0
	// GreedyWithUnitPropagation augments the greedy bound with MAX-SAT
	// style unit propagation (variant 2).
	GreedyWithUnitPropagation ColouringVariant = 2
	// ClassEnlargingUnitPropagation additionally tries to grow the final
	// colour class before propagating (variant 3, default and best).
	ClassEnlargingUnitPropagation ColouringVariant = 3
)

// Params collects every knob the solver exposes: colouring variant,
// MAX-SAT level, algorithm number, thread count, quiet/unweighted-sort
// flags, and the bow-tie reduction toggle.
type Params struct {
	ColouringVariant ColouringVariant
	// MaxSATLevel caps the clause size unit propagation will consider;
	// -1 means unlimited (derive the cap from the largest clause seen).
	MaxSATLevel int
	// AlgorithmNum is a reserved selector: its only observable effect
	// is forcing NumThreads to 1 unless it equals 5. No alternate
	// algorithm is wired up.
	AlgorithmNum   int
	NumThreads     int
	Quiet          bool
	UnweightedSort bool
	// EnableBowTie gates the optional bow-tie reduction, off by
	// default.
	EnableBowTie bool
}

// Option customizes Params before solving begins. Option constructors
// never panic; WithColouringVariant and WithNumThreads ignore
// out-of-range inputs by leaving the previous value in place, and the
// other options store their argument as given.
type Option func(p *Params)

// New returns a Params initialized with the defaults (colouring variant
// 3, unlimited MAX-SAT level, single-threaded, bow-tie disabled), then
// applies each Option in order; later options override earlier ones.
func New(opts ...Option) *Params {
	p := &Params{
		ColouringVariant: ClassEnlargingUnitPropagation,
		MaxSATLevel:      -1,
		AlgorithmNum:     0,
		NumThreads:       1,
		Quiet:            false,
		UnweightedSort:   false,
		EnableBowTie:     false,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.AlgorithmNum != 5 {
		p.NumThreads = 1
	}
	return p
}

// WithColouringVariant selects among {0, 2, 3}; any other value is
// ignored.
func WithColouringVariant(v int) Option {
	return func(p *Params) {
		switch ColouringVariant(v) {
		case GreedyOnly, GreedyWithUnitPropagation, ClassEnlargingUnitPropagation:
			p.ColouringVariant = ColouringVariant(v)
		}
	}
}

// WithMaxSATLevel sets the unit-propagation clause-size cap; -1 means
// unlimited.
func WithMaxSATLevel(level int) Option {
	return func(p *Params) { p.MaxSATLevel = level }
}

// WithAlgorithmNum sets the reserved algorithm selector.
func WithAlgorithmNum(n int) Option {
	return func(p *Params) { p.AlgorithmNum = n }
}

// WithNumThreads requests a thread count; New clamps it back to 1 unless
// AlgorithmNum is 5.
func WithNumThreads(n int) Option {
	return func(p *Params) {
		if n > 0 {
			p.NumThreads = n
		}
	}
}

// WithQuiet suppresses the `c `-prefixed diagnostic stream.
func WithQuiet(q bool) Option {
	return func(p *Params) { p.Quiet = q }
}

// WithUnweightedSort requests the unweighted ordering variant.
func WithUnweightedSort(u bool) Option {
	return func(p *Params) { p.UnweightedSort = u }
}

// WithBowTie enables the optional bow-tie reduction.
func WithBowTie(enabled bool) Option {
	return func(p *Params) { p.EnableBowTie = enabled }
}
