package sim

import (
	"fmt"

	"github.com/replayctl/pagesim/internal/policy"
)

// DefaultPrivilegedPartitionSize and DefaultUnprivilegedPartitionSize are
// LFRU's default partition sizes, used whenever a run selects LFRU (or
// ALL) without overriding them explicitly.
const (
	DefaultPrivilegedPartitionSize   = 4
	DefaultUnprivilegedPartitionSize = 4
)

// Config carries every input the engine needs to run one or more
// policies against a trace: spec.md §6's "invocation surface", made
// concrete as Go struct fields instead of a bag of CLI strings.
type Config struct {
	// Frames is the requested cache size. Values below 1 are clamped to 1
	// by Validate.
	Frames int

	// Privileged and Unprivileged are LFRU's partition sizes. Zero means
	// "use the defaults" when LFRU is among the selected algorithms.
	Privileged   int
	Unprivileged int

	// Algorithms is the set of algorithm codes to run, as accepted by
	// policy.ByCode, or the single code 'a' meaning every policy in
	// policy.All.
	Algorithms []byte

	// Seed seeds RANDOM's PRNG. Two runs with the same trace, Frames, and
	// Seed produce identical hit/miss counts and victim logs.
	Seed int64

	// MaxCalls caps the number of references processed; 0 means "process
	// the whole trace".
	MaxCalls int

	// ShowProcess requests a page-table snapshot after each reference.
	ShowProcess bool

	// Debug requests verbose diagnostic logging with no semantic effect
	// on the simulation.
	Debug bool
}

// Adjustment records a non-fatal configuration change Validate made on
// the caller's behalf (spec.md §7's AdjustedConfiguration).
type Adjustment struct {
	Message string
}

// Resolved is a validated, defaulted Config plus the concrete Policy
// values it selects and any adjustments Validate made.
type Resolved struct {
	Config
	Policies    []policy.Policy
	Adjustments []Adjustment
}

// Validate checks cfg for ConfigErrors, applies spec.md §6's clamping and
// LFRU partition-raising rules, and resolves the algorithm codes to
// concrete Policy values. It never touches the trace or runs a step.
func Validate(cfg Config) (*Resolved, error) {
	r := &Resolved{Config: cfg}

	if r.Frames < 1 {
		r.Frames = 1
	}
	if r.Privileged <= 0 {
		r.Privileged = DefaultPrivilegedPartitionSize
	}
	if r.Unprivileged <= 0 {
		r.Unprivileged = DefaultUnprivilegedPartitionSize
	}

	if len(r.Algorithms) == 0 {
		return nil, fmt.Errorf("%w: no algorithm selected", ErrConfig)
	}

	selectAll := false
	for _, code := range r.Algorithms {
		if code == 'a' {
			selectAll = true
			break
		}
	}

	if selectAll {
		r.Policies = append(r.Policies, policy.All...)
	} else {
		seen := make(map[byte]bool)
		for _, code := range r.Algorithms {
			if seen[code] {
				continue
			}
			seen[code] = true
			p, err := policy.ByCode(code)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrConfig, err)
			}
			r.Policies = append(r.Policies, p)
		}
	}

	needsLFRU := false
	for _, p := range r.Policies {
		if p.Code() == policy.LFRU.Code() {
			needsLFRU = true
			break
		}
	}

	if needsLFRU {
		combined := r.Privileged + r.Unprivileged
		if r.Frames < combined {
			r.Adjustments = append(r.Adjustments, Adjustment{
				Message: fmt.Sprintf(
					"frame count %d raised to %d to fit LFRU's %d-privileged/%d-unprivileged partitions",
					r.Frames, combined, r.Privileged, r.Unprivileged,
				),
			})
			r.Frames = combined
		}
	}

	return r, nil
}
