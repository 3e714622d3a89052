package policy

import "fmt"

// All lists every policy in the fixed declaration order used both by
// registry lookups and by the engine when a run requests the special "a"
// (all algorithms) code: OPTIMAL, RANDOM, FIFO, LRU, CLOCK, NFU, AGING,
// MRU, NRU, MFU, LFU, LFRU.
var All = []Policy{
	Optimal,
	Random,
	FIFO,
	LRU,
	Clock,
	NFU,
	Aging,
	MRU,
	NRU,
	MFU,
	LFU,
	LFRU,
}

// ErrUnknownCode reports an algorithm code that names no known policy.
type ErrUnknownCode byte

func (e ErrUnknownCode) Error() string {
	return fmt.Sprintf("unknown algorithm code %q", byte(e))
}

// ByCode resolves a single-character algorithm code (as accepted by the
// --algo flag) to its Policy, or ErrUnknownCode if code names none of the
// twelve.
func ByCode(code byte) (Policy, error) {
	for _, p := range All {
		if p.Code() == code {
			return p, nil
		}
	}
	return nil, ErrUnknownCode(code)
}
