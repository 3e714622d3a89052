// Package sim implements the engine that drives a trace against one or
// more replacement policies: Engine.Run owns the reference counter, the
// shared PRNG, the tick() source, and the per-policy accounting spec.md
// §4.4 describes.
package sim

import "github.com/replayctl/pagesim/internal/xerrors"

// ErrConfig reports an invalid configuration: an unknown algorithm code
// or no algorithm selected at all (a frame count below 1 is clamped, not
// rejected). A ConfigError aborts the run before any policy step is taken.
const ErrConfig xerrors.ConstError = "config error"

// ErrIO reports an unreadable trace file. Aborts before any step.
const ErrIO xerrors.ConstError = "io error"

// ErrPartialTrace is not fatal: it marks a run whose trace ended with a
// malformed tail line. The run proceeds with whatever was read.
const ErrPartialTrace xerrors.ConstError = "partial trace"
