// SPDX-License-Identifier: MIT

package batch

import (
	"io"
	"log/slog"
	"runtime"

	"github.com/FelixDubois/mu/matrix"
)

const panicLimitInvalid = "batch: WithLimit: limit must be >= 1"

// Option configures Run.
type Option func(*options)

type options struct {
	limit     int
	logger    *slog.Logger
	matrixOps []matrix.Option
}

// WithLimit caps the number of operations in flight (default GOMAXPROCS).
// Panics when limit < 1.
func WithLimit(limit int) Option {
	if limit < 1 {
		panic(panicLimitInvalid)
	}

	return func(o *options) { o.limit = limit }
}

// WithLogger sets the structured logger. A nil logger keeps the default,
// which discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMatrixOptions forwards numeric options (e.g. matrix.WithEpsilon) to the
// elimination kernels called by Inverses, Determinants and Solves.
func WithMatrixOptions(opts ...matrix.Option) Option {
	return func(o *options) { o.matrixOps = append(o.matrixOps, opts...) }
}

// NoopLogger returns a logger that discards all output.
func NoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func gatherOptions(user ...Option) options {
	o := options{limit: runtime.GOMAXPROCS(0), logger: NoopLogger()}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
