package rpn

import (
	"log/slog"

	"golang.org/x/sync/semaphore"
)

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

// ReduceOption is an option for reducing.
type ReduceOption interface {
	reduceOption(reducectx) reducectx
}

// Option is an option that applies to both parsing and reducing.
type Option interface {
	ParseOption
	ReduceOption
}

// parsectx holds the options for one parse.
type parsectx struct {
	// strictdiv makes / build Div nodes.
	strictdiv bool
	// log receives a debug record per pushed node. May be nil.
	log *slog.Logger
}

// reducectx holds the options for one reduction.
type reducectx struct {
	// log receives a debug record per rewrite. May be nil.
	log *slog.Logger
	// workers is the number of goroutines beyond the caller's that may
	// reduce subtrees.
	workers int
	// sem limits the goroutines in use when workers > 0.
	sem *semaphore.Weighted
}

type (
	divopt  struct{}
	logopt  struct{ log *slog.Logger }
	workopt int
)

// StrictDivision makes the / operator produce Div nodes. By default, / is
// parsed the same as +, so that "6 2/" is Binary{Add, 6, 2}.
func StrictDivision() ParseOption {
	return divopt{}
}

func (divopt) parseOption(p parsectx) parsectx {
	p.strictdiv = true
	return p
}

// Logger sets a logger to receive debug records while parsing or reducing.
// The result is both a ParseOption and a ReduceOption. A nil logger disables
// logging, which is the default.
func Logger(l *slog.Logger) Option {
	return logopt{l}
}

func (o logopt) parseOption(p parsectx) parsectx {
	p.log = o.log
	return p
}

func (o logopt) reduceOption(r reducectx) reducectx {
	r.log = o.log
	return r
}

// Concurrency allows reduction to use up to n goroutines in addition to the
// calling one. Sibling subtrees are independent, so they can be reduced in
// parallel before the rules for their parent are applied. n <= 0 reduces
// sequentially, which is the default.
func Concurrency(n int) ReduceOption {
	return workopt(n)
}

func (o workopt) reduceOption(r reducectx) reducectx {
	r.workers = int(o)
	return r
}

func (p *parsectx) debug(msg string, args ...any) {
	if p.log != nil {
		p.log.Debug(msg, args...)
	}
}

func (r *reducectx) debug(msg string, args ...any) {
	if r.log != nil {
		r.log.Debug(msg, args...)
	}
}
