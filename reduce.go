package rpn

import (
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Reduce simplifies the expression in place. See Reduce.
func (e *Expr) Reduce(opts ...ReduceOption) {
	e.n = Reduce(e.n, opts...)
}

// Reduce simplifies a tree bottom-up and returns the new root. Children of
// n are replaced in place, so n must not be used after Reduce except through
// the result. The rewrites, applied to each node after its children, are:
//
//	x - -    => x
//	x x +    => x 2 *
//	x x =    => true
//
// where the operands on the left must be equal per Equal. No other
// arithmetic is folded.
func Reduce(n Node, opts ...ReduceOption) Node {
	var r reducectx
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		r = opt.reduceOption(r)
	}
	if r.workers > 0 {
		r.sem = semaphore.NewWeighted(int64(r.workers))
	}
	return r.reduce(n)
}

func (r *reducectx) reduce(n Node) Node {
	switch n := n.(type) {
	case *Binary:
		r.children(n)
	case *Unary:
		n.X = r.reduce(n.X)
	}
	return r.rewrite(n)
}

// children reduces both sides of a binary node, the left on another goroutine
// if one is available.
func (r *reducectx) children(n *Binary) {
	if r.sem == nil || isLeaf(n.Left) || isLeaf(n.Right) || !r.sem.TryAcquire(1) {
		n.Left = r.reduce(n.Left)
		n.Right = r.reduce(n.Right)
		return
	}
	var g errgroup.Group
	g.Go(func() error {
		defer r.sem.Release(1)
		n.Left = r.reduce(n.Left)
		return nil
	})
	n.Right = r.reduce(n.Right)
	// Reduction never fails.
	_ = g.Wait()
}

// rewrite applies the first matching rule to n, whose children are already
// reduced.
func (r *reducectx) rewrite(n Node) Node {
	switch m := n.(type) {
	case *Unary:
		if x, ok := m.X.(*Unary); ok && m.Op == Neg && x.Op == Neg {
			r.debug("rewrite", "rule", "double-negation", "node", x.X)
			return x.X
		}
	case *Binary:
		if m.Left == nil || !Equal(m.Left, m.Right) {
			break
		}
		switch m.Op {
		case Add:
			r.debug("rewrite", "rule", "self-addition", "node", m.Left)
			m.Op = Mul
			m.Right = NewInt(2)
		case Eq:
			r.debug("rewrite", "rule", "self-equality", "node", m.Left)
			return &Bool{Value: true}
		}
	}
	return n
}

func isLeaf(n Node) bool {
	switch n.(type) {
	case *Binary, *Unary:
		return false
	default:
		return true
	}
}
