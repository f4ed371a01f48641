// Package spr: sentinel errors, the Rollback record, and functional options
// for the composite move.
package spr

import (
	"errors"

	"github.com/sprout-phylo/sprout/rtree"
)

// Sentinel errors for topology moves.
var (
	// ErrNilNode indicates a nil *rtree.Node was passed where one is required.
	ErrNilNode = errors.New("spr: node is nil")

	// ErrInvalidNode indicates a move was requested on a node in the wrong
	// state: pruning the root, or regrafting a node that is not the result of
	// a just-completed prune.
	ErrInvalidNode = errors.New("spr: invalid node for requested move")
)

// RearrangeKind tags the move family recorded in a Rollback.
type RearrangeKind uint8

const (
	// RearrangeSPR is the subtree prune-and-regraft move. It is currently
	// the only rearrangement this engine performs.
	RearrangeSPR RearrangeKind = iota
)

// Rollback describes one reversible move, captured immediately before
// mutation. The engine never executes a rollback itself; the record is the
// caller's handle for reversing a completed move (regraft PruneEdge back
// onto RegraftEdge).
type Rollback struct {
	// Kind is the move family; always RearrangeSPR.
	Kind RearrangeKind

	// Rooted is true for moves on rooted trees; always true here.
	Rooted bool

	// PruneEdge is the node whose subtree the move detached.
	PruneEdge *rtree.Node

	// RegraftEdge is PruneEdge's sister at prune time: regrafting PruneEdge
	// back onto it restores the original topology.
	RegraftEdge *rtree.Node

	// PruneLength and RegraftLength are reserved for branch-length
	// restoration and are not yet populated.
	// TODO: record the severed branch lengths once rollback application
	// restores them.
	PruneLength   float64
	RegraftLength float64
}

// Option configures the composite SPR move via functional arguments.
type Option func(*Options)

// Options holds the optional knobs of a composite move.
type Options struct {
	// Rollback, when non-nil, is filled with the move's reversal data before
	// any mutation happens.
	Rollback *Rollback

	// OnPrune is invoked after a successful prune with the pruned node and
	// the connection point returned by Prune.
	OnPrune func(pruned, connection *rtree.Node)

	// OnRegraft is invoked after a successful regraft with the pruned node
	// and the regraft target.
	OnRegraft func(pruned, target *rtree.Node)
}

// DefaultOptions returns Options with no rollback capture and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Rollback:  nil,
		OnPrune:   func(*rtree.Node, *rtree.Node) {},
		OnRegraft: func(*rtree.Node, *rtree.Node) {},
	}
}

// WithRollback captures the move's reversal data into rb before mutation.
func WithRollback(rb *Rollback) Option {
	return func(o *Options) {
		if rb != nil {
			o.Rollback = rb
		}
	}
}

// WithOnPrune registers a callback to observe the prune step.
func WithOnPrune(fn func(pruned, connection *rtree.Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPrune = fn
		}
	}
}

// WithOnRegraft registers a callback to observe the regraft step.
func WithOnRegraft(fn func(pruned, target *rtree.Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRegraft = fn
		}
	}
}
