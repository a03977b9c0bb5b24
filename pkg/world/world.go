// Package world binds a topology to a rule set and computes ticks.
//
// World is the generic fallback that works for any topology and any
// comparable state, storing results in a keyed generation. RectWorld and
// HexWorld are the specialized binary paths: dense pooled buffers with
// allocation-free neighbor counting for rectangular boards, and sparse
// alive sets for hex boards.
//
// Tick never mutates or retains its input generation.
package world

import (
	"fmt"

	"lifegen/pkg/core"
	"lifegen/pkg/generation"
	"lifegen/pkg/rules"
	"lifegen/pkg/topology"
)

// Ticker computes the generation that follows current.
type Ticker[P comparable, S any] interface {
	Tick(current generation.Generation[P, S]) (generation.Generation[P, S], error)
}

// World is the topology-agnostic tick implementation.
type World[P, S comparable] struct {
	topo  topology.Topology[P]
	rules rules.Rules[S]
}

// New pairs topo with r.
func New[P, S comparable](topo topology.Topology[P], r rules.Rules[S]) (*World[P, S], error) {
	if topo == nil {
		return nil, fmt.Errorf("%w: nil topology", core.ErrInvalidArgument)
	}
	if r == nil {
		return nil, fmt.Errorf("%w: nil rules", core.ErrInvalidArgument)
	}
	return &World[P, S]{topo: topo, rules: r}, nil
}

// Topology returns the board.
func (w *World[P, S]) Topology() topology.Topology[P] { return w.topo }

// Rules returns the rule set.
func (w *World[P, S]) Rules() rules.Rules[S] { return w.rules }

// Tick walks every node, gathers neighbor states from current and stores
// every non-default next state in a keyed generation.
func (w *World[P, S]) Tick(current generation.Generation[P, S]) (generation.Generation[P, S], error) {
	if current == nil {
		return nil, fmt.Errorf("%w: nil current generation", core.ErrInvalidArgument)
	}
	def := w.rules.Default()
	next := map[P]S{}
	states := make([]S, 0, 8)
	for node := range w.topo.Nodes() {
		cur, err := current.At(node)
		if err != nil {
			return nil, err
		}
		neighbors, err := w.topo.Neighbors(node)
		if err != nil {
			return nil, err
		}
		states = states[:0]
		for _, n := range neighbors {
			s, err := current.At(n)
			if err != nil {
				return nil, err
			}
			states = append(states, s)
		}
		s, err := w.rules.Next(cur, states)
		if err != nil {
			return nil, err
		}
		if s != def {
			next[node] = s
		}
	}
	g, err := generation.NewKeyed(w.topo, next, def)
	if err != nil {
		return nil, err
	}
	return g, nil
}
