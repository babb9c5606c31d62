package separator

import (
	"sort"
	"strconv"
	"strings"

	"github.com/solvers-go/treedepth/graph"
)

// Generator is a stateful producer of minimal separators. It is built
// once per call to the branch-and-bound engine on a given subgraph and
// driven via HasNext/Next; re-entrancy across goroutines is not
// supported (spec §4.5, §5: single-threaded recursion).
type Generator struct {
	h       *graph.Subgraph
	seen    map[string]struct{}
	pending [][]int
	ready   []Separator
}

// New returns a Generator seeded from h's closed-neighborhood candidates
// but does no further work; enumeration happens lazily as Next is
// called.
func New(h *graph.Subgraph) *Generator {
	g := &Generator{h: h, seen: make(map[string]struct{})}
	g.seedInitial()

	return g
}

// HasNext reports whether a further call to Next could produce more
// separators.
func (g *Generator) HasNext() bool {
	return len(g.ready) > 0 || len(g.pending) > 0
}

// Next returns up to batchCap freshly generated separators. It may
// return fewer than batchCap (including zero) once enumeration is
// exhausted; callers should stop once HasNext reports false.
func (g *Generator) Next(batchCap int) []Separator {
	out := make([]Separator, 0, batchCap)
	for len(out) < batchCap {
		if len(g.ready) > 0 {
			out = append(out, g.ready[0])
			g.ready = g.ready[1:]
			continue
		}
		if len(g.pending) == 0 {
			break
		}
		next := g.pending[0]
		g.pending = g.pending[1:]
		g.process(next)
	}

	return out
}

// seedInitial queues the candidates N(C) for each component C of
// h minus the closed neighborhood of every vertex v — the seed step of
// the Berry-Bordat-Cogis algorithm.
func (g *Generator) seedInitial() {
	n := g.h.N()
	for v := 0; v < n; v++ {
		closed := make([]int, 0, g.h.Degree(v)+1)
		closed = append(closed, v)
		closed = append(closed, g.h.Adj(v)...)
		for _, comp := range g.h.WithoutVertices(closed) {
			if nb := neighborsOf(g.h, comp); len(nb) > 0 {
				g.enqueue(nb)
			}
		}
	}
}

// process turns one queued candidate S into the separator it emits plus
// the Berry-Bordat-Cogis expansion of S: for every x in S, N(C) for each
// component C of h minus S ∪ N(x).
func (g *Generator) process(sep []int) {
	locals := make([]int, 0, len(sep))
	for _, v := range sep {
		if l, ok := g.h.LocalOf(v); ok {
			locals = append(locals, l)
		}
	}
	comps := g.h.WithoutVertices(locals)

	var largest ComponentSize
	for _, c := range comps {
		if c.N() > largest.N {
			largest = ComponentSize{N: c.N(), M: c.M()}
		}
	}
	g.ready = append(g.ready, Separator{Vertices: sep, LargestComponent: largest})

	for _, x := range locals {
		removed := append(append([]int(nil), locals...), g.h.Adj(x)...)
		for _, c := range g.h.WithoutVertices(removed) {
			if nb := neighborsOf(g.h, c); len(nb) > 0 {
				g.enqueue(nb)
			}
		}
	}
}

// enqueue adds sep to the processing frontier unless an identical vertex
// set has already been seen.
func (g *Generator) enqueue(sep []int) {
	key := canonicalKey(sep)
	if _, dup := g.seen[key]; dup {
		return
	}
	g.seen[key] = struct{}{}
	g.pending = append(g.pending, sep)
}

// neighborsOf returns the sorted global vertices of h, outside comp, that
// are adjacent (in the ambient graph) to some vertex of comp — the N(C)
// of the Berry-Bordat-Cogis algorithm.
func neighborsOf(h *graph.Subgraph, comp *graph.Subgraph) []int {
	g := h.Graph()
	inComp := make(map[int]struct{}, comp.N())
	for i := 0; i < comp.N(); i++ {
		inComp[comp.Global(i)] = struct{}{}
	}
	found := make(map[int]struct{})
	for i := 0; i < comp.N(); i++ {
		for _, u := range g.Adj(comp.Global(i)) {
			if _, inside := inComp[u]; inside {
				continue
			}
			if h.Contains(u) {
				found[u] = struct{}{}
			}
		}
	}
	out := make([]int, 0, len(found))
	for v := range found {
		out = append(out, v)
	}
	sort.Ints(out)

	return out
}

func canonicalKey(sorted []int) string {
	var sb strings.Builder
	for i, v := range sorted {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(v))
	}

	return sb.String()
}
