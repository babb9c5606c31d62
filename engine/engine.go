package engine

import (
	"github.com/solvers-go/treedepth/cache"
	"github.com/solvers-go/treedepth/graph"
	"github.com/solvers-go/treedepth/separator"
	"github.com/solvers-go/treedepth/shortcut"
)

// Calculate narrows [searchLbnd, searchUbnd] for h's treedepth and
// returns the tightest [lower, upper] bounds it could prove, a witness
// root consistent with upper, and any minimal separators discovered
// along the way that are worth offering back to the caller as reuse
// hints (spec §4.6 step 6, §9).
//
// Calculate recurses on itself for every component it peels off h, so
// the whole search tree shares one Engine, one cache.SetTrie and one
// shortcut.Oracle — exactly as tsp.bbEngine shares one set of precomputed
// bounds across its entire DFS.
func (e *Engine) Calculate(h *graph.Subgraph, searchLbnd, searchUbnd int) (lower, upper, root int, hints []separator.Separator, err error) {
	if err := e.checkDeadline(); err != nil {
		return 0, 0, 0, nil, err
	}

	n := h.N()
	m := h.M()
	lower = maxInt(maxInt(m/n+1, h.MinDegree()+1), 1)
	upper = n
	root = h.Global(0)

	// Step 1: window collapse against the trivial bounds alone.
	if windowCollapsed(searchLbnd, searchUbnd, lower, upper) {
		e.log.Debugf("window collapse: n=%d trivial bounds [%d,%d] already outside search window [%d,%d]", n, lower, upper, searchLbnd, searchUbnd)
		return lower, upper, root, nil, nil
	}

	// Step 2: exact shortcut. Deliberately does not touch the cache: a
	// shortcut is cheaper to recompute than to look up, and Reconstruct
	// consults the oracle directly before ever falling back to the cache.
	if td, rg, ok := e.oracle.Exact(h); ok {
		return td, td, rg, nil, nil
	}

	key := h.GlobalSet()

	// Step 3: cache probe.
	wasCached := false
	if found, ok := e.cache.Search(key); ok {
		wasCached = true
		lower = maxInt(lower, found.Lower)
		if found.Upper < upper {
			upper, root = found.Upper, found.Root
		}
		if windowCollapsed(searchLbnd, searchUbnd, lower, upper) {
			return lower, upper, root, nil, nil
		}
	}

	entry, inserted := e.cache.Insert(key)
	if inserted {
		e.log.Debugf("cache insert: n=%d lower=%d upper=%d", n, lower, upper)
	}
	if entry.Lower < lower {
		entry.Lower = lower
	} else {
		lower = entry.Lower
	}
	if entry.Upper < upper {
		upper, root = entry.Upper, entry.Root
	} else {
		entry.Upper, entry.Root = upper, root
	}

	// Step 4: k-core / min-degree lower bound.
	var hintsOut []separator.Separator
	lower, upper, root, hintsOut, err = e.kcoreStep(h, searchLbnd, searchUbnd, lower, upper, root)
	if err != nil {
		return 0, 0, 0, nil, err
	}
	hints = append(hints, hintsOut...)
	e.commitTighter(entry, n, lower, upper, root)
	if windowCollapsed(searchLbnd, searchUbnd, lower, upper) {
		e.log.Debugf("window collapse after k-core: n=%d bounds [%d,%d]", n, lower, upper)
		return lower, upper, root, hints, nil
	}

	// Step 5: first-touch initialization.
	if !wasCached {
		lower, upper, root = e.firstTouch(h, lower, upper, root)
		e.commitTighter(entry, n, lower, upper, root)
		if windowCollapsed(searchLbnd, searchUbnd, lower, upper) {
			e.log.Debugf("window collapse after first-touch: n=%d bounds [%d,%d]", n, lower, upper)
			return lower, upper, root, hints, nil
		}
	}

	// Step 6: separator loop.
	e.log.Debugf("separator loop enter: n=%d bounds [%d,%d]", n, lower, upper)
	lower, upper, root, hintsOut, err = e.separatorLoop(h, searchLbnd, searchUbnd, lower, upper, root, hints)
	if err != nil {
		return 0, 0, 0, nil, err
	}
	hints = hintsOut
	e.commitTighter(entry, n, lower, upper, root)
	e.log.Debugf("separator loop exit: n=%d bounds [%d,%d] hints=%d", n, lower, upper, len(hints))

	return lower, upper, root, hints, nil
}

// commitTighter writes lower/upper/root back into entry, logging once at
// Debug level whenever the commit actually tightens either bound (an
// "evict-by-tighten" of the previous cached value).
func (e *Engine) commitTighter(entry *cache.Entry, n, lower, upper, root int) {
	if lower > entry.Lower || upper < entry.Upper {
		e.log.Debugf("cache tighten: n=%d [%d,%d] -> [%d,%d]", n, entry.Lower, entry.Upper, lower, upper)
	}
	entry.Lower, entry.Upper, entry.Root = lower, upper, root
}

// kcoreStep implements spec §4.6 step 4. The k-core peel, when non-empty,
// only ever tightens lower: an induced subgraph's treedepth never exceeds
// the supergraph's, so any lower bound proven on a k-core component is
// automatically a lower bound for h too, but the set of vertices it
// peeled away is not a single removable root, so it carries no
// reconstructable upper witness. The min-degree fallback (used whenever
// the k-core collapses to nothing) removes exactly one vertex and so
// tightens both lower and upper with a witness Reconstruct can walk.
func (e *Engine) kcoreStep(h *graph.Subgraph, searchLbnd, searchUbnd, lower, upper, root int) (int, int, int, []separator.Separator, error) {
	var hints []separator.Separator

	kcore := h.KCore(h.MinDegree() + 1)
	if len(kcore) > 0 {
		for _, c := range kcore {
			cl, _, _, chints, err := e.Calculate(c, maxInt(lower, searchLbnd), minInt(upper, searchUbnd))
			if err != nil {
				return 0, 0, 0, nil, err
			}
			hints = append(hints, chints...)
			if cl > lower {
				lower = cl
			}
		}

		return lower, upper, root, hints, nil
	}

	vMin := h.MinDegreeVertex()
	vMinGlobal := h.Global(vMin)
	worstUpper := 0
	for _, c := range h.WithoutVertex(vMin) {
		cl, cu, _, chints, err := e.Calculate(c, maxInt(lower, searchLbnd), minInt(upper, searchUbnd))
		if err != nil {
			return 0, 0, 0, nil, err
		}
		hints = append(hints, chints...)
		if cl > lower {
			lower = cl
		}
		if cu > worstUpper {
			worstUpper = cu
		}
	}
	if candidate := worstUpper + 1; candidate < upper {
		upper, root = candidate, vMinGlobal
	}

	return lower, upper, root, hints, nil
}

// firstTouch implements spec §4.6 step 5: the bounds computed the first
// time H is ever seen by the cache.
func (e *Engine) firstTouch(h *graph.Subgraph, lower, upper, root int) (int, int, int) {
	if g := greedyUpper(h); g < upper {
		upper = g
		root = h.Global(h.MaxDegreeVertex())
	}

	dfsTree := h.DFSTree(h.MaxDegreeVertex())
	if treeLower, _ := shortcut.TreedepthTree(dfsTree); treeLower > lower {
		lower = treeLower
	}

	key := h.GlobalSet()
	for _, hit := range e.cache.BigSubsets(key, e.opts.SubsetGap) {
		if hit.Entry.Lower > lower {
			lower = hit.Entry.Lower
		}
		candidate := hit.Gap + hit.Entry.Upper
		if candidate < upper {
			chain := sortedDiff(key, hit.Set)
			if len(chain) > 0 {
				upper = candidate
				root = chain[0]
				e.writeSpine(h, chain, hit.Entry.Upper)
			}
		}
	}

	return lower, upper, root
}

// separatorLoop implements spec §4.6 step 6: hints first (re-validated
// against h), then freshly generated minimal separators, updating upper
// whenever a separator proves a tighter witness and only ever committing
// a tightened lower bound once every separator has actually been tried —
// a partial scan's minimum is not a sound lower bound, only a complete
// one is (spec §4.5: minimal separators are an exhaustive decomposition
// basis; stopping early proves nothing about the separators left
// unexamined).
func (e *Engine) separatorLoop(h *graph.Subgraph, searchLbnd, searchUbnd, lower, upper, root int, inHints []separator.Separator) (int, int, int, []separator.Separator, error) {
	var outHints []separator.Separator
	newLower := h.N()

	tryOne := func(sep separator.Separator) (bool, error) {
		cl, cu, collected, err := e.trySeparator(h, sep, searchLbnd, searchUbnd, lower, upper)
		if err != nil {
			return false, err
		}
		outHints = append(outHints, collected...)
		if cl < newLower {
			newLower = cl
		}
		if cu >= 0 && cu < upper {
			upper = cu
			root = sep.Vertices[0]
			e.writeSpine(h, sep.Vertices, cu-len(sep.Vertices))
			outHints = append(outHints, sep)
		}

		return windowCollapsed(searchLbnd, searchUbnd, lower, upper), nil
	}

	for _, hint := range inHints {
		if !separator.IsMinimal(h, hint.Vertices) {
			continue
		}
		collapsed, err := tryOne(hint)
		if err != nil {
			return 0, 0, 0, nil, err
		}
		if collapsed {
			return lower, upper, root, outHints, nil
		}
	}

	gen := separator.New(h)
	for gen.HasNext() {
		if err := e.checkDeadline(); err != nil {
			return 0, 0, 0, nil, err
		}
		batch := gen.Next(e.opts.SeparatorBatchCap)
		for _, sep := range batch {
			collapsed, err := tryOne(sep)
			if err != nil {
				return 0, 0, 0, nil, err
			}
			if collapsed {
				return lower, upper, root, outHints, nil
			}
		}
	}

	if newLower < h.N() && newLower > lower {
		lower = newLower
	}

	return lower, upper, root, outHints, nil
}

// trySeparator evaluates one candidate separator: removes it from h,
// recurses into each resulting component independently (they become
// siblings under the separator in the elimination tree, so their depths
// combine by max, not by sum), and reports the separator's own
// contribution to a tightened lower bound (lower_sep+|S|) and upper bound
// (upper_sep+|S|, or -1 if the separator is too large to possibly help).
func (e *Engine) trySeparator(h *graph.Subgraph, sep separator.Separator, searchLbnd, searchUbnd, lower, upper int) (candLower, candUpper int, hints []separator.Separator, err error) {
	s := len(sep.Vertices)
	if s == 0 || s >= upper {
		return h.N(), -1, nil, nil
	}

	locals := make([]int, 0, s)
	for _, g := range sep.Vertices {
		l, ok := h.LocalOf(g)
		if !ok {
			return h.N(), -1, nil, nil
		}
		locals = append(locals, l)
	}

	comps := h.WithoutVertices(locals)
	if len(comps) == 0 {
		return h.N(), -1, nil, nil
	}

	lbndPrime := maxInt(1, maxInt(searchLbnd, lower)-s)
	ubndPrime := maxInt(1, minInt(searchUbnd, upper)-s)

	lowerSep, upperSep := 0, 0
	for _, c := range comps {
		cl, cu, _, chints, rerr := e.Calculate(c, lbndPrime, ubndPrime)
		if rerr != nil {
			return 0, 0, nil, rerr
		}
		hints = append(hints, chints...)
		if cl > lowerSep {
			lowerSep = cl
		}
		if cu > upperSep {
			upperSep = cu
		}
	}

	return lowerSep + s, upperSep + s, hints, nil
}
