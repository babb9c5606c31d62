package graph

// IsTree reports whether h is a tree. Because every Subgraph this solver
// ever builds is connected by construction (components are split out
// explicitly by the without_* family and KCore), a tree is exactly a
// connected subgraph with N-1 edges.
func (h *Subgraph) IsTree() bool { return h.M() == h.N()-1 }

// IsComplete reports whether h is K_n.
func (h *Subgraph) IsComplete() bool {
	n := h.N()

	return h.M() == n*(n-1)/2
}

// IsStar reports whether h is K_{1,n-1}: one vertex of degree n-1 and
// every other vertex of degree 1. n must be >= 2 for this to hold
// non-trivially; n == 1 is handled by the caller before predicates run.
func (h *Subgraph) IsStar() bool {
	n := h.N()
	if n < 2 || h.M() != n-1 {
		return false
	}
	if n == 2 {
		return true
	}
	centers, leaves := 0, 0
	for v := 0; v < n; v++ {
		switch h.Degree(v) {
		case n - 1:
			centers++
		case 1:
			leaves++
		default:
			return false
		}
	}

	return centers == 1 && leaves == n-1
}

// IsCycle reports whether h is C_n: every vertex has degree exactly 2.
func (h *Subgraph) IsCycle() bool {
	n := h.N()
	if n < 3 || h.M() != n {
		return false
	}
	for v := 0; v < n; v++ {
		if h.Degree(v) != 2 {
			return false
		}
	}

	return true
}

// IsPath reports whether h is P_n: exactly two vertices of degree 1 (the
// endpoints, or the lone vertex when n == 1) and the rest of degree 2.
func (h *Subgraph) IsPath() bool {
	n := h.N()
	if n == 1 {
		return true
	}
	if h.M() != n-1 {
		return false
	}
	ends := 0
	for v := 0; v < n; v++ {
		switch h.Degree(v) {
		case 1:
			ends++
		case 2:
			// interior vertex, fine
		default:
			return false
		}
	}

	return ends == 2
}
