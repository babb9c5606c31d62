package graph

import "errors"

// Sentinel errors for graph construction and structural queries.
var (
	// ErrEmptyGraph indicates a graph or subgraph with zero vertices was
	// presented where at least one vertex is required.
	ErrEmptyGraph = errors.New("graph: empty vertex set")

	// ErrSelfLoop indicates an edge endpoint referenced the same vertex twice.
	ErrSelfLoop = errors.New("graph: self-loop not allowed")

	// ErrMultiEdge indicates the same unordered pair appeared more than once
	// in the edge list.
	ErrMultiEdge = errors.New("graph: parallel edge not allowed")

	// ErrVertexOutOfRange indicates an edge endpoint fell outside [0, N).
	ErrVertexOutOfRange = errors.New("graph: vertex index out of range")

	// ErrNotConnected indicates the input graph is disconnected. The solver
	// requires connected input; callers must split connected components
	// themselves (spec Non-goals: disconnected input).
	ErrNotConnected = errors.New("graph: graph is not connected")

	// ErrLocalIndexOutOfRange indicates a local index fell outside
	// [0, |V(H)|) for the subgraph it was used against.
	ErrLocalIndexOutOfRange = errors.New("graph: local index out of range")
)
