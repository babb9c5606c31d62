package pace

import "errors"

var (
	// ErrMissingHeader indicates the input ended or the header line was
	// malformed before a "p tdp N M" line was found.
	ErrMissingHeader = errors.New("pace: missing or malformed \"p tdp\" header")

	// ErrEdgeCount indicates the input ended before the M edge lines
	// declared in the header were read. Lines after the M-th edge are not
	// read, so surplus edges are not reported.
	ErrEdgeCount = errors.New("pace: edge count does not match header")

	// ErrMalformedEdge indicates an edge line was not two whitespace
	// separated 1-based vertex ids.
	ErrMalformedEdge = errors.New("pace: malformed edge line")
)
