package pace

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/solvers-go/treedepth/graph"
)

// ReadGraph parses the PACE `.gr` format from r: a header line
// "p tdp N M", then M lines each "a b" giving a 1-based undirected edge.
// Lines starting with "c" are comments and are skipped wherever they
// appear. Vertex ids are translated to the 0-based indices graph.New
// expects.
func ReadGraph(r io.Reader) (*graph.Graph, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	n, m, err := readHeader(scanner)
	if err != nil {
		return nil, err
	}

	edges := make([][2]int, 0, m)
	for len(edges) < m {
		if !scanner.Scan() {
			return nil, ErrEdgeCount
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, ErrMalformedEdge
		}
		a, errA := strconv.Atoi(fields[0])
		b, errB := strconv.Atoi(fields[1])
		if errA != nil || errB != nil || a < 1 || b < 1 {
			return nil, ErrMalformedEdge
		}
		edges = append(edges, [2]int{a - 1, b - 1})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return graph.New(n, edges)
}

func readHeader(scanner *bufio.Scanner) (n, m int, err error) {
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 4 || fields[0] != "p" || fields[1] != "tdp" {
			return 0, 0, ErrMissingHeader
		}
		n, errN := strconv.Atoi(fields[2])
		m, errM := strconv.Atoi(fields[3])
		if errN != nil || errM != nil || n <= 0 || m < 0 {
			return 0, 0, ErrMissingHeader
		}

		return n, m, nil
	}
	if err := scanner.Err(); err != nil {
		return 0, 0, err
	}

	return 0, 0, fmt.Errorf("%w: empty input", ErrMissingHeader)
}
