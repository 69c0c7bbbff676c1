package filesystem

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"wordnet/internal/domain"
)

// ReadDigraph parses a graph in the textbook digraph format: the vertex
// count, the edge count, then one "v w" pair per edge. Whitespace and line
// breaks between numbers are not significant.
func ReadDigraph(r io.Reader) (*domain.Digraph, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	next := func(what string) (int, error) {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return 0, err
			}
			return 0, fmt.Errorf("digraph: unexpected end of input reading %s", what)
		}
		n, err := strconv.Atoi(scanner.Text())
		if err != nil {
			return 0, fmt.Errorf("digraph: invalid %s %q", what, scanner.Text())
		}
		return n, nil
	}

	v, err := next("vertex count")
	if err != nil {
		return nil, err
	}
	e, err := next("edge count")
	if err != nil {
		return nil, err
	}
	if e < 0 {
		return nil, fmt.Errorf("%w: edge count %d is negative", domain.ErrInvalidArgument, e)
	}

	edges := make([]domain.Edge, 0, min(e, 1<<20))
	for i := 0; i < e; i++ {
		from, err := next("edge origin")
		if err != nil {
			return nil, err
		}
		to, err := next("edge destination")
		if err != nil {
			return nil, err
		}
		edges = append(edges, domain.Edge{From: from, To: to})
	}

	return domain.NewDigraph(v, edges)
}

// ReadDigraphFile parses a digraph file
func ReadDigraphFile(path string) (*domain.Digraph, error) {
	f, err := os.Open(expandHome(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()
	return ReadDigraph(f)
}
