// SPDX-License-Identifier: MIT
//
// File: read.go
// Role: Parser for the plain-text digraph format:
//
//	V
//	E
//	v1 w1
//	...
//	vE wE
//
// Tokens are whitespace separated; line breaks carry no meaning.

package digraph

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Read parses a digraph from r.
// Returns ErrMalformedInput (wrapped, with the 1-based token position) on a
// missing or non-integer token, a vertex count outside 0..MaxVertices or a
// negative edge count, and ErrVertexOutOfRange for edges that reference unknown vertices.
// Complexity: O(V + E).
func Read(r io.Reader) (*Digraph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	sc.Split(bufio.ScanWords)
	tok := &tokenizer{sc: sc}

	// 1) Header: vertex count, edge count
	v, err := tok.next("vertex count")
	if err != nil {
		return nil, err
	}
	b, err := NewBuilder(v)
	if err != nil {
		return nil, fmt.Errorf("%w: token 1 (vertex count): %w", ErrMalformedInput, err)
	}
	e, err := tok.next("edge count")
	if err != nil {
		return nil, err
	}
	if e < 0 {
		return nil, fmt.Errorf("%w: negative edge count %d", ErrMalformedInput, e)
	}

	// 2) Edge pairs
	for i := 0; i < e; i++ {
		from, err := tok.next("edge tail")
		if err != nil {
			return nil, err
		}
		to, err := tok.next("edge head")
		if err != nil {
			return nil, err
		}
		if err = b.AddEdge(from, to); err != nil {
			return nil, fmt.Errorf("digraph: edge %d: %w", i+1, err)
		}
	}

	return b.Build(), nil
}

// tokenizer yields integer tokens and remembers how many it has consumed.
type tokenizer struct {
	sc  *bufio.Scanner
	pos int
}

// next reads one integer token; what names the expected field for errors.
func (t *tokenizer) next(what string) (int, error) {
	t.pos++
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return 0, fmt.Errorf("%w: token %d (%s): %v", ErrMalformedInput, t.pos, what, err)
		}

		return 0, fmt.Errorf("%w: token %d (%s): unexpected end of input", ErrMalformedInput, t.pos, what)
	}
	n, err := strconv.Atoi(t.sc.Text())
	if err != nil {
		return 0, fmt.Errorf("%w: token %d (%s): %q is not an integer", ErrMalformedInput, t.pos, what, t.sc.Text())
	}

	return n, nil
}
