// Package records parses the comma-separated text sources a taxonomy is
// built from, plus whitespace-separated word lists.
//
// Synset lines:   id,word1 word2 ...[,gloss]
// Hypernym lines: id[,parent1,parent2,...]
//
// Blank lines are skipped and a trailing "\r" is dropped. Every failure
// wraps ErrMalformedInput and names the 1-based line number.
package records

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/wordnet/taxonomy"
)

// ErrMalformedInput indicates a line that does not match the expected shape.
var ErrMalformedInput = errors.New("records: malformed input")

// maxLine bounds a single input line; real glosses stay well below it.
const maxLine = 1 << 20

// ReadSynsets parses synset lines from r. Fields after the word list are
// kept verbatim, commas included, as the gloss.
func ReadSynsets(r io.Reader) ([]taxonomy.SynsetRecord, error) {
	var out []taxonomy.SynsetRecord
	err := eachLine(r, func(n int, line string) error {
		fields := strings.SplitN(line, ",", 3)
		if len(fields) < 2 {
			return fmt.Errorf("%w: line %d: want id,words[,gloss], got %q", ErrMalformedInput, n, line)
		}
		id, err := parseID(fields[0])
		if err != nil {
			return fmt.Errorf("%w: line %d: synset id: %v", ErrMalformedInput, n, err)
		}
		words := strings.Fields(fields[1])
		if len(words) == 0 {
			return fmt.Errorf("%w: line %d: synset %d has no words", ErrMalformedInput, n, id)
		}
		rec := taxonomy.SynsetRecord{ID: id, Words: words}
		if len(fields) == 3 {
			rec.Gloss = fields[2]
		}
		out = append(out, rec)

		return nil
	})

	return out, err
}

// ReadHypernyms parses hypernym lines from r. A line holding only an id
// yields a record with no parents. Trailing empty fields are dropped, so
// "5," and "5,4," read as "5" and "5,4"; an empty field before a value is
// malformed.
func ReadHypernyms(r io.Reader) ([]taxonomy.HypernymRecord, error) {
	var out []taxonomy.HypernymRecord
	err := eachLine(r, func(n int, line string) error {
		fields := strings.Split(line, ",")
		for len(fields) > 1 && strings.TrimSpace(fields[len(fields)-1]) == "" {
			fields = fields[:len(fields)-1]
		}
		id, err := parseID(fields[0])
		if err != nil {
			return fmt.Errorf("%w: line %d: synset id: %v", ErrMalformedInput, n, err)
		}
		rec := taxonomy.HypernymRecord{ID: id}
		if len(fields) > 1 {
			rec.Parents = make([]int, 0, len(fields)-1)
		}
		for i, f := range fields[1:] {
			p, err := parseID(f)
			if err != nil {
				return fmt.Errorf("%w: line %d: hypernym %d: %v", ErrMalformedInput, n, i+1, err)
			}
			rec.Parents = append(rec.Parents, p)
		}
		out = append(out, rec)

		return nil
	})

	return out, err
}

// ReadWords returns every whitespace-separated word in r.
func ReadWords(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	sc.Split(bufio.ScanWords)
	var words []string
	for sc.Scan() {
		words = append(words, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("records: read words: %w", err)
	}

	return words, nil
}

// eachLine calls fn with every non-blank line and its 1-based number.
func eachLine(r io.Reader, fn func(n int, line string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSuffix(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := fn(n, line); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("%w: after line %d: %v", ErrMalformedInput, n, err)
	}

	return nil
}

// parseID converts a trimmed decimal field to a non-negative int.
func parseID(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("empty field")
	}
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer", s)
	}
	if id < 0 {
		return 0, fmt.Errorf("negative id %d", id)
	}

	return id, nil
}
