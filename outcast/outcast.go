package outcast

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"
)

// ErrEmptyGroup is returned for a group with no nouns.
var ErrEmptyGroup = errors.New("outcast: empty group")

// Distancer measures the distance between two nouns.
type Distancer interface {
	Distance(a, b string) (int, error)
}

// Score is one noun and its total distance to the rest of its group.
type Score struct {
	Noun  string
	Total int
}

// Outcast finds the least related member of noun groups.
type Outcast struct {
	d Distancer
}

// New returns an Outcast backed by d.
func New(d Distancer) *Outcast { return &Outcast{d: d} }

// Find returns the noun whose summed distance to the others is largest.
// The first such noun in input order wins ties.
func (o *Outcast) Find(nouns []string) (string, error) {
	scores, err := o.scores(nouns)
	if err != nil {
		return "", err
	}
	best := scores[0]
	for _, s := range scores[1:] {
		if s.Total > best.Total {
			best = s
		}
	}

	return best.Noun, nil
}

// Rank returns every noun with its total, largest total first. Nouns with
// equal totals keep their input order.
func (o *Outcast) Rank(nouns []string) ([]Score, error) {
	scores, err := o.scores(nouns)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(scores, func(a, b Score) int { return b.Total - a.Total })

	return scores, nil
}

// FindAll runs Find over each group with at most workers goroutines
// (GOMAXPROCS when workers <= 0). The result keeps group order. The first
// failing group cancels the remaining ones.
func (o *Outcast) FindAll(ctx context.Context, groups [][]string, workers int) ([]string, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	out := make([]string, len(groups))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, group := range groups {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			noun, err := o.Find(group)
			if err != nil {
				return fmt.Errorf("outcast: group %d: %w", i, err)
			}
			out[i] = noun

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// scores computes d(x) for every member; each unordered pair is measured once.
func (o *Outcast) scores(nouns []string) ([]Score, error) {
	if len(nouns) == 0 {
		return nil, ErrEmptyGroup
	}
	scores := make([]Score, len(nouns))
	for i, a := range nouns {
		scores[i].Noun = a
		for j := i + 1; j < len(nouns); j++ {
			b := nouns[j]
			if a == b {
				continue
			}
			d, err := o.d.Distance(a, b)
			if err != nil {
				return nil, err
			}
			scores[i].Total += d
			scores[j].Total += d
		}
	}

	return scores, nil
}
