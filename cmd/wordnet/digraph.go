package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/wordnet/digraph"
	"github.com/katalvlaran/wordnet/sap"
)

func (a *app) digraphCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "digraph FILE",
		Short: "SAP queries over a plain digraph; reads \"v w\" pairs from stdin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			g, err := digraph.Read(f)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			a.logger.Debug("digraph read", zap.Int("vertices", g.V()), zap.Int("edges", g.E()))
			s, err := sap.New(g)
			if err != nil {
				return err
			}

			sc := bufio.NewScanner(cmd.InOrStdin())
			sc.Split(bufio.ScanWords)
			out := cmd.OutOrStdout()
			for {
				v, ok, err := nextInt(sc)
				if err != nil || !ok {
					return err
				}
				w, ok, err := nextInt(sc)
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("vertex %d has no partner", v)
				}
				res, err := s.Find([]int{v}, []int{w})
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(out, "length = %d, ancestor = %d\n", res.Length, res.Ancestor)
			}
		},
	}
}

// nextInt scans one integer token; ok is false at end of input.
func nextInt(sc *bufio.Scanner) (n int, ok bool, err error) {
	if !sc.Scan() {
		return 0, false, sc.Err()
	}
	n, err = strconv.Atoi(sc.Text())
	if err != nil {
		return 0, false, fmt.Errorf("bad vertex %q: %w", sc.Text(), err)
	}

	return n, true, nil
}
