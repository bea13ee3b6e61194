package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordnet/outcast"
	"github.com/katalvlaran/wordnet/records"
)

func (a *app) outcastCmd() *cobra.Command {
	var rank bool
	cmd := &cobra.Command{
		Use:   "outcast FILE...",
		Short: "Least related noun of each whitespace-separated word file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wn, err := a.wordnet(cmd)
			if err != nil {
				return err
			}
			groups := make([][]string, len(args))
			for i, name := range args {
				if groups[i], err = readGroup(name); err != nil {
					return err
				}
			}
			o := outcast.New(wn)
			out := cmd.OutOrStdout()

			if rank {
				for i, g := range groups {
					scores, err := o.Rank(g)
					if err != nil {
						return fmt.Errorf("%s: %w", args[i], err)
					}
					for _, s := range scores {
						a.printf(out, args[i], "%s %d", s.Noun, s.Total)
					}
				}
				return nil
			}

			found, err := o.FindAll(cmd.Context(), groups, a.cfg.Workers)
			if err != nil {
				return err
			}
			for i, noun := range found {
				a.printf(out, args[i], "%s", noun)
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&rank, "rank", false, "print every noun with its total distance")

	return cmd
}

func readGroup(name string) ([]string, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	words, err := records.ReadWords(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return words, nil
}
