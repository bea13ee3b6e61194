package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) distanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "distance A B",
		Short: "Shortest ancestral path length between two nouns",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			wn, err := a.wordnet(cmd)
			if err != nil {
				return err
			}
			d, err := wn.Distance(args[0], args[1])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), d)

			return nil
		},
	}
}

func (a *app) sapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sap A B",
		Short: "Common ancestor synset on a shortest ancestral path",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			wn, err := a.wordnet(cmd)
			if err != nil {
				return err
			}
			s, err := wn.SAP(args[0], args[1])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), s)

			return nil
		},
	}
}

func (a *app) relationCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "relation A B",
		Short: "Distance, ancestor and the synset path joining two nouns",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			wn, err := a.wordnet(cmd)
			if err != nil {
				return err
			}
			rel, err := wn.Relation(args[0], args[1])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			a.printf(out, "distance", "%d", rel.Distance)
			a.printf(out, "ancestor", "%d %s", rel.Ancestor.ID, rel.Ancestor)
			for _, id := range rel.Path {
				s, err := wn.Taxonomy().Synset(id)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(out, "  %d %s\n", id, s)
			}

			return nil
		},
	}
}

func (a *app) isNounCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "isnoun WORD...",
		Short: "Report whether each word is in the vocabulary",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wn, err := a.wordnet(cmd)
			if err != nil {
				return err
			}
			for _, w := range args {
				ok, err := wn.IsNoun(w)
				if err != nil {
					return err
				}
				a.printf(cmd.OutOrStdout(), w, "%t", ok)
			}

			return nil
		},
	}
}

func (a *app) nounsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "nouns",
		Short: "List every noun in first-occurrence order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			wn, err := a.wordnet(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for n := range wn.Nouns() {
				_, _ = fmt.Fprintln(out, n)
			}

			return nil
		},
	}
}

func (a *app) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summary figures of the taxonomy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			wn, err := a.wordnet(cmd)
			if err != nil {
				return err
			}
			st := wn.Taxonomy().Stats()
			root, err := wn.Taxonomy().Synset(st.Root)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			a.printf(out, "synsets", "%d", st.Synsets)
			a.printf(out, "hypernyms", "%d", st.Hypernyms)
			a.printf(out, "nouns", "%d", st.Nouns)
			a.printf(out, "polysemous", "%d", st.Polysemous)
			a.printf(out, "leaves", "%d", st.Leaves)
			a.printf(out, "root", "%d %s", st.Root, root)
			a.printf(out, "max depth", "%d", st.MaxDepth)

			return nil
		},
	}
}
