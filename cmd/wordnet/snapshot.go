package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordnet/loader"
	"github.com/katalvlaran/wordnet/snapshot"
	"github.com/katalvlaran/wordnet/taxonomy"
)

func (a *app) snapshotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot OUT",
		Short: "Validate the sources and write their records as a msgpack snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := loader.Source{Synsets: a.cfg.Synsets, Hypernyms: a.cfg.Hypernyms}
			snap, err := loader.Read(cmd.Context(), src, loader.WithLogger(a.logger))
			if err != nil {
				return err
			}
			if _, err = taxonomy.Build(snap.Synsets, snap.Hypernyms, taxonomy.WithLogger(a.logger)); err != nil {
				return err
			}
			if err = snapshot.Save(args[0], snap); err != nil {
				return err
			}
			a.printf(cmd.OutOrStdout(), args[0], "%d synsets, %d hypernym records, digest %s",
				len(snap.Synsets), len(snap.Hypernyms), snap.Digest[:12])

			return nil
		},
	}
}
