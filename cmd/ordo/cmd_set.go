package main

import (
	"github.com/spf13/cobra"

	"github.com/odvcencio/ordo/pkg/omap"
	"github.com/odvcencio/ordo/pkg/setops"
)

func newDiffCmd() *cobra.Command {
	return newSetCmd(
		"diff <base> [other...]",
		"Print base entries not matched in any other dataset",
		setops.Diff,
	)
}

func newIntersectCmd() *cobra.Command {
	return newSetCmd(
		"intersect <base> [other...]",
		"Print base entries matched in every other dataset",
		setops.Intersect,
	)
}

// newSetCmd builds the shared command shape of diff and intersect; the
// two differ only in the operation they run.
func newSetCmd(use, short string, op setops.Op) *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := readConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("mode") {
				mode = cfg.Set.Mode
			}
			m, err := parseMode(mode)
			if err != nil {
				return err
			}

			base, err := loadDataset(args[0])
			if err != nil {
				return err
			}
			others := make([]*omap.Array, 0, len(args)-1)
			for _, path := range args[1:] {
				o, err := loadDataset(path)
				if err != nil {
					return err
				}
				others = append(others, o)
			}

			result, err := setops.Compute(base, others, setops.Options{
				Op:   op,
				Mode: m,
			})
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "normal", "match predicate: normal (values), key, assoc (both)")

	return cmd
}
