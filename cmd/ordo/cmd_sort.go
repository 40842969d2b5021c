package main

import (
	"github.com/spf13/cobra"

	"github.com/odvcencio/ordo/pkg/order"
)

func newSortCmd() *cobra.Command {
	var by string
	var byKey bool
	var desc bool
	var unstable bool
	var renumber bool

	cmd := &cobra.Command{
		Use:   "sort <dataset>",
		Short: "Sort a dataset and print it as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := readConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("by") {
				by = cfg.Sort.By
			}
			if !cmd.Flags().Changed("desc") {
				desc = cfg.Sort.Descending
			}
			if !cmd.Flags().Changed("unstable") {
				unstable = cfg.Sort.Unstable
			}

			strategy, err := parseStrategy(by)
			if err != nil {
				return err
			}
			a, err := loadDataset(args[0])
			if err != nil {
				return err
			}
			sorted, err := order.Sort(a, order.Options{
				Key:       byKey,
				Strategy:  strategy,
				Direction: direction(desc),
				Stable:    !unstable,
				Renumber:  renumber,
			})
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), sorted)
		},
	}

	cmd.Flags().StringVar(&by, "by", "smart", "comparison strategy: smart, numeric, string, stringci")
	cmd.Flags().BoolVar(&byKey, "key", false, "sort by key instead of value")
	cmd.Flags().BoolVar(&desc, "desc", false, "sort in descending order")
	cmd.Flags().BoolVar(&unstable, "unstable", false, "drop the stability guarantee for equal entries")
	cmd.Flags().BoolVar(&renumber, "renumber", false, "replace keys with sequential integers in result order")

	return cmd
}
