package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "ordo",
		Short: "Sort, diff, and intersect ordered key/value datasets",
	}

	root.AddCommand(newVersionCmd())
	root.AddCommand(newSortCmd())
	root.AddCommand(newDiffCmd())
	root.AddCommand(newIntersectCmd())
	root.AddCommand(newDigestCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "ordo 0.1.0-dev")
		},
	}
}
