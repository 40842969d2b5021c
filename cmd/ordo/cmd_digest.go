package main

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/blake2b"
)

// newDigestCmd fingerprints a dataset: the BLAKE2b-256 of its canonical
// JSON encoding. Two pipelines producing the same entries in the same
// order produce the same digest, which makes sort/diff output easy to
// compare across runs without storing it.
func newDigestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "digest <dataset>",
		Short: "Print the BLAKE2b-256 fingerprint of a dataset's canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadDataset(args[0])
			if err != nil {
				return err
			}
			var buf bytes.Buffer
			if err := writeJSON(&buf, a); err != nil {
				return err
			}
			sum := blake2b.Sum256(buf.Bytes())
			fmt.Fprintf(cmd.OutOrStdout(), "%x\n", sum)
			return nil
		},
	}
}
