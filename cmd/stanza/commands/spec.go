package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newSpecCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spec",
		Short: "Build and print the dependency specification",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lenient, _ := cmd.Flags().GetBool("lenient")
			fingerprint, _ := cmd.Flags().GetBool("fingerprint")

			spec, err := c.app.Spec(cmd.Context(), projectPath(cmd), lenient)
			if err != nil {
				return err
			}

			if fingerprint {
				fmt.Fprintf(cmd.OutOrStdout(), "%016x\n", spec.Fingerprint())
				return nil
			}

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(spec)
		},
	}
	cmd.Flags().Bool("lenient", false, "Tolerate a missing output path")
	cmd.Flags().Bool("fingerprint", false, "Print only the specification fingerprint")
	return cmd
}
