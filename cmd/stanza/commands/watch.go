package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/stanza/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Re-resolve the project whenever its manifest or lock artifact changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Watch(cmd.Context(), projectPath(cmd), func(listing *app.Listing) {
				writeListing(cmd.OutOrStdout(), listing)
			})
		},
	}
}
