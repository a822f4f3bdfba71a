package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/stanza/internal/app"
	"go.trai.ch/stanza/internal/core/domain"
	"go.trai.ch/stanza/internal/ui/output"
	"go.trai.ch/stanza/internal/ui/style"
)

func (c *CLI) newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the direct and transitive packages of a project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")

			listing, err := c.app.List(cmd.Context(), projectPath(cmd))
			if err != nil {
				return err
			}

			if asJSON {
				return writeListingJSON(cmd.OutOrStdout(), listing)
			}
			writeListing(cmd.OutOrStdout(), listing)
			return nil
		},
	}
	cmd.Flags().Bool("json", false, "Print the listing as JSON")
	return cmd
}

func writeListingJSON(w io.Writer, listing *app.Listing) error {
	payload := struct {
		Project    domain.ProjectIdentity   `json:"project"`
		Installed  []domain.PackageIdentity `json:"installed"`
		Transitive []domain.PackageIdentity `json:"transitive,omitempty"`
	}{
		Project:    listing.Spec.Project,
		Installed:  listing.Installed,
		Transitive: listing.Transitive,
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func writeListing(w io.Writer, listing *app.Listing) {
	styled := output.Styled(w)

	fmt.Fprintln(w, render(styled, style.Header, listing.Spec.Project.Name))

	monikers := make([]string, 0, len(listing.Spec.Frameworks))
	for _, fw := range listing.Spec.Frameworks {
		monikers = append(monikers, fw.Framework.String())
	}
	fmt.Fprintln(w, render(styled, style.Framework, "frameworks: "+strings.Join(monikers, ", ")))

	writeSection(w, styled, "direct", style.Direct, style.Dot, listing.Installed)
	if len(listing.Transitive) > 0 {
		writeSection(w, styled, "transitive", style.Transitive, style.Circle, listing.Transitive)
	}
}

func writeSection(w io.Writer, styled bool, title string, s interface{ Render(...string) string }, icon string, packages []domain.PackageIdentity) {
	fmt.Fprintln(w, render(styled, style.Header, title))
	for _, pkg := range packages {
		version := pkg.Version
		if version == "" {
			version = "any"
		}
		line := "  " + render(styled, s, icon) + " " +
			render(styled, style.PackageID, pkg.ID) + " " +
			render(styled, style.Version, version)
		fmt.Fprintln(w, line)
	}
}

func render(styled bool, s interface{ Render(...string) string }, text string) string {
	if !styled {
		return text
	}
	return s.Render(text)
}
