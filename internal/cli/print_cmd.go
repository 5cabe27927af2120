package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"planshop/internal/export"
)

// newPrintCmd creates "planshop print": the saved plan as a printable
// plain-text document on stdout or in a file.
func newPrintCmd(app *App) *cobra.Command {
	var out string
	var draftName string

	cmd := &cobra.Command{
		Use:   "print",
		Short: "Write the saved plan as a printable document",
		RunE: func(cmd *cobra.Command, args []string) error {
			draft, err := loadDraft(cmd.Context(), app, draftName)
			if err != nil {
				return err
			}

			if out == "" || out == "-" {
				return export.WriteDocument(cmd.OutOrStdout(), draft.Plan)
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("creating %s: %w", out, err)
			}
			defer f.Close()
			if err := export.WriteDocument(f, draft.Plan); err != nil {
				return err
			}
			return f.Close()
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	addDraftFlag(cmd.Flags(), &draftName)
	return cmd
}
