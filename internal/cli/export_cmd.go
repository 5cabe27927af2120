package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"planshop/internal/export"
)

// newExportCmd creates "planshop export": the saved plan as a spreadsheet
// workbook.
func newExportCmd(app *App) *cobra.Command {
	var out string
	var rtl bool
	var draftName string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the saved plan to a spreadsheet workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			draft, err := loadDraft(cmd.Context(), app, draftName)
			if err != nil {
				return err
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("creating %s: %w", out, err)
			}
			defer f.Close()

			opts := export.WorkbookOptions{RightToLeft: rtl}
			if err := export.WriteWorkbook(f, draft.Plan, opts); err != nil {
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", export.DefaultWorkbookName, "output file")
	cmd.Flags().BoolVar(&rtl, "rtl", true, "lay sheets out right-to-left")
	addDraftFlag(cmd.Flags(), &draftName)
	return cmd
}
