package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"planshop/internal/cli/formatter"
)

// newDraftsCmd creates "planshop drafts" with list and delete subcommands.
func newDraftsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drafts",
		Short: "Manage saved workshop drafts",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List saved drafts",
		RunE: func(cmd *cobra.Command, args []string) error {
			drafts, err := app.Drafts.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(drafts) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("No saved drafts."))
				return nil
			}

			rows := make([][]string, 0, len(drafts))
			for _, d := range drafts {
				goals := strconv.Itoa(len(d.Plan.Goals))
				rows = append(rows, []string{
					d.Name,
					goals,
					d.UpdatedAt.Local().Format("2006-01-02 15:04"),
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable(
				[]string{"Name", "Goals", "Updated"}, rows))
			return nil
		},
	}

	del := &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a saved draft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Drafts.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted draft %q\n", args[0])
			return nil
		},
	}

	cmd.AddCommand(list, del)
	return cmd
}
