package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"planshop/internal/domain"
	"planshop/internal/repository"
	"planshop/internal/wizard"
)

// NewRootCmd creates the top-level "planshop" command. Running it with no
// subcommand starts the interactive workshop.
func NewRootCmd(app *App) *cobra.Command {
	var resume bool
	var draftName string
	var stepsPath string

	root := &cobra.Command{
		Use:           "planshop",
		Short:         "Guided workshop for building an annual work plan",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWorkshop(app, resume, draftName, stepsPath)
		},
	}
	root.Flags().BoolVar(&resume, "resume", false, "resume the saved draft instead of starting fresh")
	addDraftFlag(root.Flags(), &draftName)
	root.Flags().StringVar(&stepsPath, "steps", "", "YAML file overriding step guidance and reflections")

	root.AddCommand(
		newExportCmd(app),
		newPrintCmd(app),
		newDraftsCmd(app),
	)
	return root
}

func runWorkshop(app *App, resume bool, draftName, stepsPath string) error {
	if app.IsInteractive != nil && !app.IsInteractive() {
		return fmt.Errorf("the workshop needs an interactive terminal; use the export or print subcommands in scripts")
	}

	if stepsPath == "" {
		stepsPath = os.Getenv("PLANSHOP_STEPS")
	}
	steps, err := wizard.LoadSteps(stepsPath)
	if err != nil {
		return err
	}

	var session *wizard.Session
	if resume {
		draft, err := loadDraft(context.Background(), app, draftName)
		if err != nil {
			return err
		}
		session = wizard.ResumeSession(steps, draft.Plan, draft.StepIndex, draft.FinalReport)
		draftName = draft.Name
	} else {
		session = wizard.NewSession(steps)
	}

	p := tea.NewProgram(newWorkshopModel(app, session, draftName), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// loadDraft fetches the named draft, falling back to the most recent one when
// the default name has nothing saved under it.
func loadDraft(ctx context.Context, app *App, name string) (*domain.Draft, error) {
	draft, err := app.Drafts.GetByName(ctx, name)
	if errors.Is(err, repository.ErrNotFound) {
		draft, err = app.Drafts.GetLatest(ctx)
	}
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("no saved draft to work from; run the workshop and press ctrl+s first")
	}
	return draft, err
}
