package cli

import (
	"planshop/internal/advisory"
	"planshop/internal/repository"
)

// App holds the wired dependencies used by CLI commands.
type App struct {
	Gateway advisory.Gateway
	Drafts  repository.DraftRepo

	// IsInteractive reports whether stdin is attached to a terminal. The
	// workshop refuses to start without one.
	IsInteractive func() bool
}
