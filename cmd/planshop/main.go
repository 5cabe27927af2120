package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"planshop/internal/advisory"
	"planshop/internal/cli"
	"planshop/internal/db"
	"planshop/internal/llm"
	"planshop/internal/repository"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	dbPath, err := db.DefaultPath()
	if err != nil {
		return err
	}
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	llmCfg := llm.LoadConfig()
	var observer llm.Observer = llm.NoopObserver{}
	if llmCfg.LogCalls {
		observer = llm.NewLogObserver(os.Stderr)
	}
	client := llm.NewGeminiClient(llmCfg, observer)

	app := &cli.App{
		Gateway: advisory.NewGateway(client),
		Drafts:  repository.NewSQLiteDraftRepo(database),
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
