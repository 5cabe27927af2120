package cli

import "github.com/spf13/pflag"

// addDraftFlag registers the shared --draft selector used by the workshop and
// by every subcommand that reads a saved plan.
func addDraftFlag(fs *pflag.FlagSet, p *string) {
	fs.StringVar(p, "draft", "default", "draft name to work with")
}
