package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "rewrites the book file into its canonical form"
}
func (*fmtCmd) Usage() string {
	return `bkb fmt

  Reads the book file, reconstructs every account, applies due interest, and
  writes everything back in the canonical indented format. This also
  persists interest that accrued since the last mutating command.
`
}

func (p *fmtCmd) SetFlags(f *flag.FlagSet) {}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := openBook()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load book: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := saveBook(book); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving book: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Successfully formatted %s\n", *bookFile)
	return subcommands.ExitSuccess
}
