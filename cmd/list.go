package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/google/subcommands"
	"github.com/jferr/bankbook/renderer"
)

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list all accounts in the book, grouped by variant" }
func (*listCmd) Usage() string {
	return `bkb list

  Lists every account grouped by variant. Credentials are never shown.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := openBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Accounts(slices.Collect(book.Accounts())))
	return subcommands.ExitSuccess
}

// --- Delete Command ---

type deleteCmd struct {
	number string
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete an account from the book" }
func (*deleteCmd) Usage() string {
	return `bkb delete -n <number>

  Removes the account irrevocably. The transaction history keeps its entries.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.number, "n", "", "Account number")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.number == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	book, err := openBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := book.Delete(c.number); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := saveBook(book); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Println("Account successfully deleted.")
	return subcommands.ExitSuccess
}

// --- Search Command ---

type searchCmd struct{}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "search accounts by holder name prefix" }
func (*searchCmd) Usage() string {
	return `bkb search <query>

  Lists accounts whose holder name starts with the query, case-insensitively.
`
}

func (c *searchCmd) SetFlags(f *flag.FlagSet) {}

func (c *searchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	book, err := openBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	found := book.SearchByHolder(f.Arg(0))
	if len(found) == 0 {
		fmt.Println("Account not found.")
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.Accounts(found))
	return subcommands.ExitSuccess
}
