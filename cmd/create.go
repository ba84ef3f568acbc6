package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/jferr/bankbook"
)

type createCmd struct {
	number    string
	holder    string
	balance   float64
	kind      string
	rate      float64
	overdraft float64
	password  string
}

func (*createCmd) Name() string     { return "create" }
func (*createCmd) Synopsis() string { return "open a new account in the book" }
func (*createCmd) Usage() string {
	return `bkb create -holder <name> -balance <amount> [-number <number>] [-type saving|checking] [-rate <percent>] [-overdraft <amount>] [-password <password>]

  Opens a new account. Without -number a unique one is generated. A saving
  account takes a yearly interest -rate, a checking account an -overdraft
  limit. The password is hashed before it is stored.
`
}

func (c *createCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.number, "number", "", "Account number (generated when empty)")
	f.StringVar(&c.holder, "holder", "", "Account holder name")
	f.Float64Var(&c.balance, "balance", 0, "Opening balance")
	f.StringVar(&c.kind, "type", "", "Account variant: saving, checking, or empty for a plain account")
	f.Float64Var(&c.rate, "rate", 0, "Yearly interest rate in percent (saving accounts)")
	f.Float64Var(&c.overdraft, "overdraft", 0, "Overdraft limit (checking accounts)")
	f.StringVar(&c.password, "password", "", "Account password")
}

func (c *createCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.holder == "" || c.balance < 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	var kind bankbook.AccountType
	switch c.kind {
	case "":
		kind = bankbook.TypeBase
	case "saving":
		kind = bankbook.TypeSaving
	case "checking":
		kind = bankbook.TypeChecking
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown account type %q\n", c.kind)
		return subcommands.ExitUsageError
	}

	book, err := openBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	acc, err := book.Create(bankbook.NewAccount{
		Number:    c.number,
		Holder:    c.holder,
		Balance:   amount(c.balance),
		Type:      kind,
		Rate:      bankbook.Percent(c.rate),
		Overdraft: amount(c.overdraft),
		Password:  c.password,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating account: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := saveBook(book); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Account %s successfully created.\n", acc.Number())
	return subcommands.ExitSuccess
}
