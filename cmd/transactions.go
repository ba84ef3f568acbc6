package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// --- Deposit Command ---

type depositCmd struct {
	number   string
	amount   float64
	password string
}

func (*depositCmd) Name() string     { return "deposit" }
func (*depositCmd) Synopsis() string { return "deposit money into an account" }
func (*depositCmd) Usage() string {
	return `bkb deposit -n <number> -a <amount> -password <password>

  Deposits the amount into the account and records the transaction.
`
}

func (c *depositCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.number, "n", "", "Account number")
	f.Float64Var(&c.amount, "a", 0, "Amount to deposit")
	f.StringVar(&c.password, "password", "", "Account password")
}

func (c *depositCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.number == "" || c.amount <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	book, err := openBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if _, err := book.Authenticate(c.number, c.password); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	balance, err := book.Deposit(c.number, amount(c.amount))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Deposit failed: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := saveBook(book); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Deposit successful. New balance: %s\n", balance)
	return subcommands.ExitSuccess
}

// --- Withdraw Command ---

type withdrawCmd struct {
	number   string
	amount   float64
	password string
}

func (*withdrawCmd) Name() string     { return "withdraw" }
func (*withdrawCmd) Synopsis() string { return "withdraw money from an account" }
func (*withdrawCmd) Usage() string {
	return `bkb withdraw -n <number> -a <amount> -password <password>

  Withdraws the amount from the account and records the transaction. A
  checking account may go negative down to its overdraft limit.
`
}

func (c *withdrawCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.number, "n", "", "Account number")
	f.Float64Var(&c.amount, "a", 0, "Amount to withdraw")
	f.StringVar(&c.password, "password", "", "Account password")
}

func (c *withdrawCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.number == "" || c.amount <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	book, err := openBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if _, err := book.Authenticate(c.number, c.password); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	balance, err := book.Withdraw(c.number, amount(c.amount))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Withdraw failed: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := saveBook(book); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Withdraw successful. New balance: %s\n", balance)
	return subcommands.ExitSuccess
}

// --- Transfer Command ---

type transferCmd struct {
	src      string
	dst      string
	amount   float64
	password string
}

func (*transferCmd) Name() string     { return "transfer" }
func (*transferCmd) Synopsis() string { return "transfer money between two accounts" }
func (*transferCmd) Usage() string {
	return `bkb transfer -from <number> -to <number> -a <amount> -password <password>

  Moves the amount from the source to the destination account as one unit:
  when the withdrawal is refused nothing moves and nothing is recorded.
  The password is the source account's.
`
}

func (c *transferCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.src, "from", "", "Source account number")
	f.StringVar(&c.dst, "to", "", "Destination account number")
	f.Float64Var(&c.amount, "a", 0, "Amount to transfer")
	f.StringVar(&c.password, "password", "", "Source account password")
}

func (c *transferCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.src == "" || c.dst == "" || c.amount <= 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}

	book, err := openBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if _, err := book.Authenticate(c.src, c.password); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := book.Transfer(c.src, c.dst, amount(c.amount)); err != nil {
		fmt.Fprintf(os.Stderr, "Transfer failed: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := saveBook(book); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	src, _ := book.Find(c.src)
	dst, _ := book.Find(c.dst)
	fmt.Printf("Transfer successful. Source new balance: %s. Destination new balance: %s\n", src.Balance(), dst.Balance())
	return subcommands.ExitSuccess
}
