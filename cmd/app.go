// Package cmd implements the CLI application to manage a bank book.
package cmd

import (
	"flag"

	"github.com/google/subcommands"
	"github.com/jferr/bankbook"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&createCmd{}, "accounts")
	c.Register(&deleteCmd{}, "accounts")
	c.Register(&listCmd{}, "accounts")
	c.Register(&searchCmd{}, "accounts")

	c.Register(&depositCmd{}, "transactions")
	c.Register(&withdrawCmd{}, "transactions")
	c.Register(&transferCmd{}, "transactions")
	c.Register(&logCmd{}, "transactions")

	c.Register(&fmtCmd{}, "book")
	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var bookFile = flag.String("book-file", "accounts.json", "Path to the book file holding accounts and transactions (JSON format)")
var currency = flag.String("currency", "USD", "Currency all balances are kept in")

// openBook loads the book from the app book file, accruing due interest.
func openBook() (*bankbook.Book, error) {
	return bankbook.LoadBook(*bookFile, bankbook.WithCurrency(*currency))
}

// saveBook persists the book back to the app book file.
func saveBook(b *bankbook.Book) error {
	return bankbook.SaveBook(*bookFile, b)
}

// amount converts a flag value into money in the app currency.
func amount(v float64) bankbook.Money {
	return bankbook.M(v, *currency)
}
