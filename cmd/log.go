package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/jferr/bankbook"
	"github.com/jferr/bankbook/renderer"
)

type logCmd struct {
	period  string
	start   string
	date    string
	account string
}

func (*logCmd) Name() string     { return "log" }
func (*logCmd) Synopsis() string { return "display the transaction history" }
func (*logCmd) Usage() string {
	return `bkb log [-p <period> | -s <start_date>] [-d <end_date>] [-n <number>]

  Lists the transaction history in recorded order, with options to restrict
  it to a date range or to a single account.
`
}

func (p *logCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.period, "p", "", "Predefined period (day, week, month, quarter, year).")
	f.StringVar(&p.start, "s", "", "The start date for a custom range. Overrides -p.")
	f.StringVar(&p.date, "d", "", "The end date for the range.")
	f.StringVar(&p.account, "n", "", "Only transactions of this account.")
}

func (p *logCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := openBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var periodRange bankbook.Range
	// If no date range flags are provided, use the full history.
	useFullRange := p.start == "" && p.date == "" && p.period == ""

	if !useFullRange {
		endDateStr := p.date
		if endDateStr == "" {
			endDateStr = bankbook.Today().String()
		}
		endDate, err := bankbook.ParseDate(endDateStr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
			return subcommands.ExitFailure
		}

		if p.start != "" {
			startDate, err := bankbook.ParseDate(p.start)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
				return subcommands.ExitFailure
			}
			periodRange = bankbook.NewRange(startDate, endDate)
		} else {
			period, err := bankbook.ParsePeriod(p.period)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing period: %v\n", err)
				return subcommands.ExitFailure
			}
			periodRange = period.Range(endDate)
		}
	}

	var transactions []bankbook.Transaction
	for _, tx := range book.Transactions() {
		if !useFullRange && !periodRange.Contains(tx.Date) {
			continue
		}
		if p.account != "" && tx.AccountNumber != p.account {
			continue
		}
		transactions = append(transactions, tx)
	}

	printMarkdown(renderer.Transactions(transactions))
	return subcommands.ExitSuccess
}
