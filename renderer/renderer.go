// Package renderer turns bankbook values into markdown for the terminal.
// It never mutates the book, and it never shows a credential hash.
package renderer

import (
	"fmt"
	"strings"

	"github.com/jferr/bankbook"
)

// Accounts renders the accounts grouped by variant, one markdown table per
// group, in book order within each group. Variant-specific columns only
// appear in their group's table. The password hash is never rendered.
func Accounts(accounts []bankbook.Account) string {
	if len(accounts) == 0 {
		return "No accounts available.\n"
	}

	var b strings.Builder
	writeGroup(&b, "Accounts", accounts, bankbook.TypeBase)
	writeGroup(&b, "Saving Accounts", accounts, bankbook.TypeSaving)
	writeGroup(&b, "Checking Accounts", accounts, bankbook.TypeChecking)
	return b.String()
}

func writeGroup(b *strings.Builder, title string, accounts []bankbook.Account, kind bankbook.AccountType) {
	var rows []bankbook.Account
	for _, acc := range accounts {
		if acc.Kind() == kind {
			rows = append(rows, acc)
		}
	}
	if len(rows) == 0 {
		return
	}

	fmt.Fprintf(b, "# %s\n\n", title)
	switch kind {
	case bankbook.TypeSaving:
		b.WriteString("| Number | Holder | Balance | Opened | Rate | Last Interest |\n")
		b.WriteString("|---|---|---:|---|---:|---|\n")
		for _, acc := range rows {
			saving := acc.(*bankbook.SavingAccount)
			fmt.Fprintf(b, "| %s | %s | %s | %s | %s | %s |\n",
				acc.Number(), acc.Holder(), acc.Balance(), acc.Opened(),
				saving.InterestRate(), saving.LastInterest())
		}
	case bankbook.TypeChecking:
		b.WriteString("| Number | Holder | Balance | Opened | Overdraft |\n")
		b.WriteString("|---|---|---:|---|---:|\n")
		for _, acc := range rows {
			checking := acc.(*bankbook.CheckingAccount)
			fmt.Fprintf(b, "| %s | %s | %s | %s | %s |\n",
				acc.Number(), acc.Holder(), acc.Balance(), acc.Opened(),
				checking.OverdraftLimit())
		}
	default:
		b.WriteString("| Number | Holder | Balance | Opened |\n")
		b.WriteString("|---|---|---:|---|\n")
		for _, acc := range rows {
			fmt.Fprintf(b, "| %s | %s | %s | %s |\n",
				acc.Number(), acc.Holder(), acc.Balance(), acc.Opened())
		}
	}
	b.WriteString("\n")
}

// Transactions renders the history as a markdown table, in recorded order.
func Transactions(txs []bankbook.Transaction) string {
	if len(txs) == 0 {
		return "No transactions recorded.\n"
	}

	var b strings.Builder
	b.WriteString("# Transactions\n\n")
	b.WriteString("| Account | Type | Amount | Date |\n")
	b.WriteString("|---|---|---:|---|\n")
	for _, tx := range txs {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", tx.AccountNumber, tx.Type, tx.Amount, tx.Date)
	}
	return b.String()
}

// Transaction renders a single history entry to a one-line string.
func Transaction(tx bankbook.Transaction) string {
	switch tx.Type {
	case bankbook.TxDeposit:
		return fmt.Sprintf("Deposited %s into %s", tx.Amount, tx.AccountNumber)
	case bankbook.TxWithdraw:
		return fmt.Sprintf("Withdrew %s from %s", tx.Amount, tx.AccountNumber)
	case bankbook.TxInterest:
		return fmt.Sprintf("Accrued %s of interest on %s", tx.Amount, tx.AccountNumber)
	default:
		return string(tx.Type)
	}
}
