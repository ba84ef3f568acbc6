package bankbook

import "encoding/json"

// TxType identifies the kind of monetary event recorded in the history.
type TxType string

const (
	TxDeposit  TxType = "deposit"
	TxWithdraw TxType = "withdraw"
	TxInterest TxType = "interest"
)

// Transaction is one immutable entry of the append-only history. Once
// recorded it is never mutated or removed; the append order is the source of
// chronological truth, there is no timestamp-based re-sort.
type Transaction struct {
	AccountNumber string
	Type          TxType
	Amount        Money // always positive, the Type carries the direction
	Date          Date
}

func (t Transaction) Equal(o Transaction) bool {
	return t.AccountNumber == o.AccountNumber && t.Type == o.Type &&
		t.Amount.Equal(o.Amount) && t.Date == o.Date
}

func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("account_number", t.AccountNumber)
	w.Append("transaction_type", t.Type)
	w.Append("amount", t.Amount.value.Round(int32(t.Amount.currency().Fraction)))
	w.Optional("currency", t.Amount.cur)
	w.Append("date", t.Date)
	return w.MarshalJSON()
}

var _ json.Marshaler = Transaction{}
