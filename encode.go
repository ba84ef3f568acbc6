package bankbook

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

// The persisted container is a single JSON object:
//
//	{"accounts": [...], "transactions": [...]}
//
// Each account record carries an "account_type" tag; the decoder dispatches
// on it to reconstruct the right variant. Encoding goes through each
// variant's MarshalJSON so the key order stays canonical, and the container
// is indented for human inspection.

// accountRecord reads the fields shared by every account variant.
type accountRecord struct {
	Number   string          `json:"account_number"`
	Holder   string          `json:"holder_name"`
	Balance  decimal.Decimal `json:"balance"`
	Currency string          `json:"currency"`
	Type     AccountType     `json:"account_type"`
	Created  Date            `json:"creation_date"`
	Password string          `json:"account_password"`
}

func (r accountRecord) money(fallbackCurrency string) Money {
	if r.Currency == "" {
		return M(r.Balance, fallbackCurrency)
	}
	return M(r.Balance, r.Currency)
}

// transactionRecord reads one history entry.
type transactionRecord struct {
	Number   string          `json:"account_number"`
	Type     TxType          `json:"transaction_type"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	Date     Date            `json:"date"`
}

// DecodeBook reads the whole container from r and reconstructs the book,
// dispatching each account record on its account_type tag. The credential
// hash is restored verbatim, never re-hashed. Malformed content fails with
// an error wrapping ErrCorruptStorage.
func DecodeBook(r io.Reader, opts ...Option) (*Book, error) {
	book := NewBook(opts...)

	var container struct {
		Accounts     []json.RawMessage `json:"accounts"`
		Transactions []json.RawMessage `json:"transactions"`
	}
	if err := json.NewDecoder(r).Decode(&container); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptStorage, err)
	}

	for _, raw := range container.Accounts {
		acc, err := decodeAccount(raw, book.currency)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptStorage, err)
		}
		if _, exists := book.index[acc.Number()]; exists {
			return nil, fmt.Errorf("%w: duplicate account %q", ErrCorruptStorage, acc.Number())
		}
		book.insert(acc)
	}

	for _, raw := range container.Transactions {
		var rec transactionRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCorruptStorage, err)
		}
		cur := rec.Currency
		if cur == "" {
			cur = book.currency
		}
		book.Record(rec.Number, rec.Type, M(rec.Amount, cur), rec.Date)
	}

	return book, nil
}

// decodeAccount reconstructs one account from its raw record, selecting the
// variant by the account_type tag.
func decodeAccount(raw json.RawMessage, fallbackCurrency string) (Account, error) {
	var identifier struct {
		Type AccountType `json:"account_type"`
	}
	if err := json.Unmarshal(raw, &identifier); err != nil {
		return nil, fmt.Errorf("could not identify account type in %q: %w", string(raw), err)
	}

	switch identifier.Type {
	case TypeSaving:
		var temp struct {
			accountRecord
			Rate         float64 `json:"interest_rate"`
			LastInterest Date    `json:"last_interest_date"`
		}
		if err := json.Unmarshal(raw, &temp); err != nil {
			return nil, err
		}
		acc := NewSavingAccount(temp.Number, temp.Holder, temp.money(fallbackCurrency), temp.Created, Percent(temp.Rate), temp.LastInterest)
		acc.hash = temp.Password
		return acc, nil

	case TypeChecking:
		var temp struct {
			accountRecord
			Overdraft decimal.Decimal `json:"overdraft_limit"`
		}
		if err := json.Unmarshal(raw, &temp); err != nil {
			return nil, err
		}
		overdraft := M(temp.Overdraft, temp.money(fallbackCurrency).Currency())
		acc := NewCheckingAccount(temp.Number, temp.Holder, temp.money(fallbackCurrency), temp.Created, overdraft)
		acc.hash = temp.Password
		return acc, nil

	case TypeBase:
		var temp accountRecord
		if err := json.Unmarshal(raw, &temp); err != nil {
			return nil, err
		}
		acc := NewBaseAccount(temp.Number, temp.Holder, temp.money(fallbackCurrency), temp.Created)
		acc.hash = temp.Password
		return acc, nil

	default:
		return nil, fmt.Errorf("unknown account type: %q", identifier.Type)
	}
}

// EncodeBook writes the whole book to w as one indented JSON container.
// Accounts are written in book order, transactions in recorded order.
func EncodeBook(w io.Writer, b *Book) error {
	accounts := b.accounts
	if accounts == nil {
		accounts = []Account{}
	}
	transactions := b.transactions
	if transactions == nil {
		transactions = []Transaction{}
	}

	var ow jsonObjectWriter
	ow.Append("accounts", accounts)
	ow.Append("transactions", transactions)
	data, err := ow.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal book: %w", err)
	}

	var indented bytes.Buffer
	if err := json.Indent(&indented, data, "", "    "); err != nil {
		return fmt.Errorf("failed to indent book: %w", err)
	}
	indented.WriteByte('\n')

	if _, err := w.Write(indented.Bytes()); err != nil {
		return fmt.Errorf("failed to write book: %w", err)
	}
	return nil
}
