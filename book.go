package bankbook

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// Book is the aggregate root: it owns the accounts, keyed by account number,
// and the append-only transaction history. Accounts keep their insertion
// order for display grouping; a map indexes them by number for exact-match
// lookup. Account numbers are unique across the book, enforced at insertion
// only.
//
// A Book is not safe for concurrent use. The tool is a sequential,
// single-session CLI; one process owns the file at a time.
type Book struct {
	accounts     []Account
	index        map[string]Account
	transactions []Transaction

	currency string
	hasher   PasswordHasher
	today    func() Date
}

// Option configures a Book at construction.
type Option func(*Book)

// WithHasher replaces the default bcrypt credential capability.
func WithHasher(h PasswordHasher) Option { return func(b *Book) { b.hasher = h } }

// WithClock replaces the wall clock, so accrual timing is testable without
// real time passing.
func WithClock(today func() Date) Option { return func(b *Book) { b.today = today } }

// WithCurrency sets the currency all balances are kept in.
func WithCurrency(cur string) Option { return func(b *Book) { b.currency = cur } }

// NewBook creates an empty book.
func NewBook(opts ...Option) *Book {
	b := &Book{
		accounts: make([]Account, 0),
		index:    make(map[string]Account),
		currency: "USD",
		hasher:   BcryptHasher{},
		today:    Today,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Currency returns the currency all balances are kept in.
func (b *Book) Currency() string { return b.currency }

// Len returns the number of accounts in the book.
func (b *Book) Len() int { return len(b.accounts) }

// NewAccount describes the account to create. Variant-specific fields are
// read only for the matching Type.
type NewAccount struct {
	Number    string // empty to let the book generate one
	Holder    string
	Balance   Money
	Type      AccountType
	Rate      Percent // Saving: yearly interest rate, in percent
	Overdraft Money   // Checking: overdraft limit
	Password  string  // optional; hashed before storage
}

// Create constructs the requested variant, stores it, and returns it.
// It fails with ErrDuplicateAccount when the number is already taken, and
// with ErrInvalidAmount on a negative opening balance. An empty number is
// replaced by a generated one.
func (b *Book) Create(spec NewAccount) (Account, error) {
	if spec.Balance.IsNegative() {
		return nil, fmt.Errorf("opening balance %s: %w", spec.Balance, ErrInvalidAmount)
	}
	if spec.Rate < 0 {
		return nil, fmt.Errorf("interest rate %s: %w", spec.Rate, ErrInvalidAmount)
	}
	if spec.Overdraft.IsNegative() {
		return nil, fmt.Errorf("overdraft limit %s: %w", spec.Overdraft, ErrInvalidAmount)
	}
	if spec.Number == "" {
		spec.Number = uuid.NewString()
	}
	if _, exists := b.index[spec.Number]; exists {
		return nil, fmt.Errorf("account %q: %w", spec.Number, ErrDuplicateAccount)
	}

	opened := b.today()
	var acc Account
	switch spec.Type {
	case TypeSaving:
		acc = NewSavingAccount(spec.Number, spec.Holder, spec.Balance, opened, spec.Rate, opened)
	case TypeChecking:
		acc = NewCheckingAccount(spec.Number, spec.Holder, spec.Balance, opened, spec.Overdraft)
	default:
		acc = NewBaseAccount(spec.Number, spec.Holder, spec.Balance, opened)
	}

	if spec.Password != "" {
		if err := acc.SetPassword(b.hasher, spec.Password); err != nil {
			return nil, err
		}
	}

	b.insert(acc)
	return acc, nil
}

// insert appends without a uniqueness check; callers must have checked.
func (b *Book) insert(acc Account) {
	b.accounts = append(b.accounts, acc)
	b.index[acc.Number()] = acc
}

// Find returns the account with exactly this number, or ErrAccountNotFound.
func (b *Book) Find(number string) (Account, error) {
	acc, ok := b.index[number]
	if !ok {
		return nil, fmt.Errorf("account %q: %w", number, ErrAccountNotFound)
	}
	return acc, nil
}

// Authenticate returns the account when the password matches its credential,
// ErrAccessDenied otherwise.
func (b *Book) Authenticate(number, password string) (Account, error) {
	acc, err := b.Find(number)
	if err != nil {
		return nil, err
	}
	if !acc.VerifyPassword(b.hasher, password) {
		return nil, fmt.Errorf("account %q: %w", number, ErrAccessDenied)
	}
	return acc, nil
}

// Delete removes the account irrevocably from the in-memory book. The change
// reaches the file only on the next save.
func (b *Book) Delete(number string) error {
	acc, ok := b.index[number]
	if !ok {
		return fmt.Errorf("account %q: %w", number, ErrAccountNotFound)
	}
	delete(b.index, number)
	b.accounts = slices.DeleteFunc(b.accounts, func(a Account) bool { return a == acc })
	return nil
}

// checkCurrency guards the balance arithmetic, which only ever sees one
// currency per account. An amount in another currency is a recoverable
// error, never a panic.
func checkCurrency(acc Account, amount Money) error {
	cur := acc.Balance().Currency()
	if amount.Currency() == "" || cur == "" || amount.Currency() == cur {
		return nil
	}
	return fmt.Errorf("account %q holds %s, not %s: %w",
		acc.Number(), cur, amount.Currency(), ErrCurrencyMismatch)
}

// Deposit adds amount to the account and records a deposit transaction.
func (b *Book) Deposit(number string, amount Money) (Money, error) {
	acc, err := b.Find(number)
	if err != nil {
		return Money{}, err
	}
	if err := checkCurrency(acc, amount); err != nil {
		return acc.Balance(), err
	}
	balance, err := acc.Deposit(amount)
	if err != nil {
		return balance, err
	}
	b.Record(number, TxDeposit, amount, b.today())
	return balance, nil
}

// Withdraw subtracts amount from the account and records a withdraw
// transaction.
func (b *Book) Withdraw(number string, amount Money) (Money, error) {
	acc, err := b.Find(number)
	if err != nil {
		return Money{}, err
	}
	if err := checkCurrency(acc, amount); err != nil {
		return acc.Balance(), err
	}
	balance, err := acc.Withdraw(amount)
	if err != nil {
		return balance, err
	}
	b.Record(number, TxWithdraw, amount, b.today())
	return balance, nil
}

// Transfer moves amount from src to dst as one logical unit: when the
// withdraw leg fails nothing happens, no balance moves and nothing is
// recorded. A successful withdraw guarantees the deposit leg (the amount is
// already validated positive); should it ever fail anyway, the source is
// restored before returning, so the book never holds a half transfer.
func (b *Book) Transfer(srcNumber, dstNumber string, amount Money) error {
	if srcNumber == dstNumber {
		return fmt.Errorf("transfer from %q to itself: %w", srcNumber, ErrSameAccount)
	}
	src, err := b.Find(srcNumber)
	if err != nil {
		return err
	}
	dst, err := b.Find(dstNumber)
	if err != nil {
		return err
	}
	if err := checkCurrency(src, amount); err != nil {
		return err
	}
	if err := checkCurrency(dst, amount); err != nil {
		return err
	}

	if _, err := src.Withdraw(amount); err != nil {
		return err
	}
	if _, err := dst.Deposit(amount); err != nil {
		src.Deposit(amount) // restore, cannot fail for a positive amount
		return err
	}

	today := b.today()
	b.Record(srcNumber, TxWithdraw, amount, today)
	b.Record(dstNumber, TxDeposit, amount, today)
	return nil
}

// SearchByHolder returns, in book order, every account whose holder name
// starts with query, case-insensitively. An empty result is not an error.
func (b *Book) SearchByHolder(query string) []Account {
	query = strings.ToLower(query)
	var found []Account
	for _, acc := range b.accounts {
		if strings.HasPrefix(strings.ToLower(acc.Holder()), query) {
			found = append(found, acc)
		}
	}
	return found
}

// Record appends one entry to the transaction history.
func (b *Book) Record(number string, typ TxType, amount Money, on Date) {
	b.transactions = append(b.transactions, Transaction{
		AccountNumber: number,
		Type:          typ,
		Amount:        amount,
		Date:          on,
	})
}

// Accounts returns an iterator over the accounts in insertion order.
func (b *Book) Accounts() iter.Seq[Account] {
	return func(yield func(Account) bool) {
		for _, acc := range b.accounts {
			if !yield(acc) {
				return
			}
		}
	}
}

// Transactions returns an iterator over the history in recorded order.
// With no filter every entry is yielded; otherwise an entry is yielded when
// any filter accepts it.
func (b *Book) Transactions(filters ...func(Transaction) bool) iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range b.transactions {
			accept := len(filters) == 0
			for _, filter := range filters {
				if filter(tx) {
					accept = true
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, tx) {
				return
			}
		}
	}
}

// ByAccount returns a predicate that filters transactions by account number.
func ByAccount(number string) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.AccountNumber == number }
}

// ByRange returns a predicate that filters transactions by date range.
func ByRange(r Range) func(Transaction) bool {
	return func(tx Transaction) bool { return r.Contains(tx.Date) }
}

// ApplyInterest runs the accrual engine once over every saving account and
// records one synthetic interest transaction per positive accrual. It is
// meant to run exactly once per load, never on save.
func (b *Book) ApplyInterest() []Transaction {
	today := b.today()
	var accrued []Transaction
	for _, acc := range b.accounts {
		saving, ok := acc.(*SavingAccount)
		if !ok {
			continue
		}
		interest := saving.Accrue(today)
		if !interest.IsPositive() {
			continue
		}
		b.Record(saving.Number(), TxInterest, interest, today)
		accrued = append(accrued, b.transactions[len(b.transactions)-1])
	}
	return accrued
}
