package bankbook

import "encoding/json"

// AccountType is a typed string discriminating the account variants in the
// persisted container. The base variant has no tag, matching legacy files.
type AccountType string

const (
	TypeBase     AccountType = ""
	TypeSaving   AccountType = "Saving"
	TypeChecking AccountType = "Checking"
)

// Account defines the common interface for the closed set of account
// variants {base, saving, checking} kept in a Book.
//
// Balance mutations go through Deposit and Withdraw only. Recording the
// matching transaction is the book's responsibility, not the account's.
type Account interface {
	Number() string   // opaque unique identifier, the primary key
	Holder() string   // display name of the account holder
	Balance() Money   // current balance
	Kind() AccountType
	Opened() Date // creation date, immutable
	// PasswordHash returns the stored credential hash, verbatim. Never the
	// plaintext.
	PasswordHash() string

	// Deposit increases the balance by amount and returns the new balance.
	// It fails with ErrInvalidAmount when amount is not positive.
	Deposit(amount Money) (Money, error)
	// Withdraw decreases the balance by amount and returns the new balance.
	// The base and saving variants fail with ErrInsufficientFunds when the
	// balance does not cover the amount; the checking variant allows the
	// balance to go negative down to its overdraft limit and fails with
	// ErrOverdraftExceeded beyond that.
	Withdraw(amount Money) (Money, error)

	// SetPassword hashes plaintext with h and stores the hash. A value that
	// already looks like a hash is stored verbatim, so reconstructing an
	// account from storage never re-hashes. Fails with ErrEmptyPassword.
	SetPassword(h PasswordHasher, plaintext string) error
	// VerifyPassword reports whether candidate matches the stored hash.
	VerifyPassword(h PasswordHasher, candidate string) bool

	json.Marshaler
}

// baseAccount carries the fields shared by every variant.
type baseAccount struct {
	number string
	holder string
	bal    Money
	kind   AccountType
	opened Date
	hash   string
}

func (a baseAccount) Number() string     { return a.number }
func (a baseAccount) Holder() string     { return a.holder }
func (a baseAccount) Balance() Money     { return a.bal }
func (a baseAccount) Kind() AccountType  { return a.kind }
func (a baseAccount) Opened() Date       { return a.opened }
func (a baseAccount) PasswordHash() string { return a.hash }

func (a *baseAccount) Deposit(amount Money) (Money, error) {
	if !amount.IsPositive() {
		return a.bal, ErrInvalidAmount
	}
	a.bal = a.bal.Add(amount)
	return a.bal, nil
}

func (a *baseAccount) Withdraw(amount Money) (Money, error) {
	if !amount.IsPositive() {
		return a.bal, ErrInvalidAmount
	}
	if a.bal.LessThan(amount) {
		return a.bal, ErrInsufficientFunds
	}
	a.bal = a.bal.Sub(amount)
	return a.bal, nil
}

func (a *baseAccount) SetPassword(h PasswordHasher, plaintext string) error {
	if plaintext == "" {
		return ErrEmptyPassword
	}
	if looksHashed(plaintext) {
		// Already a hash, coming from storage. Store verbatim.
		a.hash = plaintext
		return nil
	}
	hash, err := h.Hash(plaintext)
	if err != nil {
		return err
	}
	a.hash = hash
	return nil
}

func (a *baseAccount) VerifyPassword(h PasswordHasher, candidate string) bool {
	return h.Verify(candidate, a.hash)
}

// marshal writes the shared fields in canonical key order.
func (a baseAccount) marshal() *jsonObjectWriter {
	w := &jsonObjectWriter{}
	w.Append("account_number", a.number)
	w.Append("holder_name", a.holder)
	w.Append("balance", a.bal.value.Round(int32(a.bal.currency().Fraction)))
	w.Optional("currency", a.bal.cur)
	w.Optional("account_type", a.kind)
	w.Append("creation_date", a.opened)
	w.Append("account_password", a.hash)
	return w
}

// BaseAccount is the plain variant: its balance never goes below zero.
type BaseAccount struct {
	baseAccount
}

// NewBaseAccount creates a plain account.
func NewBaseAccount(number, holder string, balance Money, opened Date) *BaseAccount {
	return &BaseAccount{baseAccount{number: number, holder: holder, bal: balance, kind: TypeBase, opened: opened}}
}

func (a *BaseAccount) MarshalJSON() ([]byte, error) {
	return a.marshal().MarshalJSON()
}

// SavingAccount is the interest-bearing variant. Interest accrues once per
// load when at least a full year has elapsed since LastInterest.
type SavingAccount struct {
	baseAccount
	rate         Percent
	lastInterest Date
}

// NewSavingAccount creates a saving account. lastInterest is the date the
// interest was last applied, usually the opening date for a new account.
func NewSavingAccount(number, holder string, balance Money, opened Date, rate Percent, lastInterest Date) *SavingAccount {
	return &SavingAccount{
		baseAccount:  baseAccount{number: number, holder: holder, bal: balance, kind: TypeSaving, opened: opened},
		rate:         rate,
		lastInterest: lastInterest,
	}
}

// InterestRate returns the yearly interest rate.
func (a *SavingAccount) InterestRate() Percent { return a.rate }

// LastInterest returns the date interest was last applied. It only ever
// advances forward, in full-year jumps.
func (a *SavingAccount) LastInterest() Date { return a.lastInterest }

func (a *SavingAccount) MarshalJSON() ([]byte, error) {
	w := a.marshal()
	w.Append("interest_rate", float64(a.rate))
	w.Append("last_interest_date", a.lastInterest)
	return w.MarshalJSON()
}

// CheckingAccount is the overdraft-enabled variant: its balance may go
// negative, but never below the negated overdraft limit.
type CheckingAccount struct {
	baseAccount
	overdraft Money
}

// NewCheckingAccount creates a checking account with the given overdraft limit.
func NewCheckingAccount(number, holder string, balance Money, opened Date, overdraft Money) *CheckingAccount {
	return &CheckingAccount{
		baseAccount: baseAccount{number: number, holder: holder, bal: balance, kind: TypeChecking, opened: opened},
		overdraft:   overdraft,
	}
}

// OverdraftLimit returns how far below zero the balance may go.
func (a *CheckingAccount) OverdraftLimit() Money { return a.overdraft }

// Withdraw overrides the base rule: the balance may go negative down to
// -overdraft.
func (a *CheckingAccount) Withdraw(amount Money) (Money, error) {
	if !amount.IsPositive() {
		return a.bal, ErrInvalidAmount
	}
	if amount.GreaterThan(a.bal.Add(a.overdraft)) {
		return a.bal, ErrOverdraftExceeded
	}
	a.bal = a.bal.Sub(amount)
	return a.bal, nil
}

func (a *CheckingAccount) MarshalJSON() ([]byte, error) {
	w := a.marshal()
	w.Append("overdraft_limit", a.overdraft.value.Round(int32(a.overdraft.currency().Fraction)))
	return w.MarshalJSON()
}

// the three variants are the whole closed set.
var (
	_ Account = (*BaseAccount)(nil)
	_ Account = (*SavingAccount)(nil)
	_ Account = (*CheckingAccount)(nil)
)
