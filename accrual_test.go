package bankbook

import (
	"testing"
	"time"
)

func TestAccrueInterest(t *testing.T) {
	last := NewDate(2024, time.March, 1)

	testCases := []struct {
		name    string
		balance Money
		rate    Percent
		today   Date
		want    Money
	}{
		{
			name:    "exactly one year elapsed",
			balance: M(1000, "USD"), rate: 5,
			today: last.Add(365),
			want:  M(50, "USD"),
		},
		{
			name:    "one day short",
			balance: M(1000, "USD"), rate: 5,
			today: last.Add(364),
			want:  M(0, "USD"),
		},
		{
			name:    "several missed periods accrue once",
			balance: M(1000, "USD"), rate: 5,
			today: last.Add(3 * 365),
			want:  M(50, "USD"),
		},
		{
			name:    "zero rate",
			balance: M(1000, "USD"), rate: 0,
			today: last.Add(365),
			want:  M(0, "USD"),
		},
		{
			// 100.10 × 3% is 3.003; the sub-cent part is rounded away so
			// the balance stays representable in the persisted record.
			name:    "interest rounds to the currency fraction",
			balance: M(100.10, "USD"), rate: 3,
			today: last.Add(365),
			want:  M(3, "USD"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := AccrueInterest(tc.balance, tc.rate, last, tc.today)
			if !got.Equal(tc.want) {
				t.Errorf("AccrueInterest() = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestSavingAccount_Accrue(t *testing.T) {
	last := NewDate(2024, time.March, 1)
	today := last.Add(365)

	acc := NewSavingAccount("S1", "Ann", M(1000, "USD"), last, 5, last)
	interest := acc.Accrue(today)

	if !interest.Equal(M(50, "USD")) {
		t.Fatalf("Accrue() = %s, want %s", interest, M(50, "USD"))
	}
	if !acc.Balance().Equal(M(1050, "USD")) {
		t.Errorf("Accrue() balance = %s, want %s", acc.Balance(), M(1050, "USD"))
	}
	if acc.LastInterest() != today {
		t.Errorf("Accrue() last interest date = %s, want %s", acc.LastInterest(), today)
	}

	// A second run on the same day must be a no-op: the date advanced.
	if again := acc.Accrue(today); !again.IsZero() {
		t.Errorf("second Accrue() = %s, want zero", again)
	}
	if !acc.Balance().Equal(M(1050, "USD")) {
		t.Errorf("second Accrue() mutated balance: %s", acc.Balance())
	}
}

func TestSavingAccount_Accrue_NotDue(t *testing.T) {
	last := NewDate(2024, time.March, 1)
	acc := NewSavingAccount("S1", "Ann", M(1000, "USD"), last, 5, last)

	if interest := acc.Accrue(last.Add(364)); !interest.IsZero() {
		t.Fatalf("Accrue() = %s, want zero", interest)
	}
	if !acc.Balance().Equal(M(1000, "USD")) {
		t.Errorf("Accrue() mutated balance: %s", acc.Balance())
	}
	if acc.LastInterest() != last {
		t.Errorf("Accrue() advanced the last interest date to %s", acc.LastInterest())
	}
}

func TestBook_ApplyInterest(t *testing.T) {
	last := NewDate(2024, time.March, 1)
	today := last.Add(365)
	book := newTestBook(t, WithClock(func() Date { return today }))

	saving := NewSavingAccount("S1", "Ann", M(1000, "USD"), last, 5, last)
	other := NewBaseAccount("A1", "Jim", M(200, "USD"), last)
	notDue := NewSavingAccount("S2", "Bob", M(500, "USD"), last, 5, today.Add(-10))
	book.insert(saving)
	book.insert(other)
	book.insert(notDue)

	accrued := book.ApplyInterest()

	if len(accrued) != 1 {
		t.Fatalf("ApplyInterest() recorded %d transactions, want 1", len(accrued))
	}
	want := Transaction{AccountNumber: "S1", Type: TxInterest, Amount: M(50, "USD"), Date: today}
	if !accrued[0].Equal(want) {
		t.Errorf("ApplyInterest() recorded %+v, want %+v", accrued[0], want)
	}
	if !saving.Balance().Equal(M(1050, "USD")) {
		t.Errorf("ApplyInterest() balance = %s, want %s", saving.Balance(), M(1050, "USD"))
	}
	if !notDue.Balance().Equal(M(500, "USD")) {
		t.Errorf("ApplyInterest() accrued on an account not yet due: %s", notDue.Balance())
	}
}
