package bankbook

// accrualPeriodDays is the minimum elapsed time before interest is due.
const accrualPeriodDays = 365

// AccrueInterest computes the interest due on a balance given its yearly
// rate, the date interest was last applied, and today.
//
// When at least 365 days have elapsed it returns balance × rate / 100,
// rounded to the currency fraction, otherwise zero. The rounding keeps the
// in-memory balance identical to what the persisted record holds. The
// accrual is single-shot: a balance left unattended for several years still
// earns exactly one period of interest, there is no compounding of missed
// periods.
func AccrueInterest(balance Money, rate Percent, last, today Date) Money {
	if today.Sub(last) < accrualPeriodDays {
		return M(0, balance.Currency())
	}
	return balance.Rate(rate).Round()
}

// Accrue applies due interest to the account: the balance grows by the
// returned amount and LastInterest jumps to today. It returns zero money and
// leaves the account untouched when no full period has elapsed.
func (a *SavingAccount) Accrue(today Date) Money {
	if today.Sub(a.lastInterest) < accrualPeriodDays {
		return M(0, a.bal.Currency())
	}
	interest := a.bal.Rate(a.rate).Round()
	a.bal = a.bal.Add(interest)
	a.lastInterest = today
	return interest
}
