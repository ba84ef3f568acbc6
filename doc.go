// Package bankbook implements a single-user bank ledger: a collection of
// accounts (plain, interest-bearing saving, and overdraft-enabled checking
// variants), the balance mutations applied to them, an append-only
// transaction history, and the flat-file persistence that round-trips the
// whole state, credentials included.
//
// The package is the domain core: it communicates through values and
// sentinel errors and never formats text for the terminal. Rendering lives
// in the renderer package, the CLI in cmd.
package bankbook
