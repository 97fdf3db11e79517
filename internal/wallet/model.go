package wallet

// Transaction types.
const (
	TypeCredit = "Credit"
	TypeDebit  = "Debit"
)

// Transaction is one immutable wallet ledger entry. Entries are only
// ever prepended, never updated or removed.
type Transaction struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	AmountCents int64  `json:"amount_cents"`
	Note        string `json:"note"`
	Date        string `json:"date"`
}

// SeedBalanceCents is the demo wallet's opening balance.
const SeedBalanceCents int64 = 120000

// SeedTransactions returns the demo ledger, newest last in booking
// order (the ledger itself is rendered newest-first by prepending).
func SeedTransactions() []Transaction {
	return []Transaction{
		{ID: "t1", Type: TypeCredit, AmountCents: 100000, Note: "Wallet Top-up", Date: "2025-09-30"},
		{ID: "t2", Type: TypeDebit, AmountCents: 14900, Note: "Order FP00012345", Date: "2025-10-01"},
		{ID: "t3", Type: TypeDebit, AmountCents: 24900, Note: "Order FP00012346", Date: "2025-10-05"},
	}
}
