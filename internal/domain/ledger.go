package domain

import "time"

type TransactionType string

const (
	TransactionTypeDealCreated    TransactionType = "deal_created"
	TransactionTypeDealDeleted    TransactionType = "deal_deleted"
	TransactionTypeReceiptCreated TransactionType = "receipt_created"
	TransactionTypeReceiptDeleted TransactionType = "receipt_deleted"
)

// CustomerTransaction is an append-only audit row for a customer balance
// mutation. The insert is best-effort: a failed append does not roll back
// the balance write, so the log can lag the authoritative balance.
type CustomerTransaction struct {
	ID            int64           `json:"id"`
	CustomerID    int64           `json:"customer_id"`
	Type          TransactionType `json:"type"`
	Amount        float64         `json:"amount"` // signed, as applied to the balance
	BalanceBefore float64         `json:"balance_before"`
	BalanceAfter  float64         `json:"balance_after"`
	ReferenceID   string          `json:"reference_id"`
	Description   string          `json:"description"`
	CreatedAt     time.Time       `json:"created_at"`
}

// BalanceDiscrepancy records a mismatch between a customer's stored balance
// and the sum of its transaction log, found by the reconciliation job.
type BalanceDiscrepancy struct {
	ID            int64     `json:"id"`
	CustomerID    int64     `json:"customer_id"`
	StoredBalance float64   `json:"stored_balance"`
	LedgerBalance float64   `json:"ledger_balance"`
	Delta         float64   `json:"delta"`
	DetectedAt    time.Time `json:"detected_at"`
}
