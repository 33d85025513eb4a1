package models

// Settlement represents a recorded payment between two group members.
// Settlements are history only: the engine never reads them back when
// computing balances or planning transfers.
type Settlement struct {
	// ID is the unique identifier for the settlement (UUID format).
	ID string

	// GroupID is the group this settlement belongs to.
	GroupID string

	// PayerID is the member who paid (debtor settling up).
	PayerID string

	// ReceiverID is the member who received payment (creditor being paid).
	ReceiverID string

	// Amount is the payment amount.
	Amount float64

	// Note is an optional description for the settlement.
	Note string

	// CreatedAt is the Unix timestamp when the settlement was recorded.
	CreatedAt int64
}
