package models

// Expense represents a payment made by one member on behalf of a group.
// An expense is immutable once written except through an explicit edit,
// which regenerates its split rows from the membership at edit time.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// GroupID is the group this expense belongs to.
	GroupID string

	// Description is the human-readable label (e.g., "Dinner", "Uber").
	Description string

	// Amount is the full expense amount paid by the payer.
	// Always positive; two-decimal currency semantics.
	Amount float64

	// PayerID is the member who paid the full amount.
	PayerID string

	// Date is the expense date in ISO 8601 (YYYY-MM-DD) format.
	Date string

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64
}

// Split records how much one member owed for an expense at the time it was
// written. The payer never has a split row. Splits are an audit artifact:
// balance computation ignores them and rederives shares from current
// membership, so these rows go stale when membership changes. That is
// intentional.
type Split struct {
	// ExpenseID is the expense this split belongs to.
	ExpenseID string

	// MemberID is the member who owes this share.
	MemberID string

	// Owed is this member's share of the expense, rounded to cents.
	Owed float64
}
