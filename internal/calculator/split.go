package calculator

import "github.com/mmynk/fairshare/internal/models"

// EqualSplits derives the per-member owed rows for an expense: an equal split
// of amount among the given members, with the payer excluded (their share is
// implicitly covered by having paid the full amount).
//
// Each non-payer owes round(amount/n, 2) where n is the member count at write
// time. The shares are a snapshot for audit display only; balance
// computation rederives fair shares from current membership, so these rows go
// stale when membership changes and are never trued up.
//
// With one member or none there is nobody to owe anything; the result is nil.
// Note that the rounded shares need not sum to the amount exactly
// (10.00 across three members yields two rows of 3.33); the residual is
// accepted, not redistributed.
func EqualSplits(expenseID string, amount float64, payerID string, members []models.Member) []models.Split {
	n := len(members)
	if n <= 1 {
		return nil
	}

	share := roundCents(amount / float64(n))
	splits := make([]models.Split, 0, n-1)
	for _, m := range members {
		if m.ID == payerID {
			continue
		}
		splits = append(splits, models.Split{
			ExpenseID: expenseID,
			MemberID:  m.ID,
			Owed:      share,
		})
	}
	return splits
}
