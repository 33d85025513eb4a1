package calculator

import (
	"math"
	"sort"
)

// Transfer is one suggested peer-to-peer payment in a settlement plan.
type Transfer struct {
	FromID   string // Member who pays
	FromName string
	ToID     string // Member who gets paid
	ToName   string
	Amount   float64
}

// PlanSettlements consumes a balance snapshot and produces an ordered list of
// pairwise transfers that settles all debts with a minimal number of
// payments: at most n-1 transfers for n members with non-zero balances.
//
// Algorithm (greedy two-pointer matching):
//   - Partition balances into debtors (net < 0), creditors (net > 0) and
//     settled (|net| < epsilon). If either side is empty, the plan is empty:
//     a lone non-empty side can only come from rounding residue and must not
//     produce a transfer.
//   - Sort debtors ascending by net (deepest debt first) and creditors
//     descending (largest credit first). Sorting is stable, so ties keep the
//     input order; the pairing is deterministic.
//   - Repeatedly transfer min(|debtor|, creditor) between the heads of the
//     two lists, advancing past a member once their remainder drops below
//     epsilon. Each step fully settles at least one side, so the loop
//     terminates after at most len(debtors)+len(creditors)-1 transfers.
//
// Emitted amounts are rounded to cents; the running remainders are not, so
// rounding never compounds. Leftover sub-epsilon residue from cross-rounding
// is dropped rather than redistributed. The input slice is never mutated.
//
// The plan is *a* minimal one under the stated ordering, not the unique
// minimal solution when ties allow several.
func PlanSettlements(balances []MemberBalance) []Transfer {
	type side struct {
		id   string
		name string
		net  float64
	}

	var debtors, creditors []side
	for _, b := range balances {
		switch {
		case math.Abs(b.Net) < settleEpsilon:
			// settled, nothing to do
		case b.Net < 0:
			debtors = append(debtors, side{id: b.MemberID, name: b.MemberName, net: b.Net})
		default:
			creditors = append(creditors, side{id: b.MemberID, name: b.MemberName, net: b.Net})
		}
	}

	if len(debtors) == 0 || len(creditors) == 0 {
		return nil
	}

	sort.SliceStable(debtors, func(a, b int) bool { return debtors[a].net < debtors[b].net })
	sort.SliceStable(creditors, func(a, b int) bool { return creditors[a].net > creditors[b].net })

	var plan []Transfer
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		amount := math.Min(-debtors[i].net, creditors[j].net)
		if amount >= settleEpsilon {
			plan = append(plan, Transfer{
				FromID:   debtors[i].id,
				FromName: debtors[i].name,
				ToID:     creditors[j].id,
				ToName:   creditors[j].name,
				Amount:   roundCents(amount),
			})
		}

		debtors[i].net += amount
		creditors[j].net -= amount

		if math.Abs(debtors[i].net) < settleEpsilon {
			i++
		}
		if math.Abs(creditors[j].net) < settleEpsilon {
			j++
		}
	}

	return plan
}
