// Package calculator implements the ledger engine: balance computation,
// split derivation, and settlement planning. Everything here is a pure
// function over snapshots supplied by the caller; the package holds no state
// and never touches storage.
package calculator

import (
	"math"

	"github.com/mmynk/fairshare/internal/models"
)

// settleEpsilon is the magnitude below which a net balance counts as zero.
// Nets are rounded to currency precision, so anything under one cent is
// floating-point noise rather than real debt.
const settleEpsilon = 0.01

// MemberBalance is the computed balance for one current group member.
type MemberBalance struct {
	MemberID   string
	MemberName string
	Paid       float64 // Total amount this member paid across all expenses
	Net        float64 // Positive = is owed money, negative = owes money
}

// BalanceSheet is the full balance picture for a group at one snapshot.
type BalanceSheet struct {
	TotalSpent  float64
	MemberCount int
	FairShare   float64
	Balances    []MemberBalance
}

// GroupBalances reduces a group's expense history and current membership into
// one net balance per member, using retroactive equal sharing: every current
// member owes an equal share of everything the group has ever spent,
// regardless of when they joined.
//
// Algorithm:
//   - total = sum of all expense amounts
//   - fair_share = total / len(members)
//   - net = round(paid - fair_share, 2) for each current member
//
// An expense whose payer is no longer a current member still counts toward
// total (and so toward everyone's fair share), but the departed payer gets no
// balance row; their paid credit simply drops out of the output.
//
// With no members the result has an empty Balances slice and zero totals.
// The function is deterministic for a given snapshot and keeps the members'
// input order in its output.
func GroupBalances(members []models.Member, expenses []models.Expense) BalanceSheet {
	sheet := BalanceSheet{MemberCount: len(members)}

	paidBy := make(map[string]float64, len(members))
	for _, e := range expenses {
		sheet.TotalSpent += e.Amount
		paidBy[e.PayerID] += e.Amount
	}

	if len(members) == 0 {
		return sheet
	}
	sheet.FairShare = sheet.TotalSpent / float64(len(members))

	sheet.Balances = make([]MemberBalance, 0, len(members))
	for _, m := range members {
		paid := paidBy[m.ID]
		sheet.Balances = append(sheet.Balances, MemberBalance{
			MemberID:   m.ID,
			MemberName: m.Name,
			Paid:       paid,
			Net:        roundCents(paid - sheet.FairShare),
		})
	}

	return sheet
}

// roundCents rounds a monetary value to two decimal places.
// Applied only at computation boundaries; intermediate sums stay unrounded so
// rounding error does not compound across expenses.
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
