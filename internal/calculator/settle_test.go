package calculator

import (
	"math"
	"testing"

	"github.com/mmynk/fairshare/internal/models"
)

func balance(id, name string, net float64) MemberBalance {
	return MemberBalance{MemberID: id, MemberName: name, Net: net}
}

// applyPlan executes every transfer against a copy of the balances and
// returns the resulting nets keyed by member ID.
func applyPlan(balances []MemberBalance, plan []Transfer) map[string]float64 {
	nets := make(map[string]float64, len(balances))
	for _, b := range balances {
		nets[b.MemberID] = b.Net
	}
	for _, tr := range plan {
		nets[tr.FromID] += tr.Amount
		nets[tr.ToID] -= tr.Amount
	}
	return nets
}

func TestPlanSettlements(t *testing.T) {
	tests := []struct {
		name         string
		balances     []MemberBalance
		validateFunc func(t *testing.T, plan []Transfer)
	}{
		{
			name: "single debtor pays single creditor",
			balances: []MemberBalance{
				balance("a", "Alice", 10.00),
				balance("b", "Bob", -10.00),
			},
			validateFunc: func(t *testing.T, plan []Transfer) {
				if len(plan) != 1 {
					t.Fatalf("got %d transfers, want 1", len(plan))
				}
				tr := plan[0]
				if tr.FromName != "Bob" || tr.ToName != "Alice" || tr.Amount != 10.00 {
					t.Errorf("transfer = %+v, want Bob -> Alice 10.00", tr)
				}
			},
		},
		{
			name: "two debtors one creditor is n-1 transfers",
			balances: []MemberBalance{
				balance("a", "Alice", 20.00),
				balance("b", "Bob", -10.00),
				balance("c", "Carol", -10.00),
			},
			validateFunc: func(t *testing.T, plan []Transfer) {
				if len(plan) != 2 {
					t.Fatalf("got %d transfers, want 2", len(plan))
				}
				// Equal debts tie-break by input order: Bob first.
				if plan[0].FromName != "Bob" || plan[0].ToName != "Alice" || plan[0].Amount != 10.00 {
					t.Errorf("plan[0] = %+v, want Bob -> Alice 10.00", plan[0])
				}
				if plan[1].FromName != "Carol" || plan[1].ToName != "Alice" || plan[1].Amount != 10.00 {
					t.Errorf("plan[1] = %+v, want Carol -> Alice 10.00", plan[1])
				}
			},
		},
		{
			name: "deepest debt matches largest credit first",
			balances: []MemberBalance{
				balance("a", "Alice", 5.00),
				balance("b", "Bob", -25.00),
				balance("c", "Carol", 30.00),
				balance("d", "Dave", -10.00),
			},
			validateFunc: func(t *testing.T, plan []Transfer) {
				if len(plan) != 3 {
					t.Fatalf("got %d transfers, want 3: %+v", len(plan), plan)
				}
				if plan[0].FromName != "Bob" || plan[0].ToName != "Carol" || plan[0].Amount != 25.00 {
					t.Errorf("plan[0] = %+v, want Bob -> Carol 25.00", plan[0])
				}
				if plan[1].FromName != "Dave" || plan[1].ToName != "Carol" || plan[1].Amount != 5.00 {
					t.Errorf("plan[1] = %+v, want Dave -> Carol 5.00", plan[1])
				}
				if plan[2].FromName != "Dave" || plan[2].ToName != "Alice" || plan[2].Amount != 5.00 {
					t.Errorf("plan[2] = %+v, want Dave -> Alice 5.00", plan[2])
				}
			},
		},
		{
			name: "all settled yields empty plan",
			balances: []MemberBalance{
				balance("a", "Alice", 0),
				balance("b", "Bob", 0),
			},
			validateFunc: func(t *testing.T, plan []Transfer) {
				if len(plan) != 0 {
					t.Errorf("got %d transfers, want 0", len(plan))
				}
			},
		},
		{
			name:     "empty input yields empty plan",
			balances: nil,
			validateFunc: func(t *testing.T, plan []Transfer) {
				if len(plan) != 0 {
					t.Errorf("got %d transfers, want 0", len(plan))
				}
			},
		},
		{
			name: "lone creditor from rounding residue suggests nothing",
			balances: []MemberBalance{
				balance("a", "Alice", 0.02),
				balance("b", "Bob", 0),
			},
			validateFunc: func(t *testing.T, plan []Transfer) {
				if len(plan) != 0 {
					t.Errorf("got %d transfers, want 0: %+v", len(plan), plan)
				}
			},
		},
		{
			name: "sub-cent nets count as settled",
			balances: []MemberBalance{
				balance("a", "Alice", 0.005),
				balance("b", "Bob", -0.005),
			},
			validateFunc: func(t *testing.T, plan []Transfer) {
				if len(plan) != 0 {
					t.Errorf("got %d transfers, want 0: %+v", len(plan), plan)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validateFunc(t, PlanSettlements(tt.balances))
		})
	}
}

func TestPlanSettlementsProperties(t *testing.T) {
	balances := []MemberBalance{
		balance("a", "Alice", 36.67),
		balance("b", "Bob", -12.34),
		balance("c", "Carol", -4.99),
		balance("d", "Dave", -19.34),
		balance("e", "Eve", 0),
	}

	plan := PlanSettlements(balances)

	t.Run("executing the plan settles everyone", func(t *testing.T) {
		nets := applyPlan(balances, plan)
		for id, net := range nets {
			if math.Abs(net) >= 0.01 {
				t.Errorf("member %s left with net %v after executing plan", id, net)
			}
		}
	})

	t.Run("transfer count is at most nonzero minus one", func(t *testing.T) {
		nonzero := 0
		for _, b := range balances {
			if math.Abs(b.Net) >= 0.01 {
				nonzero++
			}
		}
		if len(plan) > nonzero-1 {
			t.Errorf("%d transfers for %d non-settled members", len(plan), nonzero)
		}
	})

	t.Run("input balances are not mutated", func(t *testing.T) {
		if balances[0].Net != 36.67 || balances[1].Net != -12.34 {
			t.Errorf("input mutated: %+v", balances)
		}
	})
}

func TestPlanSettlementsFromGroupBalances(t *testing.T) {
	// End to end through the engine: expenses -> balances -> plan.
	members := []models.Member{member("a", "Alice"), member("b", "Bob"), member("c", "Carol")}
	expenses := []models.Expense{expense("a", 30.00)}

	sheet := GroupBalances(members, expenses)
	plan := PlanSettlements(sheet.Balances)

	if len(plan) != 2 {
		t.Fatalf("got %d transfers, want 2: %+v", len(plan), plan)
	}
	nets := applyPlan(sheet.Balances, plan)
	for id, net := range nets {
		if math.Abs(net) >= 0.01 {
			t.Errorf("member %s left with net %v", id, net)
		}
	}
}
