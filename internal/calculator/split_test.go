package calculator

import (
	"math"
	"testing"

	"github.com/mmynk/fairshare/internal/models"
)

func TestEqualSplits(t *testing.T) {
	tests := []struct {
		name         string
		amount       float64
		payerID      string
		members      []models.Member
		validateFunc func(t *testing.T, splits []models.Split)
	}{
		{
			name:    "two members one row for the non-payer",
			amount:  20.00,
			payerID: "a",
			members: []models.Member{member("a", "Alice"), member("b", "Bob")},
			validateFunc: func(t *testing.T, splits []models.Split) {
				if len(splits) != 1 {
					t.Fatalf("got %d splits, want 1", len(splits))
				}
				if splits[0].MemberID != "b" {
					t.Errorf("split member = %s, want b", splits[0].MemberID)
				}
				if splits[0].Owed != 10.00 {
					t.Errorf("owed = %v, want 10.00", splits[0].Owed)
				}
			},
		},
		{
			name:    "three-way split rounds to cents",
			amount:  10.00,
			payerID: "a",
			members: []models.Member{member("a", "Alice"), member("b", "Bob"), member("c", "Carol")},
			validateFunc: func(t *testing.T, splits []models.Split) {
				// round(10/3, 2) = 3.33; the two rows sum to 6.66, not
				// 6.67. The residual cent is accepted, not redistributed.
				if len(splits) != 2 {
					t.Fatalf("got %d splits, want 2", len(splits))
				}
				for _, s := range splits {
					if math.Abs(s.Owed-3.33) > 0.001 {
						t.Errorf("owed = %v, want 3.33", s.Owed)
					}
					if s.MemberID == "a" {
						t.Error("payer must not get a split row")
					}
				}
			},
		},
		{
			name:    "single member produces no rows",
			amount:  15.00,
			payerID: "a",
			members: []models.Member{member("a", "Alice")},
			validateFunc: func(t *testing.T, splits []models.Split) {
				if len(splits) != 0 {
					t.Errorf("got %d splits, want 0", len(splits))
				}
			},
		},
		{
			name:    "no members produces no rows",
			amount:  15.00,
			payerID: "a",
			members: nil,
			validateFunc: func(t *testing.T, splits []models.Split) {
				if len(splits) != 0 {
					t.Errorf("got %d splits, want 0", len(splits))
				}
			},
		},
		{
			name:    "payer outside the member list still splits by n",
			amount:  30.00,
			payerID: "z",
			members: []models.Member{member("a", "Alice"), member("b", "Bob"), member("c", "Carol")},
			validateFunc: func(t *testing.T, splits []models.Split) {
				// Share is amount / member count, not amount / (rows + 1).
				if len(splits) != 3 {
					t.Fatalf("got %d splits, want 3", len(splits))
				}
				for _, s := range splits {
					if s.Owed != 10.00 {
						t.Errorf("owed = %v, want 10.00", s.Owed)
					}
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			splits := EqualSplits("e1", tt.amount, tt.payerID, tt.members)
			for _, s := range splits {
				if s.ExpenseID != "e1" {
					t.Errorf("split expense = %s, want e1", s.ExpenseID)
				}
			}
			tt.validateFunc(t, splits)
		})
	}
}
