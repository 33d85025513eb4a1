// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/fairshare/internal/models"
)

// ErrNotFound is returned when a requested record does not exist.
// Implementations wrap it with the record kind and ID.
var ErrNotFound = errors.New("not found")

// Store defines the persistence operations the ledger needs. It bundles the
// two read ports the engine consumes (current group membership and the
// group's expense history) with the write operations of the surrounding
// CRUD surface. The abstraction allows swapping storage backends without
// changing the service layer.
//
// The engine offers no transactional isolation across the two read ports:
// balances are computed from whatever snapshot GetGroupMembers and
// GetGroupExpenses return. Any stronger consistency is the store's business.
type Store interface {
	// CreateGroup persists a new group. The group.ID field will be
	// populated by the store if empty.
	CreateGroup(ctx context.Context, group *models.Group) error

	// GetGroup retrieves a group by its ID.
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)

	// ListGroups retrieves all groups.
	ListGroups(ctx context.Context) ([]*models.Group, error)

	// CreateMember persists a new member. The member.ID field will be
	// populated by the store if empty.
	CreateMember(ctx context.Context, member *models.Member) error

	// GetMember retrieves a member by its ID.
	GetMember(ctx context.Context, memberID string) (*models.Member, error)

	// AddGroupMembers adds the given members to a group. Members already in
	// the group are ignored.
	AddGroupMembers(ctx context.Context, groupID string, memberIDs []string) error

	// RemoveGroupMember removes a member from a group. The member record
	// itself and any expenses they paid are untouched.
	RemoveGroupMember(ctx context.Context, groupID, memberID string) error

	// GetGroupMembers returns the current members of a group, ordered by
	// name. This is the membership snapshot the engine computes against;
	// there is no historical versioning.
	GetGroupMembers(ctx context.Context, groupID string) ([]models.Member, error)

	// CreateExpense persists an expense together with its derived split rows
	// in a single transaction: one expense row plus zero-or-more split rows,
	// one per non-payer member.
	CreateExpense(ctx context.Context, expense *models.Expense, splits []models.Split) error

	// UpdateExpense updates an expense and replaces all of its split rows in
	// a single transaction. Old rows never coexist with new ones.
	UpdateExpense(ctx context.Context, expense *models.Expense, splits []models.Split) error

	// DeleteExpense removes an expense and its split rows.
	DeleteExpense(ctx context.Context, expenseID string) error

	// GetExpense retrieves an expense by its ID.
	GetExpense(ctx context.Context, expenseID string) (*models.Expense, error)

	// GetGroupExpenses returns all expenses for a group, oldest first.
	GetGroupExpenses(ctx context.Context, groupID string) ([]models.Expense, error)

	// GetExpenseSplits returns the persisted split rows for an expense.
	// These are the write-time audit rows, not recomputed shares.
	GetExpenseSplits(ctx context.Context, expenseID string) ([]models.Split, error)

	// CreateSettlement records a payment made between two members.
	CreateSettlement(ctx context.Context, settlement *models.Settlement) error

	// ListGroupSettlements returns the recorded settlements for a group,
	// newest first.
	ListGroupSettlements(ctx context.Context, groupID string) ([]*models.Settlement, error)

	// Close releases any resources held by the store.
	Close() error
}
