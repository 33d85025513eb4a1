// Package service implements the application operations over the ledger:
// group and expense CRUD, balance queries and settlement planning. All state
// a call needs arrives as explicit parameters; nothing is read from ambient
// context.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mmynk/fairshare/internal/calculator"
	"github.com/mmynk/fairshare/internal/models"
	"github.com/mmynk/fairshare/internal/storage"
)

// Validation errors surfaced to callers. Storage failures are wrapped
// separately.
var (
	ErrEmptyName        = errors.New("name must not be empty")
	ErrEmptyDescription = errors.New("description must not be empty")
	ErrInvalidAmount    = errors.New("amount must be positive")
	ErrNotMember        = errors.New("not a member of the group")
	ErrSelfSettlement   = errors.New("payer and receiver must be different members")
)

// LedgerService wires the storage backend to the calculator engine.
type LedgerService struct {
	store storage.Store
}

// NewLedgerService creates a new LedgerService with the given storage backend.
func NewLedgerService(store storage.Store) *LedgerService {
	return &LedgerService{store: store}
}

// ExpenseParams carries the validated-at-the-boundary fields for creating or
// editing an expense.
type ExpenseParams struct {
	GroupID     string
	Description string
	Amount      float64
	PayerID     string
	Date        string
}

// SettlementParams carries the fields for recording a payment between members.
type SettlementParams struct {
	GroupID    string
	PayerID    string
	ReceiverID string
	Amount     float64
	Note       string
}

// isMember reports whether memberID is in the members list.
func isMember(memberID string, members []models.Member) bool {
	for _, m := range members {
		if m.ID == memberID {
			return true
		}
	}
	return false
}

// CreateGroup creates a group and, optionally, member records for the given
// names, adding them to the group.
func (s *LedgerService) CreateGroup(ctx context.Context, name string, memberNames []string) (*models.Group, []models.Member, error) {
	if name == "" {
		return nil, nil, ErrEmptyName
	}

	group := &models.Group{Name: name}
	if err := s.store.CreateGroup(ctx, group); err != nil {
		return nil, nil, fmt.Errorf("create group: %w", err)
	}

	members, err := s.AddMembers(ctx, group.ID, memberNames)
	if err != nil {
		return nil, nil, err
	}

	slog.Info("Group created", "group_id", group.ID, "name", name, "members", len(members))
	return group, members, nil
}

// GetGroup retrieves a group by ID.
func (s *LedgerService) GetGroup(ctx context.Context, groupID string) (*models.Group, error) {
	return s.store.GetGroup(ctx, groupID)
}

// ListGroups retrieves all groups.
func (s *LedgerService) ListGroups(ctx context.Context) ([]*models.Group, error) {
	return s.store.ListGroups(ctx)
}

// AddMembers creates member records for the given names and adds them to the
// group. Returns the created members.
func (s *LedgerService) AddMembers(ctx context.Context, groupID string, names []string) ([]models.Member, error) {
	if _, err := s.store.GetGroup(ctx, groupID); err != nil {
		return nil, err
	}

	members := make([]models.Member, 0, len(names))
	ids := make([]string, 0, len(names))
	for _, name := range names {
		if name == "" {
			return nil, ErrEmptyName
		}
		member := models.Member{Name: name}
		if err := s.store.CreateMember(ctx, &member); err != nil {
			return nil, fmt.Errorf("create member: %w", err)
		}
		members = append(members, member)
		ids = append(ids, member.ID)
	}

	if err := s.store.AddGroupMembers(ctx, groupID, ids); err != nil {
		return nil, fmt.Errorf("add group members: %w", err)
	}
	return members, nil
}

// GetGroupMembers returns the current members of the group.
func (s *LedgerService) GetGroupMembers(ctx context.Context, groupID string) ([]models.Member, error) {
	if _, err := s.store.GetGroup(ctx, groupID); err != nil {
		return nil, err
	}
	return s.store.GetGroupMembers(ctx, groupID)
}

// RemoveMember removes a member from a group. Their expenses stay in the
// group's history; the next balance query redistributes their fair share
// across the remaining members.
func (s *LedgerService) RemoveMember(ctx context.Context, groupID, memberID string) error {
	return s.store.RemoveGroupMember(ctx, groupID, memberID)
}

// AddExpense validates and persists a new expense, deriving split rows from
// the current membership snapshot.
func (s *LedgerService) AddExpense(ctx context.Context, params ExpenseParams) (*models.Expense, error) {
	if params.Description == "" {
		return nil, ErrEmptyDescription
	}
	if params.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	members, err := s.GetGroupMembers(ctx, params.GroupID)
	if err != nil {
		return nil, err
	}
	if !isMember(params.PayerID, members) {
		return nil, fmt.Errorf("payer %s: %w", params.PayerID, ErrNotMember)
	}

	expense := &models.Expense{
		ID:          uuid.New().String(),
		GroupID:     params.GroupID,
		Description: params.Description,
		Amount:      params.Amount,
		PayerID:     params.PayerID,
		Date:        params.Date,
	}
	splits := calculator.EqualSplits(expense.ID, expense.Amount, expense.PayerID, members)

	if err := s.store.CreateExpense(ctx, expense, splits); err != nil {
		return nil, fmt.Errorf("create expense: %w", err)
	}

	slog.Info("Expense added",
		"group_id", params.GroupID,
		"expense_id", expense.ID,
		"amount", expense.Amount,
		"splits", len(splits),
	)
	return expense, nil
}

// UpdateExpense validates and applies an edit, regenerating the split rows
// from the *current* membership. The replaced rows are the only thing an edit
// trues up; splits of untouched expenses stay as written.
func (s *LedgerService) UpdateExpense(ctx context.Context, expenseID string, params ExpenseParams) (*models.Expense, error) {
	if params.Description == "" {
		return nil, ErrEmptyDescription
	}
	if params.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	existing, err := s.store.GetExpense(ctx, expenseID)
	if err != nil {
		return nil, err
	}

	members, err := s.GetGroupMembers(ctx, existing.GroupID)
	if err != nil {
		return nil, err
	}
	if !isMember(params.PayerID, members) {
		return nil, fmt.Errorf("payer %s: %w", params.PayerID, ErrNotMember)
	}

	expense := &models.Expense{
		ID:          expenseID,
		GroupID:     existing.GroupID,
		Description: params.Description,
		Amount:      params.Amount,
		PayerID:     params.PayerID,
		Date:        params.Date,
		CreatedAt:   existing.CreatedAt,
	}
	splits := calculator.EqualSplits(expense.ID, expense.Amount, expense.PayerID, members)

	if err := s.store.UpdateExpense(ctx, expense, splits); err != nil {
		return nil, fmt.Errorf("update expense: %w", err)
	}

	slog.Info("Expense updated", "expense_id", expenseID, "amount", expense.Amount)
	return expense, nil
}

// DeleteExpense removes an expense and its split rows.
func (s *LedgerService) DeleteExpense(ctx context.Context, expenseID string) error {
	return s.store.DeleteExpense(ctx, expenseID)
}

// GetGroupExpenses returns the group's expense history, oldest first.
func (s *LedgerService) GetGroupExpenses(ctx context.Context, groupID string) ([]models.Expense, error) {
	if _, err := s.store.GetGroup(ctx, groupID); err != nil {
		return nil, err
	}
	return s.store.GetGroupExpenses(ctx, groupID)
}

// GetExpenseSplits returns the persisted audit rows for an expense.
func (s *LedgerService) GetExpenseSplits(ctx context.Context, expenseID string) ([]models.Split, error) {
	if _, err := s.store.GetExpense(ctx, expenseID); err != nil {
		return nil, err
	}
	return s.store.GetExpenseSplits(ctx, expenseID)
}

// ComputeBalances fetches the group's membership and expense snapshot and
// reduces it to per-member net balances. Balances are recomputed from scratch
// on every call. There is no cached running total, so a membership change is
// reflected immediately in every past expense's fair share.
func (s *LedgerService) ComputeBalances(ctx context.Context, groupID string) (calculator.BalanceSheet, error) {
	if _, err := s.store.GetGroup(ctx, groupID); err != nil {
		return calculator.BalanceSheet{}, err
	}

	members, err := s.store.GetGroupMembers(ctx, groupID)
	if err != nil {
		return calculator.BalanceSheet{}, err
	}
	expenses, err := s.store.GetGroupExpenses(ctx, groupID)
	if err != nil {
		return calculator.BalanceSheet{}, err
	}

	return calculator.GroupBalances(members, expenses), nil
}

// PlanSettlements computes the group's balances and turns them into a minimal
// list of suggested transfers. The plan is a suggestion only; nothing is
// persisted until a payment is recorded explicitly.
func (s *LedgerService) PlanSettlements(ctx context.Context, groupID string) ([]calculator.Transfer, error) {
	sheet, err := s.ComputeBalances(ctx, groupID)
	if err != nil {
		return nil, err
	}
	return calculator.PlanSettlements(sheet.Balances), nil
}

// RecordSettlement validates and records a payment made between two members.
// Recorded settlements are history only and never feed balance computation.
func (s *LedgerService) RecordSettlement(ctx context.Context, params SettlementParams) (*models.Settlement, error) {
	if params.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if params.PayerID == params.ReceiverID {
		return nil, ErrSelfSettlement
	}

	members, err := s.GetGroupMembers(ctx, params.GroupID)
	if err != nil {
		return nil, err
	}
	if !isMember(params.PayerID, members) {
		return nil, fmt.Errorf("payer %s: %w", params.PayerID, ErrNotMember)
	}
	if !isMember(params.ReceiverID, members) {
		return nil, fmt.Errorf("receiver %s: %w", params.ReceiverID, ErrNotMember)
	}

	settlement := &models.Settlement{
		GroupID:    params.GroupID,
		PayerID:    params.PayerID,
		ReceiverID: params.ReceiverID,
		Amount:     params.Amount,
		Note:       params.Note,
	}
	if err := s.store.CreateSettlement(ctx, settlement); err != nil {
		return nil, fmt.Errorf("create settlement: %w", err)
	}

	slog.Info("Settlement recorded",
		"group_id", params.GroupID,
		"from", params.PayerID,
		"to", params.ReceiverID,
		"amount", params.Amount,
	)
	return settlement, nil
}

// ListSettlements returns the group's recorded settlement history.
func (s *LedgerService) ListSettlements(ctx context.Context, groupID string) ([]*models.Settlement, error) {
	if _, err := s.store.GetGroup(ctx, groupID); err != nil {
		return nil, err
	}
	return s.store.ListGroupSettlements(ctx, groupID)
}
