// Package models defines the core domain records for FairShare.
//
// # Models
//
//   - Group: a set of people who share expenses
//   - Member: a person who can belong to any number of groups
//   - Expense: a payment made by one member on behalf of a group
//   - Split: a per-member owed amount derived from an expense at write time
//   - Settlement: a recorded payment between two members
//
// # Design Principles
//
//  1. **Typed records**: members and expenses are explicit structs, not generic
//     tabular data. The engine never needs arbitrary columns.
//  2. **ID strings instead of pointers**: relations reference UUID strings to
//     avoid circular references between models.
//  3. **Splits are audit rows**: the persisted Split amounts are a snapshot of
//     the membership when the expense was written. Balances never read them;
//     balances are always recomputed from expense amounts and current
//     membership, so a member who joins later absorbs a share of past expenses.
package models
