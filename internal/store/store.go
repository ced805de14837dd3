package store

import (
	"context"
	"time"

	"github.com/amriz26/BudgetpalCsc642/internal/model"
)

// ExpenseInput is the caller-supplied part of a new expense. The store
// assigns the id. A zero Date means today.
type ExpenseInput struct {
	Amount      float64
	Category    string
	Description string
	Date        time.Time
	Recurring   bool
}

// BudgetInput is the caller-supplied part of a new budget. Spent always
// starts at zero.
type BudgetInput struct {
	Category  string
	Limit     float64
	Period    model.BudgetPeriod
	StartDate *time.Time
	EndDate   *time.Time
}

// BudgetUpdate is a partial budget update. Nil fields are left unchanged.
// Spent is intentionally absent: it is derived state owned by the store.
type BudgetUpdate struct {
	Category  *string
	Limit     *float64
	Period    *model.BudgetPeriod
	StartDate *time.Time
	EndDate   *time.Time
}

// GoalInput is the caller-supplied part of a new savings goal. Current
// always starts at zero.
type GoalInput struct {
	Name     string
	Target   float64
	Deadline *time.Time
}

// Store holds the three record collections and exposes the mutation API.
// Every mutation is atomic with respect to readers: in particular the
// budget-spend cascade happens inside the same critical section as the
// expense insertion that triggered it.
//
// Update and delete on an unknown id are silent no-ops, not errors.
// List results are snapshots the caller may retain freely.
type Store interface {
	AddExpense(ctx context.Context, input ExpenseInput) (*model.Expense, error)
	ListExpenses(ctx context.Context, category string) ([]*model.Expense, error)

	AddBudget(ctx context.Context, input BudgetInput) (*model.Budget, error)
	UpdateBudget(ctx context.Context, id string, update BudgetUpdate) error
	DeleteBudget(ctx context.Context, id string) error
	ListBudgets(ctx context.Context) ([]*model.Budget, error)

	AddSavingsGoal(ctx context.Context, input GoalInput) (*model.SavingsGoal, error)
	ContributeToGoal(ctx context.Context, id string, amount float64) error
	DeleteSavingsGoal(ctx context.Context, id string) error
	ListSavingsGoals(ctx context.Context) ([]*model.SavingsGoal, error)
}
