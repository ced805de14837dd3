package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/amriz26/BudgetpalCsc642/internal/model"
)

// MemoryStore implements Store with in-memory collections. It holds one
// session's records; a session identifier keys stores at a higher layer.
//
// Expenses are kept most-recent-first: new expenses are prepended, which is
// the display contract for the expense list and the dashboard's recent
// activity view. Budgets and goals keep creation order.
type MemoryStore struct {
	mu sync.RWMutex

	expenses []*model.Expense
	budgets  []*model.Budget
	goals    []*model.SavingsGoal

	now func() time.Time
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{now: time.Now}
}

// Expense operations

// AddExpense validates the input, prepends the expense, then applies the
// budget-spend cascade: every budget whose category matches has Spent
// incremented by the expense amount, inside the same critical section.
// An expense with no matching budget is simply unbudgeted.
func (m *MemoryStore) AddExpense(ctx context.Context, input ExpenseInput) (*model.Expense, error) {
	if input.Amount <= 0 {
		return nil, model.ValidationError("amount", "must be positive")
	}
	if strings.TrimSpace(input.Category) == "" {
		return nil, model.ValidationError("category", "is required")
	}
	if strings.TrimSpace(input.Description) == "" {
		return nil, model.ValidationError("description", "is required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	date := input.Date
	if date.IsZero() {
		date = m.now()
	}

	expense := &model.Expense{
		ID:          uuid.New().String(),
		Amount:      input.Amount,
		Category:    input.Category,
		Description: input.Description,
		Date:        date,
		Recurring:   input.Recurring,
		CreatedAt:   m.now(),
	}

	m.expenses = append([]*model.Expense{expense}, m.expenses...)

	// Cascade: keep each matching budget's derived spend in step with the
	// insertion. Checked against current budgets at insertion time, so
	// budget-vs-expense creation order does not matter.
	for _, budget := range m.budgets {
		if budget.Category == expense.Category {
			budget.Spent += expense.Amount
			budget.UpdatedAt = m.now()
		}
	}

	out := *expense
	return &out, nil
}

func (m *MemoryStore) ListExpenses(ctx context.Context, category string) ([]*model.Expense, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*model.Expense, 0, len(m.expenses))
	for _, expense := range m.expenses {
		if category != "" && expense.Category != category {
			continue
		}
		e := *expense
		result = append(result, &e)
	}
	return result, nil
}

// Budget operations

func (m *MemoryStore) AddBudget(ctx context.Context, input BudgetInput) (*model.Budget, error) {
	if strings.TrimSpace(input.Category) == "" {
		return nil, model.ValidationError("category", "is required")
	}
	if input.Limit <= 0 {
		return nil, model.ValidationError("limit", "must be positive")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	period := input.Period
	if period == "" {
		period = model.BudgetPeriodMonthly
	}

	budget := &model.Budget{
		ID:        uuid.New().String(),
		Category:  input.Category,
		Limit:     input.Limit,
		Spent:     0,
		Period:    period,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		CreatedAt: m.now(),
		UpdatedAt: m.now(),
	}
	m.budgets = append(m.budgets, budget)

	out := *budget
	return &out, nil
}

// UpdateBudget merges the given fields into the budget matching id. An
// unknown id is a silent no-op. Spent is not touched; expenses already
// counted stay counted even if the category changes.
func (m *MemoryStore) UpdateBudget(ctx context.Context, id string, update BudgetUpdate) error {
	if update.Limit != nil && *update.Limit <= 0 {
		return model.ValidationError("limit", "must be positive")
	}
	if update.Category != nil && strings.TrimSpace(*update.Category) == "" {
		return model.ValidationError("category", "is required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, budget := range m.budgets {
		if budget.ID != id {
			continue
		}
		if update.Category != nil {
			budget.Category = *update.Category
		}
		if update.Limit != nil {
			budget.Limit = *update.Limit
		}
		if update.Period != nil {
			budget.Period = *update.Period
		}
		if update.StartDate != nil {
			budget.StartDate = update.StartDate
		}
		if update.EndDate != nil {
			budget.EndDate = update.EndDate
		}
		budget.UpdatedAt = m.now()
		return nil
	}
	return nil
}

func (m *MemoryStore) DeleteBudget(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, budget := range m.budgets {
		if budget.ID == id {
			m.budgets = append(m.budgets[:i], m.budgets[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *MemoryStore) ListBudgets(ctx context.Context) ([]*model.Budget, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*model.Budget, 0, len(m.budgets))
	for _, budget := range m.budgets {
		b := *budget
		result = append(result, &b)
	}
	return result, nil
}

// Savings goal operations

func (m *MemoryStore) AddSavingsGoal(ctx context.Context, input GoalInput) (*model.SavingsGoal, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, model.ValidationError("name", "is required")
	}
	if input.Target <= 0 {
		return nil, model.ValidationError("target", "must be positive")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	goal := &model.SavingsGoal{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Target:    input.Target,
		Current:   0,
		Deadline:  input.Deadline,
		CreatedAt: m.now(),
	}
	m.goals = append(m.goals, goal)

	out := *goal
	return &out, nil
}

// ContributeToGoal adds amount to the goal's current balance, clamped at
// the target: any excess is absorbed, not carried over. Non-positive
// amounts are rejected so Current stays monotonically non-decreasing.
// An unknown id is a silent no-op.
func (m *MemoryStore) ContributeToGoal(ctx context.Context, id string, amount float64) error {
	if amount <= 0 {
		return model.ValidationError("amount", "must be positive")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, goal := range m.goals {
		if goal.ID != id {
			continue
		}
		goal.Current += amount
		if goal.Current > goal.Target {
			goal.Current = goal.Target
		}
		return nil
	}
	return nil
}

func (m *MemoryStore) DeleteSavingsGoal(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, goal := range m.goals {
		if goal.ID == id {
			m.goals = append(m.goals[:i], m.goals[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *MemoryStore) ListSavingsGoals(ctx context.Context) ([]*model.SavingsGoal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*model.SavingsGoal, 0, len(m.goals))
	for _, goal := range m.goals {
		g := *goal
		result = append(result, &g)
	}
	return result, nil
}
