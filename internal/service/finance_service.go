package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/amriz26/BudgetpalCsc642/internal/model"
	"github.com/amriz26/BudgetpalCsc642/internal/observability"
	"github.com/amriz26/BudgetpalCsc642/internal/store"
)

// FinanceService is the engine boundary the presentation collaborators
// invoke: the record mutations of the store plus the derived-state queries.
// It is pull-based; every query recomputes from the current store snapshot.
type FinanceService struct {
	store   store.Store
	logger  *zap.Logger
	metrics *observability.Metrics
	now     func() time.Time
}

// NewFinanceService creates a service over the given store. A nil logger
// falls back to a no-op logger.
func NewFinanceService(s store.Store, logger *zap.Logger, metrics *observability.Metrics) *FinanceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if metrics == nil {
		metrics = observability.NewMetrics()
	}
	return &FinanceService{
		store:   s,
		logger:  logger,
		metrics: metrics,
		now:     time.Now,
	}
}

// Expense operations

// AddExpense logs an expense; the store applies the budget-spend cascade.
func (s *FinanceService) AddExpense(ctx context.Context, input store.ExpenseInput) (*model.Expense, error) {
	defer s.timed("add_expense")()

	expense, err := s.store.AddExpense(ctx, input)
	if err != nil {
		s.countError("expense", err)
		return nil, err
	}

	s.metrics.IncrMutation("expense", "create")
	s.logger.Info("expense added",
		zap.String("expense_id", expense.ID),
		zap.String("category", expense.Category),
		zap.Float64("amount", expense.Amount),
		zap.Bool("known_category", model.KnownCategory(expense.Category)),
	)
	return expense, nil
}

// ExpenseOverview returns the derived state for the expense view,
// optionally filtered to one category (empty means all).
func (s *FinanceService) ExpenseOverview(ctx context.Context, category string) (*ExpenseOverview, error) {
	defer s.timed("expense_overview")()

	expenses, err := s.store.ListExpenses(ctx, category)
	if err != nil {
		return nil, err
	}
	overview := EvaluateExpenses(expenses)
	return &overview, nil
}

// Budget operations

func (s *FinanceService) CreateBudget(ctx context.Context, input store.BudgetInput) (*model.Budget, error) {
	defer s.timed("create_budget")()

	budget, err := s.store.AddBudget(ctx, input)
	if err != nil {
		s.countError("budget", err)
		return nil, err
	}

	s.metrics.IncrMutation("budget", "create")
	s.logger.Info("budget created",
		zap.String("budget_id", budget.ID),
		zap.String("category", budget.Category),
		zap.Float64("limit", budget.Limit),
	)
	return budget, nil
}

func (s *FinanceService) UpdateBudget(ctx context.Context, id string, update store.BudgetUpdate) error {
	defer s.timed("update_budget")()

	if err := s.store.UpdateBudget(ctx, id, update); err != nil {
		s.countError("budget", err)
		return err
	}
	s.metrics.IncrMutation("budget", "update")
	return nil
}

func (s *FinanceService) DeleteBudget(ctx context.Context, id string) error {
	defer s.timed("delete_budget")()

	if err := s.store.DeleteBudget(ctx, id); err != nil {
		return err
	}
	s.metrics.IncrMutation("budget", "delete")
	return nil
}

// BudgetOverview returns the derived state for the budget manager view.
func (s *FinanceService) BudgetOverview(ctx context.Context) (*BudgetOverview, error) {
	defer s.timed("budget_overview")()

	budgets, err := s.store.ListBudgets(ctx)
	if err != nil {
		return nil, err
	}
	overview := EvaluateBudgets(budgets)
	return &overview, nil
}

// Savings goal operations

func (s *FinanceService) CreateSavingsGoal(ctx context.Context, input store.GoalInput) (*model.SavingsGoal, error) {
	defer s.timed("create_goal")()

	goal, err := s.store.AddSavingsGoal(ctx, input)
	if err != nil {
		s.countError("goal", err)
		return nil, err
	}

	s.metrics.IncrMutation("goal", "create")
	s.logger.Info("savings goal created",
		zap.String("goal_id", goal.ID),
		zap.String("name", goal.Name),
		zap.Float64("target", goal.Target),
	)
	return goal, nil
}

func (s *FinanceService) ContributeToGoal(ctx context.Context, id string, amount float64) error {
	defer s.timed("contribute_goal")()

	if err := s.store.ContributeToGoal(ctx, id, amount); err != nil {
		s.countError("goal", err)
		return err
	}
	s.metrics.IncrMutation("goal", "contribute")
	return nil
}

func (s *FinanceService) DeleteSavingsGoal(ctx context.Context, id string) error {
	defer s.timed("delete_goal")()

	if err := s.store.DeleteSavingsGoal(ctx, id); err != nil {
		return err
	}
	s.metrics.IncrMutation("goal", "delete")
	return nil
}

// SavingsOverview returns the derived state for the savings goals view.
func (s *FinanceService) SavingsOverview(ctx context.Context) (*SavingsOverview, error) {
	defer s.timed("savings_overview")()

	goals, err := s.store.ListSavingsGoals(ctx)
	if err != nil {
		return nil, err
	}
	overview := EvaluateSavings(goals, s.now())
	return &overview, nil
}

// Dashboard composes the three collections into the dashboard summary.
func (s *FinanceService) Dashboard(ctx context.Context) (*DashboardSummary, error) {
	defer s.timed("dashboard")()

	expenses, err := s.store.ListExpenses(ctx, "")
	if err != nil {
		return nil, err
	}
	budgets, err := s.store.ListBudgets(ctx)
	if err != nil {
		return nil, err
	}
	goals, err := s.store.ListSavingsGoals(ctx)
	if err != nil {
		return nil, err
	}

	summary := Summarize(expenses, budgets, goals, s.now())
	return &summary, nil
}

func (s *FinanceService) timed(operation string) func() {
	start := s.now()
	return func() {
		s.metrics.RecordRequestDuration(operation, time.Since(start))
	}
}

func (s *FinanceService) countError(entity string, err error) {
	if errors.Is(err, model.ErrValidation) {
		s.metrics.IncrValidationFailure(entity)
		s.logger.Debug("mutation rejected", zap.String("entity", entity), zap.Error(err))
	}
}
