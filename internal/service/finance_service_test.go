package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amriz26/BudgetpalCsc642/internal/model"
	"github.com/amriz26/BudgetpalCsc642/internal/observability"
	"github.com/amriz26/BudgetpalCsc642/internal/store"
)

func newTestService() *FinanceService {
	return NewFinanceService(store.NewMemoryStore(), nil, observability.NewMetrics())
}

func TestAddExpenseCascadesIntoBudgetOverview(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	budget, err := svc.CreateBudget(ctx, store.BudgetInput{Category: "Food", Limit: 100})
	require.NoError(t, err)

	_, err = svc.AddExpense(ctx, store.ExpenseInput{Amount: 45.50, Category: "Food", Description: "Groceries"})
	require.NoError(t, err)

	overview, err := svc.BudgetOverview(ctx)
	require.NoError(t, err)
	require.Len(t, overview.Budgets, 1)
	report := overview.Budgets[0]
	assert.Equal(t, budget.ID, report.BudgetID)
	assert.InDelta(t, 45.5, report.Spent, 1e-9)
	assert.InDelta(t, 54.5, report.Remaining, 1e-9)
	assert.Equal(t, BudgetOnTrack, report.Status)

	// A second expense pushes the budget into the warning band.
	_, err = svc.AddExpense(ctx, store.ExpenseInput{Amount: 40, Category: "Food", Description: "Dinner"})
	require.NoError(t, err)

	overview, err = svc.BudgetOverview(ctx)
	require.NoError(t, err)
	report = overview.Budgets[0]
	assert.InDelta(t, 85.5, report.Spent, 1e-9)
	assert.InDelta(t, 14.5, report.Remaining, 1e-9)
	assert.Equal(t, BudgetWarning, report.Status)
}

func TestExpenseOverviewFilter(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.AddExpense(ctx, store.ExpenseInput{Amount: 10, Category: "Food", Description: "Coffee"})
	require.NoError(t, err)
	_, err = svc.AddExpense(ctx, store.ExpenseInput{Amount: 60, Category: "Transportation", Description: "Gas"})
	require.NoError(t, err)

	all, err := svc.ExpenseOverview(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 2, all.Count)
	assert.InDelta(t, 70.0, all.TotalSpent, 1e-9)

	food, err := svc.ExpenseOverview(ctx, "Food")
	require.NoError(t, err)
	assert.Equal(t, 1, food.Count)
	assert.InDelta(t, 10.0, food.TotalSpent, 1e-9)
}

func TestContributionFlowsIntoSavingsOverview(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	goal, err := svc.CreateSavingsGoal(ctx, store.GoalInput{Name: "Vacation", Target: 1000})
	require.NoError(t, err)

	require.NoError(t, svc.ContributeToGoal(ctx, goal.ID, 600))

	overview, err := svc.SavingsOverview(ctx)
	require.NoError(t, err)
	require.Len(t, overview.Goals, 1)
	assert.InDelta(t, 60.0, overview.Goals[0].Percentage, 1e-9)
	require.Len(t, overview.Banners, 1)
	assert.Equal(t, "Halfway There!", overview.Banners[0].Title)

	// Overshooting completes the goal and switches the banner.
	require.NoError(t, svc.ContributeToGoal(ctx, goal.ID, 9999))

	overview, err = svc.SavingsOverview(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, overview.CompletedCount)
	assert.Equal(t, 1000.0, overview.Goals[0].Current)
	require.Len(t, overview.Banners, 1)
	assert.Equal(t, "Congratulations!", overview.Banners[0].Title)
}

func TestDashboardComposesAllCollections(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.CreateBudget(ctx, store.BudgetInput{Category: "Food", Limit: 100})
	require.NoError(t, err)
	_, err = svc.AddExpense(ctx, store.ExpenseInput{Amount: 90, Category: "Food", Description: "Groceries"})
	require.NoError(t, err)
	goal, err := svc.CreateSavingsGoal(ctx, store.GoalInput{Name: "Vacation", Target: 1000})
	require.NoError(t, err)
	require.NoError(t, svc.ContributeToGoal(ctx, goal.ID, 500))

	summary, err := svc.Dashboard(ctx)
	require.NoError(t, err)

	assert.InDelta(t, 90.0, summary.TotalSpent, 1e-9)
	assert.Equal(t, 100.0, summary.TotalBudget)
	assert.Equal(t, 500.0, summary.TotalSaved)
	require.Len(t, summary.AtRiskBudgets, 1, "90% usage crosses the warning threshold")
	require.Len(t, summary.RecentExpenses, 1)
	require.Len(t, summary.TopCategories, 1)
	assert.Equal(t, "Food", summary.TopCategories[0].Category)

	// 50% savings but 90% budget usage: only the alert banner shows.
	require.Len(t, summary.Banners, 1)
	assert.Equal(t, model.BannerWarning, summary.Banners[0].Type)
}

func TestValidationFailureCountedInSnapshot(t *testing.T) {
	ctx := context.Background()
	metrics := observability.NewMetrics()
	svc := NewFinanceService(store.NewMemoryStore(), nil, metrics)

	_, err := svc.AddExpense(ctx, store.ExpenseInput{Amount: -1, Category: "Food", Description: "bad"})
	require.ErrorIs(t, err, model.ErrValidation)

	_, err = svc.AddExpense(ctx, store.ExpenseInput{Amount: 10, Category: "Food", Description: "Coffee"})
	require.NoError(t, err)

	snap := metrics.GetEngineSnapshot()
	assert.Equal(t, int64(1), snap.ExpensesAdded)
	assert.Equal(t, int64(1), snap.ValidationFailures)
	assert.InDelta(t, 0.5, snap.RejectionRate, 1e-9)
}
