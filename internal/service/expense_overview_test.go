package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amriz26/BudgetpalCsc642/internal/model"
)

func TestEvaluateExpensesTotalsAndGroups(t *testing.T) {
	nov15 := time.Date(2025, time.November, 15, 0, 0, 0, 0, time.UTC)
	nov14 := time.Date(2025, time.November, 14, 0, 0, 0, 0, time.UTC)

	overview := EvaluateExpenses([]*model.Expense{
		{ID: "e1", Amount: 45.50, Category: "Food", Description: "Groceries", Date: nov15},
		{ID: "e2", Amount: 89, Category: "Bills", Description: "Internet", Date: nov14, Recurring: true},
	})

	assert.InDelta(t, 134.5, overview.TotalSpent, 1e-9)
	assert.Equal(t, 2, overview.Count)
	assert.Equal(t, 1, overview.RecurringCount)
	require.Len(t, overview.Groups, 2)
}

func TestEvaluateExpensesRecurringBanner(t *testing.T) {
	overview := EvaluateExpenses([]*model.Expense{
		{ID: "e1", Amount: 89, Category: "Bills", Description: "Internet", Recurring: true},
		{ID: "e2", Amount: 150, Category: "Bills", Description: "Electricity", Recurring: true},
	})

	require.Len(t, overview.Banners, 1)
	assert.Equal(t, model.BannerInfo, overview.Banners[0].Type)
	assert.Contains(t, overview.Banners[0].Message, "2 recurring expenses")
}

func TestEvaluateExpensesNoRecurringNoBanner(t *testing.T) {
	overview := EvaluateExpenses([]*model.Expense{
		{ID: "e1", Amount: 10, Category: "Food", Description: "Coffee"},
	})

	assert.Empty(t, overview.Banners)
}

func TestEvaluateExpensesEmpty(t *testing.T) {
	overview := EvaluateExpenses(nil)

	assert.Zero(t, overview.TotalSpent)
	assert.Zero(t, overview.Count)
	assert.Empty(t, overview.Groups)
	assert.Empty(t, overview.Banners)
}
