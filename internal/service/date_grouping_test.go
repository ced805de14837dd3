package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amriz26/BudgetpalCsc642/internal/model"
)

func datedExpense(description string, date time.Time) *model.Expense {
	return &model.Expense{Description: description, Amount: 10, Category: "Food", Date: date}
}

func TestGroupExpensesByDateLabel(t *testing.T) {
	nov15 := time.Date(2025, time.November, 15, 14, 30, 0, 0, time.UTC)

	groups := GroupExpensesByDate([]*model.Expense{datedExpense("Coffee", nov15)})

	require.Len(t, groups, 1)
	assert.Equal(t, "Saturday, November 15, 2025", groups[0].Label)
	assert.Equal(t, time.Date(2025, time.November, 15, 0, 0, 0, 0, time.UTC), groups[0].Date)
}

func TestGroupExpensesByDateBucketsSameDay(t *testing.T) {
	nov15Morning := time.Date(2025, time.November, 15, 9, 0, 0, 0, time.UTC)
	nov15Evening := time.Date(2025, time.November, 15, 20, 0, 0, 0, time.UTC)
	nov14 := time.Date(2025, time.November, 14, 12, 0, 0, 0, time.UTC)

	groups := GroupExpensesByDate([]*model.Expense{
		datedExpense("Dinner", nov15Evening),
		datedExpense("Coffee", nov15Morning),
		datedExpense("Lunch", nov14),
	})

	require.Len(t, groups, 2)
	require.Len(t, groups[0].Expenses, 2)
	assert.Equal(t, "Dinner", groups[0].Expenses[0].Description)
	assert.Equal(t, "Coffee", groups[0].Expenses[1].Description)
	assert.Equal(t, "Lunch", groups[1].Expenses[0].Description)
}

func TestGroupExpensesByDateFirstOccurrenceOrder(t *testing.T) {
	nov15 := time.Date(2025, time.November, 15, 0, 0, 0, 0, time.UTC)
	nov14 := time.Date(2025, time.November, 14, 0, 0, 0, 0, time.UTC)
	nov13 := time.Date(2025, time.November, 13, 0, 0, 0, 0, time.UTC)

	// Interleaved dates: bucket order follows first occurrence, and a later
	// repeat of an earlier date joins its existing bucket.
	groups := GroupExpensesByDate([]*model.Expense{
		datedExpense("a", nov15),
		datedExpense("b", nov13),
		datedExpense("c", nov14),
		datedExpense("d", nov15),
	})

	require.Len(t, groups, 3)
	assert.Equal(t, "Saturday, November 15, 2025", groups[0].Label)
	assert.Equal(t, "Thursday, November 13, 2025", groups[1].Label)
	assert.Equal(t, "Friday, November 14, 2025", groups[2].Label)
	require.Len(t, groups[0].Expenses, 2)
	assert.Equal(t, "a", groups[0].Expenses[0].Description)
	assert.Equal(t, "d", groups[0].Expenses[1].Description)
}

func TestGroupExpensesByDateEmpty(t *testing.T) {
	assert.Empty(t, GroupExpensesByDate(nil))
}
