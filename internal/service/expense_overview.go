package service

import (
	"fmt"

	"github.com/amriz26/BudgetpalCsc642/internal/model"
)

// ExpenseOverview is the derived state for the expense list view over a
// (possibly category-filtered) expense snapshot.
type ExpenseOverview struct {
	TotalSpent     float64        `json:"totalSpent"`
	Count          int            `json:"count"`
	RecurringCount int            `json:"recurringCount"`
	Groups         []ExpenseGroup `json:"groups"`
	Banners        []model.Banner `json:"banners"`
}

// EvaluateExpenses totals the snapshot, counts recurring charges, and
// buckets the list by calendar day for chronological display.
func EvaluateExpenses(expenses []*model.Expense) ExpenseOverview {
	overview := ExpenseOverview{
		Count:  len(expenses),
		Groups: GroupExpensesByDate(expenses),
	}

	for _, expense := range expenses {
		overview.TotalSpent += expense.Amount
		if expense.Recurring {
			overview.RecurringCount++
		}
	}

	if overview.RecurringCount > 0 {
		overview.Banners = append(overview.Banners, model.Banner{
			Type:    model.BannerInfo,
			Title:   "Recurring Expenses Detected",
			Message: fmt.Sprintf("You have %d recurring %s this month. Keep track of these automatic charges!", overview.RecurringCount, plural(overview.RecurringCount, "expense")),
		})
	}

	return overview
}
