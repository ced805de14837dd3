package store

import (
	"context"
	"time"

	"github.com/amriz26/BudgetpalCsc642/internal/model"
)

// SeedDemoData loads the exemplary prototype data set into an empty store:
// a few days of expenses, four monthly budgets, and three savings goals.
// Budgets are created first so the expense cascade fills their spend.
// Intended for demo sessions and local development.
func SeedDemoData(ctx context.Context, s Store) error {
	budgets := []BudgetInput{
		{Category: "Food", Limit: 400, Period: model.BudgetPeriodMonthly},
		{Category: "Transportation", Limit: 200, Period: model.BudgetPeriodMonthly},
		{Category: "Bills", Limit: 500, Period: model.BudgetPeriodMonthly},
		{Category: "Entertainment", Limit: 150, Period: model.BudgetPeriodMonthly},
	}
	for _, b := range budgets {
		if _, err := s.AddBudget(ctx, b); err != nil {
			return err
		}
	}

	day := func(offset int) time.Time {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -offset)
	}

	// Oldest first so the prepend ordering leaves the newest on top.
	expenses := []ExpenseInput{
		{Amount: 150.00, Category: "Bills", Description: "Electricity", Date: day(10), Recurring: true},
		{Amount: 89.00, Category: "Bills", Description: "Internet bill", Date: day(5), Recurring: true},
		{Amount: 35.00, Category: "Food", Description: "Lunch", Date: day(4)},
		{Amount: 25.00, Category: "Entertainment", Description: "Movie tickets", Date: day(3)},
		{Amount: 60.00, Category: "Transportation", Description: "Gas", Date: day(2)},
		{Amount: 8.50, Category: "Food", Description: "Coffee", Date: day(1)},
		{Amount: 45.50, Category: "Food", Description: "Grocery shopping", Date: day(0)},
		{Amount: 12.99, Category: "Transportation", Description: "Uber ride", Date: day(0)},
	}
	for _, e := range expenses {
		if _, err := s.AddExpense(ctx, e); err != nil {
			return err
		}
	}

	deadline := func(months int) *time.Time {
		d := time.Now().AddDate(0, months, 0)
		return &d
	}

	goals := []struct {
		input   GoalInput
		current float64
	}{
		{GoalInput{Name: "Vacation Fund", Target: 2000, Deadline: deadline(7)}, 850},
		{GoalInput{Name: "Emergency Savings", Target: 5000, Deadline: deadline(1)}, 2300},
		{GoalInput{Name: "New Laptop", Target: 1200, Deadline: deadline(4)}, 450},
	}
	for _, g := range goals {
		goal, err := s.AddSavingsGoal(ctx, g.input)
		if err != nil {
			return err
		}
		if err := s.ContributeToGoal(ctx, goal.ID, g.current); err != nil {
			return err
		}
	}

	return nil
}
