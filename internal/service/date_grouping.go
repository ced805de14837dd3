package service

import (
	"time"

	"github.com/amriz26/BudgetpalCsc642/internal/model"
)

// Long-form label the expense list groups under, e.g.
// "Saturday, November 15, 2025".
const dateGroupLayout = "Monday, January 2, 2006"

// ExpenseGroup is one calendar day's expenses, in input order.
type ExpenseGroup struct {
	Label    string           `json:"label"`
	Date     time.Time        `json:"date"`
	Expenses []*model.Expense `json:"expenses"`
}

// GroupExpensesByDate buckets expenses by calendar day. Bucket order
// follows the first occurrence of each date in the input, so a
// most-recent-first input produces reverse-chronological buckets.
func GroupExpensesByDate(expenses []*model.Expense) []ExpenseGroup {
	index := make(map[string]int)
	var groups []ExpenseGroup

	for _, expense := range expenses {
		label := expense.Date.Format(dateGroupLayout)
		i, ok := index[label]
		if !ok {
			i = len(groups)
			index[label] = i
			day := time.Date(expense.Date.Year(), expense.Date.Month(), expense.Date.Day(), 0, 0, 0, 0, expense.Date.Location())
			groups = append(groups, ExpenseGroup{Label: label, Date: day})
		}
		groups[i].Expenses = append(groups[i].Expenses, expense)
	}

	return groups
}
