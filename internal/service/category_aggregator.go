package service

import (
	"sort"

	"github.com/amriz26/BudgetpalCsc642/internal/model"
)

// CategoryTotal is one category's summed spend and its share of the total.
type CategoryTotal struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// SpendingByCategory sums expense amounts per category.
func SpendingByCategory(expenses []*model.Expense) map[string]float64 {
	totals := make(map[string]float64)
	for _, expense := range expenses {
		totals[expense.Category] += expense.Amount
	}
	return totals
}

// TopCategories ranks categories by summed spend, descending, truncated to
// n. Ties keep the first-encountered category (in input order) first.
// Percentage is the category's share of total spend; 0 when total is 0.
func TopCategories(expenses []*model.Expense, n int) []CategoryTotal {
	totals := make(map[string]float64)
	var order []string
	for _, expense := range expenses {
		if _, seen := totals[expense.Category]; !seen {
			order = append(order, expense.Category)
		}
		totals[expense.Category] += expense.Amount
	}

	var totalSpent float64
	for _, amount := range totals {
		totalSpent += amount
	}

	ranked := make([]CategoryTotal, 0, len(order))
	for _, category := range order {
		ranked = append(ranked, CategoryTotal{
			Category:   category,
			Amount:     totals[category],
			Percentage: share(totals[category], totalSpent),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Amount > ranked[j].Amount
	})

	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// share returns part/whole as a percentage, 0 when whole is 0. Every
// percentage the engine reports goes through this guard so a zero
// denominator can never leak NaN or Inf into derived state.
func share(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return part / whole * 100
}
