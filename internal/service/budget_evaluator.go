package service

import (
	"fmt"

	"github.com/amriz26/BudgetpalCsc642/internal/model"
)

// BudgetStatus classifies how far through its limit a budget is.
type BudgetStatus string

const (
	BudgetOnTrack  BudgetStatus = "on_track"
	BudgetWarning  BudgetStatus = "warning"
	BudgetExceeded BudgetStatus = "exceeded"
)

// Warning threshold as a percentage of the limit. The at-risk filter and
// the per-budget badge both use this single >= 80 rule.
const budgetWarningThreshold = 80.0

// BudgetReport is the derived state for one budget. No back-reference to
// the source record; it is a value snapshot.
type BudgetReport struct {
	BudgetID   string             `json:"budgetId"`
	Category   string             `json:"category"`
	Limit      float64            `json:"limit"`
	Spent      float64            `json:"spent"`
	Percentage float64            `json:"percentage"`
	Remaining  float64            `json:"remaining"`
	Status     BudgetStatus       `json:"status"`
	Period     model.BudgetPeriod `json:"period"`
}

// ClassifyBudget computes a budget's percentage used, remaining amount
// (negative means overage), and status. A zero limit yields percentage 0
// rather than a division error; it cannot occur through normal creation
// but must not crash.
func ClassifyBudget(b *model.Budget) BudgetReport {
	percentage := share(b.Spent, b.Limit)

	status := BudgetOnTrack
	switch {
	case percentage >= 100:
		status = BudgetExceeded
	case percentage >= budgetWarningThreshold:
		status = BudgetWarning
	}

	return BudgetReport{
		BudgetID:   b.ID,
		Category:   b.Category,
		Limit:      b.Limit,
		Spent:      b.Spent,
		Percentage: percentage,
		Remaining:  b.Limit - b.Spent,
		Status:     status,
		Period:     b.Period,
	}
}

// AtRisk reports whether the budget has crossed the warning threshold.
func (r BudgetReport) AtRisk() bool {
	return r.Status != BudgetOnTrack
}

// BudgetOverview is the portfolio-level derived state for the budget view.
type BudgetOverview struct {
	TotalBudget     float64        `json:"totalBudget"`
	TotalSpent      float64        `json:"totalSpent"`
	Remaining       float64        `json:"remaining"`
	UsagePercentage float64        `json:"usagePercentage"`
	ExceededCount   int            `json:"exceededCount"`
	Budgets         []BudgetReport `json:"budgets"`
	Banners         []model.Banner `json:"banners"`
}

// EvaluateBudgets composes ClassifyBudget over the collection and derives
// the portfolio triggers: "good standing" when overall usage is under 70%
// and at least one budget exists, "exceeded" when any budget's spend is
// strictly over its limit.
func EvaluateBudgets(budgets []*model.Budget) BudgetOverview {
	overview := BudgetOverview{Budgets: make([]BudgetReport, 0, len(budgets))}

	for _, budget := range budgets {
		overview.TotalBudget += budget.Limit
		overview.TotalSpent += budget.Spent
		if budget.Spent > budget.Limit {
			overview.ExceededCount++
		}
		overview.Budgets = append(overview.Budgets, ClassifyBudget(budget))
	}

	overview.Remaining = overview.TotalBudget - overview.TotalSpent
	overview.UsagePercentage = share(overview.TotalSpent, overview.TotalBudget)

	if overview.UsagePercentage < 70 && len(budgets) > 0 {
		overview.Banners = append(overview.Banners, model.Banner{
			Type:    model.BannerSuccess,
			Title:   "Great spending discipline!",
			Message: fmt.Sprintf("You're using only %.0f%% of your total budget. Keep up the smart spending!", overview.UsagePercentage),
		})
	}
	if overview.ExceededCount > 0 {
		overview.Banners = append(overview.Banners, model.Banner{
			Type:    model.BannerError,
			Title:   "Budget Exceeded",
			Message: fmt.Sprintf("%d %s been exceeded. Consider reviewing your spending in these categories.", overview.ExceededCount, pluralHave(overview.ExceededCount, "budget")),
		})
	}

	return overview
}

func pluralHave(n int, noun string) string {
	if n == 1 {
		return noun + " has"
	}
	return noun + "s have"
}
