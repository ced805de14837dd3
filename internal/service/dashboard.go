package service

import (
	"fmt"
	"time"

	"github.com/amriz26/BudgetpalCsc642/internal/model"
)

const (
	dashboardTopCategories  = 3
	dashboardRecentExpenses = 5
)

// DashboardSummary is the portfolio-level derived state driving the
// dashboard view: the four totals, their percentages, rankings, at-risk
// budgets, goal progress, and the banner set.
type DashboardSummary struct {
	TotalSpent         float64 `json:"totalSpent"`
	TotalBudget        float64 `json:"totalBudget"`
	TotalSaved         float64 `json:"totalSaved"`
	TotalSavingsTarget float64 `json:"totalSavingsTarget"`

	BudgetUsagePercentage float64 `json:"budgetUsagePercentage"`
	SavingsPercentage     float64 `json:"savingsPercentage"`

	TopCategories  []CategoryTotal  `json:"topCategories"`
	RecentExpenses []*model.Expense `json:"recentExpenses"`
	AtRiskBudgets  []BudgetReport   `json:"atRiskBudgets"`
	Goals          []GoalReport     `json:"goals"`
	Banners        []model.Banner   `json:"banners"`
}

// Summarize composes the aggregator and both evaluators over full
// collection snapshots. Expenses are expected most-recent-first (the
// store's ordering contract); the recent-activity view is simply the head
// of that list.
func Summarize(expenses []*model.Expense, budgets []*model.Budget, goals []*model.SavingsGoal, today time.Time) DashboardSummary {
	summary := DashboardSummary{
		TopCategories: TopCategories(expenses, dashboardTopCategories),
	}

	for _, expense := range expenses {
		summary.TotalSpent += expense.Amount
	}

	recent := expenses
	if len(recent) > dashboardRecentExpenses {
		recent = recent[:dashboardRecentExpenses]
	}
	summary.RecentExpenses = recent

	for _, budget := range budgets {
		summary.TotalBudget += budget.Limit
		report := ClassifyBudget(budget)
		if report.AtRisk() {
			summary.AtRiskBudgets = append(summary.AtRiskBudgets, report)
		}
	}

	for _, goal := range goals {
		summary.TotalSaved += goal.Current
		summary.TotalSavingsTarget += goal.Target
		summary.Goals = append(summary.Goals, ClassifyGoal(goal, today))
	}

	summary.BudgetUsagePercentage = share(summary.TotalSpent, summary.TotalBudget)
	summary.SavingsPercentage = share(summary.TotalSaved, summary.TotalSavingsTarget)

	// The "great job" banner requires both conditions at once.
	if summary.SavingsPercentage >= 40 && summary.BudgetUsagePercentage < 90 {
		summary.Banners = append(summary.Banners, model.Banner{
			Type:    model.BannerSuccess,
			Title:   "Great job this month!",
			Message: fmt.Sprintf("You're saving %.1f%% toward your goals. You're on track to reach your savings targets!", summary.SavingsPercentage),
		})
	}
	if len(summary.AtRiskBudgets) > 0 {
		summary.Banners = append(summary.Banners, model.Banner{
			Type:    model.BannerWarning,
			Title:   "Budget Alert",
			Message: fmt.Sprintf("You're approaching the limit on %d %s. Consider adjusting your spending.", len(summary.AtRiskBudgets), plural(len(summary.AtRiskBudgets), "budget")),
		})
	}

	return summary
}
