package service

import (
	"fmt"
	"math"
	"time"

	"github.com/amriz26/BudgetpalCsc642/internal/model"
)

// GoalReport is the derived state for one savings goal.
type GoalReport struct {
	GoalID     string  `json:"goalId"`
	Name       string  `json:"name"`
	Target     float64 `json:"target"`
	Current    float64 `json:"current"`
	Percentage float64 `json:"percentage"`
	Remaining  float64 `json:"remaining"`
	IsComplete bool    `json:"isComplete"`
	// DaysRemaining is nil when the goal has no deadline. Negative means
	// overdue by that many days, zero means due today.
	DaysRemaining *int `json:"daysRemaining,omitempty"`
}

// ClassifyGoal computes a goal's progress and deadline countdown as of
// today. Remaining is never negative since Current is clamped at Target.
// A zero target yields percentage 0, not a division error.
func ClassifyGoal(g *model.SavingsGoal, today time.Time) GoalReport {
	percentage := share(g.Current, g.Target)

	report := GoalReport{
		GoalID:     g.ID,
		Name:       g.Name,
		Target:     g.Target,
		Current:    g.Current,
		Percentage: percentage,
		Remaining:  g.Target - g.Current,
		IsComplete: percentage >= 100,
	}
	if g.Deadline != nil {
		days := DaysUntil(*g.Deadline, today)
		report.DaysRemaining = &days
	}
	return report
}

// DaysUntil is the signed calendar-day countdown to deadline: the ceiling
// of the difference in days. A deadline 12 hours away reports 1 (still
// within the day), exactly now reports 0, and half a day ago reports 0
// while a day and a half ago reports -1.
func DaysUntil(deadline, today time.Time) int {
	diff := deadline.Sub(today)
	return int(math.Ceil(diff.Hours() / 24))
}

// SavingsOverview is the portfolio-level derived state for the goals view.
type SavingsOverview struct {
	TotalSaved      float64        `json:"totalSaved"`
	TotalTarget     float64        `json:"totalTarget"`
	OverallProgress float64        `json:"overallProgress"`
	CompletedCount  int            `json:"completedCount"`
	Goals           []GoalReport   `json:"goals"`
	Banners         []model.Banner `json:"banners"`
}

// EvaluateSavings composes ClassifyGoal over the collection. The two
// portfolio banners are mutually exclusive: the celebration fires when any
// goal is complete, and the halfway banner only when overall progress is
// in [50,100) with no goal complete yet.
func EvaluateSavings(goals []*model.SavingsGoal, today time.Time) SavingsOverview {
	overview := SavingsOverview{Goals: make([]GoalReport, 0, len(goals))}

	for _, goal := range goals {
		report := ClassifyGoal(goal, today)
		if report.IsComplete {
			overview.CompletedCount++
		}
		overview.TotalSaved += goal.Current
		overview.TotalTarget += goal.Target
		overview.Goals = append(overview.Goals, report)
	}

	overview.OverallProgress = share(overview.TotalSaved, overview.TotalTarget)

	switch {
	case overview.CompletedCount > 0:
		overview.Banners = append(overview.Banners, model.Banner{
			Type:    model.BannerSuccess,
			Title:   "Congratulations!",
			Message: fmt.Sprintf("You've completed %d savings %s! Your financial discipline is paying off!", overview.CompletedCount, plural(overview.CompletedCount, "goal")),
		})
	case overview.OverallProgress >= 50 && overview.OverallProgress < 100:
		overview.Banners = append(overview.Banners, model.Banner{
			Type:    model.BannerSuccess,
			Title:   "Halfway There!",
			Message: fmt.Sprintf("You've saved %.0f%% of your target amount. Keep up the great work!", overview.OverallProgress),
		})
	}

	return overview
}

func plural(n int, noun string) string {
	if n == 1 {
		return noun
	}
	return noun + "s"
}
