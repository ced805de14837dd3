package model

import "time"

// BudgetPeriod describes the window a spending limit applies to.
type BudgetPeriod string

const (
	BudgetPeriodMonthly BudgetPeriod = "monthly"
	BudgetPeriodCustom  BudgetPeriod = "custom"
)

// Expense is a single logged transaction. Expenses are immutable once
// created; there is no edit or per-record delete operation.
type Expense struct {
	ID          string    `json:"id"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Recurring   bool      `json:"recurring"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Budget is a per-category spending limit. Spent is a derived field: the
// store increments it on every matching expense insertion (the cascade),
// it is never recomputed from the expense list on read.
type Budget struct {
	ID        string       `json:"id"`
	Category  string       `json:"category"`
	Limit     float64      `json:"limit"`
	Spent     float64      `json:"spent"`
	Period    BudgetPeriod `json:"period"`
	StartDate *time.Time   `json:"startDate,omitempty"`
	EndDate   *time.Time   `json:"endDate,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// SavingsGoal is a target amount with an optional deadline. Current only
// grows, and is clamped so that Current <= Target always holds.
type SavingsGoal struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Target    float64    `json:"target"`
	Current   float64    `json:"current"`
	Deadline  *time.Time `json:"deadline,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}
