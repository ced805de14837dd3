package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/amriz26/BudgetpalCsc642/internal/model"
	"github.com/amriz26/BudgetpalCsc642/internal/service"
	"github.com/amriz26/BudgetpalCsc642/internal/store"
)

// Request bodies use YYYY-MM-DD strings for calendar dates; the engine
// itself works with time.Time at day granularity.

type addExpenseRequest struct {
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Date        string  `json:"date,omitempty"`
	Recurring   bool    `json:"recurring,omitempty"`
}

func addExpenseHandler(logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addExpenseRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		date, err := parseDate(req.Date)
		if err != nil {
			writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}

		sess := sessionFrom(r.Context())
		expense, err := sess.Service.AddExpense(r.Context(), store.ExpenseInput{
			Amount:      req.Amount,
			Category:    req.Category,
			Description: req.Description,
			Date:        date,
			Recurring:   req.Recurring,
		})
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusCreated, expense)
	}
}

func expenseOverviewHandler(logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFrom(r.Context())
		overview, err := sess.Service.ExpenseOverview(r.Context(), r.URL.Query().Get("category"))
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, overview)
	}
}

type budgetRequest struct {
	Category  string  `json:"category"`
	Limit     float64 `json:"limit"`
	Period    string  `json:"period,omitempty"`
	StartDate string  `json:"startDate,omitempty"`
	EndDate   string  `json:"endDate,omitempty"`
}

func createBudgetHandler(logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req budgetRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		input, err := budgetInputFrom(req)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		sess := sessionFrom(r.Context())
		budget, err := sess.Service.CreateBudget(r.Context(), input)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusCreated, budget)
	}
}

type updateBudgetRequest struct {
	Category  *string  `json:"category,omitempty"`
	Limit     *float64 `json:"limit,omitempty"`
	Period    *string  `json:"period,omitempty"`
	StartDate *string  `json:"startDate,omitempty"`
	EndDate   *string  `json:"endDate,omitempty"`
}

func updateBudgetHandler(logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateBudgetRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		update := store.BudgetUpdate{Category: req.Category, Limit: req.Limit}
		if req.Period != nil {
			period := model.BudgetPeriod(*req.Period)
			update.Period = &period
		}
		if req.StartDate != nil {
			d, err := parseDate(*req.StartDate)
			if err != nil {
				writeError(w, http.StatusBadRequest, "startDate must be YYYY-MM-DD")
				return
			}
			update.StartDate = &d
		}
		if req.EndDate != nil {
			d, err := parseDate(*req.EndDate)
			if err != nil {
				writeError(w, http.StatusBadRequest, "endDate must be YYYY-MM-DD")
				return
			}
			update.EndDate = &d
		}

		sess := sessionFrom(r.Context())
		if err := sess.Service.UpdateBudget(r.Context(), chi.URLParam(r, "budgetID"), update); err != nil {
			handleServiceError(w, err, logger)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func deleteBudgetHandler(logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFrom(r.Context())
		if err := sess.Service.DeleteBudget(r.Context(), chi.URLParam(r, "budgetID")); err != nil {
			handleServiceError(w, err, logger)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func budgetOverviewHandler(logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFrom(r.Context())
		overview, err := sess.Service.BudgetOverview(r.Context())
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, overview)
	}
}

type goalRequest struct {
	Name     string  `json:"name"`
	Target   float64 `json:"target"`
	Deadline string  `json:"deadline,omitempty"`
}

func createGoalHandler(logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req goalRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		input := store.GoalInput{Name: req.Name, Target: req.Target}
		if req.Deadline != "" {
			d, err := parseDate(req.Deadline)
			if err != nil {
				writeError(w, http.StatusBadRequest, "deadline must be YYYY-MM-DD")
				return
			}
			input.Deadline = &d
		}

		sess := sessionFrom(r.Context())
		goal, err := sess.Service.CreateSavingsGoal(r.Context(), input)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusCreated, goal)
	}
}

type contributionRequest struct {
	Amount float64 `json:"amount"`
}

func contributeHandler(logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req contributionRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		sess := sessionFrom(r.Context())
		if err := sess.Service.ContributeToGoal(r.Context(), chi.URLParam(r, "goalID"), req.Amount); err != nil {
			handleServiceError(w, err, logger)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func deleteGoalHandler(logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFrom(r.Context())
		if err := sess.Service.DeleteSavingsGoal(r.Context(), chi.URLParam(r, "goalID")); err != nil {
			handleServiceError(w, err, logger)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func savingsOverviewHandler(logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFrom(r.Context())
		overview, err := sess.Service.SavingsOverview(r.Context())
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, overview)
	}
}

type dashboardResponse struct {
	UserName string `json:"userName"`
	*service.DashboardSummary
}

func dashboardHandler(logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := sessionFrom(r.Context())
		summary, err := sess.Service.Dashboard(r.Context())
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, dashboardResponse{UserName: sess.UserName, DashboardSummary: summary})
	}
}

func budgetInputFrom(req budgetRequest) (store.BudgetInput, error) {
	input := store.BudgetInput{
		Category: req.Category,
		Limit:    req.Limit,
		Period:   model.BudgetPeriod(req.Period),
	}
	if req.StartDate != "" {
		d, err := parseDate(req.StartDate)
		if err != nil {
			return input, model.ValidationError("startDate", "must be YYYY-MM-DD")
		}
		input.StartDate = &d
	}
	if req.EndDate != "" {
		d, err := parseDate(req.EndDate)
		if err != nil {
			return input, model.ValidationError("endDate", "must be YYYY-MM-DD")
		}
		input.EndDate = &d
	}
	return input, nil
}
