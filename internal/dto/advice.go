package dto

import (
	"getwise/internal/models"
)

// CategoryRequest is a single category total in a snapshot request
type CategoryRequest struct {
	Name  string  `json:"name" validate:"category_name"`
	Value float64 `json:"value" validate:"non_negative_amount"`
}

// DailyRecordRequest is a per-day income/expense total in a snapshot request
type DailyRecordRequest struct {
	Date     string  `json:"date" validate:"required,datetime=2006-01-02"`
	Income   float64 `json:"income" validate:"non_negative_amount"`
	Expenses float64 `json:"expenses" validate:"non_negative_amount"`
}

// SnapshotRequest is the financial snapshot supplied with every advice request.
// RemainingAmount defaults to income minus expenses when omitted.
type SnapshotRequest struct {
	IncomeAmount    float64              `json:"incomeAmount" validate:"positive_amount"`
	ExpensesAmount  float64              `json:"expensesAmount" validate:"non_negative_amount"`
	RemainingAmount *float64             `json:"remainingAmount,omitempty"`
	Categories      []CategoryRequest    `json:"categories" validate:"max=50,dive"`
	Days            []DailyRecordRequest `json:"days,omitempty" validate:"max=366,dive"`
}

// ToSnapshot converts the request into the engine's snapshot model
func (r *SnapshotRequest) ToSnapshot() *models.FinancialSnapshot {
	if r == nil {
		return nil
	}

	remaining := r.IncomeAmount - r.ExpensesAmount
	if r.RemainingAmount != nil {
		remaining = *r.RemainingAmount
	}

	categories := make([]models.CategorySpend, 0, len(r.Categories))
	for _, c := range r.Categories {
		categories = append(categories, models.CategorySpend{Name: c.Name, Value: c.Value})
	}

	var days []models.DailyRecord
	for _, d := range r.Days {
		days = append(days, models.DailyRecord{Date: d.Date, Income: d.Income, Expenses: d.Expenses})
	}

	return &models.FinancialSnapshot{
		IncomeAmount:    r.IncomeAmount,
		ExpensesAmount:  r.ExpensesAmount,
		RemainingAmount: remaining,
		Categories:      categories,
		Days:            days,
	}
}

// AdviceRequest asks for one kind of advice
type AdviceRequest struct {
	Snapshot *SnapshotRequest `json:"snapshot" validate:"required"`
}

// QueryRequest asks a free-text question about a snapshot
type QueryRequest struct {
	Query    string           `json:"query" validate:"required,max=500"`
	Snapshot *SnapshotRequest `json:"snapshot" validate:"required"`
}

// GuidelinesResponse lists the category spending guidelines
type GuidelinesResponse struct {
	Guidelines []models.GuidelineEntry `json:"guidelines"`
}
