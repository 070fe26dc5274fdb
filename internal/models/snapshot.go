package models

// FinancialSnapshot is the income/expense summary every piece of advice is computed from.
// It is supplied fresh per request and never mutated by the advisory engine.
type FinancialSnapshot struct {
	IncomeAmount    float64         `json:"incomeAmount"`
	ExpensesAmount  float64         `json:"expensesAmount"`
	RemainingAmount float64         `json:"remainingAmount"`
	Categories      []CategorySpend `json:"categories"`
	Days            []DailyRecord   `json:"days,omitempty"`
}

// CategorySpend is the amount spent in a single category
type CategorySpend struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// DailyRecord is a per-day income/expense total
type DailyRecord struct {
	Date     string  `json:"date"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
}

// SpendingRatio returns expenses as a fraction of income.
// Income is not guarded: zero income yields +Inf or NaN.
func (s *FinancialSnapshot) SpendingRatio() float64 {
	return s.ExpensesAmount / s.IncomeAmount
}

// SavingsRate returns the remaining amount as a percentage of income
func (s *FinancialSnapshot) SavingsRate() float64 {
	return s.RemainingAmount / s.IncomeAmount * 100
}

// CategoryRatio returns the category's spend as a fraction of income
func (s *FinancialSnapshot) CategoryRatio(category CategorySpend) float64 {
	return category.Value / s.IncomeAmount
}

// FindCategory returns the first category whose name equals name
func (s *FinancialSnapshot) FindCategory(name string) (CategorySpend, bool) {
	for _, category := range s.Categories {
		if category.Name == name {
			return category, true
		}
	}
	return CategorySpend{}, false
}
