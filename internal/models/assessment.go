package models

import "github.com/shopspring/decimal"

// Assessment is the structured analysis behind the financial health advice
type Assessment struct {
	SpendingRatio    float64           `json:"spending_ratio"`
	Tier             SpendingTier      `json:"tier"`
	Findings         []CategoryFinding `json:"findings"`
	SavingsPotential decimal.Decimal   `json:"savings_potential"`
	Allocation       BudgetAllocation  `json:"allocation"`
}

// CategoryFinding is the guideline comparison for one category
type CategoryFinding struct {
	Category  string            `json:"category"`
	Value     float64           `json:"value"`
	Ratio     float64           `json:"ratio"`
	Guideline CategoryGuideline `json:"guideline"`
	Severity  FindingSeverity   `json:"severity"`
	Tip       string            `json:"tip,omitempty"`
}

// Flagged reports whether the finding produces a recommendation
func (f CategoryFinding) Flagged() bool {
	return f.Severity == FindingSignificantlyOver || f.Severity == FindingSlightlyOver
}

// BudgetAllocation is the 50/30/20 split of monthly income
type BudgetAllocation struct {
	Essentials    decimal.Decimal `json:"essentials"`
	Discretionary decimal.Decimal `json:"discretionary"`
	Savings       decimal.Decimal `json:"savings"`
}
