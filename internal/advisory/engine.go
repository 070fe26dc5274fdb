// Package advisory turns a financial snapshot into rule-based Markdown advice.
//
// Every Engine method is a pure, single-pass computation over its arguments; the only
// non-determinism is tip sampling in SavingsTips, which draws from the injected Shuffler.
package advisory

import (
	"fmt"
	"strings"

	"getwise/internal/models"
)

// Fail-soft messages returned when required input is missing
const (
	MsgSnapshotRequired           = "Please provide your financial data to receive personalized advice."
	MsgInvestmentSnapshotRequired = "Please provide your financial data to receive personalized investment advice."
	MsgQueryRequired              = "Please provide both a query and your financial data."
)

// Engine renders advice from static tables
type Engine struct {
	tables     *Tables
	format     *Formatter
	shuffler   Shuffler
	retirement RetirementAssumptions
}

// Option configures an Engine
type Option func(*Engine)

// WithFormatter sets the amount formatter
func WithFormatter(f *Formatter) Option {
	return func(e *Engine) {
		e.format = f
	}
}

// WithShuffler sets the randomness source used for tip sampling
func WithShuffler(s Shuffler) Option {
	return func(e *Engine) {
		e.shuffler = s
	}
}

// WithRetirementAssumptions overrides the retirement projection inputs
func WithRetirementAssumptions(a RetirementAssumptions) Option {
	return func(e *Engine) {
		e.retirement = a
	}
}

// NewEngine creates an engine over tables. A nil tables uses DefaultTables.
func NewEngine(tables *Tables, opts ...Option) *Engine {
	if tables == nil {
		tables = DefaultTables()
	}
	e := &Engine{
		tables:     tables,
		format:     NewFormatter(DefaultLocale),
		shuffler:   NewTimeSeededShuffler(),
		retirement: DefaultRetirementAssumptions(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Tables returns the engine's lookup tables
func (e *Engine) Tables() *Tables {
	return e.tables
}

// Assess computes the structured financial health analysis of a snapshot
func (e *Engine) Assess(s *models.FinancialSnapshot) *models.Assessment {
	if s == nil {
		return nil
	}

	ratio := s.SpendingRatio()
	findings := make([]models.CategoryFinding, 0, len(s.Categories))
	for _, category := range s.Categories {
		findings = append(findings, e.assessCategory(s, category))
	}

	return &models.Assessment{
		SpendingRatio:    ratio,
		Tier:             e.tables.ClassifySpending(ratio),
		Findings:         findings,
		SavingsPotential: toDecimal(e.SavingsPotential(s)),
		Allocation: models.BudgetAllocation{
			Essentials:    toDecimal(round(s.IncomeAmount * 0.5)),
			Discretionary: toDecimal(round(s.IncomeAmount * 0.3)),
			Savings:       toDecimal(round(s.IncomeAmount * 0.2)),
		},
	}
}

func (e *Engine) assessCategory(s *models.FinancialSnapshot, category models.CategorySpend) models.CategoryFinding {
	ratio := s.CategoryRatio(category)
	guideline := e.tables.Guideline(category.Name)
	finding := models.CategoryFinding{
		Category:  category.Name,
		Value:     category.Value,
		Ratio:     ratio,
		Guideline: guideline,
		Severity:  models.FindingWithinRange,
	}

	// Both comparisons are strict: a ratio exactly at a guideline is not over it.
	switch {
	case ratio > guideline.High:
		finding.Severity = models.FindingSignificantlyOver
		finding.Tip = e.tables.Tips(category.Name)[0]
	case ratio > guideline.Ideal:
		finding.Severity = models.FindingSlightlyOver
		finding.Tip = e.tables.Tips(category.Name)[1]
	}
	return finding
}

// SavingsPotential sums, over all categories, the spend above the ideal guideline amount,
// rounded to a whole unit. It is never negative for non-negative spend.
func (e *Engine) SavingsPotential(s *models.FinancialSnapshot) float64 {
	if s == nil {
		return 0
	}
	var potential float64
	for _, category := range s.Categories {
		potential += e.categoryPotential(s, category)
	}
	return round(potential)
}

func (e *Engine) categoryPotential(s *models.FinancialSnapshot, category models.CategorySpend) float64 {
	recommended := s.IncomeAmount * e.tables.Guideline(category.Name).Ideal
	if category.Value > recommended {
		return category.Value - recommended
	}
	return 0
}

// FinancialAdvice renders the overall health assessment, savings tips, category notes,
// savings potential and the 50/30/20 budget split
func (e *Engine) FinancialAdvice(s *models.FinancialSnapshot) string {
	if s == nil {
		return MsgSnapshotRequired
	}
	return e.renderFinancialAdvice(s, e.Assess(s))
}

func (e *Engine) renderFinancialAdvice(s *models.FinancialSnapshot, a *models.Assessment) string {
	copyForTier := e.tables.tiers[a.Tier]

	var b strings.Builder
	b.WriteString("## Financial Health Assessment\n\n")
	fmt.Fprintf(&b, copyForTier.summary, fixed(a.SpendingRatio*100, 1))
	b.WriteString("\n\n")

	if len(copyForTier.tips) > 0 {
		b.WriteString("## Savings Recommendations\n\n")
		writeBullets(&b, copyForTier.tips)
		b.WriteString("\n")
	}

	var notes []string
	for _, f := range a.Findings {
		switch f.Severity {
		case models.FindingSignificantlyOver:
			notes = append(notes, fmt.Sprintf(
				"**%s**: Your spending (%s%s, %s%% of income) is significantly higher than recommended (%s%%). %s",
				f.Category, CurrencySymbol, plain(f.Value), fixed(f.Ratio*100, 1), percentOf(f.Guideline.High), f.Tip))
		case models.FindingSlightlyOver:
			notes = append(notes, fmt.Sprintf(
				"**%s**: Your spending (%s%s, %s%% of income) is slightly above the ideal range (%s%%). %s",
				f.Category, CurrencySymbol, plain(f.Value), fixed(f.Ratio*100, 1), percentOf(f.Guideline.Ideal), f.Tip))
		}
	}
	if len(notes) > 0 {
		b.WriteString("## Category-Specific Recommendations\n\n")
		writeBullets(&b, notes)
		b.WriteString("\n")
	}

	if potential := a.SavingsPotential.InexactFloat64(); potential > 0 {
		b.WriteString("## Savings Potential\n\n")
		fmt.Fprintf(&b, "Based on the analysis, you could potentially save an additional %s per month by optimizing your spending patterns.\n\n",
			e.format.Currency(potential))
	}

	b.WriteString("## Recommended Budget Allocation\n\n")
	fmt.Fprintf(&b, "For your monthly income of %s, consider the following allocation:\n\n", e.format.Currency(s.IncomeAmount))
	fmt.Fprintf(&b, "- Essential expenses: %s (50%%)\n", e.format.Currency(round(s.IncomeAmount*0.5)))
	fmt.Fprintf(&b, "- Discretionary spending: %s (30%%)\n", e.format.Currency(round(s.IncomeAmount*0.3)))
	fmt.Fprintf(&b, "- Savings and investments: %s (20%%)\n", e.format.Currency(round(s.IncomeAmount*0.2)))

	return b.String()
}

// RecommendedInvestment returns the suggested monthly investment for an income and spending ratio
func RecommendedInvestment(t *Tables, income, spendingRatio float64) float64 {
	switch {
	case spendingRatio >= t.Thresholds.Critical:
		return round(income * 0.05)
	case spendingRatio >= t.Thresholds.High:
		return round(income * 0.1)
	case spendingRatio >= t.Thresholds.Moderate:
		return round(income * 0.15)
	default:
		return round(income * (0.2 + (1-spendingRatio)*0.1))
	}
}

// InvestmentAdvice renders investment suggestions, the recommended monthly amount,
// an asset allocation and tax-saving references
func (e *Engine) InvestmentAdvice(s *models.FinancialSnapshot) string {
	if s == nil {
		return MsgInvestmentSnapshotRequired
	}

	ratio := s.SpendingRatio()
	bucket := e.tables.BucketSpending(ratio)
	suggestions := e.tables.InvestmentSuggestions(e.tables.ClassifyIncome(s.IncomeAmount), bucket)
	recommended := RecommendedInvestment(e.tables, s.IncomeAmount, ratio)
	allocation := e.tables.Allocation(bucket)

	var b strings.Builder
	b.WriteString("## Investment Recommendations\n\n")
	fmt.Fprintf(&b, "Based on your monthly income of %s and spending ratio of %s%%, you should aim to invest approximately %s monthly.\n\n",
		e.format.Currency(s.IncomeAmount), fixed(ratio*100, 1), e.format.Currency(recommended))

	b.WriteString("### Recommended Investment Strategy\n\n")
	writeBullets(&b, suggestions)

	b.WriteString("\n### Suggested Asset Allocation\n\n")
	fmt.Fprintf(&b, "- Equity: %s (%d%%)\n", e.format.Currency(round(recommended*float64(allocation.Equity)/100)), allocation.Equity)
	fmt.Fprintf(&b, "- Debt: %s (%d%%)\n", e.format.Currency(round(recommended*float64(allocation.Debt)/100)), allocation.Debt)
	fmt.Fprintf(&b, "- Liquid/Emergency Fund: %s (%d%%)\n", e.format.Currency(round(recommended*float64(allocation.Liquid)/100)), allocation.Liquid)

	b.WriteString("\n### Tax Saving Recommendations\n\n")
	b.WriteString("- Section 80C (EPF, ELSS, etc.): Up to ₹1.5 lakh per annum\n")
	b.WriteString("- Section 80D (Health Insurance): Up to ₹25,000 per annum\n")
	b.WriteString("- Section 80G (Charitable Donations): Varies based on donation amount\n")

	return b.String()
}

func writeBullets(b *strings.Builder, items []string) {
	for _, item := range items {
		b.WriteString("- ")
		b.WriteString(item)
		b.WriteString("\n")
	}
}
