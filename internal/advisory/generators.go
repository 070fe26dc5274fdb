package advisory

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"getwise/internal/models"
)

const (
	topSavingsCategories = 3
	tipsPerCategory      = 2
)

type categoryWithPotential struct {
	models.CategorySpend
	potential float64
}

// SavingsTips renders the savings rate verdict, the top three categories by potential
// savings with two randomly sampled tips each, and general strategies
func (e *Engine) SavingsTips(s *models.FinancialSnapshot) string {
	if s == nil {
		return MsgSnapshotRequired
	}

	savingsRate := s.SavingsRate()

	var b strings.Builder
	b.WriteString("## Savings Recommendations\n\n")
	fmt.Fprintf(&b, "Your current savings rate is %s%% of your income. ", fixed(savingsRate, 1))
	switch {
	case savingsRate < 10:
		b.WriteString("This is below the recommended minimum savings rate of 10-15%.\n\n")
	case savingsRate < 20:
		b.WriteString("This is a good start, but financial experts typically recommend saving at least 20% of your income.\n\n")
	default:
		b.WriteString("This is excellent and exceeds the typical recommendation of 20%!\n\n")
	}

	b.WriteString("### Savings Opportunities\n\n")
	if potential := e.SavingsPotential(s); potential > 0 {
		fmt.Fprintf(&b, "By optimizing your spending across categories, you could potentially save an additional %s per month.\n\n",
			e.format.Currency(potential))
	}

	b.WriteString("### Category-Specific Savings Tips\n\n")
	for _, category := range e.rankByPotential(s) {
		if category.potential <= 0 {
			continue
		}
		fmt.Fprintf(&b, "**%s (%s)**: Potential savings of %s\n",
			category.Name, e.format.Currency(category.Value), e.format.Currency(category.potential))
		writeBullets(&b, sample(e.shuffler, e.tables.Tips(category.Name), tipsPerCategory))
		b.WriteString("\n")
	}

	b.WriteString("### General Savings Strategies\n\n")
	writeBullets(&b, []string{
		"Follow the 50/30/20 rule: 50% for needs, 30% for wants, and 20% for savings",
		"Set up automatic transfers to savings accounts on payday",
		"Use the 24-hour rule for non-essential purchases",
		"Consider a no-spend challenge for one week each month",
		"Track every expense using a budgeting app or spreadsheet",
	})

	return b.String()
}

// rankByPotential returns at most three categories, highest potential first, ties in input order
func (e *Engine) rankByPotential(s *models.FinancialSnapshot) []categoryWithPotential {
	ranked := make([]categoryWithPotential, 0, len(s.Categories))
	for _, category := range s.Categories {
		recommended := s.IncomeAmount * e.tables.Guideline(category.Name).Ideal
		ranked = append(ranked, categoryWithPotential{
			CategorySpend: category,
			potential:     math.Max(0, category.Value-recommended),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].potential > ranked[j].potential
	})
	if len(ranked) > topSavingsCategories {
		ranked = ranked[:topSavingsCategories]
	}
	return ranked
}

// BudgetPlan renders a per-category budget table at each category's ideal guideline;
// whatever income is left over becomes the Savings row
func (e *Engine) BudgetPlan(s *models.FinancialSnapshot) string {
	if s == nil {
		return MsgSnapshotRequired
	}

	ideal := make(map[string]float64, len(s.Categories))
	var totalAllocated float64
	for _, category := range s.Categories {
		amount := round(s.IncomeAmount * e.tables.Guideline(category.Name).Ideal)
		ideal[category.Name] = amount
		totalAllocated += amount
	}
	savings := s.IncomeAmount - totalAllocated

	var b strings.Builder
	b.WriteString("## Personalized Budget Plan\n\n")
	fmt.Fprintf(&b, "Based on your monthly income of %s, here's a recommended budget allocation:\n\n", e.format.Currency(s.IncomeAmount))

	fmt.Fprintf(&b, "| Category | Current (%s) | Recommended (%s) | %% of Income |\n", CurrencySymbol, CurrencySymbol)
	b.WriteString("|----------|-------------|-----------------|-------------|\n")
	for _, category := range s.Categories {
		recommended := ideal[category.Name]
		fmt.Fprintf(&b, "| %s | %s | %s | %s%% |\n",
			category.Name, e.format.Amount(category.Value), e.format.Amount(recommended), fixed(recommended/s.IncomeAmount*100, 1))
	}
	fmt.Fprintf(&b, "| Savings | - | %s | %s%% |\n\n", e.format.Amount(savings), fixed(savings/s.IncomeAmount*100, 1))

	b.WriteString("### Budget Implementation Tips\n\n")
	b.WriteString("1. **Use the envelope method**: Allocate cash or virtual funds to each category at the beginning of the month\n")
	b.WriteString("2. **Track expenses daily**: Use a budgeting app or spreadsheet to record all expenses\n")
	b.WriteString("3. **Review weekly**: Take 15 minutes each week to review your spending against your budget\n")
	b.WriteString("4. **Adjust as needed**: Your first budget is a starting point; refine it based on real spending patterns\n")
	b.WriteString("5. **Pay yourself first**: Transfer money to savings before spending on discretionary items\n")

	return b.String()
}

// DebtManagementAdvice renders repayment strategies assuming 80% of the remaining amount goes to debt
func (e *Engine) DebtManagementAdvice(s *models.FinancialSnapshot) string {
	if s == nil {
		return MsgSnapshotRequired
	}

	payment := e.format.Currency(round(s.RemainingAmount * 0.8))

	var b strings.Builder
	b.WriteString("## Debt Management Strategy\n\n")
	b.WriteString("Based on your financial data, here are recommendations for managing debt effectively:\n\n")

	b.WriteString("### Debt Repayment Strategies\n\n")
	b.WriteString("1. **Avalanche Method**: Pay minimum on all debts, then put extra money toward highest interest debt first\n")
	b.WriteString("2. **Snowball Method**: Pay minimum on all debts, then put extra money toward smallest debt first\n")
	b.WriteString("3. **Debt Consolidation**: Consider consolidating multiple high-interest debts into a single lower-interest loan\n\n")

	fmt.Fprintf(&b, "Based on your current financial situation, you could potentially allocate %s monthly to debt repayment.\n\n", payment)

	b.WriteString("### Debt Repayment Timeline Estimates\n\n")
	fmt.Fprintf(&b, "With a monthly payment of %s:\n\n", payment)
	for _, example := range []struct {
		principal float64
		months    int
	}{
		{100000, 12},
		{300000, 36},
		{500000, 60},
	} {
		fmt.Fprintf(&b, "- %s debt at 10%% interest: ~%d months to repay\n", e.format.Currency(example.principal), example.months)
	}
	b.WriteString("\n")

	b.WriteString("### Tips to Reduce Interest Costs\n\n")
	writeBullets(&b, []string{
		"Negotiate with creditors for lower interest rates",
		"Transfer high-interest credit card balances to cards with 0% intro APR",
		"Pay more than the minimum payment whenever possible",
		"Avoid taking on new debt while paying down existing debt",
		"Consider balance transfer offers for credit card debt",
	})
	b.WriteString("\n")

	b.WriteString("### Debt Prevention Strategies\n\n")
	writeBullets(&b, []string{
		"Build an emergency fund of 3-6 months of expenses",
		"Follow the 24-hour rule for non-essential purchases",
		"Pay credit cards in full each month to avoid interest",
		"Create and stick to a realistic budget",
		"Increase your income through side hustles or career advancement",
	})

	return b.String()
}

// EmergencyFundAdvice renders 3- and 6-month fund targets and how long half of the
// remaining amount takes to reach them
func (e *Engine) EmergencyFundAdvice(s *models.FinancialSnapshot) string {
	if s == nil {
		return MsgSnapshotRequired
	}

	monthlyExpenses := s.ExpensesAmount
	minimumFund := monthlyExpenses * 3
	optimalFund := monthlyExpenses * 6
	contribution := round(s.RemainingAmount * 0.5)
	monthsToMinimum := math.Ceil(minimumFund / contribution)
	monthsToOptimal := math.Ceil(optimalFund / contribution)

	var b strings.Builder
	b.WriteString("## Emergency Fund Strategy\n\n")
	b.WriteString("An emergency fund is essential for financial security. It provides a safety net for unexpected expenses like medical emergencies, car repairs, or job loss.\n\n")

	b.WriteString("### Recommended Emergency Fund Size\n\n")
	fmt.Fprintf(&b, "Based on your monthly expenses of %s, your emergency fund should be:\n\n", e.format.Currency(monthlyExpenses))
	fmt.Fprintf(&b, "- **Minimum goal**: %s (3 months of expenses)\n", e.format.Currency(minimumFund))
	fmt.Fprintf(&b, "- **Optimal goal**: %s (6 months of expenses)\n\n", e.format.Currency(optimalFund))

	b.WriteString("### Building Your Emergency Fund\n\n")
	fmt.Fprintf(&b, "With your current remaining monthly amount of %s, you could contribute %s monthly to your emergency fund.\n\n",
		e.format.Currency(s.RemainingAmount), e.format.Currency(contribution))
	fmt.Fprintf(&b, "- Time to reach minimum goal (3 months of expenses): %s months\n", plain(monthsToMinimum))
	fmt.Fprintf(&b, "- Time to reach optimal goal (6 months of expenses): %s months\n\n", plain(monthsToOptimal))

	b.WriteString("### Where to Keep Your Emergency Fund\n\n")
	b.WriteString("Your emergency fund should be accessible but not too easy to spend:\n\n")
	writeBullets(&b, []string{
		"**High-yield savings account**: Offers better interest rates than regular savings",
		"**Fixed deposits with partial withdrawal**: Good balance of accessibility and returns",
		"**Liquid funds**: Can provide slightly better returns with minimal risk",
	})
	b.WriteString("\n")

	b.WriteString("### Tips to Build Your Fund Faster\n\n")
	writeBullets(&b, []string{
		"Set up automatic transfers to your emergency fund account",
		"Allocate any windfalls (tax refunds, bonuses, gifts) to your fund",
		"Consider a temporary side income to accelerate your progress",
		"Reduce discretionary spending temporarily to increase contributions",
		"Start with a smaller goal (1 month of expenses) to build momentum",
	})

	return b.String()
}

// RetirementProjection holds the numbers behind the retirement advice
type RetirementProjection struct {
	YearsToRetirement         int
	MonthlyExpensesRetirement float64
	FutureAnnualExpenses      float64
	Corpus                    float64
	MonthlyInvestment         float64
}

// ProjectRetirement inflates a share of current income to the retirement date, discounts
// the retirement years' withdrawals into a corpus, and spreads its present value evenly
// over the accumulation months
func ProjectRetirement(a RetirementAssumptions, monthlyIncome float64) RetirementProjection {
	years := a.YearsToRetirement()
	monthlyExpenses := monthlyIncome * a.ReplacementRatio
	futureAnnual := monthlyExpenses * 12 * math.Pow(1+a.InflationRate, float64(years))
	corpus := futureAnnual * ((1 - math.Pow(1+a.PostRetirementReturn, -float64(a.YearsInRetirement))) / a.PostRetirementReturn)
	monthly := (corpus / math.Pow(1+a.PreRetirementReturn, float64(years))) / float64(years*12)

	return RetirementProjection{
		YearsToRetirement:         years,
		MonthlyExpensesRetirement: monthlyExpenses,
		FutureAnnualExpenses:      futureAnnual,
		Corpus:                    corpus,
		MonthlyInvestment:         monthly,
	}
}

// RetirementAdvice renders the corpus target, the monthly investment needed and a
// horizon-based portfolio allocation
func (e *Engine) RetirementAdvice(s *models.FinancialSnapshot) string {
	if s == nil {
		return MsgSnapshotRequired
	}

	a := e.retirement
	p := ProjectRetirement(a, s.IncomeAmount)

	var b strings.Builder
	b.WriteString("## Retirement Planning Strategy\n\n")
	b.WriteString("Planning for retirement is one of the most important financial goals. Here's a personalized retirement plan based on your current income.\n\n")

	b.WriteString("### Retirement Corpus Required\n\n")
	fmt.Fprintf(&b, "Assuming you retire at age %d and live until %d:\n\n", a.RetirementAge, a.RetirementAge+a.YearsInRetirement)
	fmt.Fprintf(&b, "- Current monthly income: %s\n", e.format.Currency(s.IncomeAmount))
	fmt.Fprintf(&b, "- Estimated monthly expenses in retirement: %s (%s%% of current income)\n",
		e.format.Currency(p.MonthlyExpensesRetirement), percentOf(a.ReplacementRatio))
	fmt.Fprintf(&b, "- Inflation-adjusted monthly expenses at retirement: %s\n", e.format.Currency(round(p.FutureAnnualExpenses/12)))
	fmt.Fprintf(&b, "- **Target retirement corpus**: %s\n\n", e.format.Currency(round(p.Corpus)))

	b.WriteString("### Required Monthly Investment\n\n")
	fmt.Fprintf(&b, "To build your retirement corpus over the next %d years, you need to invest approximately %s monthly, assuming an average annual return of %s%%.\n\n",
		p.YearsToRetirement, e.format.Currency(round(p.MonthlyInvestment)), percentOf(a.PreRetirementReturn))

	b.WriteString("### Recommended Retirement Portfolio Allocation\n\n")
	fmt.Fprintf(&b, "Based on a %d-year time horizon:\n\n", p.YearsToRetirement)
	switch {
	case p.YearsToRetirement > 20:
		writeBullets(&b, []string{"Equity funds: 70-75%", "Debt instruments: 20-25%", "Gold/Alternative investments: 5%"})
	case p.YearsToRetirement > 10:
		writeBullets(&b, []string{"Equity funds: 60-65%", "Debt instruments: 30-35%", "Gold/Alternative investments: 5%"})
	default:
		writeBullets(&b, []string{"Equity funds: 40-50%", "Debt instruments: 45-55%", "Gold/Alternative investments: 5%"})
	}

	b.WriteString("\n### Recommended Retirement Investment Vehicles\n\n")
	b.WriteString("1. **National Pension System (NPS)**: Tax-efficient retirement vehicle with equity exposure\n")
	b.WriteString("2. **Equity Linked Savings Scheme (ELSS)**: Tax-saving mutual funds with high growth potential\n")
	b.WriteString("3. **Public Provident Fund (PPF)**: Government-backed savings scheme with tax benefits\n")
	b.WriteString("4. **Mutual Fund SIPs**: Systematic investment for long-term wealth building\n")
	b.WriteString("5. **Corporate Fixed Deposits**: Higher interest rates than regular bank deposits\n")

	return b.String()
}

// CategoryAdvice renders the guideline comparison, all tips and benchmark copy for one category
func (e *Engine) CategoryAdvice(category models.CategorySpend, s *models.FinancialSnapshot) string {
	if s == nil {
		return MsgSnapshotRequired
	}

	ratio := s.CategoryRatio(category)
	g := e.tables.Guideline(category.Name)
	lower := strings.ToLower(category.Name)
	idealPct := fixed(g.Ideal*100, 0)
	highPct := fixed(g.High*100, 0)

	var b strings.Builder
	fmt.Fprintf(&b, "## %s Spending Analysis\n\n", category.Name)
	fmt.Fprintf(&b, "Your current %s spending is %s per month, which is %s%% of your income.\n\n",
		lower, e.format.Currency(category.Value), fixed(ratio*100, 1))

	switch {
	case ratio > g.High:
		fmt.Fprintf(&b, "**This is significantly higher than recommended.** Financial experts suggest keeping %s expenses to %s-%s%% of your income (%s-%s).\n\n",
			lower, idealPct, highPct, e.format.Currency(round(s.IncomeAmount*g.Ideal)), e.format.Currency(round(s.IncomeAmount*g.High)))
	case ratio > g.Ideal:
		fmt.Fprintf(&b, "**This is slightly higher than ideal.** Financial experts suggest keeping %s expenses to around %s%% of your income (%s).\n\n",
			lower, idealPct, e.format.Currency(round(s.IncomeAmount*g.Ideal)))
	default:
		fmt.Fprintf(&b, "**This is within the recommended range.** Financial experts suggest keeping %s expenses to %s-%s%% of your income, and you're doing well at %s%%.\n\n",
			lower, idealPct, highPct, fixed(ratio*100, 1))
	}

	fmt.Fprintf(&b, "### Tips to Optimize %s Spending\n\n", category.Name)
	writeBullets(&b, e.tables.Tips(category.Name))

	if e.tables.HasGuideline(category.Name) {
		b.WriteString("\n### Benchmarking Information\n\n")
		fmt.Fprintf(&b, "The average Indian household spends approximately %s-%s%% of their income on %s.\n", idealPct, highPct, lower)
		if line, ok := e.tables.Benchmark(category.Name); ok {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	return b.String()
}
