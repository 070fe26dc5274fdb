package advisory

import (
	"getwise/internal/models"
)

// Thresholds are spending ratios (fractions of income) checked from most to least severe
type Thresholds struct {
	Critical float64
	High     float64
	Moderate float64
}

// IncomeLevels are the lower bounds of the income tiers above LOW
type IncomeLevels struct {
	Medium   float64
	High     float64
	VeryHigh float64
}

// AssetAllocation is an equity/debt/liquid split in whole percent
type AssetAllocation struct {
	Equity int
	Debt   int
	Liquid int
}

type tierCopy struct {
	summary string
	tips    []string
}

type queryPhrase struct {
	phrase string
	topic  models.QueryTopic
}

// Tables holds the static lookup data the engine reads. Build it once with DefaultTables
// and share it; nothing in the engine mutates it.
type Tables struct {
	Thresholds   Thresholds
	IncomeLevels IncomeLevels

	guidelineOrder   []string
	guidelines       map[string]models.CategoryGuideline
	defaultGuideline models.CategoryGuideline

	tips        map[string][]string
	defaultTips []string

	investments map[models.IncomeTier]map[models.SpendingBucket][]string
	allocations map[models.SpendingBucket]AssetAllocation
	tiers       map[models.SpendingTier]tierCopy
	benchmarks  map[string]string
	phrases     []queryPhrase
}

// DefaultTables returns the built-in guideline, tip and suggestion tables
func DefaultTables() *Tables {
	return &Tables{
		Thresholds: Thresholds{
			Critical: 0.9,
			High:     0.7,
			Moderate: 0.5,
		},
		IncomeLevels: IncomeLevels{
			Medium:   50000,
			High:     100000,
			VeryHigh: 200000,
		},
		guidelineOrder:   models.AllCategories(),
		guidelines:       initGuidelines(),
		defaultGuideline: models.CategoryGuideline{Ideal: 0.1, High: 0.15},
		tips:             initExpenseReductionTips(),
		defaultTips: []string{
			"Track all expenses in this category to identify unnecessary spending",
			"Set a monthly budget limit for this category",
			"Look for more affordable alternatives or bulk purchase options",
		},
		investments: initInvestmentSuggestions(),
		allocations: map[models.SpendingBucket]AssetAllocation{
			models.SpendingBucketHigh:     {Equity: 30, Debt: 40, Liquid: 30},
			models.SpendingBucketModerate: {Equity: 50, Debt: 30, Liquid: 20},
			models.SpendingBucketLow:      {Equity: 70, Debt: 20, Liquid: 10},
		},
		tiers:      initTierCopy(),
		benchmarks: initBenchmarks(),
		phrases:    initQueryPhrases(),
	}
}

func initGuidelines() map[string]models.CategoryGuideline {
	return map[string]models.CategoryGuideline{
		models.CategoryHousing:        {Ideal: 0.3, High: 0.4},
		models.CategoryFood:           {Ideal: 0.15, High: 0.25},
		models.CategoryTransportation: {Ideal: 0.1, High: 0.15},
		models.CategoryEntertainment:  {Ideal: 0.05, High: 0.1},
		models.CategoryShopping:       {Ideal: 0.1, High: 0.2},
		models.CategoryUtilities:      {Ideal: 0.08, High: 0.12},
		models.CategoryHealthcare:     {Ideal: 0.05, High: 0.1},
		models.CategoryEducation:      {Ideal: 0.1, High: 0.15},
	}
}

func initExpenseReductionTips() map[string][]string {
	return map[string][]string{
		models.CategoryHousing: {
			"Consider renegotiating your rent or refinancing your home loan",
			"Look for a roommate to share housing costs",
			"Explore more affordable housing options if your rent exceeds 30% of income",
		},
		models.CategoryFood: {
			"Plan meals in advance and prepare a shopping list to avoid impulse purchases",
			"Cook at home more often and limit eating out to special occasions",
			"Buy groceries in bulk and look for seasonal produce which is typically cheaper",
		},
		models.CategoryTransportation: {
			"Consider using public transportation or carpooling to save on fuel costs",
			"Maintain your vehicle regularly to avoid costly repairs",
			"Compare insurance providers annually to ensure the best rates",
		},
		models.CategoryEntertainment: {
			"Look for free or low-cost entertainment options in your area",
			"Consider sharing subscription services with family or friends",
			"Set a monthly entertainment budget and stick to it",
		},
		models.CategoryShopping: {
			"Distinguish between needs and wants before making purchases",
			"Wait 24-48 hours before making non-essential purchases",
			"Look for sales, discounts, or cashback offers",
		},
		models.CategoryUtilities: {
			"Invest in energy-efficient appliances to reduce electricity bills",
			"Consider switching to a different service provider for better rates",
			"Reduce usage during peak hours when rates may be higher",
		},
		models.CategoryHealthcare: {
			"Consider preventive care to avoid costly medical treatments",
			"Compare prices for medications and ask about generic alternatives",
			"Review your health insurance plan for the best coverage",
		},
		models.CategoryEducation: {
			"Look for scholarships, grants, or financial aid opportunities",
			"Consider online courses or community colleges for lower costs",
			"Invest in skills that can increase your earning potential",
		},
	}
}

func initInvestmentSuggestions() map[models.IncomeTier]map[models.SpendingBucket][]string {
	return map[models.IncomeTier]map[models.SpendingBucket][]string{
		models.IncomeTierLow: {
			models.SpendingBucketLow: {
				"Consider starting a recurring deposit with ₹1,000-₹2,000 monthly",
				"Invest in a conservative mutual fund SIP of ₹500-₹1,000 monthly",
				"Open a PPF account with minimum contribution of ₹500 monthly",
			},
			models.SpendingBucketModerate: {
				"Set up an emergency fund with 3 months of expenses",
				"Consider investing ₹500 monthly in a low-risk mutual fund",
				"Look into government schemes like Sukanya Samriddhi or NSC",
			},
			models.SpendingBucketHigh: {
				"Focus on reducing expenses before considering investments",
				"Start small with ₹100-₹500 monthly in a recurring deposit",
				"Consider microinvestment options with minimal contributions",
			},
		},
		models.IncomeTierMedium: {
			models.SpendingBucketLow: {
				"Invest ₹5,000-₹10,000 monthly in equity mutual funds via SIP",
				"Consider tax-saving ELSS funds to save up to ₹46,800 in taxes",
				"Allocate ₹2,000-₹3,000 monthly to debt funds for stability",
			},
			models.SpendingBucketModerate: {
				"Start an SIP of ₹3,000-₹5,000 in balanced mutual funds",
				"Consider NPS contribution of ₹2,000-₹4,000 monthly for retirement",
				"Invest in FDs or RDs with ₹2,000-₹5,000 monthly for short-term goals",
			},
			models.SpendingBucketHigh: {
				"Reduce discretionary spending and start with ₹1,000-₹2,000 SIP",
				"Build an emergency fund before other investments",
				"Consider liquid funds for short-term parking of excess funds",
			},
		},
		models.IncomeTierHigh: {
			models.SpendingBucketLow: {
				"Diversify with ₹15,000-₹25,000 monthly in equity, ₹10,000 in debt funds",
				"Consider direct equity investments of ₹10,000-₹20,000 monthly",
				"Explore REITs with ₹5,000-₹10,000 monthly for real estate exposure",
			},
			models.SpendingBucketModerate: {
				"Allocate ₹10,000-₹15,000 monthly to multi-cap mutual funds",
				"Consider corporate bonds or debt funds with ₹5,000-₹10,000 monthly",
				"Invest in gold ETFs with ₹3,000-₹5,000 monthly for diversification",
			},
			models.SpendingBucketHigh: {
				"Focus on expense reduction and allocate ₹5,000-₹10,000 to mutual funds",
				"Consider conservative hybrid funds with ₹5,000 monthly",
				"Build emergency corpus of 6 months' expenses before other investments",
			},
		},
		models.IncomeTierVeryHigh: {
			models.SpendingBucketLow: {
				"Consider professional portfolio management with ₹50,000+ monthly allocation",
				"Diversify across equity (40%), debt (30%), real estate (20%), and alternatives (10%)",
				"Consider international equity exposure with ₹15,000-₹25,000 monthly",
			},
			models.SpendingBucketModerate: {
				"Allocate ₹25,000-₹40,000 monthly to a balanced portfolio",
				"Consider tax-free bonds and structured products for tax efficiency",
				"Explore alternative investments like P2P lending with ₹10,000-₹15,000 monthly",
			},
			models.SpendingBucketHigh: {
				"Review and optimize spending patterns before increasing investments",
				"Allocate ₹15,000-₹25,000 monthly to a conservative portfolio",
				"Consider tax planning with ₹10,000-₹15,000 monthly in ELSS and NPS",
			},
		},
	}
}

// Summaries take the spending percentage already formatted to one decimal place.
func initTierCopy() map[models.SpendingTier]tierCopy {
	return map[models.SpendingTier]tierCopy{
		models.SpendingTierCritical: {
			summary: "Your spending is at a critical level (%s%% of income). Immediate action is needed to reduce expenses and avoid debt.",
			tips: []string{
				"Implement a strict budget for all essential expenses",
				"Temporarily freeze all non-essential spending",
				"Consider additional income sources to boost your earnings",
				"Set up automatic transfers to savings right after receiving income",
			},
		},
		models.SpendingTierHigh: {
			summary: "Your spending is high (%s%% of income). You should focus on reducing expenses to build savings.",
			tips: []string{
				"Aim to reduce monthly expenses by 15-20%",
				"Prioritize needs over wants in your spending decisions",
				"Build an emergency fund with at least 3 months of expenses",
				"Consider the 50/30/20 rule: 50% needs, 30% wants, 20% savings",
			},
		},
		models.SpendingTierModerate: {
			summary: "Your spending is moderate (%s%% of income). There's room to increase savings and investments.",
			tips: []string{
				"Increase your savings rate by 5-10%",
				"Consider setting up automatic transfers to investment accounts",
				"Build an emergency fund with 6 months of expenses",
				"Review and optimize your tax planning strategies",
			},
		},
		models.SpendingTierLow: {
			summary: "Your spending is well-controlled (%s%% of income). Focus on optimizing investments and long-term financial planning.",
			tips: []string{
				"Maximize tax-advantaged investment options",
				"Consider diversifying your investment portfolio",
				"Set specific financial goals for your savings",
				"Review insurance coverage to ensure adequate protection",
			},
		},
	}
}

func initBenchmarks() map[string]string {
	return map[string]string{
		models.CategoryHousing:        "In urban areas, the recommended housing expense is 25-30% of income, while in metro cities it may reach up to 35-40%.",
		models.CategoryFood:           "A single person typically spends ₹6,000-₹10,000 per month on food, while a family of four spends ₹15,000-₹25,000 per month.",
		models.CategoryTransportation: "The average cost of commuting in urban areas ranges from ₹3,000-₹6,000 per month, excluding vehicle loans.",
	}
}

// Declaration order is match priority.
func initQueryPhrases() []queryPhrase {
	return []queryPhrase{
		{"how can i save", models.QueryTopicSavings},
		{"saving tips", models.QueryTopicSavings},
		{"save money", models.QueryTopicSavings},

		{"how should i invest", models.QueryTopicInvestment},
		{"investment", models.QueryTopicInvestment},
		{"where to invest", models.QueryTopicInvestment},

		{"budget", models.QueryTopicBudget},
		{"create budget", models.QueryTopicBudget},
		{"help with budget", models.QueryTopicBudget},

		{"debt", models.QueryTopicDebt},
		{"loan", models.QueryTopicDebt},
		{"credit", models.QueryTopicDebt},

		{"emergency fund", models.QueryTopicEmergencyFund},
		{"rainy day fund", models.QueryTopicEmergencyFund},

		{"retirement", models.QueryTopicRetirement},
		{"retire", models.QueryTopicRetirement},
	}
}

// Guideline returns the guideline for a category name, or the default guideline
func (t *Tables) Guideline(name string) models.CategoryGuideline {
	if g, ok := t.guidelines[name]; ok {
		return g
	}
	return t.defaultGuideline
}

// HasGuideline reports whether the category has its own guideline
func (t *Tables) HasGuideline(name string) bool {
	_, ok := t.guidelines[name]
	return ok
}

// Tips returns a copy of the expense reduction tips for a category, or the default tips
func (t *Tables) Tips(name string) []string {
	tips, ok := t.tips[name]
	if !ok {
		tips = t.defaultTips
	}
	out := make([]string, len(tips))
	copy(out, tips)
	return out
}

// Benchmark returns the extra benchmarking sentence for a category, if any
func (t *Tables) Benchmark(name string) (string, bool) {
	line, ok := t.benchmarks[name]
	return line, ok
}

// InvestmentSuggestions returns a copy of the suggestions for an income tier and spending bucket
func (t *Tables) InvestmentSuggestions(tier models.IncomeTier, bucket models.SpendingBucket) []string {
	suggestions := t.investments[tier][bucket]
	out := make([]string, len(suggestions))
	copy(out, suggestions)
	return out
}

// Allocation returns the asset allocation for a spending bucket
func (t *Tables) Allocation(bucket models.SpendingBucket) AssetAllocation {
	return t.allocations[bucket]
}

// Guidelines lists every explicit guideline in declaration order followed by the default
func (t *Tables) Guidelines() []models.GuidelineEntry {
	entries := make([]models.GuidelineEntry, 0, len(t.guidelineOrder)+1)
	for _, name := range t.guidelineOrder {
		entries = append(entries, models.GuidelineEntry{Category: name, Guideline: t.guidelines[name]})
	}
	entries = append(entries, models.GuidelineEntry{Category: "default", Guideline: t.defaultGuideline, Default: true})
	return entries
}

// ClassifySpending returns the most severe tier whose threshold the ratio reaches
func (t *Tables) ClassifySpending(ratio float64) models.SpendingTier {
	switch {
	case ratio >= t.Thresholds.Critical:
		return models.SpendingTierCritical
	case ratio >= t.Thresholds.High:
		return models.SpendingTierHigh
	case ratio >= t.Thresholds.Moderate:
		return models.SpendingTierModerate
	default:
		return models.SpendingTierLow
	}
}

// BucketSpending returns the investment spending bucket for a ratio
func (t *Tables) BucketSpending(ratio float64) models.SpendingBucket {
	switch {
	case ratio >= t.Thresholds.High:
		return models.SpendingBucketHigh
	case ratio >= t.Thresholds.Moderate:
		return models.SpendingBucketModerate
	default:
		return models.SpendingBucketLow
	}
}

// ClassifyIncome returns the highest income tier whose lower bound income reaches
func (t *Tables) ClassifyIncome(income float64) models.IncomeTier {
	switch {
	case income >= t.IncomeLevels.VeryHigh:
		return models.IncomeTierVeryHigh
	case income >= t.IncomeLevels.High:
		return models.IncomeTierHigh
	case income >= t.IncomeLevels.Medium:
		return models.IncomeTierMedium
	default:
		return models.IncomeTierLow
	}
}
