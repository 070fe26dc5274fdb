package services

import (
	"sync"
	"time"

	"getwise/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

const (
	// MaxSampleDays matches the largest day history a snapshot request accepts
	MaxSampleDays     = 366
	DefaultSampleDays = 30

	biWeeklyDays = 14
	daysPerMonth = 30
)

// SnapshotGeneratorInterface builds realistic sample snapshots for demos and local testing
type SnapshotGeneratorInterface interface {
	Generate(days int, end time.Time) *models.FinancialSnapshot
}

type snapshotGenerator struct {
	mu    sync.Mutex
	faker *gofakeit.Faker
}

// NewSnapshotGenerator creates a generator. A zero seed draws a random one.
func NewSnapshotGenerator(seed int64) SnapshotGeneratorInterface {
	return &snapshotGenerator{faker: gofakeit.New(uint64(seed))}
}

// purchaseProfile describes how often a category is bought and for how much
type purchaseProfile struct {
	category    string
	probability float64
	min, max    float64
}

func dailyPurchaseProfiles() []purchaseProfile {
	return []purchaseProfile{
		{models.CategoryFood, 0.9, 150, 900},
		{models.CategoryTransportation, 0.6, 50, 400},
		{models.CategoryEntertainment, 0.2, 200, 1200},
		{models.CategoryShopping, 0.15, 500, 4000},
		{models.CategoryHealthcare, 0.05, 300, 2500},
		{models.CategoryEducation, 0.03, 500, 3000},
	}
}

// Generate returns a snapshot covering the days ending at end (inclusive).
// Salary lands bi-weekly starting on the first day; rent and utilities are paid every thirty days.
func (g *snapshotGenerator) Generate(days int, end time.Time) *models.FinancialSnapshot {
	days = clampDays(days)

	g.mu.Lock()
	defer g.mu.Unlock()

	monthlySalary := g.faker.RandomString([]string{"40000", "60000", "85000", "120000", "200000"})
	salary := decimal.RequireFromString(monthlySalary)
	payCheque := salary.Div(decimal.NewFromInt(2)).Round(0)
	rent := salary.Mul(decimal.NewFromFloat(g.faker.Float64Range(0.18, 0.38))).Round(0)
	utilities := decimal.NewFromFloat(g.faker.Float64Range(1500, 6000)).Round(0)

	totals := make(map[string]decimal.Decimal)
	records := make([]models.DailyRecord, 0, days)
	income := decimal.Zero
	expenses := decimal.Zero

	start := end.AddDate(0, 0, -(days - 1))
	for i := 0; i < days; i++ {
		dayIncome := decimal.Zero
		daySpend := decimal.Zero

		if i%biWeeklyDays == 0 {
			dayIncome = dayIncome.Add(payCheque)
		}
		if i%daysPerMonth == 0 {
			totals[models.CategoryHousing] = totals[models.CategoryHousing].Add(rent)
			totals[models.CategoryUtilities] = totals[models.CategoryUtilities].Add(utilities)
			daySpend = daySpend.Add(rent).Add(utilities)
		}

		for _, p := range dailyPurchaseProfiles() {
			if g.faker.Float64() >= p.probability {
				continue
			}
			amount := decimal.NewFromFloat(g.faker.Float64Range(p.min, p.max)).Round(2)
			totals[p.category] = totals[p.category].Add(amount)
			daySpend = daySpend.Add(amount)
		}

		income = income.Add(dayIncome)
		expenses = expenses.Add(daySpend)
		records = append(records, models.DailyRecord{
			Date:     start.AddDate(0, 0, i).Format(time.DateOnly),
			Income:   dayIncome.InexactFloat64(),
			Expenses: daySpend.InexactFloat64(),
		})
	}

	categories := make([]models.CategorySpend, 0, len(totals))
	for _, name := range models.AllCategories() {
		if total, ok := totals[name]; ok && total.IsPositive() {
			categories = append(categories, models.CategorySpend{Name: name, Value: total.InexactFloat64()})
		}
	}

	return &models.FinancialSnapshot{
		IncomeAmount:    income.InexactFloat64(),
		ExpensesAmount:  expenses.InexactFloat64(),
		RemainingAmount: income.Sub(expenses).InexactFloat64(),
		Categories:      categories,
		Days:            records,
	}
}

func clampDays(days int) int {
	if days < 1 {
		return 1
	}
	if days > MaxSampleDays {
		return MaxSampleDays
	}
	return days
}
