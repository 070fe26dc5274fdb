package advisory

import (
	"fmt"
	"strings"

	"getwise/internal/models"
)

// Resolution is the outcome of routing a free-text query
type Resolution struct {
	Topic    models.QueryTopic
	Phrase   string
	Category *models.CategorySpend
}

type route struct {
	phrase   string
	topic    models.QueryTopic
	category *models.CategorySpend
}

// routes lists the static phrases in declaration order followed by one phrase per
// snapshot category (its lowercased name). A category phrase equal to an earlier phrase
// takes over that phrase's slot instead of being appended.
func (e *Engine) routes(s *models.FinancialSnapshot) []route {
	routes := make([]route, 0, len(e.tables.phrases)+len(s.Categories))
	index := make(map[string]int, cap(routes))
	for _, p := range e.tables.phrases {
		if _, seen := index[p.phrase]; seen {
			continue
		}
		index[p.phrase] = len(routes)
		routes = append(routes, route{phrase: p.phrase, topic: p.topic})
	}

	for i := range s.Categories {
		category := s.Categories[i]
		r := route{
			phrase:   strings.ToLower(category.Name),
			topic:    models.QueryTopicCategory,
			category: &category,
		}
		if at, seen := index[r.phrase]; seen {
			routes[at] = r
			continue
		}
		index[r.phrase] = len(routes)
		routes = append(routes, r)
	}
	return routes
}

// ResolveQuery returns the first route whose phrase occurs in the lowercased query.
// Matching is by substring, so a query mentioning "credit card rewards" routes to debt advice.
func (e *Engine) ResolveQuery(query string, s *models.FinancialSnapshot) Resolution {
	if s == nil {
		return Resolution{Topic: models.QueryTopicGeneral}
	}
	normalized := strings.ToLower(query)
	for _, r := range e.routes(s) {
		if strings.Contains(normalized, r.phrase) {
			return Resolution{Topic: r.topic, Phrase: r.phrase, Category: r.category}
		}
	}
	return Resolution{Topic: models.QueryTopicGeneral}
}

// AnswerQuery routes a free-text question to the matching generator, falling back to a
// summary of the snapshot when nothing matches
func (e *Engine) AnswerQuery(query string, s *models.FinancialSnapshot) string {
	if query == "" || s == nil {
		return MsgQueryRequired
	}
	return e.Answer(query, e.ResolveQuery(query, s), s)
}

// Answer renders the advice for an already resolved query
func (e *Engine) Answer(query string, r Resolution, s *models.FinancialSnapshot) string {
	if query == "" || s == nil {
		return MsgQueryRequired
	}

	switch r.Topic {
	case models.QueryTopicSavings:
		return e.SavingsTips(s)
	case models.QueryTopicInvestment:
		return e.InvestmentAdvice(s)
	case models.QueryTopicBudget:
		return e.BudgetPlan(s)
	case models.QueryTopicDebt:
		return e.DebtManagementAdvice(s)
	case models.QueryTopicEmergencyFund:
		return e.EmergencyFundAdvice(s)
	case models.QueryTopicRetirement:
		return e.RetirementAdvice(s)
	case models.QueryTopicCategory:
		if r.Category != nil {
			return e.CategoryAdvice(*r.Category, s)
		}
	}
	return e.generalAnswer(query, s)
}

func (e *Engine) generalAnswer(query string, s *models.FinancialSnapshot) string {
	var b strings.Builder
	b.WriteString("## Response to Your Query\n\n")
	fmt.Fprintf(&b, "I understand you're asking about: \"%s\"\n\n", query)
	b.WriteString("Based on your financial situation:\n\n")
	fmt.Fprintf(&b, "- Monthly income: %s\n", e.format.Currency(s.IncomeAmount))
	fmt.Fprintf(&b, "- Monthly expenses: %s\n", e.format.Currency(s.ExpensesAmount))
	fmt.Fprintf(&b, "- Remaining balance: %s\n\n", e.format.Currency(s.RemainingAmount))
	fmt.Fprintf(&b, "Your current savings rate is %s%% of your income. ", fixed(s.SavingsRate(), 1))
	b.WriteString("Financial experts typically recommend saving 20% of your income.\n\n")
	b.WriteString("For more specific advice, try asking about saving tips, investment recommendations, budgeting help, or specific spending categories.")
	return b.String()
}
