package models

// AdviceKind selects one of the advice generators
type AdviceKind string

const (
	AdviceKindFinancial     AdviceKind = "financial"
	AdviceKindInvestment    AdviceKind = "investment"
	AdviceKindSavings       AdviceKind = "savings"
	AdviceKindBudget        AdviceKind = "budget"
	AdviceKindDebt          AdviceKind = "debt"
	AdviceKindEmergencyFund AdviceKind = "emergency-fund"
	AdviceKindRetirement    AdviceKind = "retirement"

	// AdviceKindCategory labels single-category analyses. It has its own endpoint and is
	// not accepted as a generic advice kind.
	AdviceKindCategory AdviceKind = "category"
)

// AllAdviceKinds returns every supported advice kind
func AllAdviceKinds() []AdviceKind {
	return []AdviceKind{
		AdviceKindFinancial,
		AdviceKindInvestment,
		AdviceKindSavings,
		AdviceKindBudget,
		AdviceKindDebt,
		AdviceKindEmergencyFund,
		AdviceKindRetirement,
	}
}

// IsValidAdviceKind checks if kind is a supported advice kind
func IsValidAdviceKind(kind string) bool {
	for _, k := range AllAdviceKinds() {
		if string(k) == kind {
			return true
		}
	}
	return false
}

// QueryTopic is the intent a free-text query was routed to
type QueryTopic string

const (
	QueryTopicSavings       QueryTopic = "savings"
	QueryTopicInvestment    QueryTopic = "investment"
	QueryTopicBudget        QueryTopic = "budget"
	QueryTopicDebt          QueryTopic = "debt"
	QueryTopicEmergencyFund QueryTopic = "emergency_fund"
	QueryTopicRetirement    QueryTopic = "retirement"
	QueryTopicCategory      QueryTopic = "category"
	QueryTopicGeneral       QueryTopic = "general"
)

// AdviceResult is a rendered piece of Markdown advice
type AdviceResult struct {
	Kind        AdviceKind  `json:"kind"`
	Category    string      `json:"category,omitempty"`
	Advice      string      `json:"advice"`
	Assessment  *Assessment `json:"assessment,omitempty"`
	GeneratedAt string      `json:"generated_at"`
}

// QueryAnswer is the response to a free-text question
type QueryAnswer struct {
	Query       string     `json:"query"`
	Topic       QueryTopic `json:"topic"`
	Phrase      string     `json:"phrase,omitempty"`
	Advice      string     `json:"advice"`
	GeneratedAt string     `json:"generated_at"`
}
