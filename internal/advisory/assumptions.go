package advisory

// RetirementAssumptions are the fixed demographic and market inputs of the retirement projection.
// None of them come from the snapshot.
type RetirementAssumptions struct {
	CurrentAge           int
	RetirementAge        int
	YearsInRetirement    int
	ReplacementRatio     float64
	InflationRate        float64
	PreRetirementReturn  float64
	PostRetirementReturn float64
}

// DefaultRetirementAssumptions returns age 30 to 60, twenty years of retirement,
// 80% income replacement, 6% inflation, 10% return before and 7% after retirement
func DefaultRetirementAssumptions() RetirementAssumptions {
	return RetirementAssumptions{
		CurrentAge:           30,
		RetirementAge:        60,
		YearsInRetirement:    20,
		ReplacementRatio:     0.8,
		InflationRate:        0.06,
		PreRetirementReturn:  0.10,
		PostRetirementReturn: 0.07,
	}
}

// YearsToRetirement returns the accumulation horizon
func (a RetirementAssumptions) YearsToRetirement() int {
	return a.RetirementAge - a.CurrentAge
}
