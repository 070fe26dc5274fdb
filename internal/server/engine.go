package server

import (
	"getwise/internal/advisory"
	"getwise/internal/config"
)

// BuildEngine creates the advisory engine described by cfg.
// A zero TipSeed samples tips from a time-seeded source.
func BuildEngine(cfg config.AdvisoryConfig) (*advisory.Engine, error) {
	locale, err := cfg.LocaleTag()
	if err != nil {
		return nil, err
	}

	shuffler := advisory.NewTimeSeededShuffler()
	if cfg.TipSeed != 0 {
		shuffler = advisory.NewShuffler(cfg.TipSeed)
	}

	return advisory.NewEngine(nil,
		advisory.WithFormatter(advisory.NewFormatter(locale)),
		advisory.WithShuffler(shuffler),
		advisory.WithRetirementAssumptions(advisory.RetirementAssumptions{
			CurrentAge:           cfg.CurrentAge,
			RetirementAge:        cfg.RetirementAge,
			YearsInRetirement:    cfg.YearsInRetirement,
			ReplacementRatio:     cfg.ReplacementRatio,
			InflationRate:        cfg.InflationRate,
			PreRetirementReturn:  cfg.PreRetirementReturn,
			PostRetirementReturn: cfg.PostRetirementReturn,
		}),
	), nil
}
