package exhibit

// DefaultTable returns the embedded case exhibit: the threshold scenario
// analysis for the supplier sustainability assessment, thresholds 0.50–0.70
// at 0.05 steps. Regional flagging rates were measured at 0.50, 0.60 and
// 0.70 only; the "Other" cohort is small (n=14) and downstream consumers
// flag it as statistically unreliable.
func DefaultTable() *Table {
	return &Table{
		TotalSuppliers: 1000,
		RegionNames:    []string{"China", "India", "Other"},
		Points: []ReferencePoint{
			{
				Threshold:      0.50,
				Flagged:        571,
				FlaggedPct:     57.1,
				CostMillions:   4.6,
				FalsePositives: 113,
				FalseNegatives: 159,
				AccuracyPct:    72.6,
				Regions: map[string]RegionRate{
					"China": {RatePct: 49.9, SampleSize: 1172},
					"India": {RatePct: 51.7, SampleSize: 60},
					"Other": {RatePct: 42.9, SampleSize: 14},
				},
			},
			{
				Threshold:      0.55,
				Flagged:        747,
				FlaggedPct:     74.7,
				CostMillions:   6.0,
				FalsePositives: 65,
				FalseNegatives: 186,
				AccuracyPct:    74.8,
			},
			{
				Threshold:      0.60,
				Flagged:        861,
				FlaggedPct:     86.1,
				CostMillions:   6.9,
				FalsePositives: 46,
				FalseNegatives: 205,
				AccuracyPct:    74.8,
				Regions: map[string]RegionRate{
					"China": {RatePct: 67.2, SampleSize: 1172},
					"India": {RatePct: 68.3, SampleSize: 60},
					"Other": {RatePct: 84.6, SampleSize: 14},
				},
			},
			{
				Threshold:      0.65,
				Flagged:        967,
				FlaggedPct:     96.7,
				CostMillions:   7.7,
				FalsePositives: 13,
				FalseNegatives: 173,
				AccuracyPct:    81.3,
			},
			{
				Threshold:      0.70,
				Flagged:        994,
				FlaggedPct:     99.4,
				CostMillions:   8.0,
				FalsePositives: 5,
				FalseNegatives: 119,
				AccuracyPct:    87.5,
				Regions: map[string]RegionRate{
					"China": {RatePct: 85.1, SampleSize: 1172},
					"India": {RatePct: 90.0, SampleSize: 60},
					"Other": {RatePct: 92.9, SampleSize: 14},
				},
			},
		},
	}
}
