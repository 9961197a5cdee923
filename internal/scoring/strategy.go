package scoring

// Strategy selects one of the fixed component weightings.
type Strategy string

const (
	SmartBalance   Strategy = "smart_balance"
	FastestWins    Strategy = "fastest_wins"
	HighImpact     Strategy = "high_impact"
	DeadlineDriven Strategy = "deadline_driven"
)

// weights are per-component multipliers expressed in tenths, so fractional
// emphasis stays in integer arithmetic: weighted = base * weight / 10.
type weights struct {
	urgency    int
	importance int
	effort     int
	dependency int
}

var strategyWeights = map[Strategy]weights{
	SmartBalance:   {urgency: 10, importance: 10, effort: 10, dependency: 10},
	FastestWins:    {urgency: 5, importance: 3, effort: 30, dependency: 0},
	HighImpact:     {urgency: 5, importance: 30, effort: 2, dependency: 0},
	DeadlineDriven: {urgency: 30, importance: 5, effort: 2, dependency: 0},
}

var descriptions = map[Strategy]string{
	SmartBalance:   "Balanced priority scoring",
	FastestWins:    "Prioritizing quick wins",
	HighImpact:     "Prioritizing high-impact tasks",
	DeadlineDriven: "Prioritizing deadlines",
}

// Parse maps a strategy token to a known Strategy. Unrecognized tokens fall
// back to SmartBalance; ok reports whether the token was recognized.
// An empty token is the default, not a fallback.
func Parse(s string) (strategy Strategy, ok bool) {
	if s == "" {
		return SmartBalance, true
	}
	st := Strategy(s)
	if _, known := strategyWeights[st]; known {
		return st, true
	}
	return SmartBalance, false
}

// Description returns the human-readable summary of the strategy.
func (s Strategy) Description() string {
	if d, ok := descriptions[s]; ok {
		return d
	}
	return descriptions[SmartBalance]
}

func (s Strategy) weights() weights {
	if w, ok := strategyWeights[s]; ok {
		return w
	}
	return strategyWeights[SmartBalance]
}
