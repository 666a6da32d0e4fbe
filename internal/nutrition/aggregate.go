package nutrition

// LogEntry is one consumed food item. Entries are immutable after creation;
// the log store only appends.
type LogEntry struct {
	ID               string  `json:"id"`
	Description      string  `json:"description"`
	HealthSuggestion string  `json:"health_suggestion"`
	Calories         float64 `json:"calories"`
	CarbsG           float64 `json:"carbs"`
	ProteinG         float64 `json:"protein"`
	FatsG            float64 `json:"fats"`
	Timestamp        string  `json:"timestamp"`
	ImageRef         string  `json:"imageUrl,omitempty"`
}

// Totals is the sum of a day's logged entries. Zero-valued for a day with no
// entries.
type Totals struct {
	Calories float64 `json:"calories"`
	CarbsG   float64 `json:"carbs"`
	ProteinG float64 `json:"protein"`
	FatsG    float64 `json:"fats"`
}

// Aggregate sums the four numeric fields across entries. Fields left
// unpopulated by a partial analysis result contribute zero; non-finite values
// are ignored for the same reason.
func Aggregate(entries []LogEntry) Totals {
	var t Totals
	for _, e := range entries {
		t.Calories += finiteOrZero(e.Calories)
		t.CarbsG += finiteOrZero(e.CarbsG)
		t.ProteinG += finiteOrZero(e.ProteinG)
		t.FatsG += finiteOrZero(e.FatsG)
	}
	return t
}

// Remaining is today's budget left per macro. Values go negative when the
// user is over target; that state is reported exactly, never clamped.
func Remaining(plan Plan, consumed Totals) Totals {
	return Totals{
		Calories: float64(plan.Calories) - consumed.Calories,
		CarbsG:   float64(plan.CarbsG) - consumed.CarbsG,
		ProteinG: float64(plan.ProteinG) - consumed.ProteinG,
		FatsG:    float64(plan.FatsG) - consumed.FatsG,
	}
}

func finiteOrZero(v float64) float64 {
	if !isFinite(v) {
		return 0
	}
	return v
}
