package nutrition

import (
	"errors"
	"math"
	"time"
)

// ErrCalculation is returned when a plan cannot be computed because a numeric
// profile input is not finite (an unparseable stored height or weight).
var ErrCalculation = errors.New("nutrition plan calculation failed: non-finite profile input")

// Energy and macro constants used by the calculation.
const (
	kcalPerKgBodyMass  = 7700 // assumed energy equivalent of 1 kg of body mass
	lossRateKgPerWeek  = 0.5
	gainCalorieRatio   = 1.15
	proteinGramsPerKg  = 2.2
	fatGramsPerKg      = 0.88
	kcalPerGramProtein = 4
	kcalPerGramFat     = 9
	kcalPerGramCarbs   = 4
	kgToLb             = 2.205
)

var activityFactors = map[ActivityLevel]float64{
	ActivityLow:      1.2,
	ActivityModerate: 1.375,
	ActivityHigh:     1.55,
}

// Trace is the derivation record kept on a plan for diagnostic display.
type Trace struct {
	BMR                   float64 `json:"bmr"`
	TDEE                  float64 `json:"tdee"`
	TargetCalories        float64 `json:"targetCalories"`
	WeightChangePerWeekKg float64 `json:"weightChangePerWeekKg"`
	ProteinG              float64 `json:"proteinG"`
	ProteinCal            float64 `json:"proteinCal"`
	FatG                  float64 `json:"fatG"`
	FatCal                float64 `json:"fatCal"`
	CarbsG                float64 `json:"carbsG"`
	CarbsCal              float64 `json:"carbsCal"`
}

// Plan is a personalized daily macro-nutrient target.
type Plan struct {
	Calories        int     `json:"calories"`
	CarbsG          int     `json:"carbs"`
	ProteinG        int     `json:"protein"`
	FatsG           int     `json:"fats"`
	WeightChangeLbs float64 `json:"weightChange"`
	GoalType        Goal    `json:"goalType"`
	TargetDate      string  `json:"targetDate"`
	Trace           *Trace  `json:"trace,omitempty"`
}

// FallbackPlan is the fixed plan substituted when the calculation fails.
func FallbackPlan() Plan {
	return Plan{
		Calories: 2000,
		CarbsG:   225,
		ProteinG: 150,
		FatsG:    65,
		GoalType: GoalMaintain,
	}
}

// Age returns whole years elapsed between b and now, decrementing when now's
// month/day has not yet reached the birthday.
func Age(b Birthdate, now time.Time) int {
	age := now.Year() - b.Year
	if int(now.Month()) < b.Month ||
		(int(now.Month()) == b.Month && now.Day() < b.Day) {
		age--
	}
	return age
}

// ComputePlan derives a nutrition plan from a profile. Deterministic given
// profile and now; no side effects. Returns ErrCalculation when height or
// weight is not finite.
func ComputePlan(p Profile, now time.Time) (Plan, error) {
	if !isFinite(p.HeightCm) || !isFinite(p.WeightKg) {
		return Plan{}, ErrCalculation
	}

	age := Age(p.Birthdate, now)

	// Mifflin-St Jeor, with the product's 6.2 height coefficient.
	bmr := 10*p.WeightKg + 6.2*p.HeightCm - 5*float64(age) + 5
	if p.Gender != GenderMale {
		bmr = 10*p.WeightKg + 6.2*p.HeightCm - 5*float64(age) - 161
	}

	factor, ok := activityFactors[p.ActivityLevel]
	if !ok {
		factor = activityFactors[ActivityModerate]
	}
	tdee := bmr * factor

	targetCalories := tdee
	weightChangeKg := 0.0
	switch p.Goal {
	case GoalLose:
		dailyDeficit := lossRateKgPerWeek * kcalPerKgBodyMass / 7
		targetCalories = tdee - dailyDeficit
		weightChangeKg = lossRateKgPerWeek
	case GoalGain:
		targetCalories = tdee * gainCalorieRatio
		weightChangeKg = (targetCalories - tdee) * 7 / kcalPerKgBodyMass
	}

	proteinG := math.Round(proteinGramsPerKg * p.WeightKg)
	proteinCal := proteinG * kcalPerGramProtein
	fatG := math.Round(fatGramsPerKg * p.WeightKg)
	fatCal := fatG * kcalPerGramFat
	carbsCal := targetCalories - (proteinCal + fatCal)
	// Protein and fat calories can exceed the target for very low-calorie
	// profiles; carbs floor at zero rather than going negative.
	carbsG := math.Max(0, math.Round(carbsCal/kcalPerGramCarbs))

	return Plan{
		Calories:        int(math.Round(targetCalories)),
		CarbsG:          int(carbsG),
		ProteinG:        int(proteinG),
		FatsG:           int(fatG),
		WeightChangeLbs: math.Round(math.Abs(weightChangeKg*kgToLb)*10) / 10,
		GoalType:        p.Goal,
		TargetDate:      now.AddDate(0, 0, 7).Format("January 2"),
		Trace: &Trace{
			BMR:                   bmr,
			TDEE:                  tdee,
			TargetCalories:        targetCalories,
			WeightChangePerWeekKg: weightChangeKg,
			ProteinG:              proteinG,
			ProteinCal:            proteinCal,
			FatG:                  fatG,
			FatCal:                fatCal,
			CarbsG:                carbsG,
			CarbsCal:              carbsCal,
		},
	}, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
