package models

import (
	"encoding/json"
	"time"

	"github.com/PiovisDevelopment/calorie-flow/backend/internal/nutrition"
	"gorm.io/gorm"
)

// NutritionPlan is the single current macro target. Only one row is live at a
// time; recomputing replaces it rather than versioning it.
type NutritionPlan struct {
	ID              uint           `gorm:"primarykey" json:"-"`
	Calories        int            `gorm:"not null" json:"calories"`
	CarbsG          int            `gorm:"not null" json:"carbs"`
	ProteinG        int            `gorm:"not null" json:"protein"`
	FatsG           int            `gorm:"not null" json:"fats"`
	WeightChangeLbs float64        `json:"weightChange"`
	GoalType        string         `gorm:"size:32" json:"goalType"`
	TargetDate      string         `gorm:"size:32" json:"targetDate"`
	TraceJSON       string         `gorm:"type:text" json:"-"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (NutritionPlan) TableName() string {
	return "nutrition_plans"
}

// NewNutritionPlan converts a computed plan into its persisted form.
func NewNutritionPlan(plan nutrition.Plan) (*NutritionPlan, error) {
	row := &NutritionPlan{
		Calories:        plan.Calories,
		CarbsG:          plan.CarbsG,
		ProteinG:        plan.ProteinG,
		FatsG:           plan.FatsG,
		WeightChangeLbs: plan.WeightChangeLbs,
		GoalType:        string(plan.GoalType),
		TargetDate:      plan.TargetDate,
	}
	if plan.Trace != nil {
		data, err := json.Marshal(plan.Trace)
		if err != nil {
			return nil, err
		}
		row.TraceJSON = string(data)
	}
	return row, nil
}

// Plan converts the persisted row back into the engine's plan type. A trace
// column that fails to decode is treated as malformed persisted state.
func (p *NutritionPlan) Plan() (nutrition.Plan, error) {
	plan := nutrition.Plan{
		Calories:        p.Calories,
		CarbsG:          p.CarbsG,
		ProteinG:        p.ProteinG,
		FatsG:           p.FatsG,
		WeightChangeLbs: p.WeightChangeLbs,
		GoalType:        nutrition.Goal(p.GoalType),
		TargetDate:      p.TargetDate,
	}
	if p.TraceJSON != "" {
		var trace nutrition.Trace
		if err := json.Unmarshal([]byte(p.TraceJSON), &trace); err != nil {
			return nutrition.Plan{}, err
		}
		plan.Trace = &trace
	}
	return plan, nil
}
