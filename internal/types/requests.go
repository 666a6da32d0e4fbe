package types

import "github.com/PiovisDevelopment/calorie-flow/backend/internal/nutrition"

// SessionRequest registers (or refreshes) the device session.
type SessionRequest struct {
	Label string `json:"label"`
}

// SessionResponse carries the signed device session token.
type SessionResponse struct {
	Token    string `json:"token"`
	DeviceID string `json:"device_id"`
}

// AnswersRequest writes onboarding answers. Keys outside the known answer
// schema are rejected.
type AnswersRequest struct {
	Answers map[string]string `json:"answers" binding:"required"`
}

// LogEntryRequest appends a manually entered (or user-accepted fallback)
// food log entry. All numeric fields are optional; absent means zero.
type LogEntryRequest struct {
	Description      string  `json:"description"`
	HealthSuggestion string  `json:"health_suggestion"`
	Calories         float64 `json:"calories"`
	CarbsG           float64 `json:"carbs"`
	ProteinG         float64 `json:"protein"`
	FatsG            float64 `json:"fats"`
	ImageRef         string  `json:"image_ref"`
}

// SummaryResponse is the dashboard payload for one selected day.
type SummaryResponse struct {
	Date      string              `json:"date"`
	Plan      nutrition.Plan      `json:"plan"`
	Consumed  nutrition.Totals    `json:"consumed"`
	Remaining nutrition.Totals    `json:"remaining"`
	Entries   []nutrition.LogEntry `json:"entries"`
}

// AnalyzeFailureResponse is returned when analysis fails. The fallback
// estimate is not logged; the user may accept it by submitting it through
// the manual log endpoint.
type AnalyzeFailureResponse struct {
	Error    string          `json:"error"`
	Fallback LogEntryRequest `json:"fallback"`
}
