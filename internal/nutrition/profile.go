package nutrition

import (
	"math"
	"strconv"
	"strings"
)

// Persisted onboarding answer keys. The mobile client writes these during the
// onboarding wizard; the profile reader consumes them.
const (
	KeyHeight           = "userHeight"
	KeyWeight           = "userWeight"
	KeyGender           = "userGender"
	KeyGoal             = "userGoal"
	KeyWorkoutFrequency = "workoutFrequency"
	KeyBirthYear        = "userBirthYear"
	KeyBirthMonth       = "userBirthMonth"
	KeyBirthDay         = "userBirthDay"
)

// Gender is the self-reported gender used for BMR selection.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// ActivityLevel is the self-reported weekly workout frequency bucket.
type ActivityLevel string

const (
	ActivityLow      ActivityLevel = "0-2"
	ActivityModerate ActivityLevel = "3-5"
	ActivityHigh     ActivityLevel = "6+"
)

// Goal is the user's body-mass goal.
type Goal string

const (
	GoalLose     Goal = "lose weight"
	GoalMaintain Goal = "maintain"
	GoalGain     Goal = "gain weight"
)

// Birthdate is a year/month/day triple as entered during onboarding.
type Birthdate struct {
	Year  int
	Month int
	Day   int
}

// Profile is the immutable input to the plan calculation. HeightCm and
// WeightKg are NaN when the stored quantity string could not be parsed; the
// calculator rejects non-finite inputs rather than letting NaN propagate.
type Profile struct {
	HeightCm      float64
	WeightKg      float64
	Gender        Gender
	Birthdate     Birthdate
	ActivityLevel ActivityLevel
	Goal          Goal
}

// Documented defaults, substituted per field when an answer is absent or not
// a member of its enum.
var defaultProfile = Profile{
	HeightCm:      170,
	WeightKg:      70,
	Gender:        GenderMale,
	Birthdate:     Birthdate{Year: 1990, Month: 1, Day: 1},
	ActivityLevel: ActivityModerate,
	Goal:          GoalMaintain,
}

// AnswerReader exposes raw stored onboarding answers. The second return is
// false when no value was ever stored under the key.
type AnswerReader interface {
	Answer(key string) (string, bool)
}

// ProfileRead is the result of assembling a profile, with the keys that fell
// back to their documented default recorded so defaulting stays observable.
type ProfileRead struct {
	Profile   Profile
	Defaulted []string
}

// ReadProfile assembles a Profile from stored onboarding answers. It never
// fails: absent or out-of-enum answers get the documented default. Stored but
// unparseable height/weight quantities are kept as NaN so the calculator can
// report the failure instead of silently computing on garbage.
func ReadProfile(answers AnswerReader) ProfileRead {
	read := ProfileRead{Profile: defaultProfile}

	if raw, ok := answers.Answer(KeyHeight); ok {
		read.Profile.HeightCm = parseQuantity(raw)
	} else {
		read.Defaulted = append(read.Defaulted, KeyHeight)
	}

	if raw, ok := answers.Answer(KeyWeight); ok {
		read.Profile.WeightKg = parseQuantity(raw)
	} else {
		read.Defaulted = append(read.Defaulted, KeyWeight)
	}

	switch raw, _ := answers.Answer(KeyGender); Gender(raw) {
	case GenderMale, GenderFemale, GenderOther:
		read.Profile.Gender = Gender(raw)
	default:
		read.Defaulted = append(read.Defaulted, KeyGender)
	}

	switch raw, _ := answers.Answer(KeyWorkoutFrequency); ActivityLevel(raw) {
	case ActivityLow, ActivityModerate, ActivityHigh:
		read.Profile.ActivityLevel = ActivityLevel(raw)
	default:
		read.Defaulted = append(read.Defaulted, KeyWorkoutFrequency)
	}

	switch raw, _ := answers.Answer(KeyGoal); Goal(raw) {
	case GoalLose, GoalMaintain, GoalGain:
		read.Profile.Goal = Goal(raw)
	default:
		read.Defaulted = append(read.Defaulted, KeyGoal)
	}

	if year, ok := answerInt(answers, KeyBirthYear); ok {
		read.Profile.Birthdate.Year = year
	} else {
		read.Defaulted = append(read.Defaulted, KeyBirthYear)
	}
	if month, ok := answerInt(answers, KeyBirthMonth); ok && month >= 1 && month <= 12 {
		read.Profile.Birthdate.Month = month
	} else {
		read.Defaulted = append(read.Defaulted, KeyBirthMonth)
	}
	if day, ok := answerInt(answers, KeyBirthDay); ok && day >= 1 && day <= 31 {
		read.Profile.Birthdate.Day = day
	} else {
		read.Defaulted = append(read.Defaulted, KeyBirthDay)
	}

	return read
}

func answerInt(answers AnswerReader, key string) (int, bool) {
	raw, ok := answers.Answer(key)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseQuantity extracts the leading integer token from a quantity-plus-unit
// string such as "170 cm" or "70kg". A value with no leading digits parses
// to NaN, matching the client's parseInt semantics.
func parseQuantity(s string) float64 {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, ' '); i >= 0 {
		s = s[:i]
	}
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return math.NaN()
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return math.NaN()
	}
	return float64(n)
}
