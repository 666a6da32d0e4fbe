package nutrition

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

type mapAnswers map[string]string

func (m mapAnswers) Answer(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func TestReadProfileAllStored(t *testing.T) {
	read := ReadProfile(mapAnswers{
		KeyHeight:           "182 cm",
		KeyWeight:           "85 kg",
		KeyGender:           "female",
		KeyGoal:             "lose weight",
		KeyWorkoutFrequency: "6+",
		KeyBirthYear:        "1988",
		KeyBirthMonth:       "7",
		KeyBirthDay:         "21",
	})

	assert.Empty(t, read.Defaulted)
	assert.Equal(t, 182.0, read.Profile.HeightCm)
	assert.Equal(t, 85.0, read.Profile.WeightKg)
	assert.Equal(t, GenderFemale, read.Profile.Gender)
	assert.Equal(t, GoalLose, read.Profile.Goal)
	assert.Equal(t, ActivityHigh, read.Profile.ActivityLevel)
	assert.Equal(t, Birthdate{Year: 1988, Month: 7, Day: 21}, read.Profile.Birthdate)
}

func TestReadProfileAllAbsent(t *testing.T) {
	read := ReadProfile(mapAnswers{})

	assert.Equal(t, defaultProfile, read.Profile)
	assert.ElementsMatch(t, []string{
		KeyHeight, KeyWeight, KeyGender, KeyWorkoutFrequency, KeyGoal,
		KeyBirthYear, KeyBirthMonth, KeyBirthDay,
	}, read.Defaulted)
}

func TestReadProfileOutOfEnumDefaults(t *testing.T) {
	read := ReadProfile(mapAnswers{
		KeyGender:           "robot",
		KeyGoal:             "bulk",
		KeyWorkoutFrequency: "sometimes",
		KeyBirthMonth:       "13",
		KeyBirthDay:         "0",
	})

	assert.Equal(t, GenderMale, read.Profile.Gender)
	assert.Equal(t, GoalMaintain, read.Profile.Goal)
	assert.Equal(t, ActivityModerate, read.Profile.ActivityLevel)
	assert.Equal(t, 1, read.Profile.Birthdate.Month)
	assert.Equal(t, 1, read.Profile.Birthdate.Day)
	assert.Contains(t, read.Defaulted, KeyGender)
	assert.Contains(t, read.Defaulted, KeyBirthMonth)
}

func TestReadProfileMalformedQuantityKeepsNaN(t *testing.T) {
	// A stored but unparseable quantity is not defaulted; it must surface as
	// NaN so the calculation fails loudly.
	read := ReadProfile(mapAnswers{KeyHeight: "abc cm"})

	assert.True(t, math.IsNaN(read.Profile.HeightCm))
	assert.NotContains(t, read.Defaulted, KeyHeight)
}

func TestParseQuantity(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"170 cm", 170},
		{"70 kg", 70},
		{"70kg", 70},
		{" 95  kg", 95},
		{"183", 183},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, parseQuantity(tc.in), "input %q", tc.in)
	}

	assert.True(t, math.IsNaN(parseQuantity("abc cm")))
	assert.True(t, math.IsNaN(parseQuantity("")))
	assert.True(t, math.IsNaN(parseQuantity("cm 170")))
}
