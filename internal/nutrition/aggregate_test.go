package nutrition

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateEmpty(t *testing.T) {
	assert.Equal(t, Totals{}, Aggregate(nil))
	assert.Equal(t, Totals{}, Aggregate([]LogEntry{}))
}

func TestAggregateSums(t *testing.T) {
	entries := []LogEntry{
		{Calories: 450, CarbsG: 40, ProteinG: 30, FatsG: 20},
		{Calories: 250, CarbsG: 30, ProteinG: 15, FatsG: 10},
		{Calories: 24, ProteinG: 0.5},
	}

	got := Aggregate(entries)
	assert.Equal(t, 724.0, got.Calories)
	assert.Equal(t, 70.0, got.CarbsG)
	assert.Equal(t, 45.5, got.ProteinG)
	assert.Equal(t, 30.0, got.FatsG)
}

func TestAggregateOrderIndependent(t *testing.T) {
	entries := []LogEntry{
		{Calories: 120, CarbsG: 11, ProteinG: 7, FatsG: 3},
		{Calories: 300, CarbsG: 25, ProteinG: 40, FatsG: 9},
		{Calories: 80, CarbsG: 19, ProteinG: 1, FatsG: 2},
		{Calories: 610, CarbsG: 44, ProteinG: 28, FatsG: 31},
	}
	want := Aggregate(entries)

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := 0; i < 10; i++ {
		shuffled := make([]LogEntry, len(entries))
		copy(shuffled, entries)
		r.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		assert.Equal(t, want, Aggregate(shuffled))
	}
}

func TestAggregateIgnoresNonFinite(t *testing.T) {
	entries := []LogEntry{
		{Calories: math.NaN(), CarbsG: 10},
		{Calories: 100, FatsG: math.Inf(1)},
	}

	got := Aggregate(entries)
	assert.Equal(t, 100.0, got.Calories)
	assert.Equal(t, 10.0, got.CarbsG)
	assert.Equal(t, 0.0, got.FatsG)
}

func TestRemainingGoesNegative(t *testing.T) {
	plan := Plan{Calories: 2000, CarbsG: 225, ProteinG: 150, FatsG: 65}
	consumed := Totals{Calories: 2400, CarbsG: 100, ProteinG: 180, FatsG: 65}

	left := Remaining(plan, consumed)
	assert.Equal(t, -400.0, left.Calories)
	assert.Equal(t, 125.0, left.CarbsG)
	assert.Equal(t, -30.0, left.ProteinG)
	assert.Equal(t, 0.0, left.FatsG)
}

func TestDayRoundTrip(t *testing.T) {
	day := DayOf(time.Date(2024, time.June, 14, 23, 59, 0, 0, time.FixedZone("JST", 9*3600)))
	assert.Equal(t, "2024-06-14", day.String())

	parsed, err := ParseDay(day.String())
	require.NoError(t, err)
	assert.Equal(t, day, parsed)

	_, err = ParseDay("14/06/2024")
	assert.Error(t, err)
}
