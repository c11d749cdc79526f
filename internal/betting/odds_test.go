package betting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImpliedProbability(t *testing.T) {
	tests := []struct {
		name     string
		odds     int
		expected float64
	}{
		{name: "standard favorite", odds: -110, expected: 52.38},
		{name: "underdog", odds: 130, expected: 43.48},
		{name: "even money", odds: 100, expected: 50.0},
		{name: "heavy favorite", odds: -400, expected: 80.0},
		{name: "long shot", odds: 900, expected: 10.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ImpliedProbability(tt.odds)
			assert.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 0.01)
			assert.Greater(t, got, 0.0)
			assert.Less(t, got, 100.0)
		})
	}

	t.Run("zero odds rejected", func(t *testing.T) {
		_, err := ImpliedProbability(0)
		assert.ErrorIs(t, err, ErrInvalidOdds)
	})
}

func TestImpliedProbabilityHouseEdge(t *testing.T) {
	// both sides of a -110/-110 market sum past 100%; the excess is the vig
	side, err := ImpliedProbability(-110)
	assert.NoError(t, err)
	assert.Greater(t, side*2, 100.0)
}

func TestDecimalOdds(t *testing.T) {
	tests := []struct {
		odds     int
		expected float64
	}{
		{odds: -110, expected: 1.909},
		{odds: 100, expected: 2.0},
		{odds: 150, expected: 2.5},
		{odds: -200, expected: 1.5},
	}

	for _, tt := range tests {
		got, err := DecimalOdds(tt.odds)
		assert.NoError(t, err)
		assert.InDelta(t, tt.expected, got, 0.001)
	}
}

func TestExpectedValue(t *testing.T) {
	t.Run("fair coin at plus money is positive", func(t *testing.T) {
		ev, err := ExpectedValue(0.5, 120, 100)
		assert.NoError(t, err)
		assert.InDelta(t, 10.0, ev, 0.001)
	})

	t.Run("fair coin at minus money is negative", func(t *testing.T) {
		ev, err := ExpectedValue(0.5, -110, 100)
		assert.NoError(t, err)
		assert.Less(t, ev, 0.0)
	})

	t.Run("probability out of range rejected", func(t *testing.T) {
		_, err := ExpectedValue(1.2, -110, 100)
		assert.ErrorIs(t, err, ErrInvalidProbability)

		_, err = ExpectedValue(-0.1, -110, 100)
		assert.ErrorIs(t, err, ErrInvalidProbability)
	})
}

func TestKellyStake(t *testing.T) {
	t.Run("edge produces bounded stake", func(t *testing.T) {
		// 55% at even money, quarter Kelly, 1000 bankroll:
		// full Kelly = 0.55 - 0.45 = 0.10, quarter = 25
		stake, err := KellyStake(0.55, 100, 1000, 0.25)
		assert.NoError(t, err)
		assert.InDelta(t, 25.0, stake, 0.001)
		assert.Greater(t, stake, 0.0)
		assert.Less(t, stake, 250.0)
	})

	t.Run("near coinflip favorite risks a sliver of bankroll", func(t *testing.T) {
		stake, err := KellyStake(0.55, -110, 1000, 0.25)
		assert.NoError(t, err)
		assert.Greater(t, stake, 0.0)
		assert.Less(t, stake, 250.0)
	})

	t.Run("no edge stakes nothing", func(t *testing.T) {
		stake, err := KellyStake(0.40, 100, 1000, 0.25)
		assert.NoError(t, err)
		assert.Equal(t, 0.0, stake)
	})

	t.Run("invalid inputs", func(t *testing.T) {
		_, err := KellyStake(1.5, 100, 1000, 0.25)
		assert.ErrorIs(t, err, ErrInvalidProbability)

		_, err = KellyStake(0.5, 0, 1000, 0.25)
		assert.ErrorIs(t, err, ErrInvalidOdds)
	})
}

func TestParlay(t *testing.T) {
	t.Run("two even legs", func(t *testing.T) {
		result, err := Parlay([]int{100, 100})
		assert.NoError(t, err)
		assert.InDelta(t, 4.0, result.DecimalOdds, 0.001)
		assert.InDelta(t, 300.0, result.CombinedOdds, 0.001)
		assert.InDelta(t, 25.0, result.ImpliedProbability, 0.001)
		assert.InDelta(t, 300.0, result.PayoutPer100, 0.001)
	})

	t.Run("two favorites stay negative", func(t *testing.T) {
		result, err := Parlay([]int{-400, -400})
		assert.NoError(t, err)
		assert.InDelta(t, 1.5625, result.DecimalOdds, 0.001)
		assert.Less(t, result.CombinedOdds, 0.0)
	})

	t.Run("adding a leg never raises the implied probability", func(t *testing.T) {
		two, err := Parlay([]int{-110, -110})
		assert.NoError(t, err)
		three, err := Parlay([]int{-110, -110, -110})
		assert.NoError(t, err)
		assert.Less(t, three.ImpliedProbability, two.ImpliedProbability)
		assert.Greater(t, three.DecimalOdds, two.DecimalOdds)
	})

	t.Run("single leg rejected", func(t *testing.T) {
		_, err := Parlay([]int{-110})
		assert.ErrorIs(t, err, ErrTooFewLegs)
	})

	t.Run("invalid leg rejected", func(t *testing.T) {
		_, err := Parlay([]int{-110, 0})
		assert.ErrorIs(t, err, ErrInvalidOdds)
	})
}
