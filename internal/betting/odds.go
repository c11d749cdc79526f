package betting

import (
	"errors"
	"math"
)

// ErrInvalidOdds rejects odds outside the American convention. Zero has no
// meaning in that convention and must never be silently computed with.
var ErrInvalidOdds = errors.New("invalid american odds")

// ErrInvalidProbability rejects win probabilities outside [0, 1].
var ErrInvalidProbability = errors.New("win probability must be between 0 and 1")

// ErrTooFewLegs rejects parlays with fewer than two legs.
var ErrTooFewLegs = errors.New("parlay requires at least two legs")

// DefaultKellyFraction is the conservative quarter-Kelly scaling.
const DefaultKellyFraction = 0.25

// ImpliedProbability converts American odds to the implied win probability,
// as a percentage. Favorites (negative odds) use -odds/(-odds+100), underdogs
// use 100/(odds+100). Both branches land strictly inside (0, 100).
func ImpliedProbability(odds int) (float64, error) {
	if odds == 0 {
		return 0, ErrInvalidOdds
	}
	if odds < 0 {
		o := float64(-odds)
		return o / (o + 100) * 100, nil
	}
	return 100 / (float64(odds) + 100) * 100, nil
}

// DecimalOdds converts American odds to decimal odds (stake included).
func DecimalOdds(odds int) (float64, error) {
	if odds == 0 {
		return 0, ErrInvalidOdds
	}
	if odds < 0 {
		return 1 + 100/math.Abs(float64(odds)), nil
	}
	return 1 + float64(odds)/100, nil
}

// Profit returns the potential profit on a stake at the given odds.
func Profit(odds int, stake float64) (float64, error) {
	dec, err := DecimalOdds(odds)
	if err != nil {
		return 0, err
	}
	return stake * (dec - 1), nil
}

// ExpectedValue returns the expected dollar value of a bet:
// winProb * profit - (1 - winProb) * stake.
func ExpectedValue(winProb float64, odds int, stake float64) (float64, error) {
	if winProb < 0 || winProb > 1 {
		return 0, ErrInvalidProbability
	}
	profit, err := Profit(odds, stake)
	if err != nil {
		return 0, err
	}
	return winProb*profit - (1-winProb)*stake, nil
}

// KellyStake sizes a bet with the Kelly criterion, (b*p - q) / b with
// b = decimal odds - 1, clamped at zero before scaling by fraction*bankroll.
// A fraction of 0.25 is quarter Kelly.
func KellyStake(winProb float64, odds int, bankroll, fraction float64) (float64, error) {
	if winProb < 0 || winProb > 1 {
		return 0, ErrInvalidProbability
	}
	dec, err := DecimalOdds(odds)
	if err != nil {
		return 0, err
	}
	b := dec - 1
	kelly := (b*winProb - (1 - winProb)) / b
	if kelly < 0 {
		kelly = 0
	}
	return bankroll * kelly * fraction, nil
}

// ParlayResult describes a combined multi-leg bet.
type ParlayResult struct {
	CombinedOdds       float64 `json:"combined_odds"`
	DecimalOdds        float64 `json:"decimal_odds"`
	ImpliedProbability float64 `json:"implied_probability"`
	PayoutPer100       float64 `json:"payout_per_100"`
}

// Parlay combines legs by multiplying decimal odds and implied probabilities,
// then reconstructs American odds from the combined decimal price: a decimal
// of 2.0 or better converts to positive American odds, anything shorter to
// negative.
func Parlay(legs []int) (ParlayResult, error) {
	if len(legs) < 2 {
		return ParlayResult{}, ErrTooFewLegs
	}

	decimal := 1.0
	probability := 1.0
	for _, odds := range legs {
		dec, err := DecimalOdds(odds)
		if err != nil {
			return ParlayResult{}, err
		}
		prob, err := ImpliedProbability(odds)
		if err != nil {
			return ParlayResult{}, err
		}
		decimal *= dec
		probability *= prob / 100
	}

	var american float64
	if decimal >= 2.0 {
		american = (decimal - 1) * 100
	} else {
		american = -100 / (decimal - 1)
	}

	return ParlayResult{
		CombinedOdds:       american,
		DecimalOdds:        decimal,
		ImpliedProbability: probability * 100,
		PayoutPer100:       (decimal - 1) * 100,
	}, nil
}
