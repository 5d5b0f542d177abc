package engine

import (
	"math"

	"github.com/shopspring/decimal"
)

// ratio returns num/den truncated toward zero at places decimals.
func ratio(num, den int64, places int32) float64 {
	return decimal.NewFromInt(num).Div(decimal.NewFromInt(den)).Truncate(places).InexactFloat64()
}

// CompletedInnings is innings minus not-outs.
func CompletedInnings(innings, notOuts int) int { return innings - notOuts }

// BattingAverage is runs per completed innings, truncated to 2 decimals; 0 when never dismissed.
func BattingAverage(runs, completed int) float64 {
	if completed == 0 {
		return 0
	}
	return ratio(int64(runs), int64(completed), 2)
}

// BattingStrikeRate is runs per 100 balls; 0 when no balls were faced.
func BattingStrikeRate(runs, balls int) float64 {
	if balls == 0 {
		return 0
	}
	return float64(runs) / float64(balls) * 100
}

// BattingIndex is the geometric mean of average and strike rate.
func BattingIndex(average, strikeRate float64) float64 {
	if average == 0 || strikeRate == 0 {
		return 0
	}
	return math.Sqrt(average * strikeRate)
}

// BowlingAverage is runs conceded per wicket, truncated to 2 decimals.
// A wicketless bowler reports 0, not "not applicable".
func BowlingAverage(runs, wickets int) float64 {
	if wickets == 0 {
		return 0
	}
	return ratio(int64(runs), int64(wickets), 2)
}

// EconomyRate is runs conceded per six balls, truncated to 2 decimals.
func EconomyRate(runs, balls int) float64 {
	if balls == 0 {
		return 0
	}
	return ratio(int64(runs)*6, int64(balls), 2)
}

// BowlingStrikeRate is balls per wicket.
func BowlingStrikeRate(balls, wickets int) float64 {
	if wickets == 0 {
		return 0
	}
	return float64(balls) / float64(wickets)
}

// BowlingIndex combines bowling average with runs per hundred balls.
func BowlingIndex(runs, balls, wickets int) float64 {
	if wickets == 0 || balls == 0 {
		return 0
	}
	return math.Sqrt(BowlingAverage(runs, wickets) * (float64(runs) / float64(balls) * 100))
}

// Dismissals counts every fielding dismissal.
func Dismissals(caughtFielder, caughtKeeper, stumped int) int {
	return caughtFielder + caughtKeeper + stumped
}

// KeeperDismissals counts dismissals made with the gloves on.
func KeeperDismissals(caughtKeeper, stumped int) int { return caughtKeeper + stumped }

// RunRate is runs per six balls, truncated to 2 decimals.
func RunRate(runs, balls int) float64 { return EconomyRate(runs, balls) }

// TeamAverage is runs per wicket lost, truncated to 2 decimals.
func TeamAverage(runs, wicketsLost int) float64 { return BowlingAverage(runs, wicketsLost) }

// ExtrasPercent is the share of runs that were extras, truncated to 1
// decimal; nil when no runs were scored.
func ExtrasPercent(extras, runs int) *float64 {
	if runs == 0 {
		return nil
	}
	v := ratio(int64(extras)*100, int64(runs), 1)
	return &v
}

// PartnershipAverage is completed-partnership runs per completed
// partnership, truncated to 2 decimals; nil when none was completed.
func PartnershipAverage(completedRuns, completed int) *float64 {
	if completed == 0 {
		return nil
	}
	v := ratio(int64(completedRuns), int64(completed), 2)
	return &v
}

// EncodeBest packs a score and an "unbroken"/"not out" flag into one
// rankable value: the integer part is the score, a non-zero fraction marks it.
func EncodeBest(score int, flagged bool) float64 {
	if flagged {
		return float64(score) + 0.5
	}
	return float64(score)
}

// DecodeBest reverses EncodeBest.
func DecodeBest(v float64) (int, bool) {
	whole := math.Floor(v)
	return int(whole), v-whole != 0
}

// ballsFaced returns the partition's balls-faced total, or nil when the
// recorded balls cannot account for every innings. Innings ending in a
// retired-hurt-type dismissal are exempt from needing a ball count.
func ballsFaced(innings, recorded, excluded, balls int) *int {
	if recorded+excluded < innings {
		return nil
	}
	return &balls
}
