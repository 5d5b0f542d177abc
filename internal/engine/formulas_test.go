package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBattingFormulas_CareerScenario(t *testing.T) {
	completed := CompletedInnings(10, 2)
	avg := BattingAverage(400, completed)
	sr := BattingStrikeRate(400, 500)
	idx := BattingIndex(avg, sr)

	assert.Equal(t, 8, completed)
	assert.Equal(t, 50.0, avg)
	assert.Equal(t, 80.0, sr)
	assert.InDelta(t, math.Sqrt(50*80), idx, 1e-9)
	assert.InDelta(t, 63.24, idx, 0.01)
}

func TestBattingFormulas_ZeroGuards(t *testing.T) {
	assert.Equal(t, 0.0, BattingAverage(120, 0), "never dismissed")
	assert.Equal(t, 0.0, BattingStrikeRate(120, 0), "no balls")
	assert.Equal(t, 0.0, BattingIndex(0, 80))
	assert.Equal(t, 0.0, BattingIndex(50, 0))
}

func TestBattingAverage_Truncates(t *testing.T) {
	// 100/3 = 33.333.., 200/3 = 66.666.. must not round up.
	assert.Equal(t, 33.33, BattingAverage(100, 3))
	assert.Equal(t, 66.66, BattingAverage(200, 3))
}

// A wicketless bowler reports zero rather than "not applicable". The zero is
// indistinguishable from a genuine zero average; callers must not rely on it.
func TestBowlingFormulas_Wicketless(t *testing.T) {
	assert.Equal(t, 0.0, BowlingAverage(57, 0))
	assert.Equal(t, 5.7, EconomyRate(57, 60))
	assert.Equal(t, 0.0, BowlingStrikeRate(60, 0))
	assert.Equal(t, 0.0, BowlingIndex(57, 60, 0))
	assert.Equal(t, 0.0, EconomyRate(10, 0))
}

func TestBowlingFormulas(t *testing.T) {
	assert.Equal(t, 25.0, BowlingAverage(100, 4))
	assert.Equal(t, 4.28, EconomyRate(30, 42))
	assert.Equal(t, 30.0, BowlingStrikeRate(120, 4))
	assert.InDelta(t, math.Sqrt(25*(100.0/120*100)), BowlingIndex(100, 120, 4), 1e-9)
}

func TestFieldingFormulas(t *testing.T) {
	assert.Equal(t, 9, Dismissals(4, 3, 2))
	assert.Equal(t, 5, KeeperDismissals(3, 2))
}

func TestTeamFormulas(t *testing.T) {
	assert.Equal(t, 5.5, RunRate(275, 300))
	assert.Equal(t, 27.5, TeamAverage(275, 10))
	assert.Equal(t, 0.0, TeamAverage(275, 0))

	pct := ExtrasPercent(23, 275)
	require.NotNil(t, pct)
	assert.Equal(t, 8.3, *pct)
	assert.Nil(t, ExtrasPercent(0, 0))
}

func TestPartnershipAverage(t *testing.T) {
	assert.Nil(t, PartnershipAverage(0, 0))
	avg := PartnershipAverage(250, 3)
	require.NotNil(t, avg)
	assert.Equal(t, 83.33, *avg)
}

func TestEncodeBest(t *testing.T) {
	cases := []struct {
		score   int
		flagged bool
	}{
		{0, false},
		{0, true},
		{137, false},
		{137, true},
	}
	for _, tc := range cases {
		score, flagged := DecodeBest(EncodeBest(tc.score, tc.flagged))
		assert.Equal(t, tc.score, score)
		assert.Equal(t, tc.flagged, flagged)
	}
	assert.Greater(t, EncodeBest(99, true), EncodeBest(99, false))
	assert.Less(t, EncodeBest(99, true), EncodeBest(100, false))
}

func TestBallsFaced(t *testing.T) {
	b := ballsFaced(10, 10, 0, 500)
	require.NotNil(t, b)
	assert.Equal(t, 500, *b)

	b = ballsFaced(10, 9, 1, 480)
	require.NotNil(t, b, "retired hurt innings without balls is exempt")
	assert.Equal(t, 480, *b)

	assert.Nil(t, ballsFaced(10, 9, 0, 480), "one innings lacks a ball count")
}
