package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/maxviazov/cricket-records-service/internal/model"
)

var dismissals = map[model.DismissalType]string{
	model.DismissalDidNotBat:        "did not bat",
	model.DismissalCaught:           "caught",
	model.DismissalBowled:           "bowled",
	model.DismissalLBW:              "lbw",
	model.DismissalRunOut:           "run out",
	model.DismissalStumped:          "stumped",
	model.DismissalHitWicket:        "hit wicket",
	model.DismissalHandledBall:      "handled the ball",
	model.DismissalObstructingField: "obstructing the field",
	model.DismissalTimedOut:         "timed out",
	model.DismissalHitBallTwice:     "hit the ball twice",
	model.DismissalNotOut:           "not out",
	model.DismissalRetiredNotOut:    "retired not out",
	model.DismissalRetiredHurt:      "retired hurt",
	model.DismissalAbsentHurt:       "absent hurt",
	model.DismissalRetiredOut:       "retired out",
}

// overs formats a ball count the way scorers write it: 13.4 is 13 overs and 4 balls.
func overs(balls, perOver int) string {
	if perOver <= 0 {
		perOver = 6
	}
	if balls%perOver == 0 {
		return strconv.Itoa(balls / perOver)
	}
	return fmt.Sprintf("%d.%d", balls/perOver, balls%perOver)
}

func total(ti model.TeamInnings, perOver int) string {
	s := fmt.Sprintf("%d", ti.Runs)
	switch {
	case ti.AllOut:
		s += " all out"
	case ti.Declared:
		s += fmt.Sprintf("/%d dec", ti.Wickets)
	default:
		s += fmt.Sprintf("/%d", ti.Wickets)
	}
	return fmt.Sprintf("%s (%s overs, extras %d)", s, overs(ti.Balls, perOver), ti.Extras())
}

// Scorecard prints a match header and, per innings, batting and bowling tables.
func Scorecard(w io.Writer, sc model.Scorecard) {
	m, n := sc.Match, sc.Names
	var sides []string
	for _, t := range m.Teams {
		sides = append(sides, n.Team(t.TeamID))
	}
	title := fmt.Sprintf("Match %d", m.ID)
	if len(sides) == 2 {
		title += fmt.Sprintf(": %s v %s", sides[0], sides[1])
	}
	fmt.Fprintf(w, "\n%s  |  %s  |  %s  |  %s\n", title, n.Ground(m.GroundID), m.StartDate.Format(time.DateOnly), m.MatchType)
	if m.WinnerID != 0 {
		fmt.Fprintf(w, "Winner: %s\n", n.Team(m.WinnerID))
	}

	for _, ti := range sc.Innings {
		fmt.Fprintf(w, "\nInnings %d: %s\n", ti.Innings, n.Team(ti.TeamID))

		bat := newTable(w)
		bat.Header("BATTER", "HOW OUT", "R", "B", "4S", "6S")
		for _, b := range sc.Batting {
			if b.Innings != ti.Innings || b.TeamID != ti.TeamID {
				continue
			}
			balls := "-"
			if b.Balls != nil {
				balls = strconv.Itoa(*b.Balls)
			}
			name := n.Player(b.PlayerID)
			if b.Captain {
				name += " (c)"
			}
			if b.WicketKeeper {
				name += " †"
			}
			bat.Append(name, dismissals[b.Dismissal], strconv.Itoa(b.Runs), balls, strconv.Itoa(b.Fours), strconv.Itoa(b.Sixes))
		}
		bat.Render()
		fmt.Fprintf(w, "Total: %s\n", total(ti, m.BallsPerOver))

		bowl := newTable(w)
		bowl.Header("BOWLER", "O", "M", "R", "W")
		rows := 0
		for _, b := range sc.Bowling {
			if b.Innings != ti.Innings || b.OpponentID != ti.TeamID {
				continue
			}
			rows++
			bowl.Append(n.Player(b.PlayerID), overs(b.Balls, m.BallsPerOver), strconv.Itoa(b.Maidens), strconv.Itoa(b.Runs), strconv.Itoa(b.Wickets))
		}
		if rows > 0 {
			bowl.Render()
		}
	}
}
