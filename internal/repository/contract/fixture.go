package contract

import (
	"time"

	"github.com/maxviazov/cricket-records-service/internal/engine"
	"github.com/maxviazov/cricket-records-service/internal/model"
)

// Fixture ids.
const (
	England   int64 = 10
	Australia int64 = 20
	Ireland   int64 = 30

	Lords int64 = 100
	MCG   int64 = 200

	Cook    int64 = 501
	Strauss int64 = 502
	Warne   int64 = 601
	McGrath int64 = 602
	OBrien  int64 = 701

	LordsTest int64 = 1
	MCGTest   int64 = 2
	LordsODI  int64 = 3
)

func day(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

func ptr(v int) *int { return &v }

// Fixture returns a small two-format snapshot every backend is seeded with.
func Fixture() *engine.Dataset {
	names := model.NewNames()
	names.Countries[1] = "England"
	names.Countries[2] = "Australia"
	names.Grounds[Lords] = model.Ground{ID: Lords, CountryID: 1, Name: "Lord's"}
	names.Grounds[MCG] = model.Ground{ID: MCG, CountryID: 2, Name: "Melbourne Cricket Ground"}
	names.Teams[England] = "England"
	names.Teams[Australia] = "Australia"
	names.Teams[Ireland] = "Ireland"
	names.Players[Cook] = "Alastair Cook"
	names.Players[Strauss] = "Andrew Strauss"
	names.Players[Warne] = "Shane Warne"
	names.Players[McGrath] = "Glenn McGrath"
	names.Players[OBrien] = "Kevin O'Brien"

	return &engine.Dataset{
		Names: names,
		Matches: []model.Match{
			{
				ID: LordsTest, MatchType: model.MatchTypeTest, GroundID: Lords, HostCountryID: 1,
				StartDate: day(2005, time.July, 21), Season: "2005", SeriesNumber: 1, SeriesDate: "2005",
				BallsPerOver: 6, VictoryType: model.VictoryRuns, WinnerID: England,
				Teams: []model.MatchTeam{
					{TeamID: England, OpponentID: Australia, Result: model.ResultWon, HomeAway: model.VenueHome},
					{TeamID: Australia, OpponentID: England, Result: model.ResultLost, HomeAway: model.VenueAway},
				},
			},
			{
				ID: MCGTest, MatchType: model.MatchTypeTest, GroundID: MCG, HostCountryID: 2,
				StartDate: day(2006, time.December, 26), Season: "2006/07", SeriesNumber: 2, SeriesDate: "2006/07",
				BallsPerOver: 6, VictoryType: model.VictoryWickets, WinnerID: Australia,
				Teams: []model.MatchTeam{
					{TeamID: England, OpponentID: Australia, Result: model.ResultLost, HomeAway: model.VenueAway},
					{TeamID: Australia, OpponentID: England, Result: model.ResultWon, HomeAway: model.VenueHome},
				},
			},
			{
				ID: LordsODI, MatchType: model.MatchTypeODI, GroundID: Lords, HostCountryID: 1,
				StartDate: day(2007, time.June, 1), Season: "2007", SeriesNumber: 3, SeriesDate: "2007",
				BallsPerOver: 6, VictoryType: model.VictoryWickets, WinnerID: England,
				Teams: []model.MatchTeam{
					{TeamID: England, OpponentID: Ireland, Result: model.ResultWon, HomeAway: model.VenueHome},
					{TeamID: Ireland, OpponentID: England, Result: model.ResultLost, HomeAway: model.VenueAway},
				},
			},
		},
		Batting: []model.BattingEntry{
			{MatchID: LordsTest, Innings: 1, TeamID: England, OpponentID: Australia, PlayerID: Cook, Position: 1,
				Dismissal: model.DismissalCaught, Runs: 60, Balls: ptr(100), Fours: 8},
			{MatchID: LordsTest, Innings: 1, TeamID: England, OpponentID: Australia, PlayerID: Strauss, Position: 2,
				Dismissal: model.DismissalNotOut, Runs: 40, Captain: true},
			{MatchID: LordsTest, Innings: 2, TeamID: Australia, OpponentID: England, PlayerID: Warne, Position: 8,
				Dismissal: model.DismissalBowled, Runs: 10, Balls: ptr(22), Sixes: 1},
			{MatchID: MCGTest, Innings: 1, TeamID: England, OpponentID: Australia, PlayerID: Cook, Position: 1,
				Dismissal: model.DismissalLBW, Runs: 100, Balls: ptr(180), Fours: 12},
			{MatchID: MCGTest, Innings: 2, TeamID: Australia, OpponentID: England, PlayerID: Warne, Position: 8,
				Dismissal: model.DismissalDidNotBat},
			{MatchID: LordsODI, Innings: 1, TeamID: Ireland, OpponentID: England, PlayerID: OBrien, Position: 5,
				Dismissal: model.DismissalCaught, Runs: 50, Balls: ptr(40)},
			{MatchID: LordsODI, Innings: 2, TeamID: England, OpponentID: Ireland, PlayerID: Cook, Position: 1,
				Dismissal: model.DismissalNotOut, Runs: 30, Balls: ptr(35)},
		},
		Bowling: []model.BowlingEntry{
			{MatchID: LordsTest, Innings: 1, TeamID: Australia, OpponentID: England, PlayerID: Warne,
				Balls: 120, Maidens: 2, Runs: 50, Wickets: 1},
			{MatchID: LordsTest, Innings: 1, TeamID: Australia, OpponentID: England, PlayerID: McGrath,
				Balls: 90, Maidens: 4, Runs: 30, Wickets: 3},
			{MatchID: MCGTest, Innings: 1, TeamID: Australia, OpponentID: England, PlayerID: McGrath,
				Balls: 108, Maidens: 5, Runs: 45, Wickets: 5},
		},
		Fielding: []model.FieldingEntry{
			{MatchID: LordsTest, Innings: 2, TeamID: England, OpponentID: Australia, PlayerID: Strauss, CaughtFielder: 2},
			{MatchID: MCGTest, Innings: 1, TeamID: Australia, OpponentID: England, PlayerID: Warne, CaughtFielder: 1},
		},
		Partnerships: []model.PartnershipEntry{
			{MatchID: LordsTest, Innings: 1, TeamID: England, OpponentID: Australia, Wicket: 1, Seq: 1, PlayerID: Cook, Runs: 30},
			{MatchID: LordsTest, Innings: 1, TeamID: England, OpponentID: Australia, Wicket: 1, Seq: 2, PlayerID: Strauss, Runs: 25},
		},
		TeamInnings: []model.TeamInnings{
			{MatchID: LordsTest, Innings: 1, TeamID: England, OpponentID: Australia, Runs: 250, Wickets: 10,
				Balls: 540, Byes: 4, LegByes: 2, AllOut: true},
			{MatchID: LordsTest, Innings: 2, TeamID: Australia, OpponentID: England, Runs: 200, Wickets: 10,
				Balls: 480, Wides: 1, AllOut: true},
			{MatchID: MCGTest, Innings: 1, TeamID: England, OpponentID: Australia, Runs: 180, Wickets: 10,
				Balls: 400, AllOut: true},
			{MatchID: MCGTest, Innings: 2, TeamID: Australia, OpponentID: England, Runs: 181, Wickets: 3,
				Balls: 300},
			{MatchID: LordsODI, Innings: 1, TeamID: Ireland, OpponentID: England, Runs: 210, Wickets: 9, Balls: 300},
			{MatchID: LordsODI, Innings: 2, TeamID: England, OpponentID: Ireland, Runs: 211, Wickets: 4, Balls: 270},
		},
	}
}
