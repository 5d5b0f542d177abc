package engine_test

import (
	"time"

	"github.com/maxviazov/cricket-records-service/internal/engine"
	"github.com/maxviazov/cricket-records-service/internal/model"
)

const (
	england   int64 = 10
	australia int64 = 20

	lords int64 = 100
	mcg   int64 = 200

	cook      int64 = 501
	strauss   int64 = 502
	bell      int64 = 503
	warne     int64 = 601
	mcgrath   int64 = 602
	gilchrist int64 = 603
)

func intp(v int) *int { return &v }

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func opposite(r model.ResultCode) model.ResultCode {
	switch r {
	case model.ResultWon:
		return model.ResultLost
	case model.ResultLost:
		return model.ResultWon
	}
	return r
}

// fixture builds a match between England and Australia. England's result
// is given; Australia's is derived.
func fixture(id int64, mt model.MatchType, ground int64, start, season string, engResult model.ResultCode, vt model.VictoryType) model.Match {
	host := int64(1)
	engVenue, ausVenue := model.VenueHome, model.VenueAway
	if ground == mcg {
		host = 2
		engVenue, ausVenue = model.VenueAway, model.VenueHome
	}
	var winner int64
	switch engResult {
	case model.ResultWon:
		winner = england
	case model.ResultLost:
		winner = australia
	}
	d := date(start)
	return model.Match{
		ID:            id,
		MatchType:     mt,
		GroundID:      ground,
		HostCountryID: host,
		StartDate:     d,
		Season:        season,
		SeriesNumber:  d.Year(),
		SeriesDate:    start[:7],
		BallsPerOver:  6,
		VictoryType:   vt,
		WinnerID:      winner,
		Teams: []model.MatchTeam{
			{TeamID: england, OpponentID: australia, Result: engResult, HomeAway: engVenue},
			{TeamID: australia, OpponentID: england, Result: opposite(engResult), HomeAway: ausVenue},
		},
	}
}

func bat(match int64, inn int, team, player int64, runs int, balls *int, how model.DismissalType) model.BattingEntry {
	opp := australia
	if team == australia {
		opp = england
	}
	return model.BattingEntry{
		MatchID: match, Innings: inn, TeamID: team, OpponentID: opp, PlayerID: player,
		Dismissal: how, Runs: runs, Balls: balls,
	}
}

func bowl(match int64, inn int, team, player int64, balls, runs, wickets int) model.BowlingEntry {
	opp := australia
	if team == australia {
		opp = england
	}
	return model.BowlingEntry{
		MatchID: match, Innings: inn, TeamID: team, OpponentID: opp, PlayerID: player,
		Balls: balls, Runs: runs, Wickets: wickets,
	}
}

func stand(match int64, inn, wicket, seq int, player int64, runs int, unbroken bool) model.PartnershipEntry {
	return model.PartnershipEntry{
		MatchID: match, Innings: inn, TeamID: england, OpponentID: australia,
		Wicket: wicket, Seq: seq, PlayerID: player, Runs: runs, Unbroken: unbroken,
	}
}

func total(match int64, inn int, team int64, runs, wickets, balls int, allOut bool) model.TeamInnings {
	opp := australia
	if team == australia {
		opp = england
	}
	return model.TeamInnings{
		MatchID: match, Innings: inn, TeamID: team, OpponentID: opp,
		Runs: runs, Wickets: wickets, Balls: balls, AllOut: allOut,
	}
}

// dataset is a small two-team history: five Tests (three at Lord's, two at
// the MCG) and four ODIs, one of them abandoned.
func dataset() *engine.Dataset {
	ds := &engine.Dataset{
		Matches: []model.Match{
			fixture(1, model.MatchTypeTest, lords, "2005-07-21", "2005", model.ResultWon, model.VictoryRuns),
			fixture(2, model.MatchTypeTest, lords, "2005-08-04", "2005", model.ResultLost, model.VictoryInnings),
			fixture(3, model.MatchTypeTest, mcg, "2006-12-26", "2006/07", model.ResultDrawn, model.VictoryNone),
			fixture(4, model.MatchTypeTest, mcg, "2007-01-02", "2006/07", model.ResultLost, model.VictoryWickets),
			fixture(5, model.MatchTypeTest, lords, "2009-07-16", "2009", model.ResultDrawn, model.VictoryNone),
			fixture(10, model.MatchTypeODI, lords, "2010-06-22", "2010", model.ResultLost, model.VictoryWickets),
			fixture(11, model.MatchTypeODI, mcg, "2011-01-16", "2010/11", model.ResultLost, model.VictoryRuns),
			fixture(12, model.MatchTypeODI, mcg, "2011-01-21", "2010/11", model.ResultNoResult, model.VictoryNone),
			fixture(13, model.MatchTypeODI, lords, "2012-07-01", "2012", model.ResultLost, model.VictoryWickets),
		},
		Names: model.NewNames(),
	}
	ds.Matches[7].Abandoned = true

	// Cook: ten Test innings of 40 off 50, two of them not out.
	for m := int64(1); m <= 5; m++ {
		first, second := model.DismissalCaught, model.DismissalBowled
		if m == 1 || m == 3 {
			second = model.DismissalNotOut
		}
		ds.Batting = append(ds.Batting,
			bat(m, 1, england, cook, 40, intp(50), first),
			bat(m, 3, england, cook, 40, intp(50), second),
		)
	}
	ds.Batting = append(ds.Batting,
		// Team total pseudo-player must never surface as a player.
		bat(1, 1, england, model.TeamTotalPlayerID, 999, intp(999), model.DismissalCaught),
		bat(1, 1, england, strauss, 30, nil, model.DismissalCaught),
		bat(2, 1, england, bell, 12, nil, model.DismissalRetiredHurt),
		bat(2, 3, england, bell, 0, intp(5), model.DismissalBowled),
		bat(2, 1, australia, gilchrist, 0, nil, model.DismissalDidNotBat),
	)

	ds.Bowling = []model.BowlingEntry{
		bowl(1, 1, australia, warne, 120, 60, 5),
		bowl(1, 3, australia, warne, 90, 40, 5),
		bowl(2, 1, australia, warne, 60, 30, 5),
		bowl(3, 1, australia, mcgrath, 60, 57, 0),
	}

	ds.Fielding = []model.FieldingEntry{
		{MatchID: 1, Innings: 1, TeamID: australia, OpponentID: england, PlayerID: gilchrist, CaughtFielder: 2, CaughtKeeper: 3},
		{MatchID: 2, Innings: 1, TeamID: australia, OpponentID: england, PlayerID: gilchrist, CaughtFielder: 1, CaughtKeeper: 4},
		{MatchID: 3, Innings: 1, TeamID: australia, OpponentID: england, PlayerID: warne, CaughtFielder: 1},
	}

	ds.Partnerships = []model.PartnershipEntry{
		stand(1, 1, 1, 1, cook, 120, false),
		stand(1, 1, 1, 2, strauss, 120, false),
		stand(1, 3, 1, 1, strauss, 60, true),
		stand(1, 3, 1, 2, cook, 60, true),
		stand(2, 1, 2, 1, bell, 15, false),
		stand(2, 3, 3, 1, cook, 45, false),
		stand(2, 3, 3, 2, bell, 45, false),
		stand(2, 3, 3, 3, strauss, 45, false),
	}

	ds.TeamInnings = []model.TeamInnings{
		total(1, 1, england, 300, 10, 600, true),
		total(1, 2, australia, 250, 10, 500, true),
		total(1, 3, england, 200, 5, 400, false),
		total(1, 4, australia, 150, 10, 300, true),
		total(2, 1, england, 180, 10, 360, true),
		total(2, 2, australia, 400, 10, 700, true),
		total(2, 3, england, 210, 10, 420, true),
		total(10, 1, england, 250, 8, 300, false),
		total(10, 2, australia, 251, 4, 290, false),
		total(11, 1, australia, 200, 9, 300, false),
		total(11, 2, england, 180, 10, 280, true),
		total(13, 1, england, 220, 10, 290, true),
		total(13, 2, australia, 221, 3, 250, false),
	}
	ds.TeamInnings[0].Byes = 10
	ds.TeamInnings[0].Wides = 5

	ds.Names.Teams[england] = "England"
	ds.Names.Teams[australia] = "Australia"
	ds.Names.Grounds[lords] = model.Ground{ID: lords, CountryID: 1, Name: "Lord's"}
	ds.Names.Grounds[mcg] = model.Ground{ID: mcg, CountryID: 2, Name: "Melbourne Cricket Ground"}
	ds.Names.Countries[1] = "England"
	ds.Names.Countries[2] = "Australia"
	for id, name := range map[int64]string{
		cook: "AN Cook", strauss: "AJ Strauss", bell: "IR Bell",
		warne: "SK Warne", mcgrath: "GD McGrath", gilchrist: "AC Gilchrist",
	} {
		ds.Names.Players[id] = name
	}
	return ds
}

func testFilter() engine.QualificationFilter {
	return engine.QualificationFilter{
		MatchType: model.MatchTypeTest,
		Page:      engine.Pagination{PageSize: 50},
	}
}
