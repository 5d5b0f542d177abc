package contract

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/maxviazov/cricket-records-service/internal/engine"
	"github.com/maxviazov/cricket-records-service/internal/model"
	"github.com/maxviazov/cricket-records-service/internal/repository"
)

// Stores is everything one backend exposes, seeded with Fixture.
type Stores struct {
	Source     repository.MatchSource
	Scorecards repository.ScorecardRepository
	Reference  repository.ReferenceRepository
	Pinger     repository.Pinger
}

// Factory returns a backend seeded with Fixture and its cleanup.
type Factory func(t *testing.T) (Stores, func())

func testFilter() engine.QualificationFilter {
	return engine.QualificationFilter{
		MatchType: model.MatchTypeTest,
		Page:      engine.Pagination{PageSize: 50},
	}
}

const allNeeds = engine.NeedBatting | engine.NeedBowling | engine.NeedFielding |
	engine.NeedPartnerships | engine.NeedTeamInnings

func RunMatchSourceContract(t *testing.T, makeStores Factory) {
	t.Helper()

	t.Run("loads_universe_with_both_perspectives", func(t *testing.T) {
		s, cleanup := makeStores(t)
		t.Cleanup(cleanup)
		ds, err := s.Source.Load(context.Background(), testFilter(), allNeeds)
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if len(ds.Matches) != 2 {
			t.Fatalf("expected 2 test matches, got %d", len(ds.Matches))
		}
		for _, m := range ds.Matches {
			if len(m.Teams) != 2 {
				t.Fatalf("match %d: expected 2 perspectives, got %d", m.ID, len(m.Teams))
			}
		}
		if len(ds.Batting) != 5 || len(ds.Bowling) != 3 || len(ds.Fielding) != 2 ||
			len(ds.Partnerships) != 2 || len(ds.TeamInnings) != 4 {
			t.Fatalf("unexpected detail counts: bat=%d bowl=%d field=%d part=%d inns=%d",
				len(ds.Batting), len(ds.Bowling), len(ds.Fielding), len(ds.Partnerships), len(ds.TeamInnings))
		}
		if ds.Names.Player(Cook) != "Alastair Cook" || ds.Names.Ground(MCG) != "Melbourne Cricket Ground" {
			t.Fatalf("names not loaded: %+v", ds.Names)
		}
		if _, ok := ds.Names.Players[OBrien]; ok {
			t.Fatalf("player outside the universe loaded")
		}
	})

	t.Run("needs_limit_tables", func(t *testing.T) {
		s, cleanup := makeStores(t)
		t.Cleanup(cleanup)
		ds, err := s.Source.Load(context.Background(), testFilter(), engine.NeedBowling)
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if len(ds.Batting) != 0 || len(ds.TeamInnings) != 0 || len(ds.Bowling) != 3 {
			t.Fatalf("unexpected tables: bat=%d inns=%d bowl=%d", len(ds.Batting), len(ds.TeamInnings), len(ds.Bowling))
		}
	})

	t.Run("perspective_filters_details", func(t *testing.T) {
		s, cleanup := makeStores(t)
		t.Cleanup(cleanup)
		f := testFilter()
		f.ResultMask = model.ResultLost
		ds, err := s.Source.Load(context.Background(), f, engine.NeedBatting|engine.NeedTeamInnings)
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		// Australia lost at Lord's, England lost at the MCG
		got := map[int64]int64{}
		for _, e := range ds.Batting {
			if e.Dismissal.Batted() {
				got[e.MatchID] = e.PlayerID
			}
		}
		if len(got) != 2 || got[LordsTest] != Warne || got[MCGTest] != Cook {
			t.Fatalf("unexpected batting: %+v", ds.Batting)
		}
		if len(ds.TeamInnings) != 4 {
			t.Fatalf("team innings must keep both sides, got %d", len(ds.TeamInnings))
		}
	})

	t.Run("empty_universe", func(t *testing.T) {
		s, cleanup := makeStores(t)
		t.Cleanup(cleanup)
		f := testFilter()
		f.GroundID = 999
		ds, err := s.Source.Load(context.Background(), f, allNeeds)
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if len(ds.Matches) != 0 || len(ds.Batting) != 0 {
			t.Fatalf("expected nothing, got %d matches", len(ds.Matches))
		}
	})

	t.Run("engine_parity_with_in_memory", func(t *testing.T) {
		s, cleanup := makeStores(t)
		t.Cleanup(cleanup)
		e := engine.New(zerolog.Nop())
		for _, c := range engine.Categories() {
			needs, _ := engine.NeedsOf(c)
			ds, err := s.Source.Load(context.Background(), testFilter(), needs)
			if err != nil {
				t.Fatalf("%s: load: %v", c, err)
			}
			got, err := e.Run(c, testFilter(), ds)
			if err != nil {
				t.Fatalf("%s: run loaded: %v", c, err)
			}
			want, err := e.Run(c, testFilter(), Fixture())
			if err != nil {
				t.Fatalf("%s: run fixture: %v", c, err)
			}
			if !reflect.DeepEqual(got, want) {
				t.Fatalf("%s: backend result differs\n got: %+v\nwant: %+v", c, got, want)
			}
		}
	})

	t.Run("concurrent_loads_are_isolated", func(t *testing.T) {
		s, cleanup := makeStores(t)
		t.Cleanup(cleanup)
		filters := []engine.QualificationFilter{testFilter(), testFilter()}
		filters[1].GroundID = MCG

		var wg sync.WaitGroup
		counts := make([]int, 8)
		errs := make([]error, 8)
		for i := range counts {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				ds, err := s.Source.Load(context.Background(), filters[i%2], engine.NeedBatting)
				if err != nil {
					errs[i] = err
					return
				}
				counts[i] = len(ds.Matches)
			}(i)
		}
		wg.Wait()
		for i := range counts {
			if errs[i] != nil {
				t.Fatalf("load %d: %v", i, errs[i])
			}
			want := 2
			if i%2 == 1 {
				want = 1
			}
			if counts[i] != want {
				t.Fatalf("load %d saw %d matches, want %d", i, counts[i], want)
			}
		}
	})

	t.Run("canceled_context_fails", func(t *testing.T) {
		s, cleanup := makeStores(t)
		t.Cleanup(cleanup)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := s.Source.Load(ctx, testFilter(), allNeeds); err == nil {
			t.Fatalf("expected error for canceled context")
		}
	})
}

func RunScorecardContract(t *testing.T, makeStores Factory) {
	t.Helper()

	t.Run("get_match", func(t *testing.T) {
		s, cleanup := makeStores(t)
		t.Cleanup(cleanup)
		m, err := s.Scorecards.GetMatch(context.Background(), LordsTest)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		want := Fixture().Matches[0]
		if !reflect.DeepEqual(m, want) {
			t.Fatalf("mismatch:\n got: %+v\nwant: %+v", m, want)
		}
	})

	t.Run("get_not_found", func(t *testing.T) {
		s, cleanup := makeStores(t)
		t.Cleanup(cleanup)
		_, err := s.Scorecards.GetMatch(context.Background(), 424242)
		if !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("lists", func(t *testing.T) {
		s, cleanup := makeStores(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		bat, err := s.Scorecards.ListBatting(ctx, LordsTest)
		if err != nil {
			t.Fatalf("batting: %v", err)
		}
		if len(bat) != 3 || bat[0].PlayerID != Cook || bat[1].Balls != nil || *bat[0].Balls != 100 {
			t.Fatalf("unexpected batting: %+v", bat)
		}
		bowl, err := s.Scorecards.ListBowling(ctx, LordsTest)
		if err != nil || len(bowl) != 2 {
			t.Fatalf("bowling: %v %+v", err, bowl)
		}
		inns, err := s.Scorecards.ListTeamInnings(ctx, LordsTest)
		if err != nil || len(inns) != 2 || inns[0].Extras() != 6 || !inns[0].AllOut {
			t.Fatalf("innings: %v %+v", err, inns)
		}
		parts, err := s.Scorecards.ListPartnerships(ctx, LordsTest)
		if err != nil || len(parts) != 2 || parts[0].Seq != 1 {
			t.Fatalf("partnerships: %v %+v", err, parts)
		}
		none, err := s.Scorecards.ListBatting(ctx, 424242)
		if err != nil || none == nil || len(none) != 0 {
			t.Fatalf("expected empty non-nil list, got %v %v", none, err)
		}
	})

	t.Run("match_names", func(t *testing.T) {
		s, cleanup := makeStores(t)
		t.Cleanup(cleanup)
		names, err := s.Scorecards.MatchNames(context.Background(), LordsTest)
		if err != nil {
			t.Fatalf("names: %v", err)
		}
		for _, id := range []int64{Cook, Strauss, Warne, McGrath} {
			if names.Player(id) == "" {
				t.Fatalf("missing player %d", id)
			}
		}
		if names.Player(OBrien) != "" {
			t.Fatalf("unexpected player from another match")
		}
		if names.Team(Australia) != "Australia" || names.Ground(Lords) != "Lord's" {
			t.Fatalf("unexpected names: %+v", names)
		}
	})
}

func RunReferenceContract(t *testing.T, makeStores Factory) {
	t.Helper()

	t.Run("teams_all_and_by_type", func(t *testing.T) {
		s, cleanup := makeStores(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		all, err := s.Reference.ListTeams(ctx, "", repository.Page{})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if all.Total != 3 || all.Items[0].Name != "Australia" || all.Items[2].Name != "Ireland" {
			t.Fatalf("unexpected teams: %+v", all)
		}
		tests, err := s.Reference.ListTeams(ctx, model.MatchTypeTest, repository.Page{})
		if err != nil {
			t.Fatalf("list tests: %v", err)
		}
		if tests.Total != 2 {
			t.Fatalf("expected 2 test teams, got %+v", tests)
		}
	})

	t.Run("teams_pagination_total", func(t *testing.T) {
		s, cleanup := makeStores(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		res, err := s.Reference.ListTeams(ctx, "", repository.Page{Limit: 2})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(res.Items) != 2 || res.Total != 3 {
			t.Fatalf("unexpected page: len=%d total=%d", len(res.Items), res.Total)
		}
		res2, err := s.Reference.ListTeams(ctx, "", repository.Page{Limit: 2, Offset: 2})
		if err != nil {
			t.Fatalf("list2: %v", err)
		}
		if len(res2.Items) != 1 || res2.Total != 3 || res2.Items[0].ID != Ireland {
			t.Fatalf("unexpected page2: %+v", res2)
		}
	})

	t.Run("grounds_and_countries", func(t *testing.T) {
		s, cleanup := makeStores(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		grounds, err := s.Reference.ListGrounds(ctx, model.MatchTypeODI, repository.Page{})
		if err != nil || grounds.Total != 1 || grounds.Items[0].ID != Lords {
			t.Fatalf("grounds: %v %+v", err, grounds)
		}
		countries, err := s.Reference.ListCountries(ctx, model.MatchTypeTest, repository.Page{})
		if err != nil || countries.Total != 2 {
			t.Fatalf("countries: %v %+v", err, countries)
		}
	})

	t.Run("find_players_by_prefix", func(t *testing.T) {
		s, cleanup := makeStores(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		res, err := s.Reference.FindPlayers(ctx, "a", repository.Page{})
		if err != nil {
			t.Fatalf("find: %v", err)
		}
		if res.Total != 2 || res.Items[0].ID != Cook || res.Items[1].ID != Strauss {
			t.Fatalf("unexpected players: %+v", res)
		}
		res, err = s.Reference.FindPlayers(ctx, "SH", repository.Page{})
		if err != nil || res.Total != 1 || res.Items[0].ID != Warne {
			t.Fatalf("case-insensitive prefix: %v %+v", err, res)
		}
		res, err = s.Reference.FindPlayers(ctx, "%", repository.Page{})
		if err != nil || res.Total != 0 || len(res.Items) != 0 {
			t.Fatalf("wildcards must be literal: %v %+v", err, res)
		}
	})
}

func RunPingerContract(t *testing.T, makeStores Factory) {
	t.Helper()
	t.Run("ping_ok", func(t *testing.T) {
		s, cleanup := makeStores(t)
		t.Cleanup(cleanup)
		if err := s.Pinger.Ping(context.Background()); err != nil {
			t.Fatalf("ping failed: %v", err)
		}
	})
}
