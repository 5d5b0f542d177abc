// Package model contains domain entities and DTOs used across layers.
// I keep it lean and focused on data shapes; the only behavior here is code classification.
package model

import (
	"fmt"
	"strings"
	"time"
)

// MatchType identifies a cricket format as stored in the records database.
type MatchType string

const (
	MatchTypeTest       MatchType = "t"
	MatchTypeODI        MatchType = "o"
	MatchTypeT20I       MatchType = "itt"
	MatchTypeFirstClass MatchType = "f"
	MatchTypeListA      MatchType = "a"
	MatchTypeT20        MatchType = "tt"
	MatchTypeWomenTest  MatchType = "wt"
	MatchTypeWomenODI   MatchType = "wo"
	MatchTypeWomenT20I  MatchType = "witt"
)

// Valid reports whether t is one of the known formats.
func (t MatchType) Valid() bool {
	switch t {
	case MatchTypeTest, MatchTypeODI, MatchTypeT20I, MatchTypeFirstClass, MatchTypeListA,
		MatchTypeT20, MatchTypeWomenTest, MatchTypeWomenODI, MatchTypeWomenT20I:
		return true
	}
	return false
}

// MultiInnings reports whether each side bats twice in this format.
func (t MatchType) MultiInnings() bool {
	return t == MatchTypeTest || t == MatchTypeFirstClass || t == MatchTypeWomenTest
}

// ResultCode is the per-team result bitmask stored on match_teams.result.
type ResultCode int

const (
	ResultWon      ResultCode = 1
	ResultLost     ResultCode = 2
	ResultDrawn    ResultCode = 4
	ResultTied     ResultCode = 8
	ResultNoResult ResultCode = 16
)

// VenueCode is the home/away bitmask stored on match_teams.home_away.
type VenueCode int

const (
	VenueHome    VenueCode = 1
	VenueAway    VenueCode = 2
	VenueNeutral VenueCode = 4
)

// ResultNames maps the names accepted by the API and the CLI onto result bits.
var ResultNames = map[string]ResultCode{
	"won":       ResultWon,
	"lost":      ResultLost,
	"drawn":     ResultDrawn,
	"tied":      ResultTied,
	"no_result": ResultNoResult,
}

// VenueNames maps venue names onto home/away bits.
var VenueNames = map[string]VenueCode{
	"home":    VenueHome,
	"away":    VenueAway,
	"neutral": VenueNeutral,
}

// ParseMask ORs named bits together. Names are matched case-insensitively.
func ParseMask[T ~int](names []string, bits map[string]T) (T, error) {
	var out T
	for _, name := range names {
		b, ok := bits[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return 0, fmt.Errorf("unknown value %q", name)
		}
		out |= b
	}
	return out, nil
}

// VictoryType describes how a decisive match was won.
type VictoryType int

const (
	VictoryNone     VictoryType = 0
	VictoryRuns     VictoryType = 1
	VictoryWickets  VictoryType = 2
	VictoryInnings  VictoryType = 3
	VictoryAwarded  VictoryType = 4
	VictoryConceded VictoryType = 5
)

// DismissalType is the how-out code on a batting entry.
type DismissalType int

const (
	DismissalDidNotBat        DismissalType = 0
	DismissalCaught           DismissalType = 1
	DismissalBowled           DismissalType = 2
	DismissalLBW              DismissalType = 3
	DismissalRunOut           DismissalType = 4
	DismissalStumped          DismissalType = 5
	DismissalHitWicket        DismissalType = 6
	DismissalHandledBall      DismissalType = 7
	DismissalObstructingField DismissalType = 8
	DismissalTimedOut         DismissalType = 9
	DismissalHitBallTwice     DismissalType = 10
	DismissalNotOut           DismissalType = 11
	DismissalRetiredNotOut    DismissalType = 12
	DismissalRetiredHurt      DismissalType = 13
	DismissalAbsentHurt       DismissalType = 14
	DismissalRetiredOut       DismissalType = 15
)

// Batted reports whether the entry counts as an innings.
func (d DismissalType) Batted() bool {
	return d != DismissalDidNotBat && d != DismissalAbsentHurt
}

// NotOut reports whether the batter finished the innings undismissed.
func (d DismissalType) NotOut() bool {
	return d == DismissalNotOut || d == DismissalRetiredNotOut || d == DismissalRetiredHurt
}

// ExcludedFromBalls reports whether the innings is exempt from the balls-faced consistency check.
func (d DismissalType) ExcludedFromBalls() bool {
	return d == DismissalRetiredHurt || d == DismissalAbsentHurt || d == DismissalRetiredNotOut
}

// TeamTotalPlayerID is the pseudo-player carrying team totals in detail tables.
const TeamTotalPlayerID int64 = 1

// MatchTeam is one side's view of a match: who they played and how it went for them.
type MatchTeam struct {
	TeamID     int64      `json:"team_id"`
	OpponentID int64      `json:"opponent_id"`
	Result     ResultCode `json:"result"`
	HomeAway   VenueCode  `json:"home_away"`
}

// Match is a single fixture with both team perspectives attached.
type Match struct {
	ID            int64       `json:"id"`
	MatchType     MatchType   `json:"match_type"`
	MatchSubType  MatchType   `json:"match_sub_type,omitempty"`
	GroundID      int64       `json:"ground_id"`
	HostCountryID int64       `json:"host_country_id"`
	StartDate     time.Time   `json:"start_date"`
	Season        string      `json:"season"`
	SeriesNumber  int         `json:"series_number"`
	SeriesDate    string      `json:"series_date"`
	BallsPerOver  int         `json:"balls_per_over"`
	VictoryType   VictoryType `json:"victory_type"`
	WinnerID      int64       `json:"winner_id"`
	Abandoned     bool        `json:"abandoned"`
	Teams         []MatchTeam `json:"teams"`
}

// Perspective returns the match as seen by teamID.
func (m Match) Perspective(teamID int64) (MatchTeam, bool) {
	for _, t := range m.Teams {
		if t.TeamID == teamID {
			return t, true
		}
	}
	return MatchTeam{}, false
}

// BattingEntry is one player's innings. Balls is nil when not recorded.
type BattingEntry struct {
	MatchID      int64         `json:"match_id"`
	Innings      int           `json:"innings"`
	TeamID       int64         `json:"team_id"`
	OpponentID   int64         `json:"opponent_id"`
	PlayerID     int64         `json:"player_id"`
	Position     int           `json:"position"`
	Dismissal    DismissalType `json:"dismissal"`
	Runs         int           `json:"runs"`
	Balls        *int          `json:"balls,omitempty"`
	Fours        int           `json:"fours"`
	Sixes        int           `json:"sixes"`
	Captain      bool          `json:"captain"`
	WicketKeeper bool          `json:"wicket_keeper"`
}

// BowlingEntry is one player's bowling in one innings.
type BowlingEntry struct {
	MatchID    int64 `json:"match_id"`
	Innings    int   `json:"innings"`
	TeamID     int64 `json:"team_id"`
	OpponentID int64 `json:"opponent_id"`
	PlayerID   int64 `json:"player_id"`
	Balls      int   `json:"balls"`
	Maidens    int   `json:"maidens"`
	Runs       int   `json:"runs"`
	Wickets    int   `json:"wickets"`
	NoBalls    int   `json:"no_balls"`
	Wides      int   `json:"wides"`
	Captain    bool  `json:"captain"`
}

// FieldingEntry is one player's fielding in one innings.
type FieldingEntry struct {
	MatchID       int64 `json:"match_id"`
	Innings       int   `json:"innings"`
	TeamID        int64 `json:"team_id"`
	OpponentID    int64 `json:"opponent_id"`
	PlayerID      int64 `json:"player_id"`
	CaughtFielder int   `json:"caught_fielder"`
	CaughtKeeper  int   `json:"caught_keeper"`
	Stumped       int   `json:"stumped"`
}

// PartnershipEntry is one batter's row within a partnership; a partnership
// spans consecutive rows sharing match, innings, wicket and team.
type PartnershipEntry struct {
	MatchID    int64 `json:"match_id"`
	Innings    int   `json:"innings"`
	TeamID     int64 `json:"team_id"`
	OpponentID int64 `json:"opponent_id"`
	Wicket     int   `json:"wicket"`
	Seq        int   `json:"seq"`
	PlayerID   int64 `json:"player_id"`
	Runs       int   `json:"runs"`
	Unbroken   bool  `json:"unbroken"`
	Partial    bool  `json:"partial"`
}

// TeamInnings is a completed or in-progress team innings total.
type TeamInnings struct {
	MatchID    int64 `json:"match_id"`
	Innings    int   `json:"innings"`
	TeamID     int64 `json:"team_id"`
	OpponentID int64 `json:"opponent_id"`
	Runs       int   `json:"runs"`
	Wickets    int   `json:"wickets"`
	Balls      int   `json:"balls"`
	Byes       int   `json:"byes"`
	LegByes    int   `json:"leg_byes"`
	Wides      int   `json:"wides"`
	NoBalls    int   `json:"no_balls"`
	Penalties  int   `json:"penalties"`
	AllOut     bool  `json:"all_out"`
	Declared   bool  `json:"declared"`
}

// Extras sums every run not credited to a batter.
func (t TeamInnings) Extras() int {
	return t.Byes + t.LegByes + t.Wides + t.NoBalls + t.Penalties
}

// Ground is a venue and the country it is in.
type Ground struct {
	ID        int64  `json:"id"`
	CountryID int64  `json:"country_id"`
	Name      string `json:"name"`
}

// Names resolves ids to display names. Missing entries render as empty strings.
type Names struct {
	Players   map[int64]string `json:"players"`
	Teams     map[int64]string `json:"teams"`
	Grounds   map[int64]Ground `json:"grounds"`
	Countries map[int64]string `json:"countries"`
}

// NewNames returns an empty, ready to fill lookup set.
func NewNames() Names {
	return Names{
		Players:   make(map[int64]string),
		Teams:     make(map[int64]string),
		Grounds:   make(map[int64]Ground),
		Countries: make(map[int64]string),
	}
}

// Player returns the player's name.
func (n Names) Player(id int64) string { return n.Players[id] }

// Team returns the team's name.
func (n Names) Team(id int64) string { return n.Teams[id] }

// Ground returns the ground's name.
func (n Names) Ground(id int64) string { return n.Grounds[id].Name }

// Country returns the country's name.
func (n Names) Country(id int64) string { return n.Countries[id] }

// RefItem is a generic id/name pair used by reference listings.
type RefItem struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
