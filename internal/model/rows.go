package model

import "time"

// Result rows are read-only query shapes. Derived fields are computed from the
// raw sums of the same row and are never persisted.

// Dimensioned is embedded by every row that is reported per dimension value.
type Dimensioned struct {
	MatchType     MatchType      `json:"match_type"`
	Dimension     DimensionValue `json:"dimension"`
	DimensionName string         `json:"dimension_name,omitempty"`
}

// BattingRow aggregates a player's innings per dimension value.
type BattingRow struct {
	Dimensioned
	PlayerID      int64   `json:"player_id"`
	Name          string  `json:"name"`
	Teams         string  `json:"teams"`
	Matches       int     `json:"matches"`
	Innings       int     `json:"innings"`
	NotOuts       int     `json:"not_outs"`
	CompletedInns int     `json:"completed_innings"`
	Runs          int     `json:"runs"`
	Balls         *int    `json:"balls"`
	HighestScore  int     `json:"highest_score"`
	HighestNotOut bool    `json:"highest_not_out"`
	Hundreds      int     `json:"hundreds"`
	Fifties       int     `json:"fifties"`
	Ducks         int     `json:"ducks"`
	Fours         int     `json:"fours"`
	Sixes         int     `json:"sixes"`
	Average       float64 `json:"average"`
	StrikeRate    float64 `json:"strike_rate"`
	BattingIndex  float64 `json:"batting_index"`
}

// BattingInningsRow is a single innings that met the qualification threshold.
type BattingInningsRow struct {
	Dimensioned
	MatchID    int64         `json:"match_id"`
	Innings    int           `json:"innings"`
	PlayerID   int64         `json:"player_id"`
	Name       string        `json:"name"`
	Team       string        `json:"team"`
	Opponent   string        `json:"opponent"`
	Ground     string        `json:"ground"`
	StartDate  time.Time     `json:"start_date"`
	Runs       int           `json:"runs"`
	NotOut     bool          `json:"not_out"`
	Balls      *int          `json:"balls"`
	Fours      int           `json:"fours"`
	Sixes      int           `json:"sixes"`
	Dismissal  DismissalType `json:"dismissal"`
	StrikeRate float64       `json:"strike_rate"`
}

// BattingMatchRow is a player's batting summed across both innings of a match.
type BattingMatchRow struct {
	Dimensioned
	MatchID   int64     `json:"match_id"`
	PlayerID  int64     `json:"player_id"`
	Name      string    `json:"name"`
	Team      string    `json:"team"`
	Opponent  string    `json:"opponent"`
	Ground    string    `json:"ground"`
	StartDate time.Time `json:"start_date"`
	Runs1     int       `json:"runs1"`
	NotOut1   bool      `json:"not_out1"`
	Runs2     int       `json:"runs2"`
	NotOut2   bool      `json:"not_out2"`
	Runs      int       `json:"runs"`
}

// BowlingRow aggregates a player's bowling per dimension value.
type BowlingRow struct {
	Dimensioned
	PlayerID       int64   `json:"player_id"`
	Name           string  `json:"name"`
	Teams          string  `json:"teams"`
	Matches        int     `json:"matches"`
	Innings        int     `json:"innings"`
	Balls          int     `json:"balls"`
	Maidens        int     `json:"maidens"`
	Runs           int     `json:"runs"`
	Wickets        int     `json:"wickets"`
	BestInnWickets int     `json:"best_innings_wickets"`
	BestInnRuns    int     `json:"best_innings_runs"`
	BestMatchWkts  int     `json:"best_match_wickets"`
	BestMatchRuns  int     `json:"best_match_runs"`
	FiveFors       int     `json:"five_fors"`
	TenFors        int     `json:"ten_fors"`
	Average        float64 `json:"average"`
	Economy        float64 `json:"economy"`
	StrikeRate     float64 `json:"strike_rate"`
	BowlingIndex   float64 `json:"bowling_index"`
}

// BowlingInningsRow is a single innings of bowling.
type BowlingInningsRow struct {
	Dimensioned
	MatchID   int64     `json:"match_id"`
	Innings   int       `json:"innings"`
	PlayerID  int64     `json:"player_id"`
	Name      string    `json:"name"`
	Team      string    `json:"team"`
	Opponent  string    `json:"opponent"`
	Ground    string    `json:"ground"`
	StartDate time.Time `json:"start_date"`
	Balls     int       `json:"balls"`
	Maidens   int       `json:"maidens"`
	Runs      int       `json:"runs"`
	Wickets   int       `json:"wickets"`
	Economy   float64   `json:"economy"`
}

// BowlingMatchRow is a player's bowling summed across both innings of a match.
type BowlingMatchRow struct {
	Dimensioned
	MatchID   int64     `json:"match_id"`
	PlayerID  int64     `json:"player_id"`
	Name      string    `json:"name"`
	Team      string    `json:"team"`
	Opponent  string    `json:"opponent"`
	Ground    string    `json:"ground"`
	StartDate time.Time `json:"start_date"`
	Wickets1  int       `json:"wickets1"`
	Runs1     int       `json:"runs1"`
	Wickets2  int       `json:"wickets2"`
	Runs2     int       `json:"runs2"`
	Wickets   int       `json:"wickets"`
	Runs      int       `json:"runs"`
	Balls     int       `json:"balls"`
}

// BowlingBestRow is the best bowling innings of a player within a partition.
type BowlingBestRow struct {
	Dimensioned
	PlayerID  int64     `json:"player_id"`
	Name      string    `json:"name"`
	MatchID   int64     `json:"match_id"`
	Innings   int       `json:"innings"`
	Team      string    `json:"team"`
	Opponent  string    `json:"opponent"`
	StartDate time.Time `json:"start_date"`
	Wickets   int       `json:"wickets"`
	Runs      int       `json:"runs"`
	Balls     int       `json:"balls"`
}

// FieldingRow aggregates a player's fielding per dimension value.
type FieldingRow struct {
	Dimensioned
	PlayerID          int64  `json:"player_id"`
	Name              string `json:"name"`
	Teams             string `json:"teams"`
	Matches           int    `json:"matches"`
	Innings           int    `json:"innings"`
	CaughtFielder     int    `json:"caught_fielder"`
	CaughtKeeper      int    `json:"caught_keeper"`
	Stumped           int    `json:"stumped"`
	Dismissals        int    `json:"dismissals"`
	KeeperDismissals  int    `json:"wicket_keeper_dismissals"`
	BestInnDismissals int    `json:"best_innings_dismissals"`
	BestInnCaughtKeep int    `json:"best_innings_caught_keeper"`
	BestInnStumped    int    `json:"best_innings_stumped"`
}

// FieldingBestRow is the best fielding innings of a player within a partition.
type FieldingBestRow struct {
	Dimensioned
	PlayerID         int64     `json:"player_id"`
	Name             string    `json:"name"`
	MatchID          int64     `json:"match_id"`
	Innings          int       `json:"innings"`
	Team             string    `json:"team"`
	Opponent         string    `json:"opponent"`
	StartDate        time.Time `json:"start_date"`
	CaughtFielder    int       `json:"caught_fielder"`
	CaughtKeeper     int       `json:"caught_keeper"`
	Stumped          int       `json:"stumped"`
	Dismissals       int       `json:"dismissals"`
	KeeperDismissals int       `json:"wicket_keeper_dismissals"`
}

// PartnershipRow is one partnership with both partners resolved.
// Player2ID is nil when no following partner exists in the partition.
type PartnershipRow struct {
	Dimensioned
	MatchID   int64     `json:"match_id"`
	Innings   int       `json:"innings"`
	Wicket    int       `json:"wicket"`
	TeamID    int64     `json:"team_id"`
	Team      string    `json:"team"`
	Opponent  string    `json:"opponent"`
	Ground    string    `json:"ground"`
	StartDate time.Time `json:"start_date"`
	Player1ID int64     `json:"player1_id"`
	Player1   string    `json:"player1"`
	Player2ID *int64    `json:"player2_id"`
	Player2   string    `json:"player2"`
	Runs      int       `json:"runs"`
	Unbroken  bool      `json:"unbroken"`
	Partial   bool      `json:"partial"`
	Multiple  bool      `json:"multiple"`
}

// PartnershipPairRow aggregates one pair's partnerships per dimension value.
type PartnershipPairRow struct {
	Dimensioned
	Player1ID       int64    `json:"player1_id"`
	Player1         string   `json:"player1"`
	Player2ID       int64    `json:"player2_id"`
	Player2         string   `json:"player2"`
	Teams           string   `json:"teams"`
	Innings         int      `json:"innings"`
	Unbroken        int      `json:"unbroken"`
	Completed       int      `json:"completed"`
	Runs            int      `json:"runs"`
	Average         *float64 `json:"average"`
	Hundreds        int      `json:"hundreds"`
	Fifties         int      `json:"fifties"`
	Highest         int      `json:"highest"`
	HighestUnbroken bool     `json:"highest_unbroken"`
}

// TeamRow aggregates a team's results and innings per dimension value.
type TeamRow struct {
	Dimensioned
	TeamID        int64    `json:"team_id"`
	Name          string   `json:"name"`
	Matches       int      `json:"matches"`
	Won           int      `json:"won"`
	Lost          int      `json:"lost"`
	Drawn         int      `json:"drawn"`
	Tied          int      `json:"tied"`
	NoResult      int      `json:"no_result"`
	Innings       int      `json:"innings"`
	Runs          int      `json:"runs"`
	Balls         int      `json:"balls"`
	WicketsLost   int      `json:"wickets_lost"`
	Extras        int      `json:"extras"`
	HighestTotal  int      `json:"highest_total"`
	LowestAllOut  *int     `json:"lowest_all_out"`
	RunRate       float64  `json:"run_rate"`
	Average       float64  `json:"average"`
	ExtrasPercent *float64 `json:"extras_percent"`
}

// TeamInningsRow is a single team innings total.
type TeamInningsRow struct {
	Dimensioned
	MatchID   int64      `json:"match_id"`
	Innings   int        `json:"innings"`
	TeamID    int64      `json:"team_id"`
	Team      string     `json:"team"`
	Opponent  string     `json:"opponent"`
	Ground    string     `json:"ground"`
	StartDate time.Time  `json:"start_date"`
	Runs      int        `json:"runs"`
	Wickets   int        `json:"wickets"`
	Balls     int        `json:"balls"`
	Extras    int        `json:"extras"`
	AllOut    bool       `json:"all_out"`
	Declared  bool       `json:"declared"`
	RunRate   float64    `json:"run_rate"`
	Result    ResultCode `json:"result"`
}

// TargetRow is one decided run chase: either a successful defence or a
// successful chase, depending on the category that produced it.
type TargetRow struct {
	MatchType   MatchType   `json:"match_type"`
	MatchID     int64       `json:"match_id"`
	WinnerID    int64       `json:"winner_id"`
	Winner      string      `json:"winner"`
	LoserID     int64       `json:"loser_id"`
	Loser       string      `json:"loser"`
	Ground      string      `json:"ground"`
	StartDate   time.Time   `json:"start_date"`
	Target      int         `json:"target"`
	ChaseRuns   int         `json:"chase_runs"`
	ChaseWkts   int         `json:"chase_wickets"`
	ChaseBalls  int         `json:"chase_balls"`
	VictoryType VictoryType `json:"victory_type"`
}

// Scorecard is a full match assembled from several sequential lookups.
type Scorecard struct {
	Match        Match              `json:"match"`
	Innings      []TeamInnings      `json:"innings"`
	Batting      []BattingEntry     `json:"batting"`
	Bowling      []BowlingEntry     `json:"bowling"`
	Partnerships []PartnershipEntry `json:"partnerships"`
	Names        Names              `json:"names"`
}
