package models

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Valuation, draft, history and intel payloads. Maps whose key order is
// shown to the user are decoded into ordered maps.

type RankingEntry struct {
	Rank   any          `json:"rank"`
	Name   string       `json:"name"`
	Team   string       `json:"team,omitempty"`
	Pos    string       `json:"pos,omitempty"`
	ZScore float64      `json:"z_score"`
	MlbID  any          `json:"mlb_id,omitempty"`
	Intel  *PlayerIntel `json:"intel,omitempty"`
}

type RankingsResponse struct {
	PosType string         `json:"pos_type"`
	Source  string         `json:"source"`
	Players []RankingEntry `json:"players"`
}

type ComparePlayer struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Team string `json:"team"`
	Pos  string `json:"pos"`
}

type CompareScores struct {
	Player1 float64 `json:"player1"`
	Player2 float64 `json:"player2"`
}

type CompareResponse struct {
	Player1 ComparePlayer                                 `json:"player1"`
	Player2 ComparePlayer                                 `json:"player2"`
	ZScores *orderedmap.OrderedMap[string, CompareScores] `json:"z_scores"`
}

type ValuePlayer struct {
	Name     string                                  `json:"name"`
	Type     string                                  `json:"type"`
	Team     string                                  `json:"team"`
	Pos      string                                  `json:"pos"`
	RawStats map[string]any                          `json:"raw_stats"`
	ZScores  *orderedmap.OrderedMap[string, float64] `json:"z_scores"`
	MlbID    any                                     `json:"mlb_id,omitempty"`
	Intel    *PlayerIntel                            `json:"intel,omitempty"`
}

type ValueResponse struct {
	Players []ValuePlayer `json:"players"`
}

type DraftStatusResponse struct {
	TotalPicks   any `json:"total_picks"`
	CurrentRound any `json:"current_round"`
	Hitters      any `json:"hitters"`
	Pitchers     any `json:"pitchers"`
}

type DraftRecommendation struct {
	Name      string       `json:"name"`
	Positions []string     `json:"positions"`
	ZScore    *float64     `json:"z_score"`
	MlbID     any          `json:"mlb_id,omitempty"`
	Intel     *PlayerIntel `json:"intel,omitempty"`
}

type DraftRecommendResponse struct {
	Round          any                   `json:"round"`
	Recommendation string                `json:"recommendation"`
	TopHitters     []DraftRecommendation `json:"top_hitters"`
	TopPitchers    []DraftRecommendation `json:"top_pitchers"`
}

type Opponent struct {
	Name     string `json:"name"`
	Tendency string `json:"tendency"`
}

type CheatsheetResponse struct {
	Strategy  *orderedmap.OrderedMap[string, string]   `json:"strategy"`
	Targets   *orderedmap.OrderedMap[string, []string] `json:"targets"`
	Avoid     []string                                 `json:"avoid"`
	Opponents []Opponent                               `json:"opponents"`
}

type BestAvailablePlayer struct {
	Rank      any          `json:"rank"`
	Name      string       `json:"name"`
	Positions []string     `json:"positions,omitempty"`
	ZScore    *float64     `json:"z_score"`
	MlbID     any          `json:"mlb_id,omitempty"`
	Intel     *PlayerIntel `json:"intel,omitempty"`
}

type BestAvailableResponse struct {
	PosType string                `json:"pos_type"`
	Players []BestAvailablePlayer `json:"players"`
}

type SeasonResult struct {
	Year       any    `json:"year"`
	Champion   string `json:"champion"`
	YourFinish string `json:"your_finish,omitempty"`
	YourRecord string `json:"your_record,omitempty"`
}

type LeagueHistoryResponse struct {
	Seasons []SeasonResult `json:"seasons"`
}

type CareerEntry struct {
	Manager    string `json:"manager"`
	Seasons    any    `json:"seasons"`
	Wins       any    `json:"wins"`
	Losses     any    `json:"losses"`
	Ties       any    `json:"ties"`
	WinPct     any    `json:"win_pct"`
	BestFinish any    `json:"best_finish"`
	BestYear   any    `json:"best_year"`
}

type ChampionEntry struct {
	Year     any    `json:"year"`
	TeamName string `json:"team_name"`
	Manager  string `json:"manager"`
	Record   string `json:"record"`
}

type FirstPick struct {
	Year   any    `json:"year"`
	Player string `json:"player"`
}

type RecordBookResponse struct {
	Careers    []CareerEntry   `json:"careers"`
	Champions  []ChampionEntry `json:"champions"`
	FirstPicks []FirstPick     `json:"first_picks"`
}

type PastStandingsEntry struct {
	Rank     any    `json:"rank"`
	TeamName string `json:"team_name"`
	Manager  string `json:"manager"`
	Record   string `json:"record"`
}

type PastStandingsResponse struct {
	Standings []PastStandingsEntry `json:"standings"`
}

type PastDraftPick struct {
	Round      any    `json:"round"`
	Pick       any    `json:"pick"`
	PlayerName string `json:"player_name"`
	TeamName   string `json:"team_name"`
}

type PastDraftResponse struct {
	Year  any             `json:"year"`
	Picks []PastDraftPick `json:"picks"`
}

type PastTeamEntry struct {
	Name    string `json:"name"`
	Manager string `json:"manager"`
	Moves   any    `json:"moves"`
	Trades  any    `json:"trades"`
}

type PastTeamsResponse struct {
	Year  any             `json:"year"`
	Teams []PastTeamEntry `json:"teams"`
}

type PastTradePlayer struct {
	Name string `json:"name"`
	From string `json:"from"`
	To   string `json:"to"`
}

type PastTrade struct {
	TraderTeam string            `json:"trader_team"`
	TradeeTeam string            `json:"tradee_team"`
	Players    []PastTradePlayer `json:"players"`
}

type PastTradesResponse struct {
	Year   any         `json:"year"`
	Trades []PastTrade `json:"trades"`
}

type PastMatchupEntry struct {
	Team1  string `json:"team1"`
	Team2  string `json:"team2"`
	Score  string `json:"score"`
	Status string `json:"status"`
}

type PastMatchupResponse struct {
	Year     any                `json:"year"`
	Week     any                `json:"week"`
	Matchups []PastMatchupEntry `json:"matchups"`
}

// IntelReport is the full intelligence profile of one player. Numeric
// fields stay untyped so they print exactly as the API sent them.
type IntelReport struct {
	Name string `json:"name"`
	Statcast *struct {
		QualityTier   string `json:"quality_tier"`
		XWOBA         any    `json:"xwoba"`
		XWOBAPctRank  any    `json:"xwoba_pct_rank"`
		AvgExitVelo   any    `json:"avg_exit_velo"`
		EVPctRank     any    `json:"ev_pct_rank"`
		BarrelPctRank any    `json:"barrel_pct_rank"`
		HardHitRate   any    `json:"hard_hit_rate"`
		HHPctRank     any    `json:"hh_pct_rank"`
	} `json:"statcast,omitempty"`
	Trends *struct {
		HotCold    string                              `json:"hot_cold"`
		Last14Days *orderedmap.OrderedMap[string, any] `json:"last_14_days"`
	} `json:"trends,omitempty"`
	Context *struct {
		RedditMentions  float64 `json:"reddit_mentions"`
		RedditSentiment string  `json:"reddit_sentiment"`
	} `json:"context,omitempty"`
	Discipline *struct {
		BBRate any `json:"bb_rate"`
		KRate  any `json:"k_rate"`
	} `json:"discipline,omitempty"`
}

type BreakoutCandidate struct {
	Name  string  `json:"name"`
	WOBA  float64 `json:"woba"`
	XWOBA float64 `json:"xwoba"`
	Diff  float64 `json:"diff"`
	PA    any     `json:"pa"`
}

type CandidatesResponse struct {
	PosType    string              `json:"pos_type"`
	Candidates []BreakoutCandidate `json:"candidates"`
}

type RedditPost struct {
	Title       string `json:"title"`
	Score       any    `json:"score"`
	NumComments any    `json:"num_comments"`
	Flair       string `json:"flair,omitempty"`
}

type RedditPostsResponse struct {
	Posts []RedditPost `json:"posts"`
}

type ProspectTransaction struct {
	Player      string `json:"player"`
	Type        string `json:"type"`
	Team        string `json:"team,omitempty"`
	Description string `json:"description,omitempty"`
}

type ProspectTransactionsResponse struct {
	Transactions []ProspectTransaction `json:"transactions"`
}
