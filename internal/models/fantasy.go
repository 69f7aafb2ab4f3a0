package models

// Payloads returned by the fantasy data API. Fields the API sends as either a
// string or a number are typed as any and formatted by the caller.

// PlayerIntel carries optional enrichment attached to player rows.
type PlayerIntel struct {
	Statcast *struct {
		QualityTier string `json:"quality_tier,omitempty"`
	} `json:"statcast,omitempty"`
	Trends *struct {
		HotCold string `json:"hot_cold,omitempty"`
	} `json:"trends,omitempty"`
}

// QualityTier returns the statcast quality tier, if any.
func (i *PlayerIntel) QualityTier() string {
	if i == nil || i.Statcast == nil {
		return ""
	}
	return i.Statcast.QualityTier
}

// HotCold returns the trend label, if any.
func (i *PlayerIntel) HotCold() string {
	if i == nil || i.Trends == nil {
		return ""
	}
	return i.Trends.HotCold
}

type Player struct {
	Name              string       `json:"name"`
	PlayerID          any          `json:"player_id,omitempty"`
	Position          string       `json:"position,omitempty"`
	EligiblePositions []string     `json:"eligible_positions,omitempty"`
	Positions         any          `json:"positions,omitempty"`
	Status            string       `json:"status,omitempty"`
	Team              string       `json:"team,omitempty"`
	PercentOwned      any          `json:"percent_owned,omitempty"`
	Intel             *PlayerIntel `json:"intel,omitempty"`
}

type RosterResponse struct {
	Players []Player `json:"players"`
}

type FreeAgentsResponse struct {
	PosType string   `json:"pos_type"`
	Players []Player `json:"players"`
}

type SearchResponse struct {
	Query   string   `json:"query"`
	Results []Player `json:"results"`
}

type ActionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type WhoOwnsResponse struct {
	PlayerKey     string `json:"player_key"`
	OwnershipType string `json:"ownership_type"`
	Owner         string `json:"owner"`
}

type BrowserStatusResponse struct {
	Valid       bool   `json:"valid"`
	Reason      string `json:"reason,omitempty"`
	CookieCount int    `json:"cookie_count,omitempty"`
}

type StandingsEntry struct {
	Rank      any    `json:"rank"`
	Name      string `json:"name"`
	Wins      any    `json:"wins"`
	Losses    any    `json:"losses"`
	PointsFor any    `json:"points_for,omitempty"`
}

type StandingsResponse struct {
	Standings []StandingsEntry `json:"standings"`
}

type Matchup struct {
	Team1  string `json:"team1"`
	Team2  string `json:"team2"`
	Status string `json:"status"`
}

type MatchupsResponse struct {
	Week     any       `json:"week"`
	Matchups []Matchup `json:"matchups"`
}

type MatchupCategory struct {
	Name     string `json:"name"`
	MyValue  any    `json:"my_value"`
	OppValue any    `json:"opp_value"`
	Result   string `json:"result"`
}

type MatchupDetailResponse struct {
	Week     any    `json:"week"`
	MyTeam   string `json:"my_team"`
	Opponent string `json:"opponent"`
	Score    struct {
		Wins   any `json:"wins"`
		Losses any `json:"losses"`
		Ties   any `json:"ties"`
	} `json:"score"`
	Categories []MatchupCategory `json:"categories"`
}

type LeagueInfoResponse struct {
	Name          string `json:"name"`
	DraftStatus   string `json:"draft_status"`
	Season        any    `json:"season"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	CurrentWeek   any    `json:"current_week"`
	NumTeams      any    `json:"num_teams"`
	PlayoffTeams  any    `json:"playoff_teams"`
	MaxWeeklyAdds any    `json:"max_weekly_adds"`
	TeamName      string `json:"team_name"`
	TeamID        any    `json:"team_id"`
}

type TransactionEntry struct {
	Type   string `json:"type"`
	Player string `json:"player"`
	Team   string `json:"team,omitempty"`
}

type TransactionsResponse struct {
	Transactions []TransactionEntry `json:"transactions"`
}

type StatCategory struct {
	Name         string `json:"name"`
	PositionType string `json:"position_type,omitempty"`
}

type StatCategoriesResponse struct {
	Categories []StatCategory `json:"categories"`
}

type MlbTeam struct {
	ID           any    `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

type MlbTeamsResponse struct {
	Teams []MlbTeam `json:"teams"`
}

type MlbRosterPlayer struct {
	Name         string `json:"name"`
	JerseyNumber any    `json:"jersey_number"`
	Position     string `json:"position"`
}

type MlbRosterResponse struct {
	TeamName string            `json:"team_name"`
	Roster   []MlbRosterPlayer `json:"roster"`
}

type MlbPlayerResponse struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	Team     string `json:"team"`
	Bats     string `json:"bats"`
	Throws   string `json:"throws"`
	Age      any    `json:"age"`
	MlbID    any    `json:"mlb_id"`
}

// MlbStatsResponse keeps stats as a map; the API key order is not preserved.
type MlbStatsResponse struct {
	Season any            `json:"season"`
	Stats  map[string]any `json:"stats"`
}

type MlbInjury struct {
	Player      string `json:"player"`
	Team        string `json:"team"`
	Description string `json:"description"`
}

type MlbInjuriesResponse struct {
	Injuries []MlbInjury `json:"injuries"`
}

type MlbDivision struct {
	Name  string `json:"name"`
	Teams []struct {
		Name      string `json:"name"`
		Wins      any    `json:"wins"`
		Losses    any    `json:"losses"`
		GamesBack any    `json:"games_back"`
	} `json:"teams"`
}

type MlbStandingsResponse struct {
	Divisions []MlbDivision `json:"divisions"`
}

type MlbGame struct {
	Away   string `json:"away"`
	Home   string `json:"home"`
	Status string `json:"status"`
}

type MlbScheduleResponse struct {
	Date  string    `json:"date"`
	Games []MlbGame `json:"games"`
}
