package tools

import (
	"context"
	"sort"
	"strings"

	"github.com/franciscosanchezn/fbb-mcp/internal/models"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const MLBURI = "ui://fbb-mcp/mlb.html"

const defaultStatsSeason = "2025"

func (t *toolset) mlbTools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: withView(mcp.NewTool("mlb_teams",
				mcp.WithDescription("List all MLB teams with abbreviations"),
			), MLBURI),
			Handler: t.mlbTeams,
		},
		{
			Tool: withView(mcp.NewTool("mlb_roster",
				mcp.WithDescription("Get an MLB team's roster. team: abbreviation (NYY, LAD) or team ID"),
				mcp.WithString("team", mcp.Required(), mcp.Description("Team abbreviation or ID")),
			), MLBURI),
			Handler: t.mlbRoster,
		},
		{
			Tool: withView(mcp.NewTool("mlb_player",
				mcp.WithDescription("Get MLB player info by MLB Stats API player ID"),
				mcp.WithString("player_id", mcp.Required(), mcp.Description("MLB Stats API player ID")),
			), MLBURI),
			Handler: t.mlbPlayer,
		},
		{
			Tool: withView(mcp.NewTool("mlb_stats",
				mcp.WithDescription("Get player season stats by MLB Stats API player ID"),
				mcp.WithString("player_id", mcp.Required(), mcp.Description("MLB Stats API player ID")),
				mcp.WithString("season", mcp.DefaultString(defaultStatsSeason), mcp.Description("Season year")),
			), MLBURI),
			Handler: t.mlbStats,
		},
		{
			Tool: withView(mcp.NewTool("mlb_injuries",
				mcp.WithDescription("Show current MLB injuries across all teams"),
			), MLBURI),
			Handler: t.mlbInjuries,
		},
		{
			Tool: withView(mcp.NewTool("mlb_standings",
				mcp.WithDescription("Show MLB division standings"),
			), MLBURI),
			Handler: t.mlbStandings,
		},
		{
			Tool: withView(mcp.NewTool("mlb_schedule",
				mcp.WithDescription("Show MLB game schedule. Leave date empty for today, or pass YYYY-MM-DD"),
				mcp.WithString("date", mcp.DefaultString(""), mcp.Description("YYYY-MM-DD, empty for today")),
			), MLBURI),
			Handler: t.mlbSchedule,
		},
	}
}

func (t *toolset) mlbTeams(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var data models.MlbTeamsResponse
	payload, err := t.fetch(ctx, "/api/mlb/teams", nil, &data)
	if err != nil {
		return toolError(err), nil
	}

	lines := make([]string, 0, len(data.Teams))
	for _, team := range data.Teams {
		lines = append(lines, "  "+padEnd(team.Abbreviation, 4)+" "+team.Name)
	}
	return structuredResult("mlb-teams", "MLB Teams:\n"+strings.Join(lines, "\n"), payload), nil
}

func (t *toolset) mlbRoster(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	team, err := request.RequireString("team")
	if err != nil {
		return toolError(err), nil
	}

	var data models.MlbRosterResponse
	payload, err := t.fetch(ctx, "/api/mlb/roster", map[string]string{"team": team}, &data)
	if err != nil {
		return toolError(err), nil
	}

	lines := make([]string, 0, len(data.Roster))
	for _, p := range data.Roster {
		lines = append(lines, "  #"+padStart(str(p.JerseyNumber), 2)+" "+padEnd(p.Name, 25)+" "+p.Position)
	}
	return structuredResult("mlb-roster", data.TeamName+" Roster:\n"+strings.Join(lines, "\n"), payload), nil
}

func (t *toolset) mlbPlayer(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	playerID, err := request.RequireString("player_id")
	if err != nil {
		return toolError(err), nil
	}

	var data models.MlbPlayerResponse
	payload, err := t.fetch(ctx, "/api/mlb/player", map[string]string{"player_id": playerID}, &data)
	if err != nil {
		return toolError(err), nil
	}

	text := strings.Join([]string{
		"Player: " + data.Name,
		"  Position: " + data.Position,
		"  Team: " + data.Team,
		"  Bats/Throws: " + data.Bats + "/" + data.Throws,
		"  Age: " + str(data.Age),
		"  MLB ID: " + str(data.MlbID),
	}, "\n")
	return structuredResult("mlb-player", text, payload), nil
}

func (t *toolset) mlbStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	playerID, err := request.RequireString("player_id")
	if err != nil {
		return toolError(err), nil
	}
	season := request.GetString("season", defaultStatsSeason)

	var data models.MlbStatsResponse
	payload, err := t.fetch(ctx, "/api/mlb/stats", map[string]string{
		"player_id": playerID,
		"season":    season,
	}, &data)
	if err != nil {
		return toolError(err), nil
	}

	keys := make([]string, 0, len(data.Stats))
	for key := range data.Stats {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	lines := []string{"Stats for " + season + ":"}
	for _, key := range keys {
		lines = append(lines, "  "+key+": "+str(data.Stats[key]))
	}
	return structuredResult("mlb-stats", strings.Join(lines, "\n"), payload), nil
}

func (t *toolset) mlbInjuries(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var data models.MlbInjuriesResponse
	payload, err := t.fetch(ctx, "/api/mlb/injuries", nil, &data)
	if err != nil {
		return toolError(err), nil
	}

	if len(data.Injuries) == 0 {
		return structuredResult("mlb-injuries", "No injuries reported (may be offseason)", payload), nil
	}
	lines := make([]string, 0, len(data.Injuries))
	for _, i := range data.Injuries {
		lines = append(lines, "  "+i.Player+" ("+i.Team+"): "+i.Description)
	}
	return structuredResult("mlb-injuries", "Current Injuries:\n"+strings.Join(lines, "\n"), payload), nil
}

func (t *toolset) mlbStandings(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var data models.MlbStandingsResponse
	payload, err := t.fetch(ctx, "/api/mlb/standings", nil, &data)
	if err != nil {
		return toolError(err), nil
	}

	var lines []string
	for _, div := range data.Divisions {
		lines = append(lines, "", div.Name+":")
		for _, team := range div.Teams {
			lines = append(lines, "  "+padEnd(team.Name, 25)+" "+str(team.Wins)+"-"+str(team.Losses)+" ("+str(team.GamesBack)+" GB)")
		}
	}
	return structuredResult("mlb-standings", strings.Join(lines, "\n"), payload), nil
}

func (t *toolset) mlbSchedule(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	date := request.GetString("date", "")

	var data models.MlbScheduleResponse
	payload, err := t.fetch(ctx, "/api/mlb/schedule", map[string]string{"date": date}, &data)
	if err != nil {
		return toolError(err), nil
	}

	lines := make([]string, 0, len(data.Games))
	for _, g := range data.Games {
		lines = append(lines, "  "+g.Away+" @ "+g.Home+" - "+g.Status)
	}
	return structuredResult("mlb-schedule", "Games for "+data.Date+":\n"+strings.Join(lines, "\n"), payload), nil
}
