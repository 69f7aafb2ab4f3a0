package tools

import (
	"context"
	"strings"

	"github.com/franciscosanchezn/fbb-mcp/internal/models"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const StandingsURI = "ui://fbb-mcp/standings.html"

func (t *toolset) standingsTools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: withView(mcp.NewTool("yahoo_standings",
				mcp.WithDescription("Show league standings with win-loss records"),
			), StandingsURI),
			Handler: t.standings,
		},
		{
			Tool: withView(mcp.NewTool("yahoo_matchups",
				mcp.WithDescription("Show weekly H2H matchup pairings. Leave week empty for current week."),
				mcp.WithString("week", mcp.DefaultString(""), mcp.Description("Week number, empty for current")),
			), StandingsURI),
			Handler: t.matchups,
		},
		{
			Tool: withView(mcp.NewTool("yahoo_scoreboard",
				mcp.WithDescription("Show live scoring overview for the current week"),
			), StandingsURI),
			Handler: t.scoreboard,
		},
		{
			Tool: withView(mcp.NewTool("yahoo_my_matchup",
				mcp.WithDescription("Show your detailed H2H matchup with per-category comparison for the current week"),
			), StandingsURI),
			Handler: t.myMatchup,
		},
		{
			Tool: withView(mcp.NewTool("yahoo_info",
				mcp.WithDescription("Show league settings and team info"),
			), StandingsURI),
			Handler: t.leagueInfo,
		},
		{
			Tool: withView(mcp.NewTool("yahoo_transactions",
				mcp.WithDescription("Show recent league transactions. trans_type: add, drop, trade, or empty for all"),
				mcp.WithString("trans_type", mcp.DefaultString(""), mcp.Description("add, drop, trade, or empty for all")),
				mcp.WithNumber("count", mcp.DefaultNumber(25), mcp.Description("Number of transactions")),
			), StandingsURI),
			Handler: t.transactions,
		},
		{
			Tool: withView(mcp.NewTool("yahoo_stat_categories",
				mcp.WithDescription("Show league scoring categories"),
			), StandingsURI),
			Handler: t.statCategories,
		},
	}
}

func (t *toolset) standings(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var data models.StandingsResponse
	payload, err := t.fetch(ctx, "/api/standings", nil, &data)
	if err != nil {
		return toolError(err), nil
	}

	lines := make([]string, 0, len(data.Standings))
	for _, s := range data.Standings {
		line := "  " + padStart(str(s.Rank), 2) + ". " + padEnd(s.Name, 30) + " " + str(s.Wins) + "-" + str(s.Losses)
		if points := str(orZero(s.PointsFor)); points != "0" {
			line += " (" + points + " pts)"
		}
		lines = append(lines, line)
	}
	return structuredResult("standings", "League Standings:\n"+strings.Join(lines, "\n"), payload), nil
}

func (t *toolset) matchups(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	week := request.GetString("week", "")

	var data models.MatchupsResponse
	payload, err := t.fetch(ctx, "/api/matchups", map[string]string{"week": week}, &data)
	if err != nil {
		return toolError(err), nil
	}

	lines := make([]string, 0, len(data.Matchups))
	for _, m := range data.Matchups {
		line := "  " + padEnd(m.Team1, 28) + " vs  " + m.Team2
		if m.Status != "" {
			line += "  (" + m.Status + ")"
		}
		lines = append(lines, line)
	}
	text := "Matchups (week " + orDefault(week, "current") + "):\n" + strings.Join(lines, "\n")
	return structuredResult("matchups", text, payload), nil
}

func (t *toolset) scoreboard(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var data models.MatchupsResponse
	payload, err := t.fetch(ctx, "/api/scoreboard", nil, &data)
	if err != nil {
		return toolError(err), nil
	}

	lines := make([]string, 0, len(data.Matchups))
	for _, m := range data.Matchups {
		lines = append(lines, "  "+padEnd(m.Team1, 28)+" vs  "+padEnd(m.Team2, 28)+m.Status)
	}
	text := "Scoreboard - Week " + str(data.Week) + ":\n" + strings.Join(lines, "\n")
	return structuredResult("scoreboard", text, payload), nil
}

func (t *toolset) myMatchup(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var data models.MatchupDetailResponse
	payload, err := t.fetch(ctx, "/api/matchup-detail", nil, &data)
	if err != nil {
		return toolError(err), nil
	}

	var b strings.Builder
	b.WriteString("Week " + str(data.Week) + " Matchup: " + data.MyTeam + " vs " + data.Opponent + "\n")
	b.WriteString("Score: " + str(data.Score.Wins) + "-" + str(data.Score.Losses) + "-" + str(data.Score.Ties) + "\n")
	lines := make([]string, 0, len(data.Categories))
	for _, c := range data.Categories {
		mark := "T"
		switch c.Result {
		case "win":
			mark = "W"
		case "loss":
			mark = "L"
		}
		lines = append(lines, "  "+mark+" "+padEnd(c.Name, 10)+" "+padStart(str(c.MyValue), 8)+" vs "+padStart(str(c.OppValue), 8))
	}
	b.WriteString(strings.Join(lines, "\n"))
	return structuredResult("matchup-detail", b.String(), payload), nil
}

func (t *toolset) leagueInfo(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var data models.LeagueInfoResponse
	payload, err := t.fetch(ctx, "/api/info", nil, &data)
	if err != nil {
		return toolError(err), nil
	}

	text := strings.Join([]string{
		"League Info:",
		"  Name: " + data.Name,
		"  Draft Status: " + data.DraftStatus,
		"  Season: " + str(data.Season),
		"  Start: " + data.StartDate,
		"  End: " + data.EndDate,
		"  Current Week: " + str(data.CurrentWeek),
		"  Teams: " + str(data.NumTeams),
		"  Playoff Teams: " + str(data.PlayoffTeams),
		"  Max Weekly Adds: " + str(data.MaxWeeklyAdds),
		"  Your Team: " + data.TeamName + " (" + str(data.TeamID) + ")",
	}, "\n")
	return structuredResult("info", text, payload), nil
}

func (t *toolset) transactions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	transType := request.GetString("trans_type", "")
	count := request.GetInt("count", 25)

	var data models.TransactionsResponse
	payload, err := t.fetch(ctx, "/api/transactions", map[string]string{
		"type":  transType,
		"count": str(count),
	}, &data)
	if err != nil {
		return toolError(err), nil
	}

	lines := make([]string, 0, len(data.Transactions))
	for _, tx := range data.Transactions {
		line := "  " + padEnd(tx.Type, 8) + " " + padEnd(tx.Player, 25)
		if tx.Team != "" {
			line += " -> " + tx.Team
		}
		lines = append(lines, line)
	}
	text := "Recent transactions (" + orDefault(transType, "all") + "):\n" + strings.Join(lines, "\n")
	return structuredResult("transactions", text, payload), nil
}

func (t *toolset) statCategories(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var data models.StatCategoriesResponse
	payload, err := t.fetch(ctx, "/api/stat-categories", nil, &data)
	if err != nil {
		return toolError(err), nil
	}

	lines := make([]string, 0, len(data.Categories))
	for _, c := range data.Categories {
		line := "  " + c.Name
		if c.PositionType != "" {
			line += " (" + c.PositionType + ")"
		}
		lines = append(lines, line)
	}
	return structuredResult("stat-categories", "Stat Categories:\n"+strings.Join(lines, "\n"), payload), nil
}
