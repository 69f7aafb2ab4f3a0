package tools

import (
	"context"
	"strings"

	"github.com/franciscosanchezn/fbb-mcp/internal/models"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const HistoryURI = "ui://fbb-mcp/history.html"

const careerLeaders = 10

func (t *toolset) historyTools() []server.ServerTool {
	year := mcp.WithNumber("year", mcp.Required(), mcp.Description("Season year (e.g. 2024)"))
	return []server.ServerTool{
		{
			Tool: withView(mcp.NewTool("yahoo_league_history",
				mcp.WithDescription("All-time season results: champions, your finishes, and W-L-T records"),
			), HistoryURI),
			Handler: t.leagueHistory,
		},
		{
			Tool: withView(mcp.NewTool("yahoo_record_book",
				mcp.WithDescription("All-time records: career W-L, best seasons, most active managers, playoff appearances, #1 draft picks"),
			), HistoryURI),
			Handler: t.recordBook,
		},
		{
			Tool: withView(mcp.NewTool("yahoo_past_standings",
				mcp.WithDescription("Full standings for a past season with W-L-T records and managers"),
				year,
			), HistoryURI),
			Handler: t.pastStandings,
		},
		{
			Tool: withView(mcp.NewTool("yahoo_past_draft",
				mcp.WithDescription("Draft picks for a past season with player names resolved"),
				year,
				mcp.WithNumber("count", mcp.DefaultNumber(25), mcp.Description("Number of picks to return")),
			), HistoryURI),
			Handler: t.pastDraft,
		},
		{
			Tool: withView(mcp.NewTool("yahoo_past_teams",
				mcp.WithDescription("Team names, managers, move counts, and trade counts for a past season"),
				year,
			), HistoryURI),
			Handler: t.pastTeams,
		},
		{
			Tool: withView(mcp.NewTool("yahoo_past_trades",
				mcp.WithDescription("Trade history for a past season showing players exchanged between teams"),
				year,
				mcp.WithNumber("count", mcp.DefaultNumber(10), mcp.Description("Number of trades to return")),
			), HistoryURI),
			Handler: t.pastTrades,
		},
		{
			Tool: withView(mcp.NewTool("yahoo_past_matchup",
				mcp.WithDescription("Matchup results for a specific week in a past season with category win counts"),
				year,
				mcp.WithNumber("week", mcp.Required(), mcp.Description("Week number")),
			), HistoryURI),
			Handler: t.pastMatchup,
		},
	}
}

func (t *toolset) leagueHistory(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var data models.LeagueHistoryResponse
	payload, err := t.fetch(ctx, "/api/league-history", nil, &data)
	if err != nil {
		return toolError(err), nil
	}

	lines := []string{"League History:"}
	for _, s := range data.Seasons {
		line := "  " + str(s.Year) + ": Champion: " + s.Champion
		if s.YourFinish != "" {
			line += " | You: " + s.YourFinish
		}
		if s.YourRecord != "" {
			line += " (" + s.YourRecord + ")"
		}
		lines = append(lines, line)
	}
	return structuredResult("league-history", strings.Join(lines, "\n"), payload), nil
}

func (t *toolset) recordBook(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var data models.RecordBookResponse
	payload, err := t.fetch(ctx, "/api/record-book", nil, &data)
	if err != nil {
		return toolError(err), nil
	}

	lines := []string{"Record Book:", "\nChampions:"}
	for _, c := range data.Champions {
		lines = append(lines, "  "+str(c.Year)+": "+padEnd(c.TeamName, 25)+" "+padEnd(c.Manager, 15)+" "+c.Record)
	}
	lines = append(lines, "\nCareer Leaders:")
	careers := data.Careers
	if len(careers) > careerLeaders {
		careers = careers[:careerLeaders]
	}
	for _, c := range careers {
		lines = append(lines, "  "+padEnd(c.Manager, 15)+" "+str(c.Wins)+"-"+str(c.Losses)+"-"+str(c.Ties)+
			" ("+str(c.WinPct)+"%)  "+str(c.Seasons)+" seasons  Best: #"+str(c.BestFinish)+" ("+str(c.BestYear)+")")
	}
	lines = append(lines, "\n#1 Draft Picks:")
	for _, p := range data.FirstPicks {
		lines = append(lines, "  "+str(p.Year)+": "+p.Player)
	}
	return structuredResult("record-book", strings.Join(lines, "\n"), payload), nil
}

func (t *toolset) pastStandings(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	year, err := request.RequireInt("year")
	if err != nil {
		return toolError(err), nil
	}

	var data models.PastStandingsResponse
	payload, err := t.fetch(ctx, "/api/past-standings", map[string]string{"year": str(year)}, &data)
	if err != nil {
		return toolError(err), nil
	}

	lines := []string{"Standings for " + str(year) + ":"}
	for _, s := range data.Standings {
		lines = append(lines, "  "+padStart(str(s.Rank), 2)+". "+padEnd(s.TeamName, 25)+" "+padEnd(s.Manager, 15)+" "+s.Record)
	}
	if _, ok := payload["year"]; !ok {
		payload["year"] = year
	}
	return structuredResult("past-standings", strings.Join(lines, "\n"), payload), nil
}

func (t *toolset) pastDraft(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	year, err := request.RequireInt("year")
	if err != nil {
		return toolError(err), nil
	}
	count := request.GetInt("count", 25)

	var data models.PastDraftResponse
	payload, err := t.fetch(ctx, "/api/past-draft", map[string]string{"year": str(year), "count": str(count)}, &data)
	if err != nil {
		return toolError(err), nil
	}

	lines := []string{"Draft " + str(year) + ":"}
	for _, p := range data.Picks {
		lines = append(lines, "  Rd "+padStart(str(p.Round), 2)+" Pick "+padStart(str(p.Pick), 2)+": "+
			padEnd(p.PlayerName, 25)+" -> "+p.TeamName)
	}
	return structuredResult("past-draft", strings.Join(lines, "\n"), payload), nil
}

func (t *toolset) pastTeams(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	year, err := request.RequireInt("year")
	if err != nil {
		return toolError(err), nil
	}

	var data models.PastTeamsResponse
	payload, err := t.fetch(ctx, "/api/past-teams", map[string]string{"year": str(year)}, &data)
	if err != nil {
		return toolError(err), nil
	}

	lines := []string{"Teams for " + str(year) + ":"}
	for _, team := range data.Teams {
		lines = append(lines, "  "+padEnd(team.Name, 25)+" "+padEnd(team.Manager, 15)+" "+
			str(team.Moves)+" moves, "+str(team.Trades)+" trades")
	}
	return structuredResult("past-teams", strings.Join(lines, "\n"), payload), nil
}

func (t *toolset) pastTrades(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	year, err := request.RequireInt("year")
	if err != nil {
		return toolError(err), nil
	}
	count := request.GetInt("count", 10)

	var data models.PastTradesResponse
	payload, err := t.fetch(ctx, "/api/past-trades", map[string]string{"year": str(year), "count": str(count)}, &data)
	if err != nil {
		return toolError(err), nil
	}

	lines := []string{"Trades for " + str(year) + ":"}
	if len(data.Trades) == 0 {
		lines = append(lines, "  No trades this season.")
	}
	for _, trade := range data.Trades {
		lines = append(lines, "  "+trade.TraderTeam+" <-> "+trade.TradeeTeam)
		for _, p := range trade.Players {
			lines = append(lines, "    "+p.Name+": "+p.From+" -> "+p.To)
		}
		lines = append(lines, "")
	}
	return structuredResult("past-trades", strings.Join(lines, "\n"), payload), nil
}

func (t *toolset) pastMatchup(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	year, err := request.RequireInt("year")
	if err != nil {
		return toolError(err), nil
	}
	week, err := request.RequireInt("week")
	if err != nil {
		return toolError(err), nil
	}

	var data models.PastMatchupResponse
	payload, err := t.fetch(ctx, "/api/past-matchup", map[string]string{"year": str(year), "week": str(week)}, &data)
	if err != nil {
		return toolError(err), nil
	}

	lines := []string{"Matchups " + str(year) + " Week " + str(week) + ":"}
	for _, m := range data.Matchups {
		lines = append(lines, "  "+padEnd(m.Team1, 25)+" "+padEnd(m.Score, 10)+" "+m.Team2)
	}
	return structuredResult("past-matchup", strings.Join(lines, "\n"), payload), nil
}
