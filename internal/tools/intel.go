package tools

import (
	"context"
	"strings"

	"github.com/franciscosanchezn/fbb-mcp/internal/models"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const IntelURI = "ui://fbb-mcp/intel.html"

func (t *toolset) intelTools() []server.ServerTool {
	posType := mcp.WithString("pos_type", mcp.DefaultString("B"), mcp.Description("B for batters, P for pitchers"))
	count := mcp.WithNumber("count", mcp.DefaultNumber(15), mcp.Description("Number of players to return"))
	return []server.ServerTool{
		{
			Tool: withView(mcp.NewTool("fantasy_player_report",
				mcp.WithDescription("Deep-dive Statcast + trends + plate discipline + Reddit buzz for a single player"),
				mcp.WithString("player_name", mcp.Required(), mcp.Description("Player name")),
			), IntelURI),
			Handler: t.playerReport,
		},
		{
			Tool: withView(mcp.NewTool("fantasy_breakout_candidates",
				mcp.WithDescription("Find breakout candidates: players whose expected stats (xwOBA) exceed actual performance, suggesting positive regression"),
				posType, count,
			), IntelURI),
			Handler: t.candidates("/api/intel/breakouts", "intel-breakouts", "Breakout Candidates", "xwOBA exceeds actual wOBA", "+"),
		},
		{
			Tool: withView(mcp.NewTool("fantasy_bust_candidates",
				mcp.WithDescription("Find bust candidates: players whose actual performance (wOBA) exceeds expected stats (xwOBA), suggesting negative regression"),
				posType, count,
			), IntelURI),
			Handler: t.candidates("/api/intel/busts", "intel-busts", "Bust Candidates", "actual wOBA exceeds xwOBA", ""),
		},
		{
			Tool: withView(mcp.NewTool("fantasy_reddit_buzz",
				mcp.WithDescription("What r/fantasybaseball is talking about right now - hot posts, trending topics"),
			), IntelURI),
			Handler: t.redditBuzz,
		},
		{
			Tool: withView(mcp.NewTool("fantasy_trending_players",
				mcp.WithDescription("Players with rising buzz on Reddit - high engagement posts about specific players"),
			), IntelURI),
			Handler: t.trendingPlayers,
		},
		{
			Tool: withView(mcp.NewTool("fantasy_prospect_watch",
				mcp.WithDescription("Recent MLB prospect call-ups and roster moves that could impact fantasy"),
			), IntelURI),
			Handler: t.prospectWatch,
		},
		{
			Tool: withView(mcp.NewTool("fantasy_transactions",
				mcp.WithDescription("Recent fantasy-relevant MLB transactions (IL, call-up, DFA, trade). Use days param to control lookback window."),
				mcp.WithNumber("days", mcp.DefaultNumber(7), mcp.Description("Lookback window in days")),
			), IntelURI),
			Handler: t.intelTransactions,
		},
	}
}

func (t *toolset) playerReport(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("player_name")
	if err != nil {
		return toolError(err), nil
	}

	var data models.IntelReport
	payload, err := t.fetch(ctx, "/api/intel/player", map[string]string{"name": name}, &data)
	if err != nil {
		return toolError(err), nil
	}

	lines := []string{"Player Intelligence: " + data.Name}
	if sc := data.Statcast; sc != nil {
		lines = append(lines, "", "Statcast: "+strings.ToUpper(orDefault(sc.QualityTier, "unknown")))
		if sc.XWOBA != nil {
			lines = append(lines, "  xwOBA: "+str(sc.XWOBA)+" ("+rankOrUnknown(sc.XWOBAPctRank)+"th pct)")
		}
		if sc.AvgExitVelo != nil {
			lines = append(lines, "  Exit Velo: "+str(sc.AvgExitVelo)+" ("+rankOrUnknown(sc.EVPctRank)+"th pct)")
		}
		if sc.BarrelPctRank != nil {
			lines = append(lines, "  Barrel Rate: "+rankOrUnknown(sc.BarrelPctRank)+"th pct")
		}
		if sc.HardHitRate != nil {
			lines = append(lines, "  Hard Hit: "+str(sc.HardHitRate)+"% ("+rankOrUnknown(sc.HHPctRank)+"th pct)")
		}
	}
	if tr := data.Trends; tr != nil {
		lines = append(lines, "", "Trend: "+strings.ToUpper(orDefault(tr.HotCold, "neutral")))
		if tr.Last14Days != nil {
			stats := make([]string, 0, tr.Last14Days.Len())
			for pair := tr.Last14Days.Oldest(); pair != nil; pair = pair.Next() {
				stats = append(stats, pair.Key+"="+str(pair.Value))
			}
			lines = append(lines, "  14-Day: "+strings.Join(stats, ", "))
		}
	}
	if c := data.Context; c != nil && c.RedditMentions > 0 {
		lines = append(lines, "", "Reddit: "+str(c.RedditMentions)+" mentions ("+orDefault(c.RedditSentiment, "neutral")+")")
	}
	if d := data.Discipline; d != nil {
		lines = append(lines, "", "Plate Discipline:")
		if d.BBRate != nil {
			lines = append(lines, "  BB%: "+str(d.BBRate))
		}
		if d.KRate != nil {
			lines = append(lines, "  K%: "+str(d.KRate))
		}
	}
	return structuredResult("intel-player", strings.Join(lines, "\n"), payload), nil
}

// rankOrUnknown prints a percentile rank, "?" when missing or zero.
func rankOrUnknown(v any) string {
	if orZero(v) == 0 {
		return "?"
	}
	return str(v)
}

// candidates lists xwOBA regression candidates. diffSign prefixes the
// difference column.
func (t *toolset) candidates(path, kind, title, subtitle, diffSign string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		posType := request.GetString("pos_type", "B")
		count := request.GetInt("count", 15)

		var data models.CandidatesResponse
		payload, err := t.fetch(ctx, path, map[string]string{"pos_type": posType, "count": str(count)}, &data)
		if err != nil {
			return toolError(err), nil
		}

		label := "Pitcher"
		if posType == "B" {
			label = "Hitter"
		}
		lines := []string{
			title + " (" + label + "s) - " + subtitle + ":",
			"  " + padEnd("Player", 25) + padStart("wOBA", 7) + padStart("  xwOBA", 7) + padStart("  Diff", 7) + padStart("  PA", 5),
			"  " + strings.Repeat("-", 55),
		}
		diffWidth := 7 - len(diffSign)
		for _, c := range data.Candidates {
			lines = append(lines, "  "+padEnd(c.Name, 25)+padStart(fixed(c.WOBA, 3), 7)+"  "+padStart(fixed(c.XWOBA, 3), 7)+
				"  "+diffSign+padStart(fixed(c.Diff, 3), diffWidth)+padStart(str(c.PA), 5))
		}
		return structuredResult(kind, strings.Join(lines, "\n"), payload), nil
	}
}

func (t *toolset) redditBuzz(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var data models.RedditPostsResponse
	payload, err := t.fetch(ctx, "/api/intel/reddit", nil, &data)
	if err != nil {
		return toolError(err), nil
	}

	lines := []string{"Reddit Fantasy Baseball Buzz:"}
	for _, p := range data.Posts {
		flair := ""
		if p.Flair != "" {
			flair = "[" + p.Flair + "] "
		}
		lines = append(lines, "  "+flair+postLine(p))
	}
	return structuredResult("intel-reddit", strings.Join(lines, "\n"), payload), nil
}

func (t *toolset) trendingPlayers(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var data models.RedditPostsResponse
	payload, err := t.fetch(ctx, "/api/intel/trending", nil, &data)
	if err != nil {
		return toolError(err), nil
	}

	lines := []string{"Trending Players:"}
	for _, p := range data.Posts {
		lines = append(lines, "  "+postLine(p))
	}
	if len(data.Posts) == 0 {
		lines = append(lines, "  No trending player posts found.")
	}
	return structuredResult("intel-trending", strings.Join(lines, "\n"), payload), nil
}

func postLine(p models.RedditPost) string {
	return p.Title + " (score:" + str(p.Score) + ", comments:" + str(p.NumComments) + ")"
}

func (t *toolset) prospectWatch(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var data models.ProspectTransactionsResponse
	payload, err := t.fetch(ctx, "/api/intel/prospects", nil, &data)
	if err != nil {
		return toolError(err), nil
	}

	lines := []string{"Prospect Watch - Recent Call-ups & Moves:"}
	for _, tx := range data.Transactions {
		lines = append(lines, "  "+padEnd(tx.Type, 12)+" "+padEnd(tx.Player, 25)+" "+tx.Team)
	}
	if len(data.Transactions) == 0 {
		lines = append(lines, "  No recent prospect moves found.")
	}
	return structuredResult("intel-prospects", strings.Join(lines, "\n"), payload), nil
}

func (t *toolset) intelTransactions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	days := request.GetInt("days", 7)

	var data models.ProspectTransactionsResponse
	payload, err := t.fetch(ctx, "/api/intel/transactions", map[string]string{"days": str(days)}, &data)
	if err != nil {
		return toolError(err), nil
	}

	lines := []string{"MLB Transactions (last " + str(days) + " days):"}
	for _, tx := range data.Transactions {
		line := "  " + padEnd(tx.Type, 12) + " " + padEnd(tx.Player, 25) + " " + tx.Team
		if tx.Description != "" {
			line += " - " + tx.Description
		}
		lines = append(lines, line)
	}
	if len(data.Transactions) == 0 {
		lines = append(lines, "  No transactions found.")
	}
	return structuredResult("intel-transactions", strings.Join(lines, "\n"), payload), nil
}
