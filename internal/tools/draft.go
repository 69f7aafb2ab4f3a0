package tools

import (
	"context"
	"strings"

	"github.com/franciscosanchezn/fbb-mcp/internal/models"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const DraftURI = "ui://fbb-mcp/draft.html"

// recommendedPerSide caps the hitters and pitchers listed in a recommendation.
const recommendedPerSide = 5

func (t *toolset) draftTools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: withView(mcp.NewTool("yahoo_draft_status",
				mcp.WithDescription("Show current draft status: picks made, your round, roster composition"),
			), DraftURI),
			Handler: t.draftStatus,
		},
		{
			Tool: withView(mcp.NewTool("yahoo_draft_recommend",
				mcp.WithDescription("Get draft pick recommendation with top available hitters and pitchers by z-score"),
			), DraftURI),
			Handler: t.draftRecommend,
		},
		{
			Tool: withView(mcp.NewTool("yahoo_draft_cheatsheet",
				mcp.WithDescription("Show draft strategy cheat sheet with round-by-round targets"),
			), DraftURI),
			Handler: t.draftCheatsheet,
		},
		{
			Tool: withView(mcp.NewTool("yahoo_best_available",
				mcp.WithDescription("Show best available players ranked by z-score. pos_type: B for batters, P for pitchers"),
				mcp.WithString("pos_type", mcp.DefaultString("B"), mcp.Description("B for batters, P for pitchers")),
				mcp.WithNumber("count", mcp.DefaultNumber(25), mcp.Description("Number of players to return")),
			), DraftURI),
			Handler: t.bestAvailable,
		},
	}
}

func (t *toolset) draftStatus(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var data models.DraftStatusResponse
	payload, err := t.fetch(ctx, "/api/draft-status", nil, &data)
	if err != nil {
		return toolError(err), nil
	}

	text := "Draft Status:\n" +
		"  Total Picks: " + str(data.TotalPicks) + "\n" +
		"  Your Round: " + str(data.CurrentRound) + "\n" +
		"  Hitters: " + str(data.Hitters) + "\n" +
		"  Pitchers: " + str(data.Pitchers)
	return structuredResult("draft-status", text, payload), nil
}

func (t *toolset) draftRecommend(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var data models.DraftRecommendResponse
	payload, err := t.fetch(ctx, "/api/draft-recommend", nil, &data)
	if err != nil {
		return toolError(err), nil
	}

	lines := []string{
		"Draft Recommendation (Round " + str(data.Round) + "):",
		"Recommendation: " + data.Recommendation,
		"",
		"Top Available Hitters:",
	}
	lines = append(lines, recommendationLines(data.TopHitters)...)
	lines = append(lines, "", "Top Available Pitchers:")
	lines = append(lines, recommendationLines(data.TopPitchers)...)
	return structuredResult("draft-recommend", strings.Join(lines, "\n"), payload), nil
}

func recommendationLines(players []models.DraftRecommendation) []string {
	if len(players) > recommendedPerSide {
		players = players[:recommendedPerSide]
	}
	lines := make([]string, 0, len(players))
	for _, p := range players {
		lines = append(lines, "  "+padEnd(p.Name, 25)+" "+padEnd(strings.Join(p.Positions, ","), 12)+
			" z="+fixedOrNA(p.ZScore, 2)+tierSuffix(p.Intel))
	}
	return lines
}

func (t *toolset) draftCheatsheet(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var data models.CheatsheetResponse
	payload, err := t.fetch(ctx, "/api/draft-cheatsheet", nil, &data)
	if err != nil {
		return toolError(err), nil
	}

	lines := []string{"Draft Cheat Sheet:", "", "STRATEGY:"}
	for pair := data.Strategy.Oldest(); pair != nil; pair = pair.Next() {
		lines = append(lines, "  "+roundsLabel(pair.Key)+": "+pair.Value)
	}
	lines = append(lines, "", "TARGETS:")
	for pair := data.Targets.Oldest(); pair != nil; pair = pair.Next() {
		lines = append(lines, "  "+roundsLabel(pair.Key)+": "+strings.Join(pair.Value, ", "))
	}
	if data.Avoid != nil {
		lines = append(lines, "", "AVOID:")
		for _, a := range data.Avoid {
			lines = append(lines, "  - "+a)
		}
	}
	if data.Opponents != nil {
		lines = append(lines, "", "OPPONENTS:")
		for _, o := range data.Opponents {
			lines = append(lines, "  "+o.Name+": "+o.Tendency)
		}
	}
	return structuredResult("draft-cheatsheet", strings.Join(lines, "\n"), payload), nil
}

// roundsLabel turns keys like "rounds_1_3" into "rounds 1 3".
func roundsLabel(key string) string {
	return strings.ReplaceAll(key, "_", " ")
}

func (t *toolset) bestAvailable(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	posType := request.GetString("pos_type", "B")
	count := request.GetInt("count", 25)

	var data models.BestAvailableResponse
	payload, err := t.fetch(ctx, "/api/best-available", map[string]string{
		"pos_type": posType,
		"count":    str(count),
	}, &data)
	if err != nil {
		return toolError(err), nil
	}

	label := "Pitchers"
	if posType == "B" {
		label = "Hitters"
	}
	lines := make([]string, 0, len(data.Players))
	for _, p := range data.Players {
		lines = append(lines, "  "+padStart(str(p.Rank), 3)+". "+padEnd(p.Name, 25)+" "+
			padEnd(strings.Join(p.Positions, ","), 12)+" z="+fixedOrNA(p.ZScore, 2)+tierSuffix(p.Intel))
	}
	return structuredResult("best-available", "Best Available "+label+":\n"+strings.Join(lines, "\n"), payload), nil
}
