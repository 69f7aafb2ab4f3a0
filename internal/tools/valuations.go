package tools

import (
	"context"
	"strconv"
	"strings"

	"github.com/franciscosanchezn/fbb-mcp/internal/models"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const ValuationsURI = "ui://fbb-mcp/valuations.html"

// finalScore is the z_scores key holding the overall value.
const finalScore = "Final"

func (t *toolset) valuationsTools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: withView(mcp.NewTool("yahoo_rankings",
				mcp.WithDescription("Show top players ranked by z-score value. pos_type: B for batters, P for pitchers"),
				mcp.WithString("pos_type", mcp.DefaultString("B"), mcp.Description("B for batters, P for pitchers")),
				mcp.WithNumber("count", mcp.DefaultNumber(25), mcp.Description("Number of players to return")),
			), ValuationsURI),
			Handler: t.rankings,
		},
		{
			Tool: withView(mcp.NewTool("yahoo_compare",
				mcp.WithDescription("Compare two players side by side with z-score breakdowns"),
				mcp.WithString("player1", mcp.Required(), mcp.Description("First player name")),
				mcp.WithString("player2", mcp.Required(), mcp.Description("Second player name")),
			), ValuationsURI),
			Handler: t.compare,
		},
		{
			Tool: withView(mcp.NewTool("yahoo_value",
				mcp.WithDescription("Show a player's full z-score breakdown across all categories"),
				mcp.WithString("player_name", mcp.Required(), mcp.Description("Player name to look up")),
			), ValuationsURI),
			Handler: t.value,
		},
	}
}

func (t *toolset) rankings(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	posType := request.GetString("pos_type", "B")
	count := request.GetInt("count", 25)

	var data models.RankingsResponse
	payload, err := t.fetch(ctx, "/api/rankings", map[string]string{
		"pos_type": posType,
		"count":    str(count),
	}, &data)
	if err != nil {
		return toolError(err), nil
	}

	label := "Pitcher"
	if posType == "B" {
		label = "Hitter"
	}
	lines := make([]string, 0, len(data.Players))
	for _, p := range data.Players {
		lines = append(lines, "  "+padStart(str(p.Rank), 3)+". "+padEnd(p.Name, 25)+" "+padEnd(p.Pos, 8)+
			" z="+fixed(p.ZScore, 2)+tierSuffix(p.Intel))
	}
	text := "Top " + str(count) + " " + label + " Rankings (z-score, source: " + data.Source + "):\n" + strings.Join(lines, "\n")
	return structuredResult("rankings", text, payload), nil
}

func (t *toolset) compare(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	player1, err := request.RequireString("player1")
	if err != nil {
		return toolError(err), nil
	}
	player2, err := request.RequireString("player2")
	if err != nil {
		return toolError(err), nil
	}

	var data models.CompareResponse
	if _, err := t.fetch(ctx, "/api/compare", map[string]string{"player1": player1, "player2": player2}, &data); err != nil {
		return toolError(err), nil
	}

	var final models.CompareScores
	if data.ZScores != nil {
		final = data.ZScores.Value(finalScore)
	}
	lines := []string{
		"Player Comparison:",
		"  " + data.Player1.Name + " (z=" + fixed(final.Player1, 2) + ")  vs  " + data.Player2.Name + " (z=" + fixed(final.Player2, 2) + ")",
		"",
	}
	cats1 := map[string]float64{}
	cats2 := map[string]float64{}
	for pair := data.ZScores.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Key == finalScore {
			continue
		}
		cats1[pair.Key] = pair.Value.Player1
		cats2[pair.Key] = pair.Value.Player2
		lines = append(lines, "  "+padEnd(pair.Key, 12)+padStart(fixed(pair.Value.Player1, 2), 8)+"  vs  "+padStart(fixed(pair.Value.Player2, 2), 8))
	}

	return structuredResult("compare", strings.Join(lines, "\n"), map[string]any{
		"player1": map[string]any{"name": data.Player1.Name, "z_score": final.Player1, "categories": cats1},
		"player2": map[string]any{"name": data.Player2.Name, "z_score": final.Player2, "categories": cats2},
	}), nil
}

type categoryValue struct {
	Category string  `json:"category"`
	ZScore   float64 `json:"z_score"`
	RawStat  any     `json:"raw_stat"`
}

func (t *toolset) value(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("player_name")
	if err != nil {
		return toolError(err), nil
	}

	var data models.ValueResponse
	if _, err := t.fetch(ctx, "/api/value", map[string]string{"player_name": name}, &data); err != nil {
		return toolError(err), nil
	}
	if len(data.Players) == 0 {
		return structuredResult("value", "Player not found", map[string]any{
			"name":       "Unknown",
			"z_final":    0,
			"categories": []categoryValue{},
		}), nil
	}

	p := data.Players[0]
	var zFinal float64
	if p.ZScores != nil {
		zFinal = p.ZScores.Value(finalScore)
	}
	lines := []string{"Value Breakdown: " + p.Name + " (" + p.Pos + ", " + p.Team + ", z=" + fixed(zFinal, 2) + ")" + tierSuffix(p.Intel)}
	categories := []categoryValue{}
	for pair := p.ZScores.Oldest(); pair != nil; pair = pair.Next() {
		if pair.Key == finalScore {
			continue
		}
		raw := p.RawStats[pair.Key]
		categories = append(categories, categoryValue{Category: pair.Key, ZScore: pair.Value, RawStat: raw})
		line := "  " + padEnd(pair.Key, 12) + " z=" + fixed(pair.Value, 2)
		if raw != nil {
			line += "  (" + str(raw) + ")"
		}
		lines = append(lines, line)
	}

	return structuredResult("value", strings.Join(lines, "\n"), map[string]any{
		"name":        p.Name,
		"team":        p.Team,
		"pos":         p.Pos,
		"player_type": p.Type,
		"z_final":     zFinal,
		"categories":  categories,
	}), nil
}

// fixed formats v with n decimals.
func fixed(v float64, n int) string {
	return strconv.FormatFloat(v, 'f', n, 64)
}

// fixedOrNA formats an optional score, "N/A" when absent.
func fixedOrNA(v *float64, n int) string {
	if v == nil {
		return "N/A"
	}
	return fixed(*v, n)
}

// tierSuffix renders the statcast quality tier as " {tier}".
func tierSuffix(intel *models.PlayerIntel) string {
	if tier := intel.QualityTier(); tier != "" {
		return " {" + tier + "}"
	}
	return ""
}
