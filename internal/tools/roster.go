package tools

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/franciscosanchezn/fbb-mcp/internal/models"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const RosterURI = "ui://fbb-mcp/roster.html"

func (t *toolset) rosterTools(writesEnabled bool) []server.ServerTool {
	tools := []server.ServerTool{
		{
			Tool: withView(mcp.NewTool("yahoo_roster",
				mcp.WithDescription("Show current fantasy baseball roster with positions and eligibility"),
			), RosterURI),
			Handler: t.roster,
		},
		{
			Tool: withView(mcp.NewTool("yahoo_free_agents",
				mcp.WithDescription("List top free agents. pos_type: B for batters, P for pitchers"),
				mcp.WithString("pos_type", mcp.DefaultString("B"), mcp.Description("B for batters, P for pitchers")),
				mcp.WithNumber("count", mcp.DefaultNumber(20), mcp.Description("Number of players to return")),
			), RosterURI),
			Handler: t.freeAgents,
		},
		{
			Tool: withView(mcp.NewTool("yahoo_search",
				mcp.WithDescription("Search for a player by name among free agents"),
				mcp.WithString("player_name", mcp.Required(), mcp.Description("Full or partial player name")),
			), RosterURI),
			Handler: t.search,
		},
		{
			Tool: withView(mcp.NewTool("yahoo_who_owns",
				mcp.WithDescription("Check who owns a specific player by player ID"),
				mcp.WithString("player_id", mcp.Required(), mcp.Description("Yahoo player ID")),
			), RosterURI),
			Handler: t.whoOwns,
		},
		{
			Tool: withView(mcp.NewTool("yahoo_browser_status",
				mcp.WithDescription("Check if the browser session for write operations (add, drop, trade, etc.) is valid. If not valid, user needs to run './yf browser-login'."),
			), RosterURI),
			Handler: t.browserStatus,
		},
	}
	if !writesEnabled {
		return tools
	}

	return append(tools,
		server.ServerTool{
			Tool: withView(mcp.NewTool("yahoo_add",
				mcp.WithDescription("Add a free agent to your roster by player ID"),
				mcp.WithString("player_id", mcp.Required(), mcp.Description("Yahoo player ID")),
			), RosterURI),
			Handler: t.action("/api/add", "add", "Add result: ", "player_id"),
		},
		server.ServerTool{
			Tool: withView(mcp.NewTool("yahoo_drop",
				mcp.WithDescription("Drop a player from your roster by player ID"),
				mcp.WithString("player_id", mcp.Required(), mcp.Description("Yahoo player ID")),
			), RosterURI),
			Handler: t.action("/api/drop", "drop", "Drop result: ", "player_id"),
		},
		server.ServerTool{
			Tool: withView(mcp.NewTool("yahoo_swap",
				mcp.WithDescription("Atomic add+drop swap: add one player and drop another"),
				mcp.WithString("add_id", mcp.Required(), mcp.Description("Player ID to add")),
				mcp.WithString("drop_id", mcp.Required(), mcp.Description("Player ID to drop")),
			), RosterURI),
			Handler: t.action("/api/swap", "swap", "Swap result: ", "add_id", "drop_id"),
		},
		server.ServerTool{
			Tool: withView(mcp.NewTool("yahoo_waiver_claim",
				mcp.WithDescription("Submit a waiver claim with optional FAAB bid. Use for players on waivers (not free agents)."),
				mcp.WithString("player_id", mcp.Required(), mcp.Description("Yahoo player ID")),
				mcp.WithNumber("faab", mcp.Description("Optional FAAB bid")),
			), RosterURI),
			Handler: t.action("/api/waiver-claim", "waiver-claim", "Waiver claim result: ", "player_id"),
		},
		server.ServerTool{
			Tool: withView(mcp.NewTool("yahoo_waiver_claim_swap",
				mcp.WithDescription("Submit a waiver claim + drop with optional FAAB bid"),
				mcp.WithString("add_id", mcp.Required(), mcp.Description("Player ID to claim")),
				mcp.WithString("drop_id", mcp.Required(), mcp.Description("Player ID to drop")),
				mcp.WithNumber("faab", mcp.Description("Optional FAAB bid")),
			), RosterURI),
			Handler: t.action("/api/waiver-claim-swap", "waiver-claim-swap", "Waiver claim+drop result: ", "add_id", "drop_id"),
		},
	)
}

func (t *toolset) roster(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var data models.RosterResponse
	payload, err := t.fetch(ctx, "/api/roster", nil, &data)
	if err != nil {
		return toolError(err), nil
	}

	lines := make([]string, 0, len(data.Players))
	for _, p := range data.Players {
		line := "  " + padEnd(orDefault(p.Position, "?"), 4) + " " + padEnd(p.Name, 25) + " " + strings.Join(p.EligiblePositions, ",")
		if p.Status != "" {
			line += " [" + p.Status + "]"
		}
		lines = append(lines, line+intelSuffix(p.Intel))
	}
	return structuredResult("roster", "Current Roster:\n"+strings.Join(lines, "\n"), payload), nil
}

func (t *toolset) freeAgents(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	posType := request.GetString("pos_type", "B")
	count := request.GetInt("count", 20)

	var data models.FreeAgentsResponse
	payload, err := t.fetch(ctx, "/api/free-agents", map[string]string{
		"pos_type": posType,
		"count":    str(count),
	}, &data)
	if err != nil {
		return toolError(err), nil
	}

	label := "Pitchers"
	if posType == "B" {
		label = "Batters"
	}
	lines := make([]string, 0, len(data.Players))
	for _, p := range data.Players {
		positions := str(p.Positions)
		line := "  " + padEnd(p.Name, 25) + " " + padEnd(orDefault(positions, "?"), 12) + " " + ownedSuffix(p)
		lines = append(lines, line+intelSuffix(p.Intel))
	}
	text := "Top " + str(count) + " Free Agent " + label + ":\n" + strings.Join(lines, "\n")
	return structuredResult("free-agents", text, payload), nil
}

func (t *toolset) search(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("player_name")
	if err != nil {
		return toolError(err), nil
	}

	var data models.SearchResponse
	payload, err := t.fetch(ctx, "/api/search", map[string]string{"name": name}, &data)
	if err != nil {
		return toolError(err), nil
	}

	if len(data.Results) == 0 {
		return structuredResult("search", "No free agents found matching: "+name, payload), nil
	}
	lines := make([]string, 0, len(data.Results))
	for _, p := range data.Results {
		lines = append(lines, "  "+padEnd(p.Name, 25)+" "+padEnd(strings.Join(p.EligiblePositions, ","), 12)+" "+ownedSuffix(p))
	}
	return structuredResult("search", "Free agents matching: "+name+"\n"+strings.Join(lines, "\n"), payload), nil
}

func (t *toolset) whoOwns(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	playerID, err := request.RequireString("player_id")
	if err != nil {
		return toolError(err), nil
	}

	var data models.WhoOwnsResponse
	payload, err := t.fetch(ctx, "/api/who-owns", map[string]string{"player_id": playerID}, &data)
	if err != nil {
		return toolError(err), nil
	}

	var text string
	switch data.OwnershipType {
	case "team":
		text = "Player " + playerID + " is owned by: " + data.Owner
	case "freeagents":
		text = "Player " + playerID + " is a free agent"
	case "waivers":
		text = "Player " + playerID + " is on waivers"
	default:
		text = "Player " + playerID + " ownership: " + data.OwnershipType
	}
	return structuredResult("who-owns", text, payload), nil
}

func (t *toolset) browserStatus(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var data models.BrowserStatusResponse
	payload, err := t.fetch(ctx, "/api/browser-login-status", nil, &data)
	if err != nil {
		return toolError(err), nil
	}

	var text string
	if data.Valid {
		text = "Browser session is valid (" + str(data.CookieCount) + " Yahoo cookies)"
	} else {
		text = "Browser session not valid: " + orDefault(data.Reason, "unknown") + ". Run './yf browser-login' to set up."
	}
	return structuredResult("browser-status", text, payload), nil
}

// action builds a handler that POSTs the named string arguments, plus an
// optional faab bid, and reports the backend message.
func (t *toolset) action(path, kind, fallback string, fields ...string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		body := make(map[string]string, len(fields)+1)
		for _, field := range fields {
			value, err := request.RequireString(field)
			if err != nil {
				return toolError(err), nil
			}
			body[field] = value
		}
		if faab, ok := request.GetArguments()["faab"]; ok && faab != nil {
			body["faab"] = str(faab)
		}

		var data models.ActionResponse
		payload, err := t.send(ctx, path, body, &data)
		if err != nil {
			return toolError(err), nil
		}

		text := data.Message
		if text == "" {
			raw, _ := json.Marshal(payload)
			text = fallback + string(raw)
		}
		return structuredResult(kind, text, payload), nil
	}
}

func ownedSuffix(p models.Player) string {
	return padStart(str(orZero(p.PercentOwned)), 3) + "% owned  (id:" + str(p.PlayerID) + ")"
}

func intelSuffix(intel *models.PlayerIntel) string {
	var suffix string
	if tier := intel.QualityTier(); tier != "" {
		suffix += " {" + tier + "}"
	}
	if trend := intel.HotCold(); trend != "" && trend != "neutral" {
		suffix += " [" + trend + "]"
	}
	return suffix
}
