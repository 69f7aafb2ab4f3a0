package tools

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// AppMIMEType marks a resource as an MCP app view.
const AppMIMEType = "text/html;profile=mcp-app"

// appView is a single-page HTML bundle served as a ui:// resource.
type appView struct {
	uri         string
	name        string
	description string
	file        string
}

var appViews = []appView{
	{RosterURI, "Roster View", "Interactive roster management view", "roster.html"},
	{StandingsURI, "Standings View", "League standings, matchups, and scoreboard", "standings.html"},
	{MLBURI, "MLB Data View", "MLB teams, rosters, stats, injuries, standings, and schedule", "mlb.html"},
	{ValuationsURI, "Valuations View", "Z-score rankings, player comparisons, and valuations", "valuations.html"},
	{DraftURI, "Draft Assistant View", "Draft day tool with z-score recommendations", "draft.html"},
	{HistoryURI, "History View", "League history, records, and past season data", "history.html"},
	{IntelURI, "Intelligence Dashboard", "Player intelligence: Statcast, trends, Reddit buzz, breakouts, prospects", "intel.html"},
}

func (v appView) resource() mcp.Resource {
	return mcp.NewResource(v.uri, v.name,
		mcp.WithResourceDescription(v.description),
		mcp.WithMIMEType(AppMIMEType),
	)
}

// handler reads the bundle on every request so rebuilt views are picked up
// without a restart.
func (v appView) handler(dir string) server.ResourceHandlerFunc {
	return func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		html, err := os.ReadFile(filepath.Join(dir, v.file))
		if err != nil {
			log.WithError(err).WithField("uri", v.uri).Error("Failed to read app view")
			return nil, fmt.Errorf("failed to read %s: %w", v.file, err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      v.uri,
				MIMEType: AppMIMEType,
				Text:     string(html),
			},
		}, nil
	}
}
