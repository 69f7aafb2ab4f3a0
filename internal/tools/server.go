package tools

import (
	"context"
	"time"

	"github.com/franciscosanchezn/fbb-mcp/internal/metrics"
	"github.com/franciscosanchezn/fbb-mcp/internal/services"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"
)

const (
	ServerName    = "Yahoo Fantasy Baseball"
	ServerVersion = "1.0.0"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// SetLogger replaces the package logger.
func SetLogger(l *logrus.Logger) {
	if l != nil {
		log = l
	}
}

// Options controls which tools and views are exposed.
type Options struct {
	// UIDir holds the built HTML app views, one file per tool group.
	UIDir string
	// WritesEnabled registers the roster-changing tools.
	WritesEnabled bool
	Metrics       *metrics.Metrics
}

// toolset binds tool handlers to the backend API.
type toolset struct {
	api     services.FantasyAPI
	metrics *metrics.Metrics
}

// NewServer builds the MCP server with every tool group and app view.
func NewServer(api services.FantasyAPI, opts Options) *server.MCPServer {
	s := server.NewMCPServer(
		ServerName,
		ServerVersion,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithRecovery(),
	)

	t := &toolset{api: api, metrics: opts.Metrics}

	all := t.rosterTools(opts.WritesEnabled)
	all = append(all, t.standingsTools()...)
	all = append(all, t.mlbTools()...)
	all = append(all, t.valuationsTools()...)
	all = append(all, t.draftTools()...)
	all = append(all, t.historyTools()...)
	all = append(all, t.intelTools()...)
	for i := range all {
		all[i].Handler = t.instrument(all[i].Tool.Name, all[i].Handler)
	}
	s.AddTools(all...)

	for _, view := range appViews {
		s.AddResource(view.resource(), view.handler(opts.UIDir))
	}

	log.WithFields(logrus.Fields{
		"tools":          len(all),
		"writes_enabled": opts.WritesEnabled,
	}).Info("MCP server initialized")
	return s
}

// instrument records metrics and logs every call to handler.
func (t *toolset) instrument(name string, handler server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		result, err := handler(ctx, request)
		failed := err != nil || (result != nil && result.IsError)
		t.metrics.ToolCall(name, failed)
		log.WithFields(logrus.Fields{
			"tool":     name,
			"failed":   failed,
			"duration": time.Since(start).String(),
		}).Debug("Tool call completed")
		return result, err
	}
}

// withView attaches the app view a tool renders into.
func withView(tool mcp.Tool, uri string) mcp.Tool {
	tool.Meta = &mcp.Meta{
		AdditionalFields: map[string]any{
			"ui": map[string]any{"resourceUri": uri},
		},
	}
	return tool
}
