package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mark3labs/mcp-go/server"
)

// MCPController mounts the stateless streamable HTTP transport.
type MCPController struct {
	handler http.Handler
}

func NewMCPController(mcpServer *server.MCPServer) *MCPController {
	return &MCPController{
		handler: server.NewStreamableHTTPServer(mcpServer, server.WithStateLess(true)),
	}
}

// Handle godoc
// @Summary MCP endpoint
// @Description Streamable HTTP MCP transport (JSON-RPC over POST, SSE over GET)
// @Tags MCP
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} models.OAuth2Error
// @Failure 403 {object} models.OAuth2Error
// @Security BearerAuth
// @Router /mcp [post]
func (mc *MCPController) Handle(c *gin.Context) {
	mc.handler.ServeHTTP(c.Writer, c.Request)
}

// MethodNotAllowed rejects session teardown; the transport keeps no sessions.
func (mc *MCPController) MethodNotAllowed(c *gin.Context) {
	c.String(http.StatusMethodNotAllowed, "Method not allowed")
}
