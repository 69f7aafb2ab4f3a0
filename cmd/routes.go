package main

import (
	"net/http"
	"time"

	_ "github.com/franciscosanchezn/fbb-mcp/docs" // Register the OpenAPI document
	"github.com/franciscosanchezn/fbb-mcp/internal/auth"
	"github.com/franciscosanchezn/fbb-mcp/internal/config"
	"github.com/franciscosanchezn/fbb-mcp/internal/controllers"
	"github.com/franciscosanchezn/fbb-mcp/internal/metrics"
	"github.com/franciscosanchezn/fbb-mcp/internal/middleware"
	"github.com/franciscosanchezn/fbb-mcp/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// setupRouter initializes the Gin router and sets up the routes
func setupRouter(cfg *config.Config, provider *auth.Provider, mcpServer *server.MCPServer, m *metrics.Metrics) (*gin.Engine, error) {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	if err := router.SetTrustedProxies([]string{"127.0.0.1", "::1"}); err != nil {
		return nil, err
	}

	// The preview API proxy sits in front of auth; the backend is only
	// reachable from inside the container.
	if cfg.EnablePreview {
		preview, err := controllers.NewPreviewController(cfg.PythonAPIURL, cfg.PreviewDir)
		if err != nil {
			return nil, err
		}
		router.GET("/preview", preview.Index)
		router.Static("/preview/", preview.Dir())
		router.Any("/api/*path", preview.Proxy)
	}

	setupRoutes(router, provider, mcpServer, m)
	return router, nil
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine, provider *auth.Provider, mcpServer *server.MCPServer, m *metrics.Metrics) {
	oauthController := controllers.NewOAuthController(provider, McpScope)
	clientController := controllers.NewClientController(services.NewClientService(provider.Clients()), m)
	loginController := controllers.NewLoginController(provider)
	mcpController := controllers.NewMCPController(mcpServer)

	router.GET("/health", healthCheckHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// OAuth authorization server
	router.GET("/.well-known/oauth-authorization-server", oauthController.AuthorizationServerMetadata)
	router.GET("/.well-known/oauth-protected-resource", oauthController.ProtectedResourceMetadata)
	router.GET("/.well-known/oauth-protected-resource/mcp", oauthController.ProtectedResourceMetadata)
	router.GET("/authorize", oauthController.Authorize)
	router.POST("/authorize", oauthController.Authorize)
	router.POST("/token", oauthController.Token)
	router.POST("/revoke", oauthController.Revoke)
	router.POST("/register", clientController.Register)

	// Password page
	router.GET("/login", loginController.LoginPage)
	router.POST("/login/callback", loginController.Callback)

	// MCP endpoint (requires a bearer token with the fbb-mcp scope)
	mcp := router.Group("/mcp")
	mcp.DELETE("", mcpController.MethodNotAllowed)
	mcp.Use(
		middleware.BearerAuth(provider, oauthController.ResourceMetadataURL()),
		middleware.RequireScope(McpScope),
	)
	{
		mcp.POST("", mcpController.Handle)
		mcp.GET("", mcpController.Handle)
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "fbb-mcp",
	})
}
