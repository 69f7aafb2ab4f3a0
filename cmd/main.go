package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/franciscosanchezn/fbb-mcp/internal/auth"
	"github.com/franciscosanchezn/fbb-mcp/internal/config"
	"github.com/franciscosanchezn/fbb-mcp/internal/controllers"
	"github.com/franciscosanchezn/fbb-mcp/internal/database"
	"github.com/franciscosanchezn/fbb-mcp/internal/metrics"
	"github.com/franciscosanchezn/fbb-mcp/internal/services"
	"github.com/franciscosanchezn/fbb-mcp/internal/tools"
	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// McpScope is the scope required on the MCP endpoint.
const McpScope = "fbb-mcp"

const shutdownTimeout = 10 * time.Second

// @title Fantasy Baseball MCP
// @version 1.0
// @description MCP app server for Yahoo Fantasy Baseball, protected by a password-gated OAuth 2.1 provider
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the fbb-mcp command. HTTP is the default transport;
// --stdio serves a single local client without OAuth.
func newRootCmd() *cobra.Command {
	var stdio bool
	cmd := &cobra.Command{
		Use:   "fbb-mcp",
		Short: "MCP app server for Yahoo Fantasy Baseball",
		Long: `fbb-mcp exposes fantasy baseball tools and app views over MCP.
Over HTTP the /mcp endpoint is protected by an OAuth flow whose only
credential is the MCP_AUTH_PASSWORD configured on the server.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), stdio)
		},
	}
	cmd.Flags().BoolVar(&stdio, "stdio", false, "serve MCP over stdin/stdout instead of HTTP")
	return cmd
}

func run(ctx context.Context, stdio bool) error {
	loadDotenvFile()

	configuration, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logger := setUpLogger(configuration)
	if err := configuration.Validate(!stdio); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.New(prometheus.DefaultRegisterer)
	api, err := services.NewFantasyAPI(configuration.PythonAPIURL, nil, m)
	if err != nil {
		return err
	}
	mcpServer := tools.NewServer(api, tools.Options{
		UIDir:         configuration.UIDistDir,
		WritesEnabled: configuration.EnableWriteOps,
		Metrics:       m,
	})

	if stdio {
		logger.Info("Serving MCP over stdio")
		return server.NewStdioServer(mcpServer).Listen(ctx, os.Stdin, os.Stdout)
	}
	return serveHTTP(ctx, configuration, mcpServer, m)
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger configures the standard logger and hands it to every package.
func setUpLogger(cfg *config.Config) *log.Logger {
	logger := log.StandardLogger()
	logger.SetFormatter(&log.JSONFormatter{})
	logger.SetLevel(cfg.Level())

	auth.SetLogger(logger)
	controllers.SetLogger(logger)
	database.SetLogger(logger)
	services.SetLogger(logger)
	tools.SetLogger(logger)
	return logger
}

// serveHTTP runs the HTTP server and the record sweeper until ctx is done.
func serveHTTP(ctx context.Context, cfg *config.Config, mcpServer *server.MCPServer, m *metrics.Metrics) error {
	stores, closeStores, err := buildStores(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStores(); err != nil {
			log.WithError(err).Warn("Failed to close OAuth store")
		}
	}()

	provider := auth.NewProvider(cfg.ServerURL, cfg.AuthPassword,
		auth.WithStores(stores),
		auth.WithMetrics(m),
	)
	router, err := setupRouter(cfg, provider, mcpServer, m)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.WithFields(log.Fields{
			"addr":       cfg.Addr(),
			"server_url": cfg.ServerURL,
			"store":      cfg.StoreDriver,
		}).Infof("MCP server listening on http://%s/mcp", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		return auth.NewSweeper(provider, cfg.SweepInterval).Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
