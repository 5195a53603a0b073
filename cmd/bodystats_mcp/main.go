// Package main runs the bodystats MCP server over stdio (for local MCP clients).
// The same MCP server is also mounted on the service at /mcp over HTTP.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/2beens/bodystats/internal/config"
	"github.com/2beens/bodystats/internal/logging"
	"github.com/2beens/bodystats/internal/store"
	"github.com/2beens/bodystats/internal/telemetry/metrics"
	"github.com/2beens/bodystats/internal/tracker"
	trackermcp "github.com/2beens/bodystats/internal/tracker/mcp"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// stdout carries the MCP protocol, logs go to the file or stderr
	logging.Setup(logging.LoggerSetupParams{
		LogFileName: cfg.LogsPath,
		LogLevel:    cfg.LogLevel,
		Environment: cfg.Environment,
		Console:     os.Stderr,
	})

	blobs, err := store.NewSQLiteStore(cfg.SQLitePath)
	if err != nil {
		log.Fatalf("sqlite store: %v", err)
	}
	defer func() {
		if err := blobs.Close(); err != nil {
			log.Errorf("close sqlite store: %s", err)
		}
	}()

	service := tracker.NewService(tracker.NewRepo(blobs), tracker.ServiceParams{
		ReportCacheSizeMB: cfg.ReportCacheSizeMB,
		ReportCacheTTL:    cfg.ReportCacheTTL(),
		MetricsManager:    metrics.NewManager("bodystats", "mcp", metrics.SetupPrometheus()),
	})
	server := trackermcp.NewServer(service)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Errorf("mcp server: %s", err)
	}
}
