package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "wordnet/internal/adapters/mcp"
	"wordnet/internal/app"
	"wordnet/internal/application/commands"
	"wordnet/internal/config"
	"wordnet/internal/metrics"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		log.Fatalf("wordnet-mcp: %v", err)
	}
}

// run serves MCP on stdio until the client disconnects. Every exit path
// goes through the deferred Close so the cache is released.
func run(args []string, logOut io.Writer) error {
	fs := flag.NewFlagSet("wordnet-mcp", flag.ContinueOnError)
	configFlag := fs.String("config", "", "config file (default $XDG_CONFIG_HOME/wordnet/config.yaml)")
	synsetsFlag := fs.String("synsets", "", "path to synsets.txt")
	hypernymsFlag := fs.String("hypernyms", "", "path to hypernyms.txt")
	metricsFlag := fs.String("metrics-addr", "", "serve Prometheus metrics on this address (e.g. :9464)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	if *synsetsFlag != "" {
		cfg.Synsets = *synsetsFlag
	}
	if *hypernymsFlag != "" {
		cfg.Hypernyms = *hypernymsFlag
	}
	if *metricsFlag != "" {
		cfg.MetricsAddr = *metricsFlag
	}

	// stdout carries the MCP protocol; logs go to stderr
	a := app.New(cfg, logOut)
	defer a.Close()
	ctx := a.Context(context.Background())

	wn, err := a.LoadWordNet(ctx)
	if err != nil {
		return err
	}
	taxonomy := mcpadapter.NewTaxonomy(wn, func(ctx context.Context) (*commands.LoadResult, error) {
		return a.Load(ctx, true)
	})

	if cfg.MetricsAddr != "" {
		go serveMetrics(a, cfg.MetricsAddr)
	}

	return server.ServeStdio(newServer(taxonomy))
}

func newServer(taxonomy *mcpadapter.Taxonomy) *server.MCPServer {
	mcpServer := server.NewMCPServer(
		"wordnet-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterQueryTools(mcpServer, taxonomy)
	mcpadapter.RegisterAdminTools(mcpServer, taxonomy)
	return mcpServer
}

func serveMetrics(a *app.App, addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	a.Logger.Info("serving metrics", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		a.Logger.Error("metrics server stopped", "error", err)
	}
}
