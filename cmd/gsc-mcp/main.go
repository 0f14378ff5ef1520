package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/seoscope/gsc-mcp/internal/auth"
	"github.com/seoscope/gsc-mcp/internal/common"
	"github.com/seoscope/gsc-mcp/internal/gsc"
)

func main() {
	stdio := flag.Bool("stdio", false, "Use stdio transport (for desktop MCP hosts)")
	configFile := flag.String("config", "gsc-mcp.toml", "Path to config file")
	flag.Parse()

	cfg, err := common.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	common.LoadVersionFromFile()

	logger := common.NewLoggerFromConfig(cfg.Logging)

	// Credentials come from the host (env or token file). Starting without
	// them is allowed; every API call will then surface a 401 to the caller.
	tokens, err := auth.NewTokenSource(context.Background(), cfg.OAuth)
	if err != nil {
		logger.Warn().Str("error", err.Error()).Msg("starting without Google credentials")
		tokens = nil
	}

	client := gsc.NewClient(cfg.API, tokens, logger)
	reg := gsc.NewRegistry(cfg.API.BaseURL, client, logger)

	mcpServer := server.NewMCPServer(
		cfg.Server.Name,
		common.GetVersion(),
		server.WithToolCapabilities(true),
	)

	registerTools(mcpServer, reg)

	if *stdio {
		// Stdio transport — reads stdin, writes stdout
		if err := server.ServeStdio(mcpServer); err != nil {
			fmt.Fprintf(os.Stderr, "stdio server error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	port := cfg.Server.Port

	// Streamable HTTP transport — listens on configured port
	httpServer := server.NewStreamableHTTPServer(mcpServer,
		server.WithStateLess(true),
	)

	logger.Info().Str("port", port).Msg("starting MCP Streamable HTTP")
	fmt.Fprintf(os.Stderr, "Starting MCP Streamable HTTP on :%s\n", port)

	if err := httpServer.Start(":" + port); err != nil {
		fmt.Fprintf(os.Stderr, "http server error: %v\n", err)
		os.Exit(1)
	}
}
