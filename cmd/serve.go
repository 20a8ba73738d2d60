package cmd

import (
	"fmt"
	"time"

	"github.com/mj1618/outlook-a11y/internal/server"
	"github.com/mj1618/outlook-a11y/internal/version"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing the classify and replay tools",
	Long: `Start a Model Context Protocol (MCP) server that exposes classify and
replay as tools, so agents can inspect overlay decisions and speech output
without shell overhead.

Supported transports:
  stdio             Standard I/O (default, for MCP clients)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  outlook-a11y serve
  outlook-a11y serve --transport streamable-http --port 8080
  outlook-a11y serve --cache-ttl 0`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 8080, "HTTP port for streamable-http transport")
	serveCmd.Flags().Int("cache-ttl", 500, "Scenario file cache TTL in milliseconds (0 to disable)")
}

func runServe(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")
	cacheTTLMs, _ := cmd.Flags().GetInt("cache-ttl")

	srv := server.New(server.Options{
		Config:   appConfig,
		Log:      logger,
		CacheTTL: time.Duration(cacheTTLMs) * time.Millisecond,
		Version:  version.Version,
	})
	if err := srv.Serve(transport, port); err != nil {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}
