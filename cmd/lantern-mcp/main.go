package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/grue-labs/lantern/config"
	lanternlog "github.com/grue-labs/lantern/log"
	lanternmcp "github.com/grue-labs/lantern/mcp"
)

func main() {
	lanternlog.Initialize(true)
	defer lanternlog.Close()

	cfg := config.LoadConfig()

	gameName := os.Getenv("GAME")
	if gameName == "" {
		gameName = cfg.DefaultGame
	}

	// Stdout carries the MCP protocol, so logs go to a file.
	logPath := filepath.Join(os.TempDir(), "lantern-mcp.log")
	if f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
		defer f.Close()
		lanternmcp.SetLogger(log.New(f, "", log.LstdFlags|log.Lshortfile))
	}

	srv, err := lanternmcp.NewGameMCPServer(gameName, cfg.HistoryLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lantern-mcp: %v\n", err)
		os.Exit(1)
	}
	if err := srv.Serve(); err != nil {
		fmt.Fprintf(os.Stderr, "lantern-mcp: %v\n", err)
		os.Exit(1)
	}
}
