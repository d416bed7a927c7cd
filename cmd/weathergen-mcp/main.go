package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/appengine-ltd/weathergen/internal/config"
	"github.com/appengine-ltd/weathergen/internal/engine"
	"github.com/appengine-ltd/weathergen/internal/mcptools"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// version is injected at build time.
var version = "dev"

// main serves the weather tools over stdio.
func main() {
	var (
		showVersion bool
		envFile     string
	)
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.StringVar(&envFile, "env-file", ".env", "optional dotenv file")
	flag.Parse()

	if showVersion {
		fmt.Printf("weathergen-mcp %s\n", version)
		return
	}

	log.SetPrefix("[MCP] ")
	cfg, err := config.Load(envFile)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	env, err := engine.Load(cfg)
	if err != nil {
		log.Fatalf("load environment: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := mcptools.NewServer(env, version)
	log.Printf("serving zone %s on stdio", cfg.Zone)
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil && ctx.Err() == nil {
		log.Fatalf("failed to serve MCP: %v", err)
	}
}
