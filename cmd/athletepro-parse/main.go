package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/akshatchaturvedi28/athletepro/internal/mcp"
	"github.com/akshatchaturvedi28/athletepro/internal/parser"
	"github.com/akshatchaturvedi28/athletepro/internal/refcache"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	serverURL := flag.String("server", "", "AthletePro server URL (e.g. https://athletepro.tail1234.ts.net)")
	filePath := flag.String("file", "", "workout text file to parse (defaults to stdin)")
	cacheDir := flag.String("cache", "", "reference data cache directory (defaults to ~/.athletepro-parse)")
	refresh := flag.Bool("refresh", false, "refresh the reference data cache from the server before parsing")
	mcpMode := flag.Bool("mcp", false, "serve MCP tools over stdio against the server instead of parsing")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("athletepro-parse", Version)
		return
	}

	// Logs go to stderr; stdout carries parse output or the MCP transport.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	*serverURL = strings.TrimRight(*serverURL, "/")

	if *mcpMode {
		if *serverURL == "" {
			fmt.Fprintf(os.Stderr, "Error: -mcp requires -server\n")
			os.Exit(1)
		}
		s := mcp.New(mcp.NewHTTPClient(*serverURL), Version, log)
		if err := mcpserver.ServeStdio(s); err != nil {
			log.Error("mcp server failed", "error", err)
			os.Exit(1)
		}
		return
	}

	// Open reference data cache
	dir := *cacheDir
	if dir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			log.Error("failed to get home directory", "error", err)
			os.Exit(1)
		}
		dir = filepath.Join(homeDir, ".athletepro-parse")
	}

	cache, err := refcache.Open(dir)
	if err != nil {
		log.Error("failed to open reference cache", "error", err)
		os.Exit(1)
	}
	defer cache.Close()

	ctx := context.Background()

	if *refresh {
		if *serverURL == "" {
			fmt.Fprintf(os.Stderr, "Error: -refresh requires -server\n")
			os.Exit(1)
		}
		client := mcp.NewHTTPClient(*serverURL)
		ref, err := client.LoadReferenceData(ctx, log)
		if err != nil {
			log.Error("reference data refresh failed", "error", err)
			os.Exit(1)
		}
		if err := cache.Save(ref); err != nil {
			log.Error("reference cache save failed", "error", err)
			os.Exit(1)
		}
		log.Info("reference cache refreshed",
			"girl", len(ref.GirlBenchmarks),
			"hero", len(ref.HeroBenchmarks),
			"notable", len(ref.NotableBenchmarks),
			"lifts", len(ref.BarbellLifts))
	}

	if empty, err := cache.Empty(); err == nil && empty {
		log.Warn("reference cache is empty; parsing without benchmark matching (run with -refresh -server <URL>)")
	}

	ref, err := cache.Load()
	if err != nil {
		log.Error("reference cache load failed", "error", err)
		os.Exit(1)
	}

	text, err := readInput(*filePath)
	if err != nil {
		log.Error("failed to read input", "error", err)
		os.Exit(1)
	}

	result := parser.Parse(text, ref)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		log.Error("failed to encode result", "error", err)
		os.Exit(1)
	}

	if !result.Found {
		os.Exit(1)
	}
}

func readInput(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}
