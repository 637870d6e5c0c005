package main

import (
	"fmt"
	"log"
	"os"

	"github.com/plastiscan/plastiscan/internal/config"
	"github.com/plastiscan/plastiscan/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("plastiscan-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("plastiscan-mcp - MCP server for plastic waste classification")
			fmt.Println()
			fmt.Println("Usage: plastiscan-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  PLASTISCAN_CONFIG=<path>       Config file (default ~/.config/plastiscan/config.json)")
			fmt.Println("  PLASTISCAN_LOG_LEVEL=debug     Enable debug logging")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	logLevel := os.Getenv("PLASTISCAN_LOG_LEVEL")
	if logLevel == "debug" {
		log.Printf("Plastiscan MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	cfg := loadConfig()

	srv := server.New(cfg)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// loadConfig reads the config file if one exists, falling back to defaults.
// A missing file is normal for a fresh install; a broken one is fatal so a
// typo never silently disables the model.
func loadConfig() *config.Config {
	path := os.Getenv("PLASTISCAN_CONFIG")
	if path == "" {
		path = config.GetConfigPath()
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config.Default()
	}

	cfg, err := config.LoadFromFile(path)
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}
	return cfg
}
