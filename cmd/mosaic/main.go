package main

import (
	"log"
	"os"

	"github.com/ironsheep/mosaic/internal/cli"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Configure logging to stderr (stdout carries command output and the MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	logLevel := os.Getenv("MOSAIC_LOG_LEVEL")
	if logLevel == "debug" {
		log.Printf("mosaic v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	cli.Version = Version
	cli.BuildTime = BuildTime
	cli.GitCommit = GitCommit

	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
