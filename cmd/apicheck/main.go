package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/tunelab/songbook/internal/apicheck"
)

// Default configuration constants.
const (
	defaultPage        = 2
	defaultSize        = 5
	defaultWorkers     = 2 // multiplier for runtime.NumCPU()
	defaultTimeout     = 10 * time.Second
	defaultCheckBudget = 2 * time.Minute
)

func main() {
	var (
		baseURL = flag.String("url", "http://localhost:8080", "Base URL of the service")
		page    = flag.Int("page", defaultPage, "Page number to probe")
		size    = flag.Int("size", defaultSize, "Page size to probe")
		workers = flag.Int("workers", runtime.NumCPU()*defaultWorkers, "Number of concurrent workers")
		timeout = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		logFile = flag.String("log", "", "Log file for check output (default: apicheck_TIMESTAMP.log)")
		verbose = flag.Bool("verbose", false, "Enable verbose logging")
		help    = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		apicheck.ShowHelp()
		return
	}

	// Setup logging
	if err := apicheck.SetupLogging(*logFile); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	// Create context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), defaultCheckBudget)
	defer cancel()

	// Create check configuration
	config := &apicheck.Config{
		BaseURL: *baseURL,
		Page:    *page,
		Size:    *size,
		Workers: *workers,
		Timeout: *timeout,
		LogFile: *logFile,
		Verbose: *verbose,
	}

	// Run the check
	if err := apicheck.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Check failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
