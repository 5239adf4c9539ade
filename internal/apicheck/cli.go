package apicheck

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/tunelab/songbook/pkg/logger"
)

// File permission constants.
const (
	logFilePermission = 0600
)

// SetupLogging configures logging to both console and file.
// If logFile is empty, a timestamped filename is generated.
func SetupLogging(logFile string) error {
	if logFile == "" {
		timestamp := time.Now().Format("20060102_150405")
		logFile = "apicheck_" + timestamp + ".log"
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermission)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	multiWriter := io.MultiWriter(os.Stdout, file)
	if err := logger.Init(logger.WithWriter(multiWriter)); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log.SetOutput(multiWriter)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	logger.Get().Info(context.Background(), "logging to file", logger.String("logFile", logFile))
	return nil
}

// ShowHelp prints usage information for the API check tool.
func ShowHelp() {
	os.Stdout.WriteString(`Songbook API Check Tool
=======================

A concurrent probe for a running songbook instance. It verifies service
health, the full catalog listing, pagination behavior, case-insensitive
title lookup and the error contract.

Usage:
  go run cmd/apicheck/main.go [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:8080")
  -page int
        Page number to probe (default 2)
  -size int
        Page size to probe (default 5)
  -workers int
        Number of concurrent workers (default CPU cores * 2)
  -timeout duration
        HTTP request timeout (default 10s)
  -log string
        Log file for check output (default: apicheck_TIMESTAMP.log)
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  # Check a local instance with default settings
  go run cmd/apicheck/main.go

  # Check with custom pagination parameters
  go run cmd/apicheck/main.go -page 3 -size 20 -url http://localhost:8080

  # Check with verbose output
  go run cmd/apicheck/main.go -verbose -workers 16

  # Check with a custom log file
  go run cmd/apicheck/main.go -log my_check.log
`)
}
