package apicheck

import "time"

// Config holds configuration for the API check run
type Config struct {
	BaseURL string        // Base URL of the service
	Page    int           // Page number to probe
	Size    int           // Page size to probe
	Workers int           // Number of concurrent workers
	Timeout time.Duration // HTTP request timeout
	LogFile string        // Log file for check output
	Verbose bool          // Enable verbose logging
}

// Song is one catalog record as returned by the API
type Song map[string]interface{}

// PageResponse mirrors the paginated songs envelope
type PageResponse struct {
	Page       int    `json:"page"`
	Size       int    `json:"size"`
	Total      int    `json:"total"`
	TotalPages int    `json:"total_pages"`
	Songs      []Song `json:"songs"`
}

// ErrorResponse mirrors the error envelope
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// StatusResponse mirrors the root status banner
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Version string `json:"version"`
}

// Stats holds check statistics
type Stats struct {
	SongsListed      int
	PagesFetched     int
	PageChecksFailed int
	LookupsAttempted int
	LookupsSucceeded int
	LookupsFailed    int
	ContractChecks   int
	ContractFailures int
	StartTime        time.Time
	EndTime          time.Time
	Duration         time.Duration
}

// Failures is the total number of failed checks across all steps.
func (s *Stats) Failures() int {
	return s.PageChecksFailed + s.LookupsFailed + s.ContractFailures
}
