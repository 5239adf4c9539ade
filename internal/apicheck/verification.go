package apicheck

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"reflect"

	"github.com/google/uuid"
)

// pageProbe is one pagination request plus its expected outcome beyond
// the shared envelope invariants.
type pageProbe struct {
	name   string
	target string
	verify func(p PageResponse) error
}

// verifyPagination sweeps the paginated endpoint and checks the envelope
// invariants against the full listing: the echoed parameters, the page
// count, clamping of out-of-range pages, and that every returned window
// matches the same slice of the listing.
func verifyPagination(ctx context.Context, client *HTTPClient, config *Config, songs []Song, stats *Stats) error {
	log.Println("🔢 Verifying pagination...")

	total := len(songs)
	size := config.Size
	if size <= 0 {
		size = 1
	}
	lastPage := 1
	if total > 0 {
		lastPage = ceilDiv(total, size)
	}

	probes := []pageProbe{
		{
			name:   "requested page",
			target: fmt.Sprintf("%s/songs?page=%d&size=%d", config.BaseURL, config.Page, size),
			verify: func(p PageResponse) error {
				if p.Size != size {
					return fmt.Errorf("size echo %d, want %d", p.Size, size)
				}
				return nil
			},
		},
		{
			name:   "size larger than catalog",
			target: fmt.Sprintf("%s/songs?page=1&size=%d", config.BaseURL, total+10),
			verify: func(p PageResponse) error {
				if total > 0 && p.TotalPages != 1 {
					return fmt.Errorf("total_pages %d, want 1", p.TotalPages)
				}
				if len(p.Songs) != total {
					return fmt.Errorf("got %d songs, want all %d", len(p.Songs), total)
				}
				return nil
			},
		},
		{
			name:   "out-of-range page clamps",
			target: fmt.Sprintf("%s/songs?page=%d&size=%d", config.BaseURL, lastPage+999, size),
			verify: func(p PageResponse) error {
				if total > 0 && p.Page != lastPage {
					return fmt.Errorf("page echo %d, want last page %d", p.Page, lastPage)
				}
				return nil
			},
		},
		{
			name:   "defaults without parameters",
			target: config.BaseURL + "/songs",
			verify: func(p PageResponse) error {
				if p.Page != 1 {
					return fmt.Errorf("page echo %d, want 1", p.Page)
				}
				return nil
			},
		},
		{
			name:   "malformed parameters fall back",
			target: config.BaseURL + "/songs?page=abc&size=xyz",
			verify: func(p PageResponse) error {
				if p.Page != 1 {
					return fmt.Errorf("page echo %d, want 1", p.Page)
				}
				return nil
			},
		},
		{
			name:   "negative size falls back",
			target: config.BaseURL + "/songs?page=1&size=-3",
			verify: func(p PageResponse) error {
				// The invariants already require a positive echoed size.
				return nil
			},
		},
	}

	for _, probe := range probes {
		page, err := fetchPage(ctx, client, probe.target)
		if err != nil {
			return fmt.Errorf("probe %q: %w", probe.name, err)
		}
		stats.PagesFetched++

		err = checkPageInvariants(page, songs)
		if err == nil {
			err = probe.verify(page)
		}
		if err != nil {
			stats.PageChecksFailed++
			log.Printf("⚠️  Pagination probe %q failed: %v", probe.name, err)
			continue
		}

		if config.Verbose {
			log.Printf("✅ Pagination probe %q passed", probe.name)
		}
	}

	log.Printf("✅ Pagination verification completed: %d probes", len(probes))
	return nil
}

// checkPageInvariants verifies the envelope properties that hold for every
// page regardless of the requested parameters.
func checkPageInvariants(p PageResponse, songs []Song) error {
	total := len(songs)

	if p.Size <= 0 {
		return fmt.Errorf("non-positive size %d", p.Size)
	}
	if p.Total != total {
		return fmt.Errorf("total %d, want %d", p.Total, total)
	}

	wantPages := 0
	if total > 0 {
		wantPages = ceilDiv(total, p.Size)
	}
	if p.TotalPages != wantPages {
		return fmt.Errorf("total_pages %d, want %d", p.TotalPages, wantPages)
	}

	if p.TotalPages > 0 && (p.Page < 1 || p.Page > p.TotalPages) {
		return fmt.Errorf("page %d out of range 1..%d", p.Page, p.TotalPages)
	}
	if len(p.Songs) > p.Size {
		return fmt.Errorf("%d songs exceed size %d", len(p.Songs), p.Size)
	}

	if total == 0 {
		return nil
	}

	// The returned window must be the same slice of the full listing.
	start := (p.Page - 1) * p.Size
	end := start + p.Size
	if end > total {
		end = total
	}
	want := songs[start:end]

	if len(p.Songs) != len(want) {
		return fmt.Errorf("window length %d, want %d", len(p.Songs), len(want))
	}
	for i := range want {
		if !reflect.DeepEqual(p.Songs[i], want[i]) {
			return fmt.Errorf("song %d differs from the full listing", start+i)
		}
	}

	return nil
}

// contractCheck is one request expected to produce a specific error body.
type contractCheck struct {
	name        string
	target      string
	wantStatus  int
	wantCode    string
	wantMessage string
}

// verifyErrorContract checks the title endpoint error responses: status
// codes, error codes and the exact messages clients depend on.
func verifyErrorContract(ctx context.Context, client *HTTPClient, config *Config, stats *Stats) error {
	log.Println("🧪 Verifying error contract...")

	checks := []contractCheck{
		{
			name:        "missing title parameter",
			target:      config.BaseURL + "/songs/title",
			wantStatus:  StatusBadRequest,
			wantCode:    "bad_request",
			wantMessage: "title query parameter is required",
		},
		{
			name:        "blank title parameter",
			target:      config.BaseURL + "/songs/title?title=%20%20",
			wantStatus:  StatusBadRequest,
			wantCode:    "bad_request",
			wantMessage: "title cannot be empty",
		},
		{
			name:        "unknown title",
			target:      config.BaseURL + "/songs/title?title=" + url.QueryEscape("no such song "+uuid.NewString()),
			wantStatus:  StatusNotFound,
			wantCode:    "not_found",
			wantMessage: "Song not found",
		},
	}

	for _, check := range checks {
		stats.ContractChecks++

		if err := runContractCheck(ctx, client, check); err != nil {
			stats.ContractFailures++
			log.Printf("⚠️  Contract check %q failed: %v", check.name, err)
			continue
		}

		if config.Verbose {
			log.Printf("✅ Contract check %q passed", check.name)
		}
	}

	log.Printf("✅ Error contract verification completed: %d checks", len(checks))
	return nil
}

// runContractCheck performs one request and compares the error body
// against the expected code and message.
func runContractCheck(ctx context.Context, client *HTTPClient, check contractCheck) error {
	resp, err := client.Get(ctx, check.target)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	body, err := readResponseBody(resp)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != check.wantStatus {
		return fmt.Errorf("HTTP %d, want %d: %s", resp.StatusCode, check.wantStatus, string(body))
	}

	var errResp ErrorResponse
	if err := unmarshalJSON(body, &errResp); err != nil {
		return fmt.Errorf("failed to parse error body: %w", err)
	}

	if errResp.Code != check.wantCode {
		return fmt.Errorf("code %q, want %q", errResp.Code, check.wantCode)
	}
	if errResp.Message != check.wantMessage {
		return fmt.Errorf("message %q, want %q", errResp.Message, check.wantMessage)
	}

	return nil
}

// ceilDiv divides rounding up. The divisor must be positive.
func ceilDiv(total, size int) int {
	return (total + size - 1) / size
}
