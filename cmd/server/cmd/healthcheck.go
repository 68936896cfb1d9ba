package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	// healthcheckCmd represents the healthcheck command
	healthcheckCmd = &cobra.Command{
		Use:   "healthcheck",
		Short: "Check if the server is healthy",
		Long: `Performs a health check by calling the /healthz endpoint.

This command is used by Docker HEALTHCHECK to monitor container health.
It exits with code 0 if the server is healthy, non-zero otherwise.

Exit codes:
  0 - Server is healthy
  1 - Server is unhealthy or unreachable
  2 - Invalid response from server`,
		RunE: runHealthcheck,
	}

	// Flags
	healthcheckTimeout int
	healthcheckURL     string
)

func init() {
	healthcheckCmd.Flags().IntVar(&healthcheckTimeout, "timeout", 5, "timeout in seconds")
	healthcheckCmd.Flags().StringVar(&healthcheckURL, "url", "", "health check URL (default: http://localhost:{SERVER_PORT}/healthz)")
}

// healthResponse matches the response from internal/api/handlers/health.go
type healthResponse struct {
	Status string `json:"status"`
}

// healthResult is the outcome of a single probe.
type healthResult struct {
	IsHealthy bool
	Status    string
	Error     string
	BadBody   bool
	LatencyMs int64
}

func performHealthCheck(url string) healthResult {
	start := time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(healthcheckTimeout)*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return healthResult{Error: err.Error()}
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return healthResult{Error: err.Error(), LatencyMs: time.Since(start).Milliseconds()}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	result := healthResult{LatencyMs: time.Since(start).Milliseconds()}

	if resp.StatusCode != http.StatusOK {
		result.Error = fmt.Sprintf("status %d", resp.StatusCode)
		return result
	}

	var health healthResponse
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		result.Error = err.Error()
		result.BadBody = true
		return result
	}

	result.Status = health.Status
	result.IsHealthy = health.Status == "ok"
	return result
}

func runHealthcheck(cmd *cobra.Command, args []string) error {
	url := healthcheckURL
	if url == "" {
		// Default to localhost with SERVER_PORT from environment
		port := os.Getenv("SERVER_PORT")
		if port == "" {
			port = "3000"
		}
		url = fmt.Sprintf("http://localhost:%s/healthz", port)
	}

	result := performHealthCheck(url)
	if result.IsHealthy {
		return nil
	}

	if result.BadBody {
		fmt.Fprintf(os.Stderr, "Invalid health check response: %s\n", result.Error)
		os.Exit(2)
	}
	if result.Error != "" {
		fmt.Fprintf(os.Stderr, "Health check failed: %s\n", result.Error)
	} else {
		fmt.Fprintf(os.Stderr, "Server status: %s\n", result.Status)
	}
	os.Exit(1)
	return nil
}
