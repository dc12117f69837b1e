package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/klauspost/compress/gzip"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data and must match the expected results below.
const (
	totalLines      = 40000 // request lines written to the generated log
	unparsableEvery = 100   // every Nth line is garbage
	logDate         = "20170630"
	reportDate      = "2017.06.30"
)

var urls = []string{"/api/v2/banner/1", "/api/v2/group/2/statistic", "/api/1/photogenic_banners/list", "/export/appinstall_raw"}

// ### End - fixed configs

type analysisResult struct {
	LogName        string `json:"logName"`
	ReportKey      string `json:"reportKey"`
	TotalLines     int64  `json:"totalLines"`
	ProcessedLines int64  `json:"processedLines"`
	DistinctURLs   int    `json:"distinctUrls"`
}

type reportRow struct {
	URL     string  `json:"url"`
	Count   int64   `json:"count"`
	TimeSum float64 `json:"time_sum"`
}

// main runs the e2e scenario: 001_concurrent_latest_log_analysis
//
// It writes a gzipped nginx log into the analyzer's log directory, then fires concurrent
// POST /analyses requests for the latest log at a server started with --serve and
// report_format json, and finally fetches GET /reports/{date}.
//
// Expected results:
//   - exactly one request returns 201, the others 409 (ANL_1002)
//   - totalLines=40000, processedLines=39600, distinctUrls=4
//   - the report lists the 4 URLs ordered by time_sum descending
func main() {
	// these configs can be changed to run the scenario
	baseURL := "http://localhost:8080" // Base URL of the analyzer API server
	logDir := ".tmp/log"               // analyzer.log_dir relative to project root
	reportDir := ".tmp/reports"        // analyzer.report_dir relative to project root
	logPrefix := "nginx-access-ui.log" // analyzer.log_prefix
	parallel := 8                      // concurrent analysis requests

	projectRoot, err := findProjectRoot()
	if err != nil {
		fail("%v", err)
	}
	logPath := filepath.Join(projectRoot, logDir, fmt.Sprintf("%s-%s.gz", logPrefix, logDate))

	fmt.Println("Starting e2e scenario: 001_concurrent_latest_log_analysis")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("LOG_PATH: %s\n", logPath)
	fmt.Printf("PARALLEL: %d\n", parallel)
	fmt.Println()

	if err := os.RemoveAll(filepath.Join(projectRoot, reportDir)); err != nil {
		fail("failed to clean report dir: %v", err)
	}
	if err := writeLog(logPath); err != nil {
		fail("failed to write log: %v", err)
	}

	var wg sync.WaitGroup
	var created, conflicted, other int64
	var mu sync.Mutex
	var result analysisResult
	for i := 0; i < parallel; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			status, body, err := post(baseURL+"/analyses", []byte(`{}`))
			if err != nil {
				fmt.Fprintf(os.Stderr, "ERROR: request failed: %v\n", err)
				atomic.AddInt64(&other, 1)
				return
			}
			switch status {
			case http.StatusCreated:
				atomic.AddInt64(&created, 1)
				mu.Lock()
				_ = json.Unmarshal(body, &result)
				mu.Unlock()
			case http.StatusConflict:
				atomic.AddInt64(&conflicted, 1)
			default:
				atomic.AddInt64(&other, 1)
				fmt.Fprintf(os.Stderr, "ERROR: unexpected status %d: %s\n", status, body)
			}
		}()
	}
	wg.Wait()

	fmt.Println("=== Statistics ===")
	fmt.Printf("Created: %d\n", created)
	fmt.Printf("Conflicted: %d\n", conflicted)
	fmt.Printf("Other: %d\n", other)
	fmt.Printf("Result: %+v\n", result)
	if created != 1 || conflicted != int64(parallel-1) {
		fail("want exactly one created analysis")
	}

	resp, err := http.Get(baseURL + "/reports/" + reportDate)
	if err != nil {
		fail("failed to get report: %v", err)
	}
	defer resp.Body.Close()
	var rows []reportRow
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		fail("failed to decode report (is report_format json?): %v", err)
	}
	for _, row := range rows {
		fmt.Printf("%-35s count=%d time_sum=%.3f\n", row.URL, row.Count, row.TimeSum)
	}
	fmt.Println("Scenario completed successfully")
}

func writeLog(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	gz := gzip.NewWriter(f)
	for i := 0; i < totalLines; i++ {
		if i%unparsableEvery == 0 {
			fmt.Fprintln(gz, "garbage line")
			continue
		}
		url := urls[i%len(urls)]
		responseTime := float64(i%len(urls)+1) * 0.125
		fmt.Fprintf(gz, `1.196.116.32 -  - [29/Jun/2017:03:50:22 +0300] "GET %s HTTP/1.1" 200 927 "-" "Lynx/2.8.8dev.9" "-" "1498697422-2190034393-4708-9752759" "dc7161be3" %.3f`+"\n", url, responseTime)
	}
	return gz.Close()
}

func post(url string, body []byte) (int, []byte, error) {
	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	return resp.StatusCode, respBody, err
}

// findProjectRoot walks up from the working directory to the go.mod.
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find go.mod above working directory")
		}
		dir = parent
	}
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "ERROR: "+format+"\n", args...)
	os.Exit(1)
}
