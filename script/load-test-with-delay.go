package main

import (
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
)

// TipPayload is the body POSTed to /payments/tips
type TipPayload struct {
	CreatorID   uint64 `json:"creator_id"`
	Amount      string `json:"amount"`
	PhoneNumber string `json:"phone_number"`
	TipperName  string `json:"tipper_name,omitempty"`
	Message     string `json:"message,omitempty"`
}

// TestResult contains metrics for a single request
type TestResult struct {
	Success      bool
	ResponseTime time.Duration
	StatusCode   int
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests      int
	SuccessfulRequests int
	FailedRequests     int
	TotalTime          time.Duration
	MinResponseTime    time.Duration
	MaxResponseTime    time.Duration
	TotalResponseTime  time.Duration
	ResponseTimes      []time.Duration
	ErrorCounts        map[string]int
	CreatorStats       map[uint64]int
	ScenarioStats      map[string]int
	Lock               sync.Mutex
}

// TipScenario is one amount profile picked at random per request
type TipScenario struct {
	Name   string
	Amount string
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of requests to make")
	creatorIDsStr := flag.String("u", "1,2,3", "Comma-separated list of creator IDs to tip")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	phone := flag.String("phone", "254708374149", "Tipper phone number (254XXXXXXXXX)")
	delayMs := flag.Int("delay", 100, "Delay between requests in milliseconds")
	flag.Parse()

	var creatorIDs []uint64
	for _, idStr := range strings.Split(*creatorIDsStr, ",") {
		var id uint64
		if _, err := fmt.Sscanf(strings.TrimSpace(idStr), "%d", &id); err == nil && id > 0 {
			creatorIDs = append(creatorIDs, id)
		}
	}
	if len(creatorIDs) == 0 {
		creatorIDs = []uint64{1}
	}

	scenarios := []TipScenario{
		{"Minimum", "1.00"},
		{"Small", "10.00"},
		{"Medium", "250.50"},
		{"Large", "5000.00"},
		{"Maximum", "70000.00"},
	}

	fmt.Printf("Load testing tip initiation across %d creators: %v\n", len(creatorIDs), creatorIDs)
	fmt.Printf("Tip scenarios: %d amount profiles\n", len(scenarios))
	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Total requests: %d\n", *totalRequests)
	fmt.Printf("Delay between requests: %d ms\n", *delayMs)

	stats := &TestStats{
		TotalRequests:   *totalRequests,
		MinResponseTime: time.Hour,
		ErrorCounts:     make(map[string]int),
		ResponseTimes:   make([]time.Duration, 0, *totalRequests),
		CreatorStats:    make(map[uint64]int),
		ScenarioStats:   make(map[string]int),
	}

	client := resty.New().
		SetBaseURL(*baseURL).
		SetTimeout(10*time.Second).
		SetHeader("Content-Type", "application/json")

	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	var wg sync.WaitGroup
	fmt.Println("Starting worker goroutines...")
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			worker(workerID, client, *phone, *delayMs, creatorIDs, scenarios, jobs, results, stats)
		}(i)
	}

	go func() {
		for i := 0; i < *totalRequests; i++ {
			jobs <- i
		}
		close(jobs)
	}()

	collected := make(chan struct{})
	go func() {
		defer close(collected)
		for result := range results {
			stats.Lock.Lock()
			if result.Success {
				stats.SuccessfulRequests++
			} else {
				stats.FailedRequests++
				errMsg := "unknown"
				if result.Error != nil {
					errMsg = result.Error.Error()
				}
				stats.ErrorCounts[errMsg]++
			}

			stats.ResponseTimes = append(stats.ResponseTimes, result.ResponseTime)
			stats.TotalResponseTime += result.ResponseTime
			stats.MinResponseTime = min(stats.MinResponseTime, result.ResponseTime)
			stats.MaxResponseTime = max(stats.MaxResponseTime, result.ResponseTime)
			stats.Lock.Unlock()
		}
	}()

	startTime := time.Now()
	fmt.Println("Test running...")

	ticker := time.NewTicker(1 * time.Second)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-ticker.C:
				stats.Lock.Lock()
				completed := stats.SuccessfulRequests + stats.FailedRequests
				if completed > 0 {
					fmt.Printf("Progress: %d/%d requests completed (%.1f%%)\n",
						completed, stats.TotalRequests, float64(completed)/float64(stats.TotalRequests)*100)
				}
				stats.Lock.Unlock()
			case <-done:
				return
			}
		}
	}()

	wg.Wait()
	close(results)
	<-collected
	ticker.Stop()
	close(done)

	stats.TotalTime = time.Since(startTime)
	printResults(stats)
}

func worker(id int, client *resty.Client, phone string, delayMs int, creatorIDs []uint64,
	scenarios []TipScenario, jobs <-chan int, results chan<- TestResult, stats *TestStats) {

	for jobID := range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		creatorID := creatorIDs[rand.Intn(len(creatorIDs))]
		scenario := scenarios[rand.Intn(len(scenarios))]

		stats.Lock.Lock()
		stats.CreatorStats[creatorID]++
		stats.ScenarioStats[scenario.Name]++
		stats.Lock.Unlock()

		payload := TipPayload{
			CreatorID:   creatorID,
			Amount:      scenario.Amount,
			PhoneNumber: phone,
			TipperName:  fmt.Sprintf("load-%d-%d", id, jobID),
		}

		startTime := time.Now()
		resp, err := client.R().SetBody(payload).Post("/payments/tips")
		result := TestResult{ResponseTime: time.Since(startTime)}

		switch {
		case err != nil:
			result.Error = err
		case resp.StatusCode() != http.StatusCreated:
			result.StatusCode = resp.StatusCode()
			result.Error = fmt.Errorf("HTTP status code %d", resp.StatusCode())
		default:
			result.StatusCode = resp.StatusCode()
			result.Success = true
		}

		results <- result
	}
}

func percentile(sorted []time.Duration, p int) time.Duration {
	return sorted[len(sorted)*p/100]
}

func printResults(stats *TestStats) {
	seconds := stats.TotalTime.Seconds()
	rawTps := float64(stats.SuccessfulRequests) / seconds
	theoreticalTps := float64(stats.TotalRequests) / seconds

	var avgResponseTime, p50, p90, p95, p99 time.Duration
	if len(stats.ResponseTimes) > 0 {
		avgResponseTime = stats.TotalResponseTime / time.Duration(len(stats.ResponseTimes))

		sorted := slices.Clone(stats.ResponseTimes)
		slices.Sort(sorted)
		p50 = percentile(sorted, 50)
		p90 = percentile(sorted, 90)
		p95 = percentile(sorted, 95)
		p99 = percentile(sorted, 99)
	}

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Successful Requests: %d (%.1f%%)\n", stats.SuccessfulRequests,
		float64(stats.SuccessfulRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Failed Requests:     %d (%.1f%%)\n", stats.FailedRequests,
		float64(stats.FailedRequests)/float64(stats.TotalRequests)*100)
	fmt.Printf("Total Test Time:     %.2f seconds\n", seconds)

	fmt.Println("\n----------------- PERFORMANCE -----------------")
	fmt.Printf("Raw TPS:             %.2f (accepted tips / total time)\n", rawTps)
	fmt.Printf("Theoretical TPS:     %.2f (if every tip was accepted)\n", theoreticalTps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avgResponseTime)
	fmt.Printf("Minimum Response:    %v\n", stats.MinResponseTime)
	fmt.Printf("Maximum Response:    %v\n", stats.MaxResponseTime)
	fmt.Printf("P50 Response:        %v\n", p50)
	fmt.Printf("P90 Response:        %v\n", p90)
	fmt.Printf("P95 Response:        %v\n", p95)
	fmt.Printf("P99 Response:        %v\n", p99)

	fmt.Println("\n----------------- CREATOR DISTRIBUTION -----------------")
	for creatorID, count := range stats.CreatorStats {
		fmt.Printf("Creator %d:    %d requests (%.1f%%)\n", creatorID, count,
			float64(count)/float64(stats.TotalRequests)*100)
	}

	fmt.Println("\n----------------- SCENARIO DISTRIBUTION -----------------")
	for scenario, count := range stats.ScenarioStats {
		fmt.Printf("%-15s: %d requests (%.1f%%)\n", scenario, count,
			float64(count)/float64(stats.TotalRequests)*100)
	}

	if stats.FailedRequests > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d (%.1f%%)\n", errMsg, count,
				float64(count)/float64(stats.TotalRequests)*100)
		}
	}
	fmt.Println("================================================")
}
