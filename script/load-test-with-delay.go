package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/statement-ledger/internal/infrastructure/adapter/api/dto"
)

// TestResult contains metrics for a single request
type TestResult struct {
	UserID       string
	Scenario     StatementScenario
	StatusCode   int
	ResponseTime time.Duration
	Error        error
}

// TestStats contains aggregated test statistics
type TestStats struct {
	TotalRequests     int
	Accepted          int
	Rejected          int // Insufficient funds or lock timeouts, expected under load
	Failed            int
	TotalTime         time.Duration
	ResponseTimes     []time.Duration
	TotalResponseTime time.Duration
	ErrorCounts       map[string]int
	ScenarioStats     map[string]int
	Expected          map[string]decimal.Decimal // Balance implied by accepted statements per user
	Lock              sync.Mutex
}

// StatementScenario defines one kind of request the workers send
type StatementScenario struct {
	Name      string
	Operation string // deposit or withdraw
	Amount    string
}

func main() {
	concurrency := flag.Int("c", 5, "Number of concurrent goroutines")
	totalRequests := flag.Int("n", 100, "Total number of requests to make")
	userCount := flag.Int("u", 3, "Number of users to register and spread load across")
	opening := flag.String("opening", "100.00", "Opening deposit for every registered user")
	baseURL := flag.String("url", "http://localhost:8080", "Base URL for the API")
	delayMs := flag.Int("delay", 100, "Delay between requests in milliseconds")
	flag.Parse()

	client := &http.Client{Timeout: 10 * time.Second}

	scenarios := []StatementScenario{
		{"Deposit Small", "deposit", "10.00"},
		{"Deposit Large", "deposit", "25.50"},
		{"Withdraw Small", "withdraw", "15.00"},
		{"Withdraw Medium", "withdraw", "40.00"},
		{"Withdraw Large", "withdraw", "60.00"},
	}

	stats := &TestStats{
		TotalRequests: *totalRequests,
		ErrorCounts:   make(map[string]int),
		ResponseTimes: make([]time.Duration, 0, *totalRequests),
		ScenarioStats: make(map[string]int),
		Expected:      make(map[string]decimal.Decimal),
	}

	userIDs, err := registerUsers(client, *baseURL, *userCount, *opening, stats)
	if err != nil {
		fmt.Fprintf(os.Stderr, "setup failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Load testing API across %d users\n", len(userIDs))
	fmt.Printf("Statement scenarios: %d\n", len(scenarios))
	fmt.Printf("Concurrency: %d goroutines\n", *concurrency)
	fmt.Printf("Total requests: %d\n", *totalRequests)
	fmt.Printf("Delay between requests: %d ms\n", *delayMs)

	results := make(chan TestResult, *totalRequests)
	jobs := make(chan int, *totalRequests)

	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker(client, *baseURL, *delayMs, userIDs, scenarios, jobs, results)
		}()
	}

	for i := 0; i < *totalRequests; i++ {
		jobs <- i
	}
	close(jobs)

	collected := make(chan struct{})
	go func() {
		defer close(collected)
		for result := range results {
			stats.record(result)
		}
	}()

	startTime := time.Now()
	fmt.Println("Test running...")

	wg.Wait()
	close(results)
	<-collected
	stats.TotalTime = time.Since(startTime)

	printResults(stats)

	if !verifyBalances(client, *baseURL, stats) {
		os.Exit(1)
	}
}

// registerUsers creates fresh users with an opening deposit
func registerUsers(client *http.Client, baseURL string, count int, opening string, stats *TestStats) ([]string, error) {
	openingAmount, err := decimal.NewFromString(opening)
	if err != nil {
		return nil, fmt.Errorf("invalid opening amount: %w", err)
	}

	userIDs := make([]string, 0, count)
	for i := 0; i < count; i++ {
		var user dto.UserResponse
		status, err := postJSON(client, baseURL+"/users", dto.CreateUserRequest{
			Name:     fmt.Sprintf("Load User %d", i+1),
			Email:    fmt.Sprintf("load-%s@example.com", uuid.NewString()),
			Password: "load-test-secret",
		}, &user)
		if err != nil {
			return nil, err
		}
		if status != http.StatusCreated {
			return nil, fmt.Errorf("register user: HTTP status code %d", status)
		}

		status, err = postJSON(client, fmt.Sprintf("%s/users/%s/statements/deposit", baseURL, user.ID),
			dto.StatementRequest{Amount: opening, Description: "opening balance"}, nil)
		if err != nil {
			return nil, err
		}
		if status != http.StatusCreated {
			return nil, fmt.Errorf("opening deposit: HTTP status code %d", status)
		}

		stats.Expected[user.ID] = openingAmount
		userIDs = append(userIDs, user.ID)
	}
	return userIDs, nil
}

func worker(client *http.Client, baseURL string, delayMs int, userIDs []string,
	scenarios []StatementScenario, jobs <-chan int, results chan<- TestResult) {

	for range jobs {
		if delayMs > 0 {
			time.Sleep(time.Duration(delayMs) * time.Millisecond)
		}

		userID := userIDs[rand.Intn(len(userIDs))]
		scenario := scenarios[rand.Intn(len(scenarios))]
		apiURL := fmt.Sprintf("%s/users/%s/statements/%s", baseURL, userID, scenario.Operation)

		startTime := time.Now()
		status, err := postJSON(client, apiURL, dto.StatementRequest{
			Amount:      scenario.Amount,
			Description: scenario.Name,
		}, nil)

		results <- TestResult{
			UserID:       userID,
			Scenario:     scenario,
			StatusCode:   status,
			ResponseTime: time.Since(startTime),
			Error:        err,
		}
	}
}

func (s *TestStats) record(result TestResult) {
	s.Lock.Lock()
	defer s.Lock.Unlock()

	s.ScenarioStats[result.Scenario.Name]++
	s.ResponseTimes = append(s.ResponseTimes, result.ResponseTime)
	s.TotalResponseTime += result.ResponseTime

	switch {
	case result.Error != nil:
		s.Failed++
		s.ErrorCounts[result.Error.Error()]++
	case result.StatusCode == http.StatusCreated:
		s.Accepted++
		amount := decimal.RequireFromString(result.Scenario.Amount)
		if result.Scenario.Operation == "withdraw" {
			amount = amount.Neg()
		}
		s.Expected[result.UserID] = s.Expected[result.UserID].Add(amount)
	case result.StatusCode == http.StatusConflict:
		s.Rejected++
	default:
		s.Failed++
		s.ErrorCounts[fmt.Sprintf("HTTP status code %d", result.StatusCode)]++
	}
}

// verifyBalances checks every user's balance against the accepted statements
func verifyBalances(client *http.Client, baseURL string, stats *TestStats) bool {
	fmt.Println("\n----------------- BALANCE CHECK -----------------")
	ok := true
	for userID, expected := range stats.Expected {
		resp, err := client.Get(fmt.Sprintf("%s/users/%s/balance", baseURL, userID))
		if err != nil {
			fmt.Printf("%s: request failed: %v\n", userID, err)
			ok = false
			continue
		}

		var balance dto.BalanceResponse
		err = json.NewDecoder(resp.Body).Decode(&balance)
		resp.Body.Close()
		if err != nil {
			fmt.Printf("%s: bad response: %v\n", userID, err)
			ok = false
			continue
		}

		actual := decimal.RequireFromString(balance.Balance)
		match := actual.Equal(expected) && !actual.IsNegative()
		if !match {
			ok = false
		}
		fmt.Printf("%s: balance %s, expected %s, statements %d, match %v\n",
			userID, balance.Balance, expected.StringFixed(2), len(balance.Statements), match)
	}
	return ok
}

func postJSON(client *http.Client, url string, body any, out any) (int, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return 0, err
	}

	resp, err := client.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if out != nil && resp.StatusCode < 300 {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, err
		}
	}
	return resp.StatusCode, nil
}

func percentile(sorted []time.Duration, p int) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[len(sorted)*p/100]
}

func printResults(stats *TestStats) {
	tps := float64(stats.TotalRequests) / stats.TotalTime.Seconds()

	var avgResponseTime time.Duration
	sorted := make([]time.Duration, len(stats.ResponseTimes))
	copy(sorted, stats.ResponseTimes)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	if len(sorted) > 0 {
		avgResponseTime = stats.TotalResponseTime / time.Duration(len(sorted))
	}

	pct := func(n int) float64 { return float64(n) / float64(stats.TotalRequests) * 100 }

	fmt.Println("\n================= TEST RESULTS =================")
	fmt.Printf("Total Requests:      %d\n", stats.TotalRequests)
	fmt.Printf("Accepted:            %d (%.1f%%)\n", stats.Accepted, pct(stats.Accepted))
	fmt.Printf("Rejected (409):      %d (%.1f%%)\n", stats.Rejected, pct(stats.Rejected))
	fmt.Printf("Failed:              %d (%.1f%%)\n", stats.Failed, pct(stats.Failed))
	fmt.Printf("Total Test Time:     %.2f seconds\n", stats.TotalTime.Seconds())
	fmt.Printf("Throughput:          %.2f requests/second\n", tps)

	fmt.Println("\n----------------- RESPONSE TIMES -----------------")
	fmt.Printf("Average Response:    %v\n", avgResponseTime)
	if len(sorted) > 0 {
		fmt.Printf("Minimum Response:    %v\n", sorted[0])
		fmt.Printf("Maximum Response:    %v\n", sorted[len(sorted)-1])
	}
	fmt.Printf("P50 Response:        %v\n", percentile(sorted, 50))
	fmt.Printf("P90 Response:        %v\n", percentile(sorted, 90))
	fmt.Printf("P99 Response:        %v\n", percentile(sorted, 99))

	fmt.Println("\n----------------- SCENARIO DISTRIBUTION -----------------")
	for scenario, count := range stats.ScenarioStats {
		fmt.Printf("%-16s: %d requests (%.1f%%)\n", scenario, count, pct(count))
	}

	if stats.Failed > 0 {
		fmt.Println("\n----------------- ERROR DISTRIBUTION -----------------")
		for errMsg, count := range stats.ErrorCounts {
			fmt.Printf("%-40s: %d (%.1f%%)\n", errMsg, count, pct(count))
		}
	}
}
