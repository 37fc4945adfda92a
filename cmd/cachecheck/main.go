package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"cineplex/internal/shared/config"
	"cineplex/internal/shared/constants"
	"cineplex/pkg/cache"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

type CacheTestResult struct {
	Endpoint     string        `json:"endpoint"`
	Key          string        `json:"key"`
	CacheStatus  string        `json:"cache_status"`
	ResponseTime time.Duration `json:"response_time"`
	DataSize     int           `json:"data_size"`
	Success      bool          `json:"success"`
	Error        string        `json:"error,omitempty"`
}

type CacheTestSuite struct {
	BaseURL string
	Redis   *redis.Client
	Client  *http.Client
	Results []CacheTestResult
}

type testCase struct {
	name     string
	endpoint string
	key      string // redis key the service writes on a miss
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	baseURL := flag.String("base", fmt.Sprintf("http://localhost:%s%s", cfg.Port, cfg.GetAPIBasePath()), "API base URL")
	out := flag.String("out", "", "write the JSON report to this file")
	flag.Parse()

	fmt.Println("🧪 Starting catalogue cache check...")
	fmt.Println("===================================")

	client, err := cache.Connect(cache.Config{Address: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatalf("❌ Redis connection failed: %v", err)
	}
	defer client.Close()
	fmt.Println("✅ Redis connection: OK")

	suite := &CacheTestSuite{
		BaseURL: *baseURL,
		Redis:   client,
		Client:  &http.Client{Timeout: 30 * time.Second},
	}
	ctx := context.Background()

	testCases := []testCase{
		{"Movie list", "/movies", constants.BuildMoviesListKey("", "", "", "", "")},
		{"Genres", "/genres", constants.CACHE_KEY_GENRES},
		{"Movie detail", "/movies/m1", constants.BuildMovieDetailKey("m1")},
		{"Cinemas", "/cinemas", constants.CACHE_KEY_CINEMAS},
		{"Hall seats", "/halls/h1/seats", constants.BuildHallSeatsKey("h1")},
		{"Concessions", "/concessions", constants.CACHE_KEY_CONCESSIONS},
	}

	for _, tc := range testCases {
		fmt.Printf("\n🔍 Testing: %s\n", tc.name)

		// start cold so the first request is a miss
		suite.Redis.Del(ctx, tc.key)

		result1 := suite.testEndpoint(ctx, tc)
		suite.Results = append(suite.Results, result1)

		result2 := suite.testEndpoint(ctx, tc)
		suite.Results = append(suite.Results, result2)

		if result1.Success && result2.Success && result1.ResponseTime > 0 {
			improvement := float64(result1.ResponseTime-result2.ResponseTime) / float64(result1.ResponseTime) * 100
			fmt.Printf("   📈 Performance improvement: %.1f%% (%v -> %v)\n",
				improvement, result1.ResponseTime, result2.ResponseTime)
		}
	}

	suite.generateReport(*out)
	fmt.Println("\n🎉 Cache check complete!")
}

// testEndpoint reports HIT when the key was already in Redis before the request
func (s *CacheTestSuite) testEndpoint(ctx context.Context, tc testCase) CacheTestResult {
	result := CacheTestResult{Endpoint: tc.endpoint, Key: tc.key, CacheStatus: "MISS"}

	exists, err := s.Redis.Exists(ctx, tc.key).Result()
	if err != nil {
		result.CacheStatus = "ERROR"
		result.Error = err.Error()
		return result
	}
	if exists == 1 {
		result.CacheStatus = "HIT"
	}

	start := time.Now()
	resp, err := s.Client.Get(s.BaseURL + tc.endpoint)
	if err != nil {
		result.CacheStatus = "ERROR"
		result.ResponseTime = time.Since(start)
		result.Error = err.Error()
		return result
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	result.ResponseTime = time.Since(start)
	result.DataSize = len(body)
	result.Success = resp.StatusCode >= 200 && resp.StatusCode < 400
	if !result.Success {
		result.Error = fmt.Sprintf("HTTP %d", resp.StatusCode)
	}

	// a successful miss must leave the key behind
	if result.Success && result.CacheStatus == "MISS" {
		if n, _ := s.Redis.Exists(ctx, tc.key).Result(); n == 0 {
			result.Success = false
			result.Error = "response was not cached"
		}
	}

	statusIcon := "✅"
	if !result.Success {
		statusIcon = "❌"
	}
	cacheIcon := "🔥"
	if result.CacheStatus == "MISS" {
		cacheIcon = "💾"
	}

	fmt.Printf("   %s %s [%s] %v (%d bytes)\n",
		statusIcon, cacheIcon, result.CacheStatus, result.ResponseTime, result.DataSize)

	return result
}

func (s *CacheTestSuite) generateReport(out string) {
	fmt.Println("\n📊 CACHE PERFORMANCE REPORT")
	fmt.Println("==========================")

	totalTests := len(s.Results)
	successfulTests := 0
	cacheHits := 0
	cacheMisses := 0
	cacheHitTime := time.Duration(0)
	cacheMissTime := time.Duration(0)

	for _, result := range s.Results {
		if result.Success {
			successfulTests++
		}

		switch result.CacheStatus {
		case "HIT":
			cacheHits++
			cacheHitTime += result.ResponseTime
		case "MISS":
			cacheMisses++
			cacheMissTime += result.ResponseTime
		}
	}

	fmt.Printf("Total Tests: %d\n", totalTests)
	if totalTests > 0 {
		fmt.Printf("Successful: %d (%.1f%%)\n", successfulTests, float64(successfulTests)/float64(totalTests)*100)
	}
	fmt.Printf("Cache Hits: %d\n", cacheHits)
	fmt.Printf("Cache Misses: %d\n", cacheMisses)

	if cacheHits > 0 && cacheMisses > 0 {
		avgHitTime := cacheHitTime / time.Duration(cacheHits)
		avgMissTime := cacheMissTime / time.Duration(cacheMisses)
		fmt.Printf("Average Cache Hit Time: %v\n", avgHitTime)
		fmt.Printf("Average Cache Miss Time: %v\n", avgMissTime)
		improvement := float64(avgMissTime-avgHitTime) / float64(avgMissTime) * 100
		fmt.Printf("Overall Cache Performance Improvement: %.1f%%\n", improvement)
	}

	if out == "" {
		return
	}

	reportData, err := json.MarshalIndent(map[string]interface{}{
		"summary": map[string]interface{}{
			"total_tests":      totalTests,
			"successful_tests": successfulTests,
			"cache_hits":       cacheHits,
			"cache_misses":     cacheMisses,
		},
		"results": s.Results,
	}, "", "  ")
	if err != nil {
		log.Printf("Warning: failed to encode report: %v", err)
		return
	}
	if err := os.WriteFile(out, reportData, 0o644); err != nil {
		log.Printf("Warning: failed to write report: %v", err)
		return
	}
	fmt.Printf("\n💾 Detailed results saved to %s\n", out)
}
