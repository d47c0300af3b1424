package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/kingrain94/notes-api/internal/api"
	"github.com/kingrain94/notes-api/internal/api/dto"
	"github.com/kingrain94/notes-api/internal/domain"
	"github.com/kingrain94/notes-api/internal/mocks"
	"github.com/kingrain94/notes-api/internal/utils"
	"github.com/kingrain94/notes-api/pkg/logger"
)

// identityMiddleware stands in for the auth pipeline: it injects a resolved
// identity the way JWTAuth does, without the token round-trip.
func identityMiddleware() gin.HandlerFunc {
	tenant := &domain.Tenant{ID: "test-tenant-id", Slug: "acme", Name: "Acme", Plan: domain.PlanPro}
	user := &domain.User{ID: "test-user", TenantID: tenant.ID, Email: "user@acme.test", Role: domain.RoleMember, Tenant: tenant}
	identity := &domain.Identity{User: user, Tenant: tenant}

	return func(c *gin.Context) {
		c.Set(string(utils.IdentityKey), identity)
		c.Next()
	}
}

func BenchmarkCreateNote(b *testing.B) {
	// Setup
	gin.SetMode(gin.TestMode)
	mockService := new(mocks.NoteService)
	handler := api.NewNoteHandler(mockService)
	logger.NewLogger("test")

	router := gin.New()
	router.Use(identityMiddleware())
	router.POST("/notes", handler.CreateNote)

	// Mock service response
	mockService.On("Create", mock.Anything, mock.AnythingOfType("dto.CreateNoteRequest")).Return(&dto.NoteResponse{
		ID:       "note1",
		TenantID: "test-tenant-id",
		UserID:   "test-user",
		Title:    "Benchmark note",
		Content:  "Benchmark content",
	}, nil)

	// Test payload
	payload := dto.CreateNoteRequest{
		Title:   "Benchmark note",
		Content: "Benchmark content",
	}

	payloadBytes, _ := json.Marshal(payload)

	b.ResetTimer()
	b.ReportAllocs()

	// Run benchmark
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			req, _ := http.NewRequest("POST", "/notes", bytes.NewBuffer(payloadBytes))
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusCreated {
				b.Errorf("Expected status 201, got %d", w.Code)
			}
		}
	})
}

func BenchmarkListNotes(b *testing.B) {
	// Setup
	gin.SetMode(gin.TestMode)
	mockService := new(mocks.NoteService)
	handler := api.NewNoteHandler(mockService)

	router := gin.New()
	router.Use(identityMiddleware())
	router.GET("/notes", handler.ListNotes)

	// Mock response
	mockNotes := make([]dto.NoteResponse, 100)
	for i := 0; i < 100; i++ {
		mockNotes[i] = dto.NoteResponse{
			ID:        fmt.Sprintf("note-%d", i),
			TenantID:  "test-tenant-id",
			UserID:    "test-user",
			Title:     fmt.Sprintf("Note %d", i),
			Content:   fmt.Sprintf("Content %d", i),
			CreatedAt: time.Now(),
		}
	}

	mockService.On("List", mock.Anything).Return(mockNotes, nil)

	b.ResetTimer()
	b.ReportAllocs()

	// Run benchmark
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			req, _ := http.NewRequest("GET", "/notes", nil)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				b.Errorf("Expected status 200, got %d", w.Code)
			}
		}
	})
}

// TestHighConcurrencyCreateNotes tests the system under high concurrent load
func TestHighConcurrencyCreateNotes(t *testing.T) {
	// Setup
	gin.SetMode(gin.TestMode)
	mockService := new(mocks.NoteService)
	handler := api.NewNoteHandler(mockService)

	router := gin.New()
	router.Use(identityMiddleware())
	router.POST("/notes", handler.CreateNote)

	// Mock service response with some latency simulation
	mockService.On("Create", mock.Anything, mock.AnythingOfType("dto.CreateNoteRequest")).Return(&dto.NoteResponse{
		ID:       "note1",
		TenantID: "test-tenant-id",
		UserID:   "test-user",
		Title:    "High concurrency test",
	}, nil).Run(func(args mock.Arguments) {
		time.Sleep(1 * time.Millisecond) // Simulate some processing time
	})

	// Test parameters
	numGoroutines := 100
	requestsPerGoroutine := 10
	totalRequests := numGoroutines * requestsPerGoroutine

	payload := dto.CreateNoteRequest{
		Title:   "High concurrency test",
		Content: "Concurrent create",
	}

	payloadBytes, _ := json.Marshal(payload)

	// Metrics
	var successCount int32
	var errorCount int32
	var totalLatency time.Duration
	var maxLatency time.Duration
	var minLatency time.Duration = time.Hour
	var mutex sync.Mutex

	startTime := time.Now()
	var wg sync.WaitGroup

	// Launch concurrent requests
	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for j := 0; j < requestsPerGoroutine; j++ {
				reqStart := time.Now()

				req, _ := http.NewRequest("POST", "/notes", bytes.NewBuffer(payloadBytes))
				req.Header.Set("Content-Type", "application/json")

				w := httptest.NewRecorder()
				router.ServeHTTP(w, req)

				reqLatency := time.Since(reqStart)

				mutex.Lock()
				totalLatency += reqLatency
				if reqLatency > maxLatency {
					maxLatency = reqLatency
				}
				if reqLatency < minLatency {
					minLatency = reqLatency
				}

				if w.Code == http.StatusCreated {
					successCount++
				} else {
					errorCount++
				}
				mutex.Unlock()
			}
		}()
	}

	wg.Wait()
	totalTime := time.Since(startTime)

	// Calculate metrics
	avgLatency := totalLatency / time.Duration(totalRequests)
	throughput := float64(totalRequests) / totalTime.Seconds()

	t.Logf("=== High Concurrency Test Results ===")
	t.Logf("Total requests: %d", totalRequests)
	t.Logf("Successful requests: %d", successCount)
	t.Logf("Failed requests: %d", errorCount)
	t.Logf("Total time: %v", totalTime)
	t.Logf("Throughput: %.2f requests/second", throughput)
	t.Logf("Average latency: %v", avgLatency)
	t.Logf("Min latency: %v", minLatency)
	t.Logf("Max latency: %v", maxLatency)

	assert.Equal(t, int32(totalRequests), successCount, "All requests should succeed")
	assert.Equal(t, int32(0), errorCount, "No requests should fail")
	assert.True(t, avgLatency < 100*time.Millisecond, "Average latency should be under 100ms, got %v", avgLatency)
}
