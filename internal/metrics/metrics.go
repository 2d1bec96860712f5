package metrics

import (
	"sync"
	"time"
)

// Metrics collects per-run pipeline counters. One Global instance, guarded by
// a mutex, read by the optional monitoring endpoints.
type Metrics struct {
	mu sync.RWMutex

	// Counters
	SourcesFetched     int64
	SourcesFailed      int64
	ItemsCollected     int64
	ItemsDropped       int64
	ItemsFiltered      int64 // relevance filter rejections
	DuplicatesRemoved  int64
	ClustersBuilt      int64
	EmbedCacheHits     int64
	EmbedCacheMisses   int64
	EmbedFallbackRuns  int64

	// Timings
	LastProcessingTime    time.Duration
	AverageProcessingTime time.Duration
	TotalProcessingTime   time.Duration
	ProcessingCount       int64

	// Status
	LastRunTime   time.Time
	LastErrorTime time.Time
	LastError     string
	IsHealthy     bool
}

var Global = &Metrics{IsHealthy: true}

func (m *Metrics) AddSourcesFetched(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SourcesFetched += int64(n)
}

func (m *Metrics) IncrementSourcesFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SourcesFailed++
}

func (m *Metrics) AddItemsCollected(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ItemsCollected += int64(n)
}

func (m *Metrics) AddItemsDropped(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ItemsDropped += int64(n)
}

func (m *Metrics) AddItemsFiltered(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ItemsFiltered += int64(n)
}

func (m *Metrics) AddDuplicatesRemoved(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DuplicatesRemoved += int64(n)
}

func (m *Metrics) SetClustersBuilt(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ClustersBuilt = int64(n)
}

func (m *Metrics) IncrementEmbedCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.EmbedCacheHits++
}

func (m *Metrics) IncrementEmbedCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.EmbedCacheMisses++
}

func (m *Metrics) IncrementEmbedFallbackRuns() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.EmbedFallbackRuns++
}

func (m *Metrics) RecordProcessingTime(duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.LastProcessingTime = duration
	m.TotalProcessingTime += duration
	m.ProcessingCount++

	if m.ProcessingCount > 0 {
		m.AverageProcessingTime = m.TotalProcessingTime / time.Duration(m.ProcessingCount)
	}
}

func (m *Metrics) SetLastRun() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastRunTime = time.Now()
	m.IsHealthy = true
}

func (m *Metrics) SetError(err string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastError = err
	m.LastErrorTime = time.Now()
	m.IsHealthy = false
}

func (m *Metrics) GetStats() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]interface{}{
		"sources_fetched":            m.SourcesFetched,
		"sources_failed":             m.SourcesFailed,
		"items_collected":            m.ItemsCollected,
		"items_dropped":              m.ItemsDropped,
		"items_filtered":             m.ItemsFiltered,
		"duplicates_removed":         m.DuplicatesRemoved,
		"clusters_built":             m.ClustersBuilt,
		"embed_cache_hits":           m.EmbedCacheHits,
		"embed_cache_misses":         m.EmbedCacheMisses,
		"embed_fallback_runs":        m.EmbedFallbackRuns,
		"last_processing_time_ms":    m.LastProcessingTime.Milliseconds(),
		"average_processing_time_ms": m.AverageProcessingTime.Milliseconds(),
		"last_run_time":              m.LastRunTime.Format(time.RFC3339),
		"last_error_time":            m.LastErrorTime.Format(time.RFC3339),
		"last_error":                 m.LastError,
		"is_healthy":                 m.IsHealthy,
	}
}
