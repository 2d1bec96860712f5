package storage

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

// CachedVector is one persisted title embedding.
type CachedVector struct {
	Key     string    `json:"key"`
	Vector  []float32 `json:"vector"`
	SavedAt time.Time `json:"saved_at"`
}

// VectorCache persists title embeddings between runs in a JSON file, so a
// headline that was already embedded yesterday costs nothing today. Entries
// older than the TTL are dropped on load.
type VectorCache struct {
	filePath string
	ttlHours int
	items    map[string]CachedVector
	mu       sync.RWMutex
}

func NewVectorCache(filePath string, ttlHours int) *VectorCache {
	return &VectorCache{
		filePath: filePath,
		ttlHours: ttlHours,
		items:    make(map[string]CachedVector),
	}
}

// Load reads the cache file into memory, skipping expired entries. A missing
// file is not an error; the run starts with an empty cache.
func (vc *VectorCache) Load() error {
	vc.mu.Lock()
	defer vc.mu.Unlock()

	if _, err := os.Stat(vc.filePath); os.IsNotExist(err) {
		return nil
	}

	data, err := os.ReadFile(vc.filePath)
	if err != nil {
		return fmt.Errorf("failed to read vector cache: %w", err)
	}
	if len(data) == 0 {
		return nil
	}

	var items []CachedVector
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("failed to unmarshal vector cache: %w", err)
	}

	cutoff := time.Now().Add(-time.Duration(vc.ttlHours) * time.Hour)
	for _, item := range items {
		if item.SavedAt.After(cutoff) && len(item.Vector) > 0 {
			vc.items[item.Key] = item
		}
	}
	return nil
}

// Save writes the in-memory cache back to disk.
func (vc *VectorCache) Save() error {
	vc.mu.RLock()
	items := make([]CachedVector, 0, len(vc.items))
	for _, item := range vc.items {
		items = append(items, item)
	}
	vc.mu.RUnlock()

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal vector cache: %w", err)
	}
	if err := os.WriteFile(vc.filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write vector cache: %w", err)
	}
	return nil
}

// Key derives the stable cache key for a title: sha256 over the lowercased,
// whitespace-collapsed text.
func (vc *VectorCache) Key(title string) string {
	normalized := strings.Join(strings.Fields(strings.ToLower(title)), " ")
	h := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(h[:])[:16]
}

// Get returns the cached vector for a key, if present.
func (vc *VectorCache) Get(key string) ([]float32, bool) {
	vc.mu.RLock()
	defer vc.mu.RUnlock()
	item, ok := vc.items[key]
	if !ok {
		return nil, false
	}
	return item.Vector, true
}

// Put stores a freshly computed vector.
func (vc *VectorCache) Put(key string, vec []float32) {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	vc.items[key] = CachedVector{Key: key, Vector: vec, SavedAt: time.Now()}
}

// Len reports the number of cached vectors.
func (vc *VectorCache) Len() int {
	vc.mu.RLock()
	defer vc.mu.RUnlock()
	return len(vc.items)
}
