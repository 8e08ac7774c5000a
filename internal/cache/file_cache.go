package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"
)

const entryExt = ".json"

// FileCache stores values as JSON files that expire after a TTL
type FileCache struct {
	dir string
	ttl time.Duration
	now func() time.Time
}

// entry is the on-disk form of a cached value
type entry struct {
	Key       string          `json:"key"`
	Data      json.RawMessage `json:"data"`
	StoredAt  time.Time       `json:"stored_at"`
	ExpiresAt time.Time       `json:"expires_at"`
}

// NewFileCache creates the cache directory if needed
func NewFileCache(dir string, ttl time.Duration) (*FileCache, error) {
	if ttl <= 0 {
		return nil, errors.New("cache ttl must be positive")
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, err
	}

	return &FileCache{
		dir: dir,
		ttl: ttl,
		now: time.Now,
	}, nil
}

// DefaultCacheDir returns $XDG_CACHE_HOME/railwatch or ~/.cache/railwatch
func DefaultCacheDir() string {
	if xdgCache := os.Getenv("XDG_CACHE_HOME"); xdgCache != "" {
		return filepath.Join(xdgCache, "railwatch")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "railwatch-cache")
	}

	return filepath.Join(home, ".cache", "railwatch")
}

// Dir returns the cache directory
func (c *FileCache) Dir() string {
	return c.dir
}

func (c *FileCache) path(key string) string {
	hash := sha256.Sum256([]byte(key))
	return filepath.Join(c.dir, hex.EncodeToString(hash[:])+entryExt)
}

// Get returns the cached value for key. Expired or corrupt entries are removed.
func (c *FileCache) Get(key string) ([]byte, bool) {
	filename := c.path(key)

	// #nosec G304 -- filename is a hash of the key inside the cache directory
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, false
	}

	var e entry
	if err := json.Unmarshal(data, &e); err != nil || e.Key != key {
		_ = os.Remove(filename)
		return nil, false
	}

	if c.now().After(e.ExpiresAt) {
		_ = os.Remove(filename)
		return nil, false
	}

	return e.Data, true
}

// Set stores a JSON value under key
func (c *FileCache) Set(key string, value []byte) error {
	if !json.Valid(value) {
		return errors.New("cache value must be valid JSON")
	}

	now := c.now()
	data, err := json.Marshal(entry{
		Key:       key,
		Data:      value,
		StoredAt:  now,
		ExpiresAt: now.Add(c.ttl),
	})
	if err != nil {
		return err
	}

	return os.WriteFile(c.path(key), data, 0600)
}

// Delete removes a single key
func (c *FileCache) Delete(key string) error {
	err := os.Remove(c.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// Clear removes all entries
func (c *FileCache) Clear() error {
	return c.sweep(func(string) bool { return true })
}

// Cleanup removes expired and unreadable entries
func (c *FileCache) Cleanup() error {
	now := c.now()
	return c.sweep(func(filename string) bool {
		// #nosec G304 -- filename comes from ReadDir within the cache directory
		data, err := os.ReadFile(filename)
		if err != nil {
			return false
		}
		var e entry
		if err := json.Unmarshal(data, &e); err != nil {
			return true
		}
		return now.After(e.ExpiresAt)
	})
}

func (c *FileCache) sweep(remove func(filename string) bool) error {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return err
	}

	for _, de := range entries {
		if de.IsDir() || filepath.Ext(de.Name()) != entryExt {
			continue
		}
		filename := filepath.Join(c.dir, de.Name())
		if remove(filename) {
			_ = os.Remove(filename)
		}
	}

	return nil
}
