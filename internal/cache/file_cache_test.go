package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// newTestCache returns a cache whose clock is controlled by the returned func.
func newTestCache(t *testing.T, ttl time.Duration) (*FileCache, func(time.Duration)) {
	t.Helper()
	c, err := NewFileCache(t.TempDir(), ttl)
	if err != nil {
		t.Fatalf("NewFileCache() error = %v", err)
	}
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }
	return c, func(d time.Duration) { now = now.Add(d) }
}

func TestNewFileCache(t *testing.T) {
	c, err := NewFileCache(t.TempDir(), 60*time.Second)
	if err != nil {
		t.Fatalf("NewFileCache() error = %v", err)
	}
	if c == nil {
		t.Fatal("NewFileCache() returned nil")
	}
}

func TestNewFileCache_RejectsZeroTTL(t *testing.T) {
	if _, err := NewFileCache(t.TempDir(), 0); err == nil {
		t.Error("NewFileCache() with zero ttl should fail")
	}
}

func TestFileCache_SetAndGet(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)

	key := "status:12345"
	if err := c.Set(key, []byte(`{"train_name":"GARIB RATH"}`)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, ok := c.Get(key)
	if !ok {
		t.Fatal("Get() returned false, want true")
	}
	if string(got) != `{"train_name":"GARIB RATH"}` {
		t.Errorf("Get() = %q", got)
	}
}

func TestFileCache_SetRejectsInvalidJSON(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)

	if err := c.Set("status:12345", []byte("not json")); err == nil {
		t.Error("Set() with invalid JSON should fail")
	}
}

func TestFileCache_GetMissing(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)

	if _, ok := c.Get("status:00000"); ok {
		t.Error("Get() returned true for non-existent key")
	}
}

func TestFileCache_Expiration(t *testing.T) {
	c, advance := newTestCache(t, 90*time.Second)

	key := "status:99999"
	if err := c.Set(key, []byte(`{"delay":"10 minutes"}`)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	advance(89 * time.Second)
	if _, ok := c.Get(key); !ok {
		t.Error("Get() returned false before expiry")
	}

	advance(2 * time.Second)
	if _, ok := c.Get(key); ok {
		t.Error("Get() returned true for expired key")
	}

	// Expired entry is removed from disk
	if _, err := os.Stat(c.path(key)); !os.IsNotExist(err) {
		t.Error("expired entry file still exists")
	}
}

func TestFileCache_DistinctKeys(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)

	if err := c.Set("status:11111", []byte(`1`)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := c.Set("status:22222", []byte(`2`)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	a, okA := c.Get("status:11111")
	b, okB := c.Get("status:22222")
	if !okA || !okB {
		t.Fatal("failed to retrieve one or both keys")
	}
	if string(a) != "1" || string(b) != "2" {
		t.Errorf("data mismatch: %q %q", a, b)
	}
}

func TestFileCache_CorruptEntry(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)

	key := "status:54321"
	if err := os.WriteFile(c.path(key), []byte("{broken"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, ok := c.Get(key); ok {
		t.Error("Get() returned true for corrupt entry")
	}
	if _, err := os.Stat(c.path(key)); !os.IsNotExist(err) {
		t.Error("corrupt entry was not removed")
	}
}

func TestFileCache_Delete(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)

	key := "status:12345"
	if err := c.Set(key, []byte(`{}`)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := c.Delete(key); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, ok := c.Get(key); ok {
		t.Error("Get() returned true after Delete()")
	}

	// Deleting a missing key is not an error
	if err := c.Delete(key); err != nil {
		t.Errorf("Delete() of missing key error = %v", err)
	}
}

func TestFileCache_CreateDirectory(t *testing.T) {
	nestedDir := filepath.Join(t.TempDir(), "nested", "cache", "dir")

	c, err := NewFileCache(nestedDir, 60*time.Second)
	if err != nil {
		t.Fatalf("NewFileCache() error = %v", err)
	}

	if _, err := os.Stat(nestedDir); os.IsNotExist(err) {
		t.Error("Cache directory was not created")
	}
	if c.Dir() != nestedDir {
		t.Errorf("Dir() = %q, want %q", c.Dir(), nestedDir)
	}
}

func TestDefaultCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-cache")
	if got := DefaultCacheDir(); got != filepath.Join("/tmp/xdg-cache", "railwatch") {
		t.Errorf("DefaultCacheDir() = %q", got)
	}

	t.Setenv("XDG_CACHE_HOME", "")
	if DefaultCacheDir() == "" {
		t.Error("DefaultCacheDir() returned empty string")
	}
}

func TestFileCache_Clear(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)

	keys := []string{"status:10000", "status:10001", "status:10002"}
	for _, key := range keys {
		if err := c.Set(key, []byte(`{}`)); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
	}

	if err := c.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}

	for _, key := range keys {
		if _, ok := c.Get(key); ok {
			t.Errorf("Get(%q) returned true after Clear()", key)
		}
	}

	if _, err := os.Stat(c.Dir()); os.IsNotExist(err) {
		t.Error("Cache directory was deleted by Clear()")
	}
}

func TestFileCache_ClearLeavesForeignFiles(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)

	other := filepath.Join(c.Dir(), "notes.txt")
	if err := os.WriteFile(other, []byte("keep"), 0600); err != nil {
		t.Fatal(err)
	}

	if err := c.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if _, err := os.Stat(other); err != nil {
		t.Error("Clear() removed a non-cache file")
	}
}

func TestFileCache_Cleanup(t *testing.T) {
	c, advance := newTestCache(t, time.Minute)

	oldKeys := []string{"status:20000", "status:20001"}
	for _, key := range oldKeys {
		if err := c.Set(key, []byte(`"old"`)); err != nil {
			t.Fatalf("Set() error = %v", err)
		}
	}

	advance(2 * time.Minute)

	freshKey := "status:20002"
	if err := c.Set(freshKey, []byte(`"fresh"`)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	if err := c.Cleanup(); err != nil {
		t.Fatalf("Cleanup() error = %v", err)
	}

	for _, key := range oldKeys {
		if _, err := os.Stat(c.path(key)); !os.IsNotExist(err) {
			t.Errorf("expired entry %q not removed by Cleanup()", key)
		}
	}
	if _, ok := c.Get(freshKey); !ok {
		t.Error("fresh entry was removed by Cleanup()")
	}
}

func TestFileCache_CleanupEmptyCache(t *testing.T) {
	c, _ := newTestCache(t, time.Minute)

	if err := c.Cleanup(); err != nil {
		t.Errorf("Cleanup() on empty cache error = %v", err)
	}
}
