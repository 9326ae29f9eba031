package cache

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestPageKey(t *testing.T) {
	key := PageKey("https://www.segye.com/newsView/1")
	if !strings.HasPrefix(key, "infogram:v1:") {
		t.Errorf("Expected versioned prefix, got %q", key)
	}
	if key != PageKey("https://www.segye.com/newsView/1") {
		t.Error("Expected deterministic keys")
	}
	if key == PageKey("https://www.segye.com/newsView/2") {
		t.Error("Expected distinct keys for distinct URLs")
	}
}

func TestMemoryCache_RoundTrip(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if _, found := c.Get("missing"); found {
		t.Error("Expected miss for unknown key")
	}

	if err := c.Set("page", []byte("<html>"), 0); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	val, found := c.Get("page")
	if !found || string(val) != "<html>" {
		t.Errorf("Expected cached value back, got %q found=%v", val, found)
	}

	if err := c.Delete("page"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, found := c.Get("page"); found {
		t.Error("Expected miss after delete")
	}
}

func TestMemoryCache_TTLExpiry(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)
	if err := c.Set("page", []byte("x"), time.Millisecond); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	time.Sleep(5 * time.Millisecond)
	if _, found := c.Get("page"); found {
		t.Error("Expected expired entry to miss")
	}
}

func TestDiskCache_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	c := NewDiskCache(dir, time.Hour)

	if err := c.Set("page", []byte("<html>"), 0); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	val, found := c.Get("page")
	if !found || string(val) != "<html>" {
		t.Errorf("Expected cached value back, got %q found=%v", val, found)
	}

	// A fresh instance over the same dir still sees the entry.
	c2 := NewDiskCache(dir, time.Hour)
	if _, found := c2.Get("page"); !found {
		t.Error("Expected persisted entry across instances")
	}
}

func TestDiskCache_Expiry(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Hour)

	if err := c.Set("page", []byte("x"), -time.Second); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, found := c.Get("page"); found {
		t.Error("Expected already-expired entry to miss")
	}
}

func TestDiskCache_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	c := NewDiskCache(dir, time.Hour)

	if err := os.WriteFile(filepath.Join(dir, "page.cache"), []byte("not json"), 0644); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, found := c.Get("page"); found {
		t.Error("Expected corrupt entry to miss")
	}
}

func TestDiskCache_Clear(t *testing.T) {
	c := NewDiskCache(t.TempDir(), time.Hour)
	if err := c.Set("page", []byte("x"), 0); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if err := c.Clear(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, found := c.Get("page"); found {
		t.Error("Expected miss after clear")
	}
}

func TestLayeredCache_PromotesDiskHit(t *testing.T) {
	dir := t.TempDir()

	// Seed disk only, then read through a fresh layered cache.
	seed := NewDiskCache(dir, time.Hour)
	if err := seed.Set("page", []byte("<html>"), 0); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	c := NewLayeredCache(time.Minute, dir, time.Hour)
	val, found := c.Get("page")
	if !found || string(val) != "<html>" {
		t.Fatalf("Expected disk hit, got %q found=%v", val, found)
	}

	// Remove the disk file; the promoted memory copy must still serve.
	if err := seed.Delete("page"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, found := c.Get("page"); !found {
		t.Error("Expected promoted memory entry to serve after disk delete")
	}
}

func TestLayeredCache_SetWritesBothLayers(t *testing.T) {
	dir := t.TempDir()
	c := NewLayeredCache(time.Minute, dir, time.Hour)

	if err := c.Set("page", []byte("x"), 0); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	disk := NewDiskCache(dir, time.Hour)
	if _, found := disk.Get("page"); !found {
		t.Error("Expected entry written through to disk")
	}
}
