package driver

import (
	"path/filepath"
	"strings"
	"testing"

	"fen/internal/project"
)

func openTestCache(t *testing.T) *ExportCache {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	cache, err := OpenExportCache("fen-test")
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	return cache
}

func TestExportCacheRoundTrip(t *testing.T) {
	cache := openTestCache(t)
	key := project.HashBytes([]byte("unit body"))
	in := &ExportPayload{
		Schema:  exportCacheSchemaVersion,
		Unit:    "data.maybe",
		Digest:  key,
		Values:  []ExportEntry{{Name: "Just", Kind: 1}, {Name: "map", Kind: 0}},
		Types:   []ExportEntry{{Name: "Maybe", Kind: 0}},
		Modules: []string{"Maybe"},
	}
	if err := cache.Put(key, in); err != nil {
		t.Fatalf("put: %v", err)
	}

	var out ExportPayload
	hit, err := cache.Get(key, &out)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !hit {
		t.Fatal("expected a cache hit")
	}
	if out.Unit != in.Unit || len(out.Values) != 2 || len(out.Types) != 1 || len(out.Modules) != 1 {
		t.Fatalf("payload mismatch: %+v", out)
	}
	if out.Values[0].Name != "Just" || out.Values[0].Kind != 1 {
		t.Fatalf("value entry mismatch: %+v", out.Values[0])
	}
}

func TestExportCacheMissAndStaleSchema(t *testing.T) {
	cache := openTestCache(t)

	var out ExportPayload
	hit, err := cache.Get(project.HashBytes([]byte("absent")), &out)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if hit {
		t.Fatal("expected a miss for an absent key")
	}

	key := project.HashBytes([]byte("stale"))
	stale := &ExportPayload{Schema: exportCacheSchemaVersion + 1, Unit: "old"}
	if err := cache.Put(key, stale); err != nil {
		t.Fatalf("put: %v", err)
	}
	hit, err = cache.Get(key, &out)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if hit {
		t.Fatal("stale schema must read as a miss")
	}
}

func TestExportCacheDropAll(t *testing.T) {
	cache := openTestCache(t)
	key := project.HashBytes([]byte("doomed"))
	if err := cache.Put(key, &ExportPayload{Schema: exportCacheSchemaVersion}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := cache.DropAll(); err != nil {
		t.Fatalf("drop: %v", err)
	}
	var out ExportPayload
	hit, err := cache.Get(key, &out)
	if err != nil {
		t.Fatalf("get after drop: %v", err)
	}
	if hit {
		t.Fatal("cache entry survived DropAll")
	}
	// Dropping an already-empty cache is fine.
	if err := cache.DropAll(); err != nil {
		t.Fatalf("second drop: %v", err)
	}
}

func TestExportCachePathLayout(t *testing.T) {
	cache := openTestCache(t)
	key := project.HashBytes([]byte("x"))
	p := cache.pathFor(key)
	if filepath.Dir(p) != filepath.Join(cache.Dir(), "units") {
		t.Fatalf("unexpected cache layout: %s", p)
	}
	if !strings.HasSuffix(p, key.String()+".mp") {
		t.Fatalf("unexpected cache file name: %s", p)
	}
}
