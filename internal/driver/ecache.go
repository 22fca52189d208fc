package driver

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"fen/internal/project"
	"fen/internal/resolved"
	"fen/internal/resolver"
	"fen/internal/source"
)

// Current schema version - increment when ExportPayload format changes.
const exportCacheSchemaVersion uint16 = 1

// ExportCache stores flattened declare-phase exports on disk, keyed by the
// unit's content digest, so a later run can tell unchanged export surfaces
// apart without recomputing them. Thread-safe for concurrent access.
type ExportCache struct {
	mu  sync.RWMutex
	dir string
}

// ExportEntry is one exported declaration.
type ExportEntry struct {
	Name string
	Kind uint8
}

// ExportPayload is the cached shape of one unit's namespace.
type ExportPayload struct {
	Schema uint16

	Unit   string
	Digest project.Digest

	Values  []ExportEntry
	Types   []ExportEntry
	Modules []string
}

// OpenExportCache initializes the cache at the standard location for app.
func OpenExportCache(app string) (*ExportCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &ExportCache{dir: dir}, nil
}

// Dir returns the cache root on disk.
func (c *ExportCache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

func (c *ExportCache) pathFor(key project.Digest) string {
	return filepath.Join(c.dir, "units", key.String()+".mp")
}

// Put serializes a payload and installs it with an atomic rename.
func (c *ExportCache) Put(key project.Digest, payload *ExportPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads a payload back. A missing key or a stale schema is a miss,
// not an error.
func (c *ExportCache) Get(key project.Digest, out *ExportPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, err
	}
	if out.Schema != exportCacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll invalidates the whole cache, useful after format changes.
func (c *ExportCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.RemoveAll(old)
}

// ExportsOf flattens the exported surface of a declared namespace into a
// cacheable payload. Entries are sorted so payload bytes are stable for
// one registry state.
func ExportsOf(reg *resolver.Registry, id resolved.NamespaceID, interner *source.Interner, unit string, digest project.Digest) *ExportPayload {
	ns := reg.Get(id)
	if ns == nil {
		return nil
	}
	payload := &ExportPayload{
		Schema: exportCacheSchemaVersion,
		Unit:   unit,
		Digest: digest,
	}
	for name, item := range ns.Values {
		if item.Vis != resolved.Public && !item.PassThrough {
			continue
		}
		payload.Values = append(payload.Values, ExportEntry{
			Name: interner.MustLookup(name),
			Kind: uint8(item.Item.Kind),
		})
	}
	for name, item := range ns.Types {
		if item.Vis != resolved.Public && !item.PassThrough {
			continue
		}
		payload.Types = append(payload.Types, ExportEntry{
			Name: interner.MustLookup(name),
			Kind: uint8(item.Item.Kind),
		})
	}
	for name, item := range ns.Modules {
		if item.Vis != resolved.Public && !item.PassThrough {
			continue
		}
		payload.Modules = append(payload.Modules, interner.MustLookup(name))
	}
	sort.Slice(payload.Values, func(i, j int) bool { return payload.Values[i].Name < payload.Values[j].Name })
	sort.Slice(payload.Types, func(i, j int) bool { return payload.Types[i].Name < payload.Types[j].Name })
	sort.Strings(payload.Modules)
	return payload
}
