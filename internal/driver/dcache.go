package driver

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"gloss/internal/diag"
	"gloss/internal/project"
	"gloss/internal/source"
)

// Schema version, bumped whenever cachedResult's layout changes so stale
// entries read as misses instead of garbage.
const diskCacheSchemaVersion uint16 = 1

// DiskCache persists per-file check results keyed by content and
// configuration. Safe for concurrent use; directory workers share one.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// cachedDiag is a diagnostic with its span reduced to byte offsets. The
// content hash in the cache key guarantees the offsets still apply when an
// entry is replayed.
type cachedDiag struct {
	Severity uint8
	Code     uint16
	Message  string
	Start    uint32
	End      uint32
	Notes    []cachedNote
}

type cachedNote struct {
	Message string
	Start   uint32
	End     uint32
}

type cachedResult struct {
	Schema  uint16
	Diags   []cachedDiag
	Symbols []SymbolInfo
}

// OpenDiskCache initializes the cache at $XDG_CACHE_HOME/<app>/checks.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app, "checks")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// OpenDiskCacheAt pins the cache to an explicit directory (tests).
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key project.Digest) string {
	return filepath.Join(c.dir, hex.EncodeToString(key[:])+".mp")
}

// cacheKey mixes the file's content hash with everything about the
// configuration that changes check output.
func cacheKey(file *source.File, opts Options) project.Digest {
	cfg := fmt.Sprintf("schema=%d kind=%d strict=%v builtin=%v max=%d",
		diskCacheSchemaVersion, opts.Config.Kind, opts.Config.Strict,
		opts.Config.BuiltinCode, opts.bagCap())
	return project.Combine(project.Digest(file.Hash), project.DigestOf([]byte(cfg)))
}

// store writes the result. Non-atomic visibility is fine; a torn write is
// a decode failure, which reads as a miss.
func (c *DiskCache) store(res *CheckResult, opts Options) error {
	if c == nil || res == nil {
		return nil
	}
	file := res.FileSet.Get(res.FileID)
	payload := cachedResult{
		Schema:  diskCacheSchemaVersion,
		Symbols: res.Symbols,
	}
	for _, d := range res.Bag.Items() {
		cd := cachedDiag{
			Severity: uint8(d.Severity),
			Code:     uint16(d.Code),
			Message:  d.Message,
			Start:    d.Primary.Start,
			End:      d.Primary.End,
		}
		for _, n := range d.Notes {
			cd.Notes = append(cd.Notes, cachedNote{Message: n.Msg, Start: n.Span.Start, End: n.Span.End})
		}
		payload.Diags = append(payload.Diags, cd)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(cacheKey(file, opts))
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(f.Name()) }()

	if err := msgpack.NewEncoder(f).Encode(&payload); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Atomic replacement keeps concurrent readers consistent.
	return os.Rename(f.Name(), p)
}

// replay reconstructs a CheckResult for the already loaded file if a valid
// entry exists. Spans are rebound to the fresh FileID.
func (c *DiskCache) replay(fs *source.FileSet, id source.FileID, opts Options) (*CheckResult, bool) {
	if c == nil {
		return nil, false
	}
	file := fs.Get(id)

	c.mu.RLock()
	data, err := os.ReadFile(c.pathFor(cacheKey(file, opts)))
	c.mu.RUnlock()
	if err != nil {
		return nil, false
	}

	var payload cachedResult
	if err := msgpack.Unmarshal(data, &payload); err != nil || payload.Schema != diskCacheSchemaVersion {
		return nil, false
	}

	bag := diag.NewBag(opts.bagCap())
	for _, cd := range payload.Diags {
		d := diag.Diagnostic{
			Severity: diag.Severity(cd.Severity),
			Code:     diag.Code(cd.Code),
			Message:  cd.Message,
			Primary:  source.Span{File: id, Start: cd.Start, End: cd.End},
		}
		for _, n := range cd.Notes {
			d.Notes = append(d.Notes, diag.Note{
				Span: source.Span{File: id, Start: n.Start, End: n.End},
				Msg:  n.Message,
			})
		}
		bag.Add(d)
	}
	return &CheckResult{
		Path:      file.Path,
		FileSet:   fs,
		FileID:    id,
		Bag:       bag,
		Symbols:   payload.Symbols,
		FromCache: true,
		Timer:     nil,
	}, true
}

// Clear removes every cache entry.
func (c *DiskCache) Clear() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) != ".mp" {
			continue
		}
		if err := os.Remove(filepath.Join(c.dir, e.Name())); err != nil {
			return err
		}
	}
	return nil
}
