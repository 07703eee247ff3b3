package driver

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/vmihailenco/msgpack/v5"

	"clangview/internal/docgen"
)

// Bump when CacheEntry or docgen.FileDoc change shape.
const diskCacheSchemaVersion uint16 = 1

// Key identifies the documentation of one file parsed one way.
type Key uint64

func (k Key) String() string { return fmt.Sprintf("%016x", uint64(k)) }

// KeyFor hashes everything the extracted documentation depends on apart
// from the included headers, which CacheEntry records separately.
func KeyFor(libVersion, path string, args []string, flags uint32, content []byte) Key {
	h := xxhash.New()
	var buf [8]byte
	write := func(s string) {
		binary.LittleEndian.PutUint64(buf[:], uint64(len(s)))
		_, _ = h.Write(buf[:])
		_, _ = h.WriteString(s)
	}
	write(strconv.Itoa(int(diskCacheSchemaVersion)))
	write(libVersion)
	write(path)
	for _, a := range args {
		write(a)
	}
	binary.LittleEndian.PutUint64(buf[:], uint64(flags))
	_, _ = h.Write(buf[:])
	_, _ = h.Write(content)
	return Key(h.Sum64())
}

// DepHash pins the content of an included header.
type DepHash struct {
	Path string `json:"path"`
	Hash uint64 `json:"hash"`
}

// CacheEntry is what the disk cache stores per Key.
type CacheEntry struct {
	Schema uint16         `json:"schema"`
	Doc    docgen.FileDoc `json:"doc"`
	Deps   []DepHash      `json:"deps,omitempty"`
}

// HashDeps reads each path and records its content hash.
func HashDeps(paths []string) ([]DepHash, error) {
	out := make([]DepHash, 0, len(paths))
	for _, p := range paths {
		b, err := os.ReadFile(p)
		if err != nil {
			return nil, err
		}
		out = append(out, DepHash{Path: p, Hash: xxhash.Sum64(b)})
	}
	return out, nil
}

// Fresh reports whether every recorded header still has its hash.
func (e *CacheEntry) Fresh() bool {
	for _, d := range e.Deps {
		b, err := os.ReadFile(d.Path)
		if err != nil || xxhash.Sum64(b) != d.Hash {
			return false
		}
	}
	return true
}

// DiskCache keeps extracted documentation on disk, one msgpack file per
// Key. It is safe for concurrent use.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// OpenDiskCache opens the cache under $XDG_CACHE_HOME/app, or
// ~/.cache/app.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return OpenDiskCacheAt(filepath.Join(base, app))
}

// OpenDiskCacheAt opens the cache rooted at dir, creating it.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

func (c *DiskCache) pathFor(key Key) string {
	return filepath.Join(c.dir, "docs", key.String()+".mp")
}

func newEncoder(buf *bytes.Buffer) *msgpack.Encoder {
	enc := msgpack.NewEncoder(buf)
	enc.SetCustomStructTag("json")
	return enc
}

// Put stores entry under key, replacing the file atomically.
func (c *DiskCache) Put(key Key, entry *CacheEntry) error {
	if c == nil {
		return nil
	}
	entry.Schema = diskCacheSchemaVersion
	var buf bytes.Buffer
	if err := newEncoder(&buf).Encode(entry); err != nil {
		return err
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
	tmp := f.Name()
	if _, err := f.Write(buf.Bytes()); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, p); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

// Get loads the entry of key. A missing entry, one written by another
// schema, or one whose headers changed is a miss.
func (c *DiskCache) Get(key Key) (*CacheEntry, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	data, err := os.ReadFile(c.pathFor(key))
	c.mu.RUnlock()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	dec.SetCustomStructTag("json")
	var entry CacheEntry
	if err := dec.Decode(&entry); err != nil {
		return nil, false, fmt.Errorf("decode %s: %w", key, err)
	}
	if entry.Schema != diskCacheSchemaVersion || !entry.Fresh() {
		return nil, false, nil
	}
	return &entry, true, nil
}

// Keys lists the stored keys in order.
func (c *DiskCache) Keys() ([]Key, error) {
	if c == nil {
		return nil, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	ents, err := os.ReadDir(filepath.Join(c.dir, "docs"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var out []Key
	for _, e := range ents {
		name, ok := strings.CutSuffix(e.Name(), ".mp")
		if !ok {
			continue
		}
		v, err := strconv.ParseUint(name, 16, 64)
		if err != nil {
			continue
		}
		out = append(out, Key(v))
	}
	slices.Sort(out)
	return out, nil
}

// DropAll removes every entry.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return os.RemoveAll(filepath.Join(c.dir, "docs"))
}
