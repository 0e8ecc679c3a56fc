// Package buildcache is an incremental-compilation cache keyed by a
// module's content hash, so that repeated `tython build`/`check`
// invocations can skip re-lowering modules that have not changed
// since the last run. It is a supplement: spec.md's Import Resolver
// and Typed Lowering components are defined without it, but it is the
// ambient engineering a real compiler CLI acquires, grounded on the
// teacher's internal/driver.DiskCache, which persists msgpack-encoded
// module payloads keyed by content hash the same way. This cache
// swaps the teacher's one-file-per-entry directory for a single
// bbolt-backed key/value store.
package buildcache

import (
	"crypto/sha256"

	"github.com/vmihailenco/msgpack/v5"
	"go.etcd.io/bbolt"
)

// Digest is the content hash a cache entry is keyed by.
type Digest = [sha256.Size]byte

// HashContent returns the SHA-256 digest of a module's raw source
// bytes, the cache key for that module.
func HashContent(content []byte) Digest {
	return sha256.Sum256(content)
}

var modulesBucket = []byte("modules")

// Diagnostic is a msgpack-serializable mirror of diag.Diagnostic. It
// does not import package diag to avoid a persisted-format dependency
// on that package's internal layout; cmd/tython converts both ways.
type Diagnostic struct {
	Severity uint8
	Code     uint16
	Message  string
	Start    uint32
	End      uint32
}

// Entry is what gets cached for one module: whether lowering it
// succeeded cleanly, and the diagnostics that were reported while
// doing so (so a cache hit can replay them without re-running the
// lowering pass).
type Entry struct {
	Clean       bool
	Diagnostics []Diagnostic
}

// Cache is a bbolt-backed store of Entry, keyed by Digest.
type Cache struct {
	db *bbolt.DB
}

// Open opens (creating if absent) the single-file bbolt store at path.
func Open(path string) (*Cache, error) {
	db, err := bbolt.Open(path, 0o644, nil)
	if err != nil {
		return nil, err
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(modulesBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Cache{db: db}, nil
}

// Close releases the underlying bbolt file handle.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.db.Close()
}

// Get looks up the entry for key. ok is false on a miss or a
// corrupt/unreadable record (treated the same as a miss: the caller
// falls back to re-lowering).
func (c *Cache) Get(key Digest) (Entry, bool) {
	if c == nil {
		return Entry{}, false
	}
	var e Entry
	found := false
	_ = c.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket(modulesBucket)
		v := b.Get(key[:])
		if v == nil {
			return nil
		}
		if err := msgpack.Unmarshal(v, &e); err != nil {
			return nil
		}
		found = true
		return nil
	})
	return e, found
}

// Put stores e under key, overwriting any previous entry.
func (c *Cache) Put(key Digest, e Entry) error {
	if c == nil {
		return nil
	}
	buf, err := msgpack.Marshal(&e)
	if err != nil {
		return err
	}
	return c.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(modulesBucket).Put(key[:], buf)
	})
}
