package cache

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileCache stores analysis results and rendered artifacts as files under
// a cache directory. It is the CLI's default backend: no daemon to run,
// results survive between invocations, and the whole directory is safe to
// delete (that is what "quillpilot cache clear" does).
//
// Entries are grouped into one subdirectory per key kind (cloud, heatmap,
// artifact), so a glance at the cache directory shows what is being kept.
type FileCache struct {
	dir string
}

// NewFileCache creates a file cache rooted at dir, creating it if needed.
func NewFileCache(dir string) (Cache, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

// fileEntry is the on-disk envelope around a cached payload.
type fileEntry struct {
	ExpiresAt time.Time `json:"expires_at,omitempty"`
	Payload   []byte    `json:"payload"`
}

// Get retrieves a cached payload. Expired or unreadable entries count as
// misses and are removed so they are not re-parsed on every lookup.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	path := c.entryPath(key)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var entry fileEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		_ = os.Remove(path)
		return nil, false, nil
	}
	if !entry.ExpiresAt.IsZero() && time.Now().After(entry.ExpiresAt) {
		_ = os.Remove(path)
		return nil, false, nil
	}

	return entry.Payload, true, nil
}

// Set stores a payload. A ttl of 0 keeps the entry until it is deleted.
func (c *FileCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	entry := fileEntry{Payload: data}
	if ttl > 0 {
		entry.ExpiresAt = time.Now().Add(ttl)
	}

	encoded, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	path := c.entryPath(key)
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	return os.WriteFile(path, encoded, 0600)
}

// Delete removes an entry. Deleting a missing key is not an error.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	err := os.Remove(c.entryPath(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close does nothing; the file cache holds no open handles.
func (c *FileCache) Close() error {
	return nil
}

// entryPath maps a cache key to <dir>/<kind>/<digest>.entry. The kind is
// the key's prefix segment (see hashKey); keys that do not follow that
// shape land in a catch-all directory. The digest of the full key names
// the file, so scoped keys with the same kind never collide.
func (c *FileCache) entryPath(key string) string {
	return filepath.Join(c.dir, keyKind(key), Hash([]byte(key))+".entry")
}

// keyKind extracts the kind segment from a "<kind>:<digest>" key,
// tolerating scope prefixes ("project:novel:cloud:<digest>").
func keyKind(key string) string {
	parts := strings.Split(key, ":")
	if len(parts) < 2 {
		return "misc"
	}
	kind := parts[len(parts)-2]
	for _, r := range kind {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return "misc"
		}
	}
	if kind == "" {
		return "misc"
	}
	return kind
}

// Ensure FileCache implements Cache.
var _ Cache = (*FileCache)(nil)
