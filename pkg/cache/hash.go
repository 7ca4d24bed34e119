package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Hash returns the hex SHA-256 digest of data. Manuscripts, cloud models,
// and heatmap models are all identified by this content hash, so the same
// text produces the same cache entries no matter which command or server
// instance analyzed it.
func Hash(data []byte) string {
	digest := sha256.Sum256(data)
	return hex.EncodeToString(digest[:])
}

// hashKey builds a "<kind>:<digest>" cache key from a kind label and the
// values that influence the result. Values are serialized to JSON before
// hashing, so struct field order (not formatting) defines the digest, and
// the full 256-bit digest is kept to rule out collisions between
// documents.
func hashKey(kind string, values ...any) string {
	payload, _ := json.Marshal(values)
	digest := sha256.Sum256(payload)
	return kind + ":" + hex.EncodeToString(digest[:])
}
