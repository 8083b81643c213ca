package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Hash returns the hex SHA-256 digest of data.
//
// Stored networks are content-addressed by this digest: uploading the same
// network twice resolves to the same key, so re-uploads dedupe and a client
// holding a hash can verify the payload it gets back.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// hashKey builds a namespaced key from the digest of its parts.
// Used for keys whose inputs are not already a content hash, such as
// profile keys derived from a name plus the TOML source digest.
func hashKey(namespace string, parts ...any) string {
	data, _ := json.Marshal(parts)
	sum := sha256.Sum256(data)
	return namespace + ":" + hex.EncodeToString(sum[:])
}
