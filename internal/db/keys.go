package db

import "strings"

// DocKey returns the storage key of a document in a collection.
func DocKey(prefix, collection, id string) string {
	return KeyspacePrefix(prefix, collection) + id
}

// IndexName returns the FT index name of a collection.
func IndexName(prefix, collection string) string {
	return prefix + collection + ":idx"
}

// KeyspacePrefix returns the key prefix every document of a collection shares.
func KeyspacePrefix(prefix, collection string) string {
	return prefix + collection + ":"
}

// HitID extracts the engine-assigned document identifier from a hit key.
func HitID(prefix, collection, key string) string {
	return strings.TrimPrefix(key, KeyspacePrefix(prefix, collection))
}
