// File: tidify/utils/constants.go
package utils

import "time"

const (
	// AuthCachePrefix namespaces session token hashes in Redis.
	AuthCachePrefix = "auth:"

	// AuthCacheTTL bounds how long a cached session survives without a
	// refresh; the datastore row remains the source of truth.
	AuthCacheTTL = 24 * time.Hour

	// TokenValidity is the lifetime of issued JWTs.
	TokenValidity = 24 * time.Hour
)
