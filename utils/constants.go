package utils

import "time"

const (
	// AuthCachePrefix prefixes Redis keys holding hashed auth tokens.
	AuthCachePrefix = "auth:"

	// AuthTokenTTL is how long an issued token and its cache entry live.
	AuthTokenTTL = 72 * time.Hour

	// AuthCacheTTL is the sliding TTL for cached token hashes.
	AuthCacheTTL = time.Hour
)
