package config

import "time"

// CacheConfig controls the Redis response cache in front of GET /slots.
// The slot listing is read by every visitor on every page load while the
// underlying table changes only on add-slot, book and cancel, so a short
// TTL absorbs nearly all of the read traffic. Bookings made inside the
// TTL window surface once the entry expires.
type CacheConfig struct {
	Enabled      bool          // master switch; also off when Redis is absent
	TTL          time.Duration // lifetime of a cached response
	Prefix       string        // key namespace
	MaxBodyBytes int           // responses larger than this are not cached
}

// LoadCacheConfig reads CACHE_* environment variables with defaults
// suited to the slot listing (5s TTL, 1 MiB cap).
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled:      envBool("CACHE_ENABLED", true),
		TTL:          envDur("CACHE_TTL", 5*time.Second),
		Prefix:       envStr("CACHE_PREFIX", "cache"),
		MaxBodyBytes: envInt("CACHE_MAX_BODY_BYTES", 1<<20),
	}
}
