// Package cache provides a time-boxed snapshot cache for fetched ratings.
//
// The core kenpom package never caches; this package is the external layer
// the CLI uses to avoid re-fetching kenpom.com on every invocation. One
// snapshot file holds the whole ratings table along with its fetch time, and
// a snapshot older than the configured TTL is treated as absent.
package cache
