// Package service defines interfaces for infrastructure collaborators the
// use cases depend on, keeping the application layer free of driver imports.
package service

import (
	"context"
	"errors"
)

// ErrCacheMiss is returned by Get when the region/key pair holds no live entry.
// An entry past its TTL is a miss regardless of any invalidation bookkeeping.
var ErrCacheMiss = errors.New("cache miss")

// Cache region names. A region is a named partition of the cache keyspace
// corresponding to one query shape. Write operations on the services evict or
// overwrite specific regions; the mapping is part of the service contracts.
const (
	RegionBusinessesByID          = "businesses-by-id"
	RegionBusinessesByCompanyName = "businesses-by-company-name"
	RegionAllBusinesses           = "all-businesses"
	RegionBusinessesByOwner       = "businesses-by-owner"
	RegionOwnersByID              = "owners-by-id"
	RegionAllOwners               = "all-owners"
)

// AllKey is the lookup key used for whole-collection snapshots within the
// aggregate regions (all-businesses, all-owners).
const AllKey = "all"

// Cache is a TTL-based key/value store holding entity snapshots. Values are
// opaque bytes; the services own (de)serialization. The cache never holds
// authoritative state: every entry is a copy populated from the record store
// or from a just-committed write.
type Cache interface {
	// Get returns the live snapshot stored under region/key, or ErrCacheMiss.
	Get(ctx context.Context, region, key string) ([]byte, error)

	// Set stores a snapshot under region/key with the driver's configured TTL.
	Set(ctx context.Context, region, key string, value []byte) error

	// Delete evicts the single entry under region/key. Evicting an absent
	// entry is not an error.
	Delete(ctx context.Context, region, key string) error

	// DeleteAll evicts every entry in the region.
	DeleteAll(ctx context.Context, region string) error
}
