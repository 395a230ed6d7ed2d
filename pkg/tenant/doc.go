// Package tenant loads and caches tenant records.
//
// The Provider interface abstracts the source (postgres in production, a
// stub in tests); CachedProvider adds a short TTL cache so hot paths avoid a
// round trip per request while tenant deactivation still propagates quickly.
package tenant
