package cache

import (
	"sync"

	gocache "github.com/patrickmn/go-cache"
)

// Store keeps successful payloads for the revalidation window of the
// directive that produced them, indexed by tag for invalidation.
type Store struct {
	entries *gocache.Cache
	tags    map[string]map[string]struct{}
	lock    sync.Mutex
}

type Entry struct {
	StatusCode int
	Payload    []byte
}
