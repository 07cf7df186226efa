package cache

import (
	"crypto/sha256"
	"fmt"
	"net/http"
	"sort"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

func New(cleanupInterval time.Duration) *Store {
	store := &Store{
		entries: gocache.New(gocache.NoExpiration, cleanupInterval),
		tags:    make(map[string]map[string]struct{}),
	}

	store.entries.OnEvicted(func(key string, _ interface{}) {
		store.untrack(key)
	})

	return store
}

// Key identifies a request by method, URL and the outgoing headers, so callers
// presenting different credentials never share an entry.
func Key(method string, URL string, header http.Header) string {
	names := make([]string, 0, len(header))

	for name := range header {
		names = append(names, name)
	}

	sort.Strings(names)

	digest := sha256.New()

	for _, name := range names {
		for _, value := range header[name] {
			fmt.Fprintf(digest, "%s: %s\n", http.CanonicalHeaderKey(name), value)
		}
	}

	return fmt.Sprintf("%s %s %x", method, URL, digest.Sum(nil))
}

func (store *Store) Get(key string) (*Entry, bool) {
	value, ok := store.entries.Get(key)

	if !ok {
		return nil, false
	}

	entry, ok := value.(*Entry)
	return entry, ok
}

func (store *Store) Set(key string, entry *Entry, ttl time.Duration, tags []string) {
	store.entries.Set(key, entry, ttl)

	store.lock.Lock()
	defer store.lock.Unlock()

	store.forget(key)

	for _, tag := range tags {
		if _, ok := store.tags[tag]; !ok {
			store.tags[tag] = make(map[string]struct{})
		}

		store.tags[tag][key] = struct{}{}
	}
}

func (store *Store) Delete(key string) {
	store.entries.Delete(key)
}

// InvalidateTag drops every entry stored under tag and returns how many were
// dropped.
func (store *Store) InvalidateTag(tag string) int {
	store.lock.Lock()
	keys := store.tags[tag]
	delete(store.tags, tag)
	store.lock.Unlock()

	dropped := 0

	for key := range keys {
		if _, ok := store.entries.Get(key); ok {
			dropped++
		}

		store.entries.Delete(key)
	}

	return dropped
}

func (store *Store) Len() int {
	return store.entries.ItemCount()
}

func (store *Store) Flush() {
	store.entries.Flush()

	store.lock.Lock()
	store.tags = make(map[string]map[string]struct{})
	store.lock.Unlock()
}

func (store *Store) untrack(key string) {
	store.lock.Lock()
	defer store.lock.Unlock()

	store.forget(key)
}

// forget drops key from the tag index. Callers hold the lock.
func (store *Store) forget(key string) {
	for tag, keys := range store.tags {
		delete(keys, key)

		if len(keys) == 0 {
			delete(store.tags, tag)
		}
	}
}
