// Package memory holds the process-wide cart state. Carts are deliberately
// not persisted: the map is created empty at startup and lost on restart.
package memory

import (
	"hash/fnv"
	"strings"
	"sync"

	"github.com/shoplite/store-api/internal/core/domain"
)

const shardCount = 16

// CartStore maps identity -> ordered cart entries. The map is sharded by a
// hash of the identity so operations on distinct identities rarely contend,
// while operations on the same identity always serialize on one mutex.
// Methods never perform I/O, so no lock is ever held across a collaborator
// call.
type CartStore struct {
	shards [shardCount]cartShard
}

type cartShard struct {
	mu    sync.Mutex
	carts map[string][]domain.CartEntry
}

func NewCartStore() *CartStore {
	s := &CartStore{}
	for i := range s.shards {
		s.shards[i].carts = make(map[string][]domain.CartEntry)
	}
	return s
}

// shard maps an identity deterministically to its shard.
func (s *CartStore) shard(identity string) *cartShard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(identity))
	return &s.shards[h.Sum32()%shardCount]
}

// Items returns a copy of the identity's cart in insertion order. An unseen
// identity has an empty cart; Items never fails.
func (s *CartStore) Items(identity string) []domain.CartEntry {
	sh := s.shard(identity)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	entries := sh.carts[identity]
	out := make([]domain.CartEntry, len(entries))
	copy(out, entries)
	return out
}

// Append adds entry to the end of the identity's cart, creating the cart on
// first use. Duplicate titles are kept as separate entries.
func (s *CartStore) Append(identity string, entry domain.CartEntry) {
	sh := s.shard(identity)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	sh.carts[identity] = append(sh.carts[identity], entry)
}

// RemoveFirst removes the first entry whose title equals title,
// case-insensitively. Later duplicates stay. Returns
// domain.ErrCartItemNotFound when no entry matches.
func (s *CartStore) RemoveFirst(identity, title string) error {
	sh := s.shard(identity)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	entries := sh.carts[identity]
	for i, entry := range entries {
		if strings.EqualFold(entry.Title, title) {
			sh.carts[identity] = append(entries[:i:i], entries[i+1:]...)
			return nil
		}
	}
	return domain.ErrCartItemNotFound
}

// Clear empties the identity's cart. Idempotent, including for identities
// never seen before.
func (s *CartStore) Clear(identity string) {
	sh := s.shard(identity)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	delete(sh.carts, identity)
}
