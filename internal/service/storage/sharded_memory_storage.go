package storage

import (
	"fmt"
	"sync"
	"time"
)

// ShardedMemoryStorage spreads keys over multiple independently locked
// shards to cut contention under concurrent writers. Shard count is rounded
// up to a power of two so the shard mask is a single AND.
type ShardedMemoryStorage[K comparable, V any] struct {
	shards     []*shardData[K, V]
	shardMask  int
	keyToShard func(K) int
}

type shardData[K comparable, V any] struct {
	data       map[K]V
	mutex      sync.RWMutex
	dirty      map[K]bool
	lastUpdate map[K]time.Time
}

// NewShardedMemoryStorage creates a sharded store. A nil keyToShardFunc
// gets a default that handles string and integer keys directly and hashes
// everything else through its printed form.
func NewShardedMemoryStorage[K comparable, V any](shardCount int, keyToShardFunc func(K) int) *ShardedMemoryStorage[K, V] {
	realCount := 1
	for realCount < shardCount {
		realCount *= 2
	}

	shards := make([]*shardData[K, V], realCount)
	for i := range shards {
		shards[i] = &shardData[K, V]{
			data:       make(map[K]V),
			dirty:      make(map[K]bool),
			lastUpdate: make(map[K]time.Time),
		}
	}

	mask := realCount - 1
	if keyToShardFunc == nil {
		keyToShardFunc = func(key K) int {
			switch k := any(key).(type) {
			case string:
				return int(fnv1a(k)) & mask
			case int:
				return k & mask
			case int64:
				return int(k) & mask
			case uint64:
				return int(k) & mask
			default:
				return int(fnv1a(fmt.Sprintf("%v", key))) & mask
			}
		}
	}

	return &ShardedMemoryStorage[K, V]{
		shards:     shards,
		shardMask:  mask,
		keyToShard: keyToShardFunc,
	}
}

func fnv1a(s string) uint32 {
	var h uint32 = 2166136261
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= 16777619
	}
	return h
}

func (s *ShardedMemoryStorage[K, V]) getShard(key K) *shardData[K, V] {
	return s.shards[s.keyToShard(key)&s.shardMask]
}

// Set adds or replaces an object and marks it dirty.
func (s *ShardedMemoryStorage[K, V]) Set(key K, value V) {
	shard := s.getShard(key)

	shard.mutex.Lock()
	defer shard.mutex.Unlock()

	shard.data[key] = value
	shard.dirty[key] = true
	shard.lastUpdate[key] = time.Now()
}

// Get returns the object stored under key.
func (s *ShardedMemoryStorage[K, V]) Get(key K) (V, bool) {
	shard := s.getShard(key)

	shard.mutex.RLock()
	defer shard.mutex.RUnlock()

	value, exists := shard.data[key]
	return value, exists
}

// Delete removes an object, leaving the key dirty.
func (s *ShardedMemoryStorage[K, V]) Delete(key K) bool {
	shard := s.getShard(key)

	shard.mutex.Lock()
	defer shard.mutex.Unlock()

	if _, exists := shard.data[key]; !exists {
		return false
	}

	delete(shard.data, key)
	shard.dirty[key] = true
	return true
}

// GetAll merges every shard into one copied map.
func (s *ShardedMemoryStorage[K, V]) GetAll() map[K]V {
	result := make(map[K]V)
	for _, shard := range s.shards {
		shard.mutex.RLock()
		for k, v := range shard.data {
			result[k] = v
		}
		shard.mutex.RUnlock()
	}
	return result
}

// GetAllValues returns all stored values across shards.
func (s *ShardedMemoryStorage[K, V]) GetAllValues() []V {
	var result []V
	for _, shard := range s.shards {
		shard.mutex.RLock()
		for _, v := range shard.data {
			result = append(result, v)
		}
		shard.mutex.RUnlock()
	}
	return result
}

// GetDirty returns dirty entries across shards without clearing flags.
func (s *ShardedMemoryStorage[K, V]) GetDirty() map[K]V {
	result := make(map[K]V)
	for _, shard := range s.shards {
		shard.mutex.RLock()
		for k := range shard.dirty {
			if v, exists := shard.data[k]; exists {
				result[k] = v
			}
		}
		shard.mutex.RUnlock()
	}
	return result
}

// ClearDirty acknowledges persistence of the given keys.
func (s *ShardedMemoryStorage[K, V]) ClearDirty(keys []K) {
	for _, k := range keys {
		shard := s.getShard(k)
		shard.mutex.Lock()
		delete(shard.dirty, k)
		shard.mutex.Unlock()
	}
}

// ForEach runs fn over a snapshot of every shard, stopping when fn returns
// false.
func (s *ShardedMemoryStorage[K, V]) ForEach(fn func(key K, value V) bool) {
	for k, v := range s.GetAll() {
		if !fn(k, v) {
			return
		}
	}
}

// Count sums the shard sizes.
func (s *ShardedMemoryStorage[K, V]) Count() int {
	total := 0
	for _, shard := range s.shards {
		shard.mutex.RLock()
		total += len(shard.data)
		shard.mutex.RUnlock()
	}
	return total
}
