package storage

// Storage is a generic keyed object store with dirty tracking. Mutations
// mark keys dirty; a persistence pass drains GetDirty and acknowledges with
// ClearDirty once the writes land.
type Storage[K comparable, V any] interface {
	Set(key K, value V)
	Get(key K) (V, bool)
	Delete(key K) bool
	GetAll() map[K]V
	GetAllValues() []V
	GetDirty() map[K]V
	ClearDirty(keys []K)
	ForEach(fn func(key K, value V) bool)
	Count() int
}
