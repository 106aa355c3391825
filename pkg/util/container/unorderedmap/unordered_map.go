// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

// Package unorderedmap implements an open-hashing map.
//
// Entries live in insertion order in a backing list. The bucket table is a
// vector of small lists, each holding positions into the backing list. An
// entry belongs to bucket hash(key) mod BucketCount(). Rehashing rebuilds the
// bucket lists only; entries never move in the backing list, so positions
// handed out by Find remain valid across rehashes and across insertions and
// removals of other entries.
package unorderedmap

import (
	"iter"
	"math"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
	"github.com/cockroachdb/stl/pkg/util/container/list"
	"github.com/cockroachdb/stl/pkg/util/container/vector"
	"github.com/cockroachdb/stl/pkg/util/errorutil"
)

// HashFunc maps a key to an unsigned hash. It must be deterministic for equal
// keys.
type HashFunc[K any] func(K) uint64

// Pos designates an entry of a Map.
type Pos = list.Pos

// Entry is a key/value pair stored in a Map.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

const (
	// DefaultCapacity is the bucket count of a map constructed without
	// WithCapacity.
	DefaultCapacity = 1
	// DefaultMaxLoadFactor is the load factor above which an insertion
	// doubles the bucket count.
	DefaultMaxLoadFactor = 1.5
)

type bucket = *list.List[Pos]

// Map is an unordered map from K to V. It must be constructed with New or
// FromEntries.
type Map[K comparable, V any] struct {
	hash    HashFunc[K]
	entries list.List[Entry[K, V]]
	buckets vector.Vector[bucket]

	maxLoadFactor float64
	onRehash      func(oldBuckets, newBuckets int)
}

type options struct {
	capacity      int
	maxLoadFactor float64
	onRehash      func(oldBuckets, newBuckets int)
}

// Option configures a Map at construction.
type Option func(*options)

// WithCapacity sets the initial bucket count. Values below 1 are treated
// as 1.
func WithCapacity(n int) Option {
	return func(o *options) { o.capacity = n }
}

// WithMaxLoadFactor sets the maximum load factor. It must be positive.
func WithMaxLoadFactor(f float64) Option {
	return func(o *options) { o.maxLoadFactor = f }
}

// WithRehashHook registers fn to be called after every rehash with the old
// and new bucket counts.
func WithRehashHook(fn func(oldBuckets, newBuckets int)) Option {
	return func(o *options) { o.onRehash = fn }
}

func makeOptions(opts []Option) options {
	o := options{capacity: DefaultCapacity, maxLoadFactor: DefaultMaxLoadFactor}
	for _, opt := range opts {
		opt(&o)
	}
	checkMaxLoadFactor(o.maxLoadFactor)
	return o
}

func checkMaxLoadFactor(f float64) {
	if !(f > 0) || math.IsInf(f, 0) {
		panic(errors.AssertionFailedf("max load factor must be positive and finite, got %v", errors.Safe(f)))
	}
}

// New returns an empty map hashing keys with hash.
func New[K comparable, V any](hash HashFunc[K], opts ...Option) *Map[K, V] {
	if hash == nil {
		panic(errors.AssertionFailedf("nil hash function"))
	}
	o := makeOptions(opts)
	m := &Map[K, V]{
		hash:          hash,
		maxLoadFactor: o.maxLoadFactor,
		onRehash:      o.onRehash,
	}
	m.buckets = makeBuckets(max(o.capacity, 1))
	return m
}

// FromEntries returns a map holding entries. The bucket count is
// ceil(len(entries)/maxLoadFactor), but at least 1 and at least the
// WithCapacity option. When a key appears more than once, its first
// occurrence wins.
func FromEntries[K comparable, V any](
	hash HashFunc[K], entries []Entry[K, V], opts ...Option,
) *Map[K, V] {
	o := makeOptions(opts)
	n := int(math.Ceil(float64(len(entries)) / o.maxLoadFactor))
	m := New[K, V](hash, append(opts[:len(opts):len(opts)], WithCapacity(max(n, o.capacity)))...)
	for _, e := range entries {
		m.Insert(e.Key, e.Value)
	}
	return m
}

func makeBuckets(n int) vector.Vector[bucket] {
	var b vector.Vector[bucket]
	b.Reserve(n)
	for i := 0; i < n; i++ {
		b.PushBack(list.New[Pos]())
	}
	return b
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int { return m.entries.Len() }

// Empty returns true iff the map holds no entries.
func (m *Map[K, V]) Empty() bool { return m.entries.Empty() }

// BucketCount returns the number of buckets.
func (m *Map[K, V]) BucketCount() int { return m.buckets.Len() }

// Bucket returns the index of the bucket k belongs to.
func (m *Map[K, V]) Bucket(k K) int {
	return int(m.hash(k) % uint64(m.buckets.Len()))
}

// BucketSize returns the number of entries in bucket n.
func (m *Map[K, V]) BucketSize(n int) int {
	return m.buckets.At(n).Len()
}

// LoadFactor returns the average number of entries per bucket.
func (m *Map[K, V]) LoadFactor() float64 {
	return float64(m.Len()) / float64(m.BucketCount())
}

// MaxLoadFactor returns the load factor above which an insertion doubles the
// bucket count.
func (m *Map[K, V]) MaxLoadFactor() float64 { return m.maxLoadFactor }

// SetMaxLoadFactor changes the maximum load factor. Existing entries are not
// rehashed; the new value applies from the next insertion.
func (m *Map[K, V]) SetMaxLoadFactor(f float64) {
	checkMaxLoadFactor(f)
	m.maxLoadFactor = f
}

// HashFunction returns the map's hash function.
func (m *Map[K, V]) HashFunction() HashFunc[K] { return m.hash }

// find returns the bucket of k and the position of k's entry, or End.
func (m *Map[K, V]) find(k K) (bucket, Pos) {
	b := m.buckets.At(m.Bucket(k))
	for _, p := range b.All() {
		if m.entries.Ptr(p).Key == k {
			return b, p
		}
	}
	return b, m.End()
}

// Find returns the position of k's entry, or End if k is absent.
func (m *Map[K, V]) Find(k K) Pos {
	_, p := m.find(k)
	return p
}

// Contains returns true iff k is present.
func (m *Map[K, V]) Contains(k K) bool {
	return m.Find(k) != m.End()
}

// Count returns 1 if k is present and 0 otherwise.
func (m *Map[K, V]) Count(k K) int {
	if m.Contains(k) {
		return 1
	}
	return 0
}

// insert appends a new entry for k, which must be absent from b, and
// rehashes if the load factor is exceeded.
func (m *Map[K, V]) insert(b bucket, k K, v V) Pos {
	p := m.entries.PushBack(Entry[K, V]{Key: k, Value: v})
	b.PushBack(p)
	if float64(m.Len()) > m.maxLoadFactor*float64(m.BucketCount()) {
		m.Rehash(m.BucketCount() * 2)
	}
	return p
}

// Insert adds k with value v unless k is already present, in which case the
// map is unchanged. It returns true iff an entry was added.
func (m *Map[K, V]) Insert(k K, v V) bool {
	b, p := m.find(k)
	if p != m.End() {
		return false
	}
	m.insert(b, k, v)
	return true
}

// InsertOrAssign adds k with value v, or overwrites the value of an existing
// entry in place. It returns true iff an entry was added.
func (m *Map[K, V]) InsertOrAssign(k K, v V) bool {
	b, p := m.find(k)
	if p != m.End() {
		m.entries.Ptr(p).Value = v
		return false
	}
	m.insert(b, k, v)
	return true
}

// At returns a pointer to the value of k. The pointer is valid until the
// next insertion.
func (m *Map[K, V]) At(k K) (*V, error) {
	_, p := m.find(k)
	if p == m.End() {
		return nil, errorutil.KeyNotFound(k)
	}
	return &m.entries.Ptr(p).Value, nil
}

// Index returns a pointer to the value of k, first inserting k with the zero
// value if it is absent. The pointer is valid until the next insertion.
func (m *Map[K, V]) Index(k K) *V {
	b, p := m.find(k)
	if p == m.End() {
		var zero V
		p = m.insert(b, k, zero)
	}
	return &m.entries.Ptr(p).Value
}

// unlink removes the entry at p, which must be live, from bucket b and from
// the backing list. An entry missing from its bucket is an assertion failure.
func (m *Map[K, V]) unlink(b bucket, p Pos) error {
	for bp, q := range b.All() {
		if q == p {
			if err := b.Erase(bp); err != nil {
				return errors.NewAssertionErrorWithWrappedErrf(err, "bucket out of sync")
			}
			return m.entries.Erase(p)
		}
	}
	return errors.AssertionFailedf("bucket out of sync: entry %d missing", errors.Safe(p))
}

// Erase removes the entry at p.
func (m *Map[K, V]) Erase(p Pos) error {
	if !m.entries.Contains(p) {
		return errors.Wrap(
			errors.Mark(errors.Newf("position %d is not an entry", errors.Safe(p)), errorutil.ErrOutOfRange),
			"map erase",
		)
	}
	return m.unlink(m.buckets.At(m.Bucket(m.entries.Ptr(p).Key)), p)
}

// EraseKey removes k's entry, if any, and returns the number of entries
// removed. It panics with an assertion failure if the bucket table is out of
// sync with the entries.
func (m *Map[K, V]) EraseKey(k K) int {
	b, p := m.find(k)
	if p == m.End() {
		return 0
	}
	if err := m.unlink(b, p); err != nil {
		panic(err)
	}
	return 1
}

// Rehash rebuilds the bucket table with n buckets, re-indexing every entry
// in insertion order. Values of n below 1 are treated as 1. The load factor
// is not re-checked.
func (m *Map[K, V]) Rehash(n int) {
	n = max(n, 1)
	old := m.BucketCount()
	buckets := makeBuckets(n)
	for p, e := range m.entries.All() {
		buckets.At(int(m.hash(e.Key) % uint64(n))).PushBack(p)
	}
	m.buckets = buckets
	if m.onRehash != nil {
		m.onRehash(old, n)
	}
}

// Reserve rehashes, if needed, so that count entries fit without exceeding
// the maximum load factor.
func (m *Map[K, V]) Reserve(count int) {
	n := int(math.Ceil(float64(count) / m.maxLoadFactor))
	if n > m.BucketCount() {
		m.Rehash(n)
	}
}

// Clear removes every entry. The bucket count is kept.
func (m *Map[K, V]) Clear() {
	m.entries.Clear()
	for b := range m.buckets.Values() {
		b.Clear()
	}
}

// Begin returns the position of the first entry in insertion order.
func (m *Map[K, V]) Begin() Pos { return m.entries.Front() }

// End returns the position one past the last entry.
func (m *Map[K, V]) End() Pos { return m.entries.End() }

// Next returns the position following p in insertion order.
func (m *Map[K, V]) Next(p Pos) Pos { return m.entries.Next(p) }

// Key returns the key of the entry at p.
func (m *Map[K, V]) Key(p Pos) K { return m.entries.Ptr(p).Key }

// Value returns a pointer to the value of the entry at p. The pointer is
// valid until the next insertion.
func (m *Map[K, V]) Value(p Pos) *V { return &m.entries.Ptr(p).Value }

// All iterates over the entries in insertion order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range m.entries.All() {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// Buckets returns the keys of every bucket, in bucket order.
func (m *Map[K, V]) Buckets() [][]K {
	res := make([][]K, 0, m.BucketCount())
	for b := range m.buckets.Values() {
		keys := make([]K, 0, b.Len())
		for p := range b.Values() {
			keys = append(keys, m.entries.Ptr(p).Key)
		}
		res = append(res, keys)
	}
	return res
}

// Clone returns a deep copy of m. Positions valid in m designate the same
// entries in the clone.
func (m *Map[K, V]) Clone() *Map[K, V] {
	c := &Map[K, V]{
		hash:          m.hash,
		entries:       *m.entries.Clone(),
		maxLoadFactor: m.maxLoadFactor,
		onRehash:      m.onRehash,
	}
	c.buckets.Reserve(m.BucketCount())
	for b := range m.buckets.Values() {
		c.buckets.PushBack(b.Clone())
	}
	return c
}

// Move transfers m's contents to a new map. m is left empty with a single
// bucket and its configuration unchanged.
func (m *Map[K, V]) Move() *Map[K, V] {
	res := &Map[K, V]{
		hash:          m.hash,
		entries:       *m.entries.Move(),
		buckets:       *m.buckets.Move(),
		maxLoadFactor: m.maxLoadFactor,
		onRehash:      m.onRehash,
	}
	m.buckets = makeBuckets(1)
	return res
}

// Swap exchanges the contents and configuration of m and o.
func (m *Map[K, V]) Swap(o *Map[K, V]) {
	*m, *o = *o, *m
}

// EqualFunc reports whether m and o hold the same keys and eq holds for the
// values of each key. Iteration order is not compared.
func (m *Map[K, V]) EqualFunc(o *Map[K, V], eq func(a, b V) bool) bool {
	if m.Len() != o.Len() {
		return false
	}
	for _, e := range m.entries.All() {
		_, p := o.find(e.Key)
		if p == o.End() || !eq(e.Value, o.entries.Ptr(p).Value) {
			return false
		}
	}
	return true
}

// Equal reports whether a and b hold the same key/value pairs.
func Equal[K, V comparable](a, b *Map[K, V]) bool {
	return a.EqualFunc(b, func(x, y V) bool { return x == y })
}

// SafeFormat implements the redact.SafeFormatter interface. Entries are
// printed in insertion order.
func (m *Map[K, V]) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("sz(%d) buckets(%d) {", redact.Safe(m.Len()), redact.Safe(m.BucketCount()))
	i := 0
	for _, e := range m.entries.All() {
		if i > 0 {
			w.SafeRune(' ')
		}
		w.Printf("%v:%v", e.Key, e.Value)
		i++
	}
	w.SafeRune('}')
}

// String implements the fmt.Stringer interface.
func (m *Map[K, V]) String() string {
	return redact.StringWithoutMarkers(m)
}
