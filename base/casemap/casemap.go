// Copyright (c) 2026, CTL Kit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package casemap implements an ordered map with case-insensitive string
keys. Lookup, deletion, and equality use the lower-cased key, while the
originally supplied casing is retained and returned on iteration.

The slice structure holds the original Key and Value for items as they
are added, while the index map is keyed by the lower-cased key, so there
is at most one entry per lower-cased key and the last write wins.
*/
package casemap

import (
	"fmt"
	"slices"
	"strings"
)

// ErrKeyNotFound is returned by [Map.Get] and [Map.Delete] for a key
// that is not present under any casing.
var ErrKeyNotFound = fmt.Errorf("casemap: key not found")

// KeyValue represents a key-value pair, with the key in its original
// casing.
type KeyValue[V any] struct {
	Key   string
	Value V
}

// Map is an ordered map with case-insensitive string keys. The zero
// value is ready to use.
type Map[V any] struct {

	// Order is an ordered list of values and original-cased keys,
	// in the order added.
	Order []KeyValue[V]

	// index maps the lower-cased key to its position in Order.
	index map[string]int
}

// New returns a new [Map].
func New[V any]() *Map[V] {
	return &Map[V]{index: make(map[string]int)}
}

// Init initializes the index map if it isn't already.
func (cm *Map[V]) Init() {
	if cm.index == nil {
		cm.index = make(map[string]int)
	}
}

// Set sets the given key to the given value. If the key is already
// present under any casing, its value is replaced in place and the
// stored casing is updated to the given one.
func (cm *Map[V]) Set(key string, val V) {
	cm.Init()
	lk := strings.ToLower(key)
	if idx, has := cm.index[lk]; has {
		cm.Order[idx] = KeyValue[V]{Key: key, Value: val}
		return
	}
	cm.index[lk] = len(cm.Order)
	cm.Order = append(cm.Order, KeyValue[V]{Key: key, Value: val})
}

// Get returns the value for the given key under any casing, or
// [ErrKeyNotFound] wrapped with the key if it is not present.
func (cm *Map[V]) Get(key string) (V, error) {
	idx, ok := cm.index[strings.ToLower(key)]
	if !ok {
		var zv V
		return zv, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	return cm.Order[idx].Value, nil
}

// Value returns the value for the given key under any casing, with
// false returned for a missing key.
func (cm *Map[V]) Value(key string) (V, bool) {
	idx, ok := cm.index[strings.ToLower(key)]
	if !ok {
		var zv V
		return zv, false
	}
	return cm.Order[idx].Value, true
}

// Has returns whether the given key is present under any casing.
func (cm *Map[V]) Has(key string) bool {
	_, ok := cm.index[strings.ToLower(key)]
	return ok
}

// Delete deletes the item with the given key under any casing,
// returning [ErrKeyNotFound] wrapped with the key if it is not present.
// It renumbers the index map above the deleted item.
func (cm *Map[V]) Delete(key string) error {
	lk := strings.ToLower(key)
	idx, ok := cm.index[lk]
	if !ok {
		return fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	for o := idx + 1; o < len(cm.Order); o++ {
		cm.index[strings.ToLower(cm.Order[o].Key)] = o - 1
	}
	delete(cm.index, lk)
	cm.Order = slices.Delete(cm.Order, idx, idx+1)
	return nil
}

// Len returns the number of items in the map, counting distinct
// lower-cased keys only.
func (cm *Map[V]) Len() int {
	if cm == nil {
		return 0
	}
	return len(cm.Order)
}

// Keys returns the keys in insertion order, in their original casing.
func (cm *Map[V]) Keys() []string {
	kl := make([]string, cm.Len())
	for i, kv := range cm.Order {
		kl[i] = kv.Key
	}
	return kl
}

// Values returns the values in insertion order.
func (cm *Map[V]) Values() []V {
	vl := make([]V, cm.Len())
	for i, kv := range cm.Order {
		vl[i] = kv.Value
	}
	return vl
}

// Copy returns a shallow copy of the map: the key storage is
// independent, while referenced values are shared.
func (cm *Map[V]) Copy() *Map[V] {
	nm := New[V]()
	for _, kv := range cm.Order {
		nm.Set(kv.Key, kv.Value)
	}
	return nm
}

// Equal returns whether the two maps hold the same set of
// (lower-cased key, value) pairs, regardless of original casing or
// insertion order. Values are compared with the given function.
func Equal[V any](a, b *Map[V], eq func(av, bv V) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	for _, kv := range a.Order {
		bv, ok := b.Value(kv.Key)
		if !ok || !eq(kv.Value, bv) {
			return false
		}
	}
	return true
}

// String returns a representation of the map with the original key
// casing, in insertion order.
func (cm *Map[V]) String() string {
	return fmt.Sprintf("%v", cm.Order)
}
