// Package util has helpers common to the dataset implementations.
package util

import (
	"errors"
	"sort"
)

// OrderedMap is a string-keyed map which remembers the order keys were
// added in. It is used for attribute maps, where insertion order is
// the order attributes appear in the source file.
type OrderedMap struct {
	keys   []string
	values map[string]interface{}
}

var (
	ErrorKeysDontMatchValues = errors.New("keys don't match values")
)

// NewOrderedMap creates an ordered map from keys and values, which must
// correspond. Both may be nil or empty.
func NewOrderedMap(keys []string, values map[string]interface{}) (*OrderedMap, error) {
	if len(keys) != len(values) {
		return nil, ErrorKeysDontMatchValues
	}
	mapKeys := make([]string, 0, len(values))
	for k := range values {
		mapKeys = append(mapKeys, k)
	}
	sort.Strings(mapKeys)

	sortedKeys := make([]string, len(keys))
	copy(sortedKeys, keys)
	sort.Strings(sortedKeys)

	for i := range sortedKeys {
		if mapKeys[i] != sortedKeys[i] {
			return nil, ErrorKeysDontMatchValues
		}
	}
	if values == nil {
		values = map[string]interface{}{}
	}

	orderedKeys := make([]string, 0, len(keys))
	orderedKeys = append(orderedKeys, keys...)

	return &OrderedMap{
		keys:   orderedKeys,
		values: values}, nil
}

// Add appends a new key and value, or replaces the value if the key is
// already present.
func (om *OrderedMap) Add(name string, val interface{}) {
	if _, has := om.values[name]; !has {
		om.keys = append(om.keys, name)
	}
	om.values[name] = val
}

func (om *OrderedMap) Get(key string) (val interface{}, has bool) {
	val, has = om.values[key]
	return
}

func (om *OrderedMap) Keys() []string {
	return om.keys
}

func (om *OrderedMap) Len() int {
	return len(om.keys)
}
