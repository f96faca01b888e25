package xladevices

import "math/bits"

// DeviceId identifies one device within a DeviceInfoCache instance. Ids are
// assigned sequentially as names are interned and are never reused or
// renumbered; beyond iteration order (= interning order) their numeric value
// carries no meaning. An id is only meaningful together with the cache that
// produced it.
type DeviceId int32

// Index returns the id as a plain int, e.g. to index a parallel slice.
func (id DeviceId) Index() int { return int(id) }

const wordSize = 64

// DeviceSet is a growable bitset of DeviceIds. The zero value is an empty
// set ready to use.
//
// DeviceSet is not safe for concurrent mutation; see the package
// documentation for the concurrency contract.
type DeviceSet struct {
	storage []uint64
}

// Insert adds id to the set, growing the backing storage if needed.
// Inserting an id already present is a no-op.
func (s *DeviceSet) Insert(id DeviceId) {
	wordIndex := int(id) / wordSize
	bitIndex := int(id) % wordSize
	if wordIndex >= len(s.storage) {
		s.storage = append(s.storage, make([]uint64, wordIndex+1-len(s.storage))...)
	}
	s.storage[wordIndex] |= uint64(1) << bitIndex
}

// UnionWith adds every id present in other to s, in place.
func (s *DeviceSet) UnionWith(other *DeviceSet) {
	if len(other.storage) > len(s.storage) {
		s.storage = append(s.storage, make([]uint64, len(other.storage)-len(s.storage))...)
	}
	for i, word := range other.storage {
		s.storage[i] |= word
	}
}

// IsEmpty returns whether the set holds no ids.
func (s *DeviceSet) IsEmpty() bool {
	for _, word := range s.storage {
		if word != 0 {
			return false
		}
	}
	return true
}

// ForEach calls visit for each id in the set, in ascending id order.
// If visit returns false the traversal stops there. The set must not be
// mutated while ForEach runs.
func (s *DeviceSet) ForEach(visit func(id DeviceId) bool) {
	for wordIndex, word := range s.storage {
		for word != 0 {
			bitIndex := bits.TrailingZeros64(word)
			if !visit(DeviceId(wordIndex*wordSize + bitIndex)) {
				return
			}
			word &= word - 1 // Clear the lowest set bit.
		}
	}
}
