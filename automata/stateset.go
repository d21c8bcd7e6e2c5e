package automata

import (
	"encoding/binary"
	"math/bits"
	"strconv"
	"strings"
)

// StateSet is a set of state handles, backed by a bitset. The zero value is an
// empty set, ready to use. Sets grow as handles are added.
//
// Operations on sets are destructive, i.e. Union modifies the receiver. Clients
// use Clone to keep an unmodified copy.
type StateSet struct {
	words []uint64
}

// NewStateSet creates a set containing the given handles.
func NewStateSet(handles ...Handle) *StateSet {
	s := &StateSet{}
	for _, h := range handles {
		s.Add(h)
	}
	return s
}

// Add puts h into the set. Negative handles are ignored.
func (s *StateSet) Add(h Handle) {
	if h < 0 {
		return
	}
	w := int(h) / 64
	if w >= len(s.words) {
		words := make([]uint64, w+1)
		copy(words, s.words)
		s.words = words
	}
	s.words[w] |= 1 << (uint(h) % 64)
}

// Contains is true if h is a member of s.
func (s *StateSet) Contains(h Handle) bool {
	if s == nil || h < 0 {
		return false
	}
	w := int(h) / 64
	return w < len(s.words) && s.words[w]&(1<<(uint(h)%64)) != 0
}

// Union adds all members of other to s. It returns true if s changed.
func (s *StateSet) Union(other *StateSet) bool {
	if other == nil {
		return false
	}
	if len(other.words) > len(s.words) {
		words := make([]uint64, len(other.words))
		copy(words, s.words)
		s.words = words
	}
	changed := false
	for i, w := range other.words {
		if s.words[i]|w != s.words[i] {
			s.words[i] |= w
			changed = true
		}
	}
	return changed
}

// Intersects is true if s and other have at least one member in common.
func (s *StateSet) Intersects(other *StateSet) bool {
	if s == nil || other == nil {
		return false
	}
	limit := min(len(s.words), len(other.words))
	for i := 0; i < limit; i++ {
		if s.words[i]&other.words[i] != 0 {
			return true
		}
	}
	return false
}

// IsEmpty is true if s has no members.
func (s *StateSet) IsEmpty() bool {
	if s == nil {
		return true
	}
	for _, w := range s.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Len returns the number of members.
func (s *StateSet) Len() int {
	if s == nil {
		return 0
	}
	n := 0
	for _, w := range s.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// Each calls f for every member, in increasing order.
func (s *StateSet) Each(f func(Handle)) {
	if s == nil {
		return
	}
	for i, w := range s.words {
		for w != 0 {
			bit := bits.TrailingZeros64(w)
			f(Handle(i*64 + bit))
			w &^= 1 << bit
		}
	}
}

// Handles returns the members in increasing order.
func (s *StateSet) Handles() []Handle {
	hs := make([]Handle, 0, s.Len())
	s.Each(func(h Handle) {
		hs = append(hs, h)
	})
	return hs
}

// Clone returns a copy of s.
func (s *StateSet) Clone() *StateSet {
	if s == nil {
		return &StateSet{}
	}
	return &StateSet{words: append([]uint64(nil), s.words...)}
}

// Equals is true if s and other have the same members.
func (s *StateSet) Equals(other *StateSet) bool {
	return s.Key() == other.Key()
}

// Key returns a string identifying the members of s. Two sets have the same key
// if and only if they have the same members.
func (s *StateSet) Key() string {
	if s == nil {
		return ""
	}
	n := len(s.words)
	for n > 0 && s.words[n-1] == 0 { // trailing zero words do not count
		n--
	}
	var sb strings.Builder
	sb.Grow(n * 8)
	var buf [8]byte
	for _, w := range s.words[:n] {
		binary.LittleEndian.PutUint64(buf[:], w)
		sb.Write(buf[:])
	}
	return sb.String()
}

func (s *StateSet) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	first := true
	s.Each(func(h Handle) {
		if !first {
			sb.WriteString(",")
		}
		first = false
		sb.WriteString(strconv.Itoa(int(h)))
	})
	sb.WriteString("}")
	return sb.String()
}
