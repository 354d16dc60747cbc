package encode

import (
	"reflect"

	"github.com/jksn-go/jksn/errs"
)

// identitySet tracks in-progress Array/Map containers by backing-array
// identity, so that a container that contains itself is rejected rather
// than recursed into forever (spec §4.2 step 1, design note §9.3).
//
// Per the spec's own open question, only Array and Map identity is
// tracked; Text/Blob values have no container semantics to cycle through.
type identitySet struct {
	enabled bool
	active  map[uintptr]bool
}

func newIdentitySet(enabled bool) *identitySet {
	return &identitySet{enabled: enabled, active: make(map[uintptr]bool)}
}

func (s *identitySet) enter(ptr uintptr, ok bool) error {
	if !s.enabled || !ok {
		return nil
	}
	if s.active[ptr] {
		return errs.ErrCircularReference
	}
	s.active[ptr] = true

	return nil
}

func (s *identitySet) leave(ptr uintptr, ok bool) {
	if !s.enabled || !ok {
		return
	}
	delete(s.active, ptr)
}

// sliceIdentity reports the backing-array address of a slice value, used as
// its identity for cycle detection. Nil or empty slices report ok=false:
// they carry no elements, so they cannot participate in a cycle.
func sliceIdentity(v any) (ptr uintptr, ok bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice || rv.IsNil() || rv.Len() == 0 {
		return 0, false
	}

	return rv.Pointer(), true
}
