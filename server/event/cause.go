package event

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
)

var (
	// ErrNilCauseElement is returned by NewCause and CauseFromNullable when one
	// of the objects passed is nil. A Cause never holds nil elements.
	ErrNilCauseElement = errors.New("cause element is nil")
	// ErrEmptyCause is returned by NewCause when no objects are passed. A
	// present Cause holds at least one element; use EmptyCause to represent the
	// absence of a known cause.
	ErrEmptyCause = errors.New("cause must hold at least one element")
)

// Cause records the ordered history of objects that led to something happening
// in a world, from the least immediate cause at index 0 (the root) to the most
// immediate cause at the end. If a block of sand is placed where it drops, the
// falling sand entity it creates will eventually place another block of sand:
// the place of that final block carries the cause chain
// [sand block, falling sand entity].
//
// Chains are best effort: a lever powering a long redstone line that launches
// TNT is usually not traced back to the lever. A Cause may therefore also be
// empty, meaning no cause is known at all.
//
// Cause is an immutable value. It is created through EmptyCause, NewCause or
// CauseFromNullable and is never modified afterwards, making it safe for
// concurrent use without synchronisation.
type Cause struct {
	elems   []any
	present bool
}

// EmptyCause returns the Cause that holds no elements. All empty Cause values
// are equal to each other and hash to the same fixed constant.
func EmptyCause() Cause {
	return Cause{}
}

// NewCause returns a Cause holding the objects passed in causal order, root
// first. The objects are copied, so the caller may reuse its slice afterwards.
// NewCause returns ErrEmptyCause if no objects are passed and an error
// wrapping ErrNilCauseElement if any of the objects is nil.
func NewCause(objects ...any) (Cause, error) {
	if len(objects) == 0 {
		return Cause{}, ErrEmptyCause
	}
	elems := make([]any, len(objects))
	for i, o := range objects {
		if o == nil {
			return Cause{}, fmt.Errorf("cause element %v: %w", i, ErrNilCauseElement)
		}
		elems[i] = o
	}
	return Cause{elems: elems, present: true}, nil
}

// CauseFromNullable is the lenient counterpart of NewCause: passing no objects
// at all yields the empty Cause instead of an error. Individual elements must
// still be non-nil.
func CauseFromNullable(objects ...any) (Cause, error) {
	if len(objects) == 0 {
		return Cause{}, nil
	}
	return NewCause(objects...)
}

// Empty checks if the Cause holds no elements. An empty Cause may mean the
// event did not originate from any tracked interaction, or simply that the
// cause is not known.
func (c Cause) Empty() bool {
	return !c.present
}

// Root returns the root of the Cause, the element at index 0. The second
// return value is false if the Cause is empty.
func (c Cause) Root() (any, bool) {
	if !c.present {
		return nil, false
	}
	return c.elems[0], true
}

// All returns a copy of all elements of the Cause in order. It returns nil for
// the empty Cause. Mutating the returned slice does not affect the Cause.
func (c Cause) All() []any {
	if !c.present {
		return nil
	}
	out := make([]any, len(c.elems))
	copy(out, c.elems)
	return out
}

// First returns the first element of the Cause assignable to T, scanning from
// the root forward. The second return value is false if no element matches.
func First[T any](c Cause) (T, bool) {
	for _, e := range c.elems {
		if v, ok := e.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Last returns the last element of the Cause assignable to T, scanning from
// the most immediate cause backward. The second return value is false if no
// element matches.
func Last[T any](c Cause) (T, bool) {
	for i := len(c.elems) - 1; i >= 0; i-- {
		if v, ok := c.elems[i].(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// AllOf returns every element of the Cause assignable to T, preserving their
// relative order. It returns nil if no element matches.
func AllOf[T any](c Cause) []T {
	var out []T
	for _, e := range c.elems {
		if v, ok := e.(T); ok {
			out = append(out, v)
		}
	}
	return out
}

// Equal checks if two Cause values are equal: either both are empty, or both
// hold element sequences that are pairwise deeply equal in the same order.
func (c Cause) Equal(other Cause) bool {
	if !c.present || !other.present {
		return c.present == other.present
	}
	if len(c.elems) != len(other.elems) {
		return false
	}
	for i := range c.elems {
		if !reflect.DeepEqual(c.elems[i], other.elems[i]) {
			return false
		}
	}
	return true
}

// emptyCauseHash is the fixed hash of the empty Cause.
const emptyCauseHash = 0x39e8a5b

// Hash returns a deterministic hash of the Cause, consistent with Equal:
// causes that compare equal hash equally, element order influences the result
// and the empty Cause hashes to a fixed constant. Pointers inside elements are
// dereferenced, matching the deep comparison Equal performs.
func (c Cause) Hash() uint64 {
	if !c.present {
		return emptyCauseHash
	}
	h := xxhash.New()
	for _, e := range c.elems {
		b := &strings.Builder{}
		_, _ = fmt.Fprintf(b, "%T\x00", e)
		hashValue(b, reflect.ValueOf(e))
		b.WriteString("\x00")
		_, _ = h.WriteString(b.String())
	}
	return h.Sum64()
}

// hashValue writes a stable rendering of the value passed, following the same
// structure reflect.DeepEqual compares: pointers and interfaces are
// dereferenced and map entries are rendered in sorted order, so that values
// considered deeply equal produce the same bytes.
func hashValue(b *strings.Builder, v reflect.Value) {
	if !v.IsValid() {
		b.WriteString("nil")
		return
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			b.WriteString("nil")
			return
		}
		hashValue(b, v.Elem())
	case reflect.Struct:
		t := v.Type()
		b.WriteString(t.String())
		for i := 0; i < v.NumField(); i++ {
			b.WriteString("\x00")
			b.WriteString(t.Field(i).Name)
			b.WriteString(":")
			hashValue(b, v.Field(i))
		}
	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice && v.IsNil() {
			b.WriteString("nil")
			return
		}
		for i := 0; i < v.Len(); i++ {
			hashValue(b, v.Index(i))
			b.WriteString("\x00")
		}
	case reflect.Map:
		if v.IsNil() {
			b.WriteString("nil")
			return
		}
		entries := make([]string, 0, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			e := &strings.Builder{}
			hashValue(e, iter.Key())
			e.WriteString("=")
			hashValue(e, iter.Value())
			entries = append(entries, e.String())
		}
		slices.Sort(entries)
		for _, e := range entries {
			b.WriteString(e)
			b.WriteString("\x00")
		}
	case reflect.Bool:
		_, _ = fmt.Fprintf(b, "%v", v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		_, _ = fmt.Fprintf(b, "%v", v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		_, _ = fmt.Fprintf(b, "%v", v.Uint())
	case reflect.Float32, reflect.Float64:
		_, _ = fmt.Fprintf(b, "%v", v.Float())
	case reflect.Complex64, reflect.Complex128:
		_, _ = fmt.Fprintf(b, "%v", v.Complex())
	case reflect.String:
		b.WriteString(v.String())
	default:
		// Channels, functions and unsafe pointers compare by identity; their
		// type is enough for a hash.
		b.WriteString(v.Type().String())
	}
}

// String formats the Cause for logs, listing the dynamic types of its
// elements from root to most immediate cause.
func (c Cause) String() string {
	if !c.present {
		return "Cause()"
	}
	b := &strings.Builder{}
	b.WriteString("Cause(")
	for i, e := range c.elems {
		if i > 0 {
			b.WriteString(" -> ")
		}
		_, _ = fmt.Fprintf(b, "%T", e)
	}
	b.WriteString(")")
	return b.String()
}
