// Package record defines the map-backed record shape shared by every
// entity collection, plus the structural clone used at edit-entry.
package record

import (
	"fmt"
	"sort"
)

// Fields maps field names to values. Values are strings, bools, or
// string lists; anything else is carried opaquely and stringified for
// display and search.
type Fields map[string]any

// Record is one stored row of a collection. The ID lives outside Fields
// and is assigned exactly once, at insert.
type Record struct {
	ID     string
	Fields Fields
}

// Clone returns a deep copy. Both the map and any list values are
// duplicated, so mutations on the copy never reach the original.
func (f Fields) Clone() Fields {
	if f == nil {
		return Fields{}
	}
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = cloneValue(v)
	}
	return out
}

// Clone deep-copies the record, breaking every alias with the source.
func (r Record) Clone() Record {
	return Record{ID: r.ID, Fields: r.Fields.Clone()}
}

func cloneValue(v any) any {
	switch val := v.(type) {
	case []string:
		return append([]string{}, val...)
	case []any:
		out := make([]any, len(val))
		for i, e := range val {
			out[i] = cloneValue(e)
		}
		return out
	default:
		return v
	}
}

// StringList coerces a field value to a string list. Non-list values
// yield nil; []any lists are stringified element-wise.
func StringList(v any) []string {
	switch val := v.(type) {
	case []string:
		return val
	case []any:
		out := make([]string, len(val))
		for i, e := range val {
			out[i] = fmt.Sprint(e)
		}
		return out
	default:
		return nil
	}
}

// BoolValue coerces a field value to a strict bool. Anything that is
// not already a bool is reduced to its truthiness: nil, false, "",
// and numeric zero are false, everything else is true.
func BoolValue(v any) bool {
	switch val := v.(type) {
	case bool:
		return val
	case nil:
		return false
	case string:
		return val != ""
	case int:
		return val != 0
	case float64:
		return val != 0
	default:
		return true
	}
}

// StringValue coerces a scalar field value for display. Lists and
// booleans are not rendered through this path.
func StringValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	default:
		return fmt.Sprint(val)
	}
}

// FieldNames returns the record's field names in sorted order.
func (f Fields) FieldNames() []string {
	names := make([]string, 0, len(f))
	for k := range f {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
