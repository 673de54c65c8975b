// Package schema is the static catalog describing the six entity types
// the console manages. Each schema declares the complete field set with
// defaults, the form field order with edit kinds, and the list-view
// column layout. Form assembly, list rendering, and search are all
// driven off this catalog; adding an entity type is a registration
// here, not new control flow.
package schema

import (
	"errors"
	"fmt"

	"github.com/otifyhq/console/internal/record"
)

// ErrUnknownEntityType is returned when a lookup names a type outside
// the registered set. The set of sections is closed, so hitting this is
// a programming error rather than user input.
var ErrUnknownEntityType = errors.New("unknown entity type")

// FieldKind classifies how a field is edited and displayed.
type FieldKind int

const (
	KindText FieldKind = iota
	KindTextarea
	KindEmail
	KindTel
	KindNumber
	KindDate
	KindPassword
	KindCheckbox
	KindSelect
	KindMultiSelect
)

// String returns the catalog-visible kind name.
func (k FieldKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindTextarea:
		return "textarea"
	case KindEmail:
		return "email"
	case KindTel:
		return "tel"
	case KindNumber:
		return "number"
	case KindDate:
		return "date"
	case KindPassword:
		return "password"
	case KindCheckbox:
		return "checkbox"
	case KindSelect:
		return "select"
	case KindMultiSelect:
		return "multi-select"
	default:
		return "unknown"
	}
}

// Scalar reports whether the kind holds a single free-typed string.
func (k FieldKind) Scalar() bool {
	switch k {
	case KindCheckbox, KindSelect, KindMultiSelect:
		return false
	default:
		return true
	}
}

// Field describes one editable form field.
type Field struct {
	Name     string
	Label    string
	Kind     FieldKind
	Required bool     // never set for checkboxes; false is a valid value, not an absence
	Options  []string // option universe for select / multi-select kinds
	Default  any      // nil means the kind's zero value
}

// DefaultValue returns the field's default, falling back to the kind's
// zero value ("" / false / empty list).
func (f Field) DefaultValue() any {
	if f.Default != nil {
		return f.Default
	}
	switch f.Kind {
	case KindCheckbox:
		return false
	case KindMultiSelect:
		return []string{}
	default:
		return ""
	}
}

// ColumnKind selects how a list-view cell renders its value.
type ColumnKind int

const (
	ColText ColumnKind = iota
	ColList            // multi-select values shown as pills
	ColStatus          // booleans shown as Active / Inactive
)

// Column describes one list-view column.
type Column struct {
	Key   string
	Label string
	Kind  ColumnKind
}

// Schema holds the complete declarative description of one entity type.
type Schema struct {
	Type     string // singular tag, e.g. "service"
	Plural   string // section label, e.g. "Services"
	Singular string // identifier prefix, usually == Type
	Fields   []Field
	Columns  []Column

	// Hidden carries fields present on every record but absent from the
	// form: list columns the original surfaced without an editor
	// (hospital status, user permission).
	Hidden record.Fields
}

// Defaults returns a fresh, complete field map for this type. Every
// form field and every hidden field is present; list defaults are newly
// allocated so callers never share backing arrays.
func (s *Schema) Defaults() record.Fields {
	out := make(record.Fields, len(s.Fields)+len(s.Hidden))
	for _, f := range s.Fields {
		out[f.Name] = cloneDefault(f.DefaultValue())
	}
	for k, v := range s.Hidden {
		out[k] = cloneDefault(v)
	}
	return out
}

// FieldByName returns the form field declaration, or false if the name
// is hidden or unknown.
func (s *Schema) FieldByName(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

func cloneDefault(v any) any {
	if list, ok := v.([]string); ok {
		return append([]string{}, list...)
	}
	return v
}

// Get looks up the schema for an entity type tag.
func Get(entityType string) (*Schema, error) {
	s, ok := catalog[entityType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEntityType, entityType)
	}
	return s, nil
}

// MustGet is Get for type tags known to be registered. It panics on
// an unknown tag, so it is only for catalog-driven callers.
func MustGet(entityType string) *Schema {
	s, err := Get(entityType)
	if err != nil {
		panic(err)
	}
	return s
}

// Types returns the registered entity type tags in section order.
func Types() []string {
	return append([]string{}, typeOrder...)
}
