// Package form owns the transient draft a record passes through while
// it is being created or edited. A draft never aliases a stored record:
// edit entry deep-copies, and only Submit hands fields back out.
package form

import (
	"fmt"
	"strings"

	"github.com/otifyhq/console/internal/record"
	"github.com/otifyhq/console/internal/schema"
)

// ValidationError reports required fields left empty at submit. The
// draft stays open and no store mutation happens while one is pending.
type ValidationError struct {
	Fields []string // field names in form order
	labels []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("required: %s", strings.Join(e.labels, ", "))
}

// Draft is the uncommitted working copy of one record.
type Draft struct {
	schema   *schema.Schema
	fields   record.Fields
	targetID string // empty for create drafts
}

// Open starts a draft for the given entity type. Initialization begins
// from the schema defaults so every declared field is present even when
// initial omits some; initial (if any) is deep-copied and overlaid on
// top, with boolean-defaulted fields coerced to strict bools in case a
// stale value arrived as a truthy non-boolean. Fields on initial that
// the schema no longer declares are carried through untouched.
func Open(entityType string, initial *record.Record) (*Draft, error) {
	s, err := schema.Get(entityType)
	if err != nil {
		return nil, err
	}
	fields := s.Defaults()
	d := &Draft{schema: s, fields: fields}
	if initial == nil {
		return d, nil
	}
	cp := initial.Clone()
	for k, v := range cp.Fields {
		if _, isBool := fields[k].(bool); isBool {
			fields[k] = record.BoolValue(v)
			continue
		}
		fields[k] = v
	}
	d.targetID = cp.ID
	return d, nil
}

// EntityType returns the draft's entity type tag.
func (d *Draft) EntityType() string { return d.schema.Type }

// Editing reports whether the draft was opened over an existing record.
func (d *Draft) Editing() bool { return d.targetID != "" }

// TargetID returns the id of the record under edit, or "" for create.
func (d *Draft) TargetID() string { return d.targetID }

// Schema returns the entity schema driving this draft.
func (d *Draft) Schema() *schema.Schema { return d.schema }

// Value returns the current raw value of a field.
func (d *Draft) Value(name string) any { return d.fields[name] }

// String returns a scalar field's display string.
func (d *Draft) String(name string) string { return record.StringValue(d.fields[name]) }

// Bool returns a checkbox field's value as a strict bool.
func (d *Draft) Bool(name string) bool { return record.BoolValue(d.fields[name]) }

// List returns a multi-select field's current selections.
func (d *Draft) List(name string) []string {
	return record.StringList(d.fields[name])
}

// Set replaces a field's value with raw edit input.
func (d *Draft) Set(name string, value any) {
	d.fields[name] = value
}

// Toggle flips membership of option in a multi-select field: present
// removes, absent appends. Selections behave as a set; insertion order
// is preserved but carries no meaning.
func (d *Draft) Toggle(name, option string) {
	current := record.StringList(d.fields[name])
	for i, o := range current {
		if o == option {
			d.fields[name] = append(append([]string{}, current[:i]...), current[i+1:]...)
			return
		}
	}
	d.fields[name] = append(append([]string{}, current...), option)
}

// Submit validates and normalizes the draft, returning the field
// mapping without an id; identifier assignment belongs to the caller.
// Empty list fields are explicitly re-assigned fresh empty lists so "no
// selections" is never confusable with "field absent".
func (d *Draft) Submit() (record.Fields, error) {
	var verr ValidationError
	for _, f := range d.schema.Fields {
		if !f.Required || f.Kind == schema.KindCheckbox {
			continue
		}
		if fieldEmpty(d.fields[f.Name]) {
			verr.Fields = append(verr.Fields, f.Name)
			verr.labels = append(verr.labels, f.Label)
		}
	}
	if len(verr.Fields) > 0 {
		return nil, &verr
	}

	out := d.fields.Clone()
	delete(out, "id")
	for k, v := range out {
		if list := record.StringList(v); list != nil && len(list) == 0 {
			out[k] = []string{}
		}
	}
	return out, nil
}

func fieldEmpty(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(val) == ""
	default:
		if list := record.StringList(v); list != nil {
			return len(list) == 0
		}
		return false
	}
}
