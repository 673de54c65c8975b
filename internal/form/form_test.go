package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otifyhq/console/internal/record"
	"github.com/otifyhq/console/internal/schema"
)

func TestOpenUnknownType(t *testing.T) {
	_, err := Open("clinic", nil)
	assert.ErrorIs(t, err, schema.ErrUnknownEntityType)
}

func TestOpenCreateStartsFromDefaults(t *testing.T) {
	d, err := Open("service", nil)
	require.NoError(t, err)

	assert.False(t, d.Editing())
	assert.Equal(t, "", d.String("name"))
	assert.Equal(t, []string{}, d.List("primeOptions"))
	assert.True(t, d.Bool("isActive"))
}

func TestOpenEditOverlaysInitial(t *testing.T) {
	rec := record.Record{
		ID: "service_000000001",
		Fields: record.Fields{
			"name":         "MRI",
			"primeOptions": []string{"Call Booking"},
		},
	}
	d, err := Open("service", &rec)
	require.NoError(t, err)

	assert.True(t, d.Editing())
	assert.Equal(t, "service_000000001", d.TargetID())
	assert.Equal(t, "MRI", d.String("name"))
	assert.Equal(t, []string{"Call Booking"}, d.List("primeOptions"))
	// Fields absent from the record fall back to defaults.
	assert.Equal(t, "", d.String("description"))
	assert.True(t, d.Bool("isActive"))
}

func TestOpenEditDoesNotAliasRecord(t *testing.T) {
	rec := record.Record{
		ID: "service_000000001",
		Fields: record.Fields{
			"name":         "MRI",
			"primeOptions": []string{"Call Booking"},
		},
	}
	d, err := Open("service", &rec)
	require.NoError(t, err)

	d.Set("name", "CT")
	d.Toggle("primeOptions", "OT Comparison")
	d.List("primeOptions")[0] = "mutated"

	assert.Equal(t, "MRI", rec.Fields["name"])
	assert.Equal(t, []string{"Call Booking"}, rec.Fields["primeOptions"])
}

// A stale truthy non-boolean in a checkbox position must come back as a
// strict bool on entry.
func TestOpenCoercesCheckboxValues(t *testing.T) {
	rec := record.Record{
		ID:     "service_000000001",
		Fields: record.Fields{"name": "MRI", "isActive": "yes"},
	}
	d, err := Open("service", &rec)
	require.NoError(t, err)
	assert.Equal(t, true, d.Value("isActive"))

	rec.Fields["isActive"] = ""
	d, err = Open("service", &rec)
	require.NoError(t, err)
	assert.Equal(t, false, d.Value("isActive"))
}

func TestToggleBehavesAsSet(t *testing.T) {
	d, err := Open("service", nil)
	require.NoError(t, err)

	d.Toggle("primeOptions", "Call Booking")
	d.Toggle("primeOptions", "OT Comparison")
	assert.Equal(t, []string{"Call Booking", "OT Comparison"}, d.List("primeOptions"))

	// Toggling an existing option removes it; toggling twice restores.
	d.Toggle("primeOptions", "Call Booking")
	assert.Equal(t, []string{"OT Comparison"}, d.List("primeOptions"))
	d.Toggle("primeOptions", "Call Booking")
	assert.Equal(t, []string{"OT Comparison", "Call Booking"}, d.List("primeOptions"))
}

func TestSubmitRequiredValidation(t *testing.T) {
	d, err := Open("service", nil)
	require.NoError(t, err)

	_, err = d.Submit()
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"name", "description", "primeOptions"}, verr.Fields)
	assert.Contains(t, verr.Error(), "Service Name")
}

func TestSubmitWhitespaceIsEmpty(t *testing.T) {
	d, err := Open("department", nil)
	require.NoError(t, err)
	d.Set("departmentName", "   ")
	d.Set("details", "Cardiac care")

	_, err = d.Submit()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"departmentName"}, verr.Fields)
}

// Unchecked checkboxes are valid: false is a value, not an absence.
func TestSubmitCheckboxNeverRequired(t *testing.T) {
	d, err := Open("service", nil)
	require.NoError(t, err)
	d.Set("name", "MRI")
	d.Set("description", "Imaging")
	d.Toggle("primeOptions", "Call Booking")
	d.Set("isActive", false)

	fields, err := d.Submit()
	require.NoError(t, err)
	assert.Equal(t, false, fields["isActive"])
}

func TestSubmitStripsID(t *testing.T) {
	rec := record.Record{
		ID:     "service_000000001",
		Fields: record.Fields{"id": "service_000000001", "name": "MRI", "description": "x", "primeOptions": []string{"Call Booking"}},
	}
	d, err := Open("service", &rec)
	require.NoError(t, err)

	fields, err := d.Submit()
	require.NoError(t, err)
	assert.NotContains(t, fields, "id")
}

func TestSubmitNormalizesEmptyLists(t *testing.T) {
	d, err := Open("doctor", nil)
	require.NoError(t, err)
	d.Set("doctorName", "Dr. Rao")
	d.Set("specialization", "Cardiology")
	d.Set("experience", "12")
	d.Set("about", "Senior cardiologist")
	d.Toggle("departmentOptions", "Cardiology")
	d.Toggle("departmentOptions", "Cardiology") // back to empty

	_, err = d.Submit()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"departmentOptions"}, verr.Fields)

	d.Toggle("departmentOptions", "Dental")
	fields, err := d.Submit()
	require.NoError(t, err)
	assert.Equal(t, []string{"Dental"}, fields["departmentOptions"])
}

func TestSubmitOutputDoesNotAliasDraft(t *testing.T) {
	d, err := Open("service", nil)
	require.NoError(t, err)
	d.Set("name", "MRI")
	d.Set("description", "Imaging")
	d.Toggle("primeOptions", "Call Booking")

	fields, err := d.Submit()
	require.NoError(t, err)

	d.Set("name", "mutated")
	d.Toggle("primeOptions", "OT Comparison")
	assert.Equal(t, "MRI", fields["name"])
	assert.Equal(t, []string{"Call Booking"}, fields["primeOptions"])
}
