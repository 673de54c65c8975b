package dashboard

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otifyhq/console/internal/form"
	"github.com/otifyhq/console/internal/store"
)

func newTestController(t *testing.T) *Controller {
	t.Helper()
	return NewController(store.NewSet(), nil)
}

// seqIDs replaces the allocator with a deterministic sequence.
func seqIDs(c *Controller) {
	n := 0
	c.newID = func(singular string) string {
		n++
		return fmt.Sprintf("%s_%09d", singular, n)
	}
}

func createService(t *testing.T, c *Controller, name, description string, options ...string) {
	t.Helper()
	require.NoError(t, c.OpenCreate())
	d := c.Draft()
	require.NotNil(t, d)
	d.Set("name", name)
	d.Set("description", description)
	for _, o := range options {
		d.Toggle("primeOptions", o)
	}
	require.NoError(t, c.Submit())
}

func TestSelectSectionUnknown(t *testing.T) {
	c := newTestController(t)
	require.Error(t, c.SelectSection("clinic"))
	assert.Equal(t, "", c.Section())
}

func TestSelectSectionResetsSearchAndModal(t *testing.T) {
	c := newTestController(t)
	require.NoError(t, c.SelectSection("service"))
	c.SetSearch("mri")
	require.NoError(t, c.OpenCreate())

	require.NoError(t, c.SelectSection("doctor"))
	assert.Equal(t, "", c.SearchTerm())
	assert.False(t, c.ModalOpen())
	assert.Nil(t, c.Draft())
}

func TestCreateEditDeleteRoundTrip(t *testing.T) {
	c := newTestController(t)
	seqIDs(c)
	require.NoError(t, c.SelectSection("service"))

	// Create.
	createService(t, c, "MRI Scan", "Full body imaging", "Call Booking")
	rows := c.Rows()
	require.Len(t, rows, 1)
	id := rows[0].ID
	assert.Equal(t, "service_000000001", id)
	assert.Equal(t, "MRI Scan", rows[0].Fields["name"])
	assert.Equal(t, true, rows[0].Fields["isActive"])
	assert.False(t, c.ModalOpen())

	// Edit: change a field, leave the rest.
	require.NoError(t, c.OpenEdit(id))
	require.True(t, c.ModalOpen())
	assert.Equal(t, ModeEdit, c.ModalMode())
	c.Draft().Set("name", "MRI Full Scan")
	require.NoError(t, c.Submit())

	rows = c.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, id, rows[0].ID)
	assert.Equal(t, "MRI Full Scan", rows[0].Fields["name"])
	assert.Equal(t, "Full body imaging", rows[0].Fields["description"])

	// Delete.
	require.NoError(t, c.Delete(id))
	assert.Empty(t, c.Rows())
}

// Opening a record for edit and submitting untouched leaves the stored
// record equal to the original.
func TestEditRoundTripWithoutChanges(t *testing.T) {
	c := newTestController(t)
	seqIDs(c)
	require.NoError(t, c.SelectSection("service"))
	createService(t, c, "MRI Scan", "Full body imaging", "Call Booking", "OT Comparison")
	before := c.Rows()[0]

	require.NoError(t, c.OpenEdit(before.ID))
	require.NoError(t, c.Submit())

	after := c.Rows()[0]
	assert.Equal(t, before.ID, after.ID)
	assert.Equal(t, before.Fields, after.Fields)
}

func TestSubmitValidationLeavesModalOpen(t *testing.T) {
	c := newTestController(t)
	require.NoError(t, c.SelectSection("service"))
	require.NoError(t, c.OpenCreate())

	err := c.Submit()
	var verr *form.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, c.ModalOpen())
	assert.Empty(t, c.Rows())

	// Fixing the draft and resubmitting commits.
	c.Draft().Set("name", "MRI")
	c.Draft().Set("description", "Imaging")
	c.Draft().Toggle("primeOptions", "Call Booking")
	require.NoError(t, c.Submit())
	assert.False(t, c.ModalOpen())
	assert.Len(t, c.Rows(), 1)
}

func TestCloseDiscardsDraft(t *testing.T) {
	c := newTestController(t)
	require.NoError(t, c.SelectSection("service"))
	require.NoError(t, c.OpenCreate())
	c.Draft().Set("name", "half-typed")

	c.Close()
	assert.False(t, c.ModalOpen())
	assert.Empty(t, c.Rows())

	// Reopening starts clean.
	require.NoError(t, c.OpenCreate())
	assert.Equal(t, "", c.Draft().String("name"))
}

func TestOpenEditMissingIsNoOp(t *testing.T) {
	c := newTestController(t)
	require.NoError(t, c.SelectSection("service"))

	require.NoError(t, c.OpenEdit("service_000000404"))
	assert.False(t, c.ModalOpen())
}

func TestDeleteMissingIsNoOp(t *testing.T) {
	c := newTestController(t)
	seqIDs(c)
	require.NoError(t, c.SelectSection("service"))
	createService(t, c, "MRI", "Imaging", "Call Booking")

	require.NoError(t, c.Delete("service_000000404"))
	assert.Len(t, c.Rows(), 1)
}

func TestEditCannotChangeID(t *testing.T) {
	c := newTestController(t)
	seqIDs(c)
	require.NoError(t, c.SelectSection("service"))
	createService(t, c, "MRI", "Imaging", "Call Booking")
	id := c.Rows()[0].ID

	require.NoError(t, c.OpenEdit(id))
	c.Draft().Set("id", "service_hijacked")
	require.NoError(t, c.Submit())

	rows := c.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, id, rows[0].ID)
	assert.NotContains(t, rows[0].Fields, "id")
}

func TestInsertRetriesOnIDCollision(t *testing.T) {
	c := newTestController(t)
	require.NoError(t, c.SelectSection("service"))

	// First allocation always collides with the existing record, the
	// retry allocates fresh.
	calls := 0
	c.newID = func(singular string) string {
		calls++
		if calls <= 2 {
			return singular + "_000000001"
		}
		return fmt.Sprintf("%s_%09d", singular, calls)
	}

	createService(t, c, "MRI", "Imaging", "Call Booking")
	createService(t, c, "CT", "Imaging", "Call Booking")

	rows := c.Rows()
	require.Len(t, rows, 2)
	assert.NotEqual(t, rows[0].ID, rows[1].ID)
	assert.Equal(t, 3, calls)
}

func TestRowsFilteredBySearch(t *testing.T) {
	c := newTestController(t)
	seqIDs(c)
	require.NoError(t, c.SelectSection("service"))
	createService(t, c, "MRI Scan", "Full body imaging", "Call Booking")
	createService(t, c, "Blood Test", "Lab diagnostics", "OT Comparison")

	c.SetSearch("mri")
	rows := c.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "MRI Scan", rows[0].Fields["name"])

	// List elements are searchable too.
	c.SetSearch("comparison")
	rows = c.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, "Blood Test", rows[0].Fields["name"])

	c.SetSearch("")
	assert.Len(t, c.Rows(), 2)
}

func TestModalTitle(t *testing.T) {
	c := newTestController(t)
	seqIDs(c)
	require.NoError(t, c.SelectSection("service"))

	require.NoError(t, c.OpenCreate())
	assert.Equal(t, "Add New service", c.ModalTitle())
	c.Close()

	createService(t, c, "MRI", "Imaging", "Call Booking")
	require.NoError(t, c.OpenEdit(c.Rows()[0].ID))
	assert.Equal(t, "Edit service", c.ModalTitle())
}
