package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfirmDialog(t *testing.T) {
	out := SanitizeText(ConfirmDialog("Confirm Delete", "Delete \"MRI Scan\"?"))
	assert.Contains(t, out, "Confirm Delete")
	assert.Contains(t, out, "MRI Scan")
	assert.Contains(t, out, "y: confirm")
	assert.Contains(t, out, "n: cancel")
}

func TestInputDialogShowsInputAndCursor(t *testing.T) {
	out := SanitizeText(InputDialog("Export Snapshot", "snap.yaml"))
	assert.Contains(t, out, "Export Snapshot")
	assert.Contains(t, out, "> snap.yaml█")
	assert.Contains(t, out, "enter: submit")
}
