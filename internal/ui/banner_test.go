package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/otifyhq/console/internal/ui/components"
)

func TestRenderBanner(t *testing.T) {
	out := components.SanitizeText(RenderBanner())
	assert.Contains(t, out, "██")
	assert.Contains(t, out, "Admin Panel")
}
