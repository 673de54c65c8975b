package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/otifyhq/console/internal/record"
)

func searchRec() record.Record {
	return record.Record{
		ID: "service_000000001",
		Fields: record.Fields{
			"name":         "MRI Scan",
			"description":  "Full body imaging",
			"primeOptions": []string{"Call Booking", "OT Comparison"},
			"isActive":     true,
			"experience":   12,
		},
	}
}

func TestMatchesSearchEmptyTermMatchesAll(t *testing.T) {
	assert.True(t, MatchesSearch(searchRec(), ""))
	assert.True(t, MatchesSearch(searchRec(), "   "))
}

func TestMatchesSearchCaseInsensitiveSubstring(t *testing.T) {
	assert.True(t, MatchesSearch(searchRec(), "mri"))
	assert.True(t, MatchesSearch(searchRec(), "BODY"))
	assert.True(t, MatchesSearch(searchRec(), "i Sc"))
	assert.False(t, MatchesSearch(searchRec(), "dental"))
}

func TestMatchesSearchListElements(t *testing.T) {
	assert.True(t, MatchesSearch(searchRec(), "booking"))
	assert.True(t, MatchesSearch(searchRec(), "ot comp"))
}

// Booleans, numbers and the record id are not searchable text.
func TestMatchesSearchSkipsNonText(t *testing.T) {
	assert.False(t, MatchesSearch(searchRec(), "true"))
	assert.False(t, MatchesSearch(searchRec(), "12"))
	assert.False(t, MatchesSearch(searchRec(), "service_000000001"))
}
