package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloneDoesNotAliasLists(t *testing.T) {
	orig := Record{
		ID: "service_123456789",
		Fields: Fields{
			"name":         "MRI Scan",
			"primeOptions": []string{"OT Comparison"},
			"isActive":     true,
		},
	}

	cp := orig.Clone()
	cp.Fields["name"] = "CT Scan"
	cp.Fields["primeOptions"].([]string)[0] = "Call Booking"

	assert.Equal(t, "MRI Scan", orig.Fields["name"])
	assert.Equal(t, []string{"OT Comparison"}, orig.Fields["primeOptions"])
	assert.Equal(t, orig.ID, cp.ID)
}

func TestCloneConvertsAnyLists(t *testing.T) {
	orig := Fields{"departmentOptions": []any{"Dental", "Cardiology"}}
	cp := orig.Clone()
	require.IsType(t, []string{}, cp["departmentOptions"])
	assert.Equal(t, []string{"Dental", "Cardiology"}, cp["departmentOptions"])
}

func TestStringList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, StringList([]string{"a", "b"}))
	assert.Equal(t, []string{"a", "1"}, StringList([]any{"a", 1}))
	assert.NotNil(t, StringList([]string{}))
	assert.Nil(t, StringList("a"))
	assert.Nil(t, StringList(nil))
	assert.Nil(t, StringList(true))
}

func TestBoolValueTruthiness(t *testing.T) {
	cases := []struct {
		in   any
		want bool
	}{
		{true, true},
		{false, false},
		{nil, false},
		{"", false},
		{"yes", true},
		{0, false},
		{3, true},
		{0.0, false},
		{1.5, true},
		{[]string{}, true},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, BoolValue(c.in), "BoolValue(%#v)", c.in)
	}
}

func TestStringValue(t *testing.T) {
	assert.Equal(t, "", StringValue(nil))
	assert.Equal(t, "x", StringValue("x"))
	assert.Equal(t, "7", StringValue(7))
}
