package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics_Buckets(t *testing.T) {
	var d Diagnostics

	assert.True(t, d.IsValid())
	assert.NoError(t, d.Error())

	d.AddInfo("I1", "info", "", "", 0)
	d.AddWarning("W1", "warn", "Client", "nr", 3)
	d.AddError("E1", "boom", "Client", "foo", 7)

	assert.Len(t, d.Errors, 1)
	assert.Len(t, d.Warnings, 1)
	assert.Len(t, d.Infos, 1)
	assert.Equal(t, 3, d.Len())
	assert.True(t, d.HasErrors())
	assert.False(t, d.IsValid())

	all := d.All()
	require.Len(t, all, 3)
	assert.Equal(t, "E1", all[0].Code)
	assert.Equal(t, "W1", all[1].Code)
	assert.Equal(t, "I1", all[2].Code)
}

func TestDiagnostics_Error(t *testing.T) {
	var d Diagnostics
	d.AddError("E1", "first", "", "", 0)
	d.AddError("E2", "second", "Company", "name", 5)

	err := d.Error()
	require.Error(t, err)
	assert.Equal(t, "@0: [E1] first; @5 Company name: [E2] second", err.Error())
}

func TestDiagnostics_Merge(t *testing.T) {
	var a, b Diagnostics
	a.AddError("E1", "a", "", "", 0)
	b.AddWarning("W1", "b", "", "", 0)
	b.AddInfo("I1", "c", "", "", 0)

	a.Merge(b)

	assert.Equal(t, 3, a.Len())
}

func TestDiagnostic_String(t *testing.T) {
	d := Diagnostic{
		Severity:    SeverityError,
		Code:        "LINT_UNKNOWN_FIELD",
		Message:     "unknown field",
		TypeName:    "Client",
		Path:        "numbr",
		Offset:      12,
		Suggestions: []string{"number"},
	}

	assert.Equal(t, "@12 Client numbr: [LINT_UNKNOWN_FIELD] unknown field (did you mean: number)", d.String())
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(99).String())
}
