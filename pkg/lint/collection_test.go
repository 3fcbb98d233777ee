package lint_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/treelint/treelint/pkg/lint"
)

func TestCollection_FinalizeOrdering(t *testing.T) {
	c := lint.NewCollection()
	c.Add(
		lint.Diagnostic{Severity: lint.SeverityWarn, Rule: "filename-style-consistency", Message: "b", File: "src/b.ts"},
		lint.Diagnostic{Severity: lint.SeverityError, Rule: "server-side-exports", Message: "a", File: "app/a.tsx"},
		lint.Diagnostic{Severity: lint.SeverityWarn, Rule: "component-nesting-depth", Message: "z", File: "app/a.tsx"},
		lint.Diagnostic{Severity: lint.SeverityWarn, Rule: "component-nesting-depth", Message: "a", File: "app/a.tsx"},
	)
	c.Finalize()

	require.Len(t, c.Diagnostics, 4)
	assert.Equal(t, "app/a.tsx", c.Diagnostics[0].File)
	assert.Equal(t, "component-nesting-depth", c.Diagnostics[0].Rule)
	assert.Equal(t, "a", c.Diagnostics[0].Message)
	assert.Equal(t, "z", c.Diagnostics[1].Message)
	assert.Equal(t, "server-side-exports", c.Diagnostics[2].Rule)
	assert.Equal(t, "src/b.ts", c.Diagnostics[3].File)

	// Finalize is idempotent
	before := make([]lint.Diagnostic, len(c.Diagnostics))
	copy(before, c.Diagnostics)
	c.Finalize()
	assert.Equal(t, before, c.Diagnostics)
}

func TestCollection_Counts(t *testing.T) {
	c := lint.NewCollection()
	assert.False(t, c.HasErrors())
	assert.Equal(t, 0, c.Len())

	c.Add(
		lint.Diagnostic{Severity: lint.SeverityWarn, Rule: "a", Message: "m", File: "f"},
		lint.Diagnostic{Severity: lint.SeverityWarn, Rule: "b", Message: "m", File: "f"},
		lint.Diagnostic{Severity: lint.SeverityError, Rule: "c", Message: "m", File: "f"},
	)
	assert.Equal(t, 2, c.WarnCount())
	assert.Equal(t, 1, c.ErrorCount())
	assert.True(t, c.HasErrors())
	assert.Equal(t, 3, c.Len())
}

func TestCollection_JSONShape(t *testing.T) {
	c := lint.NewCollection()
	c.Add(
		lint.Diagnostic{Severity: lint.SeverityError, Rule: "server-side-exports", Message: "bad export", File: "app/page.tsx", Line: 3},
		lint.Diagnostic{Severity: lint.SeverityWarn, Rule: "filename-style-consistency", Message: "bad name", File: "src/MyFile.ts"},
	)
	c.Finalize()

	data, err := json.Marshal(c)
	require.NoError(t, err)

	var decoded map[string][]map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	diags, ok := decoded["diagnostics"]
	require.True(t, ok, "top-level key must be diagnostics")
	require.Len(t, diags, 2)

	assert.Equal(t, "error", diags[0]["severity"])
	assert.Equal(t, "server-side-exports", diags[0]["rule"])
	assert.Equal(t, "app/page.tsx", diags[0]["file"])
	assert.Equal(t, float64(3), diags[0]["line"])

	// Line is omitted when unknown
	assert.Equal(t, "warn", diags[1]["severity"])
	_, hasLine := diags[1]["line"]
	assert.False(t, hasLine)
}

func TestCollection_EmptyJSONShape(t *testing.T) {
	c := lint.NewCollection()

	data, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, `{"diagnostics": []}`, string(data))

	// Finalize repairs a zero-value collection the same way.
	var zero lint.Collection
	zero.Finalize()
	data, err = json.Marshal(&zero)
	require.NoError(t, err)
	assert.JSONEq(t, `{"diagnostics": []}`, string(data))
}

func TestCollection_JSONRoundTrip(t *testing.T) {
	c := lint.NewCollection()
	c.Add(
		lint.Diagnostic{Severity: lint.SeverityError, Rule: "server-side-exports", Message: "bad export", File: "app/page.tsx", Line: 3},
		lint.Diagnostic{Severity: lint.SeverityWarn, Rule: "filename-style-consistency", Message: "bad name", File: "src/MyFile.ts"},
		lint.Diagnostic{Severity: lint.SeverityWarn, Rule: "missing-companion-files", Message: "no test", File: "src/button.tsx"},
	)
	c.Finalize()

	data, err := json.Marshal(c)
	require.NoError(t, err)

	var decoded lint.Collection
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, c.Diagnostics, decoded.Diagnostics)
	assert.Equal(t, 1, decoded.ErrorCount())
	assert.Equal(t, 2, decoded.WarnCount())
}

func TestSeverity_UnmarshalJSON_Invalid(t *testing.T) {
	var d lint.Diagnostic
	err := json.Unmarshal([]byte(`{"severity":"fatal","rule":"r","message":"m","file":"f"}`), &d)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid severity "fatal"`)
}

func TestSeverity_String(t *testing.T) {
	tests := []struct {
		sev  lint.Severity
		want string
	}{
		{lint.SeverityWarn, "warn"},
		{lint.SeverityError, "error"},
		{lint.Severity(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.sev.String())
		})
	}
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		input  string
		want   lint.Severity
		wantOK bool
	}{
		{"warn", lint.SeverityWarn, true},
		{"warning", lint.SeverityWarn, true},
		{"error", lint.SeverityError, true},
		{"ERROR", lint.SeverityError, true},
		{"info", lint.SeverityWarn, false},
		{"", lint.SeverityWarn, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := lint.ParseSeverity(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
