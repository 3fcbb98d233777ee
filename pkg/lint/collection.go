package lint

import "sort"

// Collection accumulates diagnostics during a run.
//
// It is append-only while rules execute. Finalize sorts the diagnostics by
// file path, then rule id, then message so that two runs over an unchanged
// tree produce byte-identical output regardless of evaluation order.
type Collection struct {
	Diagnostics []Diagnostic `json:"diagnostics"`
}

// NewCollection creates an empty collection. The slice is allocated up
// front so a clean run serializes as an empty array, never null.
func NewCollection() *Collection {
	return &Collection{Diagnostics: make([]Diagnostic, 0)}
}

// Add appends diagnostics to the collection.
func (c *Collection) Add(diags ...Diagnostic) {
	c.Diagnostics = append(c.Diagnostics, diags...)
}

// Finalize canonicalizes the ordering. It is idempotent.
func (c *Collection) Finalize() {
	if c.Diagnostics == nil {
		c.Diagnostics = make([]Diagnostic, 0)
	}
	sort.SliceStable(c.Diagnostics, func(i, j int) bool {
		a, b := c.Diagnostics[i], c.Diagnostics[j]
		if a.File != b.File {
			return a.File < b.File
		}
		if a.Rule != b.Rule {
			return a.Rule < b.Rule
		}
		return a.Message < b.Message
	})
}

// ErrorCount returns the number of error-severity diagnostics.
func (c *Collection) ErrorCount() int {
	n := 0
	for _, d := range c.Diagnostics {
		if d.Severity == SeverityError {
			n++
		}
	}
	return n
}

// WarnCount returns the number of warn-severity diagnostics.
func (c *Collection) WarnCount() int {
	n := 0
	for _, d := range c.Diagnostics {
		if d.Severity == SeverityWarn {
			n++
		}
	}
	return n
}

// HasErrors reports whether any diagnostic has error severity. The run's
// exit status is a pure function of this: any error fails the run,
// warnings alone do not.
func (c *Collection) HasErrors() bool {
	return c.ErrorCount() > 0
}

// Len returns the total number of diagnostics.
func (c *Collection) Len() int {
	return len(c.Diagnostics)
}
