package domain

import "fmt"

// Label is the closed set of routing outcomes. New intent labels must be
// added here and given an explicit branch in the context assembler.
type Label string

const (
	// LabelSQL marks messages answerable from structured data.
	LabelSQL Label = "sql"
	// LabelDocs marks messages answerable from reference documents.
	LabelDocs Label = "docs"
	// LabelAmbiguous marks messages the router could not classify with
	// enough confidence. Never stored in the example corpus; derived from
	// distances at query time.
	LabelAmbiguous Label = "ambiguous"
)

// ParseLabel validates a stored label value against the closed set.
func ParseLabel(s string) (Label, error) {
	switch Label(s) {
	case LabelSQL, LabelDocs, LabelAmbiguous:
		return Label(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownLabel, s)
	}
}

// String implements fmt.Stringer.
func (l Label) String() string { return string(l) }
