package assertvariants

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeMissingVariant   = "missing_variant"
	CodeUnknownVariant   = "unknown_variant"
	CodeNotSumType       = "not_sum_type"
	CodeNonConstant      = "non_constant"
	CodeDuplicateVariant = "duplicate_variant"
	// Lock file verification
	CodeUnrecordedType = "unrecorded_type"
	CodeDigestMismatch = "digest_mismatch"
)

// Issue represents a single verification entry.
type Issue struct {
	Path    string `json:"path"`           // Qualified type (for example: example.com/shapes.Shape).
	Code    string `json:"code"`           // One of the codes listed above.
	Message string `json:"message"`        // Human readable, names the offending variants.
	Hint    string `json:"hint,omitempty"` // Optional: remediation hints.
	// Params carries structured parameters (e.g., {"missing": []string{"Blue"}})
	// for i18n and machine readable reports.
	Params map[string]any `json:"params,omitempty"`
}

// Issues is a collection of verification errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := min(n, maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. missing_variant at example.com/shapes.Shape
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Codes returns the distinct issue codes in first-seen order.
func (iss Issues) Codes() []string {
	var codes []string
	seen := map[string]bool{}
	for _, it := range iss {
		if !seen[it.Code] {
			seen[it.Code] = true
			codes = append(codes, it.Code)
		}
	}
	return codes
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
