package assertvariants

import (
	"fmt"
	"strings"
)

// IssueAt creates an Issue for the given type path with provided code, message and params map.
// This is a convenience helper to improve readability at call sites with many parameters.
func IssueAt(path, code, msg string, params map[string]any) Issue {
	return Issue{Path: path, Code: code, Message: msg, Params: params}
}

// MissingMessage formats the message for declared variants absent from an
// expected list, e.g. "Color is missing variants Green, Blue".
func MissingMessage(typ string, names []string) string {
	noun := "variant"
	if len(names) != 1 {
		noun = "variants"
	}
	return fmt.Sprintf("%s is missing %s %s", typ, noun, strings.Join(names, ", "))
}

// UnknownMessage formats the message for a listed name that is not a variant.
func UnknownMessage(typ, name string) string {
	return fmt.Sprintf("%s is not a variant of %s", name, typ)
}

// DuplicateMessage formats the message for a name listed more than once.
func DuplicateMessage(typ, name string) string {
	return fmt.Sprintf("%s is listed more than once for %s", name, typ)
}

// Issues converts the outcome into Issues for the type at path. typ is the
// display name used in messages. Duplicates are only included when
// withDuplicates is set.
func (o Outcome) Issues(path, typ string, withDuplicates bool) Issues {
	var iss Issues
	if len(o.Missing) > 0 {
		iss = append(iss, IssueAt(path, CodeMissingVariant, MissingMessage(typ, o.Missing),
			map[string]any{"missing": o.Missing}))
	}
	for _, name := range o.Unknown {
		iss = append(iss, IssueAt(path, CodeUnknownVariant, UnknownMessage(typ, name),
			map[string]any{"name": name}))
	}
	if withDuplicates {
		for _, name := range o.Duplicates {
			iss = append(iss, IssueAt(path, CodeDuplicateVariant, DuplicateMessage(typ, name),
				map[string]any{"name": name}))
		}
	}
	return iss
}
