package assertvariants

// Outcome is the result of comparing declared variants with an expected
// list. Missing follows declaration order; Unknown and Duplicates follow the
// order of the expected list. Every name appears at most once per field.
type Outcome struct {
	Missing    []string
	Unknown    []string
	Duplicates []string
}

// Consistent reports whether the expected list equals the declared set.
// Duplicates do not make an outcome inconsistent.
func (o Outcome) Consistent() bool {
	return len(o.Missing) == 0 && len(o.Unknown) == 0
}

// Compare compares the declared variant names of a sum type with the names
// a caller expects. The comparison is a set comparison: order and repeated
// names in expected do not affect consistency.
func Compare(declared, expected []string) Outcome {
	var out Outcome
	want := make(map[string]int, len(expected))
	for _, name := range expected {
		want[name]++
	}
	have := make(map[string]struct{}, len(declared))
	for _, name := range declared {
		if _, dup := have[name]; dup {
			continue
		}
		have[name] = struct{}{}
		if want[name] == 0 {
			out.Missing = append(out.Missing, name)
		}
	}
	seen := make(map[string]struct{}, len(expected))
	for _, name := range expected {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		if _, ok := have[name]; !ok {
			out.Unknown = append(out.Unknown, name)
		}
		if want[name] > 1 {
			out.Duplicates = append(out.Duplicates, name)
		}
	}
	return out
}
