package lockfile

import (
	"fmt"
	"io"

	"github.com/VictoriaMetrics/metrics"

	"github.com/reoring/assertvariants"
	"github.com/reoring/assertvariants/internal/sumtype"
)

const snapshotHint = "re-run `variantlock snapshot` once the change is intended"

var (
	set          = metrics.NewSet()
	typesChecked = set.NewCounter(`variantlock_types_total`)
	verifyRuns   = set.NewCounter(`variantlock_verify_runs_total`)
)

func issuesCounter(code string) *metrics.Counter {
	return set.GetOrCreateCounter(fmt.Sprintf(`variantlock_issues_total{code=%q}`, code))
}

// WriteMetrics writes the verification counters in Prometheus text format.
func WriteMetrics(w io.Writer) {
	set.WritePrometheus(w)
}

// Verify compares the current variant sets with a recorded lock. A variant
// declared now but absent from the record is missing_variant; a recorded
// variant that no longer exists is unknown_variant. Types that disappeared
// or changed kind are not_sum_type and new types are unrecorded_type.
//
// Snapshots only record enum types that have constants, so an enum whose
// last constant was removed is reported as gone, while the analyzer still
// accepts it as an uninhabited enum.
func Verify(current, recorded *Lock) assertvariants.Issues {
	verifyRuns.Inc()
	var iss assertvariants.Issues
	now := make(map[string]Entry, len(current.Types))
	for _, e := range current.Types {
		now[e.Type] = e
	}
	for _, rec := range recorded.Types {
		typesChecked.Inc()
		cur, ok := now[rec.Type]
		if !ok {
			iss = assertvariants.AppendIssues(iss, hinted(assertvariants.IssueAt(rec.Type, assertvariants.CodeNotSumType,
				goneMessage(rec), nil)))
			continue
		}
		if cur.Kind != rec.Kind {
			iss = assertvariants.AppendIssues(iss, hinted(assertvariants.IssueAt(rec.Type, assertvariants.CodeNotSumType,
				fmt.Sprintf("%s changed from %s to %s", rec.Type, rec.Kind, cur.Kind),
				map[string]any{"recorded": rec.Kind, "current": cur.Kind})))
			continue
		}
		if rec.Digest != "" && rec.Digest != Digest(rec.Variants) {
			iss = assertvariants.AppendIssues(iss, assertvariants.IssueAt(rec.Type, assertvariants.CodeDigestMismatch,
				fmt.Sprintf("recorded digest %s does not match the recorded variants of %s", rec.Digest, rec.Type),
				map[string]any{"digest": rec.Digest, "want": Digest(rec.Variants)}))
		}
		out := assertvariants.Compare(cur.Variants, rec.Variants)
		for _, it := range out.Issues(rec.Type, rec.Type, false) {
			iss = assertvariants.AppendIssues(iss, hinted(it))
		}
	}
	for _, e := range current.Types {
		if _, ok := recorded.Lookup(e.Type); ok {
			continue
		}
		iss = assertvariants.AppendIssues(iss, hinted(assertvariants.IssueAt(e.Type, assertvariants.CodeUnrecordedType,
			fmt.Sprintf("%s is a %s sum type that is not recorded", e.Type, e.Kind),
			map[string]any{"variants": e.Variants})))
	}
	for _, it := range iss {
		issuesCounter(it.Code).Inc()
	}
	return iss
}

// Check is Verify as an error: nil when the packages match the record,
// otherwise the Issues.
func Check(current, recorded *Lock) error {
	if iss := Verify(current, recorded); len(iss) > 0 {
		return iss
	}
	return nil
}

func goneMessage(rec Entry) string {
	if rec.Kind == sumtype.KindEnum.String() {
		return fmt.Sprintf("%s has no variants left or is no longer an enum of the loaded packages", rec.Type)
	}
	return fmt.Sprintf("%s is no longer a sealed interface of the loaded packages", rec.Type)
}

func hinted(it assertvariants.Issue) assertvariants.Issue {
	it.Hint = snapshotHint
	return it
}
