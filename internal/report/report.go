// Package report renders lock entries and issues for the command line.
package report

import (
	"fmt"
	"io"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/reoring/assertvariants"
	"github.com/reoring/assertvariants/i18n"
	"github.com/reoring/assertvariants/lockfile"
)

// Format selects the output encoding.
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case Text, JSON:
		return Format(s), nil
	case "":
		return Text, nil
	}
	return "", fmt.Errorf("report: unknown format %q (want text or json)", s)
}

// WriteEntries lists sum types and their variants.
func WriteEntries(w io.Writer, f Format, entries []lockfile.Entry) error {
	if f == JSON {
		return writeJSON(w, entries)
	}
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%s (%s): %s\n", e.Type, e.Kind, strings.Join(e.Variants, ", ")); err != nil {
			return err
		}
	}
	return nil
}

// WriteIssues prints issues, one per line, after a localized headline that
// names the affected type.
func WriteIssues(w io.Writer, f Format, iss assertvariants.Issues) error {
	if f == JSON {
		if iss == nil {
			iss = assertvariants.Issues{}
		}
		return writeJSON(w, iss)
	}
	for _, it := range iss {
		head := i18n.T(it.Code, map[string]string{"type": it.Path})
		if _, err := fmt.Fprintf(w, "%s: %s\n", head, it.Message); err != nil {
			return err
		}
		if it.Hint != "" {
			if _, err := fmt.Fprintf(w, "\thint: %s\n", it.Hint); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("report: encode: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
