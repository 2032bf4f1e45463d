// Package lockfile records the variant sets of every sum type in a set of
// packages and verifies later builds against that record.
//
// The lock file is YAML:
//
//	version: 1
//	types:
//	  - type: example.com/shapes.Shape
//	    kind: sealed
//	    variants: [Circle, Square]
//	    digest: 5d1c7a7e0c2b9f41
//
// Variants are sorted so that the file diffs cleanly; the digest is the
// xxhash64 of the sorted names and lets reviewers spot hand edits.
package lockfile

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"gopkg.in/yaml.v3"

	"github.com/reoring/assertvariants/internal/sumtype"
)

// Version is the lock file format version written by Save.
const Version = 1

// ErrVersion is returned by Parse for lock files of another format version.
var ErrVersion = errors.New("lockfile: unsupported version")

// Entry records one sum type.
type Entry struct {
	Type     string   `yaml:"type" json:"type"`
	Kind     string   `yaml:"kind" json:"kind"`
	Variants []string `yaml:"variants,flow" json:"variants"`
	Digest   string   `yaml:"digest" json:"digest"`
}

// Lock is the content of a lock file.
type Lock struct {
	Version int     `yaml:"version" json:"version"`
	Types   []Entry `yaml:"types" json:"types"`
}

// NewEntry builds an entry with sorted variants and their digest.
func NewEntry(typ, kind string, variants []string) Entry {
	vs := slices.Clone(variants)
	slices.Sort(vs)
	vs = slices.Compact(vs)
	if vs == nil {
		vs = []string{}
	}
	return Entry{Type: typ, Kind: kind, Variants: vs, Digest: Digest(vs)}
}

// Digest returns the hex xxhash64 of the sorted, newline joined names.
func Digest(names []string) string {
	vs := slices.Clone(names)
	slices.Sort(vs)
	sum := xxhash.Sum64String(strings.Join(vs, "\n"))
	return fmt.Sprintf("%016x", sum)
}

// Lookup returns the entry for a qualified type name.
func (l *Lock) Lookup(typ string) (Entry, bool) {
	for _, e := range l.Types {
		if e.Type == typ {
			return e, true
		}
	}
	return Entry{}, false
}

// Sort orders entries by type name.
func (l *Lock) Sort() {
	slices.SortFunc(l.Types, func(a, b Entry) int { return strings.Compare(a.Type, b.Type) })
}

// Marshal encodes the lock as YAML.
func (l *Lock) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(l); err != nil {
		return nil, fmt.Errorf("lockfile: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("lockfile: encode: %w", err)
	}
	return buf.Bytes(), nil
}

// Save writes the lock to path.
func (l *Lock) Save(path string) error {
	data, err := l.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("lockfile: writing %s: %w", path, err)
	}
	return nil
}

// Parse decodes a lock file. Unknown fields and kinds are rejected.
func Parse(data []byte) (*Lock, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var l Lock
	if err := dec.Decode(&l); err != nil {
		return nil, fmt.Errorf("lockfile: decode: %w", err)
	}
	if l.Version != Version {
		return nil, fmt.Errorf("%w: %s", ErrVersion, strconv.Itoa(l.Version))
	}
	for i, e := range l.Types {
		if e.Type == "" {
			return nil, fmt.Errorf("lockfile: entry %d has no type", i)
		}
		if _, err := sumtype.ParseKind(e.Kind); err != nil {
			return nil, fmt.Errorf("lockfile: entry %s: %w", e.Type, err)
		}
		if e.Variants == nil {
			l.Types[i].Variants = []string{}
		}
	}
	return &l, nil
}

// Load reads and parses the lock file at path.
func Load(path string) (*Lock, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("lockfile: reading %s: %w", path, err)
	}
	return Parse(data)
}
