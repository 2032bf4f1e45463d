package lockfile

import (
	"context"
	"errors"
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/tools/go/packages"

	"github.com/reoring/assertvariants/internal/sumtype"
)

// Config controls which packages Snapshot loads.
type Config struct {
	// Dir is the directory patterns are resolved in; empty means the
	// current directory.
	Dir string
	// Tests includes test packages.
	Tests bool
	// Exclude lists doublestar globs matched against package paths,
	// e.g. "example.com/app/internal/**".
	Exclude []string
	// Logf receives progress messages when set.
	Logf func(format string, args ...any)
}

func (c Config) logf(format string, args ...any) {
	if c.Logf != nil {
		c.Logf(format, args...)
	}
}

const loadMode = packages.NeedName | packages.NeedFiles | packages.NeedSyntax |
	packages.NeedTypes | packages.NeedTypesInfo

// Snapshot loads the packages matching patterns and records every package
// level sum type they declare.
func Snapshot(ctx context.Context, cfg Config, patterns ...string) (*Lock, error) {
	for _, p := range cfg.Exclude {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("lockfile: invalid exclude pattern %q", p)
		}
	}
	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}
	pcfg := &packages.Config{
		Context: ctx,
		Mode:    loadMode,
		Dir:     cfg.Dir,
		Tests:   cfg.Tests,
	}
	cfg.logf("loading %v in %q", patterns, cfg.Dir)
	pkgs, err := packages.Load(pcfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("lockfile: load: %w", err)
	}
	var errs []error
	packages.Visit(pkgs, nil, func(p *packages.Package) {
		for _, e := range p.Errors {
			errs = append(errs, e)
		}
	})
	if len(errs) > 0 {
		return nil, fmt.Errorf("lockfile: load: %w", errors.Join(errs...))
	}
	return FromPackages(pkgs, cfg)
}

// FromPackages records the sum types of already loaded packages. Packages
// need syntax and type information.
func FromPackages(pkgs []*packages.Package, cfg Config) (*Lock, error) {
	lock := &Lock{Version: Version, Types: []Entry{}}
	seen := map[string]bool{}
	for _, p := range pkgs {
		if p.Types == nil || p.TypesInfo == nil {
			return nil, fmt.Errorf("lockfile: package %s was loaded without type information", p.PkgPath)
		}
		skip, err := excluded(cfg.Exclude, p.PkgPath)
		if err != nil {
			return nil, err
		}
		if skip {
			cfg.logf("excluding %s", p.PkgPath)
			continue
		}
		opts := sumtype.SkipIn(sumtype.IgnoredConsts(p.Syntax, p.TypesInfo))
		for _, st := range sumtype.Declared(p.Types, opts) {
			path := st.Path()
			// Test variants of a package declare the same types again.
			if seen[path] {
				continue
			}
			seen[path] = true
			lock.Types = append(lock.Types, NewEntry(path, st.Kind.String(), st.Names()))
		}
		cfg.logf("scanned %s", p.PkgPath)
	}
	lock.Sort()
	return lock, nil
}

func excluded(patterns []string, pkgPath string) (bool, error) {
	for _, p := range patterns {
		ok, err := doublestar.Match(p, pkgPath)
		if err != nil {
			return false, fmt.Errorf("lockfile: exclude pattern %q: %w", p, err)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}
