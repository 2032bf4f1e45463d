// Command variantlock records the variant sets of the sum types in a module
// and verifies later builds against the record.
//
// Usage:
//
//	variantlock list [-format text|json] [packages]
//	variantlock snapshot [-o variants.lock.yaml] [packages]
//	variantlock verify [-lock variants.lock.yaml] [-format text|json] [-metrics file] [packages]
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/reoring/assertvariants"
	"github.com/reoring/assertvariants/i18n"
	"github.com/reoring/assertvariants/internal/report"
	"github.com/reoring/assertvariants/lockfile"
)

const defaultLock = "variants.lock.yaml"

// Exit codes.
const (
	exitInconsistent = 1
	exitUsage        = 2
)

func main() {
	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		fatalf("%v", err)
	}
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, "variantlock: "+format+"\n", a...)
	os.Exit(exitUsage)
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "variantlock",
		Usage:     "record and verify the variants of Go sum types",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "enable verbose logs"},
			&cli.StringFlag{Name: "lang", Value: "en", Usage: "language of issue headlines (en or ja)"},
			&cli.StringSliceFlag{Name: "exclude", Usage: "glob of package paths to skip (repeatable)"},
			&cli.BoolFlag{Name: "tests", Usage: "include test packages"},
			&cli.StringFlag{Name: "dir", Usage: "directory to resolve package patterns in"},
		},
		Before: func(c *cli.Context) error {
			i18n.SetLanguage(c.String("lang"))
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "list",
				Usage:     "print every sum type and its variants",
				ArgsUsage: "[packages]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "format", Value: "text", Usage: "text or json"},
				},
				Action: listCmd,
			},
			{
				Name:      "snapshot",
				Usage:     "write the lock file",
				ArgsUsage: "[packages]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "o", Value: defaultLock, Usage: "output filename"},
				},
				Action: snapshotCmd,
			},
			{
				Name:      "verify",
				Usage:     "compare the packages with the lock file",
				ArgsUsage: "[packages]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "lock", Value: defaultLock, Usage: "lock file to verify against"},
					&cli.StringFlag{Name: "format", Value: "text", Usage: "text or json"},
					&cli.StringFlag{Name: "metrics", Usage: "write counters in Prometheus text format to this file"},
				},
				Action: verifyCmd,
			},
		},
	}
}

func config(c *cli.Context) lockfile.Config {
	cfg := lockfile.Config{
		Dir:     c.String("dir"),
		Tests:   c.Bool("tests"),
		Exclude: c.StringSlice("exclude"),
	}
	if c.Bool("verbose") {
		cfg.Logf = func(format string, a ...any) { logf(c, format, a...) }
	}
	return cfg
}

func logf(c *cli.Context, format string, a ...any) {
	if c.Bool("verbose") {
		fmt.Fprintf(c.App.ErrWriter, format+"\n", a...)
	}
}

func snapshot(c *cli.Context) (*lockfile.Lock, error) {
	ctx := c.Context
	if ctx == nil {
		ctx = context.Background()
	}
	lock, err := lockfile.Snapshot(ctx, config(c), c.Args().Slice()...)
	if err != nil {
		return nil, cli.Exit(err.Error(), exitUsage)
	}
	return lock, nil
}

func listCmd(c *cli.Context) error {
	format, err := report.ParseFormat(c.String("format"))
	if err != nil {
		return cli.Exit(err.Error(), exitUsage)
	}
	lock, err := snapshot(c)
	if err != nil {
		return err
	}
	return report.WriteEntries(c.App.Writer, format, lock.Types)
}

func snapshotCmd(c *cli.Context) error {
	lock, err := snapshot(c)
	if err != nil {
		return err
	}
	out := c.String("o")
	if err := lock.Save(out); err != nil {
		return cli.Exit(err.Error(), exitUsage)
	}
	logf(c, "wrote %d types to %s", len(lock.Types), out)
	return nil
}

func verifyCmd(c *cli.Context) error {
	format, err := report.ParseFormat(c.String("format"))
	if err != nil {
		return cli.Exit(err.Error(), exitUsage)
	}
	recorded, err := lockfile.Load(c.String("lock"))
	if err != nil {
		return cli.Exit(err.Error(), exitUsage)
	}
	current, err := snapshot(c)
	if err != nil {
		return err
	}
	err = lockfile.Check(current, recorded)
	if path := c.String("metrics"); path != "" {
		if err := writeMetrics(path); err != nil {
			return cli.Exit(err.Error(), exitUsage)
		}
	}
	if err == nil {
		logf(c, "%d types match %s", len(recorded.Types), c.String("lock"))
		return nil
	}
	iss, ok := assertvariants.AsIssues(err)
	if !ok {
		return cli.Exit(err.Error(), exitUsage)
	}
	if err := report.WriteIssues(c.App.Writer, format, iss); err != nil {
		return err
	}
	return cli.Exit(fmt.Sprintf("%d issue(s) (%s) against %s", len(iss), strings.Join(iss.Codes(), ", "), c.String("lock")), exitInconsistent)
}

func writeMetrics(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating metrics file: %w", err)
	}
	lockfile.WriteMetrics(f)
	return f.Close()
}
