// Command variantcheck runs the assertvariants analyzer, together with the
// exhaustive switch analyzer, as a standalone tool or as a vet tool:
//
//	go vet -vettool=$(which variantcheck) ./...
//
// Switches are only checked by exhaustive when marked //exhaustive:enforce,
// so assertions and opted-in switches can be adopted one package at a time.
package main

import (
	"github.com/nishanths/exhaustive"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"

	"github.com/reoring/assertvariants/analyzer"
)

func main() {
	multichecker.Main(analyzers()...)
}

func analyzers() []*analysis.Analyzer {
	return []*analysis.Analyzer{analyzer.Analyzer, exhaustive.Analyzer}
}

func init() {
	if err := exhaustive.Analyzer.Flags.Lookup(exhaustive.ExplicitExhaustiveSwitchFlag).Value.Set("true"); err != nil {
		panic("variantcheck: failed to set explicit-exhaustive-switch")
	}
	if err := exhaustive.Analyzer.Flags.Lookup(exhaustive.DefaultSignifiesExhaustiveFlag).Value.Set("false"); err != nil {
		panic("variantcheck: failed to set default-signifies-exhaustive")
	}
}
