// Package analyzer defines the assertvariants analysis pass. It checks every
// call to assertvariants.Enum, Sealed and Names against the variants
// declared on the asserted type and fails the build when they differ.
package analyzer

import (
	"errors"
	"fmt"
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/reoring/assertvariants"
	"github.com/reoring/assertvariants/internal/sumtype"
)

const doc = `check assertvariants assertions against declared variants

The assertvariants analyzer reports calls such as

	assertvariants.Enum[Color](Red, Green)

whose argument list does not name exactly the variants of the asserted type:
declared variants that are missing, names that are not variants, and types
that are not sum types (an enum type with constants or an interface with an
unexported method).`

// Analyzer checks variant assertions.
var Analyzer = &analysis.Analyzer{
	Name:      "assertvariants",
	Doc:       doc,
	URL:       "https://pkg.go.dev/github.com/reoring/assertvariants/analyzer",
	Requires:  []*analysis.Analyzer{inspect.Analyzer},
	Run:       run,
	FactTypes: []analysis.Fact{new(variantsFact)},
}

// DuplicatesFlag names the analyzer flag that reports repeated names.
const DuplicatesFlag = "duplicates"

var reportDuplicates bool

func init() {
	Analyzer.Flags.BoolVar(&reportDuplicates, DuplicatesFlag, false, "report variant names listed more than once")
}

// variantsFact records the variants of a package-level sum type so that
// assertions in importing packages see the same set, unexported constants
// included.
type variantsFact struct {
	Kind  sumtype.Kind
	Names []string
}

func (*variantsFact) AFact() {}

func (f *variantsFact) String() string {
	return f.Kind.String() + ":" + strings.Join(f.Names, ",")
}

type marker int

const (
	markerNone marker = iota
	markerEnum
	markerSealed
	markerNames
)

func run(pass *analysis.Pass) (any, error) {
	opts := sumtype.SkipIn(sumtype.IgnoredConsts(pass.Files, pass.TypesInfo))
	for _, st := range sumtype.Declared(pass.Pkg, opts) {
		pass.ExportObjectFact(st.Obj, &variantsFact{Kind: st.Kind, Names: st.Names()})
	}

	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	insp.Preorder([]ast.Node{(*ast.CallExpr)(nil)}, func(n ast.Node) {
		call := n.(*ast.CallExpr)
		m, target := markerCall(pass.TypesInfo, call)
		if m == markerNone {
			return
		}
		check(pass, opts, call, m, target)
	})
	return nil, nil
}

// markerCall reports which marker function call invokes, if any, together
// with its type argument.
func markerCall(info *types.Info, call *ast.CallExpr) (marker, types.Type) {
	id := calleeIdent(call.Fun)
	if id == nil {
		return markerNone, nil
	}
	fn, ok := info.Uses[id].(*types.Func)
	if !ok || fn.Pkg() == nil || fn.Pkg().Path() != assertvariants.PkgPath {
		return markerNone, nil
	}
	var m marker
	switch fn.Name() {
	case assertvariants.FuncEnum:
		m = markerEnum
	case assertvariants.FuncSealed:
		m = markerSealed
	case assertvariants.FuncNames:
		m = markerNames
	default:
		return markerNone, nil
	}
	inst, ok := info.Instances[id]
	if !ok || inst.TypeArgs.Len() != 1 {
		return markerNone, nil
	}
	return m, inst.TypeArgs.At(0)
}

func calleeIdent(fun ast.Expr) *ast.Ident {
	switch e := ast.Unparen(fun).(type) {
	case *ast.IndexExpr:
		return calleeIdent(e.X)
	case *ast.IndexListExpr:
		return calleeIdent(e.X)
	case *ast.SelectorExpr:
		return e.Sel
	case *ast.Ident:
		return e
	}
	return nil
}

func check(pass *analysis.Pass, opts sumtype.Options, call *ast.CallExpr, m marker, target types.Type) {
	typ := types.TypeString(target, types.RelativeTo(pass.Pkg))
	st, err := describe(pass, opts, target)
	if err != nil {
		reason := err.Error()
		var nse *sumtype.NotSumTypeError
		if errors.As(err, &nse) {
			reason = nse.Reason
		}
		report(pass, call.Pos(), assertvariants.CodeNotSumType, "%s is not a sum type: %s", typ, reason)
		return
	}
	switch {
	case m == markerEnum && st.Kind == sumtype.KindSealed:
		report(pass, call.Pos(), assertvariants.CodeNotSumType, "%s is a sealed interface; use Sealed or Names", typ)
		return
	case m == markerSealed && st.Kind == sumtype.KindEnum:
		report(pass, call.Pos(), assertvariants.CodeNotSumType, "%s is an enum; use Enum or Names", typ)
		return
	}

	args := expectedNames(pass, call, m, st)
	var names []string
	for _, a := range args {
		if a.name == "" {
			report(pass, a.Pos(), assertvariants.CodeUnknownVariant, "%s", assertvariants.UnknownMessage(typ, types.ExprString(a.node)))
			continue
		}
		names = append(names, a.name)
	}
	out := assertvariants.Compare(st.Names(), names)
	if len(out.Missing) > 0 {
		report(pass, call.Pos(), assertvariants.CodeMissingVariant, "%s", assertvariants.MissingMessage(typ, out.Missing))
	}
	for _, name := range out.Unknown {
		report(pass, firstArg(args, name).Pos(), assertvariants.CodeUnknownVariant, "%s", assertvariants.UnknownMessage(typ, name))
	}
	if reportDuplicates {
		for _, name := range out.Duplicates {
			report(pass, secondArg(args, name).Pos(), assertvariants.CodeDuplicateVariant, "%s", assertvariants.DuplicateMessage(typ, name))
		}
	}
}

// report emits a diagnostic whose category is the issue code.
func report(pass *analysis.Pass, pos token.Pos, code, format string, args ...any) {
	pass.Report(analysis.Diagnostic{Pos: pos, Category: code, Message: fmt.Sprintf(format, args...)})
}

// describe derives the declared variants of t. Types of other packages use
// the fact exported while analyzing their package when there is one.
func describe(pass *analysis.Pass, opts sumtype.Options, t types.Type) (*sumtype.SumType, error) {
	st, err := sumtype.Describe(t, opts)
	if err != nil {
		return nil, err
	}
	if st.Obj.Pkg() != nil && st.Obj.Pkg() != pass.Pkg {
		var fact variantsFact
		if pass.ImportObjectFact(st.Obj, &fact) && fact.Kind == st.Kind {
			return st.WithNames(fact.Names), nil
		}
	}
	return st, nil
}

// arg is one element of an expected list. name is empty when the
// argument cannot name a variant at all.
type arg struct {
	name string
	node ast.Expr
}

func (a arg) Pos() token.Pos { return a.node.Pos() }

func firstArg(args []arg, name string) arg {
	for _, a := range args {
		if a.name == name {
			return a
		}
	}
	return arg{}
}

func secondArg(args []arg, name string) arg {
	seen := false
	for _, a := range args {
		if a.name != name {
			continue
		}
		if seen {
			return a
		}
		seen = true
	}
	return arg{}
}

// expectedNames extracts the variant name of every argument of call.
// Non-constant arguments of Names are reported here and dropped.
func expectedNames(pass *analysis.Pass, call *ast.CallExpr, m marker, st *sumtype.SumType) []arg {
	info := pass.TypesInfo
	args := make([]arg, 0, len(call.Args))
	for _, e := range call.Args {
		switch m {
		case markerEnum:
			args = append(args, arg{name: enumArgName(info, e, st), node: e})
		case markerSealed:
			args = append(args, arg{name: sealedArgName(info, e, st), node: e})
		case markerNames:
			tv := info.Types[e]
			if tv.Value == nil || tv.Value.Kind() != constant.String {
				report(pass, e.Pos(), assertvariants.CodeNonConstant, "%s is not a constant variant name", types.ExprString(e))
				continue
			}
			args = append(args, arg{name: constant.StringVal(tv.Value), node: e})
		}
	}
	return args
}

// enumArgName returns the name of the constant e refers to when that
// constant is declared in the same scope as the enum type.
func enumArgName(info *types.Info, e ast.Expr, st *sumtype.SumType) string {
	var id *ast.Ident
	switch x := ast.Unparen(e).(type) {
	case *ast.Ident:
		id = x
	case *ast.SelectorExpr:
		id = x.Sel
	}
	if id == nil {
		return ""
	}
	if c, ok := info.Uses[id].(*types.Const); ok && sameScope(c, st.Obj) {
		return c.Name()
	}
	return ""
}

func sameScope(c *types.Const, tn *types.TypeName) bool {
	if c.Pkg() != tn.Pkg() {
		return false
	}
	// Objects loaded from export data may lack a parent scope.
	return c.Parent() == nil || tn.Parent() == nil || c.Parent() == tn.Parent()
}

// sealedArgName returns the name of the static type of e, N for both N and
// *N, when N is declared in the package that seals the interface.
func sealedArgName(info *types.Info, e ast.Expr, st *sumtype.SumType) string {
	t := info.TypeOf(e)
	if p, ok := t.(*types.Pointer); ok {
		t = p.Elem()
	}
	n, ok := types.Unalias(t).(*types.Named)
	if !ok || types.IsInterface(n) || st.Home == nil {
		return ""
	}
	if pkg := n.Obj().Pkg(); pkg != nil && pkg.Path() == st.Home.Path() {
		return n.Obj().Name()
	}
	return ""
}
