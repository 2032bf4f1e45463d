package sumtype

import (
	"go/ast"
	"go/token"
	"go/types"
	"strings"
)

// IgnoreDirective excludes a constant from its enum's variants when it
// appears in the constant's doc or line comment.
const IgnoreDirective = "//assertvariants:ignore"

// IgnoredConsts returns the constants of files marked with IgnoreDirective.
// A directive on the doc comment of an unparenthesized const declaration
// applies to all of its names.
func IgnoredConsts(files []*ast.File, info *types.Info) map[*types.Const]bool {
	ignored := map[*types.Const]bool{}
	for _, f := range files {
		ast.Inspect(f, func(n ast.Node) bool {
			gd, ok := n.(*ast.GenDecl)
			if !ok || gd.Tok != token.CONST {
				return true
			}
			declLevel := !gd.Lparen.IsValid() && hasDirective(gd.Doc)
			for _, spec := range gd.Specs {
				vs, ok := spec.(*ast.ValueSpec)
				if !ok {
					continue
				}
				if !declLevel && !hasDirective(vs.Doc) && !hasDirective(vs.Comment) {
					continue
				}
				for _, id := range vs.Names {
					if c, ok := info.Defs[id].(*types.Const); ok {
						ignored[c] = true
					}
				}
			}
			return false
		})
	}
	return ignored
}

// SkipIn adapts an ignore set to Options.Skip.
func SkipIn(ignored map[*types.Const]bool) Options {
	return Options{Skip: func(c *types.Const) bool { return ignored[c] }}
}

func hasDirective(cg *ast.CommentGroup) bool {
	if cg == nil {
		return false
	}
	for _, c := range cg.List {
		if f := strings.Fields(c.Text); len(f) > 0 && f[0] == IgnoreDirective {
			return true
		}
	}
	return false
}
