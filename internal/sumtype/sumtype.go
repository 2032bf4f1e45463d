// Package sumtype finds the variants of Go sum types using go/types.
//
// An enum type is a defined type with a basic underlying type; its variants
// are the constants of exactly that type declared in the scope of the type.
// A sealed interface is a defined interface with at least one unexported
// method; its variants are the named types that implement it by value or by
// pointer, looked up in the package declaring the unexported methods. That
// is usually the interface's own package, but an interface embedding a
// sealed interface of another package is sealed by that package. Unexported
// methods from two packages cannot be implemented at all.
//
// An instance of a generic type, such as Box[int], is classified through its
// origin; its variants are the constants or types matching that instance.
package sumtype

import (
	"errors"
	"fmt"
	"go/token"
	"go/types"
	"sort"
	"strings"
)

// Kind classifies a sum type.
type Kind int

const (
	// Invalid is the zero Kind.
	Invalid Kind = iota
	// KindEnum is a defined basic type with declared constants.
	KindEnum
	// KindSealed is an interface with an unexported method.
	KindSealed
)

func (k Kind) String() string {
	switch k {
	case KindEnum:
		return "enum"
	case KindSealed:
		return "sealed"
	default:
		return "invalid"
	}
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "enum":
		return KindEnum, nil
	case "sealed":
		return KindSealed, nil
	}
	return Invalid, fmt.Errorf("sumtype: unknown kind %q", s)
}

// Shape describes the payload of a variant. It is informational only: the
// check compares names, never shapes.
type Shape int

const (
	// ShapeUnit is an enum constant.
	ShapeUnit Shape = iota
	// ShapeStruct is a struct type; Variant.Fields holds its field count.
	ShapeStruct
	// ShapeOther is any other named type (slice, map, func, basic...).
	ShapeOther
)

// Variant is one declared variant of a sum type.
type Variant struct {
	Name   string
	Pos    token.Pos
	Shape  Shape
	Fields int
}

// SumType is a classified type together with its declared variants in
// declaration order.
type SumType struct {
	Obj  *types.TypeName
	Kind Kind
	// Home is the package the variants are declared in. It is nil for a
	// sealed interface that no package can implement.
	Home     *types.Package
	Variants []Variant
}

// Names returns the variant names in declaration order.
func (s *SumType) Names() []string {
	names := make([]string, len(s.Variants))
	for i, v := range s.Variants {
		names[i] = v.Name
	}
	return names
}

// Path returns the package qualified name of the type, e.g.
// "example.com/shapes.Shape".
func (s *SumType) Path() string { return Path(s.Obj) }

// Path returns the package qualified name of a type name.
func Path(obj *types.TypeName) string {
	if obj.Pkg() == nil {
		return obj.Name()
	}
	return obj.Pkg().Path() + "." + obj.Name()
}

// WithNames returns a copy of s whose variants are replaced by bare names.
// It is used when the declared set comes from an analysis fact rather than
// from the scope of the type.
func (s *SumType) WithNames(names []string) *SumType {
	vs := make([]Variant, len(names))
	for i, n := range names {
		vs[i] = Variant{Name: n}
	}
	return &SumType{Obj: s.Obj, Kind: s.Kind, Home: s.Home, Variants: vs}
}

// ErrNotSumType is matched by errors.Is for every *NotSumTypeError.
var ErrNotSumType = errors.New("not a sum type")

// NotSumTypeError reports why a type has no enumerable variant set.
type NotSumTypeError struct {
	Type   types.Type
	Reason string
}

func (e *NotSumTypeError) Error() string {
	return fmt.Sprintf("%s is not a sum type: %s", e.Type, e.Reason)
}

// Is makes errors.Is(err, ErrNotSumType) work.
func (e *NotSumTypeError) Is(target error) bool { return target == ErrNotSumType }

// Options tunes variant discovery.
type Options struct {
	// Skip reports constants that must not count as variants, e.g. the
	// ones carrying an //assertvariants:ignore directive.
	Skip func(*types.Const) bool
}

// Classify returns the kind of t without listing its variants.
func Classify(t types.Type) (*types.Named, Kind, error) {
	switch tt := types.Unalias(t).(type) {
	case *types.TypeParam:
		return nil, Invalid, &NotSumTypeError{Type: t, Reason: "type parameters have no fixed variant set"}
	case *types.Named:
		if tt.TypeParams().Len() > 0 && tt.TypeArgs().Len() == 0 {
			return nil, Invalid, &NotSumTypeError{Type: t, Reason: "generic type is not instantiated"}
		}
		switch u := tt.Underlying().(type) {
		case *types.Basic:
			if u.Info()&types.IsConstType == 0 {
				return nil, Invalid, &NotSumTypeError{Type: t, Reason: fmt.Sprintf("underlying type %s cannot hold constants", u)}
			}
			return tt, KindEnum, nil
		case *types.Interface:
			if !sealed(u) {
				return nil, Invalid, &NotSumTypeError{Type: t, Reason: "interface has no unexported method, so its implementations are open"}
			}
			return tt, KindSealed, nil
		default:
			return nil, Invalid, &NotSumTypeError{Type: t, Reason: fmt.Sprintf("underlying type %s is neither a basic type nor an interface", kindName(u))}
		}
	default:
		return nil, Invalid, &NotSumTypeError{Type: t, Reason: "only defined types can be sum types"}
	}
}

// Describe classifies t and lists its declared variants.
func Describe(t types.Type, opts Options) (*SumType, error) {
	named, kind, err := Classify(t)
	if err != nil {
		return nil, err
	}
	obj := named.Obj()
	st := &SumType{Obj: obj, Kind: kind}
	switch kind {
	case KindEnum:
		st.Home = obj.Pkg()
		st.Variants = enumVariants(named, opts)
	case KindSealed:
		st.Home, _ = sealingPackage(named.Underlying().(*types.Interface))
		st.Variants = sealedVariants(named, st.Home)
	}
	return st, nil
}

// Declared lists the sum types declared at the package scope of pkg.
// Enum types are only included when they have at least one constant: a
// defined basic type without constants is indistinguishable from an
// ordinary named type. Sealed interfaces are always included.
func Declared(pkg *types.Package, opts Options) []*SumType {
	var out []*SumType
	scope := pkg.Scope()
	for _, name := range scope.Names() {
		tn, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || tn.IsAlias() {
			continue
		}
		st, err := Describe(tn.Type(), opts)
		if err != nil {
			continue
		}
		if st.Kind == KindEnum && len(st.Variants) == 0 {
			continue
		}
		out = append(out, st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Obj.Pos() < out[j].Obj.Pos() })
	return out
}

func sealed(iface *types.Interface) bool {
	_, ok := sealingPackage(iface)
	return ok
}

// sealingPackage returns the package declaring the unexported methods of
// iface; ok is false when all methods are exported. The package is nil when
// the unexported methods come from more than one package.
func sealingPackage(iface *types.Interface) (pkg *types.Package, ok bool) {
	for i := 0; i < iface.NumMethods(); i++ {
		m := iface.Method(i)
		if m.Exported() {
			continue
		}
		if !ok {
			pkg, ok = m.Pkg(), true
			continue
		}
		if pkg == nil || m.Pkg() == nil || m.Pkg().Path() != pkg.Path() {
			return nil, true
		}
	}
	return pkg, ok
}

func enumVariants(named *types.Named, opts Options) []Variant {
	scope := named.Obj().Parent()
	if scope == nil {
		return nil
	}
	var vs []Variant
	for _, name := range scope.Names() {
		c, ok := scope.Lookup(name).(*types.Const)
		if !ok || c.Name() == "_" || !types.Identical(c.Type(), named) {
			continue
		}
		if opts.Skip != nil && opts.Skip(c) {
			continue
		}
		vs = append(vs, Variant{Name: c.Name(), Pos: c.Pos(), Shape: ShapeUnit})
	}
	sortByPos(vs)
	return vs
}

func sealedVariants(named *types.Named, home *types.Package) []Variant {
	if home == nil {
		return nil
	}
	iface := named.Underlying().(*types.Interface)
	scope := home.Scope()
	var vs []Variant
	for _, name := range scope.Names() {
		tn, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || tn.IsAlias() {
			continue
		}
		n, ok := tn.Type().(*types.Named)
		if !ok || n.TypeParams().Len() > 0 || types.IsInterface(n) {
			continue
		}
		if !types.Implements(n, iface) && !types.Implements(types.NewPointer(n), iface) {
			continue
		}
		v := Variant{Name: tn.Name(), Pos: tn.Pos(), Shape: ShapeOther}
		if st, ok := n.Underlying().(*types.Struct); ok {
			v.Shape = ShapeStruct
			v.Fields = st.NumFields()
		}
		vs = append(vs, v)
	}
	sortByPos(vs)
	return vs
}

func sortByPos(vs []Variant) {
	sort.SliceStable(vs, func(i, j int) bool { return vs[i].Pos < vs[j].Pos })
}

func kindName(t types.Type) string {
	s := fmt.Sprintf("%T", t)
	return strings.ToLower(strings.TrimPrefix(s, "*types."))
}
