package assertvariants

// PkgPath is the import path the analyzer uses to recognise marker calls.
const PkgPath = "github.com/reoring/assertvariants"

// Marker function names.
const (
	FuncEnum   = "Enum"
	FuncSealed = "Sealed"
	FuncNames  = "Names"
)

// Enum asserts that variants names every constant declared for the enum
// type T and nothing else. Each argument must be an identifier (or a
// qualified identifier) of a constant, so a misspelled or removed variant
// is already rejected by the compiler.
//
//	assertvariants.Enum[Color](Red, Green, Blue)
func Enum[T comparable](variants ...T) {}

// Sealed asserts that variants holds one value for every type implementing
// the sealed interface T and nothing else. The static type of each argument
// names the variant; pointer and value forms are equivalent.
//
//	assertvariants.Sealed[Shape]((*Circle)(nil), Square{}, Poly{})
func Sealed[T any](variants ...T) {}

// Names asserts that names lists exactly the variants of T, which may be
// an enum type or a sealed interface. Names must be constant strings. Use
// it when the variants cannot be referenced from the call site, such as
// unexported constants of another package.
//
//	assertvariants.Names[levels.Level]("low", "mid", "High")
func Names[T any](names ...string) {}
