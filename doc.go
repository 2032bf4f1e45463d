// Package assertvariants provides build-time assertions that a list of
// variant names matches exactly the variants declared on a sum type.
//
// Go has two common shapes of sum type and both are supported:
//
//   - enum types: a defined type with a basic underlying type and the
//     constants of that type declared next to it;
//   - sealed interfaces: an interface with at least one unexported method,
//     implemented by the named types of its own package.
//
// The marker functions below have empty bodies. They cost nothing at run
// time and exist so that the compiler resolves every listed identifier and
// the assertvariants analyzer (see package analyzer and cmd/variantcheck)
// can compare the list against the declared variants:
//
//	func (f Format) Extension() string {
//		assertvariants.Enum[Format](Pdf, Docx, Doc)
//		switch f {
//		case Pdf:
//			return "pdf"
//		default:
//			return "doc"
//		}
//	}
//
//	var _ = func() { assertvariants.Sealed[Shape]((*Circle)(nil), Square{}) }
//
// A new Format constant or a new Shape implementation then fails
// `go vet -vettool=$(which variantcheck) ./...` at the assertion until the
// list (and the code next to it) is updated.
//
// Design policy:
//   - Keep the public surface in the root package: markers, Compare and the Issue model.
//   - Put type inspection under internal/sumtype, the analysis pass under analyzer/,
//     the recorded-expectation lock file under lockfile/ and the CLIs under cmd/.
package assertvariants
