package embedded

import (
	"inner"

	"github.com/reoring/assertvariants"
)

// Shape is sealed by package inner.
type Shape interface{ inner.Sealed } // want Shape:"sealed:A,B"

type Named interface { // want Named:"sealed:A"
	inner.Sealed
	Name() string
}

// Mixed has unexported methods of two packages; nothing implements it.
type Mixed interface { // want Mixed:"sealed:"
	inner.Sealed
	mixed()
}

type Local struct{}

func (Local) mixed() {}

func complete() {
	assertvariants.Sealed[Shape](inner.A{}, inner.B(0))
	assertvariants.Names[Shape]("B", "A")
	assertvariants.Sealed[Named](inner.A{})
	assertvariants.Sealed[Mixed]()
}

func missing() {
	assertvariants.Sealed[Shape]()          // want `Shape is missing variants A, B`
	assertvariants.Sealed[Shape](inner.A{}) // want `Shape is missing variant B`
}

func unknown() {
	assertvariants.Names[Shape]("A", "B", "Local") // want `Local is not a variant of Shape`
	assertvariants.Names[Mixed]("Local")           // want `Local is not a variant of Mixed`
}
