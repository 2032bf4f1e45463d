package notsum

import "github.com/reoring/assertvariants"

type Color int // want Color:"enum:Red"

const Red Color = 0

type Shape interface{ shape() } // want Shape:"sealed:Sq"

type Sq struct{}

func (Sq) shape() {}

type Point struct{ X, Y int }

type Stringer interface{ String() string }

func f() {
	assertvariants.Names[Point]("X")  // want `Point is not a sum type: underlying type struct is neither a basic type nor an interface`
	assertvariants.Names[Stringer]()  // want `Stringer is not a sum type: interface has no unexported method`
	assertvariants.Names[int]()       // want `int is not a sum type: only defined types can be sum types`
	assertvariants.Names[[]Color]()   // want `\[\]Color is not a sum type`
	assertvariants.Sealed[Color](Red) // want `Color is an enum; use Enum or Names`
	assertvariants.Enum[Shape](Sq{})  // want `Shape is a sealed interface; use Sealed or Names`
}

func g[T any]() {
	assertvariants.Names[T]() // want `T is not a sum type: type parameters have no fixed variant set`
}
