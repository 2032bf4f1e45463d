package sealed

import "github.com/reoring/assertvariants"

type Shape interface { // want Shape:"sealed:Circle,Square,Poly,Point,Raw"
	area() float64
}

type Circle struct{ R float64 }

func (*Circle) area() float64 { return 0 }

type Square struct{ float64 }

func (Square) area() float64 { return 0 }

type Poly struct {
	X, Y []float64
}

func (Poly) area() float64 { return 0 }

type Point struct{}

func (Point) area() float64 { return 0 }

type Raw []byte

func (Raw) area() float64 { return 0 }

type Other struct{}

type Nothing interface{ nothing() } // want Nothing:"sealed:"

var _ = func() { assertvariants.Sealed[Shape]((*Circle)(nil), Square{}, Poly{}, Point{}, Raw(nil)) }

func complete() {
	assertvariants.Sealed[Shape](&Circle{}, Square{}, Poly{}, Point{}, Raw{})
	assertvariants.Sealed[Shape](Raw{}, Point{}, Poly{}, Square{}, &Circle{})
	assertvariants.Names[Shape]("Raw", "Point", "Poly", "Square", "Circle")
	assertvariants.Sealed[Nothing]()
	assertvariants.Names[Nothing]()
}

func missing() {
	assertvariants.Sealed[Shape](&Circle{}, Square{})                // want `Shape is missing variants Poly, Point, Raw`
	assertvariants.Names[Shape]("Circle", "Square", "Poly", "Point") // want `Shape is missing variant Raw`
}

func unknown(s Shape) {
	assertvariants.Sealed[Shape](&Circle{}, Square{}, Poly{}, Point{}, Raw{}, s)     // want `s is not a variant of Shape`
	assertvariants.Sealed[Shape](&Circle{}, Square{}, Poly{}, Point{}, Raw{}, nil)   // want `nil is not a variant of Shape`
	assertvariants.Names[Shape]("Circle", "Square", "Poly", "Point", "Raw", "Other") // want `Other is not a variant of Shape`
	assertvariants.Names[Nothing]("Anything")                                        // want `Anything is not a variant of Nothing`
}
