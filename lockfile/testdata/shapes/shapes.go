package shapes

type Shape interface{ area() float64 }

type Circle struct{ R float64 }

func (Circle) area() float64 { return 0 }

type Square struct{ S float64 }

func (*Square) area() float64 { return 0 }

type Color int

const (
	Red Color = iota
	Green
	Blue
	// Unset is not a color.
	Unset Color = -1 //assertvariants:ignore
)

// ID is a plain named type, not an enum.
type ID string
