package dups

import "github.com/reoring/assertvariants"

type Color int // want Color:"enum:Red,Green"

const (
	Red Color = iota
	Green
)

func f() {
	assertvariants.Enum[Color](Red, Green, Red)                   // want `Red is listed more than once for Color`
	assertvariants.Names[Color]("Green", "Red", "Green", "Green") // want `Green is listed more than once for Color`
	assertvariants.Enum[Color](Red, Green)
}
