package basic

import "github.com/reoring/assertvariants"

type Color int // want Color:"enum:Red,Green,Blue"

const (
	Red Color = iota
	Green
	Blue
)

const NotColor = 3

type Mode string // want Mode:"enum:Read,Write"

const (
	Read  Mode = "r"
	Write Mode = "w"
	// Default is the mode used when none is given.
	Default = Read //assertvariants:ignore
)

type Never int

var _ = func() { assertvariants.Enum[Color](Red, Green, Blue) }

var _ = func() { assertvariants.Enum[Color](Red, Blue) } // want `Color is missing variant Green`

func complete() {
	assertvariants.Enum[Color](Red, Green, Blue)
	assertvariants.Enum[Color](Blue, Red, Green)
	assertvariants.Enum[Color](
		Green,
		Blue,
		Red,
	)
	assertvariants.Enum(Red, Green, Blue)
	assertvariants.Names[Color]("Red", "Green", "Blue")
	assertvariants.Enum[Color](Red, Red, Green, Blue)
	assertvariants.Enum[Mode](Read, Write)
	assertvariants.Enum[Never]()
	assertvariants.Names[Never]()
}

func missing() {
	assertvariants.Enum[Color](Red, Green) // want `Color is missing variant Blue`
	assertvariants.Enum[Color]()           // want `Color is missing variants Red, Green, Blue`
	assertvariants.Names[Mode]("Write")    // want `Mode is missing variant Read`
}

func unknown() {
	assertvariants.Names[Color]("Red", "Green", "Blue", "Purple") // want `Purple is not a variant of Color`
	assertvariants.Names[Never]("Anything")                       // want `Anything is not a variant of Never`
	assertvariants.Enum[Mode](Read, Write, Default)               // want `Default is not a variant of Mode`
	assertvariants.Enum[Color](Red, Green, Blue, 7)               // want `7 is not a variant of Color`
	assertvariants.Enum[Color](Red, Green, Blue, NotColor)        // want `NotColor is not a variant of Color`
}

func shadowed() {
	Blue := Color(2)
	assertvariants.Enum[Color](Red, Green, Blue) // want `Color is missing variant Blue` `Blue is not a variant of Color`
}

func nonConstant(s string) {
	assertvariants.Names[Color]("Red", "Green", "Blue", s) // want `s is not a constant variant name`
}
