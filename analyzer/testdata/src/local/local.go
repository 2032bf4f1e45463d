package local

import "github.com/reoring/assertvariants"

func f() {
	type Dir int
	const (
		Up Dir = iota
		Down
	)
	assertvariants.Enum[Dir](Up, Down)
	assertvariants.Enum[Dir](Up)                    // want `Dir is missing variant Down`
	assertvariants.Names[Dir]("Up", "Down", "Left") // want `Left is not a variant of Dir`
}
