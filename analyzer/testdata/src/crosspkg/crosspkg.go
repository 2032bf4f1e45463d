package crosspkg

import (
	"levels"
	"sealed"

	"github.com/reoring/assertvariants"
)

func f() {
	assertvariants.Names[levels.Level]("low", "mid", "High")
	assertvariants.Names[levels.Level]("High", "high") // want `levels.Level is missing variants low, mid` `high is not a variant of levels.Level`
	assertvariants.Enum[levels.Level](levels.High)     // want `levels.Level is missing variants low, mid`

	assertvariants.Sealed[sealed.Shape](&sealed.Circle{}, sealed.Square{}, sealed.Poly{}, sealed.Point{}, sealed.Raw{})
	assertvariants.Sealed[sealed.Shape](&sealed.Circle{}) // want `sealed.Shape is missing variants Square, Poly, Point, Raw`
}
