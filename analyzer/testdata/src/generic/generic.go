package generic

import "github.com/reoring/assertvariants"

type Box[T any] int

const (
	One, Two Box[int]   = 1, 2
	Big      Box[int64] = 3
)

type Empty[T any] string

type Opt[T any] interface{ opt(T) }

type Some struct{}

func (Some) opt(int) {}

type Word struct{}

func (Word) opt(string) {}

func f() {
	assertvariants.Enum[Box[int]](One, Two)
	assertvariants.Enum(Big)
	assertvariants.Enum[Empty[int]]()
	assertvariants.Sealed[Opt[int]](Some{})
}

func g() {
	assertvariants.Enum[Box[int]](One)                // want `Box\[int\] is missing variant Two`
	assertvariants.Names[Box[int64]]("Big", "One")    // want `One is not a variant of Box\[int64\]`
	assertvariants.Sealed[Opt[string]]()              // want `Opt\[string\] is missing variant Word`
	assertvariants.Names[Opt[string]]("Word", "Some") // want `Some is not a variant of Opt\[string\]`
}
