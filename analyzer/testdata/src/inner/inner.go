package inner

type Sealed interface{ sealed() } // want Sealed:"sealed:A,B"

type A struct{}

func (A) sealed() {}

func (A) Name() string { return "a" }

type B int

func (B) sealed() {}
