package assertvariants

func Enum[T comparable](variants ...T) {}

func Sealed[T any](variants ...T) {}

func Names[T any](names ...string) {}
