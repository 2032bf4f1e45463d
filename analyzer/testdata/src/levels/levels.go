package levels

type Level int // want Level:"enum:low,mid,High"

const (
	low Level = iota
	mid
	High
)
