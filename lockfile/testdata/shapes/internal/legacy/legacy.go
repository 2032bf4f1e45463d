package legacy

type Format string

const (
	Doc  Format = "doc"
	Docx Format = "docx"
)
