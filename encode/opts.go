package encode

// Format selects the output document format.
type Format int

const (
	YAMLFormat Format = iota
	JSONFormat
)

// EncState carries the configuration of one Encode call.
type EncState struct {
	format Format
	indent int
}

type EncodeOption func(*EncState)

func EncodeFormat(f Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}
