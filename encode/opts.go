package encode

import (
	"strings"

	"github.com/confkit/confdiff/format"
)

type EncState struct {
	format format.Format
	indent int
	Color  *Colors
}

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c }
}

func (es *EncState) pad(sb *strings.Builder, depth int) {
	sb.WriteString(strings.Repeat(" ", es.indent*depth))
}
