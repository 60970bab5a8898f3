package encode

import (
	"github.com/fatih/color"
)

// Colors selects the color for each JSON token class.
type Colors struct {
	Key     *color.Color
	String  *color.Color
	Number  *color.Color
	Literal *color.Color
}

func NewColors() *Colors {
	return &Colors{
		Key:     color.New(color.FgCyan),
		String:  color.New(color.FgGreen),
		Number:  color.New(color.FgYellow),
		Literal: color.New(color.FgMagenta),
	}
}

func (es *EncState) key(s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color.Key.Sprint(s)
}

func (es *EncState) str(s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color.String.Sprint(s)
}

func (es *EncState) number(s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color.Number.Sprint(s)
}

func (es *EncState) literal(s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color.Literal.Sprint(s)
}
