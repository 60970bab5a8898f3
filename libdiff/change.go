package libdiff

import (
	"fmt"
	"strings"

	"github.com/confkit/confdiff/ir"
)

// RootPath is the path of the document root; every change path starts
// with it.
const RootPath = "root"

// PathSep separates path fragments.
const PathSep = "."

type Kind int

const (
	Addition Kind = iota
	Deletion
	Modification
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		Addition:     "addition",
		Deletion:     "deletion",
		Modification: "modification",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"addition":     Addition,
		"deletion":     Deletion,
		"modification": Modification,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized change kind %q", d)
	}
	*k = kk
	return nil
}

// Change is one path-addressed difference between two documents.
// An Addition carries New only, a Deletion Old only, a Modification
// both.
type Change struct {
	Path string   `json:"path"`
	Kind Kind     `json:"change_type"`
	Old  *ir.Node `json:"old_value,omitempty"`
	New  *ir.Node `json:"new_value,omitempty"`
}

// Fragments splits a change path into its structural fragments,
// including the leading root fragment.
func Fragments(path string) []string {
	return strings.Split(path, PathSep)
}
