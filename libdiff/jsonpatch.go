package libdiff

import (
	"encoding/json"
	"fmt"
	"strings"

	jsonpatch "github.com/evanphx/json-patch"
)

type patchOp struct {
	Op    string          `json:"op"`
	Path  string          `json:"path"`
	Value json.RawMessage `json:"value,omitempty"`
}

// JSONPatch exports a change set as an RFC 6902 operation list for
// downstream tooling: additions become "add", deletions "remove",
// modifications "replace".  The result is validated by decoding it as
// a patch.  This is an export of the change set only; confdiff does
// not apply or reverse patches.
func JSONPatch(changes []Change) ([]byte, error) {
	ops := make([]patchOp, 0, len(changes))
	for i := range changes {
		c := &changes[i]
		op := patchOp{Path: pointer(c.Path)}
		switch c.Kind {
		case Addition:
			op.Op = "add"
		case Deletion:
			op.Op = "remove"
		case Modification:
			op.Op = "replace"
		}
		if c.Kind != Deletion {
			raw, err := json.Marshal(c.New)
			if err != nil {
				return nil, fmt.Errorf("marshaling value at %s: %w", c.Path, err)
			}
			op.Value = raw
		}
		ops = append(ops, op)
	}
	d, err := json.Marshal(ops)
	if err != nil {
		return nil, err
	}
	if _, err := jsonpatch.DecodePatch(d); err != nil {
		return nil, fmt.Errorf("produced invalid patch: %w", err)
	}
	return d, nil
}

// pointer converts a dotted change path to an RFC 6901 JSON pointer,
// dropping the root fragment: root.a.b -> /a/b.
func pointer(path string) string {
	frags := Fragments(path)
	if len(frags) > 0 && frags[0] == RootPath {
		frags = frags[1:]
	}
	var b strings.Builder
	for _, f := range frags {
		f = strings.ReplaceAll(f, "~", "~0")
		f = strings.ReplaceAll(f, "/", "~1")
		b.WriteByte('/')
		b.WriteString(f)
	}
	return b.String()
}
