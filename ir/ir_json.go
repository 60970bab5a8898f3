package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// MarshalJSON renders the node as its native JSON value: objects in
// field order, arrays in element order, numbers without quoting.  This
// is what makes change records and results serialize the way the wire
// contract expects, rather than as the IR struct itself.
func (y *Node) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := appendJSON(buf, y); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func appendJSON(buf *bytes.Buffer, y *Node) error {
	if y == nil {
		buf.WriteString("null")
		return nil
	}
	switch y.Type {
	case NullType:
		buf.WriteString("null")
	case BoolType:
		buf.WriteString(strconv.FormatBool(y.Bool))
	case NumberType:
		if y.Int64 != nil {
			buf.WriteString(strconv.FormatInt(*y.Int64, 10))
			return nil
		}
		if y.Float64 == nil {
			return fmt.Errorf("number node with no value")
		}
		d, err := json.Marshal(*y.Float64)
		if err != nil {
			return err
		}
		buf.Write(d)
	case StringType:
		d, err := json.Marshal(y.String)
		if err != nil {
			return err
		}
		buf.Write(d)
	case ArrayType:
		buf.WriteByte('[')
		for i, yv := range y.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := appendJSON(buf, yv); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case ObjectType:
		buf.WriteByte('{')
		for i, f := range y.Fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			d, err := json.Marshal(f)
			if err != nil {
				return err
			}
			buf.Write(d)
			buf.WriteByte(':')
			if err := appendJSON(buf, y.Values[i]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("cannot marshal node type %s", y.Type)
	}
	return nil
}
