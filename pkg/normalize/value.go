package normalize

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

type Kind uint8

const (
	KindAbsent Kind = iota
	KindBool
	KindInt
	KindLabel
)

func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindLabel:
		return "label"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Value is a raw input whose shape is only known at runtime. The zero Value
// is Absent, so a struct field of type Value that is missing from a JSON
// payload needs no special handling.
type Value struct {
	kind  Kind
	b     bool
	n     int64
	label string
}

func Absent() Value { return Value{} }

func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

func Int(n int64) Value { return Value{kind: KindInt, n: n} }

func Label(s string) Value { return Value{kind: KindLabel, label: s} }

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

func (v Value) AsInt() (int64, bool) { return v.n, v.kind == KindInt }

func (v Value) AsLabel() (string, bool) { return v.label, v.kind == KindLabel }

func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.n, 10)
	case KindLabel:
		return v.label
	default:
		return ""
	}
}

// Parse reads a query-string value. Empty input is Absent, base-10 integers
// are Int, "true"/"false" in any case are Bool, and everything else is a
// trimmed Label.
func Parse(s string) Value {
	s = strings.TrimSpace(s)
	if s == "" {
		return Absent()
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Int(n)
	}
	switch strings.ToLower(s) {
	case "true":
		return Bool(true)
	case "false":
		return Bool(false)
	}
	return Label(s)
}

func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*v = Absent()
		return nil
	}

	switch data[0] {
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*v = Bool(b)
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = Label(strings.TrimSpace(s))
		return nil
	}

	if n, err := strconv.ParseInt(string(data), 10, 64); err == nil {
		*v = Int(n)
		return nil
	}

	// Integral numbers written as floats (1.0, 1e0) are still integers.
	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil || f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return fmt.Errorf("normalize: value must be a boolean, an integer or a string, got %s", data)
	}
	*v = Int(int64(f))
	return nil
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindBool:
		return json.Marshal(v.b)
	case KindInt:
		return json.Marshal(v.n)
	case KindLabel:
		return json.Marshal(v.label)
	default:
		return []byte("null"), nil
	}
}
