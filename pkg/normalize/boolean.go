package normalize

import "strings"

// Boolean maps v onto true/false. Absent yields def, Int yields true only for
// 1, and Label yields true only for "true" in any case. Out-of-range integers
// fall through to false.
func Boolean(v Value, def bool) bool {
	switch v.kind {
	case KindAbsent:
		return def
	case KindBool:
		return v.b
	case KindInt:
		return v.n == 1
	case KindLabel:
		return strings.EqualFold(v.label, "true")
	default:
		return def
	}
}

// OptionalBoolean is Boolean for partial updates: an Absent value means the
// field was omitted and yields nil.
func OptionalBoolean(v Value) *bool {
	if v.IsAbsent() {
		return nil
	}
	b := Boolean(v, false)
	return &b
}
