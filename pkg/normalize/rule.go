package normalize

type State string

const (
	CodePositive = 1
	CodeNegative = 0
	CodeNeutral  = -1
)

// Rule is the mapping table for one tri-state concept.
type Rule struct {
	Name     string
	Positive State
	Negative State
	Neutral  State
}

var (
	UserState = Rule{
		Name:     "user_state",
		Positive: "active",
		Negative: "disabled",
		Neutral:  "pending",
	}

	ColumnRequestState = Rule{
		Name:     "column_request_state",
		Positive: "approved",
		Negative: "rejected",
		Neutral:  "pending",
	}

	ReportState = Rule{
		Name:     "report_state",
		Positive: "approved",
		Negative: "rejected",
		Neutral:  "pending",
	}
)

// Normalize resolves v to one of the rule's labels. The positive label or the
// integer 1 wins first, then the negative label or 0; anything else,
// including Absent, -1, unknown labels and out-of-range integers, is neutral.
func (r Rule) Normalize(v Value) State {
	switch v.kind {
	case KindLabel:
		switch State(v.label) {
		case r.Positive:
			return r.Positive
		case r.Negative:
			return r.Negative
		}
	case KindInt:
		switch v.n {
		case CodePositive:
			return r.Positive
		case CodeNegative:
			return r.Negative
		}
	case KindAbsent, KindBool:
	}
	return r.Neutral
}

// Denormalize returns the storage code for a label.
func (r Rule) Denormalize(s State) int {
	switch s {
	case r.Positive:
		return CodePositive
	case r.Negative:
		return CodeNegative
	default:
		return CodeNeutral
	}
}

// Code normalizes v and returns its storage code.
func (r Rule) Code(v Value) int {
	return r.Denormalize(r.Normalize(v))
}

// FromCode reads a persisted integer back into a label.
func (r Rule) FromCode(code int) State {
	return r.Normalize(Int(int64(code)))
}

func (r Rule) Labels() []State {
	return []State{r.Positive, r.Negative, r.Neutral}
}

// Accepts reports whether v is one of the shapes the rule is defined for:
// Absent, one of its labels, or one of the codes -1, 0 and 1.
func (r Rule) Accepts(v Value) bool {
	switch v.kind {
	case KindAbsent:
		return true
	case KindLabel:
		s := State(v.label)
		return s == r.Positive || s == r.Negative || s == r.Neutral
	case KindInt:
		return v.n == CodePositive || v.n == CodeNegative || v.n == CodeNeutral
	default:
		return false
	}
}
