package klv

/*
value.go implements DecodedValue, the statically-typed stand-in for the
heterogeneous value the original Python implementation returns from its
element parsers. See the value.go notes in DESIGN.md for the rationale.
*/

// ValueKind enumerates the shapes a decoded element value may take.
type ValueKind uint8

const (
	KindRaw ValueKind = iota
	KindText
	KindInt
	KindFloat
	KindTimestamp
	KindSet
)

func (k ValueKind) String() string {
	switch k {
	case KindRaw:
		return "Raw"
	case KindText:
		return "Text"
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindTimestamp:
		return "Timestamp"
	case KindSet:
		return "Set"
	default:
		return "Unknown"
	}
}

/*
DecodedValue is the typed interpretation of an element's payload. Exactly
one of its accessor methods is meaningful for a given instance; which one
is determined by Kind.

A mapped float value that held the MISB out-of-range sentinel decodes to
a DecodedValue with Kind KindFloat and OutOfRange true; Float then
returns zero, which should not be used.
*/
type DecodedValue struct {
	kind ValueKind

	raw   []byte
	text  string
	i     int64
	f     float64
	units string
	oor   bool
	ts    Timestamp
	set   *Set
}

func RawValue(b []byte) DecodedValue  { return DecodedValue{kind: KindRaw, raw: b} }
func TextValue(s string) DecodedValue { return DecodedValue{kind: KindText, text: s} }
func IntValue(n int64) DecodedValue   { return DecodedValue{kind: KindInt, i: n} }

func FloatValue(f float64, units string) DecodedValue {
	return DecodedValue{kind: KindFloat, f: f, units: units}
}

func OutOfRangeValue(units string) DecodedValue {
	return DecodedValue{kind: KindFloat, oor: true, units: units}
}

func TimestampValue(ts Timestamp) DecodedValue { return DecodedValue{kind: KindTimestamp, ts: ts} }
func SetValue(s *Set) DecodedValue             { return DecodedValue{kind: KindSet, set: s} }

func (v DecodedValue) Kind() ValueKind { return v.kind }

// RawBytes returns the payload for a KindRaw value.
func (v DecodedValue) RawBytes() []byte { return v.raw }

// Text returns the string for a KindText value.
func (v DecodedValue) Text() string { return v.text }

// Int returns the integer for a KindInt value.
func (v DecodedValue) Int() int64 { return v.i }

// Float returns the real value and unit string for a KindFloat value.
// Check OutOfRange before trusting Float.
func (v DecodedValue) Float() (float64, string) { return v.f, v.units }

// OutOfRange reports whether a KindFloat value held the reserved MISB
// sentinel rather than a usable magnitude.
func (v DecodedValue) OutOfRange() bool { return v.oor }

// Time returns the decoded timestamp for a KindTimestamp value.
func (v DecodedValue) Time() Timestamp { return v.ts }

// Set returns the nested Set for a KindSet value.
func (v DecodedValue) Set() *Set { return v.set }

/*
Display renders the canonical string form of the receiver, matching the
presentation a human-facing pretty-printer would want (spec.md §4.4's
"__display__" form).
*/
func (v DecodedValue) Display() string {
	switch v.kind {
	case KindRaw:
		return bytesToHexStr(v.raw)
	case KindText:
		return v.text
	case KindInt:
		return i64toa(v.i)
	case KindFloat:
		if v.oor {
			return "<out-of-range>"
		}
		s := formatFloat(v.f)
		if v.units != "" {
			s += " " + v.units
		}
		return s
	case KindTimestamp:
		return v.ts.String()
	case KindSet:
		if v.set == nil {
			return "{}"
		}
		return v.set.String()
	default:
		return "<invalid value>"
	}
}

// formatFloat renders f with enough precision to round-trip typical
// ST 0601 mapped magnitudes without the noisy trailing digits a naive
// %v would produce.
func formatFloat(f float64) string {
	return fmtFloat(f, 'f', -1, 64)
}
