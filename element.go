package klv

/*
element.go implements the family of element parsers described in the
design: bytes, string, integer, mapped (range-scaled float), timestamp
and set. Every parser variant shares one contract -- it is handed the
raw payload bytes of a TLV and produces a [DecodedValue] -- and every
[Element] retains its raw key, length and payload verbatim so that
re-serialization is byte-exact regardless of whether the payload was
ever interpreted.
*/

/*
Element is the unit of decoded content produced by a [Set]. Key, Length
and ValueBytes are preserved verbatim from the wire; Value is the typed
interpretation produced by whichever parser the owning [Set]'s [Registry]
selected (or the generic "unknown element" fallback).
*/
type Element struct {
	Key        []byte
	Length     int
	ValueBytes []byte
	Value      DecodedValue
	Name       string
}

// Tag returns the numeric tag encoded by the receiver's Key.
func (e *Element) Tag() int64 {
	_, tag, err := decodeBEROIDKey(e.Key)
	if err != nil {
		return -1
	}
	return tag
}

/*
Bytes re-serializes the receiver as key ‖ BER(length) ‖ value_bytes,
reproducing the original wire encoding for any element that was
successfully decoded.
*/
func (e *Element) Bytes() []byte {
	out := make([]byte, 0, len(e.Key)+5+len(e.ValueBytes))
	out = append(out, e.Key...)
	out = append(out, encodeBERLength(e.Length)...)
	out = append(out, e.ValueBytes...)
	return out
}

func (e *Element) String() string {
	name := e.Name
	if name == "" {
		name = "0x" + bytesToHexStr(e.Key)
	}
	return name + "=" + e.Value.Display()
}

/*
ElementParser is the shared capability every parser variant implements:
given a registered key, human name, and raw payload, it produces a
decoded [Element].
*/
type ElementParser interface {
	Parse(key []byte, name string, payload []byte) (*Element, error)
}

// unknownElement wraps a tag with no registry entry. Its ValueBytes and
// Key are preserved verbatim per spec.md §4.5 step 2e; its Value is a
// raw-bytes interpretation so callers can still inspect the payload.
func unknownElement(key []byte, payload []byte) *Element {
	return &Element{
		Key:        key,
		Length:     len(payload),
		ValueBytes: payload,
		Value:      RawValue(payload),
		Name:       "",
	}
}

/*
BytesParser yields the raw payload unchanged, displayed as uppercase
space-separated hex. Used for opaque identifiers (e.g. the MIIS Core
Identifier) and, notably, the Checksum element.
*/
type BytesParser struct{}

func (BytesParser) Parse(key []byte, name string, payload []byte) (*Element, error) {
	return &Element{
		Key:        key,
		Length:     len(payload),
		ValueBytes: payload,
		Value:      RawValue(payload),
		Name:       name,
	}, nil
}

/*
StringParser decodes the payload as UTF-8 text. ST 0601 fields are ASCII
in practice; any valid UTF-8 passes through unchanged on encode.
*/
type StringParser struct{}

func (StringParser) Parse(key []byte, name string, payload []byte) (*Element, error) {
	return &Element{
		Key:        key,
		Length:     len(payload),
		ValueBytes: payload,
		Value:      TextValue(string(payload)),
		Name:       name,
	}, nil
}

/*
IntegerParser decodes a fixed-width integer over a configured domain.
Signedness is inferred from DomainLo being negative, matching the
convention used by [RangeMapper].
*/
type IntegerParser struct {
	DomainLo, DomainHi int64
}

func (p IntegerParser) Parse(key []byte, name string, payload []byte) (*Element, error) {
	signed := p.DomainLo < 0
	n := bytesToInt(payload, signed)
	if n < p.DomainLo || n > p.DomainHi {
		return nil, errorIntegerOutOfDomain
	}
	return &Element{
		Key:        key,
		Length:     len(payload),
		ValueBytes: payload,
		Value:      IntValue(n),
		Name:       name,
	}, nil
}

/*
MappedParser decodes a fixed-point field via a [RangeMapper] and attaches
Units to the resulting [DecodedValue]. This is the workhorse parser for
ST 0601: heading, pitch, roll, airspeeds, lat/long, altitude, field of
view, slant range, target width and frame-center geometry are all
instances of this one parser variant, differing only in configuration.
*/
type MappedParser struct {
	Mapper RangeMapper
	Units  string
}

func NewMappedParser(domainLo, domainHi int64, rangeLo, rangeHi float64, units string) (MappedParser, error) {
	m, err := NewRangeMapper(domainLo, domainHi, rangeLo, rangeHi)
	if err != nil {
		return MappedParser{}, err
	}
	return MappedParser{Mapper: m, Units: units}, nil
}

func (p MappedParser) Parse(key []byte, name string, payload []byte) (*Element, error) {
	v, ok := p.Mapper.DecodeBytes(payload)
	var dv DecodedValue
	if ok {
		dv = FloatValue(v, p.Units)
	} else {
		dv = OutOfRangeValue(p.Units)
	}
	return &Element{
		Key:        key,
		Length:     len(payload),
		ValueBytes: payload,
		Value:      dv,
		Name:       name,
	}, nil
}

// TimestampParser decodes the 8-byte microsecond-since-epoch Precision
// Timestamp field (spec.md §4.4).
type TimestampParser struct{}

func (TimestampParser) Parse(key []byte, name string, payload []byte) (*Element, error) {
	ts, err := decodeTimestamp(payload)
	if err != nil {
		return nil, err
	}
	return &Element{
		Key:        key,
		Length:     len(payload),
		ValueBytes: payload,
		Value:      TimestampValue(ts),
		Name:       name,
	}, nil
}

/*
SetParser decodes the payload as a nested local set using its own
[Registry]. This is how UAS LS -> Security LS (and similar two-level
compositions) are expressed: a parent registry entry whose factory is
itself a SetParser with a distinct registry.
*/
type SetParser struct {
	Registry *Registry
}

func (p SetParser) Parse(key []byte, name string, payload []byte) (*Element, error) {
	set, err := decodeSet(payload, p.Registry)
	if err != nil {
		return nil, err
	}
	return &Element{
		Key:        key,
		Length:     len(payload),
		ValueBytes: payload,
		Value:      SetValue(set),
		Name:       name,
	}, nil
}
