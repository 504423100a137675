package klv

/*
timestamp.go implements the MISB ST 0601 Precision Timestamp codec:
8 big-endian unsigned bytes holding microseconds elapsed since the Unix
epoch (00:00:00, January 1 1970, UTC), leap seconds excluded. See MISB
ST 0603 for the canonical definition this package's decoder follows.
*/

import "time"

/*
Timestamp holds a MISB precision timestamp as microseconds since the
Unix epoch. Sub-microsecond precision is never representable on the
wire, so Timestamp does not attempt to carry it.
*/
type Timestamp int64

/*
NewTimestampFromTime truncates t to microsecond precision and returns
the corresponding [Timestamp].
*/
func NewTimestampFromTime(t time.Time) Timestamp {
	return Timestamp(t.UnixMicro())
}

// Cast returns the receiver as a [time.Time] in UTC.
func (t Timestamp) Cast() time.Time {
	return time.UnixMicro(int64(t)).UTC()
}

// String renders the receiver using the same layout MISB test vectors
// are conventionally quoted in: "2006-01-02 15:04:05.000000+00:00",
// with the fractional part omitted when the microsecond count is zero.
func (t Timestamp) String() string {
	tm := t.Cast()
	us := tm.Nanosecond() / 1000

	var b []byte
	b = appendDatePart(b, tm)
	if us != 0 {
		b = append(b, '.')
		b = appendFixedDigits(b, us, 6)
	}
	b = append(b, "+00:00"...)
	return string(b)
}

func appendDatePart(b []byte, t time.Time) []byte {
	b = appendFixedDigits(b, t.Year(), 4)
	b = append(b, '-')
	b = appendFixedDigits(b, int(t.Month()), 2)
	b = append(b, '-')
	b = appendFixedDigits(b, t.Day(), 2)
	b = append(b, ' ')
	b = appendFixedDigits(b, t.Hour(), 2)
	b = append(b, ':')
	b = appendFixedDigits(b, t.Minute(), 2)
	b = append(b, ':')
	b = appendFixedDigits(b, t.Second(), 2)
	return b
}

func appendFixedDigits(b []byte, v int, width int) []byte {
	start := len(b)
	for i := 0; i < width; i++ {
		b = append(b, '0')
	}
	for i := width - 1; i >= 0 && v > 0; i-- {
		b[start+i] = byte('0' + v%10)
		v /= 10
	}
	return b
}

/*
decodeTimestamp interprets raw as 8 big-endian unsigned bytes holding
microseconds since the Unix epoch. len(raw) must be 8.
*/
func decodeTimestamp(raw []byte) (Timestamp, error) {
	if len(raw) != 8 {
		return 0, mkerrf("decodeTimestamp: expected 8 bytes, got ", len(raw))
	}
	u := bytesToInt(raw, false)
	return Timestamp(u), nil
}

// encodeTimestamp renders t back to its 8-byte big-endian wire form.
func encodeTimestamp(t Timestamp) ([]byte, error) {
	return intToBytes(int64(t), 8, false)
}
