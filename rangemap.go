package klv

/*
rangemap.go implements the reversible linear mapping between an integer
fixed-point domain and a real-valued physical range that backs nearly
every angle, position and geometry tag in MISB ST 0601 (heading, pitch,
latitude, altitude, slant range, and so on).
*/

import (
	"math"

	"golang.org/x/exp/constraints"
)

/*
RangeMapper implements a reversible linear map between an integer domain
[DomainLo, DomainHi] and a real-valued range [RangeLo, RangeHi].

Byte width and signedness are inferred from DomainLo: a negative
DomainLo selects signed two's-complement storage, and the byte width is
the smallest that holds both bounds' magnitude.

MISB ST 0601 reserves the most-negative two's-complement value of a
signed field as an out-of-range sentinel (the domain lower bound is
conventionally -(2^N-1), not -2^N, for exactly this reason).
[RangeMapper.DecodeBytes] surfaces that sentinel explicitly rather than
silently returning a number.
*/
type RangeMapper struct {
	DomainLo, DomainHi int64
	RangeLo, RangeHi   float64
	Signed             bool
	ByteWidth          int
}

/*
NewRangeMapper returns a [RangeMapper] configured for the given integer
domain and real-valued range, with signedness and byte width inferred
from domainLo per the package convention.
*/
func NewRangeMapper(domainLo, domainHi int64, rangeLo, rangeHi float64) (RangeMapper, error) {
	if domainLo >= domainHi {
		return RangeMapper{}, errorInvalidDomain
	}
	if rangeLo >= rangeHi {
		return RangeMapper{}, errorInvalidRange
	}

	signed := domainLo < 0
	mag := maxMagnitude(domainLo, domainHi)
	width := (bitLength(mag) + 7) / 8
	if signed {
		// Reserve room for the sign bit when the magnitude alone would
		// exactly fill the byte boundary.
		if need := bytesRequired(domainHi, true); need > width {
			width = need
		}
		if need := bytesRequired(domainLo, true); need > width {
			width = need
		}
	}
	if width < 1 {
		width = 1
	}

	return RangeMapper{
		DomainLo:  domainLo,
		DomainHi:  domainHi,
		RangeLo:   rangeLo,
		RangeHi:   rangeHi,
		Signed:    signed,
		ByteWidth: width,
	}, nil
}

func maxMagnitude[T constraints.Signed](a, b T) int64 {
	abs := func(v T) int64 {
		n := int64(v)
		if n < 0 {
			n = -n
		}
		return n
	}
	x, y := abs(a), abs(b)
	if x > y {
		return x
	}
	return y
}

/*
Encode maps a real-valued v in [RangeLo, RangeHi] to the nearest integer
in [DomainLo, DomainHi], clamping v to the configured range first.
*/
func (r RangeMapper) Encode(v float64) int64 {
	if v < r.RangeLo {
		v = r.RangeLo
	} else if v > r.RangeHi {
		v = r.RangeHi
	}

	scaled := float64(r.DomainLo) + (v-r.RangeLo)*float64(r.DomainHi-r.DomainLo)/(r.RangeHi-r.RangeLo)
	n := int64(math.Round(scaled))
	if n < r.DomainLo {
		n = r.DomainLo
	} else if n > r.DomainHi {
		n = r.DomainHi
	}
	return n
}

/*
Decode maps an integer n in [DomainLo, DomainHi] to its real-valued
counterpart in [RangeLo, RangeHi].

Decode does not itself special-case the reserved sentinel; callers that
care about MISB's most-negative-value convention should check
[RangeMapper.IsSentinel] first (the mapped float element parser does
exactly this -- see element.go).
*/
func (r RangeMapper) Decode(n int64) float64 {
	return r.RangeLo + float64(n-r.DomainLo)*(r.RangeHi-r.RangeLo)/float64(r.DomainHi-r.DomainLo)
}

/*
IsSentinel reports whether n is the most-negative two's-complement
value representable in [RangeMapper.ByteWidth] bytes -- the MISB
out-of-range indicator for signed fields.
*/
func (r RangeMapper) IsSentinel(n int64) bool {
	if !r.Signed {
		return false
	}
	bits := uint(r.ByteWidth) * 8
	if bits >= 64 {
		return n == math.MinInt64
	}
	return n == -(int64(1) << (bits - 1))
}

/*
DecodeBytes interprets raw as a big-endian integer over len(raw) bytes
with the mapper's configured signedness, then decodes it per [RangeMapper.Decode].
ok is false when raw holds the reserved out-of-range sentinel.
*/
func (r RangeMapper) DecodeBytes(raw []byte) (value float64, ok bool) {
	n := bytesToInt(raw, r.Signed)
	if r.IsSentinel(n) {
		return 0, false
	}
	return r.Decode(n), true
}

/*
EncodeBytes maps v back to its big-endian byte encoding at the mapper's
configured width and signedness.
*/
func (r RangeMapper) EncodeBytes(v float64) ([]byte, error) {
	return intToBytes(r.Encode(v), r.ByteWidth, r.Signed)
}
