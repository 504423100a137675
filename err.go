package klv

/*
err.go contains error constructors and literals used frequently
throughout this package.
*/

import "sync"

var (
	errorIndefiniteLength   error = mkerr("indefinite BER length form is not supported")
	errorEmptyLength        error = mkerr("length bytes not found")
	errorTruncatedLength    error = mkerr("length bytes truncated")
	errorTruncatedKey       error = mkerr("BER-OID key bytes truncated")
	errorTruncatedContent   error = mkerr("element content truncated")
	errorTruncatedPacket    error = mkerr("packet content truncated")
	errorIntegerOutOfDomain error = mkerr("integer value outside configured domain")
	errorInvalidDomain      error = mkerr("invalid integer domain: lower bound must be less than upper bound")
	errorInvalidRange       error = mkerr("invalid real-valued range: lower bound must be less than upper bound")
)

var errCache sync.Map

// mkerrf concatenates parts into a single error message, caching the
// resulting error so repeated failures of the same shape share one
// allocation.
func mkerrf(parts ...any) error {
	if len(parts) == 1 {
		if s, ok := parts[0].(string); ok {
			if v, hit := errCache.Load(s); hit {
				return v.(error)
			}
		}
	}

	b := newStrBuilder()
	for _, p := range parts {
		switch v := p.(type) {
		case string:
			b.WriteString(v)
		case int:
			b.WriteString(itoa(v))
		case int64:
			b.WriteString(i64toa(v))
		default:
			b.WriteString("<unsupported>")
		}
	}
	msg := b.String()

	if v, hit := errCache.Load(msg); hit {
		return v.(error)
	}
	e := mkerr(msg)
	errCache.Store(msg, e)
	return e
}
