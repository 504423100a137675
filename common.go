package klv

/*
common.go contains elements, types and functions used by myriad
components throughout this package.
*/

import (
	"encoding/hex"
	"errors"
	"strconv"
	"strings"
)

/*
official import aliases.
*/
var (
	mkerr    func(string) error                   = errors.New
	itoa     func(int) string                     = strconv.Itoa
	i64toa   func(int64) string                   = func(n int64) string { return strconv.FormatInt(n, 10) }
	fmtFloat func(float64, byte, int, int) string = strconv.FormatFloat
	uc       func(string) string                  = strings.ToUpper
	join     func([]string, string) string        = strings.Join
	hexEnc   func([]byte) string                  = hex.EncodeToString
)

// isHexDigit reports whether b is a valid hexadecimal digit.
func isHexDigit(b byte) bool {
	switch {
	case '0' <= b && b <= '9':
		return true
	case 'a' <= b && b <= 'f':
		return true
	case 'A' <= b && b <= 'F':
		return true
	}
	return false
}

func newStrBuilder() strings.Builder { return strings.Builder{} }
