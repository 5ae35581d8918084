package uniuri

import (
	"crypto/rand"
)

const (
	// StdLen is a standard length of uniuri string to achieve ~95 bits of entropy.
	StdLen = 16

	// PasswordLen is the length of generated account passwords.
	PasswordLen = 24

	byteRange = 256
)

// StdChars is a set of standard characters allowed in uniuri string.
var StdChars = []byte("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789") //nolint:gochecknoglobals

// New returns a random string of StdLen standard characters.
func New() string {
	return NewLenChars(StdLen, StdChars)
}

// Password returns a random string suitable as an initial account password.
func Password() string {
	return NewLenChars(PasswordLen, StdChars)
}

// NewLenChars returns a random string of length characters drawn uniformly from chars.
// chars must hold between 2 and 256 characters.
func NewLenChars(length int, chars []byte) string {
	if length <= 0 {
		return ""
	}

	clen := len(chars)
	if clen < 2 || clen > byteRange {
		panic("uniuri: wrong charset length for NewLenChars")
	}

	// bytes at or above limit are rejected so every character is equally likely
	limit := byteRange - byteRange%clen
	out := make([]byte, 0, length)
	buf := make([]byte, length+length/2)

	for len(out) < length {
		if _, err := rand.Read(buf); err != nil {
			panic("uniuri: error reading random bytes: " + err.Error())
		}

		for _, b := range buf {
			if int(b) >= limit {
				continue
			}

			out = append(out, chars[int(b)%clen])
			if len(out) == length {
				break
			}
		}
	}

	return string(out)
}
