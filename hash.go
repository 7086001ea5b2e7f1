package identicon

import (
	"crypto/md5"
	"fmt"
	"strings"
)

const filenameTrim = 56

// hashInput expands the input string into its sixteen byte MD5 digest.
// The digest is only used to derive pixels so MD5 being broken for
// collision resistance doesn't matter here.
func hashInput(input string) []byte {
	sum := md5.Sum([]byte(input))
	return sum[:]
}

func digestHex(hex []byte) string {
	return fmt.Sprintf("%X", hex)
}

// Filename derives the output filename for an input string in the given
// format, e.g. "identicon.png" for the input "identicon".
func Filename(input string, f Format) string {
	return safeFilename(input) + f.Ext()
}

// safeFilename maps an arbitrary input string to a usable filename stem;
// path separators and NULs are replaced and the result is trimmed. An
// input with nothing usable left falls back to its digest.
func safeFilename(input string) string {
	s := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', 0:
			return '_'
		}
		return r
	}, input)

	if s == "" {
		return digestHex(hashInput(input))
	}

	return fmt.Sprintf("%.*s", filenameTrim, s)
}
