package util

import (
	"os"
	"strings"
)

// ReadTextFile reads a file as text with permissive decoding: bytes
// that are not valid UTF-8 are dropped rather than surfaced as an
// error. lssea logs captured over serial consoles occasionally carry
// stray control bytes.
func ReadTextFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.ToValidUTF8(string(data), ""), nil
}
