package common

import "bytes"

// WipeByteArray overwrites b with zeros. It is safe to call with nil.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// TokenFromBytes returns the pasted token in b without surrounding
// whitespace. b is not modified; the caller still owns wiping it.
func TokenFromBytes(b []byte) (string, error) {
	t := bytes.TrimSpace(b)
	if len(t) == 0 {
		return "", ErrEmptyToken
	}
	if bytes.ContainsAny(t, " \t\r\n") {
		return "", ErrMalformedToken
	}
	return string(t), nil
}
