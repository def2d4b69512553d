package spec

import "unicode/utf8"

// Body is a HTTP request body.
//
// It is equivalent to a []byte but has a custom implementation of
// [encoding.TextMarshaler] allowing a nicer format for serialisation.
type Body []byte //nolint:recvcheck // Receiver must differ to match encoding.TextMarshaler

// MarshalText implements [encoding.TextMarshaler] for [Body].
func (b Body) MarshalText() ([]byte, error) {
	return b, nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] for [Body].
func (b *Body) UnmarshalText(text []byte) error {
	*b = append((*b)[:0], text...)
	return nil
}

// String implements [fmt.Stringer] for [Body].
func (b Body) String() string {
	return string(b)
}

// Text returns the body as a string along with a boolean reporting whether
// the payload is valid UTF-8 text.
//
// Binary payloads (invalid UTF-8 or containing a NUL byte) report false and
// should be carried through onward transformations verbatim.
func (b Body) Text() (text string, ok bool) {
	if !utf8.Valid(b) {
		return "", false
	}

	for _, c := range b {
		if c == 0 {
			return "", false
		}
	}

	return string(b), true
}
