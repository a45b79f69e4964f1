package kv

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// ErrMalformedKey is returned when a composite key cannot be split.
var ErrMalformedKey = errors.New("kv: malformed composite key")

// Key joins parts into a single store key.
//
// Every part except the last is prefixed with its 2-byte big-endian length, the
// last part is appended raw. A single-part key is therefore the part itself.
// Composite keys sharing a first part are contiguous in a range; across first
// parts they order by length first, so Key("b", x) comes before Key("aa", y).
func Key(parts ...[]byte) []byte {
	size := 0
	for _, p := range parts {
		size += len(p) + 2
	}
	out := make([]byte, 0, size)
	for i, p := range parts {
		if i < len(parts)-1 {
			if len(p) > math.MaxUint16 {
				panic(fmt.Sprintf("kv: key part of %d bytes is too long", len(p)))
			}
			out = binary.BigEndian.AppendUint16(out, uint16(len(p)))
		}
		out = append(out, p...)
	}
	return out
}

// SplitKey is the inverse of Key for a key built from n parts.
func SplitKey(key []byte, n int) ([][]byte, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: invalid part count %d", ErrMalformedKey, n)
	}
	parts := make([][]byte, 0, n)
	rest := key
	for i := 0; i < n-1; i++ {
		if len(rest) < 2 {
			return nil, ErrMalformedKey
		}
		l := int(binary.BigEndian.Uint16(rest))
		rest = rest[2:]
		if len(rest) < l {
			return nil, ErrMalformedKey
		}
		parts = append(parts, rest[:l])
		rest = rest[l:]
	}
	return append(parts, rest), nil
}
