package types

import "github.com/google/uuid"

// guidChars is the 64-character alphabet of the compressed 22-character
// GlobalId form. It differs from standard base64 in its last two characters.
const guidChars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz_$"

// NewGUID returns a fresh GlobalId: a random UUID compressed to the
// 22-character form used by model files.
func NewGUID() string {
	return CompressGUID(uuid.New())
}

// CompressGUID encodes the 16 bytes of a UUID as 22 characters: the first
// byte as two characters, then five groups of three bytes as four
// characters each.
func CompressGUID(u uuid.UUID) string {
	out := make([]byte, 0, 22)
	out = appendGroup(out, uint32(u[0]), 2)
	for i := 1; i < 16; i += 3 {
		n := uint32(u[i])<<16 | uint32(u[i+1])<<8 | uint32(u[i+2])
		out = appendGroup(out, n, 4)
	}
	return string(out)
}

func appendGroup(dst []byte, n uint32, width int) []byte {
	group := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		group[i] = guidChars[n&63]
		n >>= 6
	}
	return append(dst, group...)
}
