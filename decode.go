package base45

const (
	maxTriple = 0xFFFF
	maxPair   = 0xFF
)

// DecodedLen returns the number of bytes n Base45 symbols decode into. A length of 3k+1 can never be
// produced by the encoder and yields ErrInvalidBase45.
func DecodedLen(n int) (int, error) {
	if n < 0 || n%3 == 1 {
		return 0, ErrInvalidBase45
	}
	return 2*(n/3) + (n%3)/2, nil
}

// Decode returns the bytes represented by the Base45 string s. Decoding is all-or-nothing: on any
// malformed input the result is nil and the error is ErrInvalidBase45.
func Decode(s string) ([]byte, error) {
	return DecodeBytes([]byte(s))
}

// DecodeBytes is like Decode but takes the symbols as a byte slice.
func DecodeBytes(src []byte) ([]byte, error) {
	n, err := DecodedLen(len(src))
	if err != nil {
		return nil, err
	}

	// Validate everything before producing any output
	indices := make([]byte, len(src))
	for i, c := range src {
		idx, ok := IndexOf(c)
		if !ok {
			return nil, ErrInvalidBase45
		}
		indices[i] = idx
	}

	dst := make([]byte, 0, n)
	for len(indices) >= 3 {
		v := uint32(indices[0]) + uint32(indices[1])*Size + uint32(indices[2])*SizeSquared
		if v > maxTriple {
			return nil, ErrInvalidBase45
		}
		dst = append(dst, byte(v>>8), byte(v))
		indices = indices[3:]
	}

	if len(indices) == 2 {
		v := uint32(indices[0]) + uint32(indices[1])*Size
		if v > maxPair {
			return nil, ErrInvalidBase45
		}
		dst = append(dst, byte(v))
	}

	return dst, nil
}
