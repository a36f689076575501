package base45

// EncodedLen returns the length of the Base45 encoding of n source bytes.
func EncodedLen(n int) int {
	return 3*(n/2) + 2*(n%2)
}

// Encode returns the Base45 encoding of src. Every two bytes become three symbols, a trailing odd
// byte becomes two symbols. Encoding never fails.
func Encode(src []byte) string {
	return string(AppendEncode(make([]byte, 0, EncodedLen(len(src))), src))
}

// EncodeString encodes the bytes of the string s.
func EncodeString(s string) string {
	return Encode([]byte(s))
}

// AppendEncode appends the Base45 encoding of src to dst and returns the extended buffer.
func AppendEncode(dst, src []byte) []byte {
	if n := len(dst) + EncodedLen(len(src)); n > cap(dst) {
		grown := make([]byte, len(dst), n)
		copy(grown, dst)
		dst = grown
	}

	for len(src) >= 2 {
		v := uint32(src[0])<<8 | uint32(src[1])
		e, rest := v/SizeSquared, v%SizeSquared
		d, c := rest/Size, rest%Size
		dst = append(dst, symbolOf(byte(c)), symbolOf(byte(d)), symbolOf(byte(e)))
		src = src[2:]
	}

	if len(src) == 1 {
		d, c := src[0]/Size, src[0]%Size
		dst = append(dst, symbolOf(c), symbolOf(d))
	}

	return dst
}
