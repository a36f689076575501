package base45

import "fmt"

const (
	// Alphabet is the ordered set of symbols used by Base45. The position of a symbol in this string
	// is its value. The order is significant and the alphabet is case-sensitive.
	Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

	// Size is the number of symbols in the alphabet
	Size = 45

	// SizeSquared is the weight of the third symbol in a triple
	SizeSquared = Size * Size

	invalidIndex = 0xFF
)

var decodeMap [256]byte

func init() {
	for i := range decodeMap {
		decodeMap[i] = invalidIndex
	}
	for i := 0; i < len(Alphabet); i++ {
		decodeMap[Alphabet[i]] = byte(i)
	}
}

// symbolOf returns the symbol at the given position. The encoder only ever produces indices in
// [0, Size), anything else is a bug in this package.
func symbolOf(index byte) byte {
	if index >= Size {
		panic(fmt.Sprintf("base45: symbol index %d out of range", index))
	}
	return Alphabet[index]
}

// IndexOf returns the value of the symbol c. The second result is false if c is not part of the
// Base45 alphabet.
func IndexOf(c byte) (byte, bool) {
	i := decodeMap[c]
	return i, i != invalidIndex
}

func indexOfLinear(c byte) (byte, bool) {
	for i := 0; i < len(Alphabet); i++ {
		if Alphabet[i] == c {
			return byte(i), true
		}
	}
	return invalidIndex, false
}
