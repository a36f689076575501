package enc

import (
	"fmt"
	"github.com/pkg/errors"
	"strings"
)

type Encoder interface {
	// Name is the user-friendly name of this encoder
	Name() string
	// Code represents the short (one-letter) code for the encoder
	Code() byte

	// Encode will take an array of bytes and encode it using this encoder
	Encode([]byte) string

	// Decode is the reverse process of encoding
	Decode(string) ([]byte, error)

	// BlocksizeRaw returns the block size (number of bytes) this encoder takes at one time
	BlocksizeRaw() int

	// BlocksizeEncoded returns the block size (number of characters) output by this encoder for every input block
	BlocksizeEncoded() int

	// Ratio is the number of output characters per input byte
	Ratio() float64

	// Return a list of test patterns for the specified encoding
	TestPatterns() []string
}

// Encoders lists all known encoders
var Encoders = []Encoder{
	&Base45Encoder{},
}

// Lookup finds the encoder either by its name (case-insensitive) or its one-letter code
func Lookup(name string) (Encoder, error) {
	for _, e := range Encoders {
		if strings.EqualFold(e.Name(), name) || (len(name) == 1 && name[0] == e.Code()) {
			return e, nil
		}
	}
	return nil, errors.Errorf("unknown encoder: %q", name)
}

func describe(e Encoder) string {
	return fmt.Sprintf("%v(%v)", e.Name(), string(e.Code()))
}
