package enc

import (
	"github.com/bokysan/base45"
	"github.com/pkg/errors"
)

// -------------------------------------------------------

// Base45Encoder encodes 2 bytes to 3 characters. The alphabet is the QR code alphanumeric set.
type Base45Encoder struct {
}

func (b *Base45Encoder) Name() string {
	return "Base45"
}

func (b *Base45Encoder) String() string {
	return describe(b)
}

func (b *Base45Encoder) Code() byte {
	return 'F'
}

func (b *Base45Encoder) Encode(data []byte) string {
	return base45.Encode(data)
}

func (b *Base45Encoder) Decode(data string) ([]byte, error) {
	res, err := base45.Decode(data)
	if err != nil {
		err = errors.WithStack(err)
		return nil, err
	}
	return res, nil
}

func (b *Base45Encoder) BlocksizeRaw() int {
	return 2
}

func (b *Base45Encoder) BlocksizeEncoded() int {
	return 3
}

func (b *Base45Encoder) Ratio() float64 {
	return 3.0 / 2.0
}

func (b *Base45Encoder) TestPatterns() []string {
	return []string{
		"0123456789ABCDEFGHIJKLMNOPQRST",
		"UV0WX0YZ0 $0%*0+-0./0:00",
		"BB8",
		"%69 VD92EX0",
		"FGWFGWFGWU5",
	}
}
