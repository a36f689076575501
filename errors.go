package base45

import "github.com/pkg/errors"

// ErrInvalidBase45 is returned by the decoding functions when the input is not a valid Base45 string:
// it contains a symbol outside of the alphabet, has a length of 3n+1 symbols, or a group of symbols
// which decodes to a value that does not fit into its bytes.
var ErrInvalidBase45 = errors.New("Invalid base45 string")
