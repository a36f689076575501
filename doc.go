// Package base45 implements the Base45 encoding as described in draft-faltstrom-base45 (RFC 9285).
//
// Base45 packs every two bytes into three symbols taken from a 45 character alphabet which is a
// subset of the QR code alphanumeric mode. A trailing odd byte is packed into two symbols:
//
//	base45.EncodeString("Hello!!")  // "%69 VD92EX0"
//	base45.Decode("%69 VD92EX0")    // []byte("Hello!!"), nil
//
// All functions are stateless and safe for concurrent use.
package base45
