package base45

const (
	quickBrownFoxDecoded = "The quick brown fox jumps over the lazy dog"
	quickBrownFoxEncoded = "8UADZCKFEOEDJOD2KC54EM-DX.CH8FSKDQ$D.OE44E5$CS44+8DK44OEC3EFGVCD2"
)

// vectors are known-good pairs from draft-faltstrom-base45 and other Base45 implementations
var vectors = []struct {
	name    string
	decoded string
	encoded string
}{
	{"empty", "", ""},
	{"AB", "AB", "BB8"},
	{"hello", "Hello!!", "%69 VD92EX0"},
	{"base-45", "base-45", "UJCLQE7W581"},
	{"ietf", "ietf!", "QED8WEX0"},
	{"quick brown fox", quickBrownFoxDecoded, quickBrownFoxEncoded},
	{"unicode", "foo \xc2\xa9 bar \xf0\x9d\x8c\x86 baz", "X.C82EIROA44GECH74C-J1/GUJCW2"},
	{"emoji", "I \xe2\x9d\xa4\xef\xb8\x8f  Rust", "0B98TSD%K.ENY244JA QE"},
	{"single zero", "\x00", "00"},
	{"double zero", "\x00\x00", "000"},
	{"counting", "\x00\x01\x02\x03\x04", "100KB040"},
	{"six 0xff", "\xff\xff\xff\xff\xff\xff", "FGWFGWFGW"},
	{"seven 0xff", "\xff\xff\xff\xff\xff\xff\xff", "FGWFGWFGWU5"},
	{"eight 0xff", "\xff\xff\xff\xff\xff\xff\xff\xff", "FGWFGWFGWFGW"},
}

var encoderTest = []byte("\000\000\000\000\377\377\377\377\125\125\125\125\252\252\252\252" +
	"\201\143\310\322\307\174\262\027\137\117\316\311\111\055\122\041" +
	"\141\251\161\040\045\263\006\163\346\330\104\060\171\120\127\277")
