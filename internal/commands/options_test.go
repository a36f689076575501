package commands

import (
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

func Test_ForEachLine(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"empty", "", nil},
		{"single line without newline", "BB8", []string{"BB8"}},
		{"single line", "BB8\n", []string{"BB8"}},
		{"windows line endings", "BB8\r\n%69 VD92EX0\r\n", []string{"BB8", "%69 VD92EX0"}},
		{"empty lines", "\n\nBB8", []string{"", "", "BB8"}},
		{"trailing spaces are kept", "BB8 \n", []string{"BB8 "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var lines []string
			var numbers []int
			err := ForEachLine(strings.NewReader(tt.input), func(number int, line []byte) error {
				lines = append(lines, string(line))
				numbers = append(numbers, number)
				return nil
			})
			require.NoError(t, err)
			require.Equal(t, tt.expected, lines)
			for i, n := range numbers {
				require.Equal(t, i+1, n)
			}
		})
	}
}

func Test_ForEachLineStops(t *testing.T) {
	calls := 0
	stop := errors.New("stop")
	err := ForEachLine(strings.NewReader("a\nb\nc\n"), func(number int, line []byte) error {
		calls++
		return stop
	})
	require.Equal(t, stop, err)
	require.Equal(t, 1, calls)
}

func Test_TrimNewline(t *testing.T) {
	require.Equal(t, "BB8", string(TrimNewline([]byte("BB8\r\n\n"))))
	require.Equal(t, "%69 ", string(TrimNewline([]byte("%69 \n"))))
	require.Equal(t, "", string(TrimNewline([]byte("\n"))))
}

func Test_Encoder(t *testing.T) {
	o := &IOOptions{}
	e, err := o.Encoder()
	require.NoError(t, err)
	require.Equal(t, "Base45", e.Name())

	o.Encoding = "rot13"
	_, err = o.Encoder()
	require.Error(t, err)
}
