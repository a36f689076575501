package streams

import (
	"github.com/stretchr/testify/require"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
)

func Test_OpenInput(t *testing.T) {
	obj, err := OpenInput("testdata/file.txt")
	require.NoErrorf(t, err, "Could not open file %s: %v", "testdata/file.txt", err)
	defer obj.Close()

	require.Equal(t, "testdata/file.txt", obj.String())
	data, err := ioutil.ReadAll(obj)
	require.NoError(t, err)
	require.Equal(t, "BB8\n", string(data))

	require.NoError(t, obj.Close())
	require.True(t, obj.Closed())
	require.NoError(t, obj.Close(), "Second close should be a no-op")
}

func Test_OpenInputMissing(t *testing.T) {
	_, err := OpenInput("testdata/does-not-exist.txt")
	require.Error(t, err)
}

func Test_OpenStandardStreams(t *testing.T) {
	in, err := OpenInput(StandardStream)
	require.NoError(t, err)
	require.Equal(t, "stdin", in.String())
	require.NoError(t, in.Close())

	out, err := OpenOutput("")
	require.NoError(t, err)
	require.Equal(t, "stdout", out.String())
	require.NoError(t, out.Close())

	// Standard streams must survive Close
	_, err = os.Stdout.Stat()
	require.NoError(t, err)
}

func Test_OpenOutput(t *testing.T) {
	dir, err := ioutil.TempDir("", "base45-streams")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	name := filepath.Join(dir, "out.txt")
	obj, err := OpenOutput(name)
	require.NoError(t, err)
	require.Equal(t, name, obj.String())

	_, err = obj.Write([]byte("%69 VD92EX0"))
	require.NoError(t, err)
	LogClose(obj)

	_, err = obj.Write([]byte("more"))
	require.Error(t, err, "Writing to a closed stream should fail")

	data, err := ioutil.ReadFile(name)
	require.NoError(t, err)
	require.Equal(t, "%69 VD92EX0", string(data))
}

func Test_SafeWrappersAreNotNested(t *testing.T) {
	f, err := os.Open("testdata/file.txt")
	require.NoError(t, err)

	safe := NewSafeReader(f)
	require.Same(t, safe, NewSafeReader(safe))
	require.NoError(t, safe.Close())
}
