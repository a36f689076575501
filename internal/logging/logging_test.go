package logging

import (
	"bytes"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"testing"
)

func Test_VerbosityLevel(t *testing.T) {
	require.Equal(t, logrus.PanicLevel, VerbosityLevel(-1))
	require.Equal(t, logrus.PanicLevel, VerbosityLevel(0))
	require.Equal(t, logrus.ErrorLevel, VerbosityLevel(2))
	require.Equal(t, logrus.DebugLevel, VerbosityLevel(5))
	require.Equal(t, logrus.TraceLevel, VerbosityLevel(6))
	require.Equal(t, logrus.TraceLevel, VerbosityLevel(42))
}

func Test_SetVerbosity(t *testing.T) {
	old := logrus.GetLevel()
	defer logrus.SetLevel(old)

	SetVerbosity([]bool{true, true, true, true})
	require.Equal(t, "INFO", VerbosityName())

	SetVerbosity(nil)
	require.Equal(t, "PANIC", VerbosityName())
}

func Test_NewFormatter(t *testing.T) {
	_, ok := NewFormatter("json", "auto", false).(*logrus.JSONFormatter)
	require.True(t, ok, "Expected a JSON formatter")

	text, ok := NewFormatter("text", " No ", true).(*logrus.TextFormatter)
	require.True(t, ok, "Expected a text formatter")
	require.True(t, text.DisableColors)
	require.False(t, text.ForceColors)
	require.True(t, text.FullTimestamp)
}

func Test_OpenLogFile(t *testing.T) {
	w, err := OpenLogFile("-")
	require.NoError(t, err)
	require.Equal(t, os.Stderr, w)

	dir, err := os.MkdirTemp("", "base45-log")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	w, err = OpenLogFile(filepath.Join(dir, "test.log"))
	require.NoError(t, err)
	require.NotNil(t, w)
	require.NoError(t, w.(*os.File).Close())

	_, err = OpenLogFile(filepath.Join(dir, "missing", "test.log"))
	require.Error(t, err)
}

func Test_TraceBuffer(t *testing.T) {
	old := logrus.GetLevel()
	defer logrus.SetLevel(old)
	defer logrus.SetOutput(os.Stderr)

	buf := &bytes.Buffer{}
	logrus.SetOutput(buf)

	logrus.SetLevel(logrus.DebugLevel)
	TraceBuffer("input", []byte("AB"))
	require.Empty(t, buf.String())

	logrus.SetLevel(logrus.TraceLevel)
	TraceBuffer("input", []byte("AB"))
	require.Contains(t, buf.String(), "input (2 bytes)")
}
