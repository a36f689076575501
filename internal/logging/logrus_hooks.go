package logging

import (
	"path"
	"runtime"

	"github.com/sirupsen/logrus"
)

// defaultCallerSkip is the number of frames between Fire and the code which logged the message
const defaultCallerSkip = 9

// ContextHook will add go source information (file, line, func)
type ContextHook struct {
	// Skip overrides the number of stack frames to skip. Zero means the default.
	Skip int
}

// Levels defines which logging levels fire the hook. In our case, all levels.
func (hook ContextHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire is the method that's executed when logging event is logged. This method will go back the call stack
// and find which method executed the call.
func (hook ContextHook) Fire(entry *logrus.Entry) error {
	skip := hook.Skip
	if skip == 0 {
		skip = defaultCallerSkip
	}

	if pc, file, line, ok := runtime.Caller(skip); ok {
		funcName := runtime.FuncForPC(pc).Name()

		entry.Data["file"] = path.Base(file)
		entry.Data["line"] = line
		entry.Data["func"] = path.Base(funcName)
	}

	return nil
}
