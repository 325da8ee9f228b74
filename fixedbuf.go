// Package fixedbuf implements a fixed-length, mutable, randomly indexable
// byte container with text encode/decode, slicing and copying.
//
// initially tried to build everything on bytes.Buffer but the main
// restriction with that is that it grows on demand and only ever appends,
// while this container has a fixed length for its whole lifetime and needs
// writes at arbitrary offsets
//
// a Buffer either owns its storage or is a view over a sub-range of another
// Buffer's storage, obtained with Slice. Views alias, they never copy:
// mutations through a view are visible through the parent and vice versa.
// Copy is the by-value counterpart.
//
// text moves in and out of a Buffer through the codec subpackage, which
// dispatches a small closed set of named encodings (utf8, ascii, ucs2,
// base64, hex and the legacy binary) to standard codec implementations.
//
// Some examples on using the package are implemented as executable go
// programs in the `examples` subdirectory.
package fixedbuf

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Version is the last tagged version of the package
const Version = "1.0.0"

var logging bool
var logWriters = []zapcore.WriteSyncer{os.Stdout}
var logger *zap.Logger
var zapEncoderConfig = zapcore.EncoderConfig{
	TimeKey:        "ts",
	LevelKey:       "level",
	NameKey:        "logger",
	CallerKey:      "caller",
	MessageKey:     "msg",
	StacktraceKey:  "stacktrace",
	EncodeLevel:    zapcore.LowercaseLevelEncoder,
	EncodeTime:     zapcore.ISO8601TimeEncoder,
	EncodeDuration: zapcore.SecondsDurationEncoder,
}

// EnableLogging enables logging if true is passed
// and disables it if false is passed.
func EnableLogging(enable bool) {
	logging = enable
}

// AddLogWriter adds a new io.Writer as a target for writing
// logs.
func AddLogWriter(writer io.Writer) {
	logWriters = append(logWriters, zapcore.AddSync(writer))
	initializeLogger()
}

// SetLogWriters will set the passed io.Writer instances as targets for
// writing logs.
func SetLogWriters(writers ...io.Writer) {
	writesyncers := make([]zapcore.WriteSyncer, 0, len(writers))
	for _, w := range writers {
		writesyncers = append(writesyncers, zapcore.AddSync(w))
	}

	logWriters = writesyncers
	initializeLogger()
}

func initializeLogger() {
	ws := zap.CombineWriteSyncers(logWriters...)
	logger = zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(zapEncoderConfig),
		ws, zapcore.InfoLevel,
	))
}

// init maintains a central location of all things that happen when the package is initialized
// instead of everything being scattered in multiple source files
func init() {
	logging = false
	initializeLogger()
}
