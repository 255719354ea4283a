//go:generate go run github.com/dmarkham/enumer -type=LogFormat -trimprefix=LogFormat -transform=kebab -text
package logging

import (
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogFormat selects the encoder of every logger.
type LogFormat int

const (
	LogFormatConsole LogFormat = iota
	LogFormatJSON
)

var loggerMutex sync.RWMutex // guards access to global logger state

// loggers is the set of named loggers handed out so far
var loggers = make(map[string]*zap.SugaredLogger)

var level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
var format = LogFormatConsole
var output = zapcore.Lock(zapcore.AddSync(os.Stderr))

var logCore = newCore(format, output, level)

var DefaultLogger = GetLogger("rangealg")

// GetLogger returns the logger registered under name, creating it on first use.
func GetLogger(name string) *zap.SugaredLogger {
	loggerMutex.Lock()
	defer loggerMutex.Unlock()
	log, ok := loggers[name]
	if !ok {
		log = zap.New(logCore).Named(name).Sugar()
		loggers[name] = log
	}
	return log
}

// SetLevel changes the level of all loggers, including those already handed out.
func SetLevel(l zapcore.Level) {
	level.SetLevel(l)
}

// Configure replaces the encoder and destination of all loggers. Loggers obtained before the
// call keep writing through the old core, so callers should fetch loggers again afterwards.
func Configure(f LogFormat, w io.Writer) {
	loggerMutex.Lock()
	defer loggerMutex.Unlock()
	format = f
	output = zapcore.Lock(zapcore.AddSync(w))
	logCore = newCore(format, output, level)
	loggers = make(map[string]*zap.SugaredLogger)
	DefaultLogger = zap.New(logCore).Named("rangealg").Sugar()
	loggers["rangealg"] = DefaultLogger
}

func newCore(f LogFormat, w zapcore.WriteSyncer, enab zapcore.LevelEnabler) zapcore.Core {
	encCfg := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}

	var enc zapcore.Encoder
	switch f {
	case LogFormatJSON:
		encCfg.EncodeLevel = zapcore.LowercaseLevelEncoder
		enc = zapcore.NewJSONEncoder(encCfg)
	default:
		enc = zapcore.NewConsoleEncoder(encCfg)
	}
	return zapcore.NewCore(enc, w, enab)
}
