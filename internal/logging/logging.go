package logging

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/xid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const appName = "minigrep"

// Config contains the information required to set up logging
type Config struct {
	// Enabled turns logging on; when false every log line is dropped
	Enabled bool
	// Level is the minimum level that gets written, eg "debug" or
	// "warn". Defaults to "debug" when empty.
	Level string
	// Output is where log lines get written, defaults to stderr
	Output io.Writer
}

// Valid tests the config to ensure it's valid. If it's not valid, an
// error is returned.
func (c Config) Valid() error {
	if _, err := c.level(); err != nil {
		return fmt.Errorf("invalid level: %w", err)
	}
	return nil
}

func (c Config) level() (zapcore.Level, error) {
	lvl := strings.TrimSpace(c.Level)
	if lvl == "" {
		return zapcore.DebugLevel, nil
	}

	var out zapcore.Level
	if err := out.UnmarshalText([]byte(lvl)); err != nil {
		return out, err
	}
	return out, nil
}

// Setup builds a logger from the config and installs it as the global
// zap logger. The returned func restores whatever was installed
// before.
func Setup(conf Config) (func(), error) {
	if err := conf.Valid(); err != nil {
		return nil, fmt.Errorf("unable to set up logging: %w", err)
	}

	if !conf.Enabled {
		return zap.ReplaceGlobals(zap.NewNop()), nil
	}

	lvl, _ := conf.level()

	out := conf.Output
	if out == nil {
		out = os.Stderr
	}

	encConf := zapcore.EncoderConfig{
		MessageKey:     "msg",
		LevelKey:       "level",
		TimeKey:        "time",
		NameKey:        "logger",
		CallerKey:      "file",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encConf),
		zapcore.AddSync(out),
		zap.NewAtomicLevelAt(lvl),
	)

	log := WithInvocation(zap.New(core, zap.AddCaller()))
	return zap.ReplaceGlobals(log), nil
}

// WithInvocation tags every line written by the logger with the app
// name and an id unique to this run of the program.
func WithInvocation(log *zap.Logger) *zap.Logger {
	return log.With(
		zap.String("app", appName),
		zap.String("invocation", xid.New().String()),
	)
}

// EnvEnabled parses the value of a boolean environment variable,
// anything that isn't a valid boolean counts as false.
func EnvEnabled(val string) bool {
	on, err := strconv.ParseBool(strings.TrimSpace(val))
	if err != nil {
		return false
	}
	return on
}
