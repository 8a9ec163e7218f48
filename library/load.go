package library

import (
	"fmt"
	"os"
	"unicode/utf8"

	"go.uber.org/zap"
)

// Load reads the entire contents of the file named in the config. Any
// failure, including contents that aren't valid UTF-8, is returned as
// an ErrIO and no partial contents are returned.
func Load(conf Config) (string, error) {
	zap.L().Debug("reading file", zap.String("path", conf.Filename))

	bits, err := os.ReadFile(conf.Filename)
	if err != nil {
		return "", NewErrIO(conf.Filename, err)
	}

	if !utf8.Valid(bits) {
		return "", NewErrIO(conf.Filename, fmt.Errorf("%v: %w", conf.Filename, ErrInvalidText))
	}

	zap.L().Debug("read file", zap.String("path", conf.Filename), zap.Int("bytes", len(bits)))
	return string(bits), nil
}
