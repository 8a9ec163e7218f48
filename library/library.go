package library

import (
	"errors"
	"fmt"
)

// ErrInvalidText is wrapped by an ErrIO when a file was read successfully but
// its contents aren't valid UTF-8 text
var ErrInvalidText = errors.New("stream did not contain valid UTF-8")

// NewErrConfig builds a custom ErrConfig and returns it
func NewErrConfig(msg string) error {
	return ErrConfig{msg}
}

// NewErrIO builds a custom ErrIO and returns it
func NewErrIO(path string, err error) error {
	return ErrIO{path, err}
}

// ErrConfig is a custom error for when NewConfig() is called with an
// argument list it can't build a Config from
type ErrConfig struct {
	msg string
}

func (ec ErrConfig) Error() string {
	return ec.msg
}

// ErrIO is a custom error for when Load() or Run() can't fully read
// the file named by a Config as text
type ErrIO struct {
	path string
	err  error
}

func (eio ErrIO) Error() string {
	if eio.err == nil {
		return fmt.Sprintf("unable to read '%v'", eio.path)
	}
	return eio.err.Error()
}

// Unwrap returns the underlying reason the read failed
func (eio ErrIO) Unwrap() error {
	return eio.err
}

// Path returns the path of the file that couldn't be read
func (eio ErrIO) Path() string {
	return eio.path
}
