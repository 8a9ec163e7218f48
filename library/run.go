package library

import (
	"fmt"
	"io"
)

const textLabel = "With text:"

// Run loads the file named in the config and writes its contents to
// out, underneath a "With text:" label line.
//
// The query isn't used yet; matching lines against it belongs
// between Load and the write.
func Run(conf Config, out io.Writer) error {
	contents, err := Load(conf)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(out, "%v\n%v\n", textLabel, contents); err != nil {
		return NewErrIO(conf.Filename, fmt.Errorf("unable to write contents: %w", err))
	}

	return nil
}
