package library

// minArgs is the program name, the query, and the filename
const minArgs = 3

const errNotEnoughArgs = "not enough arguments"

// Config holds everything parsed out of the command line needed to
// run a single invocation
type Config struct {
	// Query is the term to search for
	Query string
	// Filename is the path to the file to read
	Filename string
}

// NewConfig builds a Config from the full list of invocation
// arguments, including the program name at index zero. Both the
// query and filename are taken as-is; anything after the filename
// is ignored.
//
// If there are fewer than three arguments an ErrConfig is returned
// and the Config must not be used.
func NewConfig(args []string) (Config, error) {
	if len(args) < minArgs {
		return Config{}, NewErrConfig(errNotEnoughArgs)
	}

	return Config{
		Query:    args[1],
		Filename: args[2],
	}, nil
}
