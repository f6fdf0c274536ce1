package main

import (
	"errors"
	"fmt"
)

// stdStream names standard input or standard output in an
// argument slot.
const stdStream = "-"

var (
	errMissingArgument    = errors.New("missing argument")
	errUnexpectedArgument = errors.New("unexpected argument")
)

// Args is the normalised form of the positional arguments.
type Args struct {
	Input  string
	Output string
}

// InputIsStdin reports whether the document is read from
// standard input.
func (ar Args) InputIsStdin() bool {
	return ar.Input == stdStream
}

// OutputIsStdout reports whether the result is written to
// standard output.
func (ar Args) OutputIsStdout() bool {
	return ar.Output == stdStream
}

// parseArgs maps the command line onto Args. inPlace is the
// value of -i when inPlaceSet; it fills the input slot and,
// since the output slot is the same position, the output
// too. The historic "-i FILE FILE" form leaves one extra
// positional argument, which is returned as ignored. When
// needOutput is false OUTPUT may be omitted.
func parseArgs(
	inPlace string,
	inPlaceSet bool,
	positional []string,
	needOutput bool,
) (ar Args, ignored string, err error) {
	if inPlaceSet {
		if len(positional) > 1 {
			return Args{}, "", fmt.Errorf(
				"%w: %s", errUnexpectedArgument, positional[1],
			)
		}

		if len(positional) == 1 {
			ignored = positional[0]
		}

		return Args{Input: inPlace, Output: inPlace}, ignored, nil
	}

	switch {
	case len(positional) == 0:
		return Args{}, "", fmt.Errorf("%w: INPUT", errMissingArgument)
	case len(positional) == 1 && needOutput:
		return Args{}, "", fmt.Errorf("%w: OUTPUT", errMissingArgument)
	case len(positional) > 2:
		return Args{}, "", fmt.Errorf(
			"%w: %s", errUnexpectedArgument, positional[2],
		)
	}

	ar.Input = positional[0]
	if len(positional) == 2 {
		ar.Output = positional[1]
	}

	return ar, "", nil
}
