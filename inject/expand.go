package inject

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/valyala/fasttemplate"
)

const (
	tagStart = "${"
	tagEnd   = "}"

	// escapedNewline is the two-character sequence a
	// directive uses to request a line break.
	escapedNewline = `\n`
)

// LoadFunc returns the contents of the file a placeholder
// names. The returned text is trimmed by the caller.
type LoadFunc func(path string) (string, error)

// FileAccessError reports a file that could not be opened
// or read.
type FileAccessError struct {
	Path string
	Err  error
}

func (fe *FileAccessError) Error() string {
	return fmt.Sprintf("accessing %s: %v", fe.Path, fe.Err)
}

func (fe *FileAccessError) Unwrap() error {
	return fe.Err
}

// ReadFile is the default LoadFunc. The file is opened,
// read to the end and closed before it returns. Failures
// are reported as *FileAccessError.
func ReadFile(path string) (result string, retErr error) {
	fi, err := os.Open(path) //nolint:gosec // placeholder paths are user-provided by design
	if err != nil {
		return "", &FileAccessError{Path: path, Err: err}
	}

	defer func() {
		if closeErr := fi.Close(); closeErr != nil && retErr == nil {
			retErr = &FileAccessError{Path: path, Err: closeErr}
		}
	}()

	content, err := io.ReadAll(fi)
	if err != nil {
		return "", &FileAccessError{Path: path, Err: err}
	}

	return string(content), nil
}

// Expand turns a directive into replacement text. Every
// literal \n becomes a line break, then every ${path}
// placeholder is replaced by the contents of path with
// trailing white space removed. Expanded text is not
// scanned again. A nil load uses ReadFile.
func Expand(directive string, load LoadFunc) (string, error) {
	const errCtx = "expanding directive"

	if load == nil {
		load = ReadFile
	}

	var sb strings.Builder

	err := scan(unescape(directive), &sb, func(
		w io.Writer,
		path string,
	) (int, error) {
		content, err := load(path)
		if err != nil {
			return 0, err
		}

		return io.WriteString(
			w, strings.TrimRightFunc(content, unicode.IsSpace),
		)
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	return sb.String(), nil
}

// Placeholders returns the paths a directive refers to, in
// order and with repetitions. No file is read.
func Placeholders(directive string) []string {
	var paths []string

	// Neither io.Discard nor the collector fails.
	_ = scan(unescape(directive), io.Discard, func(
		_ io.Writer,
		path string,
	) (int, error) {
		paths = append(paths, path)

		return 0, nil
	})

	return paths
}

func unescape(directive string) string {
	return strings.ReplaceAll(directive, escapedNewline, "\n")
}

// scan copies text to w and calls fn for each placeholder.
// A placeholder name never contains a line break: when the
// text between ${ and the next } does, everything up to its
// last line break is copied verbatim and scanning resumes
// after it.
func scan(text string, w io.Writer, fn fasttemplate.TagFunc) error {
	_, err := fasttemplate.ExecuteFunc(
		text, tagStart, tagEnd, w,
		func(w io.Writer, tag string) (int, error) {
			idx := strings.LastIndexByte(tag, '\n')
			if idx < 0 {
				return fn(w, tag)
			}

			nn, err := io.WriteString(w, tagStart+tag[:idx+1])
			if err != nil {
				return nn, err
			}

			rn, err := fasttemplate.ExecuteFunc(
				tag[idx+1:]+tagEnd, tagStart, tagEnd, w, fn,
			)

			return nn + int(rn), err
		},
	)

	return err
}
