package inject

import (
	"fmt"
	"log/slog"
	"strings"
)

// Injector rewrites every region of a document. The zero
// value reads placeholder files with ReadFile and logs to
// slog.Default.
type Injector struct {
	Load   LoadFunc
	Logger *slog.Logger
}

// Inject returns doc with the interior of every region
// replaced by the expansion of its directive. The marker
// text and everything outside the regions is kept as is. The
// first failing expansion aborts the whole document.
func (ij *Injector) Inject(doc string) (string, error) {
	const errCtx = "injecting"

	blocks := Locate(doc)
	if len(blocks) == 0 {
		return doc, nil
	}

	logger := ij.logger()
	load := ij.loader(logger)

	var sb strings.Builder

	sb.Grow(len(doc))

	last := 0

	for _, bl := range blocks {
		logger.Debug(
			"expanding block",
			"line", bl.Line,
			"directive", bl.Directive,
		)

		expansion, err := Expand(bl.Directive, load)
		if err != nil {
			return "", fmt.Errorf(
				"%s: block at line %d: %w",
				errCtx, bl.Line, err,
			)
		}

		sb.WriteString(doc[last:bl.Start])
		sb.WriteString(bl.Opening)
		sb.WriteString(expansion)
		sb.WriteString(bl.Closing)

		last = bl.End
	}

	sb.WriteString(doc[last:])

	logger.Debug("injected", "blocks", len(blocks))

	return sb.String(), nil
}

func (ij *Injector) logger() *slog.Logger {
	if ij.Logger == nil {
		return slog.Default()
	}

	return ij.Logger
}

// loader wraps the configured LoadFunc with debug logging.
func (ij *Injector) loader(logger *slog.Logger) LoadFunc {
	load := ij.Load
	if load == nil {
		load = ReadFile
	}

	return func(path string) (string, error) {
		content, err := load(path)
		if err != nil {
			return "", err
		}

		logger.Debug("loaded placeholder", "path", path, "bytes", len(content))

		return content, nil
	}
}

// Inject rewrites doc with a default Injector that loads
// placeholder files through load.
func Inject(doc string, load LoadFunc) (string, error) {
	ij := Injector{Load: load}

	return ij.Inject(doc)
}
