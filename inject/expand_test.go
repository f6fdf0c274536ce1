package inject_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byte4ever/mdinject/inject"
)

// writeTemp creates a temporary file with content and
// returns its path.
func writeTemp(
	tb testing.TB,
	dir string,
	name string,
	content string,
) string {
	tb.Helper()

	pa := filepath.Join(dir, name)
	require.NoError(
		tb,
		os.WriteFile(pa, []byte(content), 0o600),
	)

	return pa
}

// mapLoader serves placeholder contents from memory and
// counts the loads per path.
type mapLoader struct {
	files map[string]string
	loads map[string]int
}

func newMapLoader(files map[string]string) *mapLoader {
	return &mapLoader{files: files, loads: make(map[string]int)}
}

func (ml *mapLoader) load(path string) (string, error) {
	ml.loads[path]++

	content, ok := ml.files[path]
	if !ok {
		return "", &inject.FileAccessError{Path: path, Err: fs.ErrNotExist}
	}

	return content, nil
}

func TestExpand_concatenates_trimmed_files(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	pa := writeTemp(t, dir, "a.txt", "foo \n")
	pb := writeTemp(t, dir, "b.txt", "bar")

	got, err := inject.Expand("${"+pa+"}${"+pb+"}", nil)

	require.NoError(t, err)
	assert.Equal(t, "foobar", got)
}

func TestExpand_escaped_newline(t *testing.T) {
	t.Parallel()

	got, err := inject.Expand(`line1\nline2`, nil)

	require.NoError(t, err)
	assert.Equal(t, "line1\nline2", got)
}

func TestExpand_escape_before_placeholders(t *testing.T) {
	t.Parallel()

	ml := newMapLoader(map[string]string{"x": "X\n\n"})

	got, err := inject.Expand("```\\n${x}\\n```", ml.load)

	require.NoError(t, err)
	assert.Equal(t, "```\nX\n```", got)
}

func TestExpand_only_trailing_whitespace_trimmed(t *testing.T) {
	t.Parallel()

	ml := newMapLoader(map[string]string{"x": "  lead\n\tmid\t \r\n\n"})

	got, err := inject.Expand("${x}", ml.load)

	require.NoError(t, err)
	assert.Equal(t, "  lead\n\tmid", got)
}

func TestExpand_no_recursive_expansion(t *testing.T) {
	t.Parallel()

	ml := newMapLoader(map[string]string{
		"outer": "see ${inner}",
		"inner": "never read",
	})

	got, err := inject.Expand("${outer}", ml.load)

	require.NoError(t, err)
	assert.Equal(t, "see ${inner}", got)
	assert.Zero(t, ml.loads["inner"])
}

func TestExpand_reads_once_per_occurrence(t *testing.T) {
	t.Parallel()

	ml := newMapLoader(map[string]string{"a": "A"})

	got, err := inject.Expand("${a}-${a}-${a}", ml.load)

	require.NoError(t, err)
	assert.Equal(t, "A-A-A", got)
	assert.Equal(t, 3, ml.loads["a"])
}

func TestExpand_unterminated_placeholder_kept(t *testing.T) {
	t.Parallel()

	ml := newMapLoader(nil)

	got, err := inject.Expand("text ${open", ml.load)

	require.NoError(t, err)
	assert.Equal(t, "text ${open", got)
	assert.Empty(t, ml.loads)
}

func TestExpand_placeholder_cannot_span_lines(t *testing.T) {
	t.Parallel()

	ml := newMapLoader(map[string]string{"b": "B"})

	got, err := inject.Expand(`${a\nb}`, ml.load)
	require.NoError(t, err)
	assert.Equal(t, "${a\nb}", got)

	got, err = inject.Expand(`${a\n${b}!`, ml.load)
	require.NoError(t, err)
	assert.Equal(t, "${a\nB!", got)

	assert.Equal(t, map[string]int{"b": 1}, ml.loads)
}

func TestExpand_name_may_contain_open_tag(t *testing.T) {
	t.Parallel()

	ml := newMapLoader(map[string]string{"${a": "odd"})

	got, err := inject.Expand("${${a}}", ml.load)

	require.NoError(t, err)
	assert.Equal(t, "odd}", got)
}

func TestExpand_missing_file(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "nope.txt")

	_, err := inject.Expand("${"+missing+"}", nil)
	require.Error(t, err)

	var fe *inject.FileAccessError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, missing, fe.Path)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Contains(t, err.Error(), "expanding directive")
}

func TestExpand_stops_at_first_failure(t *testing.T) {
	t.Parallel()

	ml := newMapLoader(map[string]string{"ok": "fine"})

	_, err := inject.Expand("${gone}${ok}", ml.load)

	require.Error(t, err)
	assert.Zero(t, ml.loads["ok"])
}

func TestReadFile_returns_content(t *testing.T) {
	t.Parallel()

	pa := writeTemp(t, t.TempDir(), "f.txt", "content\n")

	got, err := inject.ReadFile(pa)

	require.NoError(t, err)
	assert.Equal(t, "content\n", got)
}

func TestReadFile_directory_is_access_error(t *testing.T) {
	t.Parallel()

	_, err := inject.ReadFile(t.TempDir())

	var fe *inject.FileAccessError
	require.ErrorAs(t, err, &fe)
}

func TestPlaceholders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		directive string
		want      []string
	}{
		{name: "none", directive: "plain", want: nil},
		{name: "two", directive: "${a}${b}", want: []string{"a", "b"}},
		{name: "repeated", directive: "${a} ${a}", want: []string{"a", "a"}},
		{name: "escaped newline", directive: `${a\nb}${c}`, want: []string{"c"}},
		{name: "unterminated", directive: "${a", want: nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, inject.Placeholders(tt.directive))
		})
	}
}
