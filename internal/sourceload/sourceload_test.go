package sourceload

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsFileDirective(t *testing.T) {
	assert.True(t, IsFileDirective("file:/tmp/x.lum"))
	assert.False(t, IsFileDirective("let x := 1;"))
}

func TestResolveLine_PlainLinePassesThrough(t *testing.T) {
	src, err := ResolveLine("let x := 1;")
	require.NoError(t, err)
	assert.Equal(t, "let x := 1;", src)
}

func TestResolveLine_FileDirectiveReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.lum")
	require.NoError(t, os.WriteFile(path, []byte("print 1;"), 0o644))

	src, err := ResolveLine("file:" + path)
	require.NoError(t, err)
	assert.Equal(t, "print 1;", src)
}

func TestResolveLine_FileDirectiveTrimsLeadingSpace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.lum")
	require.NoError(t, os.WriteFile(path, []byte("print 2;"), 0o644))

	src, err := ResolveLine("file:   " + path)
	require.NoError(t, err)
	assert.Equal(t, "print 2;", src)
}

func TestResolveLine_EmptyPathIsError(t *testing.T) {
	_, err := ResolveLine("file:")
	assert.Error(t, err)
}

func TestReadFile_MissingFileIsError(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.lum"))
	assert.Error(t, err)
}
