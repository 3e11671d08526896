package frag

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(Te *testing.T, path ...string) string {
	Te.Helper()
	name := filepath.Join(path...)
	require.NoError(Te, os.MkdirAll(filepath.Dir(name), 0o755))
	require.NoError(Te, os.WriteFile(name, []byte("test"), 0o644))
	return name
}

func TestPyFragFiles(Te *testing.T) {
	pairs, err := PyFragFiles("testdata/ureas_O", "testdata/ureas_S")
	require.NoError(Te, err)
	assert.Equal(Te, []FilePair{
		{filepath.Join("testdata/ureas_O", "ureas_O.in"), filepath.Join("testdata/ureas_O", "pyfrag_ureas_O.txt")},
		{filepath.Join("testdata/ureas_S", "ureas_S.in"), filepath.Join("testdata/ureas_S", "pyfrag_ureas_S.txt")},
	}, pairs)
}

func TestPyFragFilesMissing(Te *testing.T) {
	Te.Parallel()
	dir := Te.TempDir()
	touch(Te, dir, "valid_file.in")
	touch(Te, dir, "non_valid_file.txt")

	_, err := PyFragFiles(dir)
	assert.True(Te, errors.Is(err, ErrFilesNotFound))
	_, err = PyFragFiles()
	assert.True(Te, errors.Is(err, ErrFilesNotFound))

	compressed := Te.TempDir()
	touch(Te, compressed, "a.in")
	touch(Te, compressed, "pyfrag_a.txt.zst")
	pairs, err := PyFragFiles(compressed)
	require.NoError(Te, err)
	assert.Equal(Te, filepath.Join(compressed, "pyfrag_a.txt.zst"), pairs[0].Results)
}

func TestFindPyFragFiles(Te *testing.T) {
	Te.Parallel()
	dir := Te.TempDir()
	touch(Te, dir, "file1.in")
	touch(Te, dir, "pyfrag_file1.txt")
	touch(Te, dir, "dir1", "file2.in")
	touch(Te, dir, "dir1", "pyfrag_file2.txt")
	touch(Te, dir, "dir1", "dir2", "file3.in")
	touch(Te, dir, "dir1", "dir2", "pyfrag_file3.txt")
	//too deep, ignored.
	touch(Te, dir, "dir1", "dir2", "dir3", "lonely.in")
	require.NoError(Te, os.MkdirAll(filepath.Join(dir, "emptydir"), 0o755))

	pairs, err := FindPyFragFiles(dir)
	require.NoError(Te, err)
	assert.Len(Te, pairs, 3)
	assert.Contains(Te, pairs, FilePair{filepath.Join(dir, "file1.in"), filepath.Join(dir, "pyfrag_file1.txt")})
	assert.Contains(Te, pairs, FilePair{filepath.Join(dir, "dir1", "file2.in"), filepath.Join(dir, "dir1", "pyfrag_file2.txt")})
	assert.Contains(Te, pairs, FilePair{filepath.Join(dir, "dir1", "dir2", "file3.in"), filepath.Join(dir, "dir1", "dir2", "pyfrag_file3.txt")})
}

func TestFindPyFragFilesErrors(Te *testing.T) {
	Te.Parallel()
	_, err := FindPyFragFiles(Te.TempDir())
	assert.True(Te, errors.Is(err, ErrFilesNotFound), "empty directory")

	dir := Te.TempDir()
	touch(Te, dir, "valid_file.in")
	touch(Te, dir, "non_valid_file.txt")
	_, err = FindPyFragFiles(dir)
	assert.True(Te, errors.Is(err, ErrFilesNotFound), "no results file")
}
