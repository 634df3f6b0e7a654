package osutil

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTempFile(t *testing.T) {
	path, remove, err := WriteTempFile("todo-", []byte("edit abc\n"))
	require.NoError(t, err)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "edit abc\n", string(got))

	remove()
	_, err = os.Stat(path)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteTempFile_badPattern(t *testing.T) {
	_, _, err := WriteTempFile("a/b-", nil)
	assert.Error(t, err)
}
