package database

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlatFile_ReadMissing(t *testing.T) {
	f := NewFlatFile(filepath.Join(t.TempDir(), "missing.dat"))

	_, err := f.Read()

	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.False(t, f.Exists())
}

func TestFlatFile_WriteTruncates(t *testing.T) {
	f := NewFlatFile(filepath.Join(t.TempDir(), "nested", "data.dat"))

	require.NoError(t, f.Write([]byte("a much longer first version\n")))
	require.NoError(t, f.Write([]byte("short\n")))

	data, err := f.Read()
	require.NoError(t, err)
	assert.Equal(t, "short\n", string(data))
	assert.True(t, f.Exists())
}
