package binresource

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileRoundTrip(t *testing.T) {
	name := filepath.Join(t.TempDir(), "res.bin")

	w, err := CreateFile(name, sampleMetadata(t))
	require.NoError(t, err)
	_, err = w.Write([]byte("hello"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	w, err = OpenFileWriter(name)
	require.NoError(t, err)
	_, err = w.Seek(0, io.SeekEnd)
	require.NoError(t, err)
	_, err = w.Write([]byte(" world"))
	require.NoError(t, err)
	require.NoError(t, w.SetMetadata(otherMetadata(t)))
	require.NoError(t, w.Close())

	r, err := OpenFile(name)
	require.NoError(t, err)
	defer r.Close()
	assert.Equal(t, otherMetadata(t), r.Metadata())
	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(got))

	fi, err := os.Stat(name)
	require.NoError(t, err)
	assert.Equal(t, r.MetadataSize()+int64(len("hello world")), fi.Size())
}

func TestCreateFile_Truncates(t *testing.T) {
	name := filepath.Join(t.TempDir(), "res.bin")
	require.NoError(t, os.WriteFile(name, make([]byte, 10000), 0o644))

	w, err := CreateFile(name, sampleMetadata(t))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	fi, err := os.Stat(name)
	require.NoError(t, err)
	assert.Equal(t, w.MetadataSize(), fi.Size())
}

func TestFileOpenErrors(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.bin")

	_, err := OpenFile(missing)
	require.ErrorIs(t, err, ErrReader)
	require.ErrorIs(t, err, ErrBadStream)
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = OpenFileWriter(missing)
	require.ErrorIs(t, err, ErrWriter)
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = CreateFile(filepath.Join(dir, "no", "such", "dir.bin"), sampleMetadata(t))
	require.ErrorIs(t, err, ErrWriter)

	garbage := filepath.Join(dir, "garbage.bin")
	require.NoError(t, os.WriteFile(garbage, []byte("definitely not a resource"), 0o644))
	_, err = OpenFile(garbage)
	require.ErrorIs(t, err, ErrInvalidMagic)
	_, err = OpenFileWriter(garbage)
	require.ErrorIs(t, err, ErrInvalidMagic)
}
