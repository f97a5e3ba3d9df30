package binresource

import (
	"fmt"
	"os"
)

// OpenFile opens the named resource for reading. Close the Reader to
// release the file.
func OpenFile(name string) (*Reader, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrReader, ErrBadStream, err)
	}
	r, err := Open(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return r, nil
}

// CreateFile creates or truncates the named file and writes a header for md.
func CreateFile(name string, md Metadata) (*Writer, error) {
	f, err := os.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrWriter, ErrBadStream, err)
	}
	w, err := Create(f, md)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return w, nil
}

// OpenFileWriter opens an existing resource file for appending and header rewrites.
func OpenFileWriter(name string) (*Writer, error) {
	f, err := os.OpenFile(name, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrWriter, ErrBadStream, err)
	}
	w, err := OpenWriter(f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return w, nil
}
