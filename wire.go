package binresource

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// readExact fills buf from r. Running out of data wraps ErrTruncated, any
// other failure wraps ErrIO. what names the field for the error message.
func readExact(r io.Reader, buf []byte, what string) error {
	if _, err := io.ReadFull(r, buf); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return fmt.Errorf("%s: %w: %w", what, ErrTruncated, err)
		}
		return fmt.Errorf("%s: %w: %w", what, ErrIO, err)
	}
	return nil
}

// writeAll writes p with a single Write call.
func writeAll(w io.Writer, p []byte) (int, error) {
	n, err := w.Write(p)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	return n, err
}

func writePreamble(w io.Writer, version uint32) error {
	var buf [metadataOffset]byte
	binary.LittleEndian.PutUint64(buf[0:magicSize], Magic)
	binary.LittleEndian.PutUint32(buf[magicSize:metadataOffset], version)
	if _, err := writeAll(w, buf[:]); err != nil {
		return fmt.Errorf("magic: %w: %w", ErrIO, err)
	}
	return nil
}

// readPreamble reads the magic and, for versioned resources, the header
// version that follows it. Legacy resources report version 0.
func readPreamble(r io.Reader) (uint32, error) {
	var buf [metadataOffset]byte
	if err := readExact(r, buf[:magicSize], "magic"); err != nil {
		return 0, err
	}
	switch m := binary.LittleEndian.Uint64(buf[:magicSize]); m {
	case Magic:
		if err := readExact(r, buf[magicSize:], "header version"); err != nil {
			return 0, err
		}
		return binary.LittleEndian.Uint32(buf[magicSize:]), nil
	case LegacyMagic:
		return 0, nil
	default:
		return 0, fmt.Errorf("%w: %#016x", ErrInvalidMagic, m)
	}
}
