package binresource

import (
	"fmt"
	"io"
)

// Writer appends payload bytes after a resource header and can rewrite the
// header in place. Offset 0 of the Writer is the first byte after the header.
type Writer struct {
	ws     io.WriteSeeker
	mdSize int64
}

// Create writes a fresh header for md at the start of ws and leaves the
// stream positioned at the payload start. Bytes already present in ws past
// the header are not truncated. All errors wrap ErrWriter.
func Create(ws io.WriteSeeker, md Metadata) (*Writer, error) {
	if ws == nil {
		return nil, fmt.Errorf("%w: %w: nil stream", ErrWriter, ErrBadStream)
	}
	if _, err := ws.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrWriter, ErrBadStream, err)
	}
	if err := writePreamble(ws, HeaderVersion); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriter, err)
	}
	if _, err := EncodeMetadata(ws, md); err != nil {
		return nil, fmt.Errorf("%w: while writing metadata: %w", ErrWriter, err)
	}
	pos, err := ws.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrWriter, ErrBadStream, err)
	}
	return &Writer{ws: ws, mdSize: pos}, nil
}

// OpenWriter opens an existing resource for appending and header rewrites.
//
// Magic detection matches Open, but the header version must be exactly
// HeaderVersion: older resources, legacy ones included, and newer ones both
// fail with ErrVersionMismatch. The existing metadata is decoded only to
// find the payload start, where the stream is left positioned.
func OpenWriter(rws io.ReadWriteSeeker) (*Writer, error) {
	if rws == nil {
		return nil, fmt.Errorf("%w: %w: nil stream", ErrWriter, ErrBadStream)
	}
	if _, err := rws.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrWriter, ErrBadStream, err)
	}
	version, err := readPreamble(rws)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriter, err)
	}
	if version != HeaderVersion {
		return nil, fmt.Errorf("%w: %w: found %d, current is %d", ErrWriter, ErrVersionMismatch, version, HeaderVersion)
	}
	if _, err := DecodeMetadata(version, rws); err != nil {
		return nil, fmt.Errorf("%w: while reading metadata: %w", ErrWriter, err)
	}
	pos, err := rws.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrWriter, ErrBadStream, err)
	}
	return &Writer{ws: rws, mdSize: pos}, nil
}

// SetMetadata replaces the header metadata in place. The header keeps its
// size, so payload bytes and the current write position are untouched.
func (w *Writer) SetMetadata(md Metadata) error {
	if w.ws == nil {
		return fmt.Errorf("%w: %w", ErrWriter, ErrFinalized)
	}
	prev, err := w.ws.Seek(0, io.SeekCurrent)
	if err != nil {
		return fmt.Errorf("%w: %w: %w", ErrWriter, ErrBadStream, err)
	}
	if _, err := w.ws.Seek(metadataOffset, io.SeekStart); err != nil {
		return fmt.Errorf("%w: %w: %w", ErrWriter, ErrBadStream, err)
	}
	_, encErr := EncodeMetadata(w.ws, md)
	_, seekErr := w.ws.Seek(prev, io.SeekStart)
	if encErr != nil {
		return fmt.Errorf("%w: while writing metadata: %w", ErrWriter, encErr)
	}
	if seekErr != nil {
		return fmt.Errorf("%w: %w: %w", ErrWriter, ErrBadStream, seekErr)
	}
	return nil
}

// Stream returns the underlying stream, or nil after Finalize. Its offsets are absolute.
func (w *Writer) Stream() io.WriteSeeker { return w.ws }

// MetadataSize is the header length, i.e. the absolute offset of the payload.
func (w *Writer) MetadataSize() int64 { return w.mdSize }

// Write writes payload bytes at the current position.
func (w *Writer) Write(p []byte) (int, error) {
	if w.ws == nil {
		return 0, fmt.Errorf("%w: %w", ErrWriter, ErrFinalized)
	}
	return w.ws.Write(p)
}

// Seek moves within the payload; offsets are relative to the payload start.
func (w *Writer) Seek(offset int64, whence int) (int64, error) {
	if w.ws == nil {
		return 0, fmt.Errorf("%w: %w", ErrWriter, ErrFinalized)
	}
	return seekPayload(w.ws, w.mdSize, offset, whence)
}

// Finalize hands the stream back to the caller. The Writer is unusable afterwards.
func (w *Writer) Finalize() io.WriteSeeker {
	ws := w.ws
	w.ws = nil
	return ws
}

// Close closes the underlying stream if it is an io.Closer. Closing a
// finalized Writer is a no-op.
func (w *Writer) Close() error {
	if w.ws == nil {
		return nil
	}
	return closeStream(w.Finalize())
}
