package binresource

import (
	"fmt"
	"io"
)

// Reader gives access to the payload of a resource. Offset 0 of the Reader
// is the first byte after the header.
type Reader struct {
	rs      io.ReadSeeker
	md      Metadata
	version uint32
	mdSize  int64
}

// Open reads the header of the resource in rs.
//
// The stream is rewound, the magic is checked (current or legacy), the
// header version is checked against HeaderVersion and the metadata is
// decoded. On success the stream is positioned at the start of the payload.
// Header versions older than HeaderVersion are accepted; newer ones fail with
// ErrFutureVersion. All errors wrap ErrReader.
func Open(rs io.ReadSeeker) (*Reader, error) {
	if rs == nil {
		return nil, fmt.Errorf("%w: %w: nil stream", ErrReader, ErrBadStream)
	}
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrReader, ErrBadStream, err)
	}
	version, err := readPreamble(rs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReader, err)
	}
	if version > HeaderVersion {
		return nil, fmt.Errorf("%w: %w: %d, current is %d", ErrReader, ErrFutureVersion, version, HeaderVersion)
	}
	md, err := DecodeMetadata(version, rs)
	if err != nil {
		return nil, fmt.Errorf("%w: while reading metadata: %w", ErrReader, err)
	}
	pos, err := rs.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrReader, ErrBadStream, err)
	}
	return &Reader{rs: rs, md: md, version: version, mdSize: pos}, nil
}

// Stream returns the underlying stream. Its offsets are absolute.
func (r *Reader) Stream() io.ReadSeeker { return r.rs }

// MetadataSize is the header length, i.e. the absolute offset of the payload.
func (r *Reader) MetadataSize() int64 { return r.mdSize }

// Metadata returns the decoded metadata.
func (r *Reader) Metadata() Metadata { return r.md }

// HeaderVersion is the header version found in the stream, 0 for legacy resources.
func (r *Reader) HeaderVersion() uint32 { return r.version }

// Read reads payload bytes from the current position.
func (r *Reader) Read(p []byte) (int, error) { return r.rs.Read(p) }

// Seek moves within the payload; offsets are relative to the payload start.
func (r *Reader) Seek(offset int64, whence int) (int64, error) {
	return seekPayload(r.rs, r.mdSize, offset, whence)
}

// Size returns the payload length without moving the cursor.
func (r *Reader) Size() (int64, error) {
	end, err := streamEnd(r.rs)
	if err != nil {
		return 0, err
	}
	return end - r.mdSize, nil
}

// Close closes the underlying stream if it is an io.Closer.
func (r *Reader) Close() error { return closeStream(r.rs) }
