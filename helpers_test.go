package binresource

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

var testTool = Tool{
	Type:          42,
	FormatVersion: "1.0.0-dummy",
	Name:          "Tester",
	Version:       "1.0.0",
	Info:          "info",
}

func sampleMetadata(t *testing.T) Metadata {
	t.Helper()
	md, err := testTool.MetadataAt(42424242)
	require.NoError(t, err)
	return md
}

func otherMetadata(t *testing.T) Metadata {
	t.Helper()
	md, err := NewMetadata(7, "2.3.4-rc1", "Rewriter", "9.9.9", "rewritten in place", 1700000000)
	require.NoError(t, err)
	return md
}

// memStream is an in-memory io.ReadWriteSeeker. Writing past the end grows
// the buffer with zero bytes.
type memStream struct {
	buf []byte
	pos int64
}

func newMemStream(b []byte) *memStream {
	return &memStream{buf: append([]byte(nil), b...)}
}

func (m *memStream) Read(p []byte) (int, error) {
	if m.pos >= int64(len(m.buf)) {
		return 0, io.EOF
	}
	n := copy(p, m.buf[m.pos:])
	m.pos += int64(n)
	return n, nil
}

func (m *memStream) Write(p []byte) (int, error) {
	end := m.pos + int64(len(p))
	if end > int64(len(m.buf)) {
		m.buf = append(m.buf, make([]byte, end-int64(len(m.buf)))...)
	}
	copy(m.buf[m.pos:], p)
	m.pos = end
	return len(p), nil
}

func (m *memStream) Seek(offset int64, whence int) (int64, error) {
	var abs int64
	switch whence {
	case io.SeekStart:
		abs = offset
	case io.SeekCurrent:
		abs = m.pos + offset
	case io.SeekEnd:
		abs = int64(len(m.buf)) + offset
	default:
		return 0, errors.New("memStream: invalid whence")
	}
	if abs < 0 {
		return 0, errors.New("memStream: negative position")
	}
	m.pos = abs
	return abs, nil
}

func (m *memStream) Bytes() []byte { return m.buf }

// faultyStream is a memStream with switchable failures.
type faultyStream struct {
	memStream
	failSeek  bool
	failWrite bool
	readErr   error
}

func (f *faultyStream) Read(p []byte) (int, error) {
	if f.readErr != nil {
		return 0, f.readErr
	}
	return f.memStream.Read(p)
}

func (f *faultyStream) Write(p []byte) (int, error) {
	if f.failWrite {
		return 0, io.ErrClosedPipe
	}
	return f.memStream.Write(p)
}

func (f *faultyStream) Seek(offset int64, whence int) (int64, error) {
	if f.failSeek {
		return 0, errors.New("seek not supported")
	}
	return f.memStream.Seek(offset, whence)
}

type failingWriter struct {
	n int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.n <= 0 {
		return 0, io.ErrClosedPipe
	}
	if len(p) > w.n {
		p = p[:w.n]
	}
	w.n -= len(p)
	return len(p), nil
}

// shortWriter accepts half of every write and reports no error.
type shortWriter struct{}

func (shortWriter) Write(p []byte) (int, error) { return len(p) / 2, nil }

type errReader struct{ err error }

func (r errReader) Read([]byte) (int, error) { return 0, r.err }
